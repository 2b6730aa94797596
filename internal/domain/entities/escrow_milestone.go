package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type MilestoneStatus string

const (
	MilestoneStatusPending   MilestoneStatus = "pending"
	MilestoneStatusCompleted MilestoneStatus = "completed"
	MilestoneStatusReleased  MilestoneStatus = "released"
	MilestoneStatusRefunded  MilestoneStatus = "refunded"
)

var milestoneTransitions = map[MilestoneStatus][]MilestoneStatus{
	MilestoneStatusPending:   {MilestoneStatusCompleted, MilestoneStatusRefunded},
	MilestoneStatusCompleted: {MilestoneStatusReleased, MilestoneStatusRefunded},
	MilestoneStatusReleased:  nil,
	MilestoneStatusRefunded:  nil,
}

func (s MilestoneStatus) CanTransitionTo(next MilestoneStatus) bool {
	for _, allowed := range milestoneTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s MilestoneStatus) Terminal() bool {
	next, ok := milestoneTransitions[s]
	return ok && len(next) == 0
}

// EscrowMilestone is an independently released slice of an escrow.
// Milestone amounts do not have to add up to the parent amount.
type EscrowMilestone struct {
	ID          string
	EscrowID    string
	Sequence    int
	Title       string
	Description string
	Amount      decimal.Decimal
	Status      MilestoneStatus
	DueDate     *time.Time
	TransferID  string
	RefundID    string
	CompletedAt *time.Time
	ReleasedAt  *time.Time
	RefundedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MilestoneInput describes a milestone requested at escrow creation.
type MilestoneInput struct {
	Title       string
	Description string
	Amount      decimal.Decimal
	DueDate     *time.Time
}
