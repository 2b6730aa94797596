package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReleaseKind string

const (
	ReleaseKindRelease          ReleaseKind = "release"
	ReleaseKindMilestoneRelease ReleaseKind = "milestone_release"
	ReleaseKindRefund           ReleaseKind = "refund"
)

// EscrowRelease is an append-only record of money leaving custody.
type EscrowRelease struct {
	ID               string
	EscrowID         string
	MilestoneID      string
	Kind             ReleaseKind
	Amount           decimal.Decimal
	Reason           string
	ActorID          string
	GatewayReference string
	CreatedAt        time.Time
}

type EscrowEventType string

const (
	EscrowEventCreated            EscrowEventType = "escrow_created"
	EscrowEventFunded             EscrowEventType = "escrow_funded"
	EscrowEventWorkStarted        EscrowEventType = "work_started"
	EscrowEventWorkCompleted      EscrowEventType = "work_completed"
	EscrowEventFundsReleased      EscrowEventType = "funds_released"
	EscrowEventDisputed           EscrowEventType = "escrow_disputed"
	EscrowEventRefunded           EscrowEventType = "escrow_refunded"
	EscrowEventCancelled          EscrowEventType = "escrow_cancelled"
	EscrowEventMilestoneCompleted EscrowEventType = "milestone_completed"
	EscrowEventMilestoneReleased  EscrowEventType = "milestone_released"
	EscrowEventMilestoneRefunded  EscrowEventType = "milestone_refunded"
	EscrowEventAutoReleaseSkipped EscrowEventType = "auto_release_skipped"
)

// EscrowEvent is an append-only audit entry.
type EscrowEvent struct {
	ID        string
	EscrowID  string
	Type      EscrowEventType
	ActorID   string
	Metadata  map[string]string
	CreatedAt time.Time
}
