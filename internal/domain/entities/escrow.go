package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EscrowStatus is the lifecycle of funds held for a booking.
type EscrowStatus string

const (
	EscrowStatusPending          EscrowStatus = "pending"
	EscrowStatusFunded           EscrowStatus = "funded"
	EscrowStatusWorkStarted      EscrowStatus = "work_started"
	EscrowStatusWorkCompleted    EscrowStatus = "work_completed"
	EscrowStatusInspectionPeriod EscrowStatus = "inspection_period"
	EscrowStatusDisputed         EscrowStatus = "disputed"
	EscrowStatusReleased         EscrowStatus = "released"
	EscrowStatusRefunded         EscrowStatus = "refunded"
	EscrowStatusCancelled        EscrowStatus = "cancelled"
)

// escrowTransitions is the only place allowed escrow moves are declared.
var escrowTransitions = map[EscrowStatus][]EscrowStatus{
	EscrowStatusPending:          {EscrowStatusFunded, EscrowStatusCancelled},
	EscrowStatusFunded:           {EscrowStatusWorkStarted, EscrowStatusDisputed, EscrowStatusRefunded, EscrowStatusReleased, EscrowStatusCancelled},
	EscrowStatusWorkStarted:      {EscrowStatusWorkCompleted, EscrowStatusInspectionPeriod, EscrowStatusDisputed, EscrowStatusRefunded, EscrowStatusReleased},
	EscrowStatusWorkCompleted:    {EscrowStatusInspectionPeriod, EscrowStatusReleased, EscrowStatusDisputed},
	EscrowStatusInspectionPeriod: {EscrowStatusReleased, EscrowStatusDisputed},
	EscrowStatusDisputed:         {EscrowStatusRefunded, EscrowStatusReleased},
	EscrowStatusReleased:         nil,
	EscrowStatusRefunded:         nil,
	EscrowStatusCancelled:        nil,
}

// escrowRank orders statuses along the lifecycle; every allowed edge increases it.
var escrowRank = map[EscrowStatus]int{
	EscrowStatusPending:          0,
	EscrowStatusFunded:           1,
	EscrowStatusWorkStarted:      2,
	EscrowStatusWorkCompleted:    3,
	EscrowStatusInspectionPeriod: 4,
	EscrowStatusDisputed:         5,
	EscrowStatusReleased:         6,
	EscrowStatusRefunded:         6,
	EscrowStatusCancelled:        6,
}

func EscrowStatuses() []EscrowStatus {
	return []EscrowStatus{
		EscrowStatusPending, EscrowStatusFunded, EscrowStatusWorkStarted, EscrowStatusWorkCompleted,
		EscrowStatusInspectionPeriod, EscrowStatusDisputed, EscrowStatusReleased, EscrowStatusRefunded,
		EscrowStatusCancelled,
	}
}

func (s EscrowStatus) Valid() bool {
	_, ok := escrowTransitions[s]
	return ok
}

func (s EscrowStatus) CanTransitionTo(next EscrowStatus) bool {
	for _, allowed := range escrowTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s EscrowStatus) Terminal() bool {
	return s.Valid() && len(escrowTransitions[s]) == 0
}

func (s EscrowStatus) Rank() int { return escrowRank[s] }

// EscrowTransaction holds a client's funds for a booking until release or refund.
//
// PlatformFee and FeeRate are fixed at creation. PayoutAmount and RefundedAmount
// include milestone movements and are set once the escrow settles so that
// payout + retained fee + refunded == Amount. While SettlingTo is set they hold
// the claimed split and no other transition may land.
//
// Version is bumped by the repository on every write; a write carrying a stale
// version fails.
type EscrowTransaction struct {
	ID          string
	BookingID   string
	ClientID    string
	ProviderID  string
	Amount      decimal.Decimal
	PlatformFee decimal.Decimal
	FeeRate     decimal.Decimal
	Currency    string
	Description string
	Status      EscrowStatus

	PaymentCustomerID string
	PaymentIntentID   string
	TransferID        string
	RefundID          string
	PayoutAmount      decimal.Decimal
	RefundedAmount    decimal.Decimal

	FundingAttempt    int
	SettlingTo        EscrowStatus
	MilestoneInFlight string
	Version           int

	CompletionNotes string
	DisputeReason   string

	FundedAt           *time.Time
	WorkStartedAt      *time.Time
	WorkCompletedAt    *time.Time
	InspectionDeadline *time.Time
	DisputedAt         *time.Time
	ReleasedAt         *time.Time
	RefundedAt         *time.Time
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChargeAmount is what the client is charged at funding time.
func (e EscrowTransaction) ChargeAmount() decimal.Decimal {
	return e.Amount.Add(e.PlatformFee)
}

// FeeRetained is the part of Amount kept by the platform after settlement.
func (e EscrowTransaction) FeeRetained() decimal.Decimal {
	if !e.Status.Terminal() || e.Status == EscrowStatusCancelled {
		return decimal.Zero
	}
	return e.Amount.Sub(e.PayoutAmount).Sub(e.RefundedAmount)
}

// Busy reports whether money is moving under a claim on this record.
func (e EscrowTransaction) Busy() bool {
	return e.SettlingTo != "" || e.MilestoneInFlight != ""
}

func (e EscrowTransaction) IsParty(userID string) bool {
	return userID != "" && (userID == e.ClientID || userID == e.ProviderID)
}

// PlatformFeeFor rounds amount × rate to cents.
func PlatformFeeFor(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(2)
}

// EscrowDetails is an escrow with its milestones, releases and audit events.
type EscrowDetails struct {
	Escrow     EscrowTransaction
	Milestones []EscrowMilestone
	Releases   []EscrowRelease
	Events     []EscrowEvent
}
