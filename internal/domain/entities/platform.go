package entities

import "github.com/shopspring/decimal"

// Role is a platform role read from the profiles table.
type Role string

const (
	RoleClient     Role = "client"
	RoleArtisan    Role = "artisan"
	RoleModerator  Role = "moderator"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Elevated roles may read any escrow or dispute.
func (r Role) Elevated() bool {
	switch r {
	case RoleModerator, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

func (r Role) Admin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// SystemActorID identifies scheduler-driven actions and the fallback mediator.
const SystemActorID = "system"

const (
	MinTrustScore = 0
	MaxTrustScore = 100
)

// Booking is the read model of an externally owned booking.
type Booking struct {
	ID         string
	ClientID   string
	ProviderID string
	Status     string
	Amount     decimal.Decimal
}

const BookingStatusCompleted = "completed"

// Profile is the read model of an externally owned user profile.
type Profile struct {
	ID                string
	Email             string
	Phone             string
	FullName          string
	Role              Role
	PaymentCustomerID string
	PayoutAccountID   string
	TrustScore        int
}

type ScheduledJobKind string

const (
	JobEscrowAutoRelease      ScheduledJobKind = "escrow.auto_release"
	JobDisputeEscalationCheck ScheduledJobKind = "dispute.escalation_check"
)

// ScheduledJob references a record to re-check at a point in time.
type ScheduledJob struct {
	Kind  ScheduledJobKind
	RefID string
}

// Key identifies a job; scheduling the same key twice keeps a single entry.
func (j ScheduledJob) Key() string {
	return string(j.Kind) + ":" + j.RefID
}
