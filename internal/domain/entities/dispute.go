package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DisputeStatus string

const (
	DisputeStatusOpened               DisputeStatus = "opened"
	DisputeStatusUnderReview          DisputeStatus = "under_review"
	DisputeStatusAwaitingResponse     DisputeStatus = "awaiting_response"
	DisputeStatusMediation            DisputeStatus = "mediation"
	DisputeStatusEscalated            DisputeStatus = "escalated"
	DisputeStatusResolvedClientFavor  DisputeStatus = "resolved_client_favor"
	DisputeStatusResolvedArtisanFavor DisputeStatus = "resolved_artisan_favor"
	DisputeStatusResolvedCompromise   DisputeStatus = "resolved_compromise"
	DisputeStatusClosed               DisputeStatus = "closed"
	DisputeStatusWithdrawn            DisputeStatus = "withdrawn"
)

var disputeTerminal = []DisputeStatus{
	DisputeStatusResolvedClientFavor,
	DisputeStatusResolvedArtisanFavor,
	DisputeStatusResolvedCompromise,
	DisputeStatusClosed,
	DisputeStatusWithdrawn,
}

var disputeTransitions = map[DisputeStatus][]DisputeStatus{
	DisputeStatusOpened:           withTerminal(DisputeStatusUnderReview, DisputeStatusAwaitingResponse, DisputeStatusMediation, DisputeStatusEscalated),
	DisputeStatusUnderReview:      withTerminal(DisputeStatusAwaitingResponse, DisputeStatusMediation, DisputeStatusEscalated),
	DisputeStatusAwaitingResponse: withTerminal(DisputeStatusUnderReview, DisputeStatusMediation, DisputeStatusEscalated),
	DisputeStatusMediation:        withTerminal(DisputeStatusEscalated),
	DisputeStatusEscalated:        withTerminal(DisputeStatusMediation),

	DisputeStatusResolvedClientFavor:  nil,
	DisputeStatusResolvedArtisanFavor: nil,
	DisputeStatusResolvedCompromise:   nil,
	DisputeStatusClosed:               nil,
	DisputeStatusWithdrawn:            nil,
}

func withTerminal(next ...DisputeStatus) []DisputeStatus {
	return append(next, disputeTerminal...)
}

func DisputeStatuses() []DisputeStatus {
	return []DisputeStatus{
		DisputeStatusOpened, DisputeStatusUnderReview, DisputeStatusAwaitingResponse, DisputeStatusMediation,
		DisputeStatusEscalated, DisputeStatusResolvedClientFavor, DisputeStatusResolvedArtisanFavor,
		DisputeStatusResolvedCompromise, DisputeStatusClosed, DisputeStatusWithdrawn,
	}
}

func (s DisputeStatus) Valid() bool {
	_, ok := disputeTransitions[s]
	return ok
}

func (s DisputeStatus) CanTransitionTo(next DisputeStatus) bool {
	for _, allowed := range disputeTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s DisputeStatus) Terminal() bool {
	return s.Valid() && len(disputeTransitions[s]) == 0
}

func (s DisputeStatus) Resolved() bool {
	switch s {
	case DisputeStatusResolvedClientFavor, DisputeStatusResolvedArtisanFavor, DisputeStatusResolvedCompromise:
		return true
	}
	return false
}

type DisputeCategory string

const (
	DisputeCategoryQualityOfWork  DisputeCategory = "quality_of_work"
	DisputeCategoryIncompleteWork DisputeCategory = "incomplete_work"
	DisputeCategoryPricingIssue   DisputeCategory = "pricing_issue"
	DisputeCategoryNoShow         DisputeCategory = "no_show"
	DisputeCategoryCommunication  DisputeCategory = "communication"
	DisputeCategoryDamage         DisputeCategory = "damage"
	DisputeCategoryDelay          DisputeCategory = "delay"
	DisputeCategoryRefundRequest  DisputeCategory = "refund_request"
	DisputeCategoryOther          DisputeCategory = "other"
)

func DisputeCategories() []DisputeCategory {
	return []DisputeCategory{
		DisputeCategoryQualityOfWork, DisputeCategoryIncompleteWork, DisputeCategoryPricingIssue,
		DisputeCategoryNoShow, DisputeCategoryCommunication, DisputeCategoryDamage, DisputeCategoryDelay,
		DisputeCategoryRefundRequest, DisputeCategoryOther,
	}
}

func (c DisputeCategory) Valid() bool {
	for _, known := range DisputeCategories() {
		if c == known {
			return true
		}
	}
	return false
}

type DisputePriority string

const (
	DisputePriorityLow    DisputePriority = "low"
	DisputePriorityMedium DisputePriority = "medium"
	DisputePriorityHigh   DisputePriority = "high"
	DisputePriorityUrgent DisputePriority = "urgent"
)

var (
	urgentDisputeAmount = decimal.NewFromInt(5000)
	highDisputeAmount   = decimal.NewFromInt(1000)
)

// DerivePriority ranks a dispute from its category and the amount at stake.
func DerivePriority(category DisputeCategory, amount decimal.Decimal) DisputePriority {
	switch {
	case category == DisputeCategoryDamage || amount.GreaterThan(urgentDisputeAmount):
		return DisputePriorityUrgent
	case category == DisputeCategoryNoShow || amount.GreaterThan(highDisputeAmount):
		return DisputePriorityHigh
	case category == DisputeCategoryQualityOfWork || category == DisputeCategoryIncompleteWork:
		return DisputePriorityMedium
	default:
		return DisputePriorityLow
	}
}

type DisputeOutcome string

const (
	DisputeOutcomeClientFavor  DisputeOutcome = "client_favor"
	DisputeOutcomeArtisanFavor DisputeOutcome = "artisan_favor"
	DisputeOutcomeCompromise   DisputeOutcome = "compromise"
)

func (o DisputeOutcome) Status() (DisputeStatus, bool) {
	switch o {
	case DisputeOutcomeClientFavor:
		return DisputeStatusResolvedClientFavor, true
	case DisputeOutcomeArtisanFavor:
		return DisputeStatusResolvedArtisanFavor, true
	case DisputeOutcomeCompromise:
		return DisputeStatusResolvedCompromise, true
	}
	return "", false
}

// TrustPenalty is the provider trust-score delta applied when a dispute resolves.
func (o DisputeOutcome) TrustPenalty() int {
	switch o {
	case DisputeOutcomeClientFavor:
		return -10
	case DisputeOutcomeCompromise:
		return -5
	default:
		return 0
	}
}

// Dispute is a conflict raised by a client against a booking.
// At most one non-terminal dispute exists per booking.
type Dispute struct {
	ID                string
	BookingID         string
	EscrowID          string
	ClientID          string
	ProviderID        string
	MediatorID        string
	Category          DisputeCategory
	Priority          DisputePriority
	Status            DisputeStatus
	Subject           string
	Description       string
	DesiredOutcome    string
	Amount            decimal.Decimal
	Evidence          []string
	ArtisanResponse   string
	CounterProposal   string
	MediatorNotes     string
	ResolutionSummary string
	RefundAmount      decimal.Decimal
	ResponseDeadline  *time.Time
	RespondedAt       *time.Time
	MediationAt       *time.Time
	EscalatedAt       *time.Time
	ResolvedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (d Dispute) IsParty(userID string) bool {
	return userID != "" && (userID == d.ClientID || userID == d.ProviderID)
}

func (d Dispute) IsMediator(userID string) bool {
	return userID != "" && userID == d.MediatorID
}

// DisputeDetails is a dispute with the messages and timeline visible to one reader.
type DisputeDetails struct {
	Dispute  Dispute
	Messages []DisputeMessage
	Timeline []DisputeTimelineEvent
}

// DisputeStats summarises every dispute on record.
type DisputeStats struct {
	Total                  int
	Open                   int
	Resolved               int
	AverageResolutionHours float64
	ByCategory             map[DisputeCategory]int
	ByStatus               map[DisputeStatus]int
	ResolutionRates        map[DisputeOutcome]float64
}
