package response

import (
	"time"

	"marketplace_trust/internal/domain/entities"
)

type EscrowResponse struct {
	ID                 string     `json:"id"`
	BookingID          string     `json:"booking_id"`
	ClientID           string     `json:"client_id"`
	ProviderID         string     `json:"provider_id"`
	Amount             string     `json:"amount"`
	PlatformFee        string     `json:"platform_fee"`
	ChargeAmount       string     `json:"charge_amount"`
	Currency           string     `json:"currency"`
	Description        string     `json:"description,omitempty"`
	Status             string     `json:"status"`
	PaymentIntentID    string     `json:"payment_intent_id,omitempty"`
	TransferID         string     `json:"transfer_id,omitempty"`
	RefundID           string     `json:"refund_id,omitempty"`
	PayoutAmount       string     `json:"payout_amount"`
	RefundedAmount     string     `json:"refunded_amount"`
	CompletionNotes    string     `json:"completion_notes,omitempty"`
	DisputeReason      string     `json:"dispute_reason,omitempty"`
	FundedAt           *time.Time `json:"funded_at,omitempty"`
	WorkStartedAt      *time.Time `json:"work_started_at,omitempty"`
	WorkCompletedAt    *time.Time `json:"work_completed_at,omitempty"`
	InspectionDeadline *time.Time `json:"inspection_deadline,omitempty"`
	DisputedAt         *time.Time `json:"disputed_at,omitempty"`
	ReleasedAt         *time.Time `json:"released_at,omitempty"`
	RefundedAt         *time.Time `json:"refunded_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func FromEscrow(e entities.EscrowTransaction) EscrowResponse {
	return EscrowResponse{
		ID:                 e.ID,
		BookingID:          e.BookingID,
		ClientID:           e.ClientID,
		ProviderID:         e.ProviderID,
		Amount:             e.Amount.StringFixed(2),
		PlatformFee:        e.PlatformFee.StringFixed(2),
		ChargeAmount:       e.ChargeAmount().StringFixed(2),
		Currency:           e.Currency,
		Description:        e.Description,
		Status:             string(e.Status),
		PaymentIntentID:    e.PaymentIntentID,
		TransferID:         e.TransferID,
		RefundID:           e.RefundID,
		PayoutAmount:       e.PayoutAmount.StringFixed(2),
		RefundedAmount:     e.RefundedAmount.StringFixed(2),
		CompletionNotes:    e.CompletionNotes,
		DisputeReason:      e.DisputeReason,
		FundedAt:           e.FundedAt,
		WorkStartedAt:      e.WorkStartedAt,
		WorkCompletedAt:    e.WorkCompletedAt,
		InspectionDeadline: e.InspectionDeadline,
		DisputedAt:         e.DisputedAt,
		ReleasedAt:         e.ReleasedAt,
		RefundedAt:         e.RefundedAt,
		CancelledAt:        e.CancelledAt,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func FromEscrows(list []entities.EscrowTransaction) []EscrowResponse {
	out := make([]EscrowResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEscrow(e))
	}
	return out
}

type MilestoneResponse struct {
	ID          string     `json:"id"`
	EscrowID    string     `json:"escrow_id"`
	Sequence    int        `json:"sequence"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Amount      string     `json:"amount"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ReleasedAt  *time.Time `json:"released_at,omitempty"`
	RefundedAt  *time.Time `json:"refunded_at,omitempty"`
}

func FromMilestone(m entities.EscrowMilestone) MilestoneResponse {
	return MilestoneResponse{
		ID:          m.ID,
		EscrowID:    m.EscrowID,
		Sequence:    m.Sequence,
		Title:       m.Title,
		Description: m.Description,
		Amount:      m.Amount.StringFixed(2),
		Status:      string(m.Status),
		DueDate:     m.DueDate,
		CompletedAt: m.CompletedAt,
		ReleasedAt:  m.ReleasedAt,
		RefundedAt:  m.RefundedAt,
	}
}

type ReleaseResponse struct {
	ID               string    `json:"id"`
	MilestoneID      string    `json:"milestone_id,omitempty"`
	Kind             string    `json:"kind"`
	Amount           string    `json:"amount"`
	Reason           string    `json:"reason,omitempty"`
	ActorID          string    `json:"actor_id"`
	GatewayReference string    `json:"gateway_reference,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type EscrowEventResponse struct {
	Type      string            `json:"type"`
	ActorID   string            `json:"actor_id"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type EscrowDetailsResponse struct {
	Escrow     EscrowResponse        `json:"escrow"`
	Milestones []MilestoneResponse   `json:"milestones"`
	Releases   []ReleaseResponse     `json:"releases"`
	Events     []EscrowEventResponse `json:"events"`
}

func FromEscrowDetails(d entities.EscrowDetails) EscrowDetailsResponse {
	out := EscrowDetailsResponse{
		Escrow:     FromEscrow(d.Escrow),
		Milestones: make([]MilestoneResponse, 0, len(d.Milestones)),
		Releases:   make([]ReleaseResponse, 0, len(d.Releases)),
		Events:     make([]EscrowEventResponse, 0, len(d.Events)),
	}
	for _, m := range d.Milestones {
		out.Milestones = append(out.Milestones, FromMilestone(m))
	}
	for _, r := range d.Releases {
		out.Releases = append(out.Releases, ReleaseResponse{
			ID:               r.ID,
			MilestoneID:      r.MilestoneID,
			Kind:             string(r.Kind),
			Amount:           r.Amount.StringFixed(2),
			Reason:           r.Reason,
			ActorID:          r.ActorID,
			GatewayReference: r.GatewayReference,
			CreatedAt:        r.CreatedAt,
		})
	}
	for _, ev := range d.Events {
		out.Events = append(out.Events, EscrowEventResponse{
			Type:      string(ev.Type),
			ActorID:   ev.ActorID,
			Metadata:  ev.Metadata,
			CreatedAt: ev.CreatedAt,
		})
	}
	return out
}
