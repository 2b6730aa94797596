package response

import (
	"time"

	"marketplace_trust/internal/domain/entities"
)

type DisputeResponse struct {
	ID                string     `json:"id"`
	BookingID         string     `json:"booking_id"`
	EscrowID          string     `json:"escrow_id,omitempty"`
	ClientID          string     `json:"client_id"`
	ProviderID        string     `json:"provider_id"`
	MediatorID        string     `json:"mediator_id,omitempty"`
	Category          string     `json:"category"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	Subject           string     `json:"subject"`
	Description       string     `json:"description"`
	DesiredOutcome    string     `json:"desired_outcome,omitempty"`
	Amount            string     `json:"amount"`
	Evidence          []string   `json:"evidence"`
	ArtisanResponse   string     `json:"artisan_response,omitempty"`
	CounterProposal   string     `json:"counter_proposal,omitempty"`
	ResolutionSummary string     `json:"resolution_summary,omitempty"`
	RefundAmount      string     `json:"refund_amount"`
	ResponseDeadline  *time.Time `json:"response_deadline,omitempty"`
	RespondedAt       *time.Time `json:"responded_at,omitempty"`
	MediationAt       *time.Time `json:"mediation_at,omitempty"`
	EscalatedAt       *time.Time `json:"escalated_at,omitempty"`
	ResolvedAt        *time.Time `json:"resolved_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// FromDispute omits mediator notes; they are only returned inside details
// read by the mediator.
func FromDispute(d entities.Dispute) DisputeResponse {
	evidence := d.Evidence
	if evidence == nil {
		evidence = []string{}
	}
	return DisputeResponse{
		ID:                d.ID,
		BookingID:         d.BookingID,
		EscrowID:          d.EscrowID,
		ClientID:          d.ClientID,
		ProviderID:        d.ProviderID,
		MediatorID:        d.MediatorID,
		Category:          string(d.Category),
		Priority:          string(d.Priority),
		Status:            string(d.Status),
		Subject:           d.Subject,
		Description:       d.Description,
		DesiredOutcome:    d.DesiredOutcome,
		Amount:            d.Amount.StringFixed(2),
		Evidence:          evidence,
		ArtisanResponse:   d.ArtisanResponse,
		CounterProposal:   d.CounterProposal,
		ResolutionSummary: d.ResolutionSummary,
		RefundAmount:      d.RefundAmount.StringFixed(2),
		ResponseDeadline:  d.ResponseDeadline,
		RespondedAt:       d.RespondedAt,
		MediationAt:       d.MediationAt,
		EscalatedAt:       d.EscalatedAt,
		ResolvedAt:        d.ResolvedAt,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func FromDisputes(list []entities.Dispute) []DisputeResponse {
	out := make([]DisputeResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromDispute(d))
	}
	return out
}

type DisputeMessageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	SenderType  string    `json:"sender_type"`
	Message     string    `json:"message"`
	Attachments []string  `json:"attachments,omitempty"`
	IsInternal  bool      `json:"is_internal"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromDisputeMessage(m entities.DisputeMessage) DisputeMessageResponse {
	return DisputeMessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		SenderType:  string(m.SenderType),
		Message:     m.Message,
		Attachments: m.Attachments,
		IsInternal:  m.IsInternal,
		CreatedAt:   m.CreatedAt,
	}
}

type TimelineEventResponse struct {
	Type        string            `json:"type"`
	ActorID     string            `json:"actor_id"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

type DisputeDetailsResponse struct {
	Dispute       DisputeResponse          `json:"dispute"`
	MediatorNotes string                   `json:"mediator_notes,omitempty"`
	Messages      []DisputeMessageResponse `json:"messages"`
	Timeline      []TimelineEventResponse  `json:"timeline"`
}

// FromDisputeDetails includes mediator notes only for the assigned mediator.
func FromDisputeDetails(d entities.DisputeDetails, readerID string) DisputeDetailsResponse {
	out := DisputeDetailsResponse{
		Dispute:  FromDispute(d.Dispute),
		Messages: make([]DisputeMessageResponse, 0, len(d.Messages)),
		Timeline: make([]TimelineEventResponse, 0, len(d.Timeline)),
	}
	if d.Dispute.IsMediator(readerID) {
		out.MediatorNotes = d.Dispute.MediatorNotes
	}
	for _, m := range d.Messages {
		out.Messages = append(out.Messages, FromDisputeMessage(m))
	}
	for _, ev := range d.Timeline {
		out.Timeline = append(out.Timeline, TimelineEventResponse{
			Type:        string(ev.Type),
			ActorID:     ev.ActorID,
			Description: ev.Description,
			Metadata:    ev.Metadata,
			CreatedAt:   ev.CreatedAt,
		})
	}
	return out
}

type DisputeStatsResponse struct {
	Total                  int                `json:"total"`
	Open                   int                `json:"open"`
	Resolved               int                `json:"resolved"`
	AverageResolutionHours float64            `json:"average_resolution_hours"`
	ByCategory             map[string]int     `json:"by_category"`
	ByStatus               map[string]int     `json:"by_status"`
	ResolutionRates        map[string]float64 `json:"resolution_rates"`
}

func FromDisputeStats(s entities.DisputeStats) DisputeStatsResponse {
	out := DisputeStatsResponse{
		Total:                  s.Total,
		Open:                   s.Open,
		Resolved:               s.Resolved,
		AverageResolutionHours: s.AverageResolutionHours,
		ByCategory:             make(map[string]int, len(s.ByCategory)),
		ByStatus:               make(map[string]int, len(s.ByStatus)),
		ResolutionRates:        make(map[string]float64, len(s.ResolutionRates)),
	}
	for k, v := range s.ByCategory {
		out.ByCategory[string(k)] = v
	}
	for k, v := range s.ByStatus {
		out.ByStatus[string(k)] = v
	}
	for k, v := range s.ResolutionRates {
		out.ResolutionRates[string(k)] = v
	}
	return out
}
