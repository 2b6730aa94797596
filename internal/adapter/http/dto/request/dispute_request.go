package request

import (
	"strings"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/usecase"

	"github.com/shopspring/decimal"
)

type OpenDisputeRequest struct {
	BookingID      string          `json:"booking_id" binding:"required"`
	ProviderID     string          `json:"provider_id" binding:"required"`
	EscrowID       string          `json:"escrow_id"`
	Category       string          `json:"category" binding:"required" example:"quality_of_work"`
	Subject        string          `json:"subject" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	DesiredOutcome string          `json:"desired_outcome"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string" example:"300.00"`
	Evidence       []string        `json:"evidence"`
}

func (r OpenDisputeRequest) ToInput(clientID string) usecase.OpenDisputeInput {
	return usecase.OpenDisputeInput{
		BookingID:      strings.TrimSpace(r.BookingID),
		ClientID:       clientID,
		ProviderID:     strings.TrimSpace(r.ProviderID),
		EscrowID:       strings.TrimSpace(r.EscrowID),
		Category:       entities.DisputeCategory(strings.ToLower(strings.TrimSpace(r.Category))),
		Subject:        r.Subject,
		Description:    r.Description,
		DesiredOutcome: r.DesiredOutcome,
		Amount:         r.Amount,
		Evidence:       r.Evidence,
	}
}

type ArtisanResponseRequest struct {
	Response        string `json:"response" binding:"required"`
	CounterProposal string `json:"counter_proposal"`
}

type RequestResponseRequest struct {
	Message string `json:"message" binding:"required"`
}

type ResolveDisputeRequest struct {
	Outcome      string          `json:"outcome" binding:"required" example:"compromise"`
	Summary      string          `json:"summary" binding:"required"`
	RefundAmount decimal.Decimal `json:"refund_amount" swaggertype:"string" example:"150.00"`
	Notes        string          `json:"notes"`
}

func (r ResolveDisputeRequest) ToInput(disputeID, mediatorID string) usecase.ResolveDisputeInput {
	return usecase.ResolveDisputeInput{
		DisputeID:    disputeID,
		MediatorID:   mediatorID,
		Outcome:      entities.DisputeOutcome(strings.ToLower(strings.TrimSpace(r.Outcome))),
		Summary:      r.Summary,
		RefundAmount: r.RefundAmount,
		Notes:        r.Notes,
	}
}

type EscalateDisputeRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type AddMessageRequest struct {
	Message     string   `json:"message" binding:"required"`
	Attachments []string `json:"attachments"`
	IsInternal  bool     `json:"is_internal"`
}

func (r AddMessageRequest) ToInput(disputeID, senderID string) usecase.AddMessageInput {
	return usecase.AddMessageInput{
		DisputeID:   disputeID,
		SenderID:    senderID,
		Message:     r.Message,
		Attachments: r.Attachments,
		IsInternal:  r.IsInternal,
	}
}
