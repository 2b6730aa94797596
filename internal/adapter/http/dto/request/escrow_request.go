package request

import (
	"strings"
	"time"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/usecase"

	"github.com/shopspring/decimal"
)

type MilestoneRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"250.00"`
	DueDate     *time.Time      `json:"due_date"`
}

// CreateEscrowRequest opens custody for a booking. The client is the actor.
type CreateEscrowRequest struct {
	BookingID   string             `json:"booking_id" binding:"required"`
	ProviderID  string             `json:"provider_id" binding:"required"`
	Amount      decimal.Decimal    `json:"amount" swaggertype:"string" example:"1000.00"`
	Description string             `json:"description"`
	Milestones  []MilestoneRequest `json:"milestones"`
}

func (r CreateEscrowRequest) ToInput(clientID string) usecase.CreateEscrowInput {
	in := usecase.CreateEscrowInput{
		BookingID:   strings.TrimSpace(r.BookingID),
		ClientID:    clientID,
		ProviderID:  strings.TrimSpace(r.ProviderID),
		Amount:      r.Amount,
		Description: r.Description,
	}
	for _, m := range r.Milestones {
		in.Milestones = append(in.Milestones, entities.MilestoneInput{
			Title:       m.Title,
			Description: m.Description,
			Amount:      m.Amount,
			DueDate:     m.DueDate,
		})
	}
	return in
}

type FundEscrowRequest struct {
	PaymentMethod     string `json:"payment_method" binding:"required"`
	DeviceFingerprint string `json:"device_fingerprint"`
	BillingAddress    string `json:"billing_address"`
	ShippingAddress   string `json:"shipping_address"`
}

func (r FundEscrowRequest) ToInput(escrowID, clientID, ip string) usecase.FundEscrowInput {
	return usecase.FundEscrowInput{
		EscrowID:          escrowID,
		ClientID:          clientID,
		PaymentMethod:     strings.TrimSpace(r.PaymentMethod),
		IPAddress:         ip,
		DeviceFingerprint: r.DeviceFingerprint,
		BillingAddress:    r.BillingAddress,
		ShippingAddress:   r.ShippingAddress,
	}
}

type CompleteWorkRequest struct {
	Notes string `json:"notes"`
}

type DisputeEscrowRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// RefundEscrowRequest refunds part or all of an escrow. Amount is required and
// must be positive; refunding everything still held closes the escrow as refunded.
type RefundEscrowRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"300.00"`
	Reason string          `json:"reason"`
}

func (r RefundEscrowRequest) ToInput(escrowID, actorID string) usecase.RefundEscrowInput {
	return usecase.RefundEscrowInput{EscrowID: escrowID, Amount: r.Amount, Reason: r.Reason, ActorID: actorID}
}

type ReasonRequest struct {
	Reason string `json:"reason"`
}
