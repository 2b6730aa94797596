package request

import (
	"marketplace_trust/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ReviewCheckRequest struct {
	ProviderID string `json:"provider_id" binding:"required"`
	BookingID  string `json:"booking_id" binding:"required"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

func (r ReviewCheckRequest) ToInput(clientID, ip string) entities.ReviewCheckInput {
	return entities.ReviewCheckInput{
		ClientID:   clientID,
		ProviderID: r.ProviderID,
		BookingID:  r.BookingID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		IPAddress:  ip,
	}
}

type PaymentCheckRequest struct {
	Amount            decimal.Decimal `json:"amount" swaggertype:"string" example:"1050.00"`
	BillingAddress    string          `json:"billing_address"`
	ShippingAddress   string          `json:"shipping_address"`
	DeviceFingerprint string          `json:"device_fingerprint"`
}

func (r PaymentCheckRequest) ToInput(userID, ip string) entities.PaymentCheckInput {
	return entities.PaymentCheckInput{
		UserID:            userID,
		Amount:            r.Amount,
		BillingAddress:    r.BillingAddress,
		ShippingAddress:   r.ShippingAddress,
		DeviceFingerprint: r.DeviceFingerprint,
		IPAddress:         ip,
	}
}

type BehaviorCheckRequest struct {
	Action    string `json:"action" example:"login"`
	SessionID string `json:"session_id"`
}

// ToInput takes the user agent from the request headers; unknown actions are
// scored as "other".
func (r BehaviorCheckRequest) ToInput(userID, ip, userAgent string) entities.BehaviorCheckInput {
	action := entities.BehaviorAction(r.Action)
	switch action {
	case entities.BehaviorActionLogin, entities.BehaviorActionProfileUpdate:
	default:
		action = entities.BehaviorActionOther
	}
	return entities.BehaviorCheckInput{
		UserID:    userID,
		Action:    action,
		IPAddress: ip,
		UserAgent: userAgent,
		SessionID: r.SessionID,
	}
}
