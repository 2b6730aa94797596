package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// IPaymentGateway abstracts external payment providers (e.g. Stripe, Mercado Pago).
//
// Every money-moving call carries an idempotency key so a retried call does not
// move funds twice.
type IPaymentGateway interface {
	EnsureCustomer(ctx context.Context, req CustomerRequest) (string, error)
	Authorize(ctx context.Context, req AuthorizeRequest) (GatewayPayment, error)
	Capture(ctx context.Context, paymentID, idempotencyKey string) (GatewayPayment, error)
	Void(ctx context.Context, paymentID, idempotencyKey string) error
	GetPayment(ctx context.Context, paymentID string) (GatewayPayment, error)
	Transfer(ctx context.Context, req TransferRequest) (GatewayTransfer, error)
	Refund(ctx context.Context, req RefundRequest) (GatewayRefund, error)
}

type CustomerRequest struct {
	UserID     string
	Email      string
	Name       string
	ExistingID string
}

type AuthorizeRequest struct {
	CustomerID     string
	PaymentMethod  string
	Amount         decimal.Decimal
	Currency       string
	Description    string
	TransferGroup  string
	Metadata       map[string]string
	IdempotencyKey string
}

// Gateway payment states the core relies on.
const (
	PaymentStateRequiresCapture = "requires_capture"
	PaymentStateSucceeded       = "succeeded"
	PaymentStateCancelled       = "cancelled"
	PaymentStateFailed          = "failed"
)

type GatewayPayment struct {
	ID     string
	State  string
	Amount decimal.Decimal
}

type TransferRequest struct {
	Destination    string
	Amount         decimal.Decimal
	Currency       string
	TransferGroup  string
	Description    string
	IdempotencyKey string
}

type GatewayTransfer struct {
	ID     string
	Amount decimal.Decimal
}

type RefundRequest struct {
	PaymentID      string
	Amount         decimal.Decimal
	Currency       string
	Reason         string
	IdempotencyKey string
}

type GatewayRefund struct {
	ID     string
	Amount decimal.Decimal
	Status string
}
