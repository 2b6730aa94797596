package payments

import (
	"context"
	"errors"
	"strings"

	"marketplace_trust/internal/infrastructure/metrics"
	"marketplace_trust/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

const providerStripe = "stripe"

// StripeGateway holds client funds with manual-capture payment intents and
// pays providers through Connect transfers to their payout accounts.
type StripeGateway struct {
	api     *client.API
	log     *zap.Logger
	metrics *metrics.Metrics
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string, log *zap.Logger, m *metrics.Metrics) (*StripeGateway, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, ErrMissingStripeSecretKey
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	log.Info("stripe client initialized")
	return &StripeGateway{api: api, log: log, metrics: m}, nil
}

func (g *StripeGateway) EnsureCustomer(ctx context.Context, req interfaces.CustomerRequest) (id string, err error) {
	if req.ExistingID != "" {
		return req.ExistingID, nil
	}
	ctx, c := startCall(ctx, g.metrics, providerStripe, "customer_create", attribute.String("user_id", req.UserID))
	defer func() { c.end(err) }()

	params := &stripe.CustomerParams{
		Email: stripe.String(req.Email),
		Name:  stripe.String(req.Name),
	}
	params.Context = ctx
	params.SetIdempotencyKey("customer:" + req.UserID)
	params.AddMetadata("user_id", req.UserID)

	cus, err := g.api.Customers.New(params)
	if err != nil {
		g.log.Warn("customer create failed", zap.String("user_id", req.UserID), zap.Error(err))
		return "", err
	}
	return cus.ID, nil
}

func (g *StripeGateway) Authorize(ctx context.Context, req interfaces.AuthorizeRequest) (p interfaces.GatewayPayment, err error) {
	ctx, c := startCall(ctx, g.metrics, providerStripe, "authorize", attribute.String("idempotency_key", req.IdempotencyKey))
	defer func() { c.end(err) }()

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(toMinorUnits(req.Amount)),
		Currency:           stripe.String(strings.ToLower(req.Currency)),
		Customer:           stripe.String(req.CustomerID),
		PaymentMethod:      stripe.String(req.PaymentMethod),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CaptureMethod:      stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		Confirm:            stripe.Bool(true),
		Description:        stripe.String(req.Description),
	}
	if req.TransferGroup != "" {
		params.TransferGroup = stripe.String(req.TransferGroup)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	return fromPaymentIntent(pi), nil
}

func (g *StripeGateway) Capture(ctx context.Context, paymentID, idempotencyKey string) (p interfaces.GatewayPayment, err error) {
	ctx, c := startCall(ctx, g.metrics, providerStripe, "capture", attribute.String("payment_id", paymentID))
	defer func() { c.end(err) }()

	params := &stripe.PaymentIntentCaptureParams{}
	params.Context = ctx
	params.SetIdempotencyKey(idempotencyKey)
	pi, err := g.api.PaymentIntents.Capture(paymentID, params)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	return fromPaymentIntent(pi), nil
}

func (g *StripeGateway) Void(ctx context.Context, paymentID, idempotencyKey string) (err error) {
	ctx, c := startCall(ctx, g.metrics, providerStripe, "void", attribute.String("payment_id", paymentID))
	defer func() { c.end(err) }()

	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	params.SetIdempotencyKey(idempotencyKey)
	_, err = g.api.PaymentIntents.Cancel(paymentID, params)
	return err
}

func (g *StripeGateway) GetPayment(ctx context.Context, paymentID string) (p interfaces.GatewayPayment, err error) {
	ctx, c := startCall(ctx, g.metrics, providerStripe, "get_payment", attribute.String("payment_id", paymentID))
	defer func() { c.end(err) }()

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.Get(paymentID, params)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	return fromPaymentIntent(pi), nil
}

func (g *StripeGateway) Transfer(ctx context.Context, req interfaces.TransferRequest) (t interfaces.GatewayTransfer, err error) {
	ctx, c := startCall(ctx, g.metrics, providerStripe, "transfer", attribute.String("destination", req.Destination))
	defer func() { c.end(err) }()

	params := &stripe.TransferParams{
		Amount:      stripe.Int64(toMinorUnits(req.Amount)),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Destination: stripe.String(req.Destination),
		Description: stripe.String(req.Description),
	}
	if req.TransferGroup != "" {
		params.TransferGroup = stripe.String(req.TransferGroup)
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)

	tr, err := g.api.Transfers.New(params)
	if err != nil {
		return interfaces.GatewayTransfer{}, err
	}
	return interfaces.GatewayTransfer{ID: tr.ID, Amount: fromMinorUnits(tr.Amount)}, nil
}

func (g *StripeGateway) Refund(ctx context.Context, req interfaces.RefundRequest) (r interfaces.GatewayRefund, err error) {
	ctx, c := startCall(ctx, g.metrics, providerStripe, "refund", attribute.String("payment_id", req.PaymentID))
	defer func() { c.end(err) }()

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.PaymentID),
		Amount:        stripe.Int64(toMinorUnits(req.Amount)),
		Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	if req.Reason != "" {
		params.AddMetadata("reason", req.Reason)
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)

	re, err := g.api.Refunds.New(params)
	if err != nil {
		return interfaces.GatewayRefund{}, err
	}
	return interfaces.GatewayRefund{ID: re.ID, Amount: fromMinorUnits(re.Amount), Status: string(re.Status)}, nil
}

func fromPaymentIntent(pi *stripe.PaymentIntent) interfaces.GatewayPayment {
	state := interfaces.PaymentStateFailed
	switch pi.Status {
	case stripe.PaymentIntentStatusRequiresCapture:
		state = interfaces.PaymentStateRequiresCapture
	case stripe.PaymentIntentStatusSucceeded:
		state = interfaces.PaymentStateSucceeded
	case stripe.PaymentIntentStatusCanceled:
		state = interfaces.PaymentStateCancelled
	}
	return interfaces.GatewayPayment{ID: pi.ID, State: state, Amount: fromMinorUnits(pi.Amount)}
}
