package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"marketplace_trust/internal/infrastructure/metrics"
	"marketplace_trust/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/customer"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoTransfersUnsupported = errors.New("mercado pago: transfers to payout accounts are not supported")
)

const providerMercadoPago = "mercadopago"

// MercadoPagoGateway authorizes with capture=false and captures or cancels
// afterwards. The SDK does not accept caller idempotency keys, so the key is
// sent as external_reference and looked up before creating a new payment.
type MercadoPagoGateway struct {
	payments  payment.Client
	refunds   refund.Client
	customers customer.Client
	log       *zap.Logger
	metrics   *metrics.Metrics
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, log *zap.Logger, m *metrics.Metrics) (*MercadoPagoGateway, error) {
	if strings.TrimSpace(accessToken) == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("mercado pago client initialized")

	return &MercadoPagoGateway{
		payments:  payment.NewClient(cfg),
		refunds:   refund.NewClient(cfg),
		customers: customer.NewClient(cfg),
		log:       log,
		metrics:   m,
	}, nil
}

func (g *MercadoPagoGateway) EnsureCustomer(ctx context.Context, req interfaces.CustomerRequest) (id string, err error) {
	if req.ExistingID != "" {
		return req.ExistingID, nil
	}
	ctx, c := startCall(ctx, g.metrics, providerMercadoPago, "customer_ensure", attribute.String("user_id", req.UserID))
	defer func() { c.end(err) }()

	found, err := g.customers.Search(ctx, customer.SearchRequest{
		Limit:   1,
		Filters: map[string]string{"email": req.Email},
	})
	if err != nil {
		return "", err
	}
	if found != nil && len(found.Results) > 0 {
		return found.Results[0].ID, nil
	}

	created, err := g.customers.Create(ctx, customer.Request{Email: req.Email, FirstName: req.Name})
	if err != nil {
		g.log.Warn("customer create failed", zap.String("user_id", req.UserID), zap.Error(err))
		return "", err
	}
	return created.ID, nil
}

func (g *MercadoPagoGateway) Authorize(ctx context.Context, req interfaces.AuthorizeRequest) (p interfaces.GatewayPayment, err error) {
	ctx, c := startCall(ctx, g.metrics, providerMercadoPago, "authorize", attribute.String("idempotency_key", req.IdempotencyKey))
	defer func() { c.end(err) }()

	if existing, ok, err := g.findByReference(ctx, req.IdempotencyKey); err != nil {
		return interfaces.GatewayPayment{}, err
	} else if ok {
		g.log.Info("authorize replayed", zap.String("payment_id", existing.ID))
		return existing, nil
	}

	metadata := make(map[string]any, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	resp, err := g.payments.Create(ctx, payment.Request{
		TransactionAmount: req.Amount.InexactFloat64(),
		PaymentMethodID:   req.PaymentMethod,
		Description:       req.Description,
		ExternalReference: req.IdempotencyKey,
		Capture:           false,
		Metadata:          metadata,
		Payer: &payment.PayerRequest{
			Type: "customer",
			ID:   req.CustomerID,
		},
	})
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	g.log.Info("authorize success", zap.Int("payment_id", resp.ID), zap.String("status", resp.Status))
	return fromMercadoPago(resp), nil
}

func (g *MercadoPagoGateway) Capture(ctx context.Context, paymentID, _ string) (p interfaces.GatewayPayment, err error) {
	ctx, c := startCall(ctx, g.metrics, providerMercadoPago, "capture", attribute.String("payment_id", paymentID))
	defer func() { c.end(err) }()

	id, err := parsePaymentID(paymentID)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	resp, err := g.payments.Capture(ctx, id)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	return fromMercadoPago(resp), nil
}

func (g *MercadoPagoGateway) Void(ctx context.Context, paymentID, _ string) (err error) {
	ctx, c := startCall(ctx, g.metrics, providerMercadoPago, "void", attribute.String("payment_id", paymentID))
	defer func() { c.end(err) }()

	id, err := parsePaymentID(paymentID)
	if err != nil {
		return err
	}
	_, err = g.payments.Cancel(ctx, id)
	return err
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (p interfaces.GatewayPayment, err error) {
	ctx, c := startCall(ctx, g.metrics, providerMercadoPago, "get_payment", attribute.String("payment_id", paymentID))
	defer func() { c.end(err) }()

	id, err := parsePaymentID(paymentID)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	return fromMercadoPago(resp), nil
}

// Transfer is not offered by the Mercado Pago API for escrow-style payouts.
func (g *MercadoPagoGateway) Transfer(_ context.Context, req interfaces.TransferRequest) (interfaces.GatewayTransfer, error) {
	g.log.Warn("transfer requested on mercado pago provider", zap.String("destination", req.Destination))
	return interfaces.GatewayTransfer{}, ErrMercadoPagoTransfersUnsupported
}

func (g *MercadoPagoGateway) Refund(ctx context.Context, req interfaces.RefundRequest) (r interfaces.GatewayRefund, err error) {
	ctx, c := startCall(ctx, g.metrics, providerMercadoPago, "refund", attribute.String("payment_id", req.PaymentID))
	defer func() { c.end(err) }()

	id, err := parsePaymentID(req.PaymentID)
	if err != nil {
		return interfaces.GatewayRefund{}, err
	}
	resp, err := g.refunds.CreatePartialRefund(ctx, id, req.Amount.InexactFloat64())
	if err != nil {
		return interfaces.GatewayRefund{}, err
	}
	return interfaces.GatewayRefund{
		ID:     strconv.Itoa(resp.ID),
		Amount: decimal.NewFromFloat(resp.Amount),
		Status: resp.Status,
	}, nil
}

func (g *MercadoPagoGateway) findByReference(ctx context.Context, reference string) (interfaces.GatewayPayment, bool, error) {
	if reference == "" {
		return interfaces.GatewayPayment{}, false, nil
	}
	out, err := g.payments.Search(ctx, payment.SearchRequest{
		Limit:   1,
		Filters: map[string]string{"external_reference": reference},
	})
	if err != nil {
		return interfaces.GatewayPayment{}, false, err
	}
	if out == nil || len(out.Results) == 0 {
		return interfaces.GatewayPayment{}, false, nil
	}
	return fromMercadoPago(&out.Results[0]), true, nil
}

func parsePaymentID(id string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return 0, fmt.Errorf("mercado pago: invalid payment id %q", id)
	}
	return n, nil
}

func fromMercadoPago(resp *payment.Response) interfaces.GatewayPayment {
	state := interfaces.PaymentStateFailed
	switch resp.Status {
	case "authorized":
		state = interfaces.PaymentStateRequiresCapture
	case "approved":
		state = interfaces.PaymentStateSucceeded
	case "cancelled":
		state = interfaces.PaymentStateCancelled
	}
	return interfaces.GatewayPayment{
		ID:     strconv.Itoa(resp.ID),
		State:  state,
		Amount: decimal.NewFromFloat(resp.TransactionAmount),
	}
}
