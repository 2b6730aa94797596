package payments

import (
	"context"
	"fmt"
	"sync"

	"marketplace_trust/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SandboxGateway approves every request in process. It replays the stored
// result when an idempotency key is reused, like a real provider does.
type SandboxGateway struct {
	mu        sync.Mutex
	log       *zap.Logger
	payments  map[string]interfaces.GatewayPayment
	byKey     map[string]any
	customers map[string]string
	transfers []interfaces.GatewayTransfer
	refunds   []interfaces.GatewayRefund
}

var _ interfaces.IPaymentGateway = (*SandboxGateway)(nil)

func NewSandboxGateway(log *zap.Logger) *SandboxGateway {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("sandbox payment gateway enabled")
	return &SandboxGateway{
		log:       log,
		payments:  map[string]interfaces.GatewayPayment{},
		byKey:     map[string]any{},
		customers: map[string]string{},
	}
}

func (g *SandboxGateway) EnsureCustomer(_ context.Context, req interfaces.CustomerRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if req.ExistingID != "" {
		return req.ExistingID, nil
	}
	if id, ok := g.customers[req.UserID]; ok {
		return id, nil
	}
	id := "cus_sbx_" + uuid.NewString()[:8]
	g.customers[req.UserID] = id
	return id, nil
}

func (g *SandboxGateway) Authorize(_ context.Context, req interfaces.AuthorizeRequest) (interfaces.GatewayPayment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if prev, ok := g.byKey[req.IdempotencyKey].(interfaces.GatewayPayment); ok {
		return prev, nil
	}
	p := interfaces.GatewayPayment{
		ID:     "pi_sbx_" + uuid.NewString()[:8],
		State:  interfaces.PaymentStateRequiresCapture,
		Amount: req.Amount,
	}
	g.payments[p.ID] = p
	g.remember(req.IdempotencyKey, p)
	g.log.Debug("authorize", zap.String("payment_id", p.ID), zap.String("amount", req.Amount.String()))
	return p, nil
}

func (g *SandboxGateway) Capture(_ context.Context, paymentID, _ string) (interfaces.GatewayPayment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.payments[paymentID]
	if !ok {
		return interfaces.GatewayPayment{}, fmt.Errorf("sandbox: payment %s not found", paymentID)
	}
	if p.State == interfaces.PaymentStateCancelled {
		return interfaces.GatewayPayment{}, fmt.Errorf("sandbox: payment %s was voided", paymentID)
	}
	p.State = interfaces.PaymentStateSucceeded
	g.payments[paymentID] = p
	return p, nil
}

func (g *SandboxGateway) Void(_ context.Context, paymentID, _ string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.payments[paymentID]
	if !ok {
		return fmt.Errorf("sandbox: payment %s not found", paymentID)
	}
	p.State = interfaces.PaymentStateCancelled
	g.payments[paymentID] = p
	return nil
}

func (g *SandboxGateway) GetPayment(_ context.Context, paymentID string) (interfaces.GatewayPayment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.payments[paymentID]
	if !ok {
		return interfaces.GatewayPayment{}, fmt.Errorf("sandbox: payment %s not found", paymentID)
	}
	return p, nil
}

func (g *SandboxGateway) Transfer(_ context.Context, req interfaces.TransferRequest) (interfaces.GatewayTransfer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if prev, ok := g.byKey[req.IdempotencyKey].(interfaces.GatewayTransfer); ok {
		return prev, nil
	}
	t := interfaces.GatewayTransfer{ID: "tr_sbx_" + uuid.NewString()[:8], Amount: req.Amount}
	g.transfers = append(g.transfers, t)
	g.remember(req.IdempotencyKey, t)
	return t, nil
}

func (g *SandboxGateway) Refund(_ context.Context, req interfaces.RefundRequest) (interfaces.GatewayRefund, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if prev, ok := g.byKey[req.IdempotencyKey].(interfaces.GatewayRefund); ok {
		return prev, nil
	}
	if _, ok := g.payments[req.PaymentID]; !ok {
		return interfaces.GatewayRefund{}, fmt.Errorf("sandbox: payment %s not found", req.PaymentID)
	}
	r := interfaces.GatewayRefund{ID: "re_sbx_" + uuid.NewString()[:8], Amount: req.Amount, Status: interfaces.PaymentStateSucceeded}
	g.refunds = append(g.refunds, r)
	g.remember(req.IdempotencyKey, r)
	return r, nil
}

// TransferredTotal sums every distinct transfer made so far.
func (g *SandboxGateway) TransferredTotal() decimal.Decimal {
	g.mu.Lock()
	defer g.mu.Unlock()
	total := decimal.Zero
	for _, t := range g.transfers {
		total = total.Add(t.Amount)
	}
	return total
}

// RefundedTotal sums every distinct refund made so far.
func (g *SandboxGateway) RefundedTotal() decimal.Decimal {
	g.mu.Lock()
	defer g.mu.Unlock()
	total := decimal.Zero
	for _, r := range g.refunds {
		total = total.Add(r.Amount)
	}
	return total
}

func (g *SandboxGateway) Transfers() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.transfers)
}

func (g *SandboxGateway) remember(key string, v any) {
	if key != "" {
		g.byKey[key] = v
	}
}
