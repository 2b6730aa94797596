package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"marketplace_trust/internal/adapter/persistence/memory"
	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/infrastructure/payments"
	"marketplace_trust/internal/usecase/interfaces"
	mock_interfaces "marketplace_trust/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

type escrowFixture struct {
	repo    *memory.EscrowMemoryRepository
	dir     *memory.PlatformMemoryDirectory
	gateway *payments.SandboxGateway
	now     time.Time
	uc      *EscrowUseCase
}

func newEscrowFixture(t *testing.T, opts ...func(*EscrowDeps)) *escrowFixture {
	t.Helper()
	f := &escrowFixture{
		repo:    memory.NewEscrowMemoryRepository(),
		dir:     memory.NewPlatformMemoryDirectory(),
		gateway: payments.NewSandboxGateway(zap.NewNop()),
		now:     testNow,
	}
	f.dir.PutBooking(entities.Booking{ID: "booking-1", ClientID: "client-1", ProviderID: "provider-1", Status: "confirmed", Amount: decimal.NewFromInt(1000)})
	f.dir.PutProfile(entities.Profile{ID: "client-1", Email: "client@example.com", FullName: "Ana Client", Role: entities.RoleClient, TrustScore: 50})
	f.dir.PutProfile(entities.Profile{ID: "provider-1", Role: entities.RoleArtisan, PayoutAccountID: "acct_provider", TrustScore: 80})
	f.dir.PutProfile(entities.Profile{ID: "mod-1", Role: entities.RoleModerator})
	f.dir.PutProfile(entities.Profile{ID: "admin-1", Role: entities.RoleAdmin})
	f.dir.PutProfile(entities.Profile{ID: "stranger", Role: entities.RoleClient})

	d := EscrowDeps{Repo: f.repo, Directory: f.dir, Gateway: f.gateway, Clock: func() time.Time { return f.now }}
	for _, opt := range opts {
		opt(&d)
	}
	f.uc = NewEscrowUseCase(d)
	return f
}

// seed stores an escrow of 1000 for booking-1 directly in the given status.
// Funded statuses get a captured sandbox payment.
func (f *escrowFixture) seed(t *testing.T, id string, status entities.EscrowStatus, milestones ...entities.EscrowMilestone) entities.EscrowTransaction {
	t.Helper()
	ctx := context.Background()
	amount := decimal.NewFromInt(1000)
	rate := decimal.RequireFromString("0.05")
	e := entities.EscrowTransaction{
		ID:          id,
		BookingID:   "booking-1",
		ClientID:    "client-1",
		ProviderID:  "provider-1",
		Amount:      amount,
		FeeRate:     rate,
		PlatformFee: entities.PlatformFeeFor(amount, rate),
		Currency:    "EUR",
		Status:      status,
		CreatedAt:   f.now,
		UpdatedAt:   f.now,
	}
	if status != entities.EscrowStatusPending {
		p, err := f.gateway.Authorize(ctx, interfaces.AuthorizeRequest{Amount: e.ChargeAmount(), IdempotencyKey: "seed:" + id})
		if err != nil {
			t.Fatalf("seed authorize: %v", err)
		}
		if _, err := f.gateway.Capture(ctx, p.ID, ""); err != nil {
			t.Fatalf("seed capture: %v", err)
		}
		funded := f.now
		e.PaymentIntentID = p.ID
		e.FundedAt = &funded
	}
	if status == entities.EscrowStatusInspectionPeriod || status == entities.EscrowStatusWorkCompleted {
		deadline := f.now.Add(72 * time.Hour)
		e.InspectionDeadline = &deadline
	}
	for i := range milestones {
		milestones[i].EscrowID = id
		milestones[i].Sequence = i + 1
	}
	if err := f.repo.Create(ctx, e, milestones); err != nil {
		t.Fatalf("seed create: %v", err)
	}
	return e
}

type riskStub struct {
	assessment entities.FraudAssessment
	err        error
	calls      int
}

func (r *riskStub) CheckPayment(_ context.Context, _ entities.PaymentCheckInput) (entities.FraudAssessment, error) {
	r.calls++
	return r.assessment, r.err
}

func TestEscrowUseCase_CreateEscrow(t *testing.T) {
	ctx := context.Background()

	t.Run("missing booking id", func(t *testing.T) {
		f := newEscrowFixture(t)
		_, err := f.uc.CreateEscrow(ctx, CreateEscrowInput{BookingID: "  ", ClientID: "client-1", ProviderID: "provider-1", Amount: decimal.NewFromInt(1000)})
		if !failure.HasCode(err, failure.CodeValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("amount below minimum", func(t *testing.T) {
		f := newEscrowFixture(t)
		_, err := f.uc.CreateEscrow(ctx, CreateEscrowInput{BookingID: "booking-1", ClientID: "client-1", ProviderID: "provider-1", Amount: decimal.NewFromInt(499)})
		if !errors.Is(err, ErrAmountBelowMinimum) {
			t.Fatalf("expected ErrAmountBelowMinimum, got %v", err)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newEscrowFixture(t)
		_, err := f.uc.CreateEscrow(ctx, CreateEscrowInput{BookingID: "booking-x", ClientID: "client-1", ProviderID: "provider-1", Amount: decimal.NewFromInt(1000)})
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("parties do not match booking", func(t *testing.T) {
		f := newEscrowFixture(t)
		_, err := f.uc.CreateEscrow(ctx, CreateEscrowInput{BookingID: "booking-1", ClientID: "stranger", ProviderID: "provider-1", Amount: decimal.NewFromInt(1000)})
		if !failure.HasCode(err, failure.CodeUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("active escrow already exists", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusFunded)
		_, err := f.uc.CreateEscrow(ctx, CreateEscrowInput{BookingID: "booking-1", ClientID: "client-1", ProviderID: "provider-1", Amount: decimal.NewFromInt(1000)})
		if !errors.Is(err, ErrEscrowAlreadyExists) {
			t.Fatalf("expected ErrEscrowAlreadyExists, got %v", err)
		}
	})

	t.Run("cancelled escrow does not block a new one", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-old", entities.EscrowStatusCancelled)
		if _, err := f.uc.CreateEscrow(ctx, CreateEscrowInput{BookingID: "booking-1", ClientID: "client-1", ProviderID: "provider-1", Amount: decimal.NewFromInt(1000)}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("success with milestones", func(t *testing.T) {
		f := newEscrowFixture(t)
		res, err := f.uc.CreateEscrow(ctx, CreateEscrowInput{
			BookingID:   " booking-1 ",
			ClientID:    "client-1",
			ProviderID:  "provider-1",
			Amount:      decimal.NewFromInt(1000),
			Description: " kitchen tiles ",
			Milestones: []entities.MilestoneInput{
				{Title: "Demolition", Amount: decimal.NewFromInt(400)},
				{Title: "Tiling", Amount: decimal.NewFromInt(600)},
			},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		e := res.Escrow
		if e.ID == "" || e.BookingID != "booking-1" || e.Status != entities.EscrowStatusPending || e.Description != "kitchen tiles" {
			t.Fatalf("unexpected escrow: %+v", e)
		}
		if !e.PlatformFee.Equal(decimal.NewFromInt(50)) || !e.ChargeAmount().Equal(decimal.NewFromInt(1050)) {
			t.Fatalf("expected fee 50 and charge 1050, got %s and %s", e.PlatformFee, e.ChargeAmount())
		}
		if len(res.Milestones) != 2 || res.Milestones[0].Sequence != 1 || res.Milestones[1].Sequence != 2 {
			t.Fatalf("unexpected milestones: %+v", res.Milestones)
		}
		events, _ := f.repo.ListEvents(ctx, e.ID)
		if len(events) != 1 || events[0].Type != entities.EscrowEventCreated {
			t.Fatalf("expected escrow_created event, got %+v", events)
		}
	})

	t.Run("fee rounds to cents", func(t *testing.T) {
		f := newEscrowFixture(t)
		res, err := f.uc.CreateEscrow(ctx, CreateEscrowInput{BookingID: "booking-1", ClientID: "client-1", ProviderID: "provider-1", Amount: decimal.RequireFromString("999.99")})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Escrow.PlatformFee.Equal(decimal.RequireFromString("50")) {
			t.Fatalf("expected fee 50.00, got %s", res.Escrow.PlatformFee)
		}
	})
}

func TestEscrowUseCase_FullLifecycle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sched := mock_interfaces.NewMockIScheduler(ctrl)
	f := newEscrowFixture(t, func(d *EscrowDeps) { d.Scheduler = sched })

	created, err := f.uc.CreateEscrow(ctx, CreateEscrowInput{BookingID: "booking-1", ClientID: "client-1", ProviderID: "provider-1", Amount: decimal.NewFromInt(1000)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.Escrow.ID

	funded, err := f.uc.FundEscrow(ctx, FundEscrowInput{EscrowID: id, ClientID: "client-1", PaymentMethod: "pm_card_visa"})
	if err != nil {
		t.Fatalf("fund: %v", err)
	}
	if funded.Status != entities.EscrowStatusFunded || funded.FundedAt == nil || funded.PaymentIntentID == "" {
		t.Fatalf("unexpected funded escrow: %+v", funded)
	}
	payment, err := f.gateway.GetPayment(ctx, funded.PaymentIntentID)
	if err != nil {
		t.Fatalf("get payment: %v", err)
	}
	if payment.State != interfaces.PaymentStateSucceeded || !payment.Amount.Equal(decimal.NewFromInt(1050)) {
		t.Fatalf("expected captured charge of 1050, got %+v", payment)
	}
	client, _ := f.dir.GetProfile(ctx, "client-1")
	if client.PaymentCustomerID == "" || client.PaymentCustomerID != funded.PaymentCustomerID {
		t.Fatalf("expected customer id stored on profile, got %q", client.PaymentCustomerID)
	}

	if _, err := f.uc.MarkWorkStarted(ctx, id, "client-1"); !errors.Is(err, ErrNotEscrowProvider) {
		t.Fatalf("expected ErrNotEscrowProvider, got %v", err)
	}
	if _, err := f.uc.MarkWorkStarted(ctx, id, "provider-1"); err != nil {
		t.Fatalf("start: %v", err)
	}

	deadline := testNow.Add(72 * time.Hour)
	sched.EXPECT().ScheduleAt(gomock.Any(), deadline, entities.ScheduledJob{Kind: entities.JobEscrowAutoRelease, RefID: id}).Return(nil)
	completed, err := f.uc.MarkWorkCompleted(ctx, id, "provider-1", " all done ")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != entities.EscrowStatusInspectionPeriod || !completed.InspectionDeadline.Equal(deadline) || completed.CompletionNotes != "all done" {
		t.Fatalf("unexpected completed escrow: %+v", completed)
	}

	released, err := f.uc.ReleaseFunds(ctx, id, "client-1")
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if released.Status != entities.EscrowStatusReleased || !released.PayoutAmount.Equal(decimal.NewFromInt(950)) || released.ReleasedAt == nil {
		t.Fatalf("unexpected released escrow: %+v", released)
	}
	if !released.FeeRetained().Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected fee retained 50, got %s", released.FeeRetained())
	}
	if !f.gateway.TransferredTotal().Equal(decimal.NewFromInt(950)) {
		t.Fatalf("expected 950 transferred, got %s", f.gateway.TransferredTotal())
	}

	details, err := f.uc.GetEscrow(ctx, id, "provider-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(details.Releases) != 1 || details.Releases[0].Kind != entities.ReleaseKindRelease || details.Releases[0].ActorID != "client-1" {
		t.Fatalf("unexpected releases: %+v", details.Releases)
	}
	want := []entities.EscrowEventType{
		entities.EscrowEventCreated, entities.EscrowEventFunded, entities.EscrowEventWorkStarted,
		entities.EscrowEventWorkCompleted, entities.EscrowEventFundsReleased,
	}
	if len(details.Events) != len(want) {
		t.Fatalf("expected %d events, got %+v", len(want), details.Events)
	}
	for i, ev := range details.Events {
		if ev.Type != want[i] {
			t.Fatalf("event %d: expected %s, got %s", i, want[i], ev.Type)
		}
	}

	if _, err := f.uc.ReleaseFunds(ctx, id, "client-1"); !failure.HasCode(err, failure.CodeInvalidStateTransition) {
		t.Fatalf("expected invalid transition on second release, got %v", err)
	}
}

func TestEscrowUseCase_FundEscrow(t *testing.T) {
	ctx := context.Background()

	t.Run("not the client", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusPending)
		_, err := f.uc.FundEscrow(ctx, FundEscrowInput{EscrowID: "esc-1", ClientID: "provider-1", PaymentMethod: "pm"})
		if !errors.Is(err, ErrNotEscrowClient) {
			t.Fatalf("expected ErrNotEscrowClient, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusPending)
		_, err := f.uc.FundEscrow(ctx, FundEscrowInput{EscrowID: "esc-1", ClientID: "client-1"})
		if !errors.Is(err, ErrMissingPaymentMethod) {
			t.Fatalf("expected ErrMissingPaymentMethod, got %v", err)
		}
	})

	t.Run("already funded", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusFunded)
		_, err := f.uc.FundEscrow(ctx, FundEscrowInput{EscrowID: "esc-1", ClientID: "client-1", PaymentMethod: "pm"})
		if !failure.HasCode(err, failure.CodeInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("unknown escrow", func(t *testing.T) {
		f := newEscrowFixture(t)
		_, err := f.uc.FundEscrow(ctx, FundEscrowInput{EscrowID: "missing", ClientID: "client-1", PaymentMethod: "pm"})
		if !errors.Is(err, ErrEscrowNotFound) {
			t.Fatalf("expected ErrEscrowNotFound, got %v", err)
		}
	})

	t.Run("risk block stops funding before the gateway", func(t *testing.T) {
		risk := &riskStub{assessment: entities.NewFraudAssessment("client-1", entities.FraudCheckPayment,
			[]entities.FraudSignal{{Code: "high_transaction_velocity", Weight: 30}, {Code: "shared_device", Weight: 45}}, testNow)}
		f := newEscrowFixture(t, func(d *EscrowDeps) { d.Risk = risk })
		f.seed(t, "esc-1", entities.EscrowStatusPending)

		_, err := f.uc.FundEscrow(ctx, FundEscrowInput{EscrowID: "esc-1", ClientID: "client-1", PaymentMethod: "pm"})
		if !failure.HasCode(err, failure.CodeRiskBlocked) {
			t.Fatalf("expected risk blocked, got %v", err)
		}
		stored, _ := f.repo.GetByID(ctx, "esc-1")
		if stored.Status != entities.EscrowStatusPending || stored.PaymentIntentID != "" {
			t.Fatalf("expected untouched pending escrow, got %+v", stored)
		}
	})

	t.Run("risk engine unavailable does not block", func(t *testing.T) {
		risk := &riskStub{err: errors.New("history store down")}
		f := newEscrowFixture(t, func(d *EscrowDeps) { d.Risk = risk })
		f.seed(t, "esc-1", entities.EscrowStatusPending)

		funded, err := f.uc.FundEscrow(ctx, FundEscrowInput{EscrowID: "esc-1", ClientID: "client-1", PaymentMethod: "pm"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if funded.Status != entities.EscrowStatusFunded || risk.calls != 1 {
			t.Fatalf("expected funded after one risk call, got %s and %d calls", funded.Status, risk.calls)
		}
	})

	t.Run("flagged payment is funded and annotated", func(t *testing.T) {
		risk := &riskStub{assessment: entities.NewFraudAssessment("client-1", entities.FraudCheckPayment,
			[]entities.FraudSignal{{Code: "first_large_transaction", Weight: 20}, {Code: "shared_device", Weight: 35}}, testNow)}
		f := newEscrowFixture(t, func(d *EscrowDeps) { d.Risk = risk })
		f.seed(t, "esc-1", entities.EscrowStatusPending)

		if _, err := f.uc.FundEscrow(ctx, FundEscrowInput{EscrowID: "esc-1", ClientID: "client-1", PaymentMethod: "pm"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		events, _ := f.repo.ListEvents(ctx, "esc-1")
		last := events[len(events)-1]
		if last.Type != entities.EscrowEventFunded || last.Metadata["risk_level"] != string(entities.RiskLevelHigh) || last.Metadata["requires_manual_review"] != "true" {
			t.Fatalf("unexpected funded event: %+v", last)
		}
	})

	t.Run("capture failure voids the authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		f := newEscrowFixture(t, func(d *EscrowDeps) { d.Gateway = gw })
		f.seed(t, "esc-1", entities.EscrowStatusPending)

		gw.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CustomerRequest) (string, error) {
				if req.UserID != "client-1" || req.Email != "client@example.com" || req.ExistingID != "" {
					t.Fatalf("unexpected customer request: %+v", req)
				}
				return "cus_1", nil
			},
		)
		gw.EXPECT().Authorize(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.AuthorizeRequest) (interfaces.GatewayPayment, error) {
				if !req.Amount.Equal(decimal.NewFromInt(1050)) || req.IdempotencyKey != "escrow:esc-1:authorize-1" || req.CustomerID != "cus_1" {
					t.Fatalf("unexpected authorize request: %+v", req)
				}
				return interfaces.GatewayPayment{ID: "pi_1", State: interfaces.PaymentStateRequiresCapture}, nil
			},
		)
		gw.EXPECT().Capture(gomock.Any(), "pi_1", "escrow:esc-1:capture-1").Return(interfaces.GatewayPayment{}, errors.New("card_declined"))
		gw.EXPECT().Void(gomock.Any(), "pi_1", "escrow:esc-1:void-1").Return(nil)

		_, err := f.uc.FundEscrow(ctx, FundEscrowInput{EscrowID: "esc-1", ClientID: "client-1", PaymentMethod: "pm"})
		if !failure.HasCode(err, failure.CodeExternalGateway) {
			t.Fatalf("expected gateway error, got %v", err)
		}
		stored, _ := f.repo.GetByID(ctx, "esc-1")
		if stored.Status != entities.EscrowStatusPending || stored.PaymentIntentID != "" || stored.FundingAttempt != 1 {
			t.Fatalf("expected pending escrow with the voided attempt cleared, got %+v", stored)
		}
		client, _ := f.dir.GetProfile(ctx, "client-1")
		if client.PaymentCustomerID != "cus_1" {
			t.Fatalf("expected customer id stored, got %q", client.PaymentCustomerID)
		}
	})

	t.Run("declined authorization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		f := newEscrowFixture(t, func(d *EscrowDeps) { d.Gateway = gw })
		f.seed(t, "esc-1", entities.EscrowStatusPending)

		gw.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return("cus_1", nil)
		gw.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(interfaces.GatewayPayment{ID: "pi_1", State: interfaces.PaymentStateFailed}, nil)

		_, err := f.uc.FundEscrow(ctx, FundEscrowInput{EscrowID: "esc-1", ClientID: "client-1", PaymentMethod: "pm"})
		if !errors.Is(err, ErrAuthorizationDeclined) {
			t.Fatalf("expected ErrAuthorizationDeclined, got %v", err)
		}
	})

	t.Run("retry after a failed capture starts a new attempt", func(t *testing.T) {
		sandbox := payments.NewSandboxGateway(zap.NewNop())
		gw := &flakyCaptureGateway{SandboxGateway: sandbox, failures: 1}
		f := newEscrowFixture(t, func(d *EscrowDeps) { d.Gateway = gw })
		f.seed(t, "esc-1", entities.EscrowStatusPending)
		in := FundEscrowInput{EscrowID: "esc-1", ClientID: "client-1", PaymentMethod: "pm"}

		if _, err := f.uc.FundEscrow(ctx, in); !failure.HasCode(err, failure.CodeExternalGateway) {
			t.Fatalf("expected gateway error, got %v", err)
		}
		funded, err := f.uc.FundEscrow(ctx, in)
		if err != nil {
			t.Fatalf("retry: %v", err)
		}
		if funded.Status != entities.EscrowStatusFunded || funded.FundingAttempt != 2 {
			t.Fatalf("unexpected escrow: %+v", funded)
		}
		if len(gw.captured) != 2 || gw.captured[0] == gw.captured[1] || funded.PaymentIntentID != gw.captured[1] {
			t.Fatalf("expected a fresh authorization on retry, captured %v, escrow has %s", gw.captured, funded.PaymentIntentID)
		}
		first, _ := sandbox.GetPayment(ctx, gw.captured[0])
		if first.State != interfaces.PaymentStateCancelled {
			t.Fatalf("expected first authorization voided, got %s", first.State)
		}
	})
}

// flakyCaptureGateway fails the next failures captures.
type flakyCaptureGateway struct {
	*payments.SandboxGateway
	failures int
	captured []string
}

func (g *flakyCaptureGateway) Capture(ctx context.Context, paymentID, key string) (interfaces.GatewayPayment, error) {
	g.captured = append(g.captured, paymentID)
	if g.failures > 0 {
		g.failures--
		return interfaces.GatewayPayment{}, errors.New("processing_error")
	}
	return g.SandboxGateway.Capture(ctx, paymentID, key)
}

func TestEscrowUseCase_ReconcileEscrow(t *testing.T) {
	ctx := context.Background()
	f := newEscrowFixture(t)
	e := f.seed(t, "esc-1", entities.EscrowStatusPending)

	p, err := f.gateway.Authorize(ctx, interfaces.AuthorizeRequest{Amount: e.ChargeAmount(), IdempotencyKey: "escrow:esc-1:authorize-1"})
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	e.PaymentIntentID = p.ID
	e.FundingAttempt = 1
	if _, err := f.repo.UpdateStatus(ctx, e, entities.EscrowStatusPending); err != nil {
		t.Fatalf("store payment id: %v", err)
	}

	if _, err := f.uc.ReconcileEscrow(ctx, "esc-1", "stranger"); !failure.HasCode(err, failure.CodeUnauthorized) {
		t.Fatalf("expected stranger to be refused, got %v", err)
	}
	if _, err := f.uc.ReconcileEscrow(ctx, "esc-1", "provider-1"); !failure.HasCode(err, failure.CodeUnauthorized) {
		t.Fatalf("expected provider to be refused, got %v", err)
	}
	pending, _ := f.repo.GetByID(ctx, "esc-1")
	if pending.Status != entities.EscrowStatusPending {
		t.Fatalf("refused reconcile moved the escrow to %s", pending.Status)
	}

	funded, err := f.uc.ReconcileEscrow(ctx, "esc-1", "client-1")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if funded.Status != entities.EscrowStatusFunded {
		t.Fatalf("expected funded, got %s", funded.Status)
	}
	captured, _ := f.gateway.GetPayment(ctx, p.ID)
	if captured.State != interfaces.PaymentStateSucceeded {
		t.Fatalf("expected captured payment, got %s", captured.State)
	}

	again, err := f.uc.ReconcileEscrow(ctx, "esc-1", "admin-1")
	if err != nil || again.Status != entities.EscrowStatusFunded {
		t.Fatalf("expected no-op on funded escrow, got %+v, %v", again, err)
	}
}

func TestEscrowUseCase_AutoRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("before the deadline is a no-op", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusInspectionPeriod)
		f.now = f.now.Add(71 * time.Hour)

		e, err := f.uc.AutoRelease(ctx, "esc-1")
		if err != nil || e.Status != entities.EscrowStatusInspectionPeriod {
			t.Fatalf("expected untouched escrow, got %+v, %v", e, err)
		}
		if f.gateway.Transfers() != 0 {
			t.Fatalf("expected no transfer")
		}
	})

	t.Run("after the deadline releases as system", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusInspectionPeriod)
		f.now = f.now.Add(72 * time.Hour)

		e, err := f.uc.AutoRelease(ctx, "esc-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if e.Status != entities.EscrowStatusReleased || !e.PayoutAmount.Equal(decimal.NewFromInt(950)) {
			t.Fatalf("unexpected escrow: %+v", e)
		}
		releases, _ := f.repo.ListReleases(ctx, "esc-1")
		if len(releases) != 1 || releases[0].ActorID != entities.SystemActorID {
			t.Fatalf("expected one system release, got %+v", releases)
		}
	})

	t.Run("redelivery after settlement logs a single skip", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusDisputed)
		f.now = f.now.Add(96 * time.Hour)

		for i := 0; i < 3; i++ {
			e, err := f.uc.AutoRelease(ctx, "esc-1")
			if err != nil || e.Status != entities.EscrowStatusDisputed {
				t.Fatalf("delivery %d: expected no-op, got %+v, %v", i, e, err)
			}
		}
		events, _ := f.repo.ListEvents(ctx, "esc-1")
		skipped := 0
		for _, ev := range events {
			if ev.Type == entities.EscrowEventAutoReleaseSkipped {
				skipped++
			}
		}
		if skipped != 1 {
			t.Fatalf("expected one auto_release_skipped event, got %d", skipped)
		}
		if f.gateway.Transfers() != 0 {
			t.Fatalf("expected no transfer")
		}
	})
}

func TestEscrowUseCase_ReleaseRacesAutoRelease(t *testing.T) {
	ctx := context.Background()
	f := newEscrowFixture(t)
	e := f.seed(t, "esc-race", entities.EscrowStatusInspectionPeriod)
	f.now = f.now.Add(73 * time.Hour)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = f.uc.ReleaseFunds(ctx, e.ID, "client-1")
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = f.uc.AutoRelease(ctx, e.ID)
	}()
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case failure.HasCode(err, failure.CodeConcurrencyConflict),
			failure.HasCode(err, failure.CodeConflict),
			failure.HasCode(err, failure.CodeInvalidStateTransition):
		default:
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if succeeded == 0 {
		t.Fatalf("expected a winner, got %v", errs)
	}
	if f.gateway.Transfers() != 1 || !f.gateway.TransferredTotal().Equal(decimal.NewFromInt(950)) {
		t.Fatalf("expected a single transfer of 950, got %d totalling %s", f.gateway.Transfers(), f.gateway.TransferredTotal())
	}
	releases, _ := f.repo.ListReleases(ctx, e.ID)
	if len(releases) != 1 {
		t.Fatalf("expected a single release record, got %d", len(releases))
	}
	stored, _ := f.repo.GetByID(ctx, e.ID)
	if stored.Status != entities.EscrowStatusReleased || stored.SettlingTo != "" || stored.TransferID == "" {
		t.Fatalf("unexpected stored escrow: %+v", stored)
	}
}

// hookGateway runs beforeTransfer once, ahead of the first transfer.
type hookGateway struct {
	*payments.SandboxGateway
	beforeTransfer func()
}

func (g *hookGateway) Transfer(ctx context.Context, req interfaces.TransferRequest) (interfaces.GatewayTransfer, error) {
	if hook := g.beforeTransfer; hook != nil {
		g.beforeTransfer = nil
		hook()
	}
	return g.SandboxGateway.Transfer(ctx, req)
}

// hookDirectory runs beforeProfile once, ahead of the first lookup of id.
type hookDirectory struct {
	*memory.PlatformMemoryDirectory
	id            string
	beforeProfile func()
}

func (d *hookDirectory) GetProfile(ctx context.Context, id string) (entities.Profile, error) {
	if hook := d.beforeProfile; hook != nil && id == d.id {
		d.beforeProfile = nil
		hook()
	}
	return d.PlatformMemoryDirectory.GetProfile(ctx, id)
}

func TestEscrowUseCase_DisputeDuringAutoRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("dispute while the payout is in flight is refused", func(t *testing.T) {
		gw := &hookGateway{SandboxGateway: payments.NewSandboxGateway(zap.NewNop())}
		f := newEscrowFixture(t, func(d *EscrowDeps) { d.Gateway = gw })
		f.seed(t, "esc-1", entities.EscrowStatusInspectionPeriod)
		f.now = f.now.Add(73 * time.Hour)

		var disputeErr error
		gw.beforeTransfer = func() {
			_, disputeErr = f.uc.DisputeEscrow(ctx, "esc-1", "client-1", "tiles cracked")
		}
		released, err := f.uc.AutoRelease(ctx, "esc-1")
		if err != nil {
			t.Fatalf("auto release: %v", err)
		}
		if !errors.Is(disputeErr, ErrSettlementInProgress) {
			t.Fatalf("expected dispute to be refused while settling, got %v", disputeErr)
		}
		if released.Status != entities.EscrowStatusReleased || !gw.TransferredTotal().Equal(decimal.NewFromInt(950)) {
			t.Fatalf("unexpected outcome: %+v, transferred %s", released, gw.TransferredTotal())
		}
	})

	t.Run("dispute landing first leaves the money in escrow", func(t *testing.T) {
		var uc *EscrowUseCase
		var disputeErr error
		f := newEscrowFixture(t, func(d *EscrowDeps) {
			dir := d.Directory.(*memory.PlatformMemoryDirectory)
			d.Directory = &hookDirectory{PlatformMemoryDirectory: dir, id: "provider-1", beforeProfile: func() {
				_, disputeErr = uc.DisputeEscrow(ctx, "esc-1", "client-1", "tiles cracked")
			}}
		})
		uc = f.uc
		f.seed(t, "esc-1", entities.EscrowStatusInspectionPeriod)
		f.now = f.now.Add(73 * time.Hour)

		if _, err := f.uc.AutoRelease(ctx, "esc-1"); !failure.HasCode(err, failure.CodeConcurrencyConflict) {
			t.Fatalf("expected auto release to lose the claim, got %v", err)
		}
		if disputeErr != nil {
			t.Fatalf("dispute: %v", disputeErr)
		}
		if f.gateway.Transfers() != 0 {
			t.Fatalf("expected no money moved, got %s", f.gateway.TransferredTotal())
		}

		settled, err := f.uc.RefundEscrow(ctx, RefundEscrowInput{EscrowID: "esc-1", Amount: decimal.NewFromInt(300), Reason: "partial", ActorID: "mod-1"})
		if err != nil {
			t.Fatalf("refund: %v", err)
		}
		if !f.gateway.TransferredTotal().Equal(decimal.NewFromInt(650)) || !f.gateway.RefundedTotal().Equal(decimal.NewFromInt(300)) {
			t.Fatalf("expected 650 paid and 300 refunded, got %s and %s", f.gateway.TransferredTotal(), f.gateway.RefundedTotal())
		}
		ledger := settled.PayoutAmount.Add(settled.FeeRetained()).Add(settled.RefundedAmount)
		if !ledger.Equal(settled.Amount) {
			t.Fatalf("ledger does not balance: %+v", settled)
		}
	})
}

func TestEscrowUseCase_ReleaseAfterMilestonePayout(t *testing.T) {
	ctx := context.Background()
	f := newEscrowFixture(t)
	f.seed(t, "esc-1", entities.EscrowStatusWorkStarted, milestoneSeed()...)

	if _, err := f.uc.CompleteMilestone(ctx, "ms-1", "provider-1"); err != nil {
		t.Fatalf("complete milestone: %v", err)
	}
	if _, err := f.uc.ApproveMilestone(ctx, "ms-1", "client-1"); err != nil {
		t.Fatalf("approve milestone: %v", err)
	}
	if _, err := f.uc.MarkWorkCompleted(ctx, "esc-1", "provider-1", "done"); err != nil {
		t.Fatalf("complete work: %v", err)
	}
	released, err := f.uc.ReleaseFunds(ctx, "esc-1", "client-1")
	if err != nil {
		t.Fatalf("release: %v", err)
	}

	if !f.gateway.TransferredTotal().Equal(decimal.NewFromInt(950)) {
		t.Fatalf("expected 950 paid out in total, got %s", f.gateway.TransferredTotal())
	}
	if !released.PayoutAmount.Equal(decimal.NewFromInt(950)) || !released.FeeRetained().Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected escrow totals: payout %s fee %s", released.PayoutAmount, released.FeeRetained())
	}
	releases, _ := f.repo.ListReleases(ctx, "esc-1")
	if len(releases) != 2 || !releases[1].Amount.Equal(decimal.NewFromInt(570)) {
		t.Fatalf("expected the final release to pay the remaining 570, got %+v", releases)
	}
}

func TestEscrowUseCase_RefundEscrow(t *testing.T) {
	ctx := context.Background()

	t.Run("full refund", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusFunded)

		e, err := f.uc.RefundEscrow(ctx, RefundEscrowInput{EscrowID: "esc-1", Amount: decimal.NewFromInt(1000), Reason: "booking cancelled", ActorID: "provider-1"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if e.Status != entities.EscrowStatusRefunded || !e.PayoutAmount.IsZero() || !e.RefundedAmount.Equal(decimal.NewFromInt(1000)) {
			t.Fatalf("unexpected escrow: %+v", e)
		}
		if !f.gateway.RefundedTotal().Equal(decimal.NewFromInt(1000)) || f.gateway.Transfers() != 0 {
			t.Fatalf("expected refund of 1000 and no transfer")
		}
	})

	t.Run("partial refund of a disputed escrow", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusDisputed)

		e, err := f.uc.RefundEscrow(ctx, RefundEscrowInput{EscrowID: "esc-1", Amount: decimal.NewFromInt(300), Reason: "partial", ActorID: "mod-1"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if e.Status != entities.EscrowStatusReleased || !e.PayoutAmount.Equal(decimal.NewFromInt(650)) {
			t.Fatalf("unexpected escrow: %+v", e)
		}
		ledger := e.PayoutAmount.Add(e.FeeRetained()).Add(e.RefundedAmount)
		if !ledger.Equal(e.Amount) || !e.FeeRetained().Equal(decimal.NewFromInt(50)) {
			t.Fatalf("ledger does not balance: payout %s fee %s refund %s", e.PayoutAmount, e.FeeRetained(), e.RefundedAmount)
		}
		releases, _ := f.repo.ListReleases(ctx, "esc-1")
		if len(releases) != 2 || releases[0].Kind != entities.ReleaseKindRefund || releases[1].Kind != entities.ReleaseKindRelease {
			t.Fatalf("unexpected releases: %+v", releases)
		}
	})

	t.Run("refund above amount", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusFunded)
		_, err := f.uc.RefundEscrow(ctx, RefundEscrowInput{EscrowID: "esc-1", Amount: decimal.NewFromInt(1001), ActorID: "admin-1"})
		if !errors.Is(err, ErrRefundExceedsAmount) {
			t.Fatalf("expected ErrRefundExceedsAmount, got %v", err)
		}
	})

	t.Run("zero refund", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusFunded)
		_, err := f.uc.RefundEscrow(ctx, RefundEscrowInput{EscrowID: "esc-1", Amount: decimal.Zero, ActorID: "admin-1"})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("stranger may not refund", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusFunded)
		_, err := f.uc.RefundEscrow(ctx, RefundEscrowInput{EscrowID: "esc-1", Amount: decimal.NewFromInt(100), ActorID: "stranger"})
		if !failure.HasCode(err, failure.CodeUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("client may not refund themselves", func(t *testing.T) {
		for _, status := range []entities.EscrowStatus{entities.EscrowStatusFunded, entities.EscrowStatusWorkStarted} {
			f := newEscrowFixture(t)
			f.seed(t, "esc-1", status)
			_, err := f.uc.RefundEscrow(ctx, RefundEscrowInput{EscrowID: "esc-1", Amount: decimal.NewFromInt(1000), ActorID: "client-1"})
			if !failure.HasCode(err, failure.CodeUnauthorized) {
				t.Fatalf("%s: expected unauthorized, got %v", status, err)
			}
			if !f.gateway.RefundedTotal().IsZero() {
				t.Fatalf("%s: expected no refund", status)
			}
		}
	})

	t.Run("system actor needs an in-process call", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusFunded)
		in := RefundEscrowInput{EscrowID: "esc-1", Amount: decimal.NewFromInt(1000), ActorID: entities.SystemActorID}
		if _, err := f.uc.RefundEscrow(ctx, in); !failure.HasCode(err, failure.CodeUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
		e, err := f.uc.RefundEscrow(AsSystem(ctx), in)
		if err != nil || e.Status != entities.EscrowStatusRefunded {
			t.Fatalf("expected system refund, got %+v, %v", e, err)
		}
	})

	t.Run("inspection period cannot be refunded directly", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusInspectionPeriod)
		_, err := f.uc.RefundEscrow(ctx, RefundEscrowInput{EscrowID: "esc-1", Amount: decimal.NewFromInt(100), ActorID: "admin-1"})
		if !failure.HasCode(err, failure.CodeInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("provider without payout account", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.dir.PutProfile(entities.Profile{ID: "provider-1", Role: entities.RoleArtisan})
		f.seed(t, "esc-1", entities.EscrowStatusDisputed)
		_, err := f.uc.RefundEscrow(ctx, RefundEscrowInput{EscrowID: "esc-1", Amount: decimal.NewFromInt(100), ActorID: "mod-1"})
		if !errors.Is(err, ErrMissingPayoutAccount) {
			t.Fatalf("expected ErrMissingPayoutAccount, got %v", err)
		}
		if !f.gateway.RefundedTotal().IsZero() {
			t.Fatalf("expected no money moved")
		}
	})
}

func TestEscrowUseCase_DisputeAndReleaseDisputed(t *testing.T) {
	ctx := context.Background()
	f := newEscrowFixture(t)
	f.seed(t, "esc-1", entities.EscrowStatusWorkStarted)

	if _, err := f.uc.DisputeEscrow(ctx, "esc-1", "provider-1", "no"); !errors.Is(err, ErrNotEscrowClient) {
		t.Fatalf("expected ErrNotEscrowClient, got %v", err)
	}
	disputed, err := f.uc.DisputeEscrow(ctx, "esc-1", "client-1", " tiles cracked ")
	if err != nil {
		t.Fatalf("dispute: %v", err)
	}
	if disputed.Status != entities.EscrowStatusDisputed || disputed.DisputeReason != "tiles cracked" {
		t.Fatalf("unexpected escrow: %+v", disputed)
	}
	again, err := f.uc.DisputeEscrow(ctx, "esc-1", "client-1", "again")
	if err != nil || again.DisputeReason != "tiles cracked" {
		t.Fatalf("expected idempotent dispute, got %+v, %v", again, err)
	}

	if _, err := f.uc.ReleaseDisputedFunds(ctx, "esc-1", "client-1", "fine"); !failure.HasCode(err, failure.CodeUnauthorized) {
		t.Fatalf("expected parties to be refused, got %v", err)
	}
	released, err := f.uc.ReleaseDisputedFunds(ctx, "esc-1", "admin-1", "work accepted")
	if err != nil {
		t.Fatalf("release disputed: %v", err)
	}
	if released.Status != entities.EscrowStatusReleased || !released.PayoutAmount.Equal(decimal.NewFromInt(950)) {
		t.Fatalf("unexpected escrow: %+v", released)
	}
}

func TestEscrowUseCase_CancelEscrow(t *testing.T) {
	ctx := context.Background()

	t.Run("pending escrow", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusPending)
		e, err := f.uc.CancelEscrow(ctx, "esc-1", "client-1")
		if err != nil || e.Status != entities.EscrowStatusCancelled || e.CancelledAt == nil {
			t.Fatalf("expected cancelled escrow, got %+v, %v", e, err)
		}
	})

	t.Run("funded escrow must be refunded instead", func(t *testing.T) {
		f := newEscrowFixture(t)
		f.seed(t, "esc-1", entities.EscrowStatusFunded)
		_, err := f.uc.CancelEscrow(ctx, "esc-1", "client-1")
		if !failure.HasCode(err, failure.CodeInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})
}

func TestEscrowUseCase_Queries(t *testing.T) {
	ctx := context.Background()
	f := newEscrowFixture(t)
	f.seed(t, "esc-1", entities.EscrowStatusFunded)

	if _, err := f.uc.GetEscrow(ctx, "esc-1", "stranger"); !errors.Is(err, ErrNotEscrowParty) {
		t.Fatalf("expected ErrNotEscrowParty, got %v", err)
	}
	if _, err := f.uc.GetEscrow(ctx, "esc-1", "mod-1"); err != nil {
		t.Fatalf("expected moderator access, got %v", err)
	}
	if _, err := f.uc.GetEscrowByBooking(ctx, "booking-x"); !errors.Is(err, ErrEscrowNotFound) {
		t.Fatalf("expected ErrEscrowNotFound, got %v", err)
	}
	byBooking, err := f.uc.GetEscrowByBooking(ctx, "booking-1")
	if err != nil || byBooking.ID != "esc-1" {
		t.Fatalf("unexpected escrow by booking: %+v, %v", byBooking, err)
	}

	asClient, err := f.uc.ListUserEscrows(ctx, "client-1", entities.RoleClient)
	if err != nil || len(asClient) != 1 {
		t.Fatalf("expected one client escrow, got %d, %v", len(asClient), err)
	}
	asProvider, err := f.uc.ListUserEscrows(ctx, "provider-1", entities.RoleArtisan)
	if err != nil || len(asProvider) != 1 {
		t.Fatalf("expected one provider escrow, got %d, %v", len(asProvider), err)
	}
	if _, err := f.uc.ListUserEscrows(ctx, "client-1", entities.RoleAdmin); !failure.HasCode(err, failure.CodeValidation) {
		t.Fatalf("expected validation error for role, got %v", err)
	}
}
