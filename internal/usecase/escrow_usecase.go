package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/infrastructure/metrics"
	"marketplace_trust/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEscrowNotFound        = failure.NotFound("escrow not found")
	ErrMilestoneNotFound     = failure.NotFound("milestone not found")
	ErrBookingNotFound       = failure.NotFound("booking not found")
	ErrAmountBelowMinimum    = failure.Validation("amount below minimum")
	ErrInvalidAmount         = failure.Validation("amount must be positive")
	ErrRefundExceedsAmount   = failure.Validation("refund exceeds funds held in escrow")
	ErrMilestoneExceedsFunds = failure.Validation("milestone exceeds funds held in escrow")
	ErrMissingPayoutAccount  = failure.Validation("provider has no payout account")
	ErrMissingPaymentMethod  = failure.Validation("payment method is required")
	ErrNotEscrowClient       = failure.Unauthorized("actor is not the escrow client")
	ErrNotEscrowProvider     = failure.Unauthorized("actor is not the escrow provider")
	ErrNotEscrowParty        = failure.Unauthorized("actor is not a party to the escrow")
	ErrEscrowAlreadyExists   = failure.Conflict("booking already has an active escrow")
	ErrAuthorizationDeclined = failure.New(failure.CodeExternalGateway, "payment authorization declined")
	ErrEscrowNotFunded       = failure.New(failure.CodeInvalidStateTransition, "escrow has no captured payment")
	ErrSettlementInProgress  = failure.Conflict("escrow settlement in progress")
)

// EscrowSettings are read once at construction. Fees already computed on
// existing escrows never change when these do.
type EscrowSettings struct {
	FeeRate          decimal.Decimal
	MinimumAmount    decimal.Decimal
	InspectionPeriod time.Duration
	Currency         string
}

func DefaultEscrowSettings() EscrowSettings {
	return EscrowSettings{
		FeeRate:          decimal.RequireFromString("0.05"),
		MinimumAmount:    decimal.NewFromInt(500),
		InspectionPeriod: 3 * 24 * time.Hour,
		Currency:         "EUR",
	}
}

// IPaymentRiskCheck scores a funding attempt before money moves.
type IPaymentRiskCheck interface {
	CheckPayment(ctx context.Context, in entities.PaymentCheckInput) (entities.FraudAssessment, error)
}

type CreateEscrowInput struct {
	BookingID   string
	ClientID    string
	ProviderID  string
	Amount      decimal.Decimal
	Description string
	Milestones  []entities.MilestoneInput
}

type FundEscrowInput struct {
	EscrowID          string
	ClientID          string
	PaymentMethod     string
	IPAddress         string
	DeviceFingerprint string
	BillingAddress    string
	ShippingAddress   string
}

type RefundEscrowInput struct {
	EscrowID string
	Amount   decimal.Decimal
	Reason   string
	ActorID  string
}

// IEscrowUseCase owns the custody lifecycle of booking funds.
type IEscrowUseCase interface {
	CreateEscrow(ctx context.Context, in CreateEscrowInput) (entities.EscrowDetails, error)
	FundEscrow(ctx context.Context, in FundEscrowInput) (entities.EscrowTransaction, error)
	ReconcileEscrow(ctx context.Context, escrowID, actorID string) (entities.EscrowTransaction, error)
	MarkWorkStarted(ctx context.Context, escrowID, providerID string) (entities.EscrowTransaction, error)
	MarkWorkCompleted(ctx context.Context, escrowID, providerID, notes string) (entities.EscrowTransaction, error)
	ReleaseFunds(ctx context.Context, escrowID, clientID string) (entities.EscrowTransaction, error)
	AutoRelease(ctx context.Context, escrowID string) (entities.EscrowTransaction, error)
	DisputeEscrow(ctx context.Context, escrowID, clientID, reason string) (entities.EscrowTransaction, error)
	RefundEscrow(ctx context.Context, in RefundEscrowInput) (entities.EscrowTransaction, error)
	ReleaseDisputedFunds(ctx context.Context, escrowID, actorID, reason string) (entities.EscrowTransaction, error)
	CancelEscrow(ctx context.Context, escrowID, clientID string) (entities.EscrowTransaction, error)

	CompleteMilestone(ctx context.Context, milestoneID, providerID string) (entities.EscrowMilestone, error)
	ApproveMilestone(ctx context.Context, milestoneID, clientID string) (entities.EscrowMilestone, error)
	RefundMilestone(ctx context.Context, milestoneID, actorID, reason string) (entities.EscrowMilestone, error)

	GetEscrow(ctx context.Context, escrowID, userID string) (entities.EscrowDetails, error)
	GetEscrowByBooking(ctx context.Context, bookingID string) (entities.EscrowTransaction, error)
	ListUserEscrows(ctx context.Context, userID string, role entities.Role) ([]entities.EscrowTransaction, error)
}

// EscrowDeps wires the escrow use case. Risk, Notifier, Logger, Metrics and
// Clock are optional.
type EscrowDeps struct {
	Repo      interfaces.IEscrowRepository
	Directory interfaces.IPlatformDirectory
	Gateway   interfaces.IPaymentGateway
	Notifier  interfaces.INotifier
	Scheduler interfaces.IScheduler
	Risk      IPaymentRiskCheck
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Clock     Clock
	Settings  EscrowSettings
}

type EscrowUseCase struct {
	repo      interfaces.IEscrowRepository
	directory interfaces.IPlatformDirectory
	gateway   interfaces.IPaymentGateway
	scheduler interfaces.IScheduler
	risk      IPaymentRiskCheck
	notify    notifier
	log       *zap.Logger
	metrics   *metrics.Metrics
	now       Clock
	settings  EscrowSettings
}

var _ IEscrowUseCase = (*EscrowUseCase)(nil)

func NewEscrowUseCase(d EscrowDeps) *EscrowUseCase {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("escrow.usecase")
	now := d.Clock
	if now == nil {
		now = systemClock
	}
	settings := d.Settings
	if settings.FeeRate.IsZero() && settings.MinimumAmount.IsZero() {
		settings = DefaultEscrowSettings()
	}
	return &EscrowUseCase{
		repo:      d.Repo,
		directory: d.Directory,
		gateway:   d.Gateway,
		scheduler: d.Scheduler,
		risk:      d.Risk,
		notify:    notifier{sink: d.Notifier, log: log, metrics: d.Metrics},
		log:       log,
		metrics:   d.Metrics,
		now:       now,
		settings:  settings,
	}
}

func (u *EscrowUseCase) CreateEscrow(ctx context.Context, in CreateEscrowInput) (entities.EscrowDetails, error) {
	bookingID, err := requireID(in.BookingID, "booking_id")
	if err != nil {
		return entities.EscrowDetails{}, err
	}
	clientID, err := requireID(in.ClientID, "client_id")
	if err != nil {
		return entities.EscrowDetails{}, err
	}
	providerID, err := requireID(in.ProviderID, "provider_id")
	if err != nil {
		return entities.EscrowDetails{}, err
	}
	if in.Amount.LessThan(u.settings.MinimumAmount) {
		u.log.Info("create rejected: amount below minimum", zap.String("booking_id", bookingID), zap.String("amount", in.Amount.String()))
		return entities.EscrowDetails{}, ErrAmountBelowMinimum
	}
	for _, m := range in.Milestones {
		if !m.Amount.IsPositive() {
			return entities.EscrowDetails{}, failure.Validation("milestone amount must be positive")
		}
	}

	if u.directory != nil {
		booking, err := u.directory.GetBooking(ctx, bookingID)
		if err != nil {
			return entities.EscrowDetails{}, err
		}
		if booking.ID == "" {
			return entities.EscrowDetails{}, ErrBookingNotFound
		}
		if booking.ClientID != clientID || booking.ProviderID != providerID {
			return entities.EscrowDetails{}, failure.Unauthorized("client and provider do not match the booking")
		}
	}
	existing, err := u.repo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return entities.EscrowDetails{}, err
	}
	if existing.ID != "" && existing.Status != entities.EscrowStatusCancelled && existing.Status != entities.EscrowStatusRefunded {
		return entities.EscrowDetails{}, ErrEscrowAlreadyExists
	}

	now := u.now()
	escrow := entities.EscrowTransaction{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		ClientID:    clientID,
		ProviderID:  providerID,
		Amount:      in.Amount,
		FeeRate:     u.settings.FeeRate,
		PlatformFee: entities.PlatformFeeFor(in.Amount, u.settings.FeeRate),
		Currency:    u.settings.Currency,
		Description: strings.TrimSpace(in.Description),
		Status:      entities.EscrowStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	milestones := make([]entities.EscrowMilestone, 0, len(in.Milestones))
	for i, m := range in.Milestones {
		milestones = append(milestones, entities.EscrowMilestone{
			ID:          uuid.NewString(),
			EscrowID:    escrow.ID,
			Sequence:    i + 1,
			Title:       strings.TrimSpace(m.Title),
			Description: strings.TrimSpace(m.Description),
			Amount:      m.Amount,
			Status:      entities.MilestoneStatusPending,
			DueDate:     m.DueDate,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := u.repo.Create(ctx, escrow, milestones); err != nil {
		if errors.Is(err, failure.ErrAlreadyExists) {
			return entities.EscrowDetails{}, ErrEscrowAlreadyExists
		}
		return entities.EscrowDetails{}, err
	}
	u.event(ctx, escrow.ID, entities.EscrowEventCreated, clientID, map[string]string{
		"amount":       escrow.Amount.String(),
		"platform_fee": escrow.PlatformFee.String(),
		"milestones":   decimal.NewFromInt(int64(len(milestones))).String(),
	})
	u.log.Info("escrow created", zap.String("escrow_id", escrow.ID), zap.String("booking_id", bookingID),
		zap.String("amount", escrow.Amount.String()), zap.String("platform_fee", escrow.PlatformFee.String()))

	return entities.EscrowDetails{Escrow: escrow, Milestones: milestones, Releases: []entities.EscrowRelease{}}, nil
}

func (u *EscrowUseCase) FundEscrow(ctx context.Context, in FundEscrowInput) (entities.EscrowTransaction, error) {
	e, err := u.load(ctx, in.EscrowID)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if e.ClientID != strings.TrimSpace(in.ClientID) {
		return entities.EscrowTransaction{}, ErrNotEscrowClient
	}
	if !e.Status.CanTransitionTo(entities.EscrowStatusFunded) {
		return entities.EscrowTransaction{}, failure.InvalidTransition("escrow", string(e.Status), string(entities.EscrowStatusFunded))
	}
	paymentMethod := strings.TrimSpace(in.PaymentMethod)
	if paymentMethod == "" {
		return entities.EscrowTransaction{}, ErrMissingPaymentMethod
	}
	u.log.Info("fund start", zap.String("escrow_id", e.ID), zap.String("charge", e.ChargeAmount().String()))

	riskMeta := u.assessFunding(ctx, e, in)
	if riskMeta["risk_action"] == string(entities.RiskActionBlock) {
		u.log.Warn("fund blocked by risk assessment", zap.String("escrow_id", e.ID), zap.String("risk_score", riskMeta["risk_score"]))
		return entities.EscrowTransaction{}, failure.RiskBlocked("payment blocked by risk assessment")
	}

	// A recorded attempt may still be capturable or already captured.
	if e.PaymentIntentID != "" {
		funded, done, err := u.finishAttempt(ctx, e)
		if err != nil {
			return entities.EscrowTransaction{}, err
		}
		if done {
			u.fundedEvent(ctx, funded, funded.ClientID, riskMeta)
			return funded, nil
		}
		if e, err = u.load(ctx, e.ID); err != nil {
			return entities.EscrowTransaction{}, err
		}
	}

	customerID, err := u.ensureCustomer(ctx, e)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}

	attempt := e.FundingAttempt + 1
	auth, err := u.gateway.Authorize(ctx, interfaces.AuthorizeRequest{
		CustomerID:     customerID,
		PaymentMethod:  paymentMethod,
		Amount:         e.ChargeAmount(),
		Currency:       e.Currency,
		Description:    "Escrow for booking " + e.BookingID,
		TransferGroup:  e.ID,
		Metadata:       map[string]string{"escrow_id": e.ID, "booking_id": e.BookingID},
		IdempotencyKey: attemptKey(e.ID, "authorize", attempt),
	})
	if err != nil {
		u.log.Warn("authorize failed", zap.String("escrow_id", e.ID), zap.Int("attempt", attempt), zap.Error(err))
		u.closeAttempt(ctx, e, attempt)
		return entities.EscrowTransaction{}, failure.Gateway(err, "authorize")
	}
	if auth.State != interfaces.PaymentStateRequiresCapture && auth.State != interfaces.PaymentStateSucceeded {
		u.log.Warn("authorization not usable", zap.String("escrow_id", e.ID), zap.String("state", auth.State))
		u.closeAttempt(ctx, e, attempt)
		return entities.EscrowTransaction{}, ErrAuthorizationDeclined
	}

	// Keep the payment reference on the pending record so ReconcileEscrow can finish a stuck funding.
	pending := e
	pending.PaymentIntentID = auth.ID
	pending.PaymentCustomerID = customerID
	pending.FundingAttempt = attempt
	pending.UpdatedAt = u.now()
	if e, err = u.repo.UpdateStatus(ctx, pending, entities.EscrowStatusPending); err != nil {
		u.voidAuthorization(ctx, pending)
		return entities.EscrowTransaction{}, conditional(err, ErrEscrowNotFound, "escrow")
	}

	if auth.State == interfaces.PaymentStateRequiresCapture {
		if _, err := u.gateway.Capture(ctx, auth.ID, attemptKey(e.ID, "capture", attempt)); err != nil {
			u.log.Warn("capture failed, voiding authorization", zap.String("escrow_id", e.ID), zap.String("payment_id", auth.ID), zap.Error(err))
			u.abandonAttempt(ctx, e)
			return entities.EscrowTransaction{}, failure.Gateway(err, "capture")
		}
	}

	funded, err := u.markFunded(ctx, e)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	u.fundedEvent(ctx, funded, funded.ClientID, riskMeta)
	u.log.Info("fund success", zap.String("escrow_id", funded.ID), zap.String("payment_id", auth.ID))
	return funded, nil
}

func (u *EscrowUseCase) fundedEvent(ctx context.Context, funded entities.EscrowTransaction, actorID string, meta map[string]string) {
	if meta == nil {
		meta = map[string]string{}
	}
	meta["payment_id"] = funded.PaymentIntentID
	u.event(ctx, funded.ID, entities.EscrowEventFunded, actorID, meta)
	u.notify.send(ctx, funded.ProviderID, "escrow_funded", map[string]string{
		"escrow_id":  funded.ID,
		"booking_id": funded.BookingID,
		"amount":     funded.Amount.String(),
	})
}

// ReconcileEscrow finishes a funding whose capture succeeded at the gateway but
// whose local transition did not land.
func (u *EscrowUseCase) ReconcileEscrow(ctx context.Context, escrowID, actorID string) (entities.EscrowTransaction, error) {
	e, err := u.load(ctx, escrowID)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	actorID = strings.TrimSpace(actorID)
	if actorID != e.ClientID && !isSystem(ctx, actorID) {
		role, err := roleOf(ctx, u.directory, actorID)
		if err != nil {
			return entities.EscrowTransaction{}, err
		}
		if !role.Elevated() {
			return entities.EscrowTransaction{}, failure.Unauthorized("actor may not reconcile this escrow")
		}
	}
	if e.Status != entities.EscrowStatusPending || e.PaymentIntentID == "" {
		return e, nil
	}
	funded, done, err := u.finishAttempt(ctx, e)
	if err != nil || !done {
		return funded, err
	}
	u.fundedEvent(ctx, funded, actorID, map[string]string{"reconciled": "true"})
	return funded, nil
}

// finishAttempt completes the funding attempt recorded on a pending escrow.
// done is false when that attempt's payment can no longer be captured.
func (u *EscrowUseCase) finishAttempt(ctx context.Context, e entities.EscrowTransaction) (entities.EscrowTransaction, bool, error) {
	p, err := u.gateway.GetPayment(ctx, e.PaymentIntentID)
	if err != nil {
		return entities.EscrowTransaction{}, false, failure.Gateway(err, "get payment")
	}
	switch p.State {
	case interfaces.PaymentStateSucceeded:
	case interfaces.PaymentStateRequiresCapture:
		if _, err := u.gateway.Capture(ctx, p.ID, attemptKey(e.ID, "capture", e.FundingAttempt)); err != nil {
			u.abandonAttempt(ctx, e)
			return entities.EscrowTransaction{}, false, failure.Gateway(err, "capture")
		}
	default:
		u.log.Info("recorded payment not capturable", zap.String("escrow_id", e.ID), zap.String("state", p.State))
		return e, false, nil
	}
	funded, err := u.markFunded(ctx, e)
	if err != nil {
		return entities.EscrowTransaction{}, false, err
	}
	return funded, true, nil
}

// abandonAttempt voids the recorded authorization and clears it so the next
// FundEscrow starts a fresh attempt. A failed void keeps the reference for
// reconciliation.
func (u *EscrowUseCase) abandonAttempt(ctx context.Context, e entities.EscrowTransaction) {
	if !u.voidAuthorization(ctx, e) {
		return
	}
	next := e
	next.PaymentIntentID = ""
	next.UpdatedAt = u.now()
	if _, err := u.repo.UpdateStatus(ctx, next, entities.EscrowStatusPending); err != nil {
		u.log.Warn("clear voided payment failed", zap.String("escrow_id", e.ID), zap.Error(err))
	}
}

// closeAttempt records an attempt that never produced a usable authorization.
func (u *EscrowUseCase) closeAttempt(ctx context.Context, e entities.EscrowTransaction, attempt int) {
	next := e
	next.FundingAttempt = attempt
	next.PaymentIntentID = ""
	next.UpdatedAt = u.now()
	if _, err := u.repo.UpdateStatus(ctx, next, entities.EscrowStatusPending); err != nil {
		u.log.Warn("record funding attempt failed", zap.String("escrow_id", e.ID), zap.Error(err))
	}
}

func (u *EscrowUseCase) markFunded(ctx context.Context, e entities.EscrowTransaction) (entities.EscrowTransaction, error) {
	funded, err := u.transition(ctx, e, entities.EscrowStatusFunded, func(next *entities.EscrowTransaction, now time.Time) {
		deadline := now.Add(u.settings.InspectionPeriod)
		next.FundedAt = &now
		next.InspectionDeadline = &deadline
	})
	if err == nil || !failure.HasCode(err, failure.CodeConcurrencyConflict) {
		return funded, err
	}
	// A concurrent retry of the same funding may already have landed.
	current, loadErr := u.load(ctx, e.ID)
	if loadErr == nil && current.PaymentIntentID == e.PaymentIntentID {
		switch current.Status {
		case entities.EscrowStatusFunded:
			return current, nil
		case entities.EscrowStatusPending:
			return u.markFunded(ctx, current)
		}
	}
	u.log.Error("funds captured but escrow moved on, refunding", zap.String("escrow_id", e.ID), zap.String("payment_id", e.PaymentIntentID))
	if _, refundErr := u.gateway.Refund(ctx, interfaces.RefundRequest{
		PaymentID:      e.PaymentIntentID,
		Amount:         e.ChargeAmount(),
		Currency:       e.Currency,
		Reason:         "escrow no longer pending",
		IdempotencyKey: attemptKey(e.ID, "compensate", e.FundingAttempt),
	}); refundErr != nil {
		u.log.Error("compensating refund failed", zap.String("escrow_id", e.ID), zap.Error(refundErr))
	}
	return entities.EscrowTransaction{}, err
}

func (u *EscrowUseCase) MarkWorkStarted(ctx context.Context, escrowID, providerID string) (entities.EscrowTransaction, error) {
	e, err := u.load(ctx, escrowID)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if e.ProviderID != strings.TrimSpace(providerID) {
		return entities.EscrowTransaction{}, ErrNotEscrowProvider
	}
	started, err := u.transition(ctx, e, entities.EscrowStatusWorkStarted, func(next *entities.EscrowTransaction, now time.Time) {
		next.WorkStartedAt = &now
	})
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	u.event(ctx, started.ID, entities.EscrowEventWorkStarted, started.ProviderID, nil)
	u.notify.send(ctx, started.ClientID, "work_started", map[string]string{"escrow_id": started.ID})
	return started, nil
}

func (u *EscrowUseCase) MarkWorkCompleted(ctx context.Context, escrowID, providerID, notes string) (entities.EscrowTransaction, error) {
	e, err := u.load(ctx, escrowID)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if e.ProviderID != strings.TrimSpace(providerID) {
		return entities.EscrowTransaction{}, ErrNotEscrowProvider
	}
	if !e.Status.CanTransitionTo(entities.EscrowStatusInspectionPeriod) {
		return entities.EscrowTransaction{}, failure.InvalidTransition("escrow", string(e.Status), string(entities.EscrowStatusInspectionPeriod))
	}

	deadline := u.now().Add(u.settings.InspectionPeriod)
	// Scheduled first: a job that fires for a transition that never landed is a no-op.
	if u.scheduler != nil {
		job := entities.ScheduledJob{Kind: entities.JobEscrowAutoRelease, RefID: e.ID}
		if err := u.scheduler.ScheduleAt(ctx, deadline, job); err != nil {
			u.log.Error("schedule auto-release failed", zap.String("escrow_id", e.ID), zap.Error(err))
			return entities.EscrowTransaction{}, err
		}
	}

	completed, err := u.transition(ctx, e, entities.EscrowStatusInspectionPeriod, func(next *entities.EscrowTransaction, now time.Time) {
		next.WorkCompletedAt = &now
		next.InspectionDeadline = &deadline
		next.CompletionNotes = strings.TrimSpace(notes)
	})
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	u.event(ctx, completed.ID, entities.EscrowEventWorkCompleted, completed.ProviderID, map[string]string{
		"inspection_deadline": deadline.Format(time.RFC3339),
	})
	u.notify.send(ctx, completed.ClientID, "work_completed", map[string]string{
		"escrow_id":           completed.ID,
		"inspection_deadline": deadline.Format(time.RFC3339),
	})
	return completed, nil
}

func (u *EscrowUseCase) ReleaseFunds(ctx context.Context, escrowID, clientID string) (entities.EscrowTransaction, error) {
	e, err := u.load(ctx, escrowID)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if e.ClientID != strings.TrimSpace(clientID) {
		return entities.EscrowTransaction{}, ErrNotEscrowClient
	}
	if e.Status != entities.EscrowStatusInspectionPeriod && e.Status != entities.EscrowStatusWorkCompleted {
		return entities.EscrowTransaction{}, failure.InvalidTransition("escrow", string(e.Status), string(entities.EscrowStatusReleased))
	}
	return u.settle(ctx, e, settlement{actorID: e.ClientID, reason: "released by client"})
}

// AutoRelease is the inspection-deadline job. Re-deliveries and records that
// already left the inspection window are no-ops.
func (u *EscrowUseCase) AutoRelease(ctx context.Context, escrowID string) (entities.EscrowTransaction, error) {
	e, err := u.load(ctx, escrowID)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if e.Status != entities.EscrowStatusInspectionPeriod && e.Status != entities.EscrowStatusWorkCompleted {
		u.log.Info("auto-release skipped", zap.String("escrow_id", e.ID), zap.String("status", string(e.Status)))
		u.skipOnce(ctx, e)
		return e, nil
	}
	if e.InspectionDeadline != nil && u.now().Before(*e.InspectionDeadline) {
		u.log.Info("auto-release skipped: deadline not reached", zap.String("escrow_id", e.ID), zap.Time("deadline", *e.InspectionDeadline))
		return e, nil
	}
	return u.settle(ctx, e, settlement{actorID: entities.SystemActorID, reason: "inspection period expired"})
}

func (u *EscrowUseCase) DisputeEscrow(ctx context.Context, escrowID, clientID, reason string) (entities.EscrowTransaction, error) {
	e, err := u.load(ctx, escrowID)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if e.ClientID != strings.TrimSpace(clientID) {
		return entities.EscrowTransaction{}, ErrNotEscrowClient
	}
	if e.Status == entities.EscrowStatusDisputed {
		return e, nil
	}
	disputed, err := u.transition(ctx, e, entities.EscrowStatusDisputed, func(next *entities.EscrowTransaction, now time.Time) {
		next.DisputedAt = &now
		next.DisputeReason = strings.TrimSpace(reason)
	})
	if err != nil {
		if failure.HasCode(err, failure.CodeConcurrencyConflict) {
			if current, loadErr := u.load(ctx, escrowID); loadErr == nil && current.Status == entities.EscrowStatusDisputed {
				return current, nil
			}
		}
		return entities.EscrowTransaction{}, err
	}
	u.event(ctx, disputed.ID, entities.EscrowEventDisputed, disputed.ClientID, map[string]string{"reason": disputed.DisputeReason})
	u.notify.send(ctx, disputed.ProviderID, "escrow_disputed", map[string]string{"escrow_id": disputed.ID, "reason": disputed.DisputeReason})
	return disputed, nil
}

func (u *EscrowUseCase) RefundEscrow(ctx context.Context, in RefundEscrowInput) (entities.EscrowTransaction, error) {
	e, err := u.load(ctx, in.EscrowID)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if !in.Amount.IsPositive() {
		return entities.EscrowTransaction{}, ErrInvalidAmount
	}
	if in.Amount.GreaterThan(e.Amount) {
		return entities.EscrowTransaction{}, ErrRefundExceedsAmount
	}
	switch e.Status {
	case entities.EscrowStatusDisputed, entities.EscrowStatusFunded, entities.EscrowStatusWorkStarted:
	default:
		return entities.EscrowTransaction{}, failure.InvalidTransition("escrow", string(e.Status), string(entities.EscrowStatusRefunded))
	}
	actorID := strings.TrimSpace(in.ActorID)
	if err := u.authorizeSettlement(ctx, e, actorID, true); err != nil {
		return entities.EscrowTransaction{}, err
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = "refund"
	}
	return u.settle(ctx, e, settlement{refund: in.Amount, actorID: actorID, reason: reason})
}

func (u *EscrowUseCase) ReleaseDisputedFunds(ctx context.Context, escrowID, actorID, reason string) (entities.EscrowTransaction, error) {
	e, err := u.load(ctx, escrowID)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if e.Status != entities.EscrowStatusDisputed {
		return entities.EscrowTransaction{}, failure.InvalidTransition("escrow", string(e.Status), string(entities.EscrowStatusReleased))
	}
	actorID = strings.TrimSpace(actorID)
	if err := u.authorizeSettlement(ctx, e, actorID, false); err != nil {
		return entities.EscrowTransaction{}, err
	}
	return u.settle(ctx, e, settlement{actorID: actorID, reason: strings.TrimSpace(reason)})
}

func (u *EscrowUseCase) CancelEscrow(ctx context.Context, escrowID, clientID string) (entities.EscrowTransaction, error) {
	e, err := u.load(ctx, escrowID)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if e.ClientID != strings.TrimSpace(clientID) {
		return entities.EscrowTransaction{}, ErrNotEscrowClient
	}
	if e.Status != entities.EscrowStatusPending {
		return entities.EscrowTransaction{}, failure.InvalidTransition("escrow", string(e.Status), string(entities.EscrowStatusCancelled))
	}
	if e.PaymentIntentID != "" {
		if err := u.gateway.Void(ctx, e.PaymentIntentID, attemptKey(e.ID, "void", e.FundingAttempt)); err != nil {
			return entities.EscrowTransaction{}, failure.Gateway(err, "void")
		}
	}
	cancelled, err := u.transition(ctx, e, entities.EscrowStatusCancelled, func(next *entities.EscrowTransaction, now time.Time) {
		next.CancelledAt = &now
	})
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	u.event(ctx, cancelled.ID, entities.EscrowEventCancelled, cancelled.ClientID, nil)
	u.notify.send(ctx, cancelled.ProviderID, "escrow_cancelled", map[string]string{"escrow_id": cancelled.ID})
	return cancelled, nil
}

func (u *EscrowUseCase) GetEscrow(ctx context.Context, escrowID, userID string) (entities.EscrowDetails, error) {
	e, err := u.load(ctx, escrowID)
	if err != nil {
		return entities.EscrowDetails{}, err
	}
	userID = strings.TrimSpace(userID)
	if !e.IsParty(userID) {
		role, err := roleOf(ctx, u.directory, userID)
		if err != nil {
			return entities.EscrowDetails{}, err
		}
		if !role.Elevated() {
			return entities.EscrowDetails{}, ErrNotEscrowParty
		}
	}
	milestones, err := u.repo.ListMilestones(ctx, e.ID)
	if err != nil {
		return entities.EscrowDetails{}, err
	}
	releases, err := u.repo.ListReleases(ctx, e.ID)
	if err != nil {
		return entities.EscrowDetails{}, err
	}
	events, err := u.repo.ListEvents(ctx, e.ID)
	if err != nil {
		return entities.EscrowDetails{}, err
	}
	return entities.EscrowDetails{Escrow: e, Milestones: milestones, Releases: releases, Events: events}, nil
}

func (u *EscrowUseCase) GetEscrowByBooking(ctx context.Context, bookingID string) (entities.EscrowTransaction, error) {
	bookingID, err := requireID(bookingID, "booking_id")
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	e, err := u.repo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if e.ID == "" {
		return entities.EscrowTransaction{}, ErrEscrowNotFound
	}
	return e, nil
}

func (u *EscrowUseCase) ListUserEscrows(ctx context.Context, userID string, role entities.Role) ([]entities.EscrowTransaction, error) {
	userID, err := requireID(userID, "user_id")
	if err != nil {
		return nil, err
	}
	switch role {
	case entities.RoleClient:
		return u.repo.ListByClient(ctx, userID)
	case entities.RoleArtisan:
		return u.repo.ListByProvider(ctx, userID)
	default:
		return nil, failure.Validation("role must be client or artisan")
	}
}

// settlement describes how an escrow leaves custody: refund goes back to the
// client and the rest, minus the platform fee, is paid out to the provider.
type settlement struct {
	refund  decimal.Decimal
	actorID string
	reason  string
}

// settlementPlan is what moves now plus the totals the record ends with once
// earlier milestone movements are counted in.
type settlementPlan struct {
	target      entities.EscrowStatus
	refund      decimal.Decimal
	payout      decimal.Decimal
	refundTotal decimal.Decimal
	payoutTotal decimal.Decimal
}

// custody is what milestone movements have already taken out of an escrow.
type custody struct {
	remaining      decimal.Decimal
	releasedGross  decimal.Decimal
	releasedPayout decimal.Decimal
	releasedFee    decimal.Decimal
	refunded       decimal.Decimal
}

func (u *EscrowUseCase) custody(ctx context.Context, e entities.EscrowTransaction) (custody, error) {
	milestones, err := u.repo.ListMilestones(ctx, e.ID)
	if err != nil {
		return custody{}, err
	}
	c := custody{}
	for _, m := range milestones {
		switch m.Status {
		case entities.MilestoneStatusReleased:
			payout := MilestonePayout(m, e.FeeRate)
			c.releasedGross = c.releasedGross.Add(m.Amount)
			c.releasedPayout = c.releasedPayout.Add(payout)
			c.releasedFee = c.releasedFee.Add(m.Amount.Sub(payout))
		case entities.MilestoneStatusRefunded:
			c.refunded = c.refunded.Add(m.Amount)
		}
	}
	c.remaining = e.Amount.Sub(c.releasedGross).Sub(c.refunded)
	return c, nil
}

func (u *EscrowUseCase) plan(ctx context.Context, e entities.EscrowTransaction, refund decimal.Decimal) (settlementPlan, error) {
	c, err := u.custody(ctx, e)
	if err != nil {
		return settlementPlan{}, err
	}
	if refund.GreaterThan(c.remaining) {
		return settlementPlan{}, ErrRefundExceedsAmount
	}
	fee := decimal.Max(decimal.Zero, e.PlatformFee.Sub(c.releasedFee))
	p := settlementPlan{
		target: entities.EscrowStatusReleased,
		refund: refund,
		payout: decimal.Max(decimal.Zero, c.remaining.Sub(fee).Sub(refund)),
	}
	if refund.IsPositive() && refund.Equal(c.remaining) && c.releasedGross.IsZero() {
		p.target = entities.EscrowStatusRefunded
	}
	p.refundTotal = c.refunded.Add(p.refund)
	p.payoutTotal = c.releasedPayout.Add(p.payout)
	return p, nil
}

// settle claims the escrow for the planned outcome before any money moves.
// A claim left by an interrupted settlement is resumed only by the same plan;
// the amount-specific idempotency keys make the resumed gateway calls replays.
func (u *EscrowUseCase) settle(ctx context.Context, e entities.EscrowTransaction, s settlement) (entities.EscrowTransaction, error) {
	if e.MilestoneInFlight != "" {
		return entities.EscrowTransaction{}, ErrSettlementInProgress
	}
	p, err := u.plan(ctx, e, s.refund)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if !e.Status.CanTransitionTo(p.target) {
		return entities.EscrowTransaction{}, failure.InvalidTransition("escrow", string(e.Status), string(p.target))
	}
	if e.PaymentIntentID == "" {
		return entities.EscrowTransaction{}, ErrEscrowNotFunded
	}

	var payoutAccount string
	if p.payout.IsPositive() {
		provider, err := u.directory.GetProfile(ctx, e.ProviderID)
		if err != nil {
			return entities.EscrowTransaction{}, err
		}
		if provider.PayoutAccountID == "" {
			return entities.EscrowTransaction{}, ErrMissingPayoutAccount
		}
		payoutAccount = provider.PayoutAccountID
	}

	switch {
	case e.SettlingTo == "":
		claimed := e
		claimed.SettlingTo = p.target
		claimed.PayoutAmount = p.payoutTotal
		claimed.RefundedAmount = p.refundTotal
		claimed.UpdatedAt = u.now()
		if e, err = u.repo.UpdateStatus(ctx, claimed, e.Status); err != nil {
			u.log.Info("settlement claim lost", zap.String("escrow_id", claimed.ID), zap.Error(err))
			return entities.EscrowTransaction{}, conditional(err, ErrEscrowNotFound, "escrow")
		}
	case e.SettlingTo != p.target || !e.PayoutAmount.Equal(p.payoutTotal) || !e.RefundedAmount.Equal(p.refundTotal):
		return entities.EscrowTransaction{}, ErrSettlementInProgress
	default:
		u.log.Info("resuming settlement", zap.String("escrow_id", e.ID), zap.String("target", string(p.target)))
	}
	u.log.Info("settle start", zap.String("escrow_id", e.ID), zap.String("actor_id", s.actorID),
		zap.String("refund", p.refund.String()), zap.String("payout", p.payout.String()))

	var refund interfaces.GatewayRefund
	if p.refund.IsPositive() {
		refund, err = u.gateway.Refund(ctx, interfaces.RefundRequest{
			PaymentID:      e.PaymentIntentID,
			Amount:         p.refund,
			Currency:       e.Currency,
			Reason:         s.reason,
			IdempotencyKey: idempotencyKey("escrow", e.ID, "refund-"+p.refund.StringFixed(2)),
		})
		if err != nil {
			u.log.Warn("refund failed, settlement stays claimed", zap.String("escrow_id", e.ID), zap.Error(err))
			return entities.EscrowTransaction{}, failure.Gateway(err, "refund")
		}
	}
	var transfer interfaces.GatewayTransfer
	if p.payout.IsPositive() {
		transfer, err = u.gateway.Transfer(ctx, interfaces.TransferRequest{
			Destination:    payoutAccount,
			Amount:         p.payout,
			Currency:       e.Currency,
			TransferGroup:  e.ID,
			Description:    "Payout for booking " + e.BookingID,
			IdempotencyKey: idempotencyKey("escrow", e.ID, "payout-"+p.payout.StringFixed(2)),
		})
		if err != nil {
			u.log.Warn("transfer failed, settlement stays claimed", zap.String("escrow_id", e.ID), zap.Error(err))
			return entities.EscrowTransaction{}, failure.Gateway(err, "transfer")
		}
	}

	settled, err := u.transition(ctx, e, p.target, func(next *entities.EscrowTransaction, now time.Time) {
		next.SettlingTo = ""
		next.TransferID = transfer.ID
		next.RefundID = refund.ID
		if p.refund.IsPositive() {
			next.RefundedAt = &now
		}
		if p.target == entities.EscrowStatusReleased {
			next.ReleasedAt = &now
		}
	})
	if err != nil {
		u.log.Error("settlement moved money but the final write failed", zap.String("escrow_id", e.ID), zap.Error(err))
		return entities.EscrowTransaction{}, err
	}

	if p.refund.IsPositive() {
		u.record(ctx, entities.EscrowRelease{EscrowID: e.ID, Kind: entities.ReleaseKindRefund, Amount: p.refund,
			Reason: s.reason, ActorID: s.actorID, GatewayReference: refund.ID})
		u.event(ctx, e.ID, entities.EscrowEventRefunded, s.actorID, map[string]string{"amount": p.refund.String(), "reason": s.reason})
		u.notify.send(ctx, e.ClientID, "escrow_refunded", map[string]string{"escrow_id": e.ID, "amount": p.refund.String()})
	}
	if p.payout.IsPositive() {
		u.record(ctx, entities.EscrowRelease{EscrowID: e.ID, Kind: entities.ReleaseKindRelease, Amount: p.payout,
			Reason: s.reason, ActorID: s.actorID, GatewayReference: transfer.ID})
		u.event(ctx, e.ID, entities.EscrowEventFundsReleased, s.actorID, map[string]string{"amount": p.payout.String(), "transfer_id": transfer.ID})
		u.notify.send(ctx, e.ProviderID, "funds_released", map[string]string{"escrow_id": e.ID, "amount": p.payout.String()})
	}
	u.log.Info("settle success", zap.String("escrow_id", e.ID), zap.String("status", string(settled.Status)))
	return settled, nil
}

// authorizeSettlement allows system calls and elevated roles, plus the
// provider when providerAllowed is set. The client settles through a dispute.
func (u *EscrowUseCase) authorizeSettlement(ctx context.Context, e entities.EscrowTransaction, actorID string, providerAllowed bool) error {
	if actorID == "" {
		return failure.Validation("actor_id is required")
	}
	if isSystem(ctx, actorID) || (providerAllowed && actorID == e.ProviderID) {
		return nil
	}
	role, err := roleOf(ctx, u.directory, actorID)
	if err != nil {
		return err
	}
	if !role.Elevated() {
		return failure.Unauthorized("actor may not settle this escrow")
	}
	return nil
}

// transition refuses every move but the claimed one while money is in flight.
func (u *EscrowUseCase) transition(
	ctx context.Context,
	current entities.EscrowTransaction,
	next entities.EscrowStatus,
	mutate func(next *entities.EscrowTransaction, now time.Time),
) (entities.EscrowTransaction, error) {
	if current.MilestoneInFlight != "" || (current.SettlingTo != "" && next != current.SettlingTo) {
		return entities.EscrowTransaction{}, ErrSettlementInProgress
	}
	if !current.Status.CanTransitionTo(next) {
		return entities.EscrowTransaction{}, failure.InvalidTransition("escrow", string(current.Status), string(next))
	}
	now := u.now()
	updated := current
	updated.Status = next
	updated.UpdatedAt = now
	if mutate != nil {
		mutate(&updated, now)
	}
	saved, err := u.repo.UpdateStatus(ctx, updated, current.Status)
	if err != nil {
		return entities.EscrowTransaction{}, conditional(err, ErrEscrowNotFound, "escrow")
	}
	u.metrics.IncEscrowTransition(string(current.Status), string(next))
	return saved, nil
}

// touch rewrites the record in place, failing if anyone wrote it since it was read.
func (u *EscrowUseCase) touch(ctx context.Context, e entities.EscrowTransaction, mutate func(next *entities.EscrowTransaction)) (entities.EscrowTransaction, error) {
	next := e
	mutate(&next)
	next.UpdatedAt = u.now()
	saved, err := u.repo.UpdateStatus(ctx, next, e.Status)
	if err != nil {
		return entities.EscrowTransaction{}, conditional(err, ErrEscrowNotFound, "escrow")
	}
	return saved, nil
}

func (u *EscrowUseCase) load(ctx context.Context, escrowID string) (entities.EscrowTransaction, error) {
	escrowID, err := requireID(escrowID, "escrow_id")
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	e, err := u.repo.GetByID(ctx, escrowID)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if e.ID == "" {
		return entities.EscrowTransaction{}, ErrEscrowNotFound
	}
	return e, nil
}

func (u *EscrowUseCase) ensureCustomer(ctx context.Context, e entities.EscrowTransaction) (string, error) {
	var profile entities.Profile
	if u.directory != nil {
		var err error
		if profile, err = u.directory.GetProfile(ctx, e.ClientID); err != nil {
			return "", err
		}
	}
	customerID, err := u.gateway.EnsureCustomer(ctx, interfaces.CustomerRequest{
		UserID:     e.ClientID,
		Email:      profile.Email,
		Name:       profile.FullName,
		ExistingID: profile.PaymentCustomerID,
	})
	if err != nil {
		return "", failure.Gateway(err, "customer")
	}
	if u.directory != nil && customerID != profile.PaymentCustomerID {
		if err := u.directory.SetPaymentCustomerID(ctx, e.ClientID, customerID); err != nil {
			u.log.Warn("store payment customer failed", zap.String("client_id", e.ClientID), zap.Error(err))
		}
	}
	return customerID, nil
}

func (u *EscrowUseCase) voidAuthorization(ctx context.Context, e entities.EscrowTransaction) bool {
	if err := u.gateway.Void(ctx, e.PaymentIntentID, attemptKey(e.ID, "void", e.FundingAttempt)); err != nil {
		u.log.Error("void failed", zap.String("escrow_id", e.ID), zap.String("payment_id", e.PaymentIntentID), zap.Error(err))
		return false
	}
	return true
}

// assessFunding consults the risk engine. An unavailable engine does not block funding.
func (u *EscrowUseCase) assessFunding(ctx context.Context, e entities.EscrowTransaction, in FundEscrowInput) map[string]string {
	meta := map[string]string{}
	if u.risk == nil {
		return meta
	}
	a, err := u.risk.CheckPayment(ctx, entities.PaymentCheckInput{
		UserID:            e.ClientID,
		Amount:            e.ChargeAmount(),
		BillingAddress:    in.BillingAddress,
		ShippingAddress:   in.ShippingAddress,
		DeviceFingerprint: in.DeviceFingerprint,
		IPAddress:         in.IPAddress,
	})
	if err != nil {
		u.log.Warn("payment risk check unavailable", zap.String("escrow_id", e.ID), zap.Error(err))
		return meta
	}
	meta["risk_score"] = decimal.NewFromInt(int64(a.RiskScore)).String()
	meta["risk_level"] = string(a.RiskLevel)
	meta["risk_action"] = string(a.Action)
	if a.RequiresManualReview {
		meta["requires_manual_review"] = "true"
	}
	return meta
}

func (u *EscrowUseCase) event(ctx context.Context, escrowID string, eventType entities.EscrowEventType, actorID string, metadata map[string]string) {
	err := u.repo.AppendEvent(ctx, entities.EscrowEvent{
		ID:        uuid.NewString(),
		EscrowID:  escrowID,
		Type:      eventType,
		ActorID:   actorID,
		Metadata:  metadata,
		CreatedAt: u.now(),
	})
	if err != nil {
		u.log.Error("append escrow event failed", zap.String("escrow_id", escrowID), zap.String("event", string(eventType)), zap.Error(err))
	}
}

// skipOnce appends auto_release_skipped the first time a redelivered job finds nothing to do.
func (u *EscrowUseCase) skipOnce(ctx context.Context, e entities.EscrowTransaction) {
	events, err := u.repo.ListEvents(ctx, e.ID)
	if err != nil {
		u.log.Warn("list escrow events failed", zap.String("escrow_id", e.ID), zap.Error(err))
		return
	}
	for _, ev := range events {
		if ev.Type == entities.EscrowEventAutoReleaseSkipped {
			return
		}
	}
	u.event(ctx, e.ID, entities.EscrowEventAutoReleaseSkipped, entities.SystemActorID, map[string]string{"status": string(e.Status)})
}

func (u *EscrowUseCase) record(ctx context.Context, r entities.EscrowRelease) {
	r.ID = uuid.NewString()
	r.CreatedAt = u.now()
	if err := u.repo.AppendRelease(ctx, r); err != nil {
		u.log.Error("append escrow release failed", zap.String("escrow_id", r.EscrowID), zap.Error(err))
	}
}

func idempotencyKey(scope, id, operation string) string {
	return scope + ":" + id + ":" + operation
}

// attemptKey scopes a funding call to one attempt so a retry after a voided
// authorization is not answered with the old result.
func attemptKey(escrowID, operation string, attempt int) string {
	return idempotencyKey("escrow", escrowID, operation+"-"+strconv.Itoa(attempt))
}
