package usecase

import (
	"context"
	"errors"
	"sort"
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
	ErrDisputeNotFound       = failure.NotFound("dispute not found")
	ErrDisputeAlreadyOpen    = failure.Conflict("booking already has an open dispute")
	ErrInvalidCategory       = failure.Validation("invalid dispute category")
	ErrInvalidOutcome        = failure.Validation("invalid dispute outcome")
	ErrNegativeAmount        = failure.Validation("amount must not be negative")
	ErrNotDisputeClient      = failure.Unauthorized("actor is not the dispute client")
	ErrNotDisputeProvider    = failure.Unauthorized("actor is not the dispute provider")
	ErrNotDisputeParticipant = failure.Unauthorized("actor may not access this dispute")
	ErrNotDisputeMediator    = failure.Unauthorized("actor is not the assigned mediator")
	ErrNoArtisanResponse     = failure.Validation("dispute has no artisan response to accept")
	ErrInternalNotAllowed    = failure.Unauthorized("only the mediator may post internal messages")
	ErrDisputeClosed         = failure.New(failure.CodeInvalidStateTransition, "dispute is closed to new messages")
)

const acceptedProposalSummary = "Client accepted the artisan's proposal"

// DisputeSettings holds the SLA windows. Response deadlines use ArtisanResponse.
type DisputeSettings struct {
	InitialResponse  time.Duration
	ArtisanResponse  time.Duration
	MediationStart   time.Duration
	ResolutionTarget time.Duration
}

func DefaultDisputeSettings() DisputeSettings {
	return DisputeSettings{
		InitialResponse:  24 * time.Hour,
		ArtisanResponse:  48 * time.Hour,
		MediationStart:   72 * time.Hour,
		ResolutionTarget: 168 * time.Hour,
	}
}

// IDisputeEscrow is the slice of the escrow manager the dispute workflow drives.
type IDisputeEscrow interface {
	GetEscrowByBooking(ctx context.Context, bookingID string) (entities.EscrowTransaction, error)
	DisputeEscrow(ctx context.Context, escrowID, clientID, reason string) (entities.EscrowTransaction, error)
	RefundEscrow(ctx context.Context, in RefundEscrowInput) (entities.EscrowTransaction, error)
	ReleaseDisputedFunds(ctx context.Context, escrowID, actorID, reason string) (entities.EscrowTransaction, error)
}

var _ IDisputeEscrow = (*EscrowUseCase)(nil)

type OpenDisputeInput struct {
	BookingID      string
	ClientID       string
	ProviderID     string
	EscrowID       string
	Category       entities.DisputeCategory
	Subject        string
	Description    string
	DesiredOutcome string
	Amount         decimal.Decimal
	Evidence       []string
}

type ResolveDisputeInput struct {
	DisputeID    string
	MediatorID   string
	Outcome      entities.DisputeOutcome
	Summary      string
	RefundAmount decimal.Decimal
	Notes        string
}

type AddMessageInput struct {
	DisputeID   string
	SenderID    string
	Message     string
	Attachments []string
	IsInternal  bool
}

type IDisputeUseCase interface {
	OpenDispute(ctx context.Context, in OpenDisputeInput) (entities.Dispute, error)
	SubmitArtisanResponse(ctx context.Context, disputeID, providerID, response, counterProposal string) (entities.Dispute, error)
	RequestFurtherResponse(ctx context.Context, disputeID, actorID, message string) (entities.Dispute, error)
	AcceptProposal(ctx context.Context, disputeID, clientID string) (entities.Dispute, error)
	RequestMediation(ctx context.Context, disputeID, requesterID string) (entities.Dispute, error)
	ResolveDispute(ctx context.Context, in ResolveDisputeInput) (entities.Dispute, error)
	EscalateDispute(ctx context.Context, disputeID, actorID, reason string) (entities.Dispute, error)
	EscalateOverdue(ctx context.Context, disputeID string) (entities.Dispute, error)
	WithdrawDispute(ctx context.Context, disputeID, clientID string) (entities.Dispute, error)
	CloseDispute(ctx context.Context, disputeID, actorID, reason string) (entities.Dispute, error)
	AddMessage(ctx context.Context, in AddMessageInput) (entities.DisputeMessage, error)
	GetDispute(ctx context.Context, disputeID, userID string) (entities.DisputeDetails, error)
	ListUserDisputes(ctx context.Context, userID string, role entities.Role, status entities.DisputeStatus) ([]entities.Dispute, error)
	GetDisputeStats(ctx context.Context) (entities.DisputeStats, error)
}

type DisputeDeps struct {
	Repo      interfaces.IDisputeRepository
	Directory interfaces.IPlatformDirectory
	Escrow    IDisputeEscrow
	Notifier  interfaces.INotifier
	Scheduler interfaces.IScheduler
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Clock     Clock
	Settings  DisputeSettings
}

type DisputeUseCase struct {
	repo      interfaces.IDisputeRepository
	directory interfaces.IPlatformDirectory
	escrow    IDisputeEscrow
	scheduler interfaces.IScheduler
	notify    notifier
	log       *zap.Logger
	metrics   *metrics.Metrics
	now       Clock
	settings  DisputeSettings
}

var _ IDisputeUseCase = (*DisputeUseCase)(nil)

func NewDisputeUseCase(d DisputeDeps) *DisputeUseCase {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("dispute.usecase")
	now := d.Clock
	if now == nil {
		now = systemClock
	}
	settings := d.Settings
	if settings.ArtisanResponse == 0 {
		settings = DefaultDisputeSettings()
	}
	return &DisputeUseCase{
		repo:      d.Repo,
		directory: d.Directory,
		escrow:    d.Escrow,
		scheduler: d.Scheduler,
		notify:    notifier{sink: d.Notifier, log: log, metrics: d.Metrics},
		log:       log,
		metrics:   d.Metrics,
		now:       now,
		settings:  settings,
	}
}

func (u *DisputeUseCase) OpenDispute(ctx context.Context, in OpenDisputeInput) (entities.Dispute, error) {
	bookingID, err := requireID(in.BookingID, "booking_id")
	if err != nil {
		return entities.Dispute{}, err
	}
	clientID, err := requireID(in.ClientID, "client_id")
	if err != nil {
		return entities.Dispute{}, err
	}
	if !in.Category.Valid() {
		return entities.Dispute{}, ErrInvalidCategory
	}
	if in.Amount.IsNegative() {
		return entities.Dispute{}, ErrNegativeAmount
	}
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return entities.Dispute{}, failure.Validation("subject is required")
	}

	booking, err := u.directory.GetBooking(ctx, bookingID)
	if err != nil {
		return entities.Dispute{}, err
	}
	if booking.ID == "" {
		return entities.Dispute{}, ErrBookingNotFound
	}
	providerID := strings.TrimSpace(in.ProviderID)
	if providerID == "" {
		providerID = booking.ProviderID
	}
	if booking.ClientID != clientID || booking.ProviderID != providerID {
		return entities.Dispute{}, failure.Unauthorized("client and provider do not match the booking")
	}

	existing, err := u.repo.FindOpenByBooking(ctx, bookingID)
	if err != nil {
		return entities.Dispute{}, err
	}
	if existing.ID != "" {
		u.log.Info("open rejected: dispute already open", zap.String("booking_id", bookingID), zap.String("dispute_id", existing.ID))
		return entities.Dispute{}, ErrDisputeAlreadyOpen
	}

	escrowID := strings.TrimSpace(in.EscrowID)
	if escrowID == "" && u.escrow != nil {
		if e, err := u.escrow.GetEscrowByBooking(ctx, bookingID); err == nil {
			escrowID = e.ID
		}
	}

	now := u.now()
	deadline := now.Add(u.settings.ArtisanResponse)
	d := entities.Dispute{
		ID:               uuid.NewString(),
		BookingID:        bookingID,
		EscrowID:         escrowID,
		ClientID:         clientID,
		ProviderID:       providerID,
		Category:         in.Category,
		Priority:         entities.DerivePriority(in.Category, in.Amount),
		Status:           entities.DisputeStatusOpened,
		Subject:          subject,
		Description:      strings.TrimSpace(in.Description),
		DesiredOutcome:   strings.TrimSpace(in.DesiredOutcome),
		Amount:           in.Amount,
		Evidence:         in.Evidence,
		ResponseDeadline: &deadline,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := u.repo.Create(ctx, d); err != nil {
		if errors.Is(err, failure.ErrAlreadyExists) {
			return entities.Dispute{}, ErrDisputeAlreadyOpen
		}
		return entities.Dispute{}, err
	}
	u.metrics.IncDisputeEvent(string(entities.DisputeEventOpened))
	u.timeline(ctx, d.ID, entities.DisputeEventOpened, clientID, "Dispute opened: "+subject, map[string]string{
		"category": string(d.Category),
		"priority": string(d.Priority),
	})
	u.scheduleEscalationCheck(ctx, d.ID, deadline)

	if escrowID != "" && u.escrow != nil {
		if _, err := u.escrow.DisputeEscrow(ctx, escrowID, clientID, subject); err != nil {
			u.log.Warn("linked escrow not moved to disputed", zap.String("dispute_id", d.ID), zap.String("escrow_id", escrowID), zap.Error(err))
		}
	}
	u.notify.send(ctx, providerID, "dispute_opened", map[string]string{
		"dispute_id":        d.ID,
		"booking_id":        bookingID,
		"response_deadline": deadline.Format(time.RFC3339),
	})
	u.log.Info("dispute opened", zap.String("dispute_id", d.ID), zap.String("booking_id", bookingID), zap.String("priority", string(d.Priority)))
	return d, nil
}

func (u *DisputeUseCase) SubmitArtisanResponse(ctx context.Context, disputeID, providerID, response, counterProposal string) (entities.Dispute, error) {
	d, err := u.load(ctx, disputeID)
	if err != nil {
		return entities.Dispute{}, err
	}
	if d.ProviderID != strings.TrimSpace(providerID) {
		return entities.Dispute{}, ErrNotDisputeProvider
	}
	if d.Status != entities.DisputeStatusOpened && d.Status != entities.DisputeStatusAwaitingResponse {
		return entities.Dispute{}, failure.InvalidTransition("dispute", string(d.Status), string(entities.DisputeStatusUnderReview))
	}
	response = strings.TrimSpace(response)
	if response == "" {
		return entities.Dispute{}, failure.Validation("response is required")
	}

	updated, err := u.transition(ctx, d, entities.DisputeStatusUnderReview, func(next *entities.Dispute, now time.Time) {
		next.ArtisanResponse = response
		next.CounterProposal = strings.TrimSpace(counterProposal)
		next.RespondedAt = &now
	})
	if err != nil {
		return entities.Dispute{}, err
	}
	u.message(ctx, d.ID, d.ProviderID, entities.SenderTypeArtisan, response, nil, false)
	u.timeline(ctx, d.ID, entities.DisputeEventArtisanResponded, d.ProviderID, "Artisan responded", map[string]string{
		"has_counter_proposal": boolString(updated.CounterProposal != ""),
	})
	u.notify.send(ctx, d.ClientID, "dispute_response", map[string]string{"dispute_id": d.ID})
	return updated, nil
}

func (u *DisputeUseCase) RequestFurtherResponse(ctx context.Context, disputeID, actorID, message string) (entities.Dispute, error) {
	d, err := u.load(ctx, disputeID)
	if err != nil {
		return entities.Dispute{}, err
	}
	actorID = strings.TrimSpace(actorID)
	if actorID != d.ClientID && !d.IsMediator(actorID) {
		return entities.Dispute{}, ErrNotDisputeParticipant
	}
	deadline := u.now().Add(u.settings.ArtisanResponse)
	updated, err := u.transition(ctx, d, entities.DisputeStatusAwaitingResponse, func(next *entities.Dispute, _ time.Time) {
		next.ResponseDeadline = &deadline
	})
	if err != nil {
		return entities.Dispute{}, err
	}
	if msg := strings.TrimSpace(message); msg != "" {
		u.message(ctx, d.ID, actorID, senderTypeOf(d, actorID), msg, nil, false)
	}
	u.timeline(ctx, d.ID, entities.DisputeEventResponseRequested, actorID, "Further response requested", map[string]string{
		"response_deadline": deadline.Format(time.RFC3339),
	})
	u.scheduleEscalationCheck(ctx, d.ID, deadline)
	u.notify.send(ctx, d.ProviderID, "dispute_response_requested", map[string]string{
		"dispute_id":        d.ID,
		"response_deadline": deadline.Format(time.RFC3339),
	})
	return updated, nil
}

func (u *DisputeUseCase) AcceptProposal(ctx context.Context, disputeID, clientID string) (entities.Dispute, error) {
	d, err := u.load(ctx, disputeID)
	if err != nil {
		return entities.Dispute{}, err
	}
	if d.ClientID != strings.TrimSpace(clientID) {
		return entities.Dispute{}, ErrNotDisputeClient
	}
	if d.ArtisanResponse == "" {
		return entities.Dispute{}, ErrNoArtisanResponse
	}
	resolved, err := u.transition(ctx, d, entities.DisputeStatusResolvedCompromise, func(next *entities.Dispute, now time.Time) {
		next.ResolutionSummary = acceptedProposalSummary
		next.ResolvedAt = &now
	})
	if err != nil {
		return entities.Dispute{}, err
	}
	u.timeline(ctx, d.ID, entities.DisputeEventProposalAccepted, d.ClientID, acceptedProposalSummary, nil)
	u.penalize(ctx, resolved, entities.DisputeOutcomeCompromise)
	u.notify.send(ctx, d.ProviderID, "dispute_resolved", map[string]string{
		"dispute_id": d.ID,
		"outcome":    string(entities.DisputeOutcomeCompromise),
	})
	return resolved, nil
}

func (u *DisputeUseCase) RequestMediation(ctx context.Context, disputeID, requesterID string) (entities.Dispute, error) {
	d, err := u.load(ctx, disputeID)
	if err != nil {
		return entities.Dispute{}, err
	}
	requesterID = strings.TrimSpace(requesterID)
	if !d.IsParty(requesterID) {
		return entities.Dispute{}, ErrNotDisputeParticipant
	}
	if !d.Status.CanTransitionTo(entities.DisputeStatusMediation) {
		return entities.Dispute{}, failure.InvalidTransition("dispute", string(d.Status), string(entities.DisputeStatusMediation))
	}
	mediatorID, err := u.pickMediator(ctx)
	if err != nil {
		return entities.Dispute{}, err
	}
	updated, err := u.transition(ctx, d, entities.DisputeStatusMediation, func(next *entities.Dispute, now time.Time) {
		next.MediatorID = mediatorID
		next.MediationAt = &now
	})
	if err != nil {
		return entities.Dispute{}, err
	}
	u.timeline(ctx, d.ID, entities.DisputeEventMediationStarted, requesterID, "Mediation requested", map[string]string{"mediator_id": mediatorID})
	payload := map[string]string{"dispute_id": d.ID, "mediator_id": mediatorID}
	u.notify.send(ctx, d.ClientID, "dispute_mediation", payload)
	u.notify.send(ctx, d.ProviderID, "dispute_mediation", payload)
	if mediatorID != entities.SystemActorID {
		u.notify.send(ctx, mediatorID, "dispute_assigned", payload)
	}
	return updated, nil
}

// pickMediator returns the moderator with the fewest active disputes, falling
// back to the first admin and then to the system actor.
func (u *DisputeUseCase) pickMediator(ctx context.Context) (string, error) {
	moderators, err := u.directory.ListProfilesByRole(ctx, entities.RoleModerator)
	if err != nil {
		return "", err
	}
	best, bestLoad := "", 0
	for _, m := range moderators {
		load, err := u.repo.CountActiveByMediator(ctx, m.ID)
		if err != nil {
			return "", err
		}
		if best == "" || load < bestLoad {
			best, bestLoad = m.ID, load
		}
	}
	if best != "" {
		return best, nil
	}
	for _, role := range []entities.Role{entities.RoleAdmin, entities.RoleSuperAdmin} {
		admins, err := u.directory.ListProfilesByRole(ctx, role)
		if err != nil {
			return "", err
		}
		if len(admins) > 0 {
			return admins[0].ID, nil
		}
	}
	u.log.Warn("no mediator available, assigning system")
	return entities.SystemActorID, nil
}

func (u *DisputeUseCase) ResolveDispute(ctx context.Context, in ResolveDisputeInput) (entities.Dispute, error) {
	d, err := u.load(ctx, in.DisputeID)
	if err != nil {
		return entities.Dispute{}, err
	}
	mediatorID := strings.TrimSpace(in.MediatorID)
	if err := u.authorizeResolution(ctx, d, mediatorID); err != nil {
		return entities.Dispute{}, err
	}
	target, ok := in.Outcome.Status()
	if !ok {
		return entities.Dispute{}, ErrInvalidOutcome
	}
	if in.RefundAmount.IsNegative() {
		return entities.Dispute{}, ErrNegativeAmount
	}
	if !d.Status.CanTransitionTo(target) {
		return entities.Dispute{}, failure.InvalidTransition("dispute", string(d.Status), string(target))
	}
	summary := strings.TrimSpace(in.Summary)
	if summary == "" {
		return entities.Dispute{}, failure.Validation("summary is required")
	}

	if err := u.settleEscrow(ctx, d, mediatorID, in.RefundAmount, summary); err != nil {
		return entities.Dispute{}, err
	}

	resolved, err := u.transition(ctx, d, target, func(next *entities.Dispute, now time.Time) {
		next.ResolutionSummary = summary
		next.RefundAmount = in.RefundAmount
		next.MediatorNotes = strings.TrimSpace(in.Notes)
		next.ResolvedAt = &now
	})
	if err != nil {
		return entities.Dispute{}, err
	}
	u.timeline(ctx, d.ID, entities.DisputeEventResolved, mediatorID, summary, map[string]string{
		"outcome":       string(in.Outcome),
		"refund_amount": in.RefundAmount.String(),
	})
	u.penalize(ctx, resolved, in.Outcome)
	payload := map[string]string{
		"dispute_id":    d.ID,
		"outcome":       string(in.Outcome),
		"refund_amount": in.RefundAmount.String(),
	}
	u.notify.send(ctx, d.ClientID, "dispute_resolved", payload)
	u.notify.send(ctx, d.ProviderID, "dispute_resolved", payload)
	u.log.Info("dispute resolved", zap.String("dispute_id", d.ID), zap.String("outcome", string(in.Outcome)), zap.String("refund", in.RefundAmount.String()))
	return resolved, nil
}

// authorizeResolution accepts the assigned mediator, or an admin once the
// dispute has been escalated.
func (u *DisputeUseCase) authorizeResolution(ctx context.Context, d entities.Dispute, actorID string) error {
	if actorID == "" {
		return failure.Validation("mediator_id is required")
	}
	if d.IsMediator(actorID) && (actorID != entities.SystemActorID || isSystem(ctx, actorID)) {
		return nil
	}
	if d.Status == entities.DisputeStatusEscalated {
		role, err := roleOf(ctx, u.directory, actorID)
		if err != nil {
			return err
		}
		if role.Admin() {
			return nil
		}
	}
	return ErrNotDisputeMediator
}

// settleEscrow moves the linked escrow's money for a resolution. A retry
// after a partial failure finds the escrow already settled and carries on.
func (u *DisputeUseCase) settleEscrow(ctx context.Context, d entities.Dispute, actorID string, refund decimal.Decimal, reason string) error {
	if u.escrow == nil {
		return nil
	}
	e, err := u.linkedEscrow(ctx, d)
	if err != nil || e.ID == "" {
		if refund.IsPositive() {
			if err == nil {
				err = ErrEscrowNotFound
			}
			return err
		}
		return nil
	}
	if e.Status.Terminal() {
		if refund.IsPositive() && !e.RefundedAmount.Equal(refund) {
			return failure.Newf(failure.CodeInvalidStateTransition, "escrow already %s", e.Status)
		}
		return nil
	}

	if refund.IsPositive() {
		if _, err := u.escrow.RefundEscrow(ctx, RefundEscrowInput{EscrowID: e.ID, Amount: refund, Reason: reason, ActorID: actorID}); err != nil {
			u.log.Warn("dispute refund failed", zap.String("dispute_id", d.ID), zap.String("escrow_id", e.ID), zap.Error(err))
			return err
		}
		u.timeline(ctx, d.ID, entities.DisputeEventRefundIssued, actorID, "Refund issued", map[string]string{
			"escrow_id": e.ID,
			"amount":    refund.String(),
		})
		return nil
	}
	if e.Status == entities.EscrowStatusDisputed {
		if _, err := u.escrow.ReleaseDisputedFunds(ctx, e.ID, actorID, reason); err != nil {
			u.log.Warn("dispute release failed", zap.String("dispute_id", d.ID), zap.String("escrow_id", e.ID), zap.Error(err))
			return err
		}
	}
	return nil
}

func (u *DisputeUseCase) linkedEscrow(ctx context.Context, d entities.Dispute) (entities.EscrowTransaction, error) {
	e, err := u.escrow.GetEscrowByBooking(ctx, d.BookingID)
	if err != nil {
		if failure.HasCode(err, failure.CodeNotFound) {
			return entities.EscrowTransaction{}, nil
		}
		return entities.EscrowTransaction{}, err
	}
	return e, nil
}

func (u *DisputeUseCase) EscalateDispute(ctx context.Context, disputeID, actorID, reason string) (entities.Dispute, error) {
	d, err := u.load(ctx, disputeID)
	if err != nil {
		return entities.Dispute{}, err
	}
	actorID = strings.TrimSpace(actorID)
	if !isSystem(ctx, actorID) {
		role, err := roleOf(ctx, u.directory, actorID)
		if err != nil {
			return entities.Dispute{}, err
		}
		if !role.Admin() {
			return entities.Dispute{}, failure.Unauthorized("only the system or an admin may escalate")
		}
	}
	return u.escalate(ctx, d, actorID, strings.TrimSpace(reason))
}

// EscalateOverdue is the response-deadline job. It only escalates disputes
// still waiting on the artisan past their deadline.
func (u *DisputeUseCase) EscalateOverdue(ctx context.Context, disputeID string) (entities.Dispute, error) {
	d, err := u.load(ctx, disputeID)
	if err != nil {
		return entities.Dispute{}, err
	}
	if d.Status != entities.DisputeStatusOpened && d.Status != entities.DisputeStatusAwaitingResponse {
		return d, nil
	}
	if d.ResponseDeadline == nil || u.now().Before(*d.ResponseDeadline) {
		return d, nil
	}
	return u.escalate(ctx, d, entities.SystemActorID, "response deadline passed")
}

func (u *DisputeUseCase) escalate(ctx context.Context, d entities.Dispute, actorID, reason string) (entities.Dispute, error) {
	if d.Status == entities.DisputeStatusEscalated {
		return d, nil
	}
	escalated, err := u.transition(ctx, d, entities.DisputeStatusEscalated, func(next *entities.Dispute, now time.Time) {
		next.Priority = entities.DisputePriorityUrgent
		next.EscalatedAt = &now
	})
	if err != nil {
		return entities.Dispute{}, err
	}
	u.timeline(ctx, d.ID, entities.DisputeEventEscalated, actorID, reason, map[string]string{"previous_status": string(d.Status)})
	u.notify.admins(ctx, "dispute_escalated", map[string]string{
		"dispute_id": d.ID,
		"booking_id": d.BookingID,
		"reason":     reason,
	})
	u.log.Warn("dispute escalated", zap.String("dispute_id", d.ID), zap.String("actor_id", actorID), zap.String("reason", reason))
	return escalated, nil
}

func (u *DisputeUseCase) WithdrawDispute(ctx context.Context, disputeID, clientID string) (entities.Dispute, error) {
	d, err := u.load(ctx, disputeID)
	if err != nil {
		return entities.Dispute{}, err
	}
	if d.ClientID != strings.TrimSpace(clientID) {
		return entities.Dispute{}, ErrNotDisputeClient
	}
	withdrawn, err := u.transition(ctx, d, entities.DisputeStatusWithdrawn, func(next *entities.Dispute, now time.Time) {
		next.ResolvedAt = &now
	})
	if err != nil {
		return entities.Dispute{}, err
	}
	u.timeline(ctx, d.ID, entities.DisputeEventWithdrawn, d.ClientID, "Dispute withdrawn by client", nil)
	if err := u.settleEscrow(AsSystem(ctx), d, entities.SystemActorID, decimal.Zero, "dispute withdrawn"); err != nil {
		u.log.Warn("escrow left disputed after withdrawal", zap.String("dispute_id", d.ID), zap.Error(err))
	}
	u.notify.send(ctx, d.ProviderID, "dispute_withdrawn", map[string]string{"dispute_id": d.ID})
	return withdrawn, nil
}

func (u *DisputeUseCase) CloseDispute(ctx context.Context, disputeID, actorID, reason string) (entities.Dispute, error) {
	d, err := u.load(ctx, disputeID)
	if err != nil {
		return entities.Dispute{}, err
	}
	actorID = strings.TrimSpace(actorID)
	role, err := roleOf(ctx, u.directory, actorID)
	if err != nil {
		return entities.Dispute{}, err
	}
	if !role.Elevated() {
		return entities.Dispute{}, failure.Unauthorized("only moderators and admins may close disputes")
	}
	reason = strings.TrimSpace(reason)
	closed, err := u.transition(ctx, d, entities.DisputeStatusClosed, func(next *entities.Dispute, now time.Time) {
		next.ResolutionSummary = reason
		next.ResolvedAt = &now
	})
	if err != nil {
		return entities.Dispute{}, err
	}
	u.timeline(ctx, d.ID, entities.DisputeEventClosed, actorID, reason, nil)
	payload := map[string]string{"dispute_id": d.ID, "reason": reason}
	u.notify.send(ctx, d.ClientID, "dispute_closed", payload)
	u.notify.send(ctx, d.ProviderID, "dispute_closed", payload)
	return closed, nil
}

func (u *DisputeUseCase) AddMessage(ctx context.Context, in AddMessageInput) (entities.DisputeMessage, error) {
	d, err := u.load(ctx, in.DisputeID)
	if err != nil {
		return entities.DisputeMessage{}, err
	}
	senderID := strings.TrimSpace(in.SenderID)
	mediator := d.IsMediator(senderID)
	if !mediator && !d.IsParty(senderID) {
		return entities.DisputeMessage{}, ErrNotDisputeParticipant
	}
	if in.IsInternal && !mediator {
		return entities.DisputeMessage{}, ErrInternalNotAllowed
	}
	if d.Status.Terminal() && !mediator {
		return entities.DisputeMessage{}, ErrDisputeClosed
	}
	text := strings.TrimSpace(in.Message)
	if text == "" {
		return entities.DisputeMessage{}, failure.Validation("message is required")
	}

	msg := u.message(ctx, d.ID, senderID, senderTypeOf(d, senderID), text, in.Attachments, in.IsInternal)
	if msg.ID == "" {
		return entities.DisputeMessage{}, failure.New(failure.CodeInternal, "message could not be stored")
	}
	if !in.IsInternal {
		u.timeline(ctx, d.ID, entities.DisputeEventMessageAdded, senderID, "Message added", nil)
		for _, recipient := range []string{d.ClientID, d.ProviderID, d.MediatorID} {
			if recipient != senderID && recipient != entities.SystemActorID {
				u.notify.send(ctx, recipient, "dispute_message", map[string]string{"dispute_id": d.ID, "message_id": msg.ID})
			}
		}
	}
	return msg, nil
}

func (u *DisputeUseCase) GetDispute(ctx context.Context, disputeID, userID string) (entities.DisputeDetails, error) {
	d, err := u.load(ctx, disputeID)
	if err != nil {
		return entities.DisputeDetails{}, err
	}
	userID = strings.TrimSpace(userID)
	mediator := d.IsMediator(userID)
	if !mediator && !d.IsParty(userID) {
		role, err := roleOf(ctx, u.directory, userID)
		if err != nil {
			return entities.DisputeDetails{}, err
		}
		if !role.Elevated() {
			return entities.DisputeDetails{}, ErrNotDisputeParticipant
		}
	}

	messages, err := u.repo.ListMessages(ctx, d.ID)
	if err != nil {
		return entities.DisputeDetails{}, err
	}
	visible := make([]entities.DisputeMessage, 0, len(messages))
	for _, m := range messages {
		if m.IsInternal && !mediator {
			continue
		}
		visible = append(visible, m)
	}
	timeline, err := u.repo.ListTimeline(ctx, d.ID)
	if err != nil {
		return entities.DisputeDetails{}, err
	}
	return entities.DisputeDetails{Dispute: d, Messages: visible, Timeline: timeline}, nil
}

func (u *DisputeUseCase) ListUserDisputes(ctx context.Context, userID string, role entities.Role, status entities.DisputeStatus) ([]entities.Dispute, error) {
	userID, err := requireID(userID, "user_id")
	if err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, failure.Validation("invalid dispute status")
	}
	var disputes []entities.Dispute
	switch role {
	case entities.RoleClient:
		disputes, err = u.repo.ListByClient(ctx, userID)
	case entities.RoleArtisan:
		disputes, err = u.repo.ListByProvider(ctx, userID)
	case entities.RoleModerator, entities.RoleAdmin, entities.RoleSuperAdmin:
		var all []entities.Dispute
		all, err = u.repo.ListAll(ctx)
		for _, d := range all {
			if d.MediatorID == userID {
				disputes = append(disputes, d)
			}
		}
	default:
		return nil, failure.Validation("invalid role")
	}
	if err != nil {
		return nil, err
	}
	out := make([]entities.Dispute, 0, len(disputes))
	for _, d := range disputes {
		if status == "" || d.Status == status {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *DisputeUseCase) GetDisputeStats(ctx context.Context) (entities.DisputeStats, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return entities.DisputeStats{}, err
	}
	stats := entities.DisputeStats{
		Total:           len(all),
		ByCategory:      map[entities.DisputeCategory]int{},
		ByStatus:        map[entities.DisputeStatus]int{},
		ResolutionRates: map[entities.DisputeOutcome]float64{},
	}
	var hours float64
	var timed int
	outcomes := map[entities.DisputeOutcome]int{}
	for _, d := range all {
		stats.ByCategory[d.Category]++
		stats.ByStatus[d.Status]++
		if !d.Status.Terminal() {
			stats.Open++
		}
		if !d.Status.Resolved() {
			continue
		}
		stats.Resolved++
		outcomes[outcomeOf(d.Status)]++
		if d.ResolvedAt != nil {
			hours += d.ResolvedAt.Sub(d.CreatedAt).Hours()
			timed++
		}
	}
	if timed > 0 {
		stats.AverageResolutionHours = hours / float64(timed)
	}
	for _, o := range []entities.DisputeOutcome{entities.DisputeOutcomeClientFavor, entities.DisputeOutcomeArtisanFavor, entities.DisputeOutcomeCompromise} {
		if stats.Resolved > 0 {
			stats.ResolutionRates[o] = float64(outcomes[o]) / float64(stats.Resolved)
		} else {
			stats.ResolutionRates[o] = 0
		}
	}
	return stats, nil
}

func outcomeOf(s entities.DisputeStatus) entities.DisputeOutcome {
	switch s {
	case entities.DisputeStatusResolvedClientFavor:
		return entities.DisputeOutcomeClientFavor
	case entities.DisputeStatusResolvedArtisanFavor:
		return entities.DisputeOutcomeArtisanFavor
	default:
		return entities.DisputeOutcomeCompromise
	}
}

// penalize applies the outcome's trust penalty to the provider. The dispute
// is already resolved, so a failure here is logged rather than returned.
func (u *DisputeUseCase) penalize(ctx context.Context, d entities.Dispute, outcome entities.DisputeOutcome) {
	delta := outcome.TrustPenalty()
	if delta == 0 {
		return
	}
	score, err := u.directory.AdjustTrustScore(ctx, d.ProviderID, delta)
	if err != nil {
		u.log.Error("trust score adjustment failed", zap.String("provider_id", d.ProviderID), zap.Int("delta", delta), zap.Error(err))
		return
	}
	u.log.Info("trust score adjusted", zap.String("provider_id", d.ProviderID), zap.Int("delta", delta), zap.Int("score", score))
}

func (u *DisputeUseCase) transition(
	ctx context.Context,
	current entities.Dispute,
	next entities.DisputeStatus,
	mutate func(next *entities.Dispute, now time.Time),
) (entities.Dispute, error) {
	if !current.Status.CanTransitionTo(next) {
		return entities.Dispute{}, failure.InvalidTransition("dispute", string(current.Status), string(next))
	}
	now := u.now()
	updated := current
	updated.Status = next
	updated.UpdatedAt = now
	if mutate != nil {
		mutate(&updated, now)
	}
	saved, err := u.repo.Update(ctx, updated, current.Status)
	if err != nil {
		return entities.Dispute{}, conditional(err, ErrDisputeNotFound, "dispute")
	}
	u.metrics.IncDisputeEvent(string(next))
	return saved, nil
}

func (u *DisputeUseCase) load(ctx context.Context, disputeID string) (entities.Dispute, error) {
	disputeID, err := requireID(disputeID, "dispute_id")
	if err != nil {
		return entities.Dispute{}, err
	}
	d, err := u.repo.GetByID(ctx, disputeID)
	if err != nil {
		return entities.Dispute{}, err
	}
	if d.ID == "" {
		return entities.Dispute{}, ErrDisputeNotFound
	}
	return d, nil
}

func (u *DisputeUseCase) scheduleEscalationCheck(ctx context.Context, disputeID string, at time.Time) {
	if u.scheduler == nil {
		return
	}
	job := entities.ScheduledJob{Kind: entities.JobDisputeEscalationCheck, RefID: disputeID}
	if err := u.scheduler.ScheduleAt(ctx, at, job); err != nil {
		u.log.Error("schedule escalation check failed", zap.String("dispute_id", disputeID), zap.Error(err))
	}
}

func (u *DisputeUseCase) message(ctx context.Context, disputeID, senderID string, senderType entities.SenderType, text string, attachments []string, internal bool) entities.DisputeMessage {
	m := entities.DisputeMessage{
		ID:          uuid.NewString(),
		DisputeID:   disputeID,
		SenderID:    senderID,
		SenderType:  senderType,
		Message:     text,
		Attachments: attachments,
		IsInternal:  internal,
		CreatedAt:   u.now(),
	}
	if err := u.repo.AppendMessage(ctx, m); err != nil {
		u.log.Error("append dispute message failed", zap.String("dispute_id", disputeID), zap.Error(err))
		return entities.DisputeMessage{}
	}
	return m
}

func (u *DisputeUseCase) timeline(ctx context.Context, disputeID string, eventType entities.DisputeEventType, actorID, description string, metadata map[string]string) {
	err := u.repo.AppendTimeline(ctx, entities.DisputeTimelineEvent{
		ID:          uuid.NewString(),
		DisputeID:   disputeID,
		Type:        eventType,
		ActorID:     actorID,
		Description: description,
		Metadata:    metadata,
		CreatedAt:   u.now(),
	})
	if err != nil {
		u.log.Error("append dispute timeline failed", zap.String("dispute_id", disputeID), zap.String("event", string(eventType)), zap.Error(err))
	}
}

func senderTypeOf(d entities.Dispute, userID string) entities.SenderType {
	switch {
	case userID == d.ClientID:
		return entities.SenderTypeClient
	case userID == d.ProviderID:
		return entities.SenderTypeArtisan
	case d.IsMediator(userID):
		return entities.SenderTypeMediator
	default:
		return entities.SenderTypeSystem
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
