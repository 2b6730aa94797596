package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace_trust/internal/adapter/persistence/memory"
	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	mock_interfaces "marketplace_trust/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type disputeFixture struct {
	escrow   *escrowFixture
	disputes *memory.DisputeMemoryRepository
	uc       *DisputeUseCase
}

func newDisputeFixture(t *testing.T, opts ...func(*DisputeDeps)) *disputeFixture {
	t.Helper()
	ef := newEscrowFixture(t)
	f := &disputeFixture{escrow: ef, disputes: memory.NewDisputeMemoryRepository()}
	d := DisputeDeps{Repo: f.disputes, Directory: ef.dir, Escrow: ef.uc, Clock: func() time.Time { return ef.now }}
	for _, opt := range opts {
		opt(&d)
	}
	f.uc = NewDisputeUseCase(d)
	return f
}

func openInput() OpenDisputeInput {
	return OpenDisputeInput{
		BookingID:   "booking-1",
		ClientID:    "client-1",
		Category:    entities.DisputeCategoryQualityOfWork,
		Subject:     "Cracked tiles",
		Description: "Half of the tiles cracked within a week",
		Amount:      decimal.NewFromInt(300),
	}
}

func (f *disputeFixture) open(t *testing.T) entities.Dispute {
	t.Helper()
	d, err := f.uc.OpenDispute(context.Background(), openInput())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return d
}

func trustScore(t *testing.T, f *disputeFixture, userID string) int {
	t.Helper()
	p, err := f.escrow.dir.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	return p.TrustScore
}

func TestDisputeUseCase_OpenDispute(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid category", func(t *testing.T) {
		f := newDisputeFixture(t)
		in := openInput()
		in.Category = "weather"
		if _, err := f.uc.OpenDispute(ctx, in); !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		f := newDisputeFixture(t)
		in := openInput()
		in.Amount = decimal.NewFromInt(-1)
		if _, err := f.uc.OpenDispute(ctx, in); !errors.Is(err, ErrNegativeAmount) {
			t.Fatalf("expected ErrNegativeAmount, got %v", err)
		}
	})

	t.Run("client not on booking", func(t *testing.T) {
		f := newDisputeFixture(t)
		in := openInput()
		in.ClientID = "stranger"
		if _, err := f.uc.OpenDispute(ctx, in); !failure.HasCode(err, failure.CodeUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newDisputeFixture(t)
		in := openInput()
		in.BookingID = "booking-x"
		if _, err := f.uc.OpenDispute(ctx, in); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("opens and disputes the linked escrow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sched := mock_interfaces.NewMockIScheduler(ctrl)
		f := newDisputeFixture(t, func(d *DisputeDeps) { d.Scheduler = sched })
		f.escrow.seed(t, "esc-1", entities.EscrowStatusWorkStarted)

		deadline := testNow.Add(48 * time.Hour)
		sched.EXPECT().ScheduleAt(gomock.Any(), deadline, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ time.Time, job entities.ScheduledJob) error {
				if job.Kind != entities.JobDisputeEscalationCheck || job.RefID == "" {
					t.Fatalf("unexpected job: %+v", job)
				}
				return nil
			},
		)

		d := f.open(t)
		if d.Status != entities.DisputeStatusOpened || d.ProviderID != "provider-1" || d.EscrowID != "esc-1" {
			t.Fatalf("unexpected dispute: %+v", d)
		}
		if d.Priority != entities.DisputePriorityMedium || !d.ResponseDeadline.Equal(deadline) {
			t.Fatalf("unexpected priority or deadline: %s %v", d.Priority, d.ResponseDeadline)
		}
		e, _ := f.escrow.repo.GetByID(ctx, "esc-1")
		if e.Status != entities.EscrowStatusDisputed {
			t.Fatalf("expected escrow disputed, got %s", e.Status)
		}
		timeline, _ := f.disputes.ListTimeline(ctx, d.ID)
		if len(timeline) != 1 || timeline[0].Type != entities.DisputeEventOpened {
			t.Fatalf("unexpected timeline: %+v", timeline)
		}
	})

	t.Run("second open dispute for the booking conflicts", func(t *testing.T) {
		f := newDisputeFixture(t)
		f.open(t)
		_, err := f.uc.OpenDispute(ctx, openInput())
		if !errors.Is(err, ErrDisputeAlreadyOpen) {
			t.Fatalf("expected ErrDisputeAlreadyOpen, got %v", err)
		}
		if !failure.HasCode(err, failure.CodeConflict) {
			t.Fatalf("expected conflict code, got %s", failure.CodeOf(err))
		}
	})

	t.Run("escrow that cannot be disputed does not block opening", func(t *testing.T) {
		f := newDisputeFixture(t)
		f.escrow.seed(t, "esc-1", entities.EscrowStatusPending)
		d := f.open(t)
		if d.EscrowID != "esc-1" {
			t.Fatalf("expected escrow linked, got %q", d.EscrowID)
		}
		e, _ := f.escrow.repo.GetByID(ctx, "esc-1")
		if e.Status != entities.EscrowStatusPending {
			t.Fatalf("expected pending escrow untouched, got %s", e.Status)
		}
	})
}

func TestDisputeUseCase_ClientFavorResolution(t *testing.T) {
	ctx := context.Background()
	f := newDisputeFixture(t)
	f.escrow.seed(t, "esc-1", entities.EscrowStatusWorkStarted)
	d := f.open(t)

	if _, err := f.uc.SubmitArtisanResponse(ctx, d.ID, "client-1", "no", ""); !errors.Is(err, ErrNotDisputeProvider) {
		t.Fatalf("expected ErrNotDisputeProvider, got %v", err)
	}
	responded, err := f.uc.SubmitArtisanResponse(ctx, d.ID, "provider-1", "The floor was uneven", "Redo half")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if responded.Status != entities.DisputeStatusUnderReview || responded.CounterProposal != "Redo half" || responded.RespondedAt == nil {
		t.Fatalf("unexpected dispute: %+v", responded)
	}

	mediated, err := f.uc.RequestMediation(ctx, d.ID, "client-1")
	if err != nil {
		t.Fatalf("mediation: %v", err)
	}
	if mediated.Status != entities.DisputeStatusMediation || mediated.MediatorID != "mod-1" {
		t.Fatalf("unexpected dispute: %+v", mediated)
	}

	_, err = f.uc.ResolveDispute(ctx, ResolveDisputeInput{DisputeID: d.ID, MediatorID: "admin-1", Outcome: entities.DisputeOutcomeClientFavor, Summary: "x", RefundAmount: decimal.NewFromInt(300)})
	if !errors.Is(err, ErrNotDisputeMediator) {
		t.Fatalf("expected ErrNotDisputeMediator, got %v", err)
	}
	_, err = f.uc.ResolveDispute(ctx, ResolveDisputeInput{DisputeID: d.ID, MediatorID: "mod-1", Outcome: "split", Summary: "x"})
	if !errors.Is(err, ErrInvalidOutcome) {
		t.Fatalf("expected ErrInvalidOutcome, got %v", err)
	}

	resolved, err := f.uc.ResolveDispute(ctx, ResolveDisputeInput{
		DisputeID:    d.ID,
		MediatorID:   "mod-1",
		Outcome:      entities.DisputeOutcomeClientFavor,
		Summary:      "Partial refund for cracked tiles",
		RefundAmount: decimal.NewFromInt(300),
		Notes:        "photos confirm damage",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Status != entities.DisputeStatusResolvedClientFavor || resolved.ResolvedAt == nil || !resolved.RefundAmount.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("unexpected dispute: %+v", resolved)
	}

	e, _ := f.escrow.repo.GetByID(ctx, "esc-1")
	if e.Status != entities.EscrowStatusReleased {
		t.Fatalf("expected escrow released, got %s", e.Status)
	}
	if !e.PayoutAmount.Equal(decimal.NewFromInt(650)) || !e.FeeRetained().Equal(decimal.NewFromInt(50)) || !e.RefundedAmount.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("unexpected ledger: payout %s fee %s refund %s", e.PayoutAmount, e.FeeRetained(), e.RefundedAmount)
	}
	if got := trustScore(t, f, "provider-1"); got != 70 {
		t.Fatalf("expected trust score 70, got %d", got)
	}

	timeline, _ := f.disputes.ListTimeline(ctx, d.ID)
	var sawRefund, sawResolved bool
	for _, ev := range timeline {
		sawRefund = sawRefund || ev.Type == entities.DisputeEventRefundIssued
		sawResolved = sawResolved || ev.Type == entities.DisputeEventResolved
	}
	if !sawRefund || !sawResolved {
		t.Fatalf("expected refund_issued and resolved on the timeline, got %+v", timeline)
	}

	if _, err := f.uc.ResolveDispute(ctx, ResolveDisputeInput{DisputeID: d.ID, MediatorID: "mod-1", Outcome: entities.DisputeOutcomeClientFavor, Summary: "again"}); !failure.HasCode(err, failure.CodeInvalidStateTransition) {
		t.Fatalf("expected invalid transition on second resolution, got %v", err)
	}
}

func TestDisputeUseCase_AcceptProposal(t *testing.T) {
	ctx := context.Background()
	f := newDisputeFixture(t)
	f.escrow.seed(t, "esc-1", entities.EscrowStatusWorkStarted)
	d := f.open(t)

	if _, err := f.uc.AcceptProposal(ctx, d.ID, "client-1"); !errors.Is(err, ErrNoArtisanResponse) {
		t.Fatalf("expected ErrNoArtisanResponse, got %v", err)
	}
	if _, err := f.uc.SubmitArtisanResponse(ctx, d.ID, "provider-1", "I will redo it", "Free redo next week"); err != nil {
		t.Fatalf("respond: %v", err)
	}
	if _, err := f.uc.AcceptProposal(ctx, d.ID, "provider-1"); !errors.Is(err, ErrNotDisputeClient) {
		t.Fatalf("expected ErrNotDisputeClient, got %v", err)
	}
	resolved, err := f.uc.AcceptProposal(ctx, d.ID, "client-1")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if resolved.Status != entities.DisputeStatusResolvedCompromise || resolved.ResolutionSummary != acceptedProposalSummary {
		t.Fatalf("unexpected dispute: %+v", resolved)
	}
	if got := trustScore(t, f, "provider-1"); got != 75 {
		t.Fatalf("expected trust score 75, got %d", got)
	}
	e, _ := f.escrow.repo.GetByID(ctx, "esc-1")
	if e.Status != entities.EscrowStatusDisputed {
		t.Fatalf("expected escrow left for settlement, got %s", e.Status)
	}
}

func TestDisputeUseCase_Escalation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	notify := mock_interfaces.NewMockINotifier(ctrl)
	notify.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	notify.EXPECT().NotifyAdmins(gomock.Any(), "dispute_escalated", gomock.Any()).Return(nil).Times(1)

	f := newDisputeFixture(t, func(d *DisputeDeps) { d.Notifier = notify })
	f.escrow.seed(t, "esc-1", entities.EscrowStatusWorkStarted)
	d := f.open(t)

	f.escrow.now = testNow.Add(47 * time.Hour)
	early, err := f.uc.EscalateOverdue(ctx, d.ID)
	if err != nil || early.Status != entities.DisputeStatusOpened {
		t.Fatalf("expected no escalation before deadline, got %+v, %v", early, err)
	}

	f.escrow.now = testNow.Add(48 * time.Hour)
	escalated, err := f.uc.EscalateOverdue(ctx, d.ID)
	if err != nil {
		t.Fatalf("escalate: %v", err)
	}
	if escalated.Status != entities.DisputeStatusEscalated || escalated.Priority != entities.DisputePriorityUrgent || escalated.EscalatedAt == nil {
		t.Fatalf("unexpected dispute: %+v", escalated)
	}
	again, err := f.uc.EscalateOverdue(ctx, d.ID)
	if err != nil || again.Status != entities.DisputeStatusEscalated {
		t.Fatalf("expected redelivery no-op, got %+v, %v", again, err)
	}

	if _, err := f.uc.EscalateDispute(ctx, d.ID, "mod-1", "manual"); !failure.HasCode(err, failure.CodeUnauthorized) {
		t.Fatalf("expected moderators refused, got %v", err)
	}
	if _, err := f.uc.EscalateDispute(ctx, d.ID, entities.SystemActorID, "manual"); !failure.HasCode(err, failure.CodeUnauthorized) {
		t.Fatalf("expected the system id to be refused outside a system call, got %v", err)
	}

	resolved, err := f.uc.ResolveDispute(ctx, ResolveDisputeInput{DisputeID: d.ID, MediatorID: "admin-1", Outcome: entities.DisputeOutcomeArtisanFavor, Summary: "Work meets the agreed scope"})
	if err != nil {
		t.Fatalf("admin resolve: %v", err)
	}
	if resolved.Status != entities.DisputeStatusResolvedArtisanFavor {
		t.Fatalf("unexpected status %s", resolved.Status)
	}
	e, _ := f.escrow.repo.GetByID(ctx, "esc-1")
	if e.Status != entities.EscrowStatusReleased || !e.PayoutAmount.Equal(decimal.NewFromInt(950)) {
		t.Fatalf("expected full payout to provider, got %+v", e)
	}
	if got := trustScore(t, f, "provider-1"); got != 80 {
		t.Fatalf("expected trust score unchanged, got %d", got)
	}
}

func TestDisputeUseCase_RequestFurtherResponse(t *testing.T) {
	ctx := context.Background()
	f := newDisputeFixture(t)
	d := f.open(t)
	if _, err := f.uc.SubmitArtisanResponse(ctx, d.ID, "provider-1", "Not my fault", ""); err != nil {
		t.Fatalf("respond: %v", err)
	}

	f.escrow.now = testNow.Add(10 * time.Hour)
	if _, err := f.uc.RequestFurtherResponse(ctx, d.ID, "stranger", ""); !errors.Is(err, ErrNotDisputeParticipant) {
		t.Fatalf("expected ErrNotDisputeParticipant, got %v", err)
	}
	awaiting, err := f.uc.RequestFurtherResponse(ctx, d.ID, "client-1", "Please send photos")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if awaiting.Status != entities.DisputeStatusAwaitingResponse || !awaiting.ResponseDeadline.Equal(testNow.Add(58*time.Hour)) {
		t.Fatalf("unexpected dispute: %+v", awaiting)
	}
	messages, _ := f.disputes.ListMessages(ctx, d.ID)
	if len(messages) != 2 || messages[1].SenderType != entities.SenderTypeClient {
		t.Fatalf("unexpected messages: %+v", messages)
	}
}

func TestDisputeUseCase_WithdrawDispute(t *testing.T) {
	ctx := context.Background()
	f := newDisputeFixture(t)
	f.escrow.seed(t, "esc-1", entities.EscrowStatusWorkStarted)
	d := f.open(t)

	if _, err := f.uc.WithdrawDispute(ctx, d.ID, "provider-1"); !errors.Is(err, ErrNotDisputeClient) {
		t.Fatalf("expected ErrNotDisputeClient, got %v", err)
	}
	withdrawn, err := f.uc.WithdrawDispute(ctx, d.ID, "client-1")
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if withdrawn.Status != entities.DisputeStatusWithdrawn {
		t.Fatalf("unexpected status %s", withdrawn.Status)
	}
	e, _ := f.escrow.repo.GetByID(ctx, "esc-1")
	if e.Status != entities.EscrowStatusReleased {
		t.Fatalf("expected disputed funds released, got %s", e.Status)
	}
	if _, err := f.uc.WithdrawDispute(ctx, d.ID, "client-1"); !failure.HasCode(err, failure.CodeInvalidStateTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	if _, err := f.uc.OpenDispute(ctx, openInput()); err != nil {
		t.Fatalf("expected a new dispute to be allowed after withdrawal, got %v", err)
	}
}

func TestDisputeUseCase_MediatorSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("least loaded moderator", func(t *testing.T) {
		f := newDisputeFixture(t)
		f.escrow.dir.PutProfile(entities.Profile{ID: "mod-2", Role: entities.RoleModerator})
		busy := entities.Dispute{ID: "d-busy", BookingID: "booking-2", ClientID: "c", ProviderID: "p", MediatorID: "mod-1", Status: entities.DisputeStatusMediation, CreatedAt: testNow}
		if err := f.disputes.Create(ctx, busy); err != nil {
			t.Fatalf("seed: %v", err)
		}
		d := f.open(t)
		mediated, err := f.uc.RequestMediation(ctx, d.ID, "provider-1")
		if err != nil {
			t.Fatalf("mediation: %v", err)
		}
		if mediated.MediatorID != "mod-2" {
			t.Fatalf("expected mod-2, got %s", mediated.MediatorID)
		}
	})

	t.Run("falls back to an admin", func(t *testing.T) {
		f := newDisputeFixture(t)
		f.escrow.dir.PutProfile(entities.Profile{ID: "mod-1", Role: entities.RoleClient})
		d := f.open(t)
		mediated, err := f.uc.RequestMediation(ctx, d.ID, "client-1")
		if err != nil {
			t.Fatalf("mediation: %v", err)
		}
		if mediated.MediatorID != "admin-1" {
			t.Fatalf("expected admin-1, got %s", mediated.MediatorID)
		}
	})

	t.Run("non party may not request mediation", func(t *testing.T) {
		f := newDisputeFixture(t)
		d := f.open(t)
		if _, err := f.uc.RequestMediation(ctx, d.ID, "mod-1"); !errors.Is(err, ErrNotDisputeParticipant) {
			t.Fatalf("expected ErrNotDisputeParticipant, got %v", err)
		}
	})
}

func TestDisputeUseCase_Messages(t *testing.T) {
	ctx := context.Background()
	f := newDisputeFixture(t)
	d := f.open(t)
	if _, err := f.uc.RequestMediation(ctx, d.ID, "client-1"); err != nil {
		t.Fatalf("mediation: %v", err)
	}

	if _, err := f.uc.AddMessage(ctx, AddMessageInput{DisputeID: d.ID, SenderID: "client-1", Message: "secret", IsInternal: true}); !errors.Is(err, ErrInternalNotAllowed) {
		t.Fatalf("expected ErrInternalNotAllowed, got %v", err)
	}
	if _, err := f.uc.AddMessage(ctx, AddMessageInput{DisputeID: d.ID, SenderID: "stranger", Message: "hi"}); !errors.Is(err, ErrNotDisputeParticipant) {
		t.Fatalf("expected ErrNotDisputeParticipant, got %v", err)
	}
	if _, err := f.uc.AddMessage(ctx, AddMessageInput{DisputeID: d.ID, SenderID: "provider-1", Message: "   "}); !failure.HasCode(err, failure.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	public, err := f.uc.AddMessage(ctx, AddMessageInput{DisputeID: d.ID, SenderID: "provider-1", Message: "Photos attached", Attachments: []string{"s3://evidence/1.jpg"}})
	if err != nil {
		t.Fatalf("public message: %v", err)
	}
	if public.SenderType != entities.SenderTypeArtisan || len(public.Attachments) != 1 {
		t.Fatalf("unexpected message: %+v", public)
	}
	internal, err := f.uc.AddMessage(ctx, AddMessageInput{DisputeID: d.ID, SenderID: "mod-1", Message: "Client looks right", IsInternal: true})
	if err != nil {
		t.Fatalf("internal message: %v", err)
	}
	if internal.SenderType != entities.SenderTypeMediator || !internal.IsInternal {
		t.Fatalf("unexpected message: %+v", internal)
	}

	asClient, err := f.uc.GetDispute(ctx, d.ID, "client-1")
	if err != nil {
		t.Fatalf("get as client: %v", err)
	}
	if len(asClient.Messages) != 1 {
		t.Fatalf("expected client to see 1 message, got %d", len(asClient.Messages))
	}
	asMediator, err := f.uc.GetDispute(ctx, d.ID, "mod-1")
	if err != nil {
		t.Fatalf("get as mediator: %v", err)
	}
	if len(asMediator.Messages) != 2 {
		t.Fatalf("expected mediator to see 2 messages, got %d", len(asMediator.Messages))
	}
	asAdmin, err := f.uc.GetDispute(ctx, d.ID, "admin-1")
	if err != nil || len(asAdmin.Messages) != 1 {
		t.Fatalf("expected admin to read without internal notes, got %d, %v", len(asAdmin.Messages), err)
	}
	if _, err := f.uc.GetDispute(ctx, d.ID, "stranger"); !errors.Is(err, ErrNotDisputeParticipant) {
		t.Fatalf("expected ErrNotDisputeParticipant, got %v", err)
	}

	if _, err := f.uc.CloseDispute(ctx, d.ID, "client-1", "done"); !failure.HasCode(err, failure.CodeUnauthorized) {
		t.Fatalf("expected unauthorized close, got %v", err)
	}
	if _, err := f.uc.CloseDispute(ctx, d.ID, "mod-1", "Parties settled offline"); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := f.uc.AddMessage(ctx, AddMessageInput{DisputeID: d.ID, SenderID: "client-1", Message: "one more"}); !errors.Is(err, ErrDisputeClosed) {
		t.Fatalf("expected ErrDisputeClosed, got %v", err)
	}
	if _, err := f.uc.AddMessage(ctx, AddMessageInput{DisputeID: d.ID, SenderID: "mod-1", Message: "closing note", IsInternal: true}); err != nil {
		t.Fatalf("expected mediator note on closed dispute, got %v", err)
	}
}

func TestDisputeUseCase_ListAndStats(t *testing.T) {
	ctx := context.Background()
	f := newDisputeFixture(t)
	resolvedAt := func(h int) *time.Time {
		at := testNow.Add(time.Duration(h) * time.Hour)
		return &at
	}
	seed := []entities.Dispute{
		{ID: "d-1", BookingID: "b-1", ClientID: "client-1", ProviderID: "provider-1", MediatorID: "mod-1", Category: entities.DisputeCategoryDamage,
			Status: entities.DisputeStatusResolvedClientFavor, CreatedAt: testNow, ResolvedAt: resolvedAt(10)},
		{ID: "d-2", BookingID: "b-2", ClientID: "client-1", ProviderID: "provider-1", MediatorID: "mod-1", Category: entities.DisputeCategoryDelay,
			Status: entities.DisputeStatusResolvedCompromise, CreatedAt: testNow.Add(time.Hour), ResolvedAt: resolvedAt(21)},
		{ID: "d-3", BookingID: "b-3", ClientID: "client-2", ProviderID: "provider-1", Category: entities.DisputeCategoryDelay,
			Status: entities.DisputeStatusOpened, CreatedAt: testNow.Add(2 * time.Hour)},
	}
	for _, d := range seed {
		if err := f.disputes.Create(ctx, d); err != nil {
			t.Fatalf("seed %s: %v", d.ID, err)
		}
	}

	stats, err := f.uc.GetDisputeStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 || stats.Open != 1 || stats.Resolved != 2 || stats.AverageResolutionHours != 15 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.ResolutionRates[entities.DisputeOutcomeClientFavor] != 0.5 || stats.ResolutionRates[entities.DisputeOutcomeArtisanFavor] != 0 {
		t.Fatalf("unexpected rates: %+v", stats.ResolutionRates)
	}
	if stats.ByCategory[entities.DisputeCategoryDelay] != 2 {
		t.Fatalf("unexpected categories: %+v", stats.ByCategory)
	}

	asClient, err := f.uc.ListUserDisputes(ctx, "client-1", entities.RoleClient, "")
	if err != nil || len(asClient) != 2 || asClient[0].ID != "d-2" {
		t.Fatalf("expected newest first for client, got %+v, %v", asClient, err)
	}
	open, err := f.uc.ListUserDisputes(ctx, "provider-1", entities.RoleArtisan, entities.DisputeStatusOpened)
	if err != nil || len(open) != 1 || open[0].ID != "d-3" {
		t.Fatalf("unexpected open disputes: %+v, %v", open, err)
	}
	mediated, err := f.uc.ListUserDisputes(ctx, "mod-1", entities.RoleModerator, "")
	if err != nil || len(mediated) != 2 {
		t.Fatalf("expected two mediated disputes, got %d, %v", len(mediated), err)
	}
	if _, err := f.uc.ListUserDisputes(ctx, "client-1", entities.RoleClient, "pending"); !failure.HasCode(err, failure.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
