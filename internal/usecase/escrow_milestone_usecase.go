package usecase

import (
	"context"
	"strings"
	"time"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (u *EscrowUseCase) CompleteMilestone(ctx context.Context, milestoneID, providerID string) (entities.EscrowMilestone, error) {
	m, e, err := u.loadMilestone(ctx, milestoneID)
	if err != nil {
		return entities.EscrowMilestone{}, err
	}
	if e.ProviderID != strings.TrimSpace(providerID) {
		return entities.EscrowMilestone{}, ErrNotEscrowProvider
	}
	completed, err := u.milestoneTransition(ctx, m, entities.MilestoneStatusCompleted, func(next *entities.EscrowMilestone, now time.Time) {
		next.CompletedAt = &now
	})
	if err != nil {
		return entities.EscrowMilestone{}, err
	}
	u.event(ctx, e.ID, entities.EscrowEventMilestoneCompleted, e.ProviderID, map[string]string{"milestone_id": m.ID})
	u.notify.send(ctx, e.ClientID, "milestone_completed", map[string]string{"escrow_id": e.ID, "milestone_id": m.ID, "title": m.Title})
	return completed, nil
}

// ApproveMilestone pays a completed milestone out to the provider. The parent
// escrow only has to hold captured funds; its status is not changed, but it is
// claimed for the milestone while the transfer is in flight.
func (u *EscrowUseCase) ApproveMilestone(ctx context.Context, milestoneID, clientID string) (entities.EscrowMilestone, error) {
	m, e, err := u.loadMilestone(ctx, milestoneID)
	if err != nil {
		return entities.EscrowMilestone{}, err
	}
	if e.ClientID != strings.TrimSpace(clientID) {
		return entities.EscrowMilestone{}, ErrNotEscrowClient
	}
	if !m.Status.CanTransitionTo(entities.MilestoneStatusReleased) {
		return entities.EscrowMilestone{}, failure.InvalidTransition("milestone", string(m.Status), string(entities.MilestoneStatusReleased))
	}
	if err := requireCustody(e, milestoneClaim(m, "release")); err != nil {
		return entities.EscrowMilestone{}, err
	}

	provider, err := u.directory.GetProfile(ctx, e.ProviderID)
	if err != nil {
		return entities.EscrowMilestone{}, err
	}
	if provider.PayoutAccountID == "" {
		return entities.EscrowMilestone{}, ErrMissingPayoutAccount
	}
	if e, err = u.claimMilestone(ctx, e, m, "release"); err != nil {
		return entities.EscrowMilestone{}, err
	}

	payout := MilestonePayout(m, e.FeeRate)
	transfer, err := u.gateway.Transfer(ctx, interfaces.TransferRequest{
		Destination:    provider.PayoutAccountID,
		Amount:         payout,
		Currency:       e.Currency,
		TransferGroup:  e.ID,
		Description:    "Milestone " + m.Title,
		IdempotencyKey: idempotencyKey("milestone", m.ID, "payout"),
	})
	if err != nil {
		u.log.Warn("milestone transfer failed", zap.String("milestone_id", m.ID), zap.Error(err))
		return entities.EscrowMilestone{}, failure.Gateway(err, "transfer")
	}

	released, err := u.milestoneTransition(ctx, m, entities.MilestoneStatusReleased, func(next *entities.EscrowMilestone, now time.Time) {
		next.ReleasedAt = &now
		next.TransferID = transfer.ID
	})
	if err != nil {
		return entities.EscrowMilestone{}, err
	}
	u.releaseMilestoneClaim(ctx, e)
	u.record(ctx, entities.EscrowRelease{EscrowID: e.ID, MilestoneID: m.ID, Kind: entities.ReleaseKindMilestoneRelease,
		Amount: payout, Reason: "milestone approved", ActorID: e.ClientID, GatewayReference: transfer.ID})
	u.event(ctx, e.ID, entities.EscrowEventMilestoneReleased, e.ClientID, map[string]string{
		"milestone_id": m.ID,
		"amount":       payout.String(),
	})
	u.notify.send(ctx, e.ProviderID, "milestone_released", map[string]string{"escrow_id": e.ID, "milestone_id": m.ID, "amount": payout.String()})
	return released, nil
}

func (u *EscrowUseCase) RefundMilestone(ctx context.Context, milestoneID, actorID, reason string) (entities.EscrowMilestone, error) {
	m, e, err := u.loadMilestone(ctx, milestoneID)
	if err != nil {
		return entities.EscrowMilestone{}, err
	}
	actorID = strings.TrimSpace(actorID)
	if actorID != e.ProviderID && !isSystem(ctx, actorID) {
		role, err := roleOf(ctx, u.directory, actorID)
		if err != nil {
			return entities.EscrowMilestone{}, err
		}
		if !role.Elevated() {
			return entities.EscrowMilestone{}, failure.Unauthorized("actor may not refund this milestone")
		}
	}
	if !m.Status.CanTransitionTo(entities.MilestoneStatusRefunded) {
		return entities.EscrowMilestone{}, failure.InvalidTransition("milestone", string(m.Status), string(entities.MilestoneStatusRefunded))
	}
	if err := requireCustody(e, milestoneClaim(m, "refund")); err != nil {
		return entities.EscrowMilestone{}, err
	}
	if e, err = u.claimMilestone(ctx, e, m, "refund"); err != nil {
		return entities.EscrowMilestone{}, err
	}

	reason = strings.TrimSpace(reason)
	refund, err := u.gateway.Refund(ctx, interfaces.RefundRequest{
		PaymentID:      e.PaymentIntentID,
		Amount:         m.Amount,
		Currency:       e.Currency,
		Reason:         reason,
		IdempotencyKey: idempotencyKey("milestone", m.ID, "refund"),
	})
	if err != nil {
		u.log.Warn("milestone refund failed", zap.String("milestone_id", m.ID), zap.Error(err))
		return entities.EscrowMilestone{}, failure.Gateway(err, "refund")
	}

	refunded, err := u.milestoneTransition(ctx, m, entities.MilestoneStatusRefunded, func(next *entities.EscrowMilestone, now time.Time) {
		next.RefundedAt = &now
		next.RefundID = refund.ID
	})
	if err != nil {
		return entities.EscrowMilestone{}, err
	}
	u.releaseMilestoneClaim(ctx, e)
	u.record(ctx, entities.EscrowRelease{EscrowID: e.ID, MilestoneID: m.ID, Kind: entities.ReleaseKindRefund,
		Amount: m.Amount, Reason: reason, ActorID: actorID, GatewayReference: refund.ID})
	u.event(ctx, e.ID, entities.EscrowEventMilestoneRefunded, actorID, map[string]string{"milestone_id": m.ID, "amount": m.Amount.String()})
	u.notify.send(ctx, e.ClientID, "milestone_refunded", map[string]string{"escrow_id": e.ID, "milestone_id": m.ID, "amount": m.Amount.String()})
	return refunded, nil
}

// requireCustody rejects milestone money movements unless the parent escrow
// holds captured funds and nothing but claim is moving them.
func requireCustody(e entities.EscrowTransaction, claim string) error {
	if e.Status.Terminal() || e.Status == entities.EscrowStatusPending || e.PaymentIntentID == "" {
		return failure.Newf(failure.CodeInvalidStateTransition, "escrow %s does not hold funds", e.Status)
	}
	if e.SettlingTo != "" || (e.MilestoneInFlight != "" && e.MilestoneInFlight != claim) {
		return ErrSettlementInProgress
	}
	return nil
}

func milestoneClaim(m entities.EscrowMilestone, op string) string {
	return m.ID + ":" + op
}

// claimMilestone marks the escrow busy with m before its money moves. A claim
// already held for the same operation is resumed.
func (u *EscrowUseCase) claimMilestone(ctx context.Context, e entities.EscrowTransaction, m entities.EscrowMilestone, op string) (entities.EscrowTransaction, error) {
	c, err := u.custody(ctx, e)
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if m.Amount.GreaterThan(c.remaining) {
		return entities.EscrowTransaction{}, ErrMilestoneExceedsFunds
	}
	claim := milestoneClaim(m, op)
	if e.MilestoneInFlight == claim {
		return e, nil
	}
	return u.touch(ctx, e, func(next *entities.EscrowTransaction) {
		next.MilestoneInFlight = claim
	})
}

func (u *EscrowUseCase) releaseMilestoneClaim(ctx context.Context, e entities.EscrowTransaction) {
	if _, err := u.touch(ctx, e, func(next *entities.EscrowTransaction) {
		next.MilestoneInFlight = ""
	}); err != nil {
		u.log.Error("failed to release milestone claim", zap.String("escrow_id", e.ID), zap.String("claim", e.MilestoneInFlight), zap.Error(err))
	}
}

func (u *EscrowUseCase) loadMilestone(ctx context.Context, milestoneID string) (entities.EscrowMilestone, entities.EscrowTransaction, error) {
	milestoneID, err := requireID(milestoneID, "milestone_id")
	if err != nil {
		return entities.EscrowMilestone{}, entities.EscrowTransaction{}, err
	}
	m, err := u.repo.GetMilestone(ctx, milestoneID)
	if err != nil {
		return entities.EscrowMilestone{}, entities.EscrowTransaction{}, err
	}
	if m.ID == "" {
		return entities.EscrowMilestone{}, entities.EscrowTransaction{}, ErrMilestoneNotFound
	}
	e, err := u.load(ctx, m.EscrowID)
	if err != nil {
		return entities.EscrowMilestone{}, entities.EscrowTransaction{}, err
	}
	return m, e, nil
}

func (u *EscrowUseCase) milestoneTransition(
	ctx context.Context,
	current entities.EscrowMilestone,
	next entities.MilestoneStatus,
	mutate func(next *entities.EscrowMilestone, now time.Time),
) (entities.EscrowMilestone, error) {
	if !current.Status.CanTransitionTo(next) {
		return entities.EscrowMilestone{}, failure.InvalidTransition("milestone", string(current.Status), string(next))
	}
	now := u.now()
	updated := current
	updated.Status = next
	updated.UpdatedAt = now
	mutate(&updated, now)
	saved, err := u.repo.UpdateMilestoneStatus(ctx, updated, current.Status)
	if err != nil {
		return entities.EscrowMilestone{}, conditional(err, ErrMilestoneNotFound, "milestone")
	}
	return saved, nil
}

// MilestonePayout is what the provider receives for a milestone at the escrow's fee rate.
func MilestonePayout(m entities.EscrowMilestone, feeRate decimal.Decimal) decimal.Decimal {
	return m.Amount.Sub(entities.PlatformFeeFor(m.Amount, feeRate))
}
