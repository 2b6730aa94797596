package interfaces

import (
	"context"

	"marketplace_trust/internal/domain/entities"
)

// IEscrowRepository persists escrows, milestones and their append-only records.
//
// Getters return the zero value and a nil error when the record does not exist.
// Status updates are conditional on the expected status and return
// failure.ErrConditionFailed when the stored status no longer matches.
type IEscrowRepository interface {
	Create(ctx context.Context, escrow entities.EscrowTransaction, milestones []entities.EscrowMilestone) error
	GetByID(ctx context.Context, id string) (entities.EscrowTransaction, error)
	GetByBookingID(ctx context.Context, bookingID string) (entities.EscrowTransaction, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.EscrowTransaction, error)
	ListByProvider(ctx context.Context, providerID string) ([]entities.EscrowTransaction, error)
	UpdateStatus(ctx context.Context, escrow entities.EscrowTransaction, expected entities.EscrowStatus) (entities.EscrowTransaction, error)

	GetMilestone(ctx context.Context, id string) (entities.EscrowMilestone, error)
	ListMilestones(ctx context.Context, escrowID string) ([]entities.EscrowMilestone, error)
	UpdateMilestoneStatus(ctx context.Context, milestone entities.EscrowMilestone, expected entities.MilestoneStatus) (entities.EscrowMilestone, error)

	AppendRelease(ctx context.Context, release entities.EscrowRelease) error
	ListReleases(ctx context.Context, escrowID string) ([]entities.EscrowRelease, error)
	AppendEvent(ctx context.Context, event entities.EscrowEvent) error
	ListEvents(ctx context.Context, escrowID string) ([]entities.EscrowEvent, error)
}
