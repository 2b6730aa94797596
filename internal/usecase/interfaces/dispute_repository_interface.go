package interfaces

import (
	"context"

	"marketplace_trust/internal/domain/entities"
)

// IDisputeRepository persists disputes with their threads and timelines.
//
// Create reserves the booking for the new dispute and fails with
// failure.ErrAlreadyExists while another non-terminal dispute holds it. Update
// is conditional on the expected status and frees the reservation when the
// dispute reaches a terminal status.
type IDisputeRepository interface {
	Create(ctx context.Context, dispute entities.Dispute) error
	GetByID(ctx context.Context, id string) (entities.Dispute, error)
	FindOpenByBooking(ctx context.Context, bookingID string) (entities.Dispute, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Dispute, error)
	ListByProvider(ctx context.Context, providerID string) ([]entities.Dispute, error)
	ListAll(ctx context.Context) ([]entities.Dispute, error)
	CountActiveByMediator(ctx context.Context, mediatorID string) (int, error)
	Update(ctx context.Context, dispute entities.Dispute, expected entities.DisputeStatus) (entities.Dispute, error)

	AppendMessage(ctx context.Context, message entities.DisputeMessage) error
	ListMessages(ctx context.Context, disputeID string) ([]entities.DisputeMessage, error)
	AppendTimeline(ctx context.Context, event entities.DisputeTimelineEvent) error
	ListTimeline(ctx context.Context, disputeID string) ([]entities.DisputeTimelineEvent, error)
}
