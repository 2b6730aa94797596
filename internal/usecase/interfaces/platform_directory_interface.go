package interfaces

import (
	"context"

	"marketplace_trust/internal/domain/entities"
)

// IPlatformDirectory reads the bookings and profiles owned by the marketplace.
// Missing records come back as zero values.
type IPlatformDirectory interface {
	GetBooking(ctx context.Context, id string) (entities.Booking, error)
	GetProfile(ctx context.Context, id string) (entities.Profile, error)
	ListProfilesByRole(ctx context.Context, role entities.Role) ([]entities.Profile, error)
	SetPaymentCustomerID(ctx context.Context, userID, customerID string) error
	// AdjustTrustScore adds delta to the user's trust score, clamped to [0,100], and returns the new score.
	AdjustTrustScore(ctx context.Context, userID string, delta int) (int, error)
}
