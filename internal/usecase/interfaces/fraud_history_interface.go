package interfaces

import (
	"context"
	"time"

	"marketplace_trust/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IFraudHistory answers the history questions the risk engine asks.
type IFraudHistory interface {
	CountReviewsByClientSince(ctx context.Context, clientID string, since time.Time) (int, error)
	CountReviewsByClientForProvider(ctx context.Context, clientID, providerID string) (int, error)
	CountNegativeReviewsFromIPSince(ctx context.Context, ip string, maxRating int, since time.Time) (int, error)

	RecentSessionIPs(ctx context.Context, userID string, limit int) ([]string, error)
	CountSessionsFromIPs(ctx context.Context, userID string, ips []string) (int, error)
	SessionIP(ctx context.Context, sessionID string) (string, bool, error)

	CountPaymentsSince(ctx context.Context, userID string, since time.Time) (int, error)
	SumCompletedPaymentsSince(ctx context.Context, userID string, since time.Time) (decimal.Decimal, error)
	CountCompletedPayments(ctx context.Context, userID string) (int, error)
	CountOtherDeviceUsers(ctx context.Context, fingerprint, userID string) (int, error)

	CountFailedLoginsSince(ctx context.Context, userID string, since time.Time) (int, error)
	CountProfileChangesSince(ctx context.Context, userID string, since time.Time) (int, error)
	IsBlacklisted(ctx context.Context, ip string) (bool, error)
}

// IFraudCheckLog is the append-only analytics log of assessments.
type IFraudCheckLog interface {
	Append(ctx context.Context, record entities.FraudCheckRecord) error
	ListSince(ctx context.Context, since time.Time) ([]entities.FraudCheckRecord, error)
}
