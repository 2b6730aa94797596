package repository

import (
	"context"
	"errors"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PlatformPostgresDirectory reads bookings and profiles from the marketplace
// database. The provider of a booking is stored as artisan_id.
type PlatformPostgresDirectory struct {
	pool *pgxpool.Pool
}

var _ interfaces.IPlatformDirectory = (*PlatformPostgresDirectory)(nil)

func NewPlatformPostgresDirectory(pool *pgxpool.Pool) *PlatformPostgresDirectory {
	return &PlatformPostgresDirectory{pool: pool}
}

func (d *PlatformPostgresDirectory) GetBooking(ctx context.Context, id string) (entities.Booking, error) {
	var (
		b      entities.Booking
		amount decimal.Decimal
	)
	err := d.pool.QueryRow(ctx, `
		SELECT id, client_id, artisan_id, status, amount::text
		FROM bookings WHERE id = $1`, id).
		Scan(&b.ID, &b.ClientID, &b.ProviderID, &b.Status, &amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Booking{}, nil
	}
	if err != nil {
		return entities.Booking{}, err
	}
	b.Amount = amount
	return b, nil
}

const profileColumns = `id, email, phone, full_name, role, payment_customer_id, payout_account_id, trust_score`

func scanProfile(row pgx.Row) (entities.Profile, error) {
	var (
		p    entities.Profile
		role string
	)
	if err := row.Scan(&p.ID, &p.Email, &p.Phone, &p.FullName, &role, &p.PaymentCustomerID, &p.PayoutAccountID, &p.TrustScore); err != nil {
		return entities.Profile{}, err
	}
	p.Role = entities.Role(role)
	return p, nil
}

func (d *PlatformPostgresDirectory) GetProfile(ctx context.Context, id string) (entities.Profile, error) {
	p, err := scanProfile(d.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Profile{}, nil
	}
	return p, err
}

func (d *PlatformPostgresDirectory) ListProfilesByRole(ctx context.Context, role entities.Role) ([]entities.Profile, error) {
	rows, err := d.pool.Query(ctx, `SELECT `+profileColumns+` FROM profiles WHERE role = $1 ORDER BY id`, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (d *PlatformPostgresDirectory) SetPaymentCustomerID(ctx context.Context, userID, customerID string) error {
	tag, err := d.pool.Exec(ctx, `UPDATE profiles SET payment_customer_id = $2 WHERE id = $1`, userID, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return failure.ErrNotFound
	}
	return nil
}

// AdjustTrustScore clamps in SQL so concurrent adjustments never overshoot.
func (d *PlatformPostgresDirectory) AdjustTrustScore(ctx context.Context, userID string, delta int) (int, error) {
	var score int
	err := d.pool.QueryRow(ctx, `
		UPDATE profiles
		SET trust_score = LEAST($3, GREATEST($2, trust_score + $4))
		WHERE id = $1
		RETURNING trust_score`,
		userID, entities.MinTrustScore, entities.MaxTrustScore, delta).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, failure.ErrNotFound
	}
	return score, err
}
