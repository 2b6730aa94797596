package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	authActionLoginFailed  = "login_failed"
	auditActionProfileEdit = "profile.update"
	paymentStatusCompleted = "completed"
)

// FraudPostgresHistory answers risk engine questions from the marketplace's
// review, payment, session and audit tables.
type FraudPostgresHistory struct {
	pool *pgxpool.Pool
}

var _ interfaces.IFraudHistory = (*FraudPostgresHistory)(nil)

func NewFraudPostgresHistory(pool *pgxpool.Pool) *FraudPostgresHistory {
	return &FraudPostgresHistory{pool: pool}
}

func (h *FraudPostgresHistory) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := h.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (h *FraudPostgresHistory) CountReviewsByClientSince(ctx context.Context, clientID string, since time.Time) (int, error) {
	return h.count(ctx, `SELECT COUNT(*) FROM reviews WHERE client_id = $1 AND created_at >= $2`, clientID, since)
}

func (h *FraudPostgresHistory) CountReviewsByClientForProvider(ctx context.Context, clientID, providerID string) (int, error) {
	return h.count(ctx, `SELECT COUNT(*) FROM reviews WHERE client_id = $1 AND artisan_id = $2`, clientID, providerID)
}

func (h *FraudPostgresHistory) CountNegativeReviewsFromIPSince(ctx context.Context, ip string, maxRating int, since time.Time) (int, error) {
	return h.count(ctx, `SELECT COUNT(*) FROM reviews WHERE ip_address = $1 AND rating <= $2 AND created_at >= $3`, ip, maxRating, since)
}

func (h *FraudPostgresHistory) RecentSessionIPs(ctx context.Context, userID string, limit int) ([]string, error) {
	rows, err := h.pool.Query(ctx, `
		SELECT ip_address FROM sessions
		WHERE user_id = $1 AND ip_address <> ''
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (h *FraudPostgresHistory) CountSessionsFromIPs(ctx context.Context, userID string, ips []string) (int, error) {
	if len(ips) == 0 {
		return 0, nil
	}
	return h.count(ctx, `SELECT COUNT(*) FROM sessions WHERE user_id = $1 AND ip_address = ANY($2)`, userID, ips)
}

func (h *FraudPostgresHistory) SessionIP(ctx context.Context, sessionID string) (string, bool, error) {
	var ip string
	err := h.pool.QueryRow(ctx, `SELECT ip_address FROM sessions WHERE id = $1`, sessionID).Scan(&ip)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return ip, true, nil
}

func (h *FraudPostgresHistory) CountPaymentsSince(ctx context.Context, userID string, since time.Time) (int, error) {
	return h.count(ctx, `SELECT COUNT(*) FROM payments WHERE user_id = $1 AND created_at >= $2`, userID, since)
}

func (h *FraudPostgresHistory) SumCompletedPaymentsSince(ctx context.Context, userID string, since time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := h.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)::text FROM payments
		WHERE user_id = $1 AND status = $2 AND created_at >= $3`,
		userID, paymentStatusCompleted, since).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

func (h *FraudPostgresHistory) CountCompletedPayments(ctx context.Context, userID string) (int, error) {
	return h.count(ctx, `SELECT COUNT(*) FROM payments WHERE user_id = $1 AND status = $2`, userID, paymentStatusCompleted)
}

func (h *FraudPostgresHistory) CountOtherDeviceUsers(ctx context.Context, fingerprint, userID string) (int, error) {
	return h.count(ctx, `
		SELECT COUNT(DISTINCT user_id) FROM user_devices
		WHERE device_fingerprint = $1 AND user_id <> $2`, fingerprint, userID)
}

func (h *FraudPostgresHistory) CountFailedLoginsSince(ctx context.Context, userID string, since time.Time) (int, error) {
	return h.count(ctx, `SELECT COUNT(*) FROM auth_logs WHERE user_id = $1 AND action = $2 AND created_at >= $3`,
		userID, authActionLoginFailed, since)
}

func (h *FraudPostgresHistory) CountProfileChangesSince(ctx context.Context, userID string, since time.Time) (int, error) {
	return h.count(ctx, `SELECT COUNT(*) FROM audit_logs WHERE user_id = $1 AND action = $2 AND created_at >= $3`,
		userID, auditActionProfileEdit, since)
}

func (h *FraudPostgresHistory) IsBlacklisted(ctx context.Context, ip string) (bool, error) {
	var found bool
	err := h.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ip_blacklist WHERE ip_address = $1)`, ip).Scan(&found)
	return found, err
}

// FraudCheckPostgresLog appends assessments to fraud_checks.
type FraudCheckPostgresLog struct {
	pool *pgxpool.Pool
}

var _ interfaces.IFraudCheckLog = (*FraudCheckPostgresLog)(nil)

func NewFraudCheckPostgresLog(pool *pgxpool.Pool) *FraudCheckPostgresLog {
	return &FraudCheckPostgresLog{pool: pool}
}

type signalRow struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

func (l *FraudCheckPostgresLog) Append(ctx context.Context, r entities.FraudCheckRecord) error {
	signals := make([]signalRow, 0, len(r.Signals))
	for _, s := range r.Signals {
		signals = append(signals, signalRow{Code: s.Code, Description: s.Description, Weight: s.Weight})
	}
	signalsJSON, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	metadata := r.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}
	_, err = l.pool.Exec(ctx, `
		INSERT INTO fraud_checks
			(id, user_id, check_type, risk_score, risk_level, action, signals, requires_manual_review, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.ID, r.UserID, string(r.CheckType), r.RiskScore, string(r.RiskLevel), string(r.Action),
		signalsJSON, r.RequiresManualReview, metadataJSON, r.CreatedAt)
	return err
}

func (l *FraudCheckPostgresLog) ListSince(ctx context.Context, since time.Time) ([]entities.FraudCheckRecord, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT id, user_id, check_type, risk_score, risk_level, action, signals, requires_manual_review, metadata, created_at
		FROM fraud_checks
		WHERE created_at >= $1
		ORDER BY created_at`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.FraudCheckRecord, 0)
	for rows.Next() {
		var (
			r                        entities.FraudCheckRecord
			checkType, level, action string
			signalsJSON, metaJSON    []byte
		)
		if err := rows.Scan(&r.ID, &r.UserID, &checkType, &r.RiskScore, &level, &action,
			&signalsJSON, &r.RequiresManualReview, &metaJSON, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.CheckType = entities.FraudCheckType(checkType)
		r.RiskLevel = entities.RiskLevel(level)
		r.Action = entities.RiskAction(action)

		var signals []signalRow
		if err := json.Unmarshal(signalsJSON, &signals); err != nil {
			return nil, err
		}
		for _, s := range signals {
			r.Signals = append(r.Signals, entities.FraudSignal{Code: s.Code, Description: s.Description, Weight: s.Weight})
		}
		if err := json.Unmarshal(metaJSON, &r.Metadata); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
