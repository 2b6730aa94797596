package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/infrastructure/metrics"
	"marketplace_trust/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mssola/useragent"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const evidenceTimeout = 5 * time.Second

// IFraudUseCase scores reviews, payments and account behavior. It never
// changes escrow or dispute state.
type IFraudUseCase interface {
	CheckReview(ctx context.Context, in entities.ReviewCheckInput) (entities.FraudAssessment, error)
	CheckPayment(ctx context.Context, in entities.PaymentCheckInput) (entities.FraudAssessment, error)
	CheckBehavior(ctx context.Context, in entities.BehaviorCheckInput) (entities.FraudAssessment, error)
	GetFraudStats(ctx context.Context, period entities.StatsPeriod) (entities.FraudStats, error)
}

type FraudDeps struct {
	History   interfaces.IFraudHistory
	Directory interfaces.IPlatformDirectory
	CheckLog  interfaces.IFraudCheckLog
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Clock     Clock
}

type FraudUseCase struct {
	history   interfaces.IFraudHistory
	directory interfaces.IPlatformDirectory
	checkLog  interfaces.IFraudCheckLog
	log       *zap.Logger
	metrics   *metrics.Metrics
	now       Clock
}

var (
	_ IFraudUseCase     = (*FraudUseCase)(nil)
	_ IPaymentRiskCheck = (*FraudUseCase)(nil)
)

func NewFraudUseCase(d FraudDeps) *FraudUseCase {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := d.Clock
	if now == nil {
		now = systemClock
	}
	return &FraudUseCase{
		history:   d.History,
		directory: d.Directory,
		checkLog:  d.CheckLog,
		log:       log.Named("fraud.usecase"),
		metrics:   d.Metrics,
		now:       now,
	}
}

func (u *FraudUseCase) CheckReview(ctx context.Context, in entities.ReviewCheckInput) (entities.FraudAssessment, error) {
	clientID, err := requireID(in.ClientID, "client_id")
	if err != nil {
		return entities.FraudAssessment{}, err
	}
	if _, err := requireID(in.ProviderID, "provider_id"); err != nil {
		return entities.FraudAssessment{}, err
	}
	if in.Rating < 1 || in.Rating > 5 {
		return entities.FraudAssessment{}, failure.Validation("rating must be between 1 and 5")
	}
	now := u.now()

	var ev ReviewEvidence
	evCtx, cancel := context.WithTimeout(ctx, evidenceTimeout)
	defer cancel()
	g, gctx := errgroup.WithContext(evCtx)

	if bookingID := strings.TrimSpace(in.BookingID); bookingID != "" {
		g.Go(func() error {
			b, err := u.directory.GetBooking(gctx, bookingID)
			if err != nil {
				return err
			}
			ev.BookingFound = b.ID != "" && b.ProviderID == in.ProviderID
			ev.BookingStatus = b.Status
			return nil
		})
	}
	g.Go(func() (err error) {
		ev.ReviewsLastDay, err = u.history.CountReviewsByClientSince(gctx, clientID, now.Add(-24*time.Hour))
		return err
	})
	g.Go(func() (err error) {
		ev.ReviewsOfProvider, err = u.history.CountReviewsByClientForProvider(gctx, clientID, in.ProviderID)
		return err
	})
	if in.IPAddress != "" && in.Rating <= reviewBombingMaxRating {
		g.Go(func() (err error) {
			ev.NegativeFromIPWeek, err = u.history.CountNegativeReviewsFromIPSince(gctx, in.IPAddress, reviewBombingMaxRating, now.Add(-7*24*time.Hour))
			return err
		})
	}
	g.Go(func() error {
		ips, err := u.history.RecentSessionIPs(gctx, clientID, recentSessionSample)
		if err != nil {
			return err
		}
		if len(ips) > 0 {
			if ev.SharedSessionIPs, err = u.history.CountSessionsFromIPs(gctx, in.ProviderID, ips); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		c, err := u.directory.GetProfile(gctx, clientID)
		if err != nil {
			return err
		}
		p, err := u.directory.GetProfile(gctx, in.ProviderID)
		if err != nil {
			return err
		}
		ev.ClientProfile, ev.ProviderProfile = c, p
		ev.CollusionDataComplete = true
		return nil
	})
	if err := g.Wait(); err != nil {
		u.log.Warn("review evidence unavailable", zap.String("client_id", clientID), zap.Error(err))
		return entities.FraudAssessment{}, err
	}

	a := entities.NewFraudAssessment(clientID, entities.FraudCheckReview, ScoreReview(in, ev), now)
	a.Metadata = map[string]string{"provider_id": in.ProviderID, "booking_id": in.BookingID}
	u.record(ctx, a)
	return a, nil
}

func (u *FraudUseCase) CheckPayment(ctx context.Context, in entities.PaymentCheckInput) (entities.FraudAssessment, error) {
	userID, err := requireID(in.UserID, "user_id")
	if err != nil {
		return entities.FraudAssessment{}, err
	}
	if in.Amount.IsNegative() {
		return entities.FraudAssessment{}, ErrNegativeAmount
	}
	now := u.now()
	dayAgo := now.Add(-24 * time.Hour)

	var ev PaymentEvidence
	evCtx, cancel := context.WithTimeout(ctx, evidenceTimeout)
	defer cancel()
	g, gctx := errgroup.WithContext(evCtx)

	g.Go(func() (err error) {
		ev.TransactionsLastDay, err = u.history.CountPaymentsSince(gctx, userID, dayAgo)
		return err
	})
	g.Go(func() (err error) {
		ev.CompletedLastDay, err = u.history.SumCompletedPaymentsSince(gctx, userID, dayAgo)
		return err
	})
	g.Go(func() (err error) {
		ev.CompletedPayments, err = u.history.CountCompletedPayments(gctx, userID)
		return err
	})
	if in.DeviceFingerprint != "" {
		g.Go(func() (err error) {
			ev.OtherDeviceUsers, err = u.history.CountOtherDeviceUsers(gctx, in.DeviceFingerprint, userID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		u.log.Warn("payment evidence unavailable", zap.String("user_id", userID), zap.Error(err))
		return entities.FraudAssessment{}, err
	}

	a := entities.NewFraudAssessment(userID, entities.FraudCheckPayment, ScorePayment(in, ev), now)
	a.Metadata = map[string]string{"amount": in.Amount.String()}
	u.record(ctx, a)
	return a, nil
}

func (u *FraudUseCase) CheckBehavior(ctx context.Context, in entities.BehaviorCheckInput) (entities.FraudAssessment, error) {
	userID, err := requireID(in.UserID, "user_id")
	if err != nil {
		return entities.FraudAssessment{}, err
	}
	now := u.now()

	var ev BehaviorEvidence
	evCtx, cancel := context.WithTimeout(ctx, evidenceTimeout)
	defer cancel()
	g, gctx := errgroup.WithContext(evCtx)

	switch in.Action {
	case entities.BehaviorActionLogin:
		g.Go(func() (err error) {
			ev.FailedLoginsLastHour, err = u.history.CountFailedLoginsSince(gctx, userID, now.Add(-time.Hour))
			return err
		})
	case entities.BehaviorActionProfileUpdate:
		g.Go(func() (err error) {
			ev.ProfileChangesLastDay, err = u.history.CountProfileChangesSince(gctx, userID, now.Add(-24*time.Hour))
			return err
		})
	}
	if in.IPAddress != "" {
		g.Go(func() (err error) {
			ev.Blacklisted, err = u.history.IsBlacklisted(gctx, in.IPAddress)
			return err
		})
	}
	if in.SessionID != "" && in.IPAddress != "" {
		g.Go(func() (err error) {
			ev.SessionIP, ev.SessionFound, err = u.history.SessionIP(gctx, in.SessionID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		u.log.Warn("behavior evidence unavailable", zap.String("user_id", userID), zap.Error(err))
		return entities.FraudAssessment{}, err
	}

	a := entities.NewFraudAssessment(userID, entities.FraudCheckBehavior, ScoreBehavior(in, ev), now)
	a.Metadata = userAgentMetadata(in.UserAgent)
	a.Metadata["action"] = string(in.Action)
	u.record(ctx, a)
	return a, nil
}

// userAgentMetadata describes the client for reviewers. Automated clients are
// noted but add no weight.
func userAgentMetadata(raw string) map[string]string {
	meta := map[string]string{}
	if strings.TrimSpace(raw) == "" {
		return meta
	}
	ua := useragent.New(raw)
	name, version := ua.Browser()
	meta["browser"] = strings.TrimSpace(name + " " + version)
	meta["os"] = ua.OS()
	meta["mobile"] = strconv.FormatBool(ua.Mobile())
	meta["bot"] = strconv.FormatBool(ua.Bot())
	return meta
}

func (u *FraudUseCase) GetFraudStats(ctx context.Context, period entities.StatsPeriod) (entities.FraudStats, error) {
	if period == "" {
		period = entities.StatsPeriodWeek
	}
	window, ok := period.Duration()
	if !ok {
		return entities.FraudStats{}, failure.Validation("period must be day, week or month")
	}
	records, err := u.checkLog.ListSince(ctx, u.now().Add(-window))
	if err != nil {
		return entities.FraudStats{}, err
	}
	stats := entities.FraudStats{
		Period: period,
		ByLevel: map[entities.RiskLevel]int{
			entities.RiskLevelLow: 0, entities.RiskLevelMedium: 0, entities.RiskLevelHigh: 0, entities.RiskLevelCritical: 0,
		},
		ByCheckType: map[entities.FraudCheckType]int{},
	}
	total := 0
	for _, r := range records {
		stats.TotalChecks++
		stats.ByLevel[r.RiskLevel]++
		stats.ByCheckType[r.CheckType]++
		total += r.RiskScore
		if r.Action == entities.RiskActionBlock {
			stats.BlockedCount++
		}
		if r.RequiresManualReview {
			stats.ManualReviews++
		}
	}
	if stats.TotalChecks > 0 {
		stats.AverageScore = float64(total) / float64(stats.TotalChecks)
	}
	return stats, nil
}

// record appends the analytics row. Losing it never fails the check.
func (u *FraudUseCase) record(ctx context.Context, a entities.FraudAssessment) {
	u.metrics.ObserveRiskAssessment(string(a.CheckType), string(a.RiskLevel), a.RiskScore)
	if a.RequiresManualReview {
		u.log.Warn("assessment requires manual review", zap.String("user_id", a.UserID),
			zap.String("check_type", string(a.CheckType)), zap.Int("risk_score", a.RiskScore))
	}
	if u.checkLog == nil {
		return
	}
	err := u.checkLog.Append(ctx, entities.FraudCheckRecord{
		ID:                   uuid.NewString(),
		UserID:               a.UserID,
		CheckType:            a.CheckType,
		RiskScore:            a.RiskScore,
		RiskLevel:            a.RiskLevel,
		Action:               a.Action,
		Signals:              a.Signals,
		RequiresManualReview: a.RequiresManualReview,
		Metadata:             a.Metadata,
		CreatedAt:            a.AssessedAt,
	})
	if err != nil {
		u.log.Warn("fraud check log append failed", zap.String("user_id", a.UserID), zap.Error(err))
	}
}
