package usecase

import (
	"testing"

	"marketplace_trust/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signalCodes(signals []entities.FraudSignal) []string {
	codes := make([]string, 0, len(signals))
	for _, s := range signals {
		codes = append(codes, s.Code)
	}
	return codes
}

func weightOf(signals []entities.FraudSignal, code string) int {
	total := 0
	for _, s := range signals {
		if s.Code == code {
			total += s.Weight
		}
	}
	return total
}

func TestScoreReview_BookingReference(t *testing.T) {
	tests := []struct {
		name   string
		in     entities.ReviewCheckInput
		ev     ReviewEvidence
		code   string
		weight int
	}{
		{"no booking reference", entities.ReviewCheckInput{}, ReviewEvidence{}, "unverified_review", 15},
		{"booking not found", entities.ReviewCheckInput{BookingID: "b-1"}, ReviewEvidence{}, "no_booking", 30},
		{"booking not completed", entities.ReviewCheckInput{BookingID: "b-1"}, ReviewEvidence{BookingFound: true, BookingStatus: "confirmed"}, "incomplete_booking", 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Rating = 4
			tt.in.Comment = "Solid job on the bathroom, arrived on time and cleaned up afterwards."
			signals := ScoreReview(tt.in, tt.ev)
			assert.Equal(t, tt.weight, weightOf(signals, tt.code))
			assert.Len(t, signals, 1)
		})
	}

	t.Run("completed booking adds nothing", func(t *testing.T) {
		in := entities.ReviewCheckInput{BookingID: "b-1", Rating: 4, Comment: "Solid job on the bathroom, arrived on time and cleaned up afterwards."}
		signals := ScoreReview(in, ReviewEvidence{BookingFound: true, BookingStatus: entities.BookingStatusCompleted})
		assert.Empty(t, signals)
	})
}

func TestScoreReview_VelocityScenario(t *testing.T) {
	in := entities.ReviewCheckInput{ClientID: "c", ProviderID: "p", Rating: 5, Comment: "Great!"}
	ev := ReviewEvidence{ReviewsLastDay: 5, ReviewsOfProvider: 5}

	signals := ScoreReview(in, ev)
	assert.ElementsMatch(t, []string{"unverified_review", "high_velocity", "duplicate_reviews", "short_comment", "extreme_rating_no_detail"}, signalCodes(signals))

	a := entities.NewFraudAssessment("c", entities.FraudCheckReview, signals, testNow)
	assert.Equal(t, 100, a.RiskScore)
	assert.Equal(t, entities.RiskLevelCritical, a.RiskLevel)
	assert.Equal(t, entities.RiskActionBlock, a.Action)
	assert.True(t, a.RequiresManualReview)

	below := ScoreReview(in, ReviewEvidence{ReviewsLastDay: 4, ReviewsOfProvider: 2})
	assert.NotContains(t, signalCodes(below), "high_velocity")
	assert.NotContains(t, signalCodes(below), "duplicate_reviews")
}

func TestContentSignals(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		rating  int
		want    []string
	}{
		{"clean text", "The plumber fixed the leak quickly and explained what went wrong.", 4, nil},
		{"short", "ok", 3, []string{"short_comment"}},
		{"url", "See the photos at https://example.com/pics before hiring this person.", 2, []string{"suspicious_content"}},
		{"repeated characters", "Amazing work!!!!!! Would definitely hire again for the next project.", 4, []string{"suspicious_content"}},
		{"shouting", "THISISTERRIBLE work and the price kept changing during the job itself.", 2, []string{"suspicious_content"}},
		{"keyword", "This whole listing is a scam, the pictures are from another company.", 2, []string{"suspicious_content"}},
		{"extreme rating short text", "Loved it, thanks a lot!", 5, []string{"extreme_rating_no_detail"}},
		{"generic phrasing", "Great service, excellent work, highly recommend to anyone who needs tiling.", 4, []string{"generic_content"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := signalCodes(contentSignals(tt.comment, tt.rating))
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestCollusionScore(t *testing.T) {
	client := entities.Profile{Phone: "+351900000000", Email: "ana@tiles-co.pt"}
	provider := entities.Profile{Phone: "+351900000000", Email: "rui@tiles-co.pt"}

	assert.Equal(t, 0, collusionScore(ReviewEvidence{ClientProfile: client, ProviderProfile: provider}), "incomplete data scores nothing")
	assert.Equal(t, collusionCap, collusionScore(ReviewEvidence{ClientProfile: client, ProviderProfile: provider, SharedSessionIPs: 2, CollusionDataComplete: true}))

	common := ReviewEvidence{
		ClientProfile:         entities.Profile{Email: "a@gmail.com"},
		ProviderProfile:       entities.Profile{Email: "b@GMAIL.com"},
		CollusionDataComplete: true,
	}
	assert.Equal(t, 0, collusionScore(common), "common providers are ignored")

	domain := ReviewEvidence{
		ClientProfile:         entities.Profile{Email: "a@tiles-co.pt"},
		ProviderProfile:       entities.Profile{Email: "b@tiles-co.pt"},
		CollusionDataComplete: true,
	}
	assert.Equal(t, 30, collusionScore(domain))
}

func TestScoreReview_ReviewBombing(t *testing.T) {
	in := entities.ReviewCheckInput{BookingID: "b", Rating: 1, IPAddress: "10.0.0.1",
		Comment: "Did not show up on the agreed day and never answered the phone afterwards."}
	ev := ReviewEvidence{BookingFound: true, BookingStatus: entities.BookingStatusCompleted, NegativeFromIPWeek: 3}
	assert.Equal(t, 35, weightOf(ScoreReview(in, ev), "review_bombing"))

	in.Rating = 4
	assert.Zero(t, weightOf(ScoreReview(in, ev), "review_bombing"))
}

func TestScorePayment(t *testing.T) {
	t.Run("first large transaction with mismatched addresses", func(t *testing.T) {
		in := entities.PaymentCheckInput{Amount: decimal.NewFromInt(1200), BillingAddress: "Rua A, 1", ShippingAddress: "Rua B, 2"}
		signals := ScorePayment(in, PaymentEvidence{})
		assert.ElementsMatch(t, []string{"address_mismatch", "first_large_transaction"}, signalCodes(signals))
	})

	t.Run("addresses compare without punctuation or case", func(t *testing.T) {
		in := entities.PaymentCheckInput{Amount: decimal.NewFromInt(10), BillingAddress: "Rua A, 1", ShippingAddress: "rua a 1"}
		assert.Empty(t, ScorePayment(in, PaymentEvidence{CompletedPayments: 3}))
	})

	t.Run("velocity and daily ceiling", func(t *testing.T) {
		in := entities.PaymentCheckInput{Amount: decimal.NewFromInt(600), DeviceFingerprint: "fp"}
		ev := PaymentEvidence{TransactionsLastDay: 10, CompletedLastDay: decimal.NewFromInt(49500), CompletedPayments: 12, OtherDeviceUsers: 1}
		signals := ScorePayment(in, ev)
		assert.ElementsMatch(t, []string{"high_transaction_velocity", "high_daily_amount", "shared_device"}, signalCodes(signals))

		a := entities.NewFraudAssessment("u", entities.FraudCheckPayment, signals, testNow)
		assert.Equal(t, 75, a.RiskScore)
		assert.Equal(t, entities.RiskActionBlock, a.Action)
	})

	t.Run("exactly at the ceiling is allowed", func(t *testing.T) {
		in := entities.PaymentCheckInput{Amount: decimal.NewFromInt(500)}
		ev := PaymentEvidence{CompletedLastDay: decimal.NewFromInt(49500), CompletedPayments: 1}
		assert.Empty(t, ScorePayment(in, ev))
	})
}

func TestScoreBehavior(t *testing.T) {
	tests := []struct {
		name string
		in   entities.BehaviorCheckInput
		ev   BehaviorEvidence
		want int
	}{
		{"brute force", entities.BehaviorCheckInput{Action: entities.BehaviorActionLogin}, BehaviorEvidence{FailedLoginsLastHour: 5}, 40},
		{"failed logins ignored for other actions", entities.BehaviorCheckInput{Action: entities.BehaviorActionOther}, BehaviorEvidence{FailedLoginsLastHour: 9}, 0},
		{"profile churn", entities.BehaviorCheckInput{Action: entities.BehaviorActionProfileUpdate}, BehaviorEvidence{ProfileChangesLastDay: 10}, 25},
		{"blacklisted ip", entities.BehaviorCheckInput{IPAddress: "10.1.1.1"}, BehaviorEvidence{Blacklisted: true}, 30},
		{"vpn prefix", entities.BehaviorCheckInput{IPAddress: "185.20.1.1"}, BehaviorEvidence{}, 30},
		{"blacklisted vpn counts once", entities.BehaviorCheckInput{IPAddress: "104.1.1.1"}, BehaviorEvidence{Blacklisted: true}, 30},
		{"session hijack", entities.BehaviorCheckInput{SessionID: "s", IPAddress: "10.0.0.2"}, BehaviorEvidence{SessionFound: true, SessionIP: "10.0.0.1"}, 50},
		{"unknown session", entities.BehaviorCheckInput{SessionID: "s", IPAddress: "10.0.0.2"}, BehaviorEvidence{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := entities.NewFraudAssessment("u", entities.FraudCheckBehavior, ScoreBehavior(tt.in, tt.ev), testNow)
			assert.Equal(t, tt.want, a.RiskScore)
		})
	}
}

func TestScoring_IsDeterministicAndCapped(t *testing.T) {
	in := entities.BehaviorCheckInput{Action: entities.BehaviorActionLogin, IPAddress: "185.0.0.1", SessionID: "s"}
	ev := BehaviorEvidence{FailedLoginsLastHour: 50, Blacklisted: true, SessionFound: true, SessionIP: "10.0.0.1"}

	first := entities.NewFraudAssessment("u", entities.FraudCheckBehavior, ScoreBehavior(in, ev), testNow)
	for i := 0; i < 5; i++ {
		again := entities.NewFraudAssessment("u", entities.FraudCheckBehavior, ScoreBehavior(in, ev), testNow)
		require.Equal(t, first, again)
	}
	assert.Equal(t, entities.MaxRiskScore, first.RiskScore)
	assert.Equal(t, entities.RiskLevelCritical, first.RiskLevel)
}

func TestHasRepeatedRun(t *testing.T) {
	assert.True(t, hasRepeatedRun("nooooooo", 6))
	assert.False(t, hasRepeatedRun("nooooo", 6))
	assert.True(t, hasRepeatedRun("ééééééé", 6))
	assert.False(t, hasRepeatedRun("", 6))
	assert.True(t, hasCapitalsRun("ABCDEFGHIJ", 10))
	assert.False(t, hasCapitalsRun("ABCDE FGHIJ", 10))
}
