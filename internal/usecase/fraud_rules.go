package usecase

import (
	"regexp"
	"strings"

	"marketplace_trust/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Rule thresholds. The weights are empirical and not calibrated against labelled data.
const (
	minCommentLength        = 10
	maxReviewsPerDay        = 5
	maxReviewsPerProvider   = 3
	extremeRatingDetailLen  = 50
	genericPhraseThreshold  = 3
	reviewBombingMinReviews = 3
	reviewBombingMaxRating  = 2
	collusionCap            = 60

	maxTransactionsPerDay  = 10
	firstLargeTransaction  = 1000
	maxLoginFailures       = 5
	maxProfileChangesDaily = 10
	repeatedCharRun        = 6
	capitalsRun            = 10
	recentSessionSample    = 10
)

var (
	maxDailyAmount = decimal.NewFromInt(50000)

	urlPattern     = regexp.MustCompile(`(?i)https?://`)
	keywordPattern = regexp.MustCompile(`(?i)\b(scam|fake|fraud)\b`)
	nonAlnum       = regexp.MustCompile(`[^a-z0-9]`)

	genericPhrases = []string{
		"great service", "excellent work", "highly recommend",
		"worst ever", "terrible", "never again",
	}
	commonEmailDomains = map[string]bool{
		"gmail.com": true, "yahoo.com": true, "hotmail.com": true, "outlook.com": true,
	}
	vpnPrefixes = []string{"104.", "185."}
)

// ReviewEvidence is the history a review check is scored against.
type ReviewEvidence struct {
	BookingFound          bool
	BookingStatus         string
	ReviewsLastDay        int
	ReviewsOfProvider     int
	NegativeFromIPWeek    int
	SharedSessionIPs      int
	ClientProfile         entities.Profile
	ProviderProfile       entities.Profile
	CollusionDataComplete bool
}

type PaymentEvidence struct {
	TransactionsLastDay int
	CompletedLastDay    decimal.Decimal
	CompletedPayments   int
	OtherDeviceUsers    int
}

type BehaviorEvidence struct {
	FailedLoginsLastHour  int
	ProfileChangesLastDay int
	Blacklisted           bool
	SessionIP             string
	SessionFound          bool
}

func ScoreReview(in entities.ReviewCheckInput, ev ReviewEvidence) []entities.FraudSignal {
	signals := make([]entities.FraudSignal, 0)
	add := func(code, description string, weight int) {
		signals = append(signals, entities.FraudSignal{Code: code, Description: description, Weight: weight})
	}

	switch {
	case strings.TrimSpace(in.BookingID) == "":
		add("unverified_review", "No booking reference provided", 15)
	case !ev.BookingFound:
		add("no_booking", "Review without matching booking", 30)
	case ev.BookingStatus != entities.BookingStatusCompleted:
		add("incomplete_booking", "Review for non-completed booking", 20)
	}

	if ev.ReviewsLastDay >= maxReviewsPerDay {
		add("high_velocity", "Too many reviews in the last 24h", 25)
	}
	if ev.ReviewsOfProvider >= maxReviewsPerProvider {
		add("duplicate_reviews", "Multiple reviews for the same artisan", 40)
	}

	signals = append(signals, contentSignals(in.Comment, in.Rating)...)

	if in.IPAddress != "" && in.Rating <= reviewBombingMaxRating && ev.NegativeFromIPWeek >= reviewBombingMinReviews {
		add("review_bombing", "Multiple negative reviews from the same IP", 35)
	}
	if score := collusionScore(ev); score > 0 {
		add("potential_collusion", "Possible connection between reviewer and artisan", score)
	}
	return signals
}

func contentSignals(comment string, rating int) []entities.FraudSignal {
	var signals []entities.FraudSignal
	length := len([]rune(comment))
	if length < minCommentLength {
		signals = append(signals, entities.FraudSignal{Code: "short_comment", Description: "Comment too short", Weight: 10})
	}

	patterns := []struct {
		name  string
		match bool
	}{
		{"repeated_characters", hasRepeatedRun(comment, repeatedCharRun)},
		{"url", urlPattern.MatchString(comment)},
		{"fraud_keyword", keywordPattern.MatchString(comment)},
		{"shouting", hasCapitalsRun(comment, capitalsRun)},
	}
	for _, p := range patterns {
		if p.match {
			signals = append(signals, entities.FraudSignal{Code: "suspicious_content", Description: "Suspicious pattern: " + p.name, Weight: 15})
		}
	}

	if (rating == 1 || rating == 5) && length < extremeRatingDetailLen {
		signals = append(signals, entities.FraudSignal{Code: "extreme_rating_no_detail", Description: "Extreme rating with minimal explanation", Weight: 15})
	}

	lower := strings.ToLower(comment)
	generic := 0
	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			generic++
		}
	}
	if generic >= genericPhraseThreshold {
		signals = append(signals, entities.FraudSignal{Code: "generic_content", Description: "Content appears to be templated", Weight: 15})
	}
	return signals
}

// hasRepeatedRun reports whether s holds n identical runes in a row.
func hasRepeatedRun(s string, n int) bool {
	run := 0
	var prev rune
	for _, r := range s {
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

// hasCapitalsRun reports whether s holds n ASCII capitals in a row.
func hasCapitalsRun(s string, n int) bool {
	run := 0
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			run++
			if run >= n {
				return true
			}
			continue
		}
		run = 0
	}
	return false
}

func collusionScore(ev ReviewEvidence) int {
	if !ev.CollusionDataComplete {
		return 0
	}
	score := 0
	if ev.SharedSessionIPs > 0 {
		score += 40
	}
	c, p := ev.ClientProfile, ev.ProviderProfile
	if c.Phone != "" && c.Phone == p.Phone {
		score += 50
	}
	if domain := emailDomain(c.Email); domain != "" && domain == emailDomain(p.Email) && !commonEmailDomains[domain] {
		score += 30
	}
	if score > collusionCap {
		score = collusionCap
	}
	return score
}

func emailDomain(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

func ScorePayment(in entities.PaymentCheckInput, ev PaymentEvidence) []entities.FraudSignal {
	signals := make([]entities.FraudSignal, 0)
	add := func(code, description string, weight int) {
		signals = append(signals, entities.FraudSignal{Code: code, Description: description, Weight: weight})
	}
	if ev.TransactionsLastDay >= maxTransactionsPerDay {
		add("high_transaction_velocity", "Too many transactions in 24h", 30)
	}
	if ev.CompletedLastDay.Add(in.Amount).GreaterThan(maxDailyAmount) {
		add("high_daily_amount", "Daily total exceeds "+maxDailyAmount.String(), 25)
	}
	if in.BillingAddress != "" && in.ShippingAddress != "" && normalizeAddress(in.BillingAddress) != normalizeAddress(in.ShippingAddress) {
		add("address_mismatch", "Shipping and billing addresses differ", 15)
	}
	if in.DeviceFingerprint != "" && ev.OtherDeviceUsers > 0 {
		add("shared_device", "Device used by multiple accounts", 20)
	}
	if ev.CompletedPayments == 0 && in.Amount.GreaterThan(decimal.NewFromInt(firstLargeTransaction)) {
		add("first_large_transaction", "Large first transaction", 20)
	}
	return signals
}

func normalizeAddress(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(s), "")
}

func ScoreBehavior(in entities.BehaviorCheckInput, ev BehaviorEvidence) []entities.FraudSignal {
	signals := make([]entities.FraudSignal, 0)
	add := func(code, description string, weight int) {
		signals = append(signals, entities.FraudSignal{Code: code, Description: description, Weight: weight})
	}
	if in.Action == entities.BehaviorActionLogin && ev.FailedLoginsLastHour >= maxLoginFailures {
		add("brute_force_attempt", "Too many failed logins in 1h", 40)
	}
	if in.Action == entities.BehaviorActionProfileUpdate && ev.ProfileChangesLastDay >= maxProfileChangesDaily {
		add("suspicious_profile_changes", "Excessive profile changes", 25)
	}
	if in.IPAddress != "" {
		switch {
		case ev.Blacklisted:
			add("high_risk_ip", "IP address is blacklisted", 30)
		case isVPNAddress(in.IPAddress):
			add("high_risk_ip", "Potential VPN or proxy detected", 30)
		}
	}
	if in.SessionID != "" && in.IPAddress != "" && ev.SessionFound && ev.SessionIP != in.IPAddress {
		add("session_hijack_attempt", "IP address changed during session", 50)
	}
	return signals
}

func isVPNAddress(ip string) bool {
	for _, prefix := range vpnPrefixes {
		if strings.HasPrefix(ip, prefix) {
			return true
		}
	}
	return false
}
