package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type FraudCheckType string

const (
	FraudCheckReview   FraudCheckType = "review"
	FraudCheckPayment  FraudCheckType = "payment"
	FraudCheckBehavior FraudCheckType = "behavior"
)

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

type RiskAction string

const (
	RiskActionAllow  RiskAction = "allow"
	RiskActionReview RiskAction = "review"
	RiskActionFlag   RiskAction = "flag"
	RiskActionBlock  RiskAction = "block"
)

const MaxRiskScore = 100

// Classify maps a capped score to its level and recommended action.
func Classify(score int) (RiskLevel, RiskAction) {
	switch {
	case score >= 70:
		return RiskLevelCritical, RiskActionBlock
	case score >= 50:
		return RiskLevelHigh, RiskActionFlag
	case score >= 30:
		return RiskLevelMedium, RiskActionReview
	default:
		return RiskLevelLow, RiskActionAllow
	}
}

// FraudSignal is one independently scored indicator.
type FraudSignal struct {
	Code        string
	Description string
	Weight      int
}

// FraudAssessment is computed per call and never mutated afterwards.
type FraudAssessment struct {
	UserID               string
	CheckType            FraudCheckType
	RiskScore            int
	RiskLevel            RiskLevel
	Action               RiskAction
	Signals              []FraudSignal
	RequiresManualReview bool
	Metadata             map[string]string
	AssessedAt           time.Time
}

// NewFraudAssessment sums the signal weights, caps the total and classifies it.
func NewFraudAssessment(userID string, checkType FraudCheckType, signals []FraudSignal, at time.Time) FraudAssessment {
	score := 0
	for _, s := range signals {
		score += s.Weight
	}
	if score > MaxRiskScore {
		score = MaxRiskScore
	}
	if score < 0 {
		score = 0
	}
	level, action := Classify(score)
	if signals == nil {
		signals = []FraudSignal{}
	}
	return FraudAssessment{
		UserID:               userID,
		CheckType:            checkType,
		RiskScore:            score,
		RiskLevel:            level,
		Action:               action,
		Signals:              signals,
		RequiresManualReview: level == RiskLevelHigh || level == RiskLevelCritical,
		AssessedAt:           at,
	}
}

// FraudCheckRecord is the analytics row appended for every assessment.
type FraudCheckRecord struct {
	ID                   string
	UserID               string
	CheckType            FraudCheckType
	RiskScore            int
	RiskLevel            RiskLevel
	Action               RiskAction
	Signals              []FraudSignal
	RequiresManualReview bool
	Metadata             map[string]string
	CreatedAt            time.Time
}

type ReviewCheckInput struct {
	ClientID   string
	ProviderID string
	BookingID  string
	Rating     int
	Comment    string
	IPAddress  string
}

type PaymentCheckInput struct {
	UserID            string
	Amount            decimal.Decimal
	BillingAddress    string
	ShippingAddress   string
	DeviceFingerprint string
	IPAddress         string
}

type BehaviorAction string

const (
	BehaviorActionLogin         BehaviorAction = "login"
	BehaviorActionProfileUpdate BehaviorAction = "profile_update"
	BehaviorActionOther         BehaviorAction = "other"
)

type BehaviorCheckInput struct {
	UserID    string
	Action    BehaviorAction
	IPAddress string
	UserAgent string
	SessionID string
}

type StatsPeriod string

const (
	StatsPeriodDay   StatsPeriod = "day"
	StatsPeriodWeek  StatsPeriod = "week"
	StatsPeriodMonth StatsPeriod = "month"
)

func (p StatsPeriod) Duration() (time.Duration, bool) {
	switch p {
	case StatsPeriodDay:
		return 24 * time.Hour, true
	case StatsPeriodWeek:
		return 7 * 24 * time.Hour, true
	case StatsPeriodMonth:
		return 30 * 24 * time.Hour, true
	}
	return 0, false
}

// FraudStats aggregates the fraud-check log over a period.
type FraudStats struct {
	Period        StatsPeriod
	TotalChecks   int
	ManualReviews int
	AverageScore  float64
	ByLevel       map[RiskLevel]int
	ByCheckType   map[FraudCheckType]int
	BlockedCount  int
}
