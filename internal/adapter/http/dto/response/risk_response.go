package response

import (
	"time"

	"marketplace_trust/internal/domain/entities"
)

type SignalResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

type RiskAssessmentResponse struct {
	UserID               string            `json:"user_id"`
	CheckType            string            `json:"check_type"`
	RiskScore            int               `json:"risk_score"`
	RiskLevel            string            `json:"risk_level"`
	Action               string            `json:"action"`
	Signals              []SignalResponse  `json:"signals"`
	RequiresManualReview bool              `json:"requires_manual_review"`
	Metadata             map[string]string `json:"metadata,omitempty"`
	AssessedAt           time.Time         `json:"assessed_at"`
}

func FromAssessment(a entities.FraudAssessment) RiskAssessmentResponse {
	out := RiskAssessmentResponse{
		UserID:               a.UserID,
		CheckType:            string(a.CheckType),
		RiskScore:            a.RiskScore,
		RiskLevel:            string(a.RiskLevel),
		Action:               string(a.Action),
		Signals:              make([]SignalResponse, 0, len(a.Signals)),
		RequiresManualReview: a.RequiresManualReview,
		Metadata:             a.Metadata,
		AssessedAt:           a.AssessedAt,
	}
	for _, s := range a.Signals {
		out.Signals = append(out.Signals, SignalResponse{Code: s.Code, Description: s.Description, Weight: s.Weight})
	}
	return out
}

type FraudStatsResponse struct {
	Period        string         `json:"period"`
	TotalChecks   int            `json:"total_checks"`
	ManualReviews int            `json:"manual_reviews"`
	BlockedCount  int            `json:"blocked_count"`
	AverageScore  float64        `json:"average_score"`
	ByLevel       map[string]int `json:"by_level"`
	ByCheckType   map[string]int `json:"by_check_type"`
}

func FromFraudStats(s entities.FraudStats) FraudStatsResponse {
	out := FraudStatsResponse{
		Period:        string(s.Period),
		TotalChecks:   s.TotalChecks,
		ManualReviews: s.ManualReviews,
		BlockedCount:  s.BlockedCount,
		AverageScore:  s.AverageScore,
		ByLevel:       make(map[string]int, len(s.ByLevel)),
		ByCheckType:   make(map[string]int, len(s.ByCheckType)),
	}
	for k, v := range s.ByLevel {
		out.ByLevel[string(k)] = v
	}
	for k, v := range s.ByCheckType {
		out.ByCheckType[string(k)] = v
	}
	return out
}
