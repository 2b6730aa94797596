package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace_trust/internal/adapter/http/dto/response"
	"marketplace_trust/internal/adapter/http/handlers/mocks"
	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRiskRouter(t *testing.T) (*gin.Engine, *mocks.MockIFraudUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFraudUseCase(ctrl)
	h := NewRiskHandler(uc, nil)

	r := gin.New()
	r.Use(RequireActor())
	r.POST("/risk/review", h.CheckReview)
	r.POST("/risk/payment", h.CheckPayment)
	r.POST("/risk/behavior", h.CheckBehavior)
	r.GET("/risk/stats", h.GetStats)
	return r, uc
}

func TestRiskHandler_CheckReview(t *testing.T) {
	r, uc := newRiskRouter(t)
	uc.EXPECT().CheckReview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, in entities.ReviewCheckInput) (entities.FraudAssessment, error) {
			if in.ClientID != "client-1" || in.ProviderID != "artisan-1" || in.Rating != 1 {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.FraudAssessment{
				UserID:    "client-1",
				CheckType: entities.FraudCheckReview,
				RiskScore: 85,
				RiskLevel: entities.RiskLevelCritical,
				Action:    entities.RiskActionBlock,
				Signals:   []entities.FraudSignal{{Code: "review_velocity", Weight: 40}},
			}, nil
		})

	w := performRequest(r, http.MethodPost, "/risk/review", `{"provider_id":"artisan-1","booking_id":"bk-1","rating":1,"comment":"bad"}`, "client-1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got response.RiskAssessmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Action != "block" || len(got.Signals) != 1 {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestRiskHandler_CheckBehavior_UsesUserAgent(t *testing.T) {
	r, uc := newRiskRouter(t)
	uc.EXPECT().CheckBehavior(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, in entities.BehaviorCheckInput) (entities.FraudAssessment, error) {
			if in.UserAgent != "curl/8.0" {
				t.Fatalf("user agent not forwarded: %q", in.UserAgent)
			}
			if in.Action != entities.BehaviorActionOther {
				t.Fatalf("unknown actions should map to other, got %q", in.Action)
			}
			return entities.FraudAssessment{UserID: in.UserID, CheckType: entities.FraudCheckBehavior, Action: entities.RiskActionAllow}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/risk/behavior", strings.NewReader(`{"action":"password_reset"}`))
	req.Header.Set(HeaderActorID, "user-1")
	req.Header.Set("User-Agent", "curl/8.0")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRiskHandler_GetStats(t *testing.T) {
	t.Run("default period", func(t *testing.T) {
		r, uc := newRiskRouter(t)
		uc.EXPECT().GetFraudStats(gomock.Any(), entities.StatsPeriod("")).
			Return(entities.FraudStats{Period: entities.StatsPeriodWeek, TotalChecks: 2}, nil)

		w := performRequest(r, http.MethodGet, "/risk/stats", "", "admin-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad period", func(t *testing.T) {
		r, uc := newRiskRouter(t)
		uc.EXPECT().GetFraudStats(gomock.Any(), entities.StatsPeriod("year")).
			Return(entities.FraudStats{}, failure.Validation("period must be day, week or month"))

		w := performRequest(r, http.MethodGet, "/risk/stats?period=YEAR", "", "admin-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
