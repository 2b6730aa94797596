package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"marketplace_trust/internal/adapter/http/dto/response"
	"marketplace_trust/internal/adapter/http/handlers/mocks"
	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newDisputeRouter(t *testing.T) (*gin.Engine, *mocks.MockIDisputeUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDisputeUseCase(ctrl)
	h := NewDisputeHandler(uc, nil)

	r := gin.New()
	r.Use(RequireActor())
	r.POST("/disputes", h.OpenDispute)
	r.GET("/disputes", h.ListDisputes)
	r.GET("/disputes/stats", h.GetStats)
	r.GET("/disputes/:id", h.GetDispute)
	r.POST("/disputes/:id/response", h.SubmitResponse)
	r.POST("/disputes/:id/resolve", h.ResolveDispute)
	r.POST("/disputes/:id/close", h.CloseDispute)
	r.POST("/disputes/:id/messages", h.AddMessage)
	return r, uc
}

func sampleDispute() entities.Dispute {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return entities.Dispute{
		ID:            "dsp-1",
		BookingID:     "bk-1",
		EscrowID:      "esc-1",
		ClientID:      "client-1",
		ProviderID:    "artisan-1",
		MediatorID:    "mod-1",
		Category:      entities.DisputeCategoryQualityOfWork,
		Priority:      entities.DisputePriorityMedium,
		Status:        entities.DisputeStatusMediation,
		Subject:       "Leaking tap",
		Description:   "Still leaking after the repair",
		Amount:        decimal.RequireFromString("300"),
		MediatorNotes: "client sent photos",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestDisputeHandler_OpenDispute(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		r, _ := newDisputeRouter(t)
		w := performRequest(r, http.MethodPost, "/disputes", `{"booking_id":"bk-1"}`, "client-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already open", func(t *testing.T) {
		r, uc := newDisputeRouter(t)
		uc.EXPECT().OpenDispute(gomock.Any(), gomock.Any()).Return(entities.Dispute{}, usecase.ErrDisputeAlreadyOpen)

		body := `{"booking_id":"bk-1","provider_id":"artisan-1","category":"quality_of_work","subject":"s","description":"d"}`
		w := performRequest(r, http.MethodPost, "/disputes", body, "client-1")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if got := decodeError(t, w)["code"]; got != "CONFLICT" {
			t.Fatalf("unexpected code %q", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newDisputeRouter(t)
		uc.EXPECT().OpenDispute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.OpenDisputeInput) (entities.Dispute, error) {
				if in.ClientID != "client-1" || in.Category != entities.DisputeCategoryQualityOfWork {
					t.Fatalf("unexpected input %+v", in)
				}
				d := sampleDispute()
				d.Status = entities.DisputeStatusOpened
				d.MediatorID = ""
				return d, nil
			})

		body := `{"booking_id":"bk-1","provider_id":"artisan-1","category":"Quality_Of_Work","subject":"s","description":"d","amount":"300"}`
		w := performRequest(r, http.MethodPost, "/disputes", body, "client-1")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got response.DisputeResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Status != string(entities.DisputeStatusOpened) || got.Amount != "300.00" {
			t.Fatalf("unexpected response %+v", got)
		}
	})
}

func TestDisputeHandler_GetDispute_MediatorNotes(t *testing.T) {
	details := entities.DisputeDetails{Dispute: sampleDispute()}

	t.Run("mediator sees notes", func(t *testing.T) {
		r, uc := newDisputeRouter(t)
		uc.EXPECT().GetDispute(gomock.Any(), "dsp-1", "mod-1").Return(details, nil)

		w := performRequest(r, http.MethodGet, "/disputes/dsp-1", "", "mod-1")
		var got response.DisputeDetailsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.MediatorNotes != "client sent photos" {
			t.Fatalf("expected notes for mediator, got %q", got.MediatorNotes)
		}
	})

	t.Run("client does not", func(t *testing.T) {
		r, uc := newDisputeRouter(t)
		uc.EXPECT().GetDispute(gomock.Any(), "dsp-1", "client-1").Return(details, nil)

		w := performRequest(r, http.MethodGet, "/disputes/dsp-1", "", "client-1")
		var got response.DisputeDetailsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.MediatorNotes != "" {
			t.Fatalf("notes leaked to client")
		}
	})

	t.Run("stranger", func(t *testing.T) {
		r, uc := newDisputeRouter(t)
		uc.EXPECT().GetDispute(gomock.Any(), "dsp-1", "x").Return(entities.DisputeDetails{}, usecase.ErrNotDisputeParticipant)

		w := performRequest(r, http.MethodGet, "/disputes/dsp-1", "", "x")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestDisputeHandler_ListAndStats(t *testing.T) {
	t.Run("list forwards role and status", func(t *testing.T) {
		r, uc := newDisputeRouter(t)
		uc.EXPECT().ListUserDisputes(gomock.Any(), "mod-1", entities.RoleModerator, entities.DisputeStatusMediation).
			Return([]entities.Dispute{sampleDispute()}, nil)

		w := performRequest(r, http.MethodGet, "/disputes?role=moderator&status=mediation", "", "mod-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("stats route is not shadowed by id", func(t *testing.T) {
		r, uc := newDisputeRouter(t)
		uc.EXPECT().GetDisputeStats(gomock.Any()).Return(entities.DisputeStats{Total: 3, Open: 1}, nil)

		w := performRequest(r, http.MethodGet, "/disputes/stats", "", "admin-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got response.DisputeStatsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Total != 3 || got.Open != 1 {
			t.Fatalf("unexpected stats %+v", got)
		}
	})
}

func TestDisputeHandler_Transitions(t *testing.T) {
	t.Run("response requires text", func(t *testing.T) {
		r, _ := newDisputeRouter(t)
		w := performRequest(r, http.MethodPost, "/disputes/dsp-1/response", `{}`, "artisan-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("response by wrong party", func(t *testing.T) {
		r, uc := newDisputeRouter(t)
		uc.EXPECT().SubmitArtisanResponse(gomock.Any(), "dsp-1", "client-1", "fixed", "").
			Return(entities.Dispute{}, usecase.ErrNotDisputeProvider)

		w := performRequest(r, http.MethodPost, "/disputes/dsp-1/response", `{"response":"fixed"}`, "client-1")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("resolve maps input", func(t *testing.T) {
		r, uc := newDisputeRouter(t)
		resolved := sampleDispute()
		resolved.Status = entities.DisputeStatusResolvedCompromise
		uc.EXPECT().ResolveDispute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.ResolveDisputeInput) (entities.Dispute, error) {
				if in.DisputeID != "dsp-1" || in.MediatorID != "mod-1" || in.Outcome != entities.DisputeOutcomeCompromise {
					t.Fatalf("unexpected input %+v", in)
				}
				if !in.RefundAmount.Equal(decimal.RequireFromString("150")) {
					t.Fatalf("unexpected refund %s", in.RefundAmount)
				}
				return resolved, nil
			})

		w := performRequest(r, http.MethodPost, "/disputes/dsp-1/resolve", `{"outcome":"compromise","summary":"split","refund_amount":"150"}`, "mod-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("close from terminal state", func(t *testing.T) {
		r, uc := newDisputeRouter(t)
		uc.EXPECT().CloseDispute(gomock.Any(), "dsp-1", "mod-1", "").
			Return(entities.Dispute{}, usecase.ErrDisputeClosed)

		w := performRequest(r, http.MethodPost, "/disputes/dsp-1/close", "", "mod-1")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestDisputeHandler_AddMessage(t *testing.T) {
	r, uc := newDisputeRouter(t)
	uc.EXPECT().AddMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, in usecase.AddMessageInput) (entities.DisputeMessage, error) {
			if in.SenderID != "client-1" || in.DisputeID != "dsp-1" {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.DisputeMessage{ID: "msg-1", DisputeID: "dsp-1", SenderID: "client-1", SenderType: entities.SenderTypeClient, Message: in.Message}, nil
		})

	w := performRequest(r, http.MethodPost, "/disputes/dsp-1/messages", `{"message":"photos attached"}`, "client-1")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}
