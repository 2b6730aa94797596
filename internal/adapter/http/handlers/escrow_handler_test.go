package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"marketplace_trust/internal/adapter/http/dto/response"
	"marketplace_trust/internal/adapter/http/handlers/mocks"
	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newEscrowRouter(t *testing.T) (*gin.Engine, *mocks.MockIEscrowUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEscrowUseCase(ctrl)
	h := NewEscrowHandler(uc, nil)

	r := gin.New()
	r.Use(RequireActor())
	r.POST("/escrows", h.CreateEscrow)
	r.GET("/escrows", h.ListEscrows)
	r.GET("/escrows/:id", h.GetEscrow)
	r.GET("/escrows/booking/:booking_id", h.GetEscrowByBooking)
	r.POST("/escrows/:id/fund", h.FundEscrow)
	r.POST("/escrows/:id/release", h.ReleaseFunds)
	r.POST("/escrows/:id/refund", h.RefundEscrow)
	r.POST("/escrows/:id/reconcile", h.ReconcileEscrow)
	r.POST("/milestones/:id/approve", h.ApproveMilestone)
	return r, uc
}

func sampleEscrow() entities.EscrowTransaction {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return entities.EscrowTransaction{
		ID:          "esc-1",
		BookingID:   "bk-1",
		ClientID:    "client-1",
		ProviderID:  "artisan-1",
		Amount:      decimal.RequireFromString("1000"),
		PlatformFee: decimal.RequireFromString("50"),
		Currency:    "usd",
		Status:      entities.EscrowStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestEscrowHandler_CreateEscrow(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newEscrowRouter(t)
		w := performRequest(r, http.MethodPost, "/escrows", "{", "client-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		r, _ := newEscrowRouter(t)
		w := performRequest(r, http.MethodPost, "/escrows", `{"booking_id":"bk-1","provider_id":"artisan-1","amount":"1000"}`, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("below minimum", func(t *testing.T) {
		r, uc := newEscrowRouter(t)
		uc.EXPECT().CreateEscrow(gomock.Any(), gomock.Any()).Return(entities.EscrowDetails{}, usecase.ErrAmountBelowMinimum)

		w := performRequest(r, http.MethodPost, "/escrows", `{"booking_id":"bk-1","provider_id":"artisan-1","amount":"5"}`, "client-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success passes the actor as client", func(t *testing.T) {
		r, uc := newEscrowRouter(t)
		uc.EXPECT().CreateEscrow(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.CreateEscrowInput) (entities.EscrowDetails, error) {
				if in.ClientID != "client-1" || in.BookingID != "bk-1" || !in.Amount.Equal(decimal.RequireFromString("1000")) {
					t.Fatalf("unexpected input %+v", in)
				}
				if len(in.Milestones) != 2 {
					t.Fatalf("expected 2 milestones, got %d", len(in.Milestones))
				}
				return entities.EscrowDetails{Escrow: sampleEscrow()}, nil
			})

		body := `{"booking_id":"bk-1","provider_id":"artisan-1","amount":"1000",
			"milestones":[{"title":"demo","amount":"400"},{"title":"build","amount":"600"}]}`
		w := performRequest(r, http.MethodPost, "/escrows", body, "client-1")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got response.EscrowDetailsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Escrow.ID != "esc-1" || got.Escrow.Amount != "1000.00" {
			t.Fatalf("unexpected response %+v", got.Escrow)
		}
	})
}

func TestEscrowHandler_GetEscrowByBooking(t *testing.T) {
	t.Run("stranger is forbidden", func(t *testing.T) {
		r, uc := newEscrowRouter(t)
		uc.EXPECT().GetEscrowByBooking(gomock.Any(), "bk-1").Return(sampleEscrow(), nil)

		w := performRequest(r, http.MethodGet, "/escrows/booking/bk-1", "", "someone-else")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("provider can read", func(t *testing.T) {
		r, uc := newEscrowRouter(t)
		uc.EXPECT().GetEscrowByBooking(gomock.Any(), "bk-1").Return(sampleEscrow(), nil)

		w := performRequest(r, http.MethodGet, "/escrows/booking/bk-1", "", "artisan-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newEscrowRouter(t)
		uc.EXPECT().GetEscrowByBooking(gomock.Any(), "bk-2").Return(entities.EscrowTransaction{}, usecase.ErrEscrowNotFound)

		w := performRequest(r, http.MethodGet, "/escrows/booking/bk-2", "", "client-1")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEscrowHandler_ListEscrows(t *testing.T) {
	r, uc := newEscrowRouter(t)
	uc.EXPECT().ListUserEscrows(gomock.Any(), "artisan-1", entities.RoleArtisan).
		Return([]entities.EscrowTransaction{sampleEscrow()}, nil)

	w := performRequest(r, http.MethodGet, "/escrows?role=ARTISAN", "", "artisan-1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []response.EscrowResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 escrow, got %d", len(got))
	}
}

func TestEscrowHandler_FundEscrow(t *testing.T) {
	t.Run("payment method required", func(t *testing.T) {
		r, _ := newEscrowRouter(t)
		w := performRequest(r, http.MethodPost, "/escrows/esc-1/fund", `{}`, "client-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("risk blocked", func(t *testing.T) {
		r, uc := newEscrowRouter(t)
		uc.EXPECT().FundEscrow(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.FundEscrowInput) (entities.EscrowTransaction, error) {
				if in.EscrowID != "esc-1" || in.ClientID != "client-1" || in.PaymentMethod != "pm_card" {
					t.Fatalf("unexpected input %+v", in)
				}
				if in.IPAddress == "" {
					t.Fatalf("client ip should be forwarded")
				}
				return entities.EscrowTransaction{}, failure.RiskBlocked("payment blocked by risk assessment")
			})

		w := performRequest(r, http.MethodPost, "/escrows/esc-1/fund", `{"payment_method":"pm_card"}`, "client-1")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("gateway declined", func(t *testing.T) {
		r, uc := newEscrowRouter(t)
		uc.EXPECT().FundEscrow(gomock.Any(), gomock.Any()).Return(entities.EscrowTransaction{}, usecase.ErrAuthorizationDeclined)

		w := performRequest(r, http.MethodPost, "/escrows/esc-1/fund", `{"payment_method":"pm_card"}`, "client-1")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestEscrowHandler_ReleaseAndRefund(t *testing.T) {
	t.Run("release by non client", func(t *testing.T) {
		r, uc := newEscrowRouter(t)
		uc.EXPECT().ReleaseFunds(gomock.Any(), "esc-1", "artisan-1").Return(entities.EscrowTransaction{}, usecase.ErrNotEscrowClient)

		w := performRequest(r, http.MethodPost, "/escrows/esc-1/release", "", "artisan-1")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("refund passes amount and actor", func(t *testing.T) {
		r, uc := newEscrowRouter(t)
		refunded := sampleEscrow()
		refunded.Status = entities.EscrowStatusRefunded
		uc.EXPECT().RefundEscrow(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.RefundEscrowInput) (entities.EscrowTransaction, error) {
				if !in.Amount.Equal(decimal.NewFromInt(1000)) || in.ActorID != "artisan-1" || in.EscrowID != "esc-1" {
					t.Fatalf("unexpected input %+v", in)
				}
				return refunded, nil
			})

		w := performRequest(r, http.MethodPost, "/escrows/esc-1/refund", `{"amount":"1000","reason":"cancelled"}`, "artisan-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("refund without an amount is rejected", func(t *testing.T) {
		r, _ := newEscrowRouter(t)
		for _, body := range []string{"", `{"reason":"cancelled"}`, `{"amount":"0"}`} {
			w := performRequest(r, http.MethodPost, "/escrows/esc-1/refund", body, "artisan-1")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("body %q: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("system actor header is refused", func(t *testing.T) {
		r, _ := newEscrowRouter(t)
		w := performRequest(r, http.MethodPost, "/escrows/esc-1/refund", `{"amount":"1000"}`, entities.SystemActorID)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("refund too large", func(t *testing.T) {
		r, uc := newEscrowRouter(t)
		uc.EXPECT().RefundEscrow(gomock.Any(), gomock.Any()).Return(entities.EscrowTransaction{}, usecase.ErrRefundExceedsAmount)

		w := performRequest(r, http.MethodPost, "/escrows/esc-1/refund", `{"amount":"5000"}`, "client-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEscrowHandler_ReconcileEscrow(t *testing.T) {
	t.Run("passes the actor", func(t *testing.T) {
		r, uc := newEscrowRouter(t)
		funded := sampleEscrow()
		funded.Status = entities.EscrowStatusFunded
		uc.EXPECT().ReconcileEscrow(gomock.Any(), "esc-1", "client-1").Return(funded, nil)

		w := performRequest(r, http.MethodPost, "/escrows/esc-1/reconcile", "", "client-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		r, uc := newEscrowRouter(t)
		uc.EXPECT().ReconcileEscrow(gomock.Any(), "esc-1", "stranger").
			Return(entities.EscrowTransaction{}, failure.Unauthorized("actor may not reconcile this escrow"))

		w := performRequest(r, http.MethodPost, "/escrows/esc-1/reconcile", "", "stranger")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestEscrowHandler_ApproveMilestone(t *testing.T) {
	r, uc := newEscrowRouter(t)
	uc.EXPECT().ApproveMilestone(gomock.Any(), "ms-1", "client-1").
		Return(entities.EscrowMilestone{ID: "ms-1", EscrowID: "esc-1", Status: entities.MilestoneStatusReleased, Amount: decimal.RequireFromString("400")}, nil)

	w := performRequest(r, http.MethodPost, "/milestones/ms-1/approve", "", "client-1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got response.MilestoneResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != string(entities.MilestoneStatusReleased) {
		t.Fatalf("unexpected status %q", got.Status)
	}
}
