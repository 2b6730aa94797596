package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/pkg"

	"github.com/gin-gonic/gin"
)

func performRequest(r http.Handler, method, path, body, actor string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != "" {
		req.Header.Set(HeaderActorID, actor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestRequireActor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequireActor())
	r.GET("/whoami", func(c *gin.Context) { c.String(http.StatusOK, actorID(c)) })

	t.Run("missing header", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/whoami", "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if got := decodeError(t, w)["code"]; got != "MISSING_ACTOR" {
			t.Fatalf("unexpected code %q", got)
		}
	})

	t.Run("reserved system actor", func(t *testing.T) {
		for _, actor := range []string{"system", " System "} {
			w := performRequest(r, http.MethodGet, "/whoami", "", actor)
			if w.Code != http.StatusForbidden {
				t.Fatalf("%q: expected 403, got %d", actor, w.Code)
			}
			if got := decodeError(t, w)["code"]; got != "FORBIDDEN" {
				t.Fatalf("unexpected code %q", got)
			}
		}
	})

	t.Run("header is trimmed and stored", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/whoami", "", "  user-1 ")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "user-1" {
			t.Fatalf("unexpected actor %q", w.Body.String())
		}
	})
}

func TestMapFailure(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", failure.NotFound("escrow not found"), http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", failure.Unauthorized("not a party"), http.StatusForbidden, "FORBIDDEN"},
		{"validation", failure.Validation("bad amount"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"transition", failure.InvalidTransition("escrow", "pending", "released"), http.StatusConflict, "INVALID_STATE_TRANSITION"},
		{"conflict", failure.Conflict("duplicate"), http.StatusConflict, "CONFLICT"},
		{"concurrency", failure.ConcurrencyConflict("changed"), http.StatusConflict, "CONCURRENCY_CONFLICT"},
		{"risk", failure.RiskBlocked("blocked"), http.StatusUnprocessableEntity, "RISK_BLOCKED"},
		{"gateway", failure.Gateway(errors.New("timeout"), "capture"), http.StatusBadGateway, "PAYMENT_GATEWAY_ERROR"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapFailure(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}

	internal := mapFailure(errors.New("pq: password authentication failed"))
	if internal.Message != "An internal error occurred" {
		t.Fatalf("internal cause leaked: %q", internal.Message)
	}
	var appErr *pkg.AppError = mapFailure(failure.NotFound("dispute not found"))
	if appErr.Message != "dispute not found" {
		t.Fatalf("expected domain message, got %q", appErr.Message)
	}
}

func TestBindJSON_OptionalBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type payload struct {
		Reason string `json:"reason"`
	}
	r := gin.New()
	r.POST("/optional", func(c *gin.Context) {
		var p payload
		if !bindJSON(c, &p, true) {
			return
		}
		c.String(http.StatusOK, p.Reason)
	})
	r.POST("/required", func(c *gin.Context) {
		var p payload
		if !bindJSON(c, &p, false) {
			return
		}
		c.String(http.StatusOK, p.Reason)
	})

	if w := performRequest(r, http.MethodPost, "/optional", "", "u"); w.Code != http.StatusOK {
		t.Fatalf("empty optional body: expected 200, got %d", w.Code)
	}
	if w := performRequest(r, http.MethodPost, "/required", "", "u"); w.Code != http.StatusBadRequest {
		t.Fatalf("empty required body: expected 400, got %d", w.Code)
	}
	if w := performRequest(r, http.MethodPost, "/optional", "{", "u"); w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: expected 400, got %d", w.Code)
	}
}
