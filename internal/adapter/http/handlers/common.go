package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderActorID carries the user already authenticated by the calling service.
const HeaderActorID = "X-Actor-ID"

const actorKey = "trust.actor_id"

var (
	errMissingActor   = pkg.NewDomainErrorSimple("MISSING_ACTOR", "X-Actor-ID header is required", http.StatusUnauthorized)
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errReservedActor  = pkg.NewDomainErrorSimple("FORBIDDEN", "X-Actor-ID is reserved", http.StatusForbidden)
)

// RequireActor rejects requests without an actor id, or claiming the
// system actor, and stores it on the context.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(HeaderActorID))
		if actor == "" {
			c.AbortWithStatusJSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
			return
		}
		if strings.EqualFold(actor, entities.SystemActorID) {
			c.AbortWithStatusJSON(errReservedActor.HTTPStatus, errReservedActor.ToHTTPError())
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

func actorID(c *gin.Context) string {
	if v, ok := c.Get(actorKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return strings.TrimSpace(c.GetHeader(HeaderActorID))
}

// bindJSON writes a 400 when the body is malformed. An empty body is accepted
// only when optional is true.
func bindJSON(c *gin.Context, dst any, optional bool) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	appErr := pkg.NewDomainError(errInvalidPayload.Code, errInvalidPayload.Message, err, errInvalidPayload.HTTPStatus)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	return false
}

func writeError(c *gin.Context, err error) {
	appErr := mapFailure(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapFailure turns a use case error into the HTTP envelope. Internal errors
// never expose their cause.
func mapFailure(err error) *pkg.AppError {
	var fe *failure.Error
	if !errors.As(err, &fe) {
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	switch fe.Code {
	case failure.CodeNotFound:
		return pkg.NewDomainError("NOT_FOUND", fe.Message, err, http.StatusNotFound)
	case failure.CodeUnauthorized:
		return pkg.NewDomainError("FORBIDDEN", fe.Message, err, http.StatusForbidden)
	case failure.CodeValidation:
		return pkg.NewDomainError("VALIDATION_ERROR", fe.Message, err, http.StatusBadRequest)
	case failure.CodeInvalidStateTransition:
		return pkg.NewDomainError("INVALID_STATE_TRANSITION", fe.Message, err, http.StatusConflict)
	case failure.CodeConflict:
		return pkg.NewDomainError("CONFLICT", fe.Message, err, http.StatusConflict)
	case failure.CodeConcurrencyConflict:
		return pkg.NewDomainError("CONCURRENCY_CONFLICT", fe.Message, err, http.StatusConflict)
	case failure.CodeRiskBlocked:
		return pkg.NewDomainError("RISK_BLOCKED", fe.Message, err, http.StatusUnprocessableEntity)
	case failure.CodeExternalGateway:
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", fe.Message, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
