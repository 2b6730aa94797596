package handlers

import (
	"net/http"
	"strings"

	request "marketplace_trust/internal/adapter/http/dto/request"
	response "marketplace_trust/internal/adapter/http/dto/response"
	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EscrowHandler exposes escrow custody and milestone operations.
type EscrowHandler struct {
	usecase usecase.IEscrowUseCase
	log     *zap.Logger
}

func NewEscrowHandler(uc usecase.IEscrowUseCase, log *zap.Logger) *EscrowHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EscrowHandler{usecase: uc, log: log.Named("escrow.handler")}
}

// CreateEscrow godoc
// @Summary      Create an escrow for a booking
// @Tags         escrows
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                        true  "Client id"
// @Param        body        body    request.CreateEscrowRequest   true  "Escrow"
// @Success      201  {object}  response.EscrowDetailsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /escrows [post]
func (h *EscrowHandler) CreateEscrow(c *gin.Context) {
	var payload request.CreateEscrowRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	details, err := h.usecase.CreateEscrow(c.Request.Context(), payload.ToInput(actorID(c)))
	if err != nil {
		h.log.Info("create escrow rejected", zap.String("booking_id", payload.BookingID), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEscrowDetails(details))
}

// GetEscrow godoc
// @Summary      Escrow with milestones, releases and events
// @Tags         escrows
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Party or elevated user"
// @Param        id          path    string  true  "Escrow id"
// @Success      200  {object}  response.EscrowDetailsResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /escrows/{id} [get]
func (h *EscrowHandler) GetEscrow(c *gin.Context) {
	details, err := h.usecase.GetEscrow(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrowDetails(details))
}

// GetEscrowByBooking godoc
// @Summary      Latest escrow for a booking
// @Tags         escrows
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Actor"
// @Param        booking_id  path    string  true  "Booking id"
// @Success      200  {object}  response.EscrowResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /escrows/booking/{booking_id} [get]
func (h *EscrowHandler) GetEscrowByBooking(c *gin.Context) {
	e, err := h.usecase.GetEscrowByBooking(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !e.IsParty(actorID(c)) {
		writeError(c, usecase.ErrNotEscrowParty)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// ListEscrows godoc
// @Summary      Escrows where the actor is client or artisan
// @Tags         escrows
// @Produce      json
// @Param        X-Actor-ID  header  string  true   "Actor"
// @Param        role        query   string  false  "client or artisan" default(client)
// @Success      200  {array}   response.EscrowResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /escrows [get]
func (h *EscrowHandler) ListEscrows(c *gin.Context) {
	role := entities.Role(strings.ToLower(c.DefaultQuery("role", string(entities.RoleClient))))
	list, err := h.usecase.ListUserEscrows(c.Request.Context(), actorID(c), role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrows(list))
}

// FundEscrow godoc
// @Summary      Authorize and capture the client's payment
// @Tags         escrows
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                     true  "Client id"
// @Param        id          path    string                     true  "Escrow id"
// @Param        body        body    request.FundEscrowRequest  true  "Payment"
// @Success      200  {object}  response.EscrowResponse
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /escrows/{id}/fund [post]
func (h *EscrowHandler) FundEscrow(c *gin.Context) {
	var payload request.FundEscrowRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	e, err := h.usecase.FundEscrow(c.Request.Context(), payload.ToInput(c.Param("id"), actorID(c), c.ClientIP()))
	if err != nil {
		h.log.Warn("fund escrow failed", zap.String("escrow_id", c.Param("id")), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// ReconcileEscrow godoc
// @Summary      Re-read a pending escrow's payment from the gateway
// @Tags         escrows
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Actor"
// @Param        id          path    string  true  "Escrow id"
// @Success      200  {object}  response.EscrowResponse
// @Router       /escrows/{id}/reconcile [post]
func (h *EscrowHandler) ReconcileEscrow(c *gin.Context) {
	e, err := h.usecase.ReconcileEscrow(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// StartWork godoc
// @Summary      Artisan marks work as started
// @Tags         escrows
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Artisan id"
// @Param        id          path    string  true  "Escrow id"
// @Success      200  {object}  response.EscrowResponse
// @Router       /escrows/{id}/start [post]
func (h *EscrowHandler) StartWork(c *gin.Context) {
	e, err := h.usecase.MarkWorkStarted(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// CompleteWork godoc
// @Summary      Artisan marks work as completed and opens the inspection period
// @Tags         escrows
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                       true   "Artisan id"
// @Param        id          path    string                       true   "Escrow id"
// @Param        body        body    request.CompleteWorkRequest  false  "Notes"
// @Success      200  {object}  response.EscrowResponse
// @Router       /escrows/{id}/complete [post]
func (h *EscrowHandler) CompleteWork(c *gin.Context) {
	var payload request.CompleteWorkRequest
	if !bindJSON(c, &payload, true) {
		return
	}
	e, err := h.usecase.MarkWorkCompleted(c.Request.Context(), c.Param("id"), actorID(c), payload.Notes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// ReleaseFunds godoc
// @Summary      Client releases funds to the artisan
// @Tags         escrows
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Client id"
// @Param        id          path    string  true  "Escrow id"
// @Success      200  {object}  response.EscrowResponse
// @Router       /escrows/{id}/release [post]
func (h *EscrowHandler) ReleaseFunds(c *gin.Context) {
	e, err := h.usecase.ReleaseFunds(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		h.log.Warn("release failed", zap.String("escrow_id", c.Param("id")), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// DisputeEscrow godoc
// @Summary      Client freezes the escrow
// @Tags         escrows
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                        true  "Client id"
// @Param        id          path    string                        true  "Escrow id"
// @Param        body        body    request.DisputeEscrowRequest  true  "Reason"
// @Success      200  {object}  response.EscrowResponse
// @Router       /escrows/{id}/dispute [post]
func (h *EscrowHandler) DisputeEscrow(c *gin.Context) {
	var payload request.DisputeEscrowRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	e, err := h.usecase.DisputeEscrow(c.Request.Context(), c.Param("id"), actorID(c), payload.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// RefundEscrow godoc
// @Summary      Refund all or part of an escrow
// @Tags         escrows
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                       true   "Actor"
// @Param        id          path    string                       true   "Escrow id"
// @Param        body        body    request.RefundEscrowRequest  true   "Amount and reason"
// @Success      200  {object}  response.EscrowResponse
// @Router       /escrows/{id}/refund [post]
func (h *EscrowHandler) RefundEscrow(c *gin.Context) {
	var payload request.RefundEscrowRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	if !payload.Amount.IsPositive() {
		writeError(c, usecase.ErrInvalidAmount)
		return
	}
	e, err := h.usecase.RefundEscrow(c.Request.Context(), payload.ToInput(c.Param("id"), actorID(c)))
	if err != nil {
		h.log.Warn("refund failed", zap.String("escrow_id", c.Param("id")), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// CancelEscrow godoc
// @Summary      Client cancels an escrow before work starts
// @Tags         escrows
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Client id"
// @Param        id          path    string  true  "Escrow id"
// @Success      200  {object}  response.EscrowResponse
// @Router       /escrows/{id}/cancel [post]
func (h *EscrowHandler) CancelEscrow(c *gin.Context) {
	e, err := h.usecase.CancelEscrow(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEscrow(e))
}

// CompleteMilestone godoc
// @Summary      Artisan completes a milestone
// @Tags         milestones
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Artisan id"
// @Param        id          path    string  true  "Milestone id"
// @Success      200  {object}  response.MilestoneResponse
// @Router       /milestones/{id}/complete [post]
func (h *EscrowHandler) CompleteMilestone(c *gin.Context) {
	m, err := h.usecase.CompleteMilestone(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMilestone(m))
}

// ApproveMilestone godoc
// @Summary      Client approves a milestone and releases its amount
// @Tags         milestones
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Client id"
// @Param        id          path    string  true  "Milestone id"
// @Success      200  {object}  response.MilestoneResponse
// @Router       /milestones/{id}/approve [post]
func (h *EscrowHandler) ApproveMilestone(c *gin.Context) {
	m, err := h.usecase.ApproveMilestone(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMilestone(m))
}

// RefundMilestone godoc
// @Summary      Refund a milestone to the client
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                 true   "Actor"
// @Param        id          path    string                 true   "Milestone id"
// @Param        body        body    request.ReasonRequest  false  "Reason"
// @Success      200  {object}  response.MilestoneResponse
// @Router       /milestones/{id}/refund [post]
func (h *EscrowHandler) RefundMilestone(c *gin.Context) {
	var payload request.ReasonRequest
	if !bindJSON(c, &payload, true) {
		return
	}
	m, err := h.usecase.RefundMilestone(c.Request.Context(), c.Param("id"), actorID(c), payload.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMilestone(m))
}
