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

// DisputeHandler exposes the mediation workflow.
type DisputeHandler struct {
	usecase usecase.IDisputeUseCase
	log     *zap.Logger
}

func NewDisputeHandler(uc usecase.IDisputeUseCase, log *zap.Logger) *DisputeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DisputeHandler{usecase: uc, log: log.Named("dispute.handler")}
}

// OpenDispute godoc
// @Summary      Client opens a dispute on a booking
// @Tags         disputes
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                      true  "Client id"
// @Param        body        body    request.OpenDisputeRequest  true  "Dispute"
// @Success      201  {object}  response.DisputeResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /disputes [post]
func (h *DisputeHandler) OpenDispute(c *gin.Context) {
	var payload request.OpenDisputeRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	d, err := h.usecase.OpenDispute(c.Request.Context(), payload.ToInput(actorID(c)))
	if err != nil {
		h.log.Info("open dispute rejected", zap.String("booking_id", payload.BookingID), zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDispute(d))
}

// GetDispute godoc
// @Summary      Dispute with the messages and timeline visible to the actor
// @Tags         disputes
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Actor"
// @Param        id          path    string  true  "Dispute id"
// @Success      200  {object}  response.DisputeDetailsResponse
// @Router       /disputes/{id} [get]
func (h *DisputeHandler) GetDispute(c *gin.Context) {
	actor := actorID(c)
	details, err := h.usecase.GetDispute(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDisputeDetails(details, actor))
}

// ListDisputes godoc
// @Summary      Disputes for the actor in the given role
// @Tags         disputes
// @Produce      json
// @Param        X-Actor-ID  header  string  true   "Actor"
// @Param        role        query   string  false  "client, artisan, moderator, admin or super_admin" default(client)
// @Param        status      query   string  false  "Status filter"
// @Success      200  {array}   response.DisputeResponse
// @Router       /disputes [get]
func (h *DisputeHandler) ListDisputes(c *gin.Context) {
	role := entities.Role(strings.ToLower(c.DefaultQuery("role", string(entities.RoleClient))))
	status := entities.DisputeStatus(strings.ToLower(c.Query("status")))
	list, err := h.usecase.ListUserDisputes(c.Request.Context(), actorID(c), role, status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDisputes(list))
}

// GetStats godoc
// @Summary      Dispute statistics
// @Tags         disputes
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Actor"
// @Success      200  {object}  response.DisputeStatsResponse
// @Router       /disputes/stats [get]
func (h *DisputeHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.GetDisputeStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDisputeStats(stats))
}

// SubmitResponse godoc
// @Summary      Artisan answers the dispute
// @Tags         disputes
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                          true  "Artisan id"
// @Param        id          path    string                          true  "Dispute id"
// @Param        body        body    request.ArtisanResponseRequest  true  "Response"
// @Success      200  {object}  response.DisputeResponse
// @Router       /disputes/{id}/response [post]
func (h *DisputeHandler) SubmitResponse(c *gin.Context) {
	var payload request.ArtisanResponseRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	d, err := h.usecase.SubmitArtisanResponse(c.Request.Context(), c.Param("id"), actorID(c), payload.Response, payload.CounterProposal)
	h.write(c, d, err)
}

// RequestResponse godoc
// @Summary      Ask the artisan for a further response
// @Tags         disputes
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                          true  "Actor"
// @Param        id          path    string                          true  "Dispute id"
// @Param        body        body    request.RequestResponseRequest  true  "Message"
// @Success      200  {object}  response.DisputeResponse
// @Router       /disputes/{id}/request-response [post]
func (h *DisputeHandler) RequestResponse(c *gin.Context) {
	var payload request.RequestResponseRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	d, err := h.usecase.RequestFurtherResponse(c.Request.Context(), c.Param("id"), actorID(c), payload.Message)
	h.write(c, d, err)
}

// AcceptProposal godoc
// @Summary      Client accepts the artisan's proposal
// @Tags         disputes
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Client id"
// @Param        id          path    string  true  "Dispute id"
// @Success      200  {object}  response.DisputeResponse
// @Router       /disputes/{id}/accept [post]
func (h *DisputeHandler) AcceptProposal(c *gin.Context) {
	d, err := h.usecase.AcceptProposal(c.Request.Context(), c.Param("id"), actorID(c))
	h.write(c, d, err)
}

// RequestMediation godoc
// @Summary      Move the dispute to mediation and assign a mediator
// @Tags         disputes
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Party"
// @Param        id          path    string  true  "Dispute id"
// @Success      200  {object}  response.DisputeResponse
// @Router       /disputes/{id}/mediation [post]
func (h *DisputeHandler) RequestMediation(c *gin.Context) {
	d, err := h.usecase.RequestMediation(c.Request.Context(), c.Param("id"), actorID(c))
	h.write(c, d, err)
}

// ResolveDispute godoc
// @Summary      Mediator resolves the dispute and settles the escrow
// @Tags         disputes
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                         true  "Mediator id"
// @Param        id          path    string                         true  "Dispute id"
// @Param        body        body    request.ResolveDisputeRequest  true  "Resolution"
// @Success      200  {object}  response.DisputeResponse
// @Router       /disputes/{id}/resolve [post]
func (h *DisputeHandler) ResolveDispute(c *gin.Context) {
	var payload request.ResolveDisputeRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	d, err := h.usecase.ResolveDispute(c.Request.Context(), payload.ToInput(c.Param("id"), actorID(c)))
	if err != nil {
		h.log.Warn("resolve dispute failed", zap.String("dispute_id", c.Param("id")), zap.Error(err))
	}
	h.write(c, d, err)
}

// EscalateDispute godoc
// @Summary      Escalate to the admin team
// @Tags         disputes
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                          true  "Actor"
// @Param        id          path    string                          true  "Dispute id"
// @Param        body        body    request.EscalateDisputeRequest  true  "Reason"
// @Success      200  {object}  response.DisputeResponse
// @Router       /disputes/{id}/escalate [post]
func (h *DisputeHandler) EscalateDispute(c *gin.Context) {
	var payload request.EscalateDisputeRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	d, err := h.usecase.EscalateDispute(c.Request.Context(), c.Param("id"), actorID(c), payload.Reason)
	h.write(c, d, err)
}

// WithdrawDispute godoc
// @Summary      Client withdraws the dispute
// @Tags         disputes
// @Produce      json
// @Param        X-Actor-ID  header  string  true  "Client id"
// @Param        id          path    string  true  "Dispute id"
// @Success      200  {object}  response.DisputeResponse
// @Router       /disputes/{id}/withdraw [post]
func (h *DisputeHandler) WithdrawDispute(c *gin.Context) {
	d, err := h.usecase.WithdrawDispute(c.Request.Context(), c.Param("id"), actorID(c))
	h.write(c, d, err)
}

// CloseDispute godoc
// @Summary      Close the dispute without a resolution
// @Tags         disputes
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                 true   "Mediator or admin"
// @Param        id          path    string                 true   "Dispute id"
// @Param        body        body    request.ReasonRequest  false  "Reason"
// @Success      200  {object}  response.DisputeResponse
// @Router       /disputes/{id}/close [post]
func (h *DisputeHandler) CloseDispute(c *gin.Context) {
	var payload request.ReasonRequest
	if !bindJSON(c, &payload, true) {
		return
	}
	d, err := h.usecase.CloseDispute(c.Request.Context(), c.Param("id"), actorID(c), payload.Reason)
	h.write(c, d, err)
}

// AddMessage godoc
// @Summary      Post a message to the dispute thread
// @Tags         disputes
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                     true  "Party or mediator"
// @Param        id          path    string                     true  "Dispute id"
// @Param        body        body    request.AddMessageRequest  true  "Message"
// @Success      201  {object}  response.DisputeMessageResponse
// @Router       /disputes/{id}/messages [post]
func (h *DisputeHandler) AddMessage(c *gin.Context) {
	var payload request.AddMessageRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	m, err := h.usecase.AddMessage(c.Request.Context(), payload.ToInput(c.Param("id"), actorID(c)))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDisputeMessage(m))
}

func (h *DisputeHandler) write(c *gin.Context, d entities.Dispute, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDispute(d))
}
