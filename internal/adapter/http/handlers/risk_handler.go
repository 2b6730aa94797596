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

// RiskHandler exposes the fraud checks. Client IP and user agent come from
// the request itself.
type RiskHandler struct {
	usecase usecase.IFraudUseCase
	log     *zap.Logger
}

func NewRiskHandler(uc usecase.IFraudUseCase, log *zap.Logger) *RiskHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &RiskHandler{usecase: uc, log: log.Named("risk.handler")}
}

// CheckReview godoc
// @Summary      Score a review before it is published
// @Tags         risk
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                      true  "Reviewing client"
// @Param        body        body    request.ReviewCheckRequest  true  "Review"
// @Success      200  {object}  response.RiskAssessmentResponse
// @Router       /risk/review [post]
func (h *RiskHandler) CheckReview(c *gin.Context) {
	var payload request.ReviewCheckRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	a, err := h.usecase.CheckReview(c.Request.Context(), payload.ToInput(actorID(c), c.ClientIP()))
	h.write(c, a, err)
}

// CheckPayment godoc
// @Summary      Score a payment attempt
// @Tags         risk
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                       true  "Paying user"
// @Param        body        body    request.PaymentCheckRequest  true  "Payment"
// @Success      200  {object}  response.RiskAssessmentResponse
// @Router       /risk/payment [post]
func (h *RiskHandler) CheckPayment(c *gin.Context) {
	var payload request.PaymentCheckRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	a, err := h.usecase.CheckPayment(c.Request.Context(), payload.ToInput(actorID(c), c.ClientIP()))
	h.write(c, a, err)
}

// CheckBehavior godoc
// @Summary      Score an account action such as a login
// @Tags         risk
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                        true  "User"
// @Param        body        body    request.BehaviorCheckRequest  true  "Action"
// @Success      200  {object}  response.RiskAssessmentResponse
// @Router       /risk/behavior [post]
func (h *RiskHandler) CheckBehavior(c *gin.Context) {
	var payload request.BehaviorCheckRequest
	if !bindJSON(c, &payload, false) {
		return
	}
	a, err := h.usecase.CheckBehavior(c.Request.Context(), payload.ToInput(actorID(c), c.ClientIP(), c.Request.UserAgent()))
	h.write(c, a, err)
}

// GetStats godoc
// @Summary      Fraud-check statistics for a period
// @Tags         risk
// @Produce      json
// @Param        X-Actor-ID  header  string  true   "Actor"
// @Param        period      query   string  false  "day, week or month" default(week)
// @Success      200  {object}  response.FraudStatsResponse
// @Router       /risk/stats [get]
func (h *RiskHandler) GetStats(c *gin.Context) {
	period := entities.StatsPeriod(strings.ToLower(c.Query("period")))
	stats, err := h.usecase.GetFraudStats(c.Request.Context(), period)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFraudStats(stats))
}

func (h *RiskHandler) write(c *gin.Context, a entities.FraudAssessment, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	if a.Action == entities.RiskActionBlock {
		h.log.Info("risk check blocked",
			zap.String("user_id", a.UserID),
			zap.String("check_type", string(a.CheckType)),
			zap.Int("risk_score", a.RiskScore))
	}
	c.JSON(http.StatusOK, response.FromAssessment(a))
}
