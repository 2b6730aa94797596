package routes

import (
	"marketplace_trust/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathRisk = "/risk"

func addRiskRoutes(rg *gin.RouterGroup, h *handlers.RiskHandler) {
	risk := rg.Group(PathRisk)
	{
		risk.POST("/review", h.CheckReview)
		risk.POST("/payment", h.CheckPayment)
		risk.POST("/behavior", h.CheckBehavior)
		risk.GET("/stats", h.GetStats)
	}
}
