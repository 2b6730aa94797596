package routes

import (
	"marketplace_trust/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathDisputes = "/disputes"

func addDisputeRoutes(rg *gin.RouterGroup, h *handlers.DisputeHandler) {
	disputes := rg.Group(PathDisputes)
	{
		disputes.POST("", h.OpenDispute)
		disputes.GET("", h.ListDisputes)
		disputes.GET("/stats", h.GetStats)
		disputes.GET("/:id", h.GetDispute)
		disputes.POST("/:id/response", h.SubmitResponse)
		disputes.POST("/:id/request-response", h.RequestResponse)
		disputes.POST("/:id/accept", h.AcceptProposal)
		disputes.POST("/:id/mediation", h.RequestMediation)
		disputes.POST("/:id/resolve", h.ResolveDispute)
		disputes.POST("/:id/escalate", h.EscalateDispute)
		disputes.POST("/:id/withdraw", h.WithdrawDispute)
		disputes.POST("/:id/close", h.CloseDispute)
		disputes.POST("/:id/messages", h.AddMessage)
	}
}
