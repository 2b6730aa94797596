package routes

import (
	"marketplace_trust/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEscrows    = "/escrows"
	PathMilestones = "/milestones"
)

func addEscrowRoutes(rg *gin.RouterGroup, h *handlers.EscrowHandler) {
	escrows := rg.Group(PathEscrows)
	{
		escrows.POST("", h.CreateEscrow)
		escrows.GET("", h.ListEscrows)
		escrows.GET("/booking/:booking_id", h.GetEscrowByBooking)
		escrows.GET("/:id", h.GetEscrow)
		escrows.POST("/:id/fund", h.FundEscrow)
		escrows.POST("/:id/reconcile", h.ReconcileEscrow)
		escrows.POST("/:id/start", h.StartWork)
		escrows.POST("/:id/complete", h.CompleteWork)
		escrows.POST("/:id/release", h.ReleaseFunds)
		escrows.POST("/:id/dispute", h.DisputeEscrow)
		escrows.POST("/:id/refund", h.RefundEscrow)
		escrows.POST("/:id/cancel", h.CancelEscrow)
	}

	milestones := rg.Group(PathMilestones)
	{
		milestones.POST("/:id/complete", h.CompleteMilestone)
		milestones.POST("/:id/approve", h.ApproveMilestone)
		milestones.POST("/:id/refund", h.RefundMilestone)
	}
}
