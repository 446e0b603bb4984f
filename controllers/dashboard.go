package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"OptiCare360/services"
	"OptiCare360/util"
)

func Dashboard(router *gin.Engine, svc services.DashboardService) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/summary", fetchDashboardSummary(svc))
	}
}

func fetchDashboardSummary(svc services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, util.SuccessResponse(svc.Summary(c.Request.Context())))
	}
}
