package routes

import (
	"jukumu_fund/internal/controllers"

	"github.com/gin-gonic/gin"
)

func InvestorRoutes(r *gin.Engine) {
	investor := r.Group("/api/investor")
	{
		investor.GET("/stats", controllers.InvestorStats)
	}
}
