package routes

import (
	"jukumu_fund/internal/controllers"

	"github.com/gin-gonic/gin"
)

func GroupRoutes(r *gin.Engine) {
	groups := r.Group("/api/groups")
	{
		groups.GET("", controllers.ListGroups)
		groups.POST("", controllers.CreateGroup)
	}
}
