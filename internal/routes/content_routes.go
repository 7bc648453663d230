package routes

import (
	"jukumu_fund/internal/controllers"
	"jukumu_fund/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ContentRoutes(r *gin.Engine) {
	content := r.Group("/api/educational-content")
	{
		content.GET("", controllers.ListContent)
		content.GET("/:id", controllers.GetContent)
	}

	manage := r.Group("/api/educational-content")
	manage.Use(middleware.RequireAuthWithRole("admin"))
	{
		manage.POST("", controllers.CreateContent)
		manage.PUT("/:id", controllers.UpdateContent)
		manage.DELETE("/:id", controllers.DeleteContent)
	}
}
