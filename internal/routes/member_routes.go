package routes

import (
	"jukumu_fund/internal/controllers"
	"jukumu_fund/internal/middleware"

	"github.com/gin-gonic/gin"
)

func MemberRoutes(r *gin.Engine) {
	// Public registration and directory
	members := r.Group("/api/members")
	{
		members.GET("", controllers.ListMembers)
		members.POST("", controllers.CreateMember)
	}

	// Member self-service, behind authentication
	self := r.Group("/api/members")
	self.Use(middleware.RequireAuth())
	{
		self.GET("/profile", controllers.GetMemberProfile)
		self.PUT("/profile", controllers.UpdateMemberProfile)
		self.GET("/training", controllers.MemberTrainingCatalog)
		self.POST("/training", controllers.UpdateMemberTraining)
		self.GET("/activities", controllers.MemberActivities)
		self.GET("/investments", controllers.MemberInvestments)
	}
}
