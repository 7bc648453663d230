package routes

import (
	"jukumu_fund/internal/controllers"
	"jukumu_fund/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAuthWithRole("admin"))
	{
		admin.GET("/members", controllers.AdminListMembers)
		admin.PUT("/members", controllers.AdminUpdateMember)
		admin.DELETE("/members", controllers.AdminDeleteMember)

		admin.GET("/groups", controllers.AdminListGroups)
		admin.POST("/groups", controllers.CreateGroup)
		admin.PUT("/groups", controllers.AdminUpdateGroup)

		admin.GET("/investments", controllers.AdminListInvestments)
		admin.POST("/investments", controllers.CreateInvestment)
		admin.PUT("/investments", controllers.AdminUpdateInvestment)

		admin.GET("/announcements", controllers.AdminListAnnouncements)
		admin.POST("/announcements", controllers.AdminCreateAnnouncement)

		admin.GET("/settings", controllers.AdminListSettings)
		admin.PUT("/settings", controllers.AdminUpsertSetting)

		admin.GET("/stats", controllers.AdminStats)
		admin.GET("/activities", controllers.AdminActivities)
	}
}
