package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	MemberRoutes(r)
	GroupRoutes(r)
	ContentRoutes(r)
	InvestorRoutes(r)
	AdminRoutes(r)

	return r
}
