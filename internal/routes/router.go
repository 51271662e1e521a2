package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/KuntzeM/BoxCopilot/configs"
	"github.com/KuntzeM/BoxCopilot/internal/handlers"
)

// Handlers 汇总了路由注册需要的全部处理器
type Handlers struct {
	Auth      *handlers.AuthHandler
	Box       *handlers.BoxHandler
	Item      *handlers.ItemHandler
	BoxNumber *handlers.BoxNumberHandler
	Public    *handlers.PublicHandler
}

// SetupRoutes 初始化所有路由
func SetupRoutes(router *gin.Engine, h Handlers) {
	// 前端运行在独立的源上，需要放行跨域请求
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{configs.AppConfig.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	SetupAuthRoutes(api, h.Auth)
	SetupBoxRoutes(api, h.Box, h.Item)
	SetupItemRoutes(api, h.Item)
	SetupBoxNumberRoutes(api, h.BoxNumber)
	SetupPublicRoutes(api, h.Public)
}
