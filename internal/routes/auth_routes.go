package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KuntzeM/BoxCopilot/internal/auth"
	"github.com/KuntzeM/BoxCopilot/internal/handlers"
)

// SetupAuthRoutes 设置认证相关路由
func SetupAuthRoutes(router *gin.RouterGroup, h *handlers.AuthHandler) {
	apiV1 := router.Group("/v1") // 创建 /api/v1 路由组
	{
		// 公共认证路由组 (例如登录)
		publicAuthGroup := apiV1.Group("/auth")
		{
			// POST /api/v1/auth/login
			publicAuthGroup.POST("/login", h.Login)
		}

		// 受保护的认证路由组
		protectedAuthGroup := apiV1.Group("/auth")
		protectedAuthGroup.Use(auth.JWTMiddleware())
		{
			// POST /api/v1/auth/logout
			protectedAuthGroup.POST("/logout", h.Logout)
		}
	}
}
