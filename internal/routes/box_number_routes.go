package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KuntzeM/BoxCopilot/internal/auth"
	"github.com/KuntzeM/BoxCopilot/internal/handlers"
)

// SetupBoxNumberRoutes 设置箱号池运营路由，仅管理员可访问
func SetupBoxNumberRoutes(router *gin.RouterGroup, h *handlers.BoxNumberHandler) {
	group := router.Group("/v1/box-numbers")
	group.Use(auth.JWTMiddleware(), auth.AdminRequired())
	{
		group.GET("/status", h.GetPoolStatus) // GET /api/v1/box-numbers/status
	}
}
