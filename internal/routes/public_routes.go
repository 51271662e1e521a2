package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KuntzeM/BoxCopilot/internal/handlers"
)

// SetupPublicRoutes 设置无需认证的公开路由（扫码预览）
func SetupPublicRoutes(router *gin.RouterGroup, h *handlers.PublicHandler) {
	publicGroup := router.Group("/v1/public")
	{
		publicGroup.GET("/:uuid", h.GetBoxPreview) // GET /api/v1/public/:uuid
	}
}
