package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KuntzeM/BoxCopilot/internal/auth"
	"github.com/KuntzeM/BoxCopilot/internal/handlers"
)

// SetupItemRoutes 设置物品相关路由，全部需要认证
func SetupItemRoutes(router *gin.RouterGroup, h *handlers.ItemHandler) {
	itemGroup := router.Group("/v1/items")
	itemGroup.Use(auth.JWTMiddleware())
	{
		itemGroup.GET("", h.ListItems)            // GET /api/v1/items?search=&boxUuid=
		itemGroup.POST("", h.CreateItem)          // POST /api/v1/items
		itemGroup.POST("/move", h.MoveItems)      // POST /api/v1/items/move
		itemGroup.PUT("/:id", h.UpdateItem)       // PUT /api/v1/items/:id
		itemGroup.DELETE("/:id", h.DeleteItem)    // DELETE /api/v1/items/:id
		itemGroup.POST("/:id/move", h.MoveItem)   // POST /api/v1/items/:id/move
	}
}
