package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KuntzeM/BoxCopilot/internal/auth"
	"github.com/KuntzeM/BoxCopilot/internal/handlers"
)

// SetupBoxRoutes 设置箱子相关路由，全部需要认证
func SetupBoxRoutes(router *gin.RouterGroup, boxHandler *handlers.BoxHandler, itemHandler *handlers.ItemHandler) {
	boxGroup := router.Group("/v1/boxes")
	boxGroup.Use(auth.JWTMiddleware())
	{
		boxGroup.GET("", boxHandler.ListBoxes)    // GET /api/v1/boxes
		boxGroup.POST("", boxHandler.CreateBox)   // POST /api/v1/boxes
		boxGroup.GET("/:uuid", boxHandler.GetBox) // GET /api/v1/boxes/:uuid
		boxGroup.GET("/:uuid/items", itemHandler.GetBoxItems)
		boxGroup.PUT("/:id", boxHandler.UpdateBox)      // PUT /api/v1/boxes/:id
		boxGroup.DELETE("/:id", boxHandler.DeleteBox)   // DELETE /api/v1/boxes/:id
	}
}
