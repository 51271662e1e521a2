package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/KuntzeM/BoxCopilot/configs"
	_ "github.com/KuntzeM/BoxCopilot/docs" // swag 生成的 API 文档
	"github.com/KuntzeM/BoxCopilot/internal/handlers"
	"github.com/KuntzeM/BoxCopilot/internal/repositories"
	"github.com/KuntzeM/BoxCopilot/internal/routes"
	"github.com/KuntzeM/BoxCopilot/internal/services"
	"github.com/KuntzeM/BoxCopilot/pkg/db"
)

// @title BoxCopilot API
// @version 1.0
// @description 搬家箱子与物品管理系统的后端 API
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configs.LoadConfig()

	// 初始化数据库连接
	db.InitDB()        // 从 pkg/db 调用 InitDB
	defer db.CloseDB() // 确保在 main 函数退出时关闭数据库连接

	gormDB := db.GetDB()
	userRepo := repositories.NewGormUserRepository(gormDB)
	boxRepo := repositories.NewGormBoxRepository(gormDB)
	itemRepo := repositories.NewGormItemRepository(gormDB)
	poolRepo := repositories.NewGormBoxNumberPoolRepository(gormDB)

	userService := services.NewUserService(userRepo)
	if err := userService.EnsureDefaultAdmin(); err != nil {
		log.Fatalf("Failed to ensure default admin account: %v", err)
	}

	// 箱号迁移必须在对外提供服务之前完成，失败时直接终止启动
	migration := services.NewBoxNumberMigration(gormDB, boxRepo, poolRepo)
	if err := migration.MigrateExistingBoxes(); err != nil {
		log.Fatalf("Box number migration failed: %v", err)
	}

	boxNumberService := services.NewBoxNumberService(poolRepo)
	boxService := services.NewBoxService(boxRepo, boxNumberService)
	itemService := services.NewItemService(itemRepo, boxRepo)

	router := gin.Default()

	// 设置API路由
	routes.SetupRoutes(router, routes.Handlers{
		Auth:      handlers.NewAuthHandler(userService),
		Box:       handlers.NewBoxHandler(boxService),
		Item:      handlers.NewItemHandler(itemService),
		BoxNumber: handlers.NewBoxNumberHandler(boxNumberService),
		Public:    handlers.NewPublicHandler(boxService),
	})

	port := configs.AppConfig.ServerPort
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
