package router

import (
	"time"

	"lucia/api"
	"lucia/config"
	_ "lucia/docs"
	"lucia/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 流水台账
		transactionHandler := api.NewTransactionHandler()
		exportHandler := api.NewExportHandler()
		transactions := v1.Group("/transactions")
		{
			transactions.POST("", transactionHandler.Create)
			transactions.GET("", transactionHandler.List)
			transactions.POST("/batch", transactionHandler.BatchCreate)
			transactions.POST("/batch-delete", transactionHandler.BatchDelete)
			transactions.POST("/recategorize", transactionHandler.Recategorize)
			transactions.GET("/export/csv", exportHandler.ExportCSV)
			transactions.GET("/export/excel", exportHandler.ExportExcel)
			transactions.GET("/:id", transactionHandler.Get)
			transactions.PUT("/:id", transactionHandler.Update)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}

		// 计划（手工录入的义务）
		obligationHandler := api.NewObligationHandler()
		obligations := v1.Group("/obligations")
		{
			obligations.POST("", obligationHandler.Create)
			obligations.GET("", obligationHandler.List)
			obligations.POST("/recurring", obligationHandler.CreateRecurring)
			obligations.POST("/settle", obligationHandler.Settle)
			obligations.POST("/:id/unsettle", obligationHandler.Unsettle)
			obligations.PUT("/:id", obligationHandler.Update)
			obligations.DELETE("/:id", obligationHandler.Delete)
		}

		// 规划视图（合并手工计划与自动生成的计划）
		planningHandler := api.NewPlanningHandler()
		planning := v1.Group("/planning")
		{
			planning.GET("/summary", planningHandler.Summary)
			planning.GET("/obligations", planningHandler.Obligations)
			planning.GET("/balance-series", planningHandler.BalanceSeries)
		}

		// 分期购买
		purchaseHandler := api.NewPurchaseHandler()
		purchases := v1.Group("/purchases")
		{
			purchases.POST("", purchaseHandler.Create)
			purchases.GET("", purchaseHandler.List)
			purchases.PUT("/:id", purchaseHandler.Update)
			purchases.DELETE("/:id", purchaseHandler.Delete)
		}

		// 收支类别
		categoryHandler := api.NewCategoryHandler()
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		// 应用设置
		settingHandler := api.NewSettingHandler()
		v1.GET("/settings", settingHandler.Get)
		v1.PUT("/settings", settingHandler.Update)

		// 整库备份
		backupHandler := api.NewBackupHandler()
		backup := v1.Group("/backup")
		{
			backup.GET("/export", backupHandler.Export)
			// 导入是整库替换，限流防误操作刷接口
			backup.POST("/import", middleware.RateLimit(5, time.Minute), backupHandler.Import)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
