package router

import (
	"github.com/gin-gonic/gin"
	"github.com/lovedays/internal/db"
	"github.com/lovedays/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(uploadDir, uploadURLPath string) *gin.Engine {
	return SetupRouterWithAPI(handler.NewAPI(db.DB, uploadDir, uploadURLPath), uploadDir, uploadURLPath)
}

// SetupRouterWithAPI 用预构造的 API 组装路由，便于测试注入时钟
func SetupRouterWithAPI(api *handler.API, uploadDir, uploadURLPath string) *gin.Engine {
	r := gin.Default()

	// 上传的照片作为静态文件提供
	r.Static(uploadURLPath, uploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 一次性推送工具页面
	r.GET("/github-push", api.ShowGithubPushPage)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/couple", api.GetCouple)
		apiGroup.POST("/couple", api.CreateCouple)
		apiGroup.PUT("/couple/:id", api.UpdateCouple)

		apiGroup.GET("/memories/:coupleId", api.ListMemories)
		apiGroup.POST("/memories", api.CreateMemory)
		apiGroup.DELETE("/memories/:id", api.DeleteMemory)

		apiGroup.GET("/important-dates/:coupleId", api.ListImportantDates)
		apiGroup.GET("/important-dates/:coupleId/countdowns", api.ListImportantDateCountdowns)
		apiGroup.POST("/important-dates", api.CreateImportantDate)
		apiGroup.DELETE("/important-dates/:id", api.DeleteImportantDate)

		// 派生状态：客户端直接消费计算结果
		apiGroup.GET("/stats", api.GetStats)
		apiGroup.GET("/milestones", api.GetMilestones)
		apiGroup.GET("/quote", api.GetQuote)

		apiGroup.POST("/upload", api.UploadPhoto)
		apiGroup.POST("/github-push", api.PushToGithub)
	}

	return r
}
