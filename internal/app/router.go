package app

import (
	"rhythm_coach_backend/docs"
	"rhythm_coach_backend/internal/config"
	"rhythm_coach_backend/internal/middleware"
	"rhythm_coach_backend/internal/model"
	"rhythm_coach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// 谱面与标注
		authGroup.GET("/charts", c.chart.ListCharts)
		authGroup.GET("/charts/:id", c.chart.GetChart)
		authGroup.GET("/tech-tags", c.techTag.ListTags)
		authGroup.GET("/charts/:id/annotations", c.annotation.ListAnnotations)
		authGroup.POST("/charts/:id/annotations", c.annotation.CreateAnnotation)
		authGroup.DELETE("/annotations/:id", c.annotation.DeleteAnnotation)

		// 打歌记录与诊断
		authGroup.POST("/practice-records", c.practice.CreateRecord)
		authGroup.GET("/practice-records", c.practice.ListRecords)
		authGroup.DELETE("/practice-records/:id", c.practice.DeleteRecord)
		authGroup.GET("/report", c.report.GetReport)

		// 反馈
		authGroup.POST("/feedback", c.feedback.SubmitFeedback)
	}

	// 3. 管理员相关接口
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		adminGroup.POST("/charts", c.chart.CreateChart)
		adminGroup.DELETE("/charts/:id", c.chart.DeleteChart)
		adminGroup.GET("/annotations", c.annotation.ListAllAnnotations)
		adminGroup.GET("/feedback", c.feedback.ListFeedback)
	}
}
