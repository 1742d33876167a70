package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rhythm_coach_backend/internal/config"
	"rhythm_coach_backend/internal/controller"
	"rhythm_coach_backend/internal/repository"
	"rhythm_coach_backend/internal/service"
	"rhythm_coach_backend/pkg/database"
	"rhythm_coach_backend/pkg/logger"
	"rhythm_coach_backend/pkg/monitoring"
	"rhythm_coach_backend/pkg/security"
	"rhythm_coach_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
}

type repositories struct {
	user       *repository.UserRepository
	chart      *repository.ChartRepository
	annotation *repository.AnnotationRepository
	record     *repository.PracticeRecordRepository
	techTag    *repository.TechTagRepository
	feedback   *repository.FeedbackRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	chart      *service.ChartService
	annotation *service.AnnotationService
	practice   *service.PracticeService
	diagnostic *service.DiagnosticService
	techTag    *service.TechTagService
	feedback   *service.FeedbackService
}

type controllers struct {
	auth       *controller.AuthController
	chart      *controller.ChartController
	annotation *controller.AnnotationController
	practice   *controller.PracticeController
	report     *controller.ReportController
	techTag    *controller.TechTagController
	feedback   *controller.FeedbackController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		chart:      repository.NewChartRepository(db),
		annotation: repository.NewAnnotationRepository(db),
		record:     repository.NewPracticeRecordRepository(db),
		techTag:    repository.NewTechTagRepository(db),
		feedback:   repository.NewFeedbackRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.chart = service.NewChartService(repos.chart, repos.annotation, s.storage)
	s.annotation = service.NewAnnotationService(repos.annotation, repos.chart, repos.techTag)
	s.practice = service.NewPracticeService(repos.record, repos.chart, repos.annotation)
	s.diagnostic = service.NewDiagnosticService(repos.record)
	s.techTag = service.NewTechTagService(repos.techTag)
	s.feedback = service.NewFeedbackService(repos.feedback)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		chart:      controller.NewChartController(s.chart),
		annotation: controller.NewAnnotationController(s.annotation),
		practice:   controller.NewPracticeController(s.practice),
		report:     controller.NewReportController(s.diagnostic),
		techTag:    controller.NewTechTagController(s.techTag),
		feedback:   controller.NewFeedbackController(s.feedback),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("rhythm-coach", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
