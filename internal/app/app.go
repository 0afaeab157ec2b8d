package app

import (
	"context"
	"credit_edu_backend/internal/config"
	"credit_edu_backend/internal/controller"
	"credit_edu_backend/internal/middleware"
	"credit_edu_backend/internal/repository"
	"credit_edu_backend/internal/service"
	"credit_edu_backend/internal/util"
	"credit_edu_backend/pkg/configwatcher"
	"credit_edu_backend/pkg/database"
	"credit_edu_backend/pkg/logger"
	"credit_edu_backend/pkg/monitoring"
	"credit_edu_backend/pkg/security"
	"credit_edu_backend/pkg/tracing"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services

	configMu        sync.Mutex
	configCallbacks []func(*config.Config)

	ctx            context.Context
	cancel         context.CancelFunc
	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	attempts repository.QuizAttemptStore
	profiles repository.ProfileStore
	catalog  *repository.QuizCatalogRepository
	// 健康检查探活对象，内存存储时为空
	pinger controller.Pinger
}

type services struct {
	quiz       *service.QuizService
	onboarding *service.OnboardingService
}

type controllers struct {
	quiz       *controller.QuizController
	onboarding *controller.OnboardingController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configMu.Lock()
	defer a.configMu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新，只有运行期可调的字段会生效
func (a *App) ApplyConfig(cfg *config.Config) {
	a.configMu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.configMu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(cfg *config.Config) (*repositories, error) {
	repos := &repositories{catalog: repository.NewQuizCatalogRepository()}

	if cfg.NeedsDatabase() {
		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		if cfg.Server.Mode != util.ModeRelease || cfg.ForceMigrate {
			if err := database.Migrate(db); err != nil {
				return nil, fmt.Errorf("migrate database: %w", err)
			}
		}
		a.DB = db
	}

	if cfg.NeedsRedis() {
		rdb, err := database.InitRedis(a.ctx, &cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
		a.Redis = rdb
	}

	switch cfg.Quiz.Store {
	case config.StoreDatabase:
		store := repository.NewGormQuizAttemptStore(a.DB)
		repos.attempts, repos.pinger = store, store
	case config.StoreRedis:
		store := repository.NewRedisQuizAttemptStore(a.Redis)
		repos.attempts, repos.pinger = store, store
	default:
		logger.Log.Warn("Using in-memory quiz store, attempts are lost on restart")
		repos.attempts = repository.NewMemoryQuizAttemptStore()
	}

	if a.DB != nil {
		repos.profiles = repository.NewGormProfileStore(a.DB)
	} else {
		repos.profiles = repository.NewMemoryProfileStore()
	}

	return repos, nil
}

func (a *App) identity(cfg *config.Config) service.IdentityResolver {
	if cfg.Auth.Enabled {
		return service.SessionIdentity{}
	}
	return service.DemoIdentity{UserID: cfg.Auth.DemoUserID}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	identity := a.identity(cfg)

	return &services{
		quiz:       service.NewQuizService(repos.attempts, repos.catalog, identity, cfg.Quiz.PassingScore),
		onboarding: service.NewOnboardingService(repos.profiles, identity),
	}
}

func (a *App) initControllers(s *services, repos *repositories, cfg *config.Config) *controllers {
	return &controllers{
		quiz:       controller.NewQuizController(s.quiz),
		onboarding: controller.NewOnboardingController(s.onboarding),
		health:     controller.NewHealthController(cfg.Quiz.Store, repos.pinger),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) authMiddleware() gin.HandlerFunc {
	if a.Config.Auth.Enabled {
		return middleware.AuthMiddleware(a.Config.Auth.JWTSecret)
	}
	return func(c *gin.Context) { c.Next() }
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config: cfg,
		ctx:    ctx,
		cancel: cancel,
	}

	repos, err := app.initRepositories(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, repos, cfg)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("init tracing: %w", err)
		}
		app.tracerProvider = tp
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	app.RegisterConfigCallback(func(c *config.Config) {
		logger.SetMode(c.Server.Mode)
	})
	app.RegisterConfigCallback(func(c *config.Config) {
		services.quiz.SetPassingScore(c.Quiz.PassingScore)
	})

	return app, nil
}

// Close 释放后台任务与外部连接
func (a *App) Close() {
	a.cancel()

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func (a *App) Run() {
	defer a.Close()

	if a.Config.File != "" {
		if err := configwatcher.WatchConfig(a.ctx, a.Config.File, a.ApplyConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Server exiting")
}
