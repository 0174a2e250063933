package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/enterprise-data-api/api/swagger"
	"github.com/noah-isme/enterprise-data-api/internal/handler"
	internalmiddleware "github.com/noah-isme/enterprise-data-api/internal/middleware"
	"github.com/noah-isme/enterprise-data-api/internal/repository"
	"github.com/noah-isme/enterprise-data-api/internal/service"
	"github.com/noah-isme/enterprise-data-api/pkg/cache"
	"github.com/noah-isme/enterprise-data-api/pkg/config"
	"github.com/noah-isme/enterprise-data-api/pkg/database"
	"github.com/noah-isme/enterprise-data-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/enterprise-data-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/enterprise-data-api/pkg/middleware/requestid"
	"github.com/noah-isme/enterprise-data-api/pkg/tracing"
)

// @title Enterprise Data API
// @version 1.0.0
// @description Read-only analytics over enterprise learner enrollments, learners, offers and admin insights.
// @BasePath /enterprise/api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(cfg.Tracing, cfg.Env)
	if err != nil {
		logr.Fatal("failed to init tracing", zap.Error(err))
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, enrollment cache disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.EnrollmentTTL, logr, cfg.Cache.Enabled && redisClient != nil)

	learnerRepo := repository.NewLearnerRepository(db)
	enrollmentSvc := service.NewEnrollmentService(repository.NewEnrollmentRepository(db), learnerRepo, cacheSvc, metricsSvc, logr, cfg.Cache.EnrollmentTTL)
	learnerSvc := service.NewLearnerService(learnerRepo, metricsSvc, logr)
	offerSvc := service.NewOfferService(repository.NewOfferRepository(db), metricsSvc)
	insightsSvc := service.NewInsightsService(repository.NewInsightsRepository(db), metricsSvc)
	authSvc := service.NewAuthService(service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		Issuer:            cfg.JWT.Issuer,
		Audience:          cfg.JWT.Audience,
	})

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(internalmiddleware.Tracing())
	r.Use(logger.GinMiddleware(logr))
	r.Use(internalmiddleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	paging := handler.Paging{DefaultSize: cfg.Paging.DefaultPageSize, MaxSize: cfg.Paging.MaxPageSize}
	checks := map[string]handler.ReadinessCheck{"postgres": db.PingContext}
	if redisClient != nil {
		checks["redis"] = cacheRepo.Ping
	}

	handler.Router{
		Enrollments: handler.NewEnrollmentHandler(enrollmentSvc, paging, logr),
		Learners:    handler.NewLearnerHandler(learnerSvc, paging, logr),
		Offers:      handler.NewOfferHandler(offerSvc, paging),
		Insights:    handler.NewInsightsHandler(insightsSvc),
		Metrics:     handler.NewMetricsHandler(metricsSvc, checks, logr),
	}.Register(r, cfg.APIPrefix, internalmiddleware.JWT(authSvc))

	if cfg.Env != config.EnvProduction {
		swagger.SwaggerInfo.BasePath = cfg.APIPrefix
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "prefix", cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logr.Error("tracing shutdown failed", zap.Error(err))
	}
}
