package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/enterprise-data-api/internal/dummydata"
	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/repository"
	"github.com/noah-isme/enterprise-data-api/internal/service"
	"github.com/noah-isme/enterprise-data-api/pkg/cache"
	"github.com/noah-isme/enterprise-data-api/pkg/config"
	"github.com/noah-isme/enterprise-data-api/pkg/database"
	"github.com/noah-isme/enterprise-data-api/pkg/logger"
)

func main() {
	var (
		enterpriseID   string
		enterpriseName string
		learners       int
		enrollments    int
		printToken     bool
	)

	flag.StringVar(&enterpriseID, "enterprise", "", "Enterprise customer UUID to generate data for")
	flag.StringVar(&enterpriseName, "name", "", "Enterprise display name")
	flag.IntVar(&learners, "learners", 10, "Number of learners to create")
	flag.IntVar(&enrollments, "enrollments", 5, "Enrollments per learner")
	flag.BoolVar(&printToken, "token", false, "Print an ENTERPRISE_ADMIN access token for the enterprise")
	flag.Parse()

	if _, err := uuid.Parse(enterpriseID); err != nil {
		log.Fatalf("-enterprise must be a UUID: %v", err)
	}
	if learners < 0 || enrollments < 0 {
		log.Fatal("-learners and -enrollments must not be negative")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	data := dummydata.Generate(dummydata.Options{
		EnterpriseID:          enterpriseID,
		EnterpriseName:        enterpriseName,
		Learners:              learners,
		EnrollmentsPerLearner: enrollments,
		Now:                   time.Now().UTC(),
	})
	if err := repository.NewSeedRepository(db).Insert(ctx, data.Learners, data.Enrollments); err != nil {
		logr.Fatal("failed to insert dummy data", zap.Error(err))
	}
	logr.Info("dummy data created",
		zap.String("enterprise_id", models.NormalizeEnterpriseID(enterpriseID)),
		zap.Int("learners", len(data.Learners)),
		zap.Int("enrollments", len(data.Enrollments)))

	invalidateCache(ctx, cfg, logr, enterpriseID)

	if printToken {
		auth := service.NewAuthService(service.AuthConfig{
			AccessTokenSecret: cfg.JWT.Secret,
			AccessTokenExpiry: 24 * time.Hour,
			Issuer:            cfg.JWT.Issuer,
			Audience:          cfg.JWT.Audience,
		})
		token, err := auth.IssueToken("dummy-admin", "admin@example.com", models.RoleEnterpriseAdmin, []string{enterpriseID})
		if err != nil {
			logr.Fatal("failed to issue token", zap.Error(err))
		}
		fmt.Println(token)
	}
}

// invalidateCache drops cached enrollment sets so the new rows show up
// before the TTL lapses.
func invalidateCache(ctx context.Context, cfg *config.Config, logr *zap.Logger, enterpriseID string) {
	if !cfg.Cache.Enabled {
		return
	}
	client, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, cached enrollment sets left to expire", zap.Error(err))
		return
	}
	defer client.Close()

	cacheSvc := service.NewCacheService(repository.NewCacheRepository(client, logr), nil, cfg.Cache.EnrollmentTTL, logr, true)
	if err := cacheSvc.Invalidate(ctx, service.EnterpriseCachePattern(enterpriseID)); err != nil {
		logr.Warn("cache invalidation failed", zap.Error(err))
	}
}
