package main

import (
	"context"
	"time"

	"github.com/born2vin/hoskote-backend/config"
	"github.com/born2vin/hoskote-backend/db"
	"github.com/born2vin/hoskote-backend/handlers"
	"github.com/born2vin/hoskote-backend/internal/auth"
	"github.com/born2vin/hoskote-backend/internal/store/postgres"
	"github.com/born2vin/hoskote-backend/logger"
	"github.com/born2vin/hoskote-backend/models"
	"github.com/born2vin/hoskote-backend/router"
	"github.com/born2vin/hoskote-backend/services"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// version is set at build time via -ldflags.
var version = "dev"

// @title Hoskote Community API
// @version 1.0
// @description Community platform backend: shared expenses, ideas, alerts and an item lending marketplace.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	connStr := cfg.Database.ConnString()
	log.Infow("Connecting to database",
		"connection", logger.MaskConnectionString(connStr))

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Warnw("Failed to close redis client", "error", err)
		}
	}()

	// Stores
	userStore := postgres.NewUserStore(pool)
	expenseStore := postgres.NewExpenseStore(pool)
	ideaStore := postgres.NewIdeaStore(pool)
	alertStore := postgres.NewAlertStore(pool)
	marketplaceStore := postgres.NewMarketplaceStore(pool)

	// Models
	tokenIssuer := auth.NewTokenIssuer(
		cfg.Server.JwtSecretKey,
		time.Duration(cfg.Server.AccessTokenTTLMinutes)*time.Minute,
	)
	userModel := models.NewUserModel(userStore, tokenIssuer)
	expenseModel := models.NewExpenseModel(expenseStore, userStore)
	ideaModel := models.NewIdeaModel(ideaStore)
	alertModel := models.NewAlertModel(alertStore)
	marketplaceModel := models.NewMarketplaceModel(marketplaceStore)

	// Services and handlers
	healthService := services.NewHealthService(pool, redisClient, version)

	deps := router.Dependencies{
		Config:             cfg,
		TokenIssuer:        tokenIssuer,
		UserStore:          userStore,
		RedisClient:        redisClient,
		AuthHandler:        handlers.NewAuthHandler(userModel),
		UserHandler:        handlers.NewUserHandler(userModel),
		ExpenseHandler:     handlers.NewExpenseHandler(expenseModel),
		IdeaHandler:        handlers.NewIdeaHandler(ideaModel),
		AlertHandler:       handlers.NewAlertHandler(alertModel),
		MarketplaceHandler: handlers.NewMarketplaceHandler(marketplaceModel),
		HealthHandler:      handlers.NewHealthHandler(healthService),
	}

	r := router.SetupRouter(deps)

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
