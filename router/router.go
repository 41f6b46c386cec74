package router

import (
	"time"

	"github.com/born2vin/hoskote-backend/config"
	"github.com/born2vin/hoskote-backend/handlers"
	"github.com/born2vin/hoskote-backend/internal/auth"
	"github.com/born2vin/hoskote-backend/internal/store"
	"github.com/born2vin/hoskote-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies holds everything required to wire up the routes.
type Dependencies struct {
	Config             *config.Config
	TokenIssuer        *auth.TokenIssuer
	UserStore          store.UserStore
	RedisClient        *redis.Client
	AuthHandler        *handlers.AuthHandler
	UserHandler        *handlers.UserHandler
	ExpenseHandler     *handlers.ExpenseHandler
	IdeaHandler        *handlers.IdeaHandler
	AlertHandler       *handlers.AlertHandler
	MarketplaceHandler *handlers.MarketplaceHandler
	HealthHandler      *handlers.HealthHandler
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Config.Server.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and metrics routes do not require auth.
	r.GET("/health", deps.HealthHandler.ReadinessCheck)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/v1")
	{
		authRateLimit := middleware.AuthRateLimiter(
			deps.RedisClient,
			deps.Config.RateLimit.AuthRequestsPerMinute,
			time.Duration(deps.Config.RateLimit.WindowSeconds)*time.Second,
		)

		authGroup := v1.Group("/auth")
		authGroup.Use(authRateLimit)
		{
			authGroup.POST("/register", deps.AuthHandler.RegisterHandler)
			authGroup.POST("/login", deps.AuthHandler.LoginHandler)
		}

		authenticated := v1.Group("")
		authenticated.Use(middleware.AuthMiddleware(deps.TokenIssuer, deps.UserStore))
		{
			userRoutes := authenticated.Group("/users")
			{
				userRoutes.GET("/me", deps.UserHandler.GetMeHandler)
				userRoutes.PUT("/me", deps.UserHandler.UpdateMeHandler)
				userRoutes.GET("", deps.UserHandler.ListUsersHandler)
				userRoutes.GET("/:id", deps.UserHandler.GetUserHandler)
			}

			expenseRoutes := authenticated.Group("/expenses")
			{
				expenseRoutes.POST("", deps.ExpenseHandler.CreateExpenseHandler)
				expenseRoutes.GET("", deps.ExpenseHandler.ListExpensesHandler)
				expenseRoutes.GET("/my-splits", deps.ExpenseHandler.ListMySplitsHandler)
				expenseRoutes.GET("/pending-payments", deps.ExpenseHandler.ListPendingPaymentsHandler)
				expenseRoutes.GET("/:id", deps.ExpenseHandler.GetExpenseHandler)
				expenseRoutes.PUT("/:id", deps.ExpenseHandler.UpdateExpenseHandler)
				expenseRoutes.POST("/:id/pay", deps.ExpenseHandler.PayExpenseSplitHandler)
				expenseRoutes.DELETE("/:id", deps.ExpenseHandler.DeleteExpenseHandler)
			}

			ideaRoutes := authenticated.Group("/ideas")
			{
				ideaRoutes.POST("", deps.IdeaHandler.CreateIdeaHandler)
				ideaRoutes.GET("", deps.IdeaHandler.ListIdeasHandler)
				ideaRoutes.GET("/:id", deps.IdeaHandler.GetIdeaHandler)
				ideaRoutes.PUT("/:id", deps.IdeaHandler.UpdateIdeaHandler)
				ideaRoutes.POST("/:id/vote", deps.IdeaHandler.VoteIdeaHandler)
				ideaRoutes.DELETE("/:id", deps.IdeaHandler.DeleteIdeaHandler)
			}

			alertRoutes := authenticated.Group("/alerts")
			{
				alertRoutes.POST("", deps.AlertHandler.CreateAlertHandler)
				alertRoutes.GET("", deps.AlertHandler.ListAlertsHandler)
				alertRoutes.GET("/active", deps.AlertHandler.ListActiveAlertsHandler)
				alertRoutes.GET("/:id", deps.AlertHandler.GetAlertHandler)
				alertRoutes.PUT("/:id", deps.AlertHandler.UpdateAlertHandler)
				alertRoutes.POST("/:id/resolve", deps.AlertHandler.ResolveAlertHandler)
				alertRoutes.DELETE("/:id", deps.AlertHandler.DeleteAlertHandler)
			}

			marketplaceRoutes := authenticated.Group("/marketplace")
			{
				marketplaceRoutes.POST("", deps.MarketplaceHandler.CreateItemHandler)
				marketplaceRoutes.GET("", deps.MarketplaceHandler.ListItemsHandler)
				marketplaceRoutes.GET("/my-items", deps.MarketplaceHandler.ListMyItemsHandler)
				marketplaceRoutes.GET("/borrowed", deps.MarketplaceHandler.ListBorrowedItemsHandler)
				marketplaceRoutes.GET("/:id", deps.MarketplaceHandler.GetItemHandler)
				marketplaceRoutes.PUT("/:id", deps.MarketplaceHandler.UpdateItemHandler)
				marketplaceRoutes.POST("/:id/borrow", deps.MarketplaceHandler.BorrowItemHandler)
				marketplaceRoutes.POST("/:id/return", deps.MarketplaceHandler.ReturnItemHandler)
				marketplaceRoutes.DELETE("/:id", deps.MarketplaceHandler.DeleteItemHandler)
			}
		}
	}

	return r
}
