package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pluscontrol/plus-control-api/internal/config"
	"github.com/pluscontrol/plus-control-api/internal/domain/enum"
	domainRepo "github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/internal/infrastructure/observability"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/handler"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/middleware"
	"github.com/pluscontrol/plus-control-api/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Quote        *handler.QuoteHandler
	Delivery     *handler.DeliveryHandler
	Production   *handler.ProductionHandler
	DiscountRule *handler.DiscountRuleHandler
	Client       *handler.ClientHandler
	Material     *handler.MaterialHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Logger          zerolog.Logger
	// HTTPMetrics and Gatherer are nil when metrics are disabled.
	HTTPMetrics *observability.HTTPMetrics
	Gatherer    prometheus.Gatherer
	// EvidenceDir is served under /evidence when evidence is kept on local disk.
	EvidenceDir string
}

// Setup creates the Gin router and registers all routes. ctx bounds the
// rate limiter's cleanup goroutine.
func Setup(ctx context.Context, h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	if deps.HTTPMetrics != nil {
		router.Use(middleware.MetricsMiddleware(deps.HTTPMetrics))
	}
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	if deps.EvidenceDir != "" {
		router.Static("/evidence", deps.EvidenceDir)
	}

	limiter := middleware.NewClientRateLimiter(ctx, middleware.RateLimiterConfigFor(deps.Cfg.RateLimit.Requests, deps.Cfg.RateLimit.Duration))

	v1 := router.Group("/api/v1")
	{
		public := v1.Group("")
		public.Use(limiter.Middleware())
		public.POST("/auth/login", h.Auth.Login)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(limiter.Middleware())

		protected.GET("/profile", h.Auth.Profile)

		registerQuoteRoutes(protected, h, deps)
		registerProductionRoutes(protected, h)
		registerCatalogRoutes(protected, h)
	}

	return router
}

func registerQuoteRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	quotes := protected.Group("/quotes")
	{
		quotes.GET("", h.Quote.List)
		quotes.POST("", h.Quote.Create)
		quotes.POST("/preview", h.Quote.Preview)
		quotes.GET("/:id", h.Quote.Get)
		quotes.PUT("/:id", h.Quote.Update)
		quotes.DELETE("/:id", h.Quote.Delete)
		quotes.POST("/:id/transition", h.Quote.Transition)
		quotes.POST("/:id/reject", h.Quote.Reject)
		quotes.POST("/:id/payments", h.Quote.RegisterPayment)
		quotes.GET("/:id/discount-recommendation", h.Quote.DiscountRecommendation)
		quotes.POST("/:id/apply-discount", h.Quote.ApplyDiscount)
		quotes.POST("/:id/delivery",
			middleware.Idempotency(middleware.IdempotencyConfig{
				Repo:   deps.IdempotencyRepo,
				TTL:    deps.Cfg.Maintenance.IdempotencyTTL,
				Logger: deps.Logger,
			}),
			h.Delivery.Confirm,
		)
		quotes.GET("/:id/delivery-audit", h.Delivery.Audit)
	}
}

func registerProductionRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/production/board", h.Production.Board)
	protected.PATCH("/production/quotes/:id", h.Production.Move)
	protected.GET("/collections/debtors", h.Production.Debtors)
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	adminOnly := middleware.RequireRole(string(enum.UserRoleAdmin))

	rules := protected.Group("/discount-rules")
	{
		rules.GET("", h.DiscountRule.List)
		rules.GET("/:id", h.DiscountRule.Get)
		rules.POST("", adminOnly, h.DiscountRule.Create)
		rules.PUT("/:id", adminOnly, h.DiscountRule.Update)
		rules.DELETE("/:id", adminOnly, h.DiscountRule.Delete)
	}

	clients := protected.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}

	materials := protected.Group("/materials")
	{
		materials.GET("", h.Material.List)
		materials.GET("/:id", h.Material.Get)
		materials.POST("", adminOnly, h.Material.Create)
		materials.PUT("/:id", adminOnly, h.Material.Update)
		materials.DELETE("/:id", adminOnly, h.Material.Delete)
	}
}
