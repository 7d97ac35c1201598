package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pluscontrol/plus-control-api/internal/application/service"
	"github.com/pluscontrol/plus-control-api/internal/config"
	"github.com/pluscontrol/plus-control-api/internal/domain/finance"
	domainRepo "github.com/pluscontrol/plus-control-api/internal/domain/repository"
	"github.com/pluscontrol/plus-control-api/internal/domain/workflow"
	"github.com/pluscontrol/plus-control-api/internal/infrastructure/database"
	"github.com/pluscontrol/plus-control-api/internal/infrastructure/observability"
	"github.com/pluscontrol/plus-control-api/internal/infrastructure/repository"
	"github.com/pluscontrol/plus-control-api/internal/infrastructure/storage"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/handler"
	"github.com/pluscontrol/plus-control-api/internal/presentation/http/routes"
	"github.com/pluscontrol/plus-control-api/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg := config.Load()
	log := observability.NewLogger(cfg.Log.Format, cfg.Log.Level).
		With().Str("service", cfg.App.Name).Logger()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(&cfg.Database, cfg.Log.Level, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	evidence, evidenceDir, err := newEvidenceStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to initialise evidence storage")
	}

	var (
		httpMetrics   *observability.HTTPMetrics
		domainMetrics *observability.DomainMetrics
		gatherer      prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		httpMetrics = observability.NewHTTPMetrics(cfg.Metrics.Namespace, reg)
		domainMetrics = observability.NewDomainMetrics(cfg.Metrics.Namespace, reg)
		gatherer = reg
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiryHours)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	ruleRepo := repository.NewDiscountRuleRepository(db)
	clientRepo := repository.NewClientRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	calc := finance.NewCalculator(finance.Policy{
		TaxRate:       cfg.Finance.TaxRate,
		DebtTolerance: cfg.Finance.DebtTolerance,
	})
	gate := workflow.NewGate(cfg.Finance.DebtTolerance)
	evidenceKeys := service.NewEvidenceKeys(cfg.Storage.KeyPrefix)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	quoteService := service.NewQuoteService(quoteRepo, ruleRepo, clientRepo, materialRepo, calc, service.QuoteDefaults{
		FolioPrefix:      cfg.Finance.FolioPrefix,
		Validity:         cfg.Finance.DefaultValidity,
		PaymentCondition: cfg.Finance.DefaultPaymentCondition,
	})
	statusService := service.NewStatusService(quoteRepo, domainMetrics, log)
	deliveryService := service.NewDeliveryService(quoteRepo, deliveryRepo, evidence, evidenceKeys, calc, gate, domainMetrics, log)
	collectionsService := service.NewCollectionsService(quoteRepo, calc)
	boardService := service.NewProductionBoardService(quoteRepo, calc, service.BoardOptions{
		WindowDays: cfg.Finance.BoardWindowDays,
		UrgentDays: cfg.Finance.UrgentDays,
	})
	ruleService := service.NewDiscountRuleService(ruleRepo)
	clientService := service.NewClientService(clientRepo)
	materialService := service.NewMaterialService(materialRepo)
	maintenanceService := service.NewMaintenanceService(evidence, evidenceKeys, deliveryRepo, idempotencyRepo, cfg.Maintenance.OrphanMinAge, domainMetrics, log)

	created, err := authService.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to seed admin user")
	} else if created {
		log.Info().Str("email", cfg.Admin.Email).Msg("admin user created")
	}

	go maintenanceService.Run(ctx, cfg.Maintenance.SweepInterval)

	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Quote:        handler.NewQuoteHandler(quoteService, statusService),
		Delivery:     handler.NewDeliveryHandler(deliveryService, cfg.Storage.UploadMaxSize, log),
		Production:   handler.NewProductionHandler(boardService, statusService, collectionsService),
		DiscountRule: handler.NewDiscountRuleHandler(ruleService),
		Client:       handler.NewClientHandler(clientService),
		Material:     handler.NewMaterialHandler(materialService),
	}

	router := routes.Setup(ctx, handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Logger:          log,
		HTTPMetrics:     httpMetrics,
		Gatherer:        gatherer,
		EvidenceDir:     evidenceDir,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().Str("port", port).Str("env", cfg.App.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped gracefully")
}

// newEvidenceStorage picks the evidence backend. The returned directory is
// non-empty only for the local driver, whose files the API serves itself.
func newEvidenceStorage(ctx context.Context, cfg *config.Config) (domainRepo.EvidenceStorage, string, error) {
	switch cfg.Storage.Driver {
	case "s3":
		client, err := storage.NewS3Client(ctx, &cfg.Storage.S3)
		if err != nil {
			return nil, "", err
		}
		return storage.NewS3Storage(client, &cfg.Storage.S3), "", nil
	default:
		local, err := storage.NewLocalStorage(cfg.Storage.Path, cfg.Storage.PublicBaseURL)
		if err != nil {
			return nil, "", err
		}
		return local, local.Root(), nil
	}
}

