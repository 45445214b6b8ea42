package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/auth"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/leasing"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/payments"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/verification"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/esign"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/identity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/licensing"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/mailer"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/mercadopago"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/notify"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/ocr"
	infrapdf "github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/pdf"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/postgres"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/screening"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/infrastructure/storage"
	httpRouter "github.com/coffeevibes888/rentflowhq-sub006/internal/interfaces/http"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/scheduler"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/config"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	// Repositories
	accountRepo := postgres.NewAccountRepository(pool)
	propertyRepo := postgres.NewPropertyRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	applicationRepo := postgres.NewApplicationRepository(pool)
	leaseRepo := postgres.NewLeaseRepository(pool)
	sigRepo := postgres.NewLeaseSignatureRepository(pool)
	invoiceRepo := postgres.NewRentInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	subRepo := postgres.NewSubscriptionRepository(pool)
	contractorRepo := postgres.NewContractorRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	inventoryRepo := postgres.NewInventoryItemRepository(pool)
	workInvoiceRepo := postgres.NewWorkInvoiceRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	screeningRepo := postgres.NewScreeningReportRepository(pool)
	identityRepo := postgres.NewIdentityVerificationRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// External providers
	store, err := storage.NewS3Store(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("S3 storage")
	}
	gateway, err := mercadopago.NewGateway(cfg.Payments.AccessToken)
	if err != nil {
		log.Fatal().Err(err).Msg("payment gateway")
	}
	ocrClient := ocr.NewClient(cfg.Providers.OCRBaseURL, cfg.Providers.OCRAPIKey)
	screeningClient := screening.NewClient(cfg.Providers.ScreeningBaseURL, cfg.Providers.ScreeningAPIKey)
	identityClient := identity.NewClient(cfg.Providers.IdentityBaseURL, cfg.Providers.IdentityAPIKey)
	registryClient := licensing.NewClient(cfg.Providers.LicenseRegistryBaseURL, cfg.Providers.LicenseRegistryAPIKey)
	esignClient := esign.NewClient(cfg.Providers.ESignBaseURL, cfg.Providers.ESignAPIKey)

	// Outbound mail
	smtp := mailer.NewSMTPMailer(cfg.SMTP)
	notifier := notify.NewService(smtp, notifRepo, accountRepo, log)

	// PDF renderers
	leaseRenderer := infrapdf.NewLeaseRenderer()
	workInvoiceRenderer := infrapdf.NewWorkInvoiceRenderer()

	// Use cases
	authUC := auth.NewAuthUseCase(accountRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	propertyUC := usecase.NewPropertyUseCase(propertyRepo, unitRepo)
	applicationUC := leasing.NewApplicationUseCase(
		applicationRepo, unitRepo, propertyRepo, accountRepo, screeningRepo,
		notifRepo, notifier, log,
	)
	approveUC := leasing.NewApproveApplicationUseCase(
		txRunner, applicationRepo, unitRepo, propertyRepo, accountRepo,
		notifier, log,
	)
	leaseUC := leasing.NewLeaseUseCase(
		leaseRepo, sigRepo, unitRepo, propertyRepo, accountRepo, notifRepo,
		leaseRenderer, store, esignClient, notifier, log,
	)
	rentUC := payments.NewRentPaymentUseCase(
		invoiceRepo, paymentRepo, leaseRepo, accountRepo, notifRepo,
		gateway, notifier, log,
	)
	subUC := payments.NewSubscriptionUseCase(subRepo, accountRepo, gateway, log)
	entitlements := usecase.NewEntitlementService(subRepo)
	screeningUC := verification.NewScreeningUseCase(
		screeningRepo, applicationRepo, unitRepo, propertyRepo, accountRepo,
		screeningClient,
	)
	documentUC := verification.NewDocumentUseCase(documentRepo, store, ocrClient, log)
	identityUC := verification.NewIdentityUseCase(identityRepo, accountRepo, identityClient)
	licenseUC := verification.NewLicenseUseCase(contractorRepo, registryClient, log)
	contractorUC := usecase.NewContractorProfileUseCase(contractorRepo)
	crmUC := usecase.NewCRMUseCase(customerRepo, employeeRepo, entitlements)
	jobUC := usecase.NewJobUseCase(jobRepo, customerRepo, entitlements)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, entitlements)
	workInvoiceUC := usecase.NewWorkInvoiceUseCase(
		workInvoiceRepo, customerRepo, jobRepo, workInvoiceRenderer, store,
	)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, contractorRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)
	accountUC := usecase.NewAccountUseCase(accountRepo)

	// Recurring jobs
	sched, err := scheduler.New(
		leaseRepo, invoiceRepo, accountRepo, notifRepo,
		notifier, licenseUC, subUC, log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler setup")
	}
	sched.Start()
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    12 << 20, // room for document uploads
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RentFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		PropertyUC:     propertyUC,
		ApplicationUC:  applicationUC,
		ApproveUC:      approveUC,
		LeaseUC:        leaseUC,
		RentUC:         rentUC,
		SubscriptionUC: subUC,
		ScreeningUC:    screeningUC,
		DocumentUC:     documentUC,
		IdentityUC:     identityUC,
		LicenseUC:      licenseUC,
		ContractorUC:   contractorUC,
		CRMUC:          crmUC,
		JobUC:          jobUC,
		InventoryUC:    inventoryUC,
		WorkInvoiceUC:  workInvoiceUC,
		ReviewUC:       reviewUC,
		DashboardUC:    dashboardUC,
		AccountUC:      accountUC,
		Entitlements:   entitlements,
		WebhookSecrets: httpRouter.WebhookSecrets{
			Payment:   cfg.Payments.WebhookSecret,
			ESign:     cfg.Providers.ESignWebhookSecret,
			Screening: cfg.Providers.ScreeningWebhookSecret,
			OCR:       cfg.Providers.OCRWebhookSecret,
			Identity:  cfg.Providers.IdentityWebhookSecret,
		},
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
