package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/auth"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/leasing"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/payments"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/verification"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/subscription"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	PropertyUC     *usecase.PropertyUseCase
	ApplicationUC  *leasing.ApplicationUseCase
	ApproveUC      *leasing.ApproveApplicationUseCase
	LeaseUC        *leasing.LeaseUseCase
	RentUC         *payments.RentPaymentUseCase
	SubscriptionUC *payments.SubscriptionUseCase
	ScreeningUC    *verification.ScreeningUseCase
	DocumentUC     *verification.DocumentUseCase
	IdentityUC     *verification.IdentityUseCase
	LicenseUC      *verification.LicenseUseCase
	ContractorUC   *usecase.ContractorProfileUseCase
	CRMUC          *usecase.CRMUseCase
	JobUC          *usecase.JobUseCase
	InventoryUC    *usecase.InventoryUseCase
	WorkInvoiceUC  *usecase.WorkInvoiceUseCase
	ReviewUC       *usecase.ReviewUseCase
	DashboardUC    *usecase.DashboardUseCase
	AccountUC      *usecase.AccountUseCase
	Entitlements   *usecase.EntitlementService
	WebhookSecrets WebhookSecrets
	JWTSecret      string
	Log            *logger.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Public discovery
	propertyHandler := NewPropertyHandler(deps.PropertyUC)
	contractorHandler := NewContractorHandler(deps.ContractorUC, deps.LicenseUC, deps.ReviewUC)
	api.Get("/units/browse", propertyHandler.Browse)
	api.Get("/contractors/:id", contractorHandler.GetPublic)
	api.Get("/contractors/:id/reviews", contractorHandler.ListReviews)

	// Provider webhooks (HMAC-verified, no JWT)
	webhookHandler := NewWebhookHandler(
		deps.RentUC, deps.SubscriptionUC, deps.LeaseUC,
		deps.ScreeningUC, deps.DocumentUC, deps.IdentityUC,
		deps.WebhookSecrets, deps.Log,
	)
	webhooks := api.Group("/webhooks")
	webhooks.Post("/payments", webhookHandler.Payment)
	webhooks.Post("/esign", webhookHandler.ESign)
	webhooks.Post("/screening", webhookHandler.Screening)
	webhooks.Post("/ocr", webhookHandler.OCR)
	webhooks.Post("/identity", webhookHandler.Identity)

	// Everything below requires a Bearer token. Role gates go on each route:
	// a gate attached to a "/" group would apply to every route registered
	// after it, not just that group's.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	landlordOnly := RequireRole(entity.RoleLandlord)
	tenantOnly := RequireRole(entity.RoleTenant)
	contractorOnly := RequireRole(entity.RoleContractor)

	// Landlord portfolio
	protected.Post("/properties", landlordOnly, propertyHandler.Create)
	protected.Get("/properties", landlordOnly, propertyHandler.List)
	protected.Get("/properties/:id", landlordOnly, propertyHandler.Get)
	protected.Put("/properties/:id", landlordOnly, propertyHandler.Update)
	protected.Delete("/properties/:id", landlordOnly, propertyHandler.Delete)
	protected.Post("/properties/:id/units", landlordOnly, propertyHandler.CreateUnit)
	protected.Get("/properties/:id/units", landlordOnly, propertyHandler.ListUnits)
	protected.Put("/units/:id", landlordOnly, propertyHandler.UpdateUnit)
	protected.Delete("/units/:id", landlordOnly, propertyHandler.DeleteUnit)

	// Applications: tenants submit and track, landlords decide.
	applicationHandler := NewApplicationHandler(deps.ApplicationUC, deps.ApproveUC, deps.ScreeningUC)
	protected.Post("/applications", tenantOnly, applicationHandler.Submit)
	protected.Get("/applications/mine", tenantOnly, applicationHandler.ListMine)
	protected.Delete("/applications/:id", tenantOnly, applicationHandler.Withdraw)
	protected.Get("/applications", landlordOnly, applicationHandler.ListReceived)
	protected.Post("/applications/:id/approve", landlordOnly, applicationHandler.Approve)
	protected.Post("/applications/:id/reject", landlordOnly, applicationHandler.Reject)
	protected.Post("/applications/:id/screening", landlordOnly, applicationHandler.OrderScreening)
	protected.Get("/applications/:id/screening", landlordOnly, applicationHandler.GetScreening)
	protected.Get("/applications/:id", applicationHandler.Get) // scoped inside the use case

	// Leases (landlord or tenant; scoping happens in the use case)
	leaseHandler := NewLeaseHandler(deps.LeaseUC)
	rentHandler := NewRentHandler(deps.RentUC)
	protected.Get("/leases", leaseHandler.List)
	protected.Get("/leases/:id", leaseHandler.Get)
	protected.Get("/leases/:id/agreement", leaseHandler.Agreement)
	protected.Get("/leases/:id/invoices", rentHandler.ListForLease)
	protected.Post("/leases/:id/send", landlordOnly, leaseHandler.SendForSignature)
	protected.Post("/leases/:id/terminate", landlordOnly, leaseHandler.Terminate)

	// Rent payments (tenant)
	protected.Get("/rent/invoices", tenantOnly, rentHandler.ListMine)
	protected.Post("/rent/invoices/:id/pay", tenantOnly, rentHandler.Checkout)

	// Verification: documents and identity (any authenticated account)
	verificationHandler := NewVerificationHandler(deps.DocumentUC, deps.IdentityUC)
	protected.Post("/verification/documents", verificationHandler.Upload)
	protected.Get("/verification/documents", verificationHandler.List)
	protected.Get("/verification/documents/:id", verificationHandler.Get)
	protected.Post("/verification/identity", verificationHandler.StartIdentity)
	protected.Get("/verification/identity", verificationHandler.IdentityStatus)

	// Contractor business suite
	protected.Put("/contractor/profile", contractorOnly, contractorHandler.Upsert)
	protected.Get("/contractor/profile", contractorOnly, contractorHandler.Get)
	protected.Post("/contractor/license/verify", contractorOnly, contractorHandler.VerifyLicense)

	crmHandler := NewCRMHandler(deps.CRMUC)
	protected.Post("/crm/customers", contractorOnly, crmHandler.CreateCustomer)
	protected.Get("/crm/customers", contractorOnly, crmHandler.ListCustomers)
	protected.Delete("/crm/customers/:id", contractorOnly, crmHandler.DeleteCustomer)
	protected.Post("/crm/employees", contractorOnly, crmHandler.CreateEmployee)
	protected.Get("/crm/employees", contractorOnly, crmHandler.ListEmployees)
	protected.Delete("/crm/employees/:id", contractorOnly, crmHandler.DeactivateEmployee)

	jobHandler := NewJobHandler(deps.JobUC)
	protected.Post("/jobs", contractorOnly, jobHandler.Create)
	protected.Get("/jobs", contractorOnly, jobHandler.List)
	protected.Get("/jobs/:id", contractorOnly, jobHandler.Get)
	protected.Put("/jobs/:id", contractorOnly, jobHandler.Update)
	protected.Delete("/jobs/:id", contractorOnly, jobHandler.Delete)

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	protected.Post("/inventory", contractorOnly, inventoryHandler.Create)
	protected.Get("/inventory", contractorOnly, inventoryHandler.List)
	protected.Post("/inventory/:id/adjust", contractorOnly, inventoryHandler.Adjust)
	protected.Delete("/inventory/:id", contractorOnly, inventoryHandler.Delete)

	workInvoiceHandler := NewWorkInvoiceHandler(deps.WorkInvoiceUC)
	protected.Post("/work-invoices", contractorOnly, workInvoiceHandler.Create)
	protected.Get("/work-invoices", contractorOnly, workInvoiceHandler.List)
	protected.Get("/work-invoices/:id", contractorOnly, workInvoiceHandler.Get)
	protected.Post("/work-invoices/:id/status", contractorOnly, workInvoiceHandler.SetStatus)
	protected.Get("/work-invoices/:id/pdf", contractorOnly, workInvoiceHandler.PDF)

	// Reviews are posted by the customer side, not the contractor.
	protected.Post("/contractors/:id/reviews", contractorHandler.CreateReview)

	// Subscription management (contractor)
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	protected.Get("/subscription", contractorOnly, subscriptionHandler.Current)
	protected.Post("/subscription", contractorOnly, subscriptionHandler.Subscribe)
	protected.Delete("/subscription", contractorOnly, subscriptionHandler.Cancel)

	// Dashboards. The contractor overview is a pro feature; quantity limits
	// elsewhere are enforced at create time inside the use cases.
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/landlord", landlordOnly, dashboardHandler.Landlord)
	protected.Get("/dashboard/contractor", contractorOnly,
		RequireTier(subscription.TierPro, deps.Entitlements),
		dashboardHandler.Contractor)

	// Admin
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AccountUC)
	admin.Get("/accounts", adminHandler.ListAccounts)
	admin.Post("/accounts/:id/status", adminHandler.SetAccountStatus)
}
