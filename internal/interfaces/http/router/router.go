package router

import (
	"github.com/feedygotech/laundry-backend/internal/infrastructure/auth"
	"github.com/feedygotech/laundry-backend/internal/infrastructure/config"
	"github.com/feedygotech/laundry-backend/internal/interfaces/http/handler"
	"github.com/feedygotech/laundry-backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles every handler the router wires up
type Handlers struct {
	Health   *handler.HealthHandler
	Pricing  *handler.PricingHandler
	Service  *handler.ServiceHandler
	Order    *handler.OrderHandler
	Pickup   *handler.PickupHandler
	Contact  *handler.ContactHandler
	Washing  *handler.WashingHandler
	Customer *handler.CustomerHandler
	Report   *handler.ReportHandler
}

// New builds the gin engine with all middleware and routes registered.
// Public routes serve the customer site; everything under /admin
// requires an operator token.
func New(cfg *config.Config, jwtService *auth.JWTService, logger *zap.Logger, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.HTTP.CORSAllowOrigins),
	)
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.GET("/health", h.Health.Health)
	engine.GET("/ready", h.Health.Ready)

	api := engine.Group("/api/v1")

	// public: customer site
	api.GET("/services", h.Service.List)
	api.GET("/services/:slug", h.Service.GetBySlug)
	api.GET("/pricing/services", h.Pricing.ListCustomerPriceLists)
	api.GET("/pricing/services/:slug", h.Pricing.CustomerPriceList)
	api.POST("/pickup-requests", h.Pickup.Create)
	api.POST("/contact-queries", h.Contact.Create)

	// POS bridge intake
	api.POST("/pos/orders", h.Order.PosIntake)

	// operator API
	admin := api.Group("/admin", middleware.OperatorAuth(jwtService, logger))
	{
		admin.POST("/services", h.Service.Create)
		admin.GET("/services/:id", h.Service.Get)
		admin.PUT("/services/:id", h.Service.Update)
		admin.POST("/services/:id/archive", h.Service.Archive)
		admin.DELETE("/services/:id", h.Service.Delete)

		admin.GET("/services/:id/pricing/preview", h.Pricing.Preview)
		admin.POST("/services/:id/pricing/publish", h.Pricing.Publish)
		admin.POST("/services/:id/pricing/unpublish", h.Pricing.Unpublish)
		admin.GET("/services/:id/pricing/pending", h.Pricing.PendingChanges)
		admin.GET("/pricing/pending", h.Pricing.ListPending)

		admin.POST("/orders", h.Order.Create)
		admin.GET("/orders", h.Order.List)
		admin.GET("/orders/:id", h.Order.Get)
		admin.POST("/orders/:id/confirm", h.Order.Confirm)
		admin.POST("/orders/:id/transition", h.Order.Transition)
		admin.GET("/orders/:id/works", h.Order.ListWorks)

		admin.POST("/washing-types", h.Washing.CreateType)
		admin.GET("/washing-types", h.Washing.ListTypes)
		admin.DELETE("/washing-types/:id", h.Washing.DeleteType)
		admin.POST("/washing-works/:id/start", h.Washing.StartWork)
		admin.POST("/washing-works/:id/complete", h.Washing.CompleteWork)

		admin.GET("/pickup-requests", h.Pickup.List)
		admin.GET("/pickup-requests/:id", h.Pickup.Get)
		admin.POST("/pickup-requests/:id/contacted", h.Pickup.MarkContacted)
		admin.POST("/pickup-requests/:id/complete", h.Pickup.Complete)
		admin.POST("/pickup-requests/:id/cancel", h.Pickup.Cancel)

		admin.GET("/contact-queries", h.Contact.List)
		admin.GET("/contact-queries/:id", h.Contact.Get)
		admin.POST("/contact-queries/:id/assign", h.Contact.Assign)
		admin.POST("/contact-queries/:id/priority", h.Contact.SetPriority)
		admin.POST("/contact-queries/:id/resolve", h.Contact.Resolve)
		admin.POST("/contact-queries/:id/close", h.Contact.Close)

		admin.POST("/customers", h.Customer.Create)
		admin.GET("/customers", h.Customer.List)
		admin.GET("/customers/:id", h.Customer.Get)

		admin.GET("/reports/orders", h.Report.OrderAnalysis)
		admin.GET("/reports/customers", h.Report.CustomerStatus)
		admin.GET("/reports/workload", h.Report.Workload)
	}

	return engine
}
