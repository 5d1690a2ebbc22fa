package handler

import (
	"github.com/feedygotech/laundry-backend/internal/application/pricing"
	"github.com/gin-gonic/gin"
)

// PricingHandler handles price list publication and display endpoints
type PricingHandler struct {
	BaseHandler
	publisher *pricing.Publisher
	presenter *pricing.Presenter
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(publisher *pricing.Publisher, presenter *pricing.Presenter) *PricingHandler {
	return &PricingHandler{
		publisher: publisher,
		presenter: presenter,
	}
}

// CustomerPriceList returns the customer-audience price list for a
// service, addressed by slug. Unpublished services fall back to the
// live catalog.
func (h *PricingHandler) CustomerPriceList(c *gin.Context) {
	display, err := h.presenter.BuildDisplayBySlug(c.Request.Context(), c.Param("slug"), pricing.AudienceCustomer)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, display)
}

// ListCustomerPriceLists returns customer-audience price lists for all
// active services
func (h *PricingHandler) ListCustomerPriceLists(c *gin.Context) {
	displays, err := h.presenter.ListServices(c.Request.Context(), pricing.AudienceCustomer)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, displays)
}

// Preview returns the operator preview of a service's price list,
// including per-row diff flags against the live catalog and items not
// yet covered by the publication
func (h *PricingHandler) Preview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	display, err := h.presenter.BuildDisplay(c.Request.Context(), id, pricing.AudiencePreview)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, display)
}

// Publish freezes the live catalog into a new snapshot set for the
// service and returns what the replaced publication had drifted by
func (h *PricingHandler) Publish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := h.publisher.Publish(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Unpublish hides the service's published price list from customers
func (h *PricingHandler) Unpublish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.publisher.Unpublish(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// PendingChanges reports whether the service's published price list
// has drifted from the live catalog
func (h *PricingHandler) PendingChanges(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pending, err := h.publisher.PendingChanges(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"pending_changes": pending})
}

// ListPending returns every active service with unpublished price drift
func (h *PricingHandler) ListPending(c *gin.Context) {
	pending, err := h.publisher.ListPendingServices(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pending)
}
