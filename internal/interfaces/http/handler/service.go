package handler

import (
	applaundry "github.com/feedygotech/laundry-backend/internal/application/laundry"
	"github.com/gin-gonic/gin"
)

// ServiceHandler handles laundry service management endpoints
type ServiceHandler struct {
	BaseHandler
	services *applaundry.ServiceService
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(services *applaundry.ServiceService) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// Create registers a new laundry service bound to a catalog category
func (h *ServiceHandler) Create(c *gin.Context) {
	var req applaundry.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	service, err := h.services.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, service)
}

// List returns all laundry services
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.services.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, services)
}

// Get returns one service by ID
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	service, err := h.services.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, service)
}

// GetBySlug returns one service by its URL slug
func (h *ServiceHandler) GetBySlug(c *gin.Context) {
	service, err := h.services.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, service)
}

// Update changes a service's presentation fields
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req applaundry.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	service, err := h.services.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, service)
}

// Archive hides a service from all listings
func (h *ServiceHandler) Archive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.services.Archive(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete removes a service and its snapshot rows
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.services.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
