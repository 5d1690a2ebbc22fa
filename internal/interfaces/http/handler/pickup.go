package handler

import (
	"context"

	applaundry "github.com/feedygotech/laundry-backend/internal/application/laundry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PickupHandler handles pickup request endpoints
type PickupHandler struct {
	BaseHandler
	pickups *applaundry.PickupService
}

// NewPickupHandler creates a new PickupHandler
func NewPickupHandler(pickups *applaundry.PickupService) *PickupHandler {
	return &PickupHandler{pickups: pickups}
}

// Create accepts a pickup request from the public site
func (h *PickupHandler) Create(c *gin.Context) {
	var req applaundry.CreatePickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	request, err := h.pickups.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, request)
}

// List returns pickup requests matching the filter
func (h *PickupHandler) List(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	page, err := h.pickups.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns one pickup request
func (h *PickupHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	request, err := h.pickups.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// MarkContacted records that the customer has been called
func (h *PickupHandler) MarkContacted(c *gin.Context) {
	h.update(c, h.pickups.MarkContacted)
}

// Complete closes a pickup request after the pickup happened
func (h *PickupHandler) Complete(c *gin.Context) {
	h.update(c, h.pickups.Complete)
}

// Cancel aborts a pickup request
func (h *PickupHandler) Cancel(c *gin.Context) {
	h.update(c, h.pickups.Cancel)
}

func (h *PickupHandler) update(c *gin.Context, op func(context.Context, uuid.UUID) (*applaundry.PickupResponse, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	request, err := op(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}
