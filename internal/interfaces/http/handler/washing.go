package handler

import (
	applaundry "github.com/feedygotech/laundry-backend/internal/application/laundry"
	"github.com/gin-gonic/gin"
)

// WashingHandler handles washing type and work tracking endpoints
type WashingHandler struct {
	BaseHandler
	washingTypes *applaundry.WashingTypeService
	orders       *applaundry.OrderService
}

// NewWashingHandler creates a new WashingHandler
func NewWashingHandler(washingTypes *applaundry.WashingTypeService, orders *applaundry.OrderService) *WashingHandler {
	return &WashingHandler{
		washingTypes: washingTypes,
		orders:       orders,
	}
}

// CreateType registers a washing type with its service charge
func (h *WashingHandler) CreateType(c *gin.Context) {
	var req applaundry.WashingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	wt, err := h.washingTypes.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, wt)
}

// ListTypes returns all washing types
func (h *WashingHandler) ListTypes(c *gin.Context) {
	types, err := h.washingTypes.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, types)
}

// DeleteType removes a washing type
func (h *WashingHandler) DeleteType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.washingTypes.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// StartWork moves a work record into the in-progress state
func (h *WashingHandler) StartWork(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	work, err := h.orders.StartWork(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, work)
}

// CompleteWork finishes a work record
func (h *WashingHandler) CompleteWork(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	work, err := h.orders.CompleteWork(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, work)
}
