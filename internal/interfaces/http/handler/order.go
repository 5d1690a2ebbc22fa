package handler

import (
	applaundry "github.com/feedygotech/laundry-backend/internal/application/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles laundry order endpoints, including POS intake
type OrderHandler struct {
	BaseHandler
	orders *applaundry.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *applaundry.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create creates a draft order at the counter
func (h *OrderHandler) Create(c *gin.Context) {
	var req applaundry.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	order, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// PosIntake accepts a closed POS session and creates a confirmed
// order. Replays of the same POS reference return the existing order.
func (h *OrderHandler) PosIntake(c *gin.Context) {
	var req applaundry.PosIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	order, err := h.orders.CreateFromPOS(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// List returns orders matching the filter
func (h *OrderHandler) List(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	page, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns one order with its lines
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Confirm moves a draft order to the confirmed state and creates one
// washing work record per line
func (h *OrderHandler) Confirm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.orders.Confirm(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// TransitionRequest is the payload for moving an order along its
// lifecycle
type TransitionRequest struct {
	Status string `json:"status" binding:"required,oneof=process done delivery cancelled"`
}

// Transition moves the order to the requested status
func (h *OrderHandler) Transition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	order, err := h.orders.Transition(c.Request.Context(), id, laundry.OrderStatus(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// ListWorks returns the washing work records of an order
func (h *OrderHandler) ListWorks(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	works, err := h.orders.ListWorks(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, works)
}
