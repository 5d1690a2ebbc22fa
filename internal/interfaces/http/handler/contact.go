package handler

import (
	applaundry "github.com/feedygotech/laundry-backend/internal/application/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact query endpoints
type ContactHandler struct {
	BaseHandler
	contacts *applaundry.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contacts *applaundry.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Create accepts a contact query from the public site
func (h *ContactHandler) Create(c *gin.Context) {
	var req applaundry.CreateContactQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	query, err := h.contacts.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, query)
}

// List returns contact queries matching the filter
func (h *ContactHandler) List(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if priority := c.Query("priority"); priority != "" {
		filter.Filters["priority"] = priority
	}
	page, err := h.contacts.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns one contact query
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	query, err := h.contacts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, query)
}

// Assign takes the query for the authenticated operator
func (h *ContactHandler) Assign(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	operator := middleware.GetOperatorUsername(c)
	query, err := h.contacts.Assign(c.Request.Context(), id, operator)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, query)
}

// SetPriorityRequest is the payload for changing a query's priority
type SetPriorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=low normal high"`
}

// SetPriority changes the query's triage priority
func (h *ContactHandler) SetPriority(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SetPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	query, err := h.contacts.SetPriority(c.Request.Context(), id, laundry.QueryPriority(req.Priority))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, query)
}

// ResolveRequest is the payload for resolving a query
type ResolveRequest struct {
	Response string `json:"response" binding:"required"`
}

// Resolve records the operator's answer and mails it to the customer
func (h *ContactHandler) Resolve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	query, err := h.contacts.Resolve(c.Request.Context(), id, req.Response)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, query)
}

// Close closes a query without a response
func (h *ContactHandler) Close(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	query, err := h.contacts.Close(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, query)
}
