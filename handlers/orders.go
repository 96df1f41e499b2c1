package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurant-orders-api/ledger"
	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"
)

// OrderHandler exposes the order ledger over HTTP.
type OrderHandler struct {
	Ledger *ledger.Ledger
}

func NewOrderHandler(l *ledger.Ledger) *OrderHandler {
	return &OrderHandler{Ledger: l}
}

// List handles GET /api/orders?status=&limit=&offset=
func (h *OrderHandler) List(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	page, total := h.Ledger.List(status, limit, offset)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    page,
		"count":   len(page),
		"total":   total,
	})
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var input ledger.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	order, err := h.Ledger.Create(input)
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Validation error",
				"details": verr.Details,
			})
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create order", err.Error())
		return
	}

	respondMessage(c, http.StatusCreated, order, "Order created successfully")
}

// Get handles GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := h.Ledger.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Order not found", "")
		return
	}
	respondData(c, http.StatusOK, order)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateStatus handles PUT /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	order, err := h.Ledger.UpdateStatus(id, req.Status)
	switch {
	case errors.Is(err, ledger.ErrInvalidStatus):
		respondError(c, http.StatusBadRequest, "Invalid status",
			"Status must be one of: "+statusList())
		return
	case errors.Is(err, ledger.ErrOrderNotFound):
		respondError(c, http.StatusNotFound, "Order not found", "")
		return
	case err != nil:
		respondError(c, http.StatusInternalServerError, "Failed to update order status", err.Error())
		return
	}

	respondMessage(c, http.StatusOK, order, "Order status updated successfully")
}

// Cancel handles DELETE /api/orders/:id. This is a status transition,
// not a deletion; the order stays on the ledger.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.Ledger.Cancel(id)
	switch {
	case errors.Is(err, ledger.ErrOrderNotFound):
		respondError(c, http.StatusNotFound, "Order not found", "")
		return
	case errors.Is(err, ledger.ErrNotCancellable):
		respondError(c, http.StatusBadRequest, "Cannot cancel order",
			"Only pending or confirmed orders can be cancelled")
		return
	case err != nil:
		respondError(c, http.StatusInternalServerError, "Failed to cancel order", err.Error())
		return
	}

	respondMessage(c, http.StatusOK, order, "Order cancelled successfully")
}

// Stats handles GET /api/orders/stats
func (h *OrderHandler) Stats(c *gin.Context) {
	respondData(c, http.StatusOK, h.Ledger.Stats())
}

// Flow handles GET /api/orders/flow, the nominal lifecycle, for docs.
func (h *OrderHandler) Flow(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"statuses":    models.AllStatuses,
			"flow":        statemachine.Describe(),
			"cancellable": []models.OrderStatus{models.StatusPending, models.StatusConfirmed},
		},
	})
}

func orderID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Order not found", "")
		return 0, false
	}
	return id, true
}

func statusList() string {
	names := make([]string, len(models.AllStatuses))
	for i, s := range models.AllStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
