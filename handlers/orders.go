package handlers

import (
	"net/http"

	"laundry-delivery-api/middleware"
	"laundry-delivery-api/models"
	"laundry-delivery-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListOrders returns up to ?limit orders, optionally filtered
func (h *Handler) ListOrders(c *gin.Context) {
	h.listRecords(c, "Order", models.CollectionOrder, "status", "customer_id", "driver_id")
}

// CreateOrder stores a new order and answers with its id and status
func (h *Handler) CreateOrder(c *gin.Context) {
	order := models.NewOrder()
	id, ok := h.createRecord(c, "Order", &order)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "status": order.Status})
}

// GetOrder returns a single order
func (h *Handler) GetOrder(c *gin.Context) {
	doc, err := h.Gateway.GetDocument(c.Request.Context(), models.CollectionOrder, c.Param("id"))
	if err != nil {
		h.respondError(c, "Order", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateOrderStatus sets an order's status. Any declared status is
// accepted unless strict transitions are configured, in which case the
// order may only move forward.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	var req models.StatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, "", bindError(err))
		return
	}

	var prevStatus models.OrderStatus
	if h.Config.StrictStatusTransitions {
		current, err := h.Gateway.GetDocument(c.Request.Context(), models.CollectionOrder, orderID)
		if err != nil {
			h.respondError(c, "Order", err)
			return
		}
		if v, ok := current.Get("status"); ok {
			prevStatus = models.OrderStatus(asString(v))
		}
		// documents written before the status field existed, or by hand
		if !prevStatus.IsValid() {
			prevStatus = models.StatusPending
		}
		if err := models.ValidateEnum("status", req.Status); err != nil {
			h.respondError(c, "Order", err)
			return
		}
		if err := statemachine.CheckTransition(prevStatus, req.Status); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":             "Invalid state transition",
				"current_status":    prevStatus,
				"requested":         req.Status,
				"reason":            err.Error(),
				"valid_next_states": statemachine.ValidTransitionsFrom(prevStatus),
			})
			return
		}
	}

	doc, err := h.Gateway.UpdateStatus(c.Request.Context(), models.CollectionOrder, orderID, req.Status)
	if err != nil {
		h.respondError(c, "Order", err)
		return
	}
	h.Log.Info("order status updated",
		"action", "order_status_updated",
		"request_id", middleware.GetRequestID(c),
		"order_id", orderID,
		"status", req.Status.String(),
	)
	c.JSON(http.StatusOK, doc)
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
