package handlers

import (
	"net/http"

	"laundry-delivery-api/middleware"
	"laundry-delivery-api/models"

	"github.com/gin-gonic/gin"
)

// ── Users ────────────────────────────────────────────────────────────────────

func (h *Handler) CreateUser(c *gin.Context) {
	user := models.NewUser()
	id, ok := h.createRecord(c, "User", &user)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "role": user.Role})
}

func (h *Handler) ListUsers(c *gin.Context) {
	h.listRecords(c, "User", models.CollectionUser, "role", "phone")
}

// ── Drivers ──────────────────────────────────────────────────────────────────

func (h *Handler) CreateDriver(c *gin.Context) {
	driver := models.NewDriver()
	id, ok := h.createRecord(c, "Driver", &driver)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "is_available": driver.IsAvailable})
}

func (h *Handler) ListDrivers(c *gin.Context) {
	h.listRecords(c, "Driver", models.CollectionDriver, "user_id")
}

// ── Payments ─────────────────────────────────────────────────────────────────

func (h *Handler) CreatePayment(c *gin.Context) {
	payment := models.NewPayment()
	id, ok := h.createRecord(c, "Payment", &payment)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "status": payment.Status})
}

func (h *Handler) ListPayments(c *gin.Context) {
	h.listRecords(c, "Payment", models.CollectionPayment, "order_id", "status")
}

// UpdatePaymentStatus records the outcome of a payment
func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	paymentID := c.Param("id")
	var req models.PaymentStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, "", bindError(err))
		return
	}
	doc, err := h.Gateway.UpdateStatus(c.Request.Context(), models.CollectionPayment, paymentID, req.Status)
	if err != nil {
		h.respondError(c, "Payment", err)
		return
	}
	h.Log.Info("payment status updated",
		"action", "payment_status_updated",
		"request_id", middleware.GetRequestID(c),
		"payment_id", paymentID,
		"status", req.Status.String(),
	)
	c.JSON(http.StatusOK, doc)
}
