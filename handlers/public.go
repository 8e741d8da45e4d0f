package handlers

import (
	"net/http"

	"laundry-delivery-api/models"
	"laundry-delivery-api/statemachine"

	"github.com/gin-gonic/gin"
)

// Root is the liveness message
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Laundry delivery backend is running"})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// TestDatabase reports store connectivity. It always answers 200.
func (h *Handler) TestDatabase(c *gin.Context) {
	d := h.Gateway.Diagnose(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"backend":           "✅ Running",
		"database":          d.Database,
		"database_url":      setOrNot(h.Config.DatabaseURL),
		"database_name":     setOrNot(h.Config.DatabaseName),
		"connection_status": d.ConnectionStatus,
		"collections":       d.Collections,
	})
}

func setOrNot(v string) string {
	if v != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// GetSchemas lists model and collection names for admin tooling
func GetSchemas(c *gin.Context) {
	c.JSON(http.StatusOK, models.Schemas())
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	mode := "permissive"
	if h.Config.StrictStatusTransitions {
		mode = "forward-only"
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"progression":     statemachine.Progression(),
		"terminal_states": []models.OrderStatus{models.StatusDelivered},
		"mode":            mode,
		"description":     "Laundry Order Lifecycle",
	})
}
