package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"laundry-delivery-api/codec"
	"laundry-delivery-api/config"
	"laundry-delivery-api/middleware"
	"laundry-delivery-api/models"
	"laundry-delivery-api/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// maxErrorLen bounds store error text returned to clients
const maxErrorLen = 120

// Handler carries the dependencies shared by every endpoint
type Handler struct {
	Gateway *store.Gateway
	Config  config.Config
	Log     *slog.Logger
}

func New(gw *store.Gateway, cfg config.Config, log *slog.Logger) *Handler {
	return &Handler{Gateway: gw, Config: cfg, Log: log}
}

// respondError maps gateway errors to HTTP statuses. what names the
// record in not-found messages.
func (h *Handler) respondError(c *gin.Context, what string, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, codec.ErrInvalidIdentifier):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " id"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
	case errors.Is(err, store.ErrStorageUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
	default:
		h.Log.Error("store operation failed",
			"action", "store_error",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error(),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": store.Truncate(err.Error(), maxErrorLen)})
	}
}

// parseLimit reads ?limit=N; absent means the gateway default
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	return n, true
}

// queryFilter builds an equality filter from the given query parameters
func queryFilter(c *gin.Context, keys ...string) store.Filter {
	f := store.Filter{}
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			f[k] = v
		}
	}
	return f
}

// bindError turns a request-binding failure into a ValidationError so the
// client never sees decoder internals
func bindError(err error) error {
	var (
		verr      *models.ValidationError
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		fieldErrs validator.ValidationErrors
	)
	switch {
	case errors.As(err, &verr):
		return verr
	case errors.As(err, &typeErr):
		return &models.ValidationError{Field: typeErr.Field, Rule: "type=" + typeErr.Type.String(), Value: typeErr.Value}
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		return &models.ValidationError{Field: strings.ToLower(fieldErrs[0].Field()), Rule: fieldErrs[0].Tag()}
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return &models.ValidationError{Rule: "malformed JSON body"}
	default:
		return &models.ValidationError{Rule: "invalid request body"}
	}
}

// createRecord binds the JSON body over record (which already holds its
// defaults) and stores it
func (h *Handler) createRecord(c *gin.Context, what string, record models.Record) (string, bool) {
	if err := c.ShouldBindJSON(record); err != nil {
		h.respondError(c, "", bindError(err))
		return "", false
	}
	id, err := h.Gateway.CreateDocument(c.Request.Context(), record.Collection(), record)
	if err != nil {
		h.respondError(c, what, err)
		return "", false
	}
	h.Log.Info(what+" created",
		"action", record.Collection()+"_created",
		"request_id", middleware.GetRequestID(c),
		"id", id,
	)
	return id, true
}

func (h *Handler) listRecords(c *gin.Context, what, collection string, filterKeys ...string) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	docs, err := h.Gateway.GetDocuments(c.Request.Context(), collection, queryFilter(c, filterKeys...), limit)
	if err != nil {
		h.respondError(c, what, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}
