package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"laundry-delivery-api/codec"
	"laundry-delivery-api/config"
	"laundry-delivery-api/logger"
	"laundry-delivery-api/models"
	"laundry-delivery-api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	h := New(store.NewGateway(nil), config.Config{}, logger.Discard())
	long := errors.New(strings.Repeat("x", 500))

	tests := []struct {
		err  error
		code int
	}{
		{&models.ValidationError{Field: "total", Rule: "gte=0"}, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", codec.ErrInvalidIdentifier), http.StatusBadRequest},
		{store.ErrNotFound, http.StatusNotFound},
		{store.ErrStorageUnavailable, http.StatusInternalServerError},
		{long, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		h.respondError(c, "Order", tt.err)
		if w.Code != tt.code {
			t.Errorf("%v: status %d, want %d", tt.err, w.Code, tt.code)
		}
		if tt.err == long && w.Body.Len() > maxErrorLen+20 {
			t.Errorf("store error not truncated: %d bytes", w.Body.Len())
		}
	}
}

func TestBindError(t *testing.T) {
	var order models.Order
	tests := []struct {
		name      string
		body      string
		wantField string
		wantRule  string
	}{
		{"wrong type", `{"total":"ten"}`, "total", "type=float64"},
		{"bad datetime", `{"scheduled_at":"tomorrow"}`, "", "iso8601"},
		{"truncated", `{"total":`, "", "malformed JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.body), &order)
			if err == nil {
				t.Fatal("expected a decode error")
			}
			var verr *models.ValidationError
			if !errors.As(bindError(err), &verr) {
				t.Fatalf("bindError(%v) is not a ValidationError", err)
			}
			if verr.Field != tt.wantField || verr.Rule != tt.wantRule {
				t.Fatalf("got field %q rule %q", verr.Field, verr.Rule)
			}
			if strings.Contains(verr.Error(), "2006-01-02") {
				t.Fatalf("parse layout leaked: %s", verr.Error())
			}
		})
	}

	if !strings.Contains(bindError(errors.New("boom")).Error(), "invalid request body") {
		t.Fatal("unknown errors should be masked")
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		query string
		want  int
		ok    bool
	}{
		{"", 0, true},
		{"limit=5", 5, true},
		{"limit=0", 0, false},
		{"limit=-1", 0, false},
		{"limit=abc", 0, false},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/orders?"+tt.query, nil)
		got, ok := parseLimit(c)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%q: got (%d, %v), want (%d, %v)", tt.query, got, ok, tt.want, tt.ok)
		}
	}
}
