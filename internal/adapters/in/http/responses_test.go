package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ckms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeErrorHandler(t *testing.T, err error) (int, Envelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(slog.New(slog.DiscardHandler))
	handler(err, c)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec.Code, envelope
}

func TestHTTPErrorHandler_MapsTypedErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"NotFound", errs.NewObjectNotFoundError("orderId", 42), http.StatusNotFound},
		{"AccessDenied", errs.NewAccessDeniedError("order belongs to another store"), http.StatusForbidden},
		{"Conflict", errs.NewConflictError("sku", "FLOUR-01"), http.StatusConflict},
		{"Invalid", errs.NewValueIsInvalidError("status is invalid"), http.StatusBadRequest},
		{"Required", errs.NewValueIsRequiredError("storeId"), http.StatusBadRequest},
		{"OutOfRange", errs.NewValueIsOutOfRangeError("quantity", 12, 1, 10), http.StatusBadRequest},
		{"EchoHTTPError", echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token"), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := executeErrorHandler(t, tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, envelope.Success)
			assert.NotEmpty(t, envelope.Message)
		})
	}
}

func TestHTTPErrorHandler_HidesInternalDetail(t *testing.T) {
	status, envelope := executeErrorHandler(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.False(t, envelope.Success)
	assert.Equal(t, "internal server error", envelope.Message)
	assert.NotContains(t, envelope.Message, "connection refused")
}

func TestPathID(t *testing.T) {
	e := echo.New()

	newContext := func(value string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(value)
		return c
	}

	id, err := pathID(newContext("42"), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = pathID(newContext("abc"), "id")
	require.Error(t, err)

	_, err = pathID(newContext("-1"), "id")
	require.Error(t, err)
}
