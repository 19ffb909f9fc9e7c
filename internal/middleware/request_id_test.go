package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := RequestID(func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	assert.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_KeepsClientProvidedID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	assert.Equal(t, "client-id-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "client-id-123", GetRequestID(c))
}
