package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the header the id is read from and echoed back on.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the echo context key the id is stored under.
	RequestIDKey = "request_id"
)

// RequestID tags each request with a unique id. A client-provided
// X-Request-ID is kept; otherwise a new UUID is generated.
func RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Response().Header().Set(RequestIDHeader, requestID)

		return next(c)
	}
}

// GetRequestID retrieves the request id set by RequestID, or "".
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
