package middleware

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/logger"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/observability"
)

const headerRequestID = "X-Request-ID"

// RequestID assigns every request an ID (honoring an inbound X-Request-ID),
// echoes it on the response, and stores it in the request context so
// logger.InfoCtx and friends pick it up.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(headerRequestID)
			if id == "" {
				id = uuid.New().String()
			}
			c.Response().Header().Set(headerRequestID, id)

			ctx := context.WithValue(c.Request().Context(), logger.RequestIDKey, id)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequestLogger writes one access-log line per request and records the
// request metrics.
func RequestLogger(zl *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			status := c.Response().Status
			requestID, _ := c.Request().Context().Value(logger.RequestIDKey).(string)

			zl.LogHTTPRequest(
				c.Request().Method,
				c.Path(),
				c.RealIP(),
				requestID,
				status,
				latency,
				err,
			)
			observability.ObserveHTTPRequest(c.Request().Method, c.Path(), status, latency)

			return nil
		}
	}
}

// Recovery converts panics into 500 responses instead of crashing the worker.
func Recovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered",
						logger.Any("panic", r),
						logger.String("path", c.Path()),
						logger.String("stack", string(debug.Stack())))
					err = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
				}
			}()
			return next(c)
		}
	}
}
