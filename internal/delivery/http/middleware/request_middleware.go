package middleware

import (
	"log/slog"

	deliverycontext "ladle/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestContext stamps every request with an id and a request-scoped
// logger, both reachable from the usecases through the request context.
func RequestContext(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			requestLogger := logger.With(slog.String("requestID", requestID))

			ctx := c.Request().Context()
			ctx = deliverycontext.WithRequestID(ctx, requestID)
			ctx = deliverycontext.WithLogger(ctx, requestLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			return next(c)
		}
	}
}
