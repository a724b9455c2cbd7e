package api

import (
	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/garrettborunda-lab/movefitrx-poc/errors"
)

func NewServer(handler *Handler, healthCheck *HealthCheck, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Skip request logging for the readiness probe
	skipper := RouteSkipper([]string{"/ready"})
	zapMiddleware := echozap.ZapLogger(logger)
	loggerMiddleware := func(next echo.HandlerFunc) echo.HandlerFunc {
		logged := zapMiddleware(next)
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			return logged(c)
		}
	}

	e.Use(middleware.Recover())
	e.Use(loggerMiddleware)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterHandlers(e, handler)

	return e, nil
}
