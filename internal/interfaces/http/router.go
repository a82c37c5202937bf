package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/marzkaterina/Logio-app/internal/application/reporting"
	"github.com/marzkaterina/Logio-app/pkg/metrics"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ReportUC *reporting.ReportUseCase
	Metrics  *metrics.Collector
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.Metrics != nil {
		api.Use(MetricsMiddleware(deps.Metrics))
	}

	catalogHandler := NewCatalogHandler(deps.ReportUC)
	api.Get("/products", catalogHandler.Products)
	api.Get("/plants", catalogHandler.Plants)
	api.Get("/suppliers", catalogHandler.Suppliers)

	reports := api.Group("/reports")
	reportsHandler := NewReportsHandler(deps.ReportUC)
	reports.Get("/production", reportsHandler.Production)
	reports.Get("/transport", reportsHandler.Transport)
}

// MetricsMiddleware records request counts and durations per route.
func MetricsMiddleware(col *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		col.APIRequestsTotal.WithLabelValues(route, c.Method(), strconv.Itoa(status)).Inc()
		col.APIRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}
