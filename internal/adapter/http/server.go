package http

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/paramveer-prakash/career-sub001/internal/adapter/http/middleware"
	"github.com/paramveer-prakash/career-sub001/internal/usecase"
)

type AppOptions struct {
	Service usecase.ExportService
	// Registry receives the request collectors and backs /metrics. Nil
	// disables both.
	Registry *prometheus.Registry
	// AccessLog defaults to stdout.
	AccessLog io.Writer
	// WriteTimeout must leave room for a full PDF export.
	WriteTimeout time.Duration
}

// NewApp assembles the Fiber application: request id, access log, panic
// recovery, tracing and request metrics, then the routes.
func NewApp(o AppOptions) (*fiber.App, error) {
	if o.AccessLog == nil {
		o.AccessLog = os.Stdout
	}

	app := fiber.New(fiber.Config{
		AppName:               "resume-export",
		ErrorHandler:          ErrorHandler(),
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          o.WriteTimeout,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithWriter(o.AccessLog, time.UTC))
	app.Use(recover.New())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))

	var gatherer prometheus.Gatherer
	if o.Registry != nil {
		prom, err := middleware.NewPrometheusMiddleware(o.Registry)
		if err != nil {
			return nil, err
		}
		app.Use(prom.Handler())
		gatherer = o.Registry
	}

	RegisterRoutes(app, NewHandler(o.Service), gatherer)
	return app, nil
}
