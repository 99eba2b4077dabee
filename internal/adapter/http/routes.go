package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// RegisterRoutes mounts the template endpoints plus /healthz and /metrics.
func RegisterRoutes(app *fiber.App, h *Handler, gatherer prometheus.Gatherer) {
	app.Get("/healthz", Liveness)

	if gatherer != nil {
		metrics := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
		app.Get("/metrics", func(c *fiber.Ctx) error {
			metrics(c.Context())
			return nil
		})
	}

	templates := app.Group("/templates")
	templates.Get("/", h.ListTemplates)
	templates.Get("/:key/thumbnail", h.Thumbnail)
	templates.Get("/:key/render/:resumeId/html", h.RenderHTML)
	templates.Get("/:key/render/:resumeId/pdf", h.RenderPDF)
}
