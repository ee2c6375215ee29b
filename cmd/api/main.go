package main

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"loganalyzer/docs"
	"loganalyzer/internal/config"
	handlers "loganalyzer/internal/http/handler"
	"loganalyzer/internal/http/middleware"
	"loganalyzer/internal/model"
	otelsetup "loganalyzer/internal/otel"
	"loganalyzer/internal/service"
)

// @title Log Analyzer API
// @version 0.1.0
// @description An API to upload and parse log files to extract errors and warnings
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Initialize tracing (OTLP; degrades to noop when no collector is reachable)
	shutdownTracing, err := otelsetup.Init(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	// Metrics registry shared by the HTTP middleware and the ingest service
	reg := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register http metrics: %v", err)
	}
	ingestMetrics, err := service.NewIngestMetrics(reg)
	if err != nil {
		log.Fatalf("failed to register ingest metrics: %v", err)
	}

	// The ingestion gate runs with the fixed admission policy. No line
	// classifier is wired yet; admitted bodies are measured, not parsed.
	ingestSvc := service.NewIngestService(model.DefaultAdmissionPolicy(), nil, ingestMetrics)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Above the admission ceiling so the gate, not the framework,
		// produces the typed 413.
		BodyLimit: cfg.Server.BodyLimitMB * 1024 * 1024,
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(promMW.Handler())

	// Register HTTP routes with the injected service
	handlers.RegisterRoutes(app, ingestSvc)

	// Prometheus scrape endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
