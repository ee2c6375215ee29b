package handler

import (
	"github.com/gofiber/fiber/v2"

	"loganalyzer/internal/model"
	"loganalyzer/internal/service"
)

// uploadResponse is the success body for POST /upload.
type uploadResponse struct {
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"Size_in_Bytes"`
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of admission logic; the ingest service decides.
func RegisterRoutes(app *fiber.App, ingestSvc service.IngestService) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/", HealthCheck())
	app.Get("/healthz", LivenessProbe())
	app.Post("/upload", UploadLog(ingestSvc))
}

// HealthCheck reports that the API is up.
//
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "online",
			"message": "Log Analyzer API is running.",
		})
	}
}

// LivenessProbe is a bare liveness endpoint for orchestrators.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// UploadLog accepts one multipart file (field name: file), runs it through
// the ingest service, and translates the admission result into HTTP.
//
// @Summary Upload a log file
// @Accept mpfd
// @Produce json
// @Param file formData file true "log file (.txt, .log, .logfile, .data; max 20MB)"
// @Success 201 {object} uploadResponse
// @Failure 400 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Router /upload [post]
func UploadLog(ingestSvc service.IngestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}

		// The transport length hint covers the whole request body, so it is
		// only a fast-reject input; the service probes the real size.
		declared := int64(-1)
		if cl := c.Request().Header.ContentLength(); cl > 0 {
			declared = int64(cl)
		}

		// The service owns f from here and closes it on every path.
		res, err := ingestSvc.Admit(c.UserContext(), model.UploadRequest{
			Filename:     fh.Filename,
			DeclaredSize: declared,
			Body:         f,
		})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if !res.Admitted {
			return writeError(c, rejectionStatus(res.Rejection), string(res.Rejection), res.Detail)
		}

		return c.Status(fiber.StatusCreated).JSON(uploadResponse{
			Filename:  res.Filename,
			SizeBytes: res.SizeBytes,
		})
	}
}

// rejectionStatus maps an admission rejection to its HTTP status code.
func rejectionStatus(kind model.RejectionKind) int {
	switch kind {
	case model.RejectionDeclaredTooLarge, model.RejectionActualTooLarge:
		return fiber.StatusRequestEntityTooLarge
	default:
		return fiber.StatusBadRequest
	}
}
