package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docuagent/internal/service"
)

// Services bundles the use-case interfaces the routes need.
type Services interface {
	service.DocumentService
	service.RiskService
	service.StatsService
	service.SettingsService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin; all business logic lives in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	// OpenAPI spec and a static Swagger UI page.
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

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/process-document", ProcessDocument(svc))

	app.Get("/documents", ListDocuments(svc))
	// Registered before /documents/:id so "download" is not captured as an id.
	app.Get("/documents/download/:id", DownloadDocument(svc))
	app.Get("/documents/:id", GetDocument(svc))
	app.Delete("/documents/:id", DeleteDocument(svc))

	app.Get("/risks", ListRisks(svc))
	app.Get("/risks/:id", GetRisk(svc))
	app.Patch("/risks/:id", UpdateRiskStatus(svc))

	app.Get("/stats/dashboard", DashboardStats(svc))

	app.Get("/settings", GetSettings(svc))
	app.Put("/settings", UpdateSettings(svc))
}
