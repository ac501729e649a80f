package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dmsanalytics/docs"
	"dmsanalytics/internal/http/middleware"
)

// RegisterRoutes attaches every HTTP route to app. Analytics routes live under /api/v1
// and are scoped to the caller's session.
func RegisterRoutes(app *fiber.App, db *sql.DB, gatherer prometheus.Gatherer, d Deps) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	app.Get("/swagger/*", SwaggerUI())

	api := app.Group("/api/v1", middleware.Session())

	api.Get("/documents", ListDocuments(d))
	api.Get("/users", ListUsers(d))
	api.Get("/announcements", ListAnnouncements(d))
	api.Get("/notifications", ListNotifications(d))

	registerView(api, d, documentsView)
	registerView(api, d, usersView)
	registerView(api, d, announcementsView)
	registerView(api, d, notificationsView)

	api.Get("/metrics/key", KeyMetrics(d))
	api.Get("/status", Status(d))
	api.Post("/refresh", Refresh(d))
	api.Get("/report.pdf", DownloadReport(d))
	api.Post("/reports", ArchiveReport(d))
}

// registerView adds the options, summary and CSV export routes of one entity.
func registerView[T any, C criteria](r fiber.Router, d Deps, v view[T, C]) {
	base := "/" + string(v.entity)
	r.Get(base+"/options", filterOptions(d, v))
	r.Get(base+"/summary", summarize(d, v))
	r.Get(base+"/export.csv", exportCSV(d, v))
}

// SwaggerUI serves the API docs. The doc info is set once here; an empty host and scheme
// list make the UI call the API on whatever origin it was loaded from.
func SwaggerUI() fiber.Handler {
	docs.SwaggerInfo.Host = ""
	docs.SwaggerInfo.Schemes = []string{}
	return swagger.HandlerDefault
}
