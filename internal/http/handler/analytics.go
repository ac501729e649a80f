package handler

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"dmsanalytics/internal/analytics"
	"dmsanalytics/internal/export"
	"dmsanalytics/internal/http/middleware"
	"dmsanalytics/internal/model"
	"dmsanalytics/internal/service"
)

// Snapshots resolves the snapshot a session works on.
type Snapshots interface {
	Snapshot(ctx context.Context, sessionID string) *model.Snapshot
	Refresh(ctx context.Context, sessionID string) *model.Snapshot
}

// Reports renders and archives PDF reports.
type Reports interface {
	Build(snap *model.Snapshot) (string, []byte, error)
	Archive(ctx context.Context, snap *model.Snapshot) (*service.ArchivedReport, error)
}

// Deps are the collaborators of the analytics handlers.
type Deps struct {
	Sessions Snapshots
	Reports  Reports
	Metrics  *service.Metrics
	Location *time.Location
	Now      func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func (d Deps) location() *time.Location {
	if d.Location == nil {
		return time.Local
	}
	return d.Location
}

func (d Deps) snapshot(c *fiber.Ctx) *model.Snapshot {
	return d.Sessions.Snapshot(c.UserContext(), middleware.SessionID(c))
}

type listResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
	Total int `json:"total"`
}

type statusResponse struct {
	SessionID string               `json:"session_id"`
	LoadedAt  time.Time            `json:"loaded_at"`
	Counts    map[model.Entity]int `json:"counts"`
	Warnings  []string             `json:"warnings"`
}

func listRows[T any, C criteria](d Deps, v view[T, C]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		crit, err := v.parse(c)
		if err != nil {
			return filterError(c, err)
		}
		all := v.rows(d.snapshot(c))
		rows := v.filter(all, crit, d.location())
		return c.JSON(listResponse[T]{Data: rows, Count: len(rows), Total: len(all)})
	}
}

func summarize[T any, C criteria](d Deps, v view[T, C]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		crit, err := v.parse(c)
		if err != nil {
			return filterError(c, err)
		}
		rows := v.filter(v.rows(d.snapshot(c)), crit, d.location())
		return c.JSON(v.summary(rows, d.location()))
	}
}

func filterOptions[T any, C criteria](d Deps, v view[T, C]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(v.options(d.snapshot(c), d.location()))
	}
}

func exportCSV[T any, C criteria](d Deps, v view[T, C]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		crit, err := v.parse(c)
		if err != nil {
			return filterError(c, err)
		}
		rows := v.filter(v.rows(d.snapshot(c)), crit, d.location())

		var buf bytes.Buffer
		err = export.WriteCSV(&buf, v.table, rows, d.location())
		if d.Metrics != nil {
			d.Metrics.ExportDone("csv", err)
		}
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		name := export.CSVFilename(v.entity, crit.Active(), d.now().In(d.location()))
		c.Attachment(name)
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		return c.Send(buf.Bytes())
	}
}

// ListDocuments godoc
// @Summary  List documents matching the filter
// @Tags     documents
// @Produce  json
// @Param    status  query string false "Document status or All"
// @Param    type    query string false "Document type or All"
// @Param    creator query string false "Creator name or All"
// @Param    from    query string false "Created on or after (YYYY-MM-DD)"
// @Param    to      query string false "Created on or before (YYYY-MM-DD)"
// @Success  200 {object} map[string]any
// @Failure  400 {object} errorPayload
// @Router   /api/v1/documents [get]
func ListDocuments(d Deps) fiber.Handler { return listRows(d, documentsView) }

// ListUsers godoc
// @Summary  List users matching the filter
// @Tags     users
// @Produce  json
// @Param    status     query string false "Account status or All"
// @Param    role       query string false "Role or All"
// @Param    department query string false "Department or All"
// @Param    from       query string false "Created on or after (YYYY-MM-DD)"
// @Param    to         query string false "Created on or before (YYYY-MM-DD)"
// @Success  200 {object} map[string]any
// @Failure  400 {object} errorPayload
// @Router   /api/v1/users [get]
func ListUsers(d Deps) fiber.Handler { return listRows(d, usersView) }

// ListAnnouncements godoc
// @Summary  List announcements matching the filter
// @Tags     announcements
// @Produce  json
// @Param    status     query string false "Announcement status or All"
// @Param    visibility query string false "Visible to All, Restricted or All"
// @Param    creator    query string false "Creator name or All"
// @Param    from       query string false "Created on or after (YYYY-MM-DD)"
// @Param    to         query string false "Created on or before (YYYY-MM-DD)"
// @Success  200 {object} map[string]any
// @Failure  400 {object} errorPayload
// @Router   /api/v1/announcements [get]
func ListAnnouncements(d Deps) fiber.Handler { return listRows(d, announcementsView) }

// ListNotifications godoc
// @Summary  List notifications matching the filter
// @Tags     notifications
// @Produce  json
// @Param    type query string false "Notification type or All"
// @Param    from query string false "Created on or after (YYYY-MM-DD)"
// @Param    to   query string false "Created on or before (YYYY-MM-DD)"
// @Success  200 {object} map[string]any
// @Failure  400 {object} errorPayload
// @Router   /api/v1/notifications [get]
func ListNotifications(d Deps) fiber.Handler { return listRows(d, notificationsView) }

// KeyMetrics godoc
// @Summary  Headline numbers of the session snapshot
// @Tags     reports
// @Produce  json
// @Success  200 {object} analytics.KeyMetrics
// @Router   /api/v1/metrics/key [get]
func KeyMetrics(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(analytics.ComputeKeyMetrics(d.snapshot(c), d.now()))
	}
}

// Status godoc
// @Summary  Snapshot load time, row counts and load warnings
// @Tags     session
// @Produce  json
// @Success  200 {object} statusResponse
// @Router   /api/v1/status [get]
func Status(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(newStatusResponse(c, d.snapshot(c)))
	}
}

// Refresh godoc
// @Summary  Reload the session snapshot from the database
// @Tags     session
// @Produce  json
// @Success  200 {object} statusResponse
// @Router   /api/v1/refresh [post]
func Refresh(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := d.Sessions.Refresh(c.UserContext(), middleware.SessionID(c))
		return c.JSON(newStatusResponse(c, snap))
	}
}

func newStatusResponse(c *fiber.Ctx, s *model.Snapshot) statusResponse {
	warnings := s.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return statusResponse{
		SessionID: middleware.SessionID(c),
		LoadedAt:  s.LoadedAt,
		Counts:    s.Counts(),
		Warnings:  warnings,
	}
}

// DownloadReport godoc
// @Summary  Render the analytics report as PDF
// @Tags     reports
// @Produce  application/pdf
// @Success  200 {file} file
// @Router   /api/v1/report.pdf [get]
func DownloadReport(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, data, err := d.Reports.Build(d.snapshot(c))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Attachment(name)
		c.Set(fiber.HeaderContentType, "application/pdf")
		return c.Send(data)
	}
}

// ArchiveReport godoc
// @Summary  Render the report, store it and return a download link
// @Tags     reports
// @Produce  json
// @Success  201 {object} service.ArchivedReport
// @Failure  503 {object} errorPayload
// @Router   /api/v1/reports [post]
func ArchiveReport(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rep, err := d.Reports.Archive(c.UserContext(), d.snapshot(c))
		if err != nil {
			if errors.Is(err, service.ErrStorageDisabled) {
				return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_DISABLED", "report storage is not configured")
			}
			return writeError(c, fiber.StatusBadGateway, "STORAGE_ERROR", "could not archive report")
		}
		return c.Status(fiber.StatusCreated).JSON(rep)
	}
}
