package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"dmsanalytics/internal/model"
	"dmsanalytics/internal/repository"
)

// SnapshotLoader produces a fresh snapshot of the dashboard tables.
type SnapshotLoader interface {
	Load(ctx context.Context) *model.Snapshot
}

// Loader reads every table through the repository into a Snapshot.
type Loader struct {
	repo    repository.DashboardRepository
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

// NewLoader constructs a Loader.
func NewLoader(repo repository.DashboardRepository, logger *slog.Logger, metrics *Metrics) *Loader {
	return &Loader{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer("dmsanalytics/service"),
		now:     time.Now,
	}
}

// Load runs the table queries one after another. A failing query never fails the load:
// the table is replaced by an empty one and a warning is recorded on the snapshot.
func (l *Loader) Load(ctx context.Context) *model.Snapshot {
	ctx, span := l.tracer.Start(ctx, "snapshot.load")
	defer span.End()

	s := &model.Snapshot{}
	s.Documents = loadTable(ctx, l, s, model.EntityDocuments, l.repo.Documents)
	s.Users = loadTable(ctx, l, s, model.EntityUsers, l.repo.Users)
	s.Announcements = loadTable(ctx, l, s, model.EntityAnnouncements, l.repo.Announcements)
	s.Notifications = loadTable(ctx, l, s, model.EntityNotifications, l.repo.Notifications)
	s.DocumentTypes = loadTable(ctx, l, s, model.EntityDocumentTypes, l.repo.DocumentTypes)
	s.LoadedAt = l.now()

	span.SetAttributes(attribute.Int("snapshot.warnings", len(s.Warnings)))
	l.logger.Info("snapshot loaded",
		slog.String("event", "snapshot_loaded"),
		slog.Int("documents", len(s.Documents)),
		slog.Int("users", len(s.Users)),
		slog.Int("announcements", len(s.Announcements)),
		slog.Int("notifications", len(s.Notifications)),
		slog.Int("warnings", len(s.Warnings)),
	)
	return s
}

func loadTable[T any](ctx context.Context, l *Loader, s *model.Snapshot, entity model.Entity, fetch func(context.Context) ([]T, error)) []T {
	ctx, span := l.tracer.Start(ctx, "snapshot.load."+string(entity))
	defer span.End()

	rows, err := fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		l.metrics.snapshotLoads.WithLabelValues(string(entity), "error").Inc()
		l.logger.WarnContext(ctx, "table unavailable",
			slog.String("event", "table_load_failed"),
			slog.String("entity", string(entity)),
			slog.String("error", err.Error()),
		)
		s.Warnings = append(s.Warnings, fmt.Sprintf("%s: unavailable", entity))
		return []T{}
	}
	if rows == nil {
		rows = []T{}
	}
	span.SetAttributes(attribute.Int("rows", len(rows)))
	l.metrics.snapshotLoads.WithLabelValues(string(entity), "ok").Inc()
	return rows
}
