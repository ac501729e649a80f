package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"dmsanalytics/internal/export"
	"dmsanalytics/internal/model"
	"dmsanalytics/internal/storage"
)

// ErrStorageDisabled is returned by Archive when no object storage is configured.
var ErrStorageDisabled = errors.New("report storage is not configured")

// ArchivedReport is a PDF report stored in object storage.
type ArchivedReport struct {
	Filename  string    `json:"filename"`
	Key       string    `json:"-"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ReportService renders PDF reports and optionally archives them.
type ReportService struct {
	store    storage.Storage
	renderer export.PDFReport
	linkTTL  time.Duration
	metrics  *Metrics
	now      func() time.Time
}

// NewReportService constructs a ReportService. store may be nil, in which case reports
// can be rendered but not archived.
func NewReportService(store storage.Storage, renderer export.PDFReport, linkTTL time.Duration, metrics *Metrics) *ReportService {
	return &ReportService{
		store:    store,
		renderer: renderer,
		linkTTL:  linkTTL,
		metrics:  metrics,
		now:      time.Now,
	}
}

// ArchiveEnabled reports whether Archive can store reports.
func (r *ReportService) ArchiveEnabled() bool {
	return r.store != nil
}

// Build renders the report for snap and returns its download filename and content.
func (r *ReportService) Build(snap *model.Snapshot) (string, []byte, error) {
	now := r.now()
	var buf bytes.Buffer
	err := r.renderer.Render(&buf, snap, now)
	r.metrics.ExportDone("pdf", err)
	if err != nil {
		return "", nil, err
	}
	return export.ReportFilename(now), buf.Bytes(), nil
}

// Archive renders the report, uploads it under reports/ and returns a presigned link.
func (r *ReportService) Archive(ctx context.Context, snap *model.Snapshot) (*ArchivedReport, error) {
	if r.store == nil {
		return nil, ErrStorageDisabled
	}

	filename, data, err := r.Build(snap)
	if err != nil {
		return nil, err
	}

	key := path.Join("reports", uuid.New().String(), filename)
	if _, err := r.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: "application/pdf",
		Metadata: map[string]string{
			"report-filename": filename,
			"snapshot-loaded": snap.LoadedAt.UTC().Format(time.RFC3339),
		},
	}); err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}

	url, err := r.store.PresignGet(ctx, key, r.linkTTL)
	if err != nil {
		// An unreachable report is useless; remove it.
		if delErr := r.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("presign report: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign report: %w", err)
	}

	return &ArchivedReport{
		Filename:  filename,
		Key:       key,
		URL:       url,
		ExpiresAt: r.now().Add(r.linkTTL).UTC(),
	}, nil
}
