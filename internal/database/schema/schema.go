// Package schema checks that the document-management tables the dashboard reads from
// are present. The store belongs to another application, so nothing here writes DDL.
package schema

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// RequiredTables lists the tables read by the analytics queries.
var RequiredTables = []string{
	"dms_documents",
	"document_types",
	"document_departments",
	"departments",
	"dms_user",
	"announcements",
	"notifications",
}

const (
	mysqlTableExists = `SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ?`
	postgresTableExists = `SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name = $1`
)

// Verify checks every required table and returns the missing ones. A missing table is
// not an error: its record set will simply load empty. An error is returned only when
// the catalog itself cannot be queried.
func Verify(ctx context.Context, db *sql.DB, driver string, logger *slog.Logger) ([]string, error) {
	start := time.Now()
	logger = logger.With(slog.String("component", "database"))

	q := mysqlTableExists
	if driver == "postgres" {
		q = postgresTableExists
	}

	logger.Info("schema_check", slog.String("event", "schema_check_start"), slog.String("status", "starting"))

	missing := make([]string, 0)
	for _, table := range RequiredTables {
		var n int
		if err := db.QueryRowContext(ctx, q, table).Scan(&n); err != nil {
			logger.Error("schema_check",
				slog.String("event", "schema_check_failed"),
				slog.String("status", "error"),
				slog.String("table", table),
				slog.String("error_message", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
			return nil, fmt.Errorf("check table %s: %w", table, err)
		}
		if n == 0 {
			missing = append(missing, table)
			logger.Warn("schema_check",
				slog.String("event", "schema_table_missing"),
				slog.String("status", "missing"),
				slog.String("table", table),
			)
		}
	}

	logger.Info("schema_check",
		slog.String("event", "schema_check_done"),
		slog.String("status", "success"),
		slog.Int("missing_tables", len(missing)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return missing, nil
}
