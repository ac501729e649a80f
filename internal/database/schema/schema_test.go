package schema

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("all tables present", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		for _, table := range RequiredTables {
			mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM information_schema.tables").
				WithArgs(table).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		}

		missing, err := Verify(ctx, db, "mysql", slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))

		assert.NoError(t, err)
		assert.Empty(t, missing)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing tables are reported and logged", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		for _, table := range RequiredTables {
			n := 1
			if table == "announcements" {
				n = 0
			}
			mock.ExpectQuery("current_schema\\(\\)").
				WithArgs(table).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(n))
		}

		var logs bytes.Buffer
		missing, err := Verify(ctx, db, "postgres", slog.New(slog.NewJSONHandler(&logs, nil)))

		assert.NoError(t, err)
		assert.Equal(t, []string{"announcements"}, missing)
		assert.Contains(t, logs.String(), "schema_table_missing")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("catalog error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("information_schema").
			WithArgs(RequiredTables[0]).
			WillReturnError(errors.New("access denied"))

		missing, err := Verify(ctx, db, "mysql", slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
		assert.Nil(t, missing)
	})
}
