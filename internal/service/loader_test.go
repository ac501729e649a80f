package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dmsanalytics/internal/model"
	repoMocks "dmsanalytics/internal/repository/mocks"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	return m
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()
	loadedAt := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	t.Run("all tables", func(t *testing.T) {
		repo := new(repoMocks.MockDashboardRepository)
		repo.On("Documents", mock.Anything).Return([]model.Document{{ID: 1}, {ID: 2}}, nil)
		repo.On("Users", mock.Anything).Return([]model.User{{ID: 1}}, nil)
		repo.On("Announcements", mock.Anything).Return([]model.Announcement{}, nil)
		repo.On("Notifications", mock.Anything).Return([]model.Notification{{ID: 9}}, nil)
		repo.On("DocumentTypes", mock.Anything).Return([]model.DocumentType{{ID: 1, Name: "Memo"}}, nil)

		m := newTestMetrics(t)
		l := NewLoader(repo, slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)), m)
		l.now = func() time.Time { return loadedAt }

		s := l.Load(ctx)

		require.NotNil(t, s)
		assert.Len(t, s.Documents, 2)
		assert.Len(t, s.Users, 1)
		assert.Empty(t, s.Announcements)
		assert.Len(t, s.Notifications, 1)
		assert.Len(t, s.DocumentTypes, 1)
		assert.Empty(t, s.Warnings)
		assert.Equal(t, loadedAt, s.LoadedAt)
		assert.Equal(t, float64(1), testutil.ToFloat64(m.snapshotLoads.WithLabelValues("documents", "ok")))
		repo.AssertExpectations(t)
	})

	t.Run("failed table becomes empty with warning", func(t *testing.T) {
		repo := new(repoMocks.MockDashboardRepository)
		repo.On("Documents", mock.Anything).Return(nil, errors.New("table dms_documents doesn't exist"))
		repo.On("Users", mock.Anything).Return([]model.User{{ID: 1}}, nil)
		repo.On("Announcements", mock.Anything).Return(nil, nil)
		repo.On("Notifications", mock.Anything).Return(nil, errors.New("timeout"))
		repo.On("DocumentTypes", mock.Anything).Return([]model.DocumentType{}, nil)

		var logs bytes.Buffer
		m := newTestMetrics(t)
		l := NewLoader(repo, slog.New(slog.NewJSONHandler(&logs, nil)), m)

		s := l.Load(ctx)

		require.NotNil(t, s)
		assert.NotNil(t, s.Documents)
		assert.Empty(t, s.Documents)
		assert.Len(t, s.Users, 1)
		assert.NotNil(t, s.Announcements)
		assert.NotNil(t, s.Notifications)
		assert.Equal(t, []string{"documents: unavailable", "notifications: unavailable"}, s.Warnings)

		assert.Contains(t, logs.String(), `"event":"table_load_failed"`)
		assert.Contains(t, logs.String(), `"entity":"documents"`)
		assert.Equal(t, float64(1), testutil.ToFloat64(m.snapshotLoads.WithLabelValues("documents", "error")))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.snapshotLoads.WithLabelValues("users", "ok")))
		repo.AssertExpectations(t)
	})
}
