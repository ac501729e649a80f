package mocks

import (
	"context"

	"dmsanalytics/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockSnapshotLoader struct {
	mock.Mock
}

func (m *MockSnapshotLoader) Load(ctx context.Context) *model.Snapshot {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.Snapshot)
}
