package repository

import (
	"context"

	"dmsanalytics/internal/model"
)

// DashboardRepository reads the record sets of the document-management store.
// All methods are read-only; implementations hold no business logic.
type DashboardRepository interface {
	// Documents returns every document with its type label and joined department names.
	Documents(ctx context.Context) ([]model.Document, error)

	// Users returns every account with its department label.
	Users(ctx context.Context) ([]model.User, error)

	// Announcements returns every announcement.
	Announcements(ctx context.Context) ([]model.Announcement, error)

	// Notifications returns every notification.
	Notifications(ctx context.Context) ([]model.Notification, error)

	// DocumentTypes returns the document type lookup ordered by name.
	DocumentTypes(ctx context.Context) ([]model.DocumentType, error)
}
