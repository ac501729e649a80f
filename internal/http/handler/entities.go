package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"dmsanalytics/internal/analytics"
	"dmsanalytics/internal/export"
	"dmsanalytics/internal/model"
)

type criteria interface {
	Active() bool
}

// view binds one entity of the snapshot to its filter, summary, options and CSV layout.
type view[T any, C criteria] struct {
	entity  model.Entity
	rows    func(*model.Snapshot) []T
	parse   func(*fiber.Ctx) (C, error)
	filter  func([]T, C, *time.Location) []T
	summary func([]T, *time.Location) any
	options func(*model.Snapshot, *time.Location) any
	table   export.Table[T]
}

var documentsView = view[model.Document, analytics.DocumentCriteria]{
	entity: model.EntityDocuments,
	rows:   func(s *model.Snapshot) []model.Document { return s.Documents },
	parse:  documentCriteria,
	filter: analytics.FilterDocuments,
	summary: func(rows []model.Document, loc *time.Location) any {
		return analytics.SummarizeDocuments(rows, loc)
	},
	options: func(s *model.Snapshot, loc *time.Location) any {
		return analytics.DocumentFilterOptions(s.Documents, s.DocumentTypes, loc)
	},
	table: export.DocumentTable,
}

var usersView = view[model.User, analytics.UserCriteria]{
	entity: model.EntityUsers,
	rows:   func(s *model.Snapshot) []model.User { return s.Users },
	parse:  userCriteria,
	filter: analytics.FilterUsers,
	summary: func(rows []model.User, loc *time.Location) any {
		return analytics.SummarizeUsers(rows, loc)
	},
	options: func(s *model.Snapshot, loc *time.Location) any {
		return analytics.UserFilterOptions(s.Users, loc)
	},
	table: export.UserTable,
}

var announcementsView = view[model.Announcement, analytics.AnnouncementCriteria]{
	entity: model.EntityAnnouncements,
	rows:   func(s *model.Snapshot) []model.Announcement { return s.Announcements },
	parse:  announcementCriteria,
	filter: analytics.FilterAnnouncements,
	summary: func(rows []model.Announcement, loc *time.Location) any {
		return analytics.SummarizeAnnouncements(rows, loc)
	},
	options: func(s *model.Snapshot, loc *time.Location) any {
		return analytics.AnnouncementFilterOptions(s.Announcements, loc)
	},
	table: export.AnnouncementTable,
}

var notificationsView = view[model.Notification, analytics.NotificationCriteria]{
	entity: model.EntityNotifications,
	rows:   func(s *model.Snapshot) []model.Notification { return s.Notifications },
	parse:  notificationCriteria,
	filter: analytics.FilterNotifications,
	summary: func(rows []model.Notification, loc *time.Location) any {
		return analytics.SummarizeNotifications(rows, loc)
	},
	options: func(s *model.Snapshot, loc *time.Location) any {
		return analytics.NotificationFilterOptions(s.Notifications, loc)
	},
	table: export.NotificationTable,
}
