package analytics

import (
	"sort"
	"time"

	"dmsanalytics/internal/model"
)

const (
	// RecentWindow is the trailing interval of the "recent notifications" metric.
	RecentWindow = 7 * 24 * time.Hour
	// TopCreators is the size of the top creator rankings.
	TopCreators = 10
	// RecentActivityRows is the number of notifications listed as recent activity.
	RecentActivityRows = 10
)

// KeyMetrics are the headline numbers of the dashboard and of the PDF report.
type KeyMetrics struct {
	TotalDocuments         int `json:"total_documents"`
	ActiveUsers            int `json:"active_users"`
	PublishedAnnouncements int `json:"published_announcements"`
	RecentNotifications    int `json:"recent_notifications"`
}

// ComputeKeyMetrics derives the key metrics from a snapshot as of now.
func ComputeKeyMetrics(s *model.Snapshot, now time.Time) KeyMetrics {
	return KeyMetrics{
		TotalDocuments:         len(s.Documents),
		ActiveUsers:            CountMatching(s.Users, userStatus, "active"),
		PublishedAnnouncements: CountMatching(s.Announcements, announcementStatus, "published"),
		RecentNotifications:    CountWithin(s.Notifications, notificationCreated, now, RecentWindow),
	}
}

// DocumentSummary holds the chart series of the document view.
type DocumentSummary struct {
	Count       int          `json:"count"`
	Status      Breakdown    `json:"status"`
	Type        Breakdown    `json:"type"`
	TopCreators Breakdown    `json:"top_creators"`
	Timeline    []DailyCount `json:"timeline"`
}

// SummarizeDocuments reduces documents to their breakdowns.
func SummarizeDocuments(rows []model.Document, loc *time.Location) DocumentSummary {
	return DocumentSummary{
		Count:       len(rows),
		Status:      CountBy(rows, documentStatus),
		Type:        CountBy(rows, documentType),
		TopCreators: CountBy(rows, documentCreator).Top(TopCreators),
		Timeline:    Timeline(rows, documentCreated, loc),
	}
}

// UserSummary holds the chart series of the user view.
type UserSummary struct {
	Count      int          `json:"count"`
	Status     Breakdown    `json:"status"`
	Role       Breakdown    `json:"role"`
	Department Breakdown    `json:"department"`
	Timeline   []DailyCount `json:"timeline"`
}

// SummarizeUsers reduces users to their breakdowns.
func SummarizeUsers(rows []model.User, loc *time.Location) UserSummary {
	return UserSummary{
		Count:      len(rows),
		Status:     CountBy(rows, userStatus),
		Role:       CountBy(rows, userRole),
		Department: CountBy(rows, userDepartment),
		Timeline:   Timeline(rows, userCreated, loc),
	}
}

// AnnouncementSummary holds the chart series of the announcement view.
type AnnouncementSummary struct {
	Count       int          `json:"count"`
	Status      Breakdown    `json:"status"`
	Visibility  Breakdown    `json:"visibility"`
	TopCreators Breakdown    `json:"top_creators"`
	Timeline    []DailyCount `json:"timeline"`
}

// SummarizeAnnouncements reduces announcements to their breakdowns.
func SummarizeAnnouncements(rows []model.Announcement, loc *time.Location) AnnouncementSummary {
	return AnnouncementSummary{
		Count:       len(rows),
		Status:      CountBy(rows, announcementStatus),
		Visibility:  CountByFlag(rows, announcementVisibility, LabelVisibleToAll, LabelRestricted),
		TopCreators: CountBy(rows, announcementCreator).Top(TopCreators),
		Timeline:    Timeline(rows, announcementCreated, loc),
	}
}

// NotificationSummary holds the chart series of the system activity view.
type NotificationSummary struct {
	Count    int                  `json:"count"`
	Type     Breakdown            `json:"type"`
	Timeline []DailyCount         `json:"timeline"`
	Recent   []model.Notification `json:"recent"`
}

// SummarizeNotifications reduces notifications to their breakdowns and lists the most
// recent ones first.
func SummarizeNotifications(rows []model.Notification, loc *time.Location) NotificationSummary {
	return NotificationSummary{
		Count:    len(rows),
		Type:     CountBy(rows, notificationType),
		Timeline: Timeline(rows, notificationCreated, loc),
		Recent:   MostRecent(rows, RecentActivityRows),
	}
}

// MostRecent returns up to n notifications ordered newest first. Notifications without a
// timestamp sort last.
func MostRecent(rows []model.Notification, n int) []model.Notification {
	out := make([]model.Notification, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CreatedAt, out[j].CreatedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
