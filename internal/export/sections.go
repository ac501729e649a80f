package export

import (
	"fmt"
	"strconv"
	"strings"

	"dmsanalytics/internal/analytics"
	"dmsanalytics/internal/model"
)

// Section is one titled block of free text in the PDF report.
type Section struct {
	Title string
	Body  string
}

// MetricsTable returns the key-metrics table, header row first.
func MetricsTable(m analytics.KeyMetrics) [][]string {
	return [][]string{
		{"Metric", "Value"},
		{"Total Documents", strconv.Itoa(m.TotalDocuments)},
		{"Active Users", strconv.Itoa(m.ActiveUsers)},
		{"Published Announcements", strconv.Itoa(m.PublishedAnnouncements)},
		{"Recent Notifications (7 days)", strconv.Itoa(m.RecentNotifications)},
	}
}

// ReportSections builds the per-entity breakdown sections of the report. An empty table
// produces a "no data available" line instead of breakdowns.
func ReportSections(s *model.Snapshot) []Section {
	return []Section{
		documentSection(s.Documents),
		userSection(s.Users),
		announcementSection(s.Announcements),
		notificationSection(s.Notifications),
	}
}

func documentSection(rows []model.Document) Section {
	sec := Section{Title: "Document Analytics"}
	if len(rows) == 0 {
		sec.Body = "No document data available."
		return sec
	}
	sum := analytics.SummarizeDocuments(rows, nil)
	sec.Body = joinBlocks(
		breakdownBlock("Document Status Distribution:", sum.Status, "documents"),
		breakdownBlock("Document Types Distribution:", sum.Type, "documents"),
	)
	return sec
}

func userSection(rows []model.User) Section {
	sec := Section{Title: "User Analytics"}
	if len(rows) == 0 {
		sec.Body = "No user data available."
		return sec
	}
	sum := analytics.SummarizeUsers(rows, nil)
	sec.Body = joinBlocks(
		breakdownBlock("User Status Distribution:", sum.Status, "users"),
		breakdownBlock("User Role Distribution:", sum.Role, "users"),
	)
	return sec
}

func announcementSection(rows []model.Announcement) Section {
	sec := Section{Title: "Announcement Analytics"}
	if len(rows) == 0 {
		sec.Body = "No announcement data available."
		return sec
	}
	sum := analytics.SummarizeAnnouncements(rows, nil)
	sec.Body = joinBlocks(
		breakdownBlock("Announcement Status Distribution:", sum.Status, "announcements"),
		breakdownBlock("Announcement Visibility:", sum.Visibility, "announcements"),
	)
	return sec
}

func notificationSection(rows []model.Notification) Section {
	sec := Section{Title: "System Activity"}
	if len(rows) == 0 {
		sec.Body = "No notification data available."
		return sec
	}
	sum := analytics.SummarizeNotifications(rows, nil)
	sec.Body = breakdownBlock("Notification Types Distribution:", sum.Type, "notifications")
	return sec
}

func breakdownBlock(heading string, b analytics.Breakdown, noun string) string {
	var sb strings.Builder
	sb.WriteString(heading)
	sb.WriteByte('\n')
	for _, c := range b.Buckets {
		fmt.Fprintf(&sb, "- %s: %d %s\n", c.Label, c.Count, noun)
	}
	return sb.String()
}

func joinBlocks(blocks ...string) string {
	return strings.Join(blocks, "\n")
}
