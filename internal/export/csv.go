// Package export renders snapshot tables as CSV files and the analytics report as PDF.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"dmsanalytics/internal/model"
)

// TimestampLayout is how timestamps are written in exported files.
const TimestampLayout = "2006-01-02 15:04:05"

// Table describes how rows of T become CSV records.
type Table[T any] struct {
	Header []string
	Record func(row T, loc *time.Location) []string
}

// WriteCSV writes the header and one record per row. Rows are written in input order;
// NULL values become empty fields.
func WriteCSV[T any](w io.Writer, t Table[T], rows []T, loc *time.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(t.Record(row, loc)); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFilename names an export of entity taken on now. Filtered views get a
// "filtered_" prefix.
func CSVFilename(entity model.Entity, filtered bool, now time.Time) string {
	name := fmt.Sprintf("%s_%s.csv", entity, now.Format("20060102"))
	if filtered {
		return "filtered_" + name
	}
	return name
}

// DocumentTable exports documents with the columns of the document query.
var DocumentTable = Table[model.Document]{
	Header: []string{
		"doc_id", "title", "reference", "status", "visible_to_all", "created_at",
		"updated_at", "created_by_name", "deleted", "doc_type", "departments",
	},
	Record: func(d model.Document, loc *time.Location) []string {
		return []string{
			strconv.FormatInt(d.ID, 10),
			d.Title,
			str(d.Reference),
			str(d.Status),
			flag(d.VisibleToAll),
			ts(d.CreatedAt, loc),
			ts(d.UpdatedAt, loc),
			str(d.CreatedByName),
			flag(&d.Deleted),
			str(d.DocType),
			str(d.Departments),
		}
	},
}

// UserTable exports users with the columns of the user query.
var UserTable = Table[model.User]{
	Header: []string{
		"user_id", "Username", "firstname", "lastname", "user_email", "role",
		"status", "created_at", "updated_at", "department",
	},
	Record: func(u model.User, loc *time.Location) []string {
		return []string{
			strconv.FormatInt(u.ID, 10),
			u.Username,
			str(u.FirstName),
			str(u.LastName),
			str(u.Email),
			str(u.Role),
			str(u.Status),
			ts(u.CreatedAt, loc),
			ts(u.UpdatedAt, loc),
			str(u.Department),
		}
	},
}

// AnnouncementTable exports announcements with the columns of the announcement query.
var AnnouncementTable = Table[model.Announcement]{
	Header: []string{
		"announcement_id", "title", "status", "visible_to_all",
		"publish_at", "expire_at", "created_by_name", "created_at",
	},
	Record: func(a model.Announcement, loc *time.Location) []string {
		return []string{
			strconv.FormatInt(a.ID, 10),
			a.Title,
			str(a.Status),
			flag(a.VisibleToAll),
			ts(a.PublishAt, loc),
			ts(a.ExpireAt, loc),
			str(a.CreatedByName),
			ts(a.CreatedAt, loc),
		}
	},
}

// NotificationTable exports notifications with the columns of the notification query.
var NotificationTable = Table[model.Notification]{
	Header: []string{"notification_id", "title", "type", "created_at", "related_doc_id"},
	Record: func(n model.Notification, loc *time.Location) []string {
		related := ""
		if n.RelatedDocID != nil {
			related = strconv.FormatInt(*n.RelatedDocID, 10)
		}
		return []string{
			strconv.FormatInt(n.ID, 10),
			n.Title,
			str(n.Type),
			ts(n.CreatedAt, loc),
			related,
		}
	},
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func flag(v *bool) string {
	switch {
	case v == nil:
		return ""
	case *v:
		return "1"
	default:
		return "0"
	}
}

func ts(v *time.Time, loc *time.Location) string {
	if v == nil || v.IsZero() {
		return ""
	}
	t := *v
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(TimestampLayout)
}
