package analytics

import (
	"time"

	"dmsanalytics/internal/model"
)

// Distinct returns the non-null, non-empty values of field in first-appearance order.
// NULLs are left out so they can never be offered as a filter choice.
func Distinct[T any](rows []T, field StringField[T]) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, row := range rows {
		v := field(row)
		if v == nil || *v == "" {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		out = append(out, *v)
	}
	return out
}

// Bounds returns the earliest and latest day of field, or nil when no row has a timestamp.
func Bounds[T any](rows []T, field TimeField[T], loc *time.Location) *DateRange {
	var r *DateRange
	for _, row := range rows {
		ts := field(row)
		if ts == nil || ts.IsZero() {
			continue
		}
		d := DateOf(*ts, loc)
		if r == nil {
			r = &DateRange{From: d, To: d}
			continue
		}
		if d.Before(r.From) {
			r.From = d
		}
		if d.After(r.To) {
			r.To = d
		}
	}
	return r
}

// DocumentOptions lists the values a document filter can take.
type DocumentOptions struct {
	Statuses   []string   `json:"statuses"`
	DocTypes   []string   `json:"doc_types"`
	KnownTypes []string   `json:"known_types"`
	Creators   []string   `json:"creators"`
	Created    *DateRange `json:"created"`
}

// DocumentFilterOptions builds the document option lists. knownTypes is the type lookup
// table and is reported as is.
func DocumentFilterOptions(rows []model.Document, knownTypes []model.DocumentType, loc *time.Location) DocumentOptions {
	names := make([]string, 0, len(knownTypes))
	for _, t := range knownTypes {
		names = append(names, t.Name)
	}
	return DocumentOptions{
		Statuses:   Distinct(rows, documentStatus),
		DocTypes:   Distinct(rows, documentType),
		KnownTypes: names,
		Creators:   Distinct(rows, documentCreator),
		Created:    Bounds(rows, documentCreated, loc),
	}
}

// UserOptions lists the values a user filter can take.
type UserOptions struct {
	Statuses    []string   `json:"statuses"`
	Roles       []string   `json:"roles"`
	Departments []string   `json:"departments"`
	Created     *DateRange `json:"created"`
}

// UserFilterOptions builds the user option lists.
func UserFilterOptions(rows []model.User, loc *time.Location) UserOptions {
	return UserOptions{
		Statuses:    Distinct(rows, userStatus),
		Roles:       Distinct(rows, userRole),
		Departments: Distinct(rows, userDepartment),
		Created:     Bounds(rows, userCreated, loc),
	}
}

// AnnouncementOptions lists the values an announcement filter can take.
type AnnouncementOptions struct {
	Statuses     []string   `json:"statuses"`
	Visibilities []string   `json:"visibilities"`
	Creators     []string   `json:"creators"`
	Created      *DateRange `json:"created"`
}

// AnnouncementFilterOptions builds the announcement option lists. Visibility choices are
// fixed regardless of the data.
func AnnouncementFilterOptions(rows []model.Announcement, loc *time.Location) AnnouncementOptions {
	return AnnouncementOptions{
		Statuses:     Distinct(rows, announcementStatus),
		Visibilities: []string{LabelVisibleToAll, LabelRestricted},
		Creators:     Distinct(rows, announcementCreator),
		Created:      Bounds(rows, announcementCreated, loc),
	}
}

// NotificationOptions lists the values a notification filter can take.
type NotificationOptions struct {
	Types   []string   `json:"types"`
	Created *DateRange `json:"created"`
}

// NotificationFilterOptions builds the notification option lists.
func NotificationFilterOptions(rows []model.Notification, loc *time.Location) NotificationOptions {
	return NotificationOptions{
		Types:   Distinct(rows, notificationType),
		Created: Bounds(rows, notificationCreated, loc),
	}
}
