package analytics

import (
	"errors"
	"fmt"
	"time"

	"dmsanalytics/internal/model"
)

// Visibility labels used for announcements, both as filter options and as breakdown labels.
const (
	LabelVisibleToAll = "Visible to All"
	LabelRestricted   = "Restricted"
)

// ErrInvalidFilter is returned when a filter value cannot be interpreted.
var ErrInvalidFilter = errors.New("invalid filter")

// Row accessors shared by filters, option lists and summaries.
var (
	documentStatus  StringField[model.Document] = func(d model.Document) *string { return d.Status }
	documentType    StringField[model.Document] = func(d model.Document) *string { return d.DocType }
	documentCreator StringField[model.Document] = func(d model.Document) *string { return d.CreatedByName }
	documentCreated TimeField[model.Document]   = func(d model.Document) *time.Time { return d.CreatedAt }

	userStatus     StringField[model.User] = func(u model.User) *string { return u.Status }
	userRole       StringField[model.User] = func(u model.User) *string { return u.Role }
	userDepartment StringField[model.User] = func(u model.User) *string { return u.Department }
	userCreated    TimeField[model.User]   = func(u model.User) *time.Time { return u.CreatedAt }

	announcementStatus     StringField[model.Announcement] = func(a model.Announcement) *string { return a.Status }
	announcementVisibility BoolField[model.Announcement]   = func(a model.Announcement) *bool { return a.VisibleToAll }
	announcementCreator    StringField[model.Announcement] = func(a model.Announcement) *string { return a.CreatedByName }
	announcementCreated    TimeField[model.Announcement]   = func(a model.Announcement) *time.Time { return a.CreatedAt }

	notificationType    StringField[model.Notification] = func(n model.Notification) *string { return n.Type }
	notificationCreated TimeField[model.Notification]   = func(n model.Notification) *time.Time { return n.CreatedAt }
)

// DocumentCriteria selects documents. Nil fields are not constrained.
type DocumentCriteria struct {
	Status  *string
	DocType *string
	Creator *string
	Created *DateRange
}

// Active reports whether any criterion is set.
func (c DocumentCriteria) Active() bool {
	return c.Status != nil || c.DocType != nil || c.Creator != nil || c.Created != nil
}

// FilterDocuments returns the documents matching every criterion in c.
func FilterDocuments(rows []model.Document, c DocumentCriteria, loc *time.Location) []model.Document {
	return Apply(rows,
		FieldEquals(documentStatus, c.Status),
		FieldEquals(documentType, c.DocType),
		InDateRange(documentCreated, c.Created, loc),
		FieldEquals(documentCreator, c.Creator),
	)
}

// UserCriteria selects users. Nil fields are not constrained.
type UserCriteria struct {
	Status     *string
	Role       *string
	Department *string
	Created    *DateRange
}

// Active reports whether any criterion is set.
func (c UserCriteria) Active() bool {
	return c.Status != nil || c.Role != nil || c.Department != nil || c.Created != nil
}

// FilterUsers returns the users matching every criterion in c.
func FilterUsers(rows []model.User, c UserCriteria, loc *time.Location) []model.User {
	return Apply(rows,
		FieldEquals(userStatus, c.Status),
		FieldEquals(userRole, c.Role),
		FieldEquals(userDepartment, c.Department),
		InDateRange(userCreated, c.Created, loc),
	)
}

// Visibility is the announcement visibility option.
type Visibility string

const (
	VisibleToAll Visibility = LabelVisibleToAll
	Restricted   Visibility = LabelRestricted
)

// ParseVisibility maps an option label to a Visibility.
func ParseVisibility(s string) (Visibility, error) {
	switch Visibility(s) {
	case VisibleToAll, Restricted:
		return Visibility(s), nil
	}
	return "", fmt.Errorf("%w: unknown visibility %q", ErrInvalidFilter, s)
}

// Flag returns the value of the visible_to_all flag this option selects.
func (v Visibility) Flag() bool {
	return v == VisibleToAll
}

// AnnouncementCriteria selects announcements. Nil fields are not constrained.
type AnnouncementCriteria struct {
	Status     *string
	Visibility *Visibility
	Creator    *string
	Created    *DateRange
}

// Active reports whether any criterion is set.
func (c AnnouncementCriteria) Active() bool {
	return c.Status != nil || c.Visibility != nil || c.Creator != nil || c.Created != nil
}

// FilterAnnouncements returns the announcements matching every criterion in c.
func FilterAnnouncements(rows []model.Announcement, c AnnouncementCriteria, loc *time.Location) []model.Announcement {
	var flag *bool
	if c.Visibility != nil {
		f := c.Visibility.Flag()
		flag = &f
	}
	return Apply(rows,
		FieldEquals(announcementStatus, c.Status),
		FlagEquals(announcementVisibility, flag),
		InDateRange(announcementCreated, c.Created, loc),
		FieldEquals(announcementCreator, c.Creator),
	)
}

// NotificationCriteria selects notifications. Nil fields are not constrained.
type NotificationCriteria struct {
	Type    *string
	Created *DateRange
}

// Active reports whether any criterion is set.
func (c NotificationCriteria) Active() bool {
	return c.Type != nil || c.Created != nil
}

// FilterNotifications returns the notifications matching every criterion in c.
func FilterNotifications(rows []model.Notification, c NotificationCriteria, loc *time.Location) []model.Notification {
	return Apply(rows,
		FieldEquals(notificationType, c.Type),
		InDateRange(notificationCreated, c.Created, loc),
	)
}
