package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"dmsanalytics/internal/model"
	"dmsanalytics/internal/repository"
)

// Store is a database/sql implementation of repository.DashboardRepository.
// It uses read-only queries and contains no business logic.
type Store struct {
	db      *sql.DB
	dialect Dialect
	loc     *time.Location
}

// New creates a Store speaking the given dialect. Timestamp columns hold naive wall-clock
// times; the store reads them as times in loc whatever zone the driver decoded them in.
func New(db *sql.DB, dialect Dialect, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{db: db, dialect: dialect, loc: loc}
}

var _ repository.DashboardRepository = (*Store)(nil)

// Documents returns every document joined with its type label and department names.
func (s *Store) Documents(ctx context.Context) ([]model.Document, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.documentsQuery())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		var (
			d                                 model.Document
			title, reference, status, creator sql.NullString
			docType, departments              sql.NullString
			visible, deleted                  sql.NullBool
			createdAt, updatedAt              sql.NullTime
		)
		if err := rows.Scan(
			&d.ID,
			&title,
			&reference,
			&status,
			&visible,
			&createdAt,
			&updatedAt,
			&creator,
			&deleted,
			&docType,
			&departments,
		); err != nil {
			return nil, err
		}
		d.Title = title.String
		d.Reference = nullString(reference)
		d.Status = nullString(status)
		d.VisibleToAll = nullBool(visible)
		d.CreatedAt = s.wallTime(createdAt)
		d.UpdatedAt = s.wallTime(updatedAt)
		d.CreatedByName = nullString(creator)
		d.Deleted = deleted.Valid && deleted.Bool
		d.DocType = nullString(docType)
		d.Departments = nullString(departments)
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Users returns every account joined with its department label.
func (s *Store) Users(ctx context.Context) ([]model.User, error) {
	const q = `
		SELECT u.user_id, u.Username, u.firstname, u.lastname, u.user_email,
		       u.role, u.status, u.created_at, u.updated_at,
		       d.name AS department
		FROM dms_user u
		LEFT JOIN departments d ON u.department_id = d.department_id
		ORDER BY u.user_id
	`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		var (
			u                                model.User
			username                         sql.NullString
			first, last, email, role, status sql.NullString
			department                       sql.NullString
			createdAt, updatedAt             sql.NullTime
		)
		if err := rows.Scan(
			&u.ID,
			&username,
			&first,
			&last,
			&email,
			&role,
			&status,
			&createdAt,
			&updatedAt,
			&department,
		); err != nil {
			return nil, err
		}
		u.Username = username.String
		u.FirstName = nullString(first)
		u.LastName = nullString(last)
		u.Email = nullString(email)
		u.Role = nullString(role)
		u.Status = nullString(status)
		u.CreatedAt = s.wallTime(createdAt)
		u.UpdatedAt = s.wallTime(updatedAt)
		u.Department = nullString(department)
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Announcements returns every announcement.
func (s *Store) Announcements(ctx context.Context) ([]model.Announcement, error) {
	const q = `
		SELECT announcement_id, title, status, visible_to_all,
		       publish_at, expire_at, created_by_name, created_at
		FROM announcements
		ORDER BY announcement_id
	`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Announcement, 0)
	for rows.Next() {
		var (
			a                              model.Announcement
			title, status, creator         sql.NullString
			visible                        sql.NullBool
			publishAt, expireAt, createdAt sql.NullTime
		)
		if err := rows.Scan(
			&a.ID,
			&title,
			&status,
			&visible,
			&publishAt,
			&expireAt,
			&creator,
			&createdAt,
		); err != nil {
			return nil, err
		}
		a.Title = title.String
		a.Status = nullString(status)
		a.VisibleToAll = nullBool(visible)
		a.PublishAt = s.wallTime(publishAt)
		a.ExpireAt = s.wallTime(expireAt)
		a.CreatedByName = nullString(creator)
		a.CreatedAt = s.wallTime(createdAt)
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Notifications returns every notification.
func (s *Store) Notifications(ctx context.Context) ([]model.Notification, error) {
	const q = `
		SELECT notification_id, title, type, created_at, related_doc_id
		FROM notifications
		ORDER BY notification_id
	`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Notification, 0)
	for rows.Next() {
		var (
			n         model.Notification
			title     sql.NullString
			typ       sql.NullString
			createdAt sql.NullTime
			related   sql.NullInt64
		)
		if err := rows.Scan(&n.ID, &title, &typ, &createdAt, &related); err != nil {
			return nil, err
		}
		n.Title = title.String
		n.Type = nullString(typ)
		n.CreatedAt = s.wallTime(createdAt)
		if related.Valid {
			v := related.Int64
			n.RelatedDocID = &v
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// DocumentTypes returns the document type lookup ordered by name.
func (s *Store) DocumentTypes(ctx context.Context) ([]model.DocumentType, error) {
	const q = `SELECT type_id, name FROM document_types ORDER BY name`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentType, 0)
	for rows.Next() {
		var t model.DocumentType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullBool(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}

// wallTime keeps the wall-clock reading of a naive timestamp and places it in the store's
// zone, so the calendar date stored in the database is the date the service sees.
func (s *Store) wallTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Date(v.Time.Year(), v.Time.Month(), v.Time.Day(),
		v.Time.Hour(), v.Time.Minute(), v.Time.Second(), v.Time.Nanosecond(), s.loc)
	return &t
}
