package model

import (
	"strings"
	"time"
)

// Document is one row of the document list as read from the document-management store.
// This is a pure domain model with no database-specific dependencies or tags.
// Nullable columns are pointers; a nil value means the store returned NULL.
type Document struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Reference     *string    `json:"reference"`
	Status        *string    `json:"status"`
	VisibleToAll  *bool      `json:"visible_to_all"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	CreatedByName *string    `json:"created_by_name"`
	Deleted       bool       `json:"deleted"`
	DocType       *string    `json:"doc_type"`
	// Departments is the comma-joined list of department names linked to the document.
	Departments *string `json:"departments"`
}

// DepartmentList splits Departments into its individual names.
func (d Document) DepartmentList() []string {
	if d.Departments == nil || *d.Departments == "" {
		return nil
	}
	parts := strings.Split(*d.Departments, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DocumentType is a row of the document type lookup table.
type DocumentType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
