package model

import "time"

// Notification is a system activity entry, optionally pointing at a document.
type Notification struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Type         *string    `json:"type"`
	CreatedAt    *time.Time `json:"created_at"`
	RelatedDocID *int64     `json:"related_doc_id"`
}
