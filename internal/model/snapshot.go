package model

import "time"

// Entity names one of the four record sets of a Snapshot.
type Entity string

const (
	EntityDocuments     Entity = "documents"
	EntityUsers         Entity = "users"
	EntityAnnouncements Entity = "announcements"
	EntityNotifications Entity = "notifications"
	EntityDocumentTypes Entity = "document_types"
)

// Snapshot is the read-only state of one analytics session: every table as it was when
// the session loaded it. It must not be mutated after load; filters and aggregations
// always return new slices.
type Snapshot struct {
	Documents     []Document
	Users         []User
	Announcements []Announcement
	Notifications []Notification
	DocumentTypes []DocumentType

	LoadedAt time.Time
	// Warnings lists the tables that could not be loaded and were replaced by empty ones.
	Warnings []string
}

// Counts returns the number of rows per entity.
func (s *Snapshot) Counts() map[Entity]int {
	return map[Entity]int{
		EntityDocuments:     len(s.Documents),
		EntityUsers:         len(s.Users),
		EntityAnnouncements: len(s.Announcements),
		EntityNotifications: len(s.Notifications),
		EntityDocumentTypes: len(s.DocumentTypes),
	}
}
