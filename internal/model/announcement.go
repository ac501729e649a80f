package model

import "time"

// Announcement is a DMS announcement. VisibleToAll distinguishes announcements shown to
// everyone from restricted ones.
type Announcement struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Status        *string    `json:"status"`
	VisibleToAll  *bool      `json:"visible_to_all"`
	PublishAt     *time.Time `json:"publish_at"`
	ExpireAt      *time.Time `json:"expire_at"`
	CreatedByName *string    `json:"created_by_name"`
	CreatedAt     *time.Time `json:"created_at"`
}
