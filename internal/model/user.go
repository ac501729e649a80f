package model

import "time"

// User is a DMS account joined with its department label.
type User struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	Email      *string    `json:"email"`
	Role       *string    `json:"role"`
	Status     *string    `json:"status"`
	CreatedAt  *time.Time `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
	Department *string    `json:"department"`
}
