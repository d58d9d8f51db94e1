package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe always belongs to exactly one user. User is populated when the
// repository preloads the owner; it is nil otherwise.
type Recipe struct {
	ID                uuid.UUID
	Title             string
	Instructions      string
	MinutesToComplete *int
	UserID            uuid.UUID
	User              *User
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
