// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns recipes. PasswordHash is derived state: it is
// only ever written through the password hasher and never leaves the server.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	ImageURL     string
	Bio          string
	Recipes      []*Recipe // owned set; removed with the user (cascade)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
