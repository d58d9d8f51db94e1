package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel mirrors the 'recipes' table. UserID is a non-nullable FK to
// users.id.
type RecipeModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Instructions      string    `gorm:"type:text;not null"`
	MinutesToComplete *int
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
