package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User owns bookmarks and folders.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash string         `gorm:"not null" json:"-" swaggerignore:"true"`
	Name         string         `gorm:"not null;default:''" json:"name,omitempty"`
	Bookmarks    []Bookmark     `gorm:"foreignKey:OwnerID" json:"bookmarks,omitempty"`
	Folders      []Folder       `gorm:"foreignKey:OwnerID" json:"folders,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
}
