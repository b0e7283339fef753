package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Folder groups bookmarks. Folders nest through ParentID.
type Folder struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;index;not null" json:"owner_id"`
	Owner     *User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name      string         `gorm:"not null" json:"name" validate:"required"`
	Color     string         `gorm:"type:varchar(32);not null;default:''" json:"color,omitempty"`
	ParentID  *uuid.UUID     `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Parent    *Folder        `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Bookmarks []Bookmark     `gorm:"many2many:bookmark_folders" json:"bookmarks,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
