package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Bookmark is a saved link owned by a user.
type Bookmark struct {
	ID         uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID    uuid.UUID                      `gorm:"type:uuid;index;not null" json:"owner_id"`
	Owner      *User                          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name       string                         `gorm:"not null" json:"name" validate:"required"`
	URL        string                         `gorm:"type:text;not null" json:"url" validate:"required,url"`
	Color      *string                        `gorm:"type:varchar(32)" json:"color,omitempty"`
	Folders    []Folder                       `gorm:"many2many:bookmark_folders" json:"folders,omitempty"`
	LinkStatus datatypes.JSONType[LinkStatus] `gorm:"type:jsonb;not null;default:'{}'" json:"link_status"`
	CreatedAt  time.Time                      `json:"created_at"`
	UpdatedAt  time.Time                      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt                 `gorm:"index" json:"-"`
}

// LinkStatus is the outcome of the last reachability check of a bookmark URL.
// A nil CheckedAt means the URL has not been checked yet.
type LinkStatus struct {
	StatusCode int        `json:"status_code"`
	Reachable  bool       `json:"reachable"`
	Error      string     `json:"error,omitempty"`
	CheckedAt  *time.Time `json:"checked_at,omitempty"`
}
