package devmarks

import "time"

type Bookmark struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	URL        string      `json:"url"`
	Color      *string     `json:"color,omitempty"`
	Owner      *User       `json:"owner,omitempty"`
	Folders    []Folder    `json:"folders,omitempty"`
	LinkStatus *LinkStatus `json:"link_status,omitempty"`
	CreatedAt  time.Time   `json:"created_at,omitempty"`
	UpdatedAt  time.Time   `json:"updated_at,omitempty"`
}

type BookmarkCreate struct {
	Name  string  `json:"name"`
	URL   string  `json:"url"`
	Color *string `json:"color,omitempty"`
}

// BookmarkUpdate patches a bookmark. Nil fields are left unchanged.
type BookmarkUpdate struct {
	ID    string  `json:"-"`
	Name  *string `json:"name,omitempty"`
	URL   *string `json:"url,omitempty"`
	Color *string `json:"color,omitempty"`
}

// LinkStatus is the result of the server's last reachability check of a bookmark URL.
type LinkStatus struct {
	StatusCode int        `json:"status_code"`
	Reachable  bool       `json:"reachable"`
	Error      string     `json:"error,omitempty"`
	CheckedAt  *time.Time `json:"checked_at,omitempty"`
}

type Folder struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Color     string     `json:"color,omitempty"`
	ParentID  *string    `json:"parent_id,omitempty"`
	Parent    *Folder    `json:"parent,omitempty"`
	Owner     *User      `json:"owner,omitempty"`
	Bookmarks []Bookmark `json:"bookmarks,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at,omitempty"`
}

type FolderCreate struct {
	Name     string  `json:"name"`
	Color    string  `json:"color,omitempty"`
	ParentID *string `json:"parent_id,omitempty"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string     `json:"name,omitempty"`
	Bookmarks []Bookmark `json:"bookmarks,omitempty"`
	Folders   []Folder   `json:"folders,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at,omitempty"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
