package types

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type BookmarkCreateRequest struct {
	Name  string  `json:"name" validate:"required,notblank,max=255"`
	URL   string  `json:"url" validate:"required,url"`
	Color *string `json:"color" validate:"omitempty,max=32"`
}

// BookmarkUpdateRequest is a partial update; absent fields are left as they are.
type BookmarkUpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,notblank,max=255"`
	URL   *string `json:"url" validate:"omitempty,url"`
	Color *string `json:"color" validate:"omitempty,max=32"`
}

type FolderCreateRequest struct {
	Name     string  `json:"name" validate:"required,notblank,max=255"`
	Color    string  `json:"color" validate:"omitempty,max=32"`
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
}
