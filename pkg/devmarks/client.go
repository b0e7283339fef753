// Package devmarks is the Go client for the Devmarks bookmark API.
//
// Every Client method performs one request and returns a Result: a Success
// holding the decoded payload, or a Failure describing the status the server
// answered with. A non-nil error is returned only when no usable response was
// obtained; it wraps ErrMalformedResponse.
package devmarks

import "context"

// Client is the facade over the user, bookmark and folder sub-clients. It is
// safe for concurrent use.
type Client struct {
	Users     *UserAPI
	Bookmarks *BookmarkAPI
	Folders   *FolderAPI
}

// NewClient builds a Client. Zero fields of cfg get defaults.
func NewClient(cfg Configuration) *Client {
	base := &baseAPI{cfg: cfg.withDefaults()}
	return &Client{
		Users:     &UserAPI{base: base},
		Bookmarks: &BookmarkAPI{base: base},
		Folders:   &FolderAPI{base: base},
	}
}

func (c *Client) Login(ctx context.Context, in LoginRequest) (Result[Token], error) {
	return Normalize(c.Users.Login(ctx, in))
}

func (c *Client) Register(ctx context.Context, in RegisterRequest) (Result[RegisterResponse], error) {
	return Normalize(c.Users.Register(ctx, in))
}

func (c *Client) Me(ctx context.Context, embed ...string) (Result[User], error) {
	return Normalize(c.Users.GetUser(ctx, embed...))
}

func (c *Client) ListBookmarks(ctx context.Context, embed ...string) (Result[[]Bookmark], error) {
	return Normalize(c.Bookmarks.List(ctx, embed...))
}

func (c *Client) GetBookmark(ctx context.Context, id string, embed ...string) (Result[Bookmark], error) {
	return Normalize(c.Bookmarks.Get(ctx, id, embed...))
}

func (c *Client) CreateBookmark(ctx context.Context, in BookmarkCreate) (Result[Bookmark], error) {
	return Normalize(c.Bookmarks.Create(ctx, in))
}

func (c *Client) UpdateBookmark(ctx context.Context, in BookmarkUpdate) (Result[Bookmark], error) {
	return Normalize(c.Bookmarks.Update(ctx, in))
}

func (c *Client) DeleteBookmark(ctx context.Context, id string) (Result[struct{}], error) {
	return Normalize(c.Bookmarks.Delete(ctx, id))
}

func (c *Client) ListFolders(ctx context.Context, embed ...string) (Result[[]Folder], error) {
	return Normalize(c.Folders.List(ctx, embed...))
}

func (c *Client) GetFolder(ctx context.Context, id string, embed ...string) (Result[Folder], error) {
	return Normalize(c.Folders.Get(ctx, id, embed...))
}

func (c *Client) CreateFolder(ctx context.Context, in FolderCreate) (Result[Folder], error) {
	return Normalize(c.Folders.Create(ctx, in))
}

func (c *Client) AddBookmarkToFolder(ctx context.Context, folderID, bookmarkID string) (Result[Folder], error) {
	return Normalize(c.Folders.AddBookmark(ctx, folderID, bookmarkID))
}
