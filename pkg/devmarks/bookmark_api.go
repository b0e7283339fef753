package devmarks

import (
	"context"
	"net/http"
	"net/url"
)

// BookmarkAPI covers the /bookmarks collection.
type BookmarkAPI struct {
	base *baseAPI
}

func (a *BookmarkAPI) List(ctx context.Context, embed ...string) (*Response[[]Bookmark], error) {
	return call[[]Bookmark](ctx, a.base, request{method: http.MethodGet, path: "/bookmarks", query: embedQuery(embed), auth: true})
}

func (a *BookmarkAPI) Get(ctx context.Context, id string, embed ...string) (*Response[Bookmark], error) {
	if id == "" {
		return nil, &RequiredError{Field: "id", Operation: "GetBookmark"}
	}
	return call[Bookmark](ctx, a.base, request{method: http.MethodGet, path: "/bookmarks/" + url.PathEscape(id), query: embedQuery(embed), auth: true})
}

func (a *BookmarkAPI) Create(ctx context.Context, in BookmarkCreate) (*Response[Bookmark], error) {
	return call[Bookmark](ctx, a.base, request{method: http.MethodPost, path: "/bookmarks", body: in, auth: true})
}

func (a *BookmarkAPI) Update(ctx context.Context, in BookmarkUpdate) (*Response[Bookmark], error) {
	if in.ID == "" {
		return nil, &RequiredError{Field: "id", Operation: "UpdateBookmark"}
	}
	return call[Bookmark](ctx, a.base, request{method: http.MethodPatch, path: "/bookmarks/" + url.PathEscape(in.ID), body: in, auth: true})
}

func (a *BookmarkAPI) Delete(ctx context.Context, id string) (*Response[struct{}], error) {
	if id == "" {
		return nil, &RequiredError{Field: "id", Operation: "DeleteBookmark"}
	}
	return call[struct{}](ctx, a.base, request{method: http.MethodDelete, path: "/bookmarks/" + url.PathEscape(id), auth: true})
}
