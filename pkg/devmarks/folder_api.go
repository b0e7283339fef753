package devmarks

import (
	"context"
	"net/http"
	"net/url"
)

// FolderAPI covers the /folders collection.
type FolderAPI struct {
	base *baseAPI
}

func (a *FolderAPI) List(ctx context.Context, embed ...string) (*Response[[]Folder], error) {
	return call[[]Folder](ctx, a.base, request{method: http.MethodGet, path: "/folders", query: embedQuery(embed), auth: true})
}

func (a *FolderAPI) Get(ctx context.Context, id string, embed ...string) (*Response[Folder], error) {
	if id == "" {
		return nil, &RequiredError{Field: "id", Operation: "GetFolder"}
	}
	return call[Folder](ctx, a.base, request{method: http.MethodGet, path: "/folders/" + url.PathEscape(id), query: embedQuery(embed), auth: true})
}

func (a *FolderAPI) Create(ctx context.Context, in FolderCreate) (*Response[Folder], error) {
	return call[Folder](ctx, a.base, request{method: http.MethodPost, path: "/folders", body: in, auth: true})
}

// AddBookmark files a bookmark into a folder and returns the folder with its bookmarks.
func (a *FolderAPI) AddBookmark(ctx context.Context, folderID, bookmarkID string) (*Response[Folder], error) {
	if folderID == "" {
		return nil, &RequiredError{Field: "folderID", Operation: "AddBookmarkToFolder"}
	}
	if bookmarkID == "" {
		return nil, &RequiredError{Field: "bookmarkID", Operation: "AddBookmarkToFolder"}
	}
	path := "/folders/" + url.PathEscape(folderID) + "/bookmarks/" + url.PathEscape(bookmarkID)
	return call[Folder](ctx, a.base, request{method: http.MethodPatch, path: path, auth: true})
}
