package devmarks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, token TokenProvider) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Configuration{BasePath: srv.URL, AccessToken: token})
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestListBookmarks_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bookmarks", r.URL.Path)
		writeBody(w, http.StatusOK, `[{"id":"1","name":"Docs","url":"https://x"}]`)
	}, StaticToken("t"))

	res, err := c.ListBookmarks(context.Background())
	require.NoError(t, err)

	s, ok := res.(Success[[]Bookmark])
	require.True(t, ok, "expected Success, got %T", res)
	assert.Equal(t, http.StatusOK, s.Status())
	assert.True(t, s.OK())
	require.Len(t, s.Data, 1)
	assert.Equal(t, Bookmark{ID: "1", Name: "Docs", URL: "https://x"}, s.Data[0])
}

func TestListBookmarks_EnvelopeUnwrapped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{"success":true,"data":[{"id":"1","name":"Docs","url":"https://x"}]}`)
	}, nil)

	res, err := c.ListBookmarks(context.Background())
	require.NoError(t, err)
	s, ok := res.(Success[[]Bookmark])
	require.True(t, ok)
	require.Len(t, s.Data, 1)
	assert.Equal(t, "Docs", s.Data[0].Name)
}

func TestGetBookmark_BareObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks/abc", r.URL.Path)
		assert.Equal(t, "owner,folders", r.URL.Query().Get("embed"))
		writeBody(w, http.StatusOK, `{"id":"abc","name":"Go","url":"https://go.dev","owner":{"id":"u1","email":"a@b.c"}}`)
	}, nil)

	res, err := c.GetBookmark(context.Background(), "abc", "owner", "folders")
	require.NoError(t, err)
	s, ok := res.(Success[Bookmark])
	require.True(t, ok)
	assert.Equal(t, "abc", s.Data.ID)
	require.NotNil(t, s.Data.Owner)
	assert.Equal(t, "a@b.c", s.Data.Owner.Email)
}

func TestListBookmarks_Unauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, nil)

	res, err := c.ListBookmarks(context.Background())
	require.NoError(t, err)

	f, ok := res.(Failure[[]Bookmark])
	require.True(t, ok, "expected Failure, got %T", res)
	assert.Equal(t, http.StatusUnauthorized, f.Status())
	assert.False(t, f.OK())
	assert.Equal(t, "Unauthorized", f.Message)
	require.NotNil(t, f.Err)
	assert.Equal(t, http.StatusUnauthorized, f.Err.StatusCode)
}

func TestFailure_UsesServerErrorMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusForbidden, `{"success":false,"error":{"code":"forbidden","message":"bookmark belongs to another user"}}`)
	}, StaticToken("t"))

	res, err := c.DeleteBookmark(context.Background(), "b1")
	require.NoError(t, err)
	f, ok := res.(Failure[struct{}])
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, f.StatusCode)
	assert.Equal(t, "bookmark belongs to another user", f.Message)
	assert.Equal(t, "forbidden", f.Err.Code)
}

func TestListBookmarks_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := NewClient(Configuration{BasePath: base})
	res, err := c.ListBookmarks(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestUndecodableBodyIsMalformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{"id":`)
	}, nil)

	res, err := c.GetBookmark(context.Background(), "1")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCancelledContextIsMalformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `[]`)
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.ListFolders(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/token", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, LoginRequest{Email: "a@b.c", Password: "pw"}, in)
		writeBody(w, http.StatusOK, `{"access_token":"abc"}`)
	}, StaticToken("ignored"))

	res, err := c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	s, ok := res.(Success[Token])
	require.True(t, ok)
	assert.Equal(t, "abc", s.Data.AccessToken)
}

func TestBearerTokenAttached(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		writeBody(w, http.StatusOK, `{"id":"u1","email":"a@b.c"}`)
	}, StaticToken("secret"))

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", got)
}

func TestNoTokenNoHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		assert.False(t, present)
		writeBody(w, http.StatusOK, `[]`)
	}, StaticToken(""))

	_, err := c.ListFolders(context.Background())
	require.NoError(t, err)
}

func TestTokenProviderConsultedPerRequest(t *testing.T) {
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		writeBody(w, http.StatusOK, `[]`)
	}, nil)

	token := ""
	c.Users.base.cfg.AccessToken = TokenProviderFunc(func(context.Context) (string, bool) {
		return token, token != ""
	})

	_, err := c.ListFolders(context.Background())
	require.NoError(t, err)
	token = "later"
	_, err = c.ListFolders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer later"}, seen)
}

func TestDeleteBookmark_NoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}, StaticToken("t"))

	res, err := c.DeleteBookmark(context.Background(), "b1")
	require.NoError(t, err)
	_, ok := res.(Success[struct{}])
	require.True(t, ok)
	assert.Equal(t, http.StatusNoContent, res.Status())
}

func TestUpdateBookmark_SendsOnlySetFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/bookmarks/b1", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"name": "New"}, body)
		writeBody(w, http.StatusOK, `{"id":"b1","name":"New","url":"https://x"}`)
	}, StaticToken("t"))

	name := "New"
	res, err := c.UpdateBookmark(context.Background(), BookmarkUpdate{ID: "b1", Name: &name})
	require.NoError(t, err)
	s, ok := res.(Success[Bookmark])
	require.True(t, ok)
	assert.Equal(t, "New", s.Data.Name)
}

func TestAddBookmarkToFolder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/folders/f1/bookmarks/b1", r.URL.Path)
		writeBody(w, http.StatusOK, `{"id":"f1","name":"Work","bookmarks":[{"id":"b1","name":"Go","url":"https://go.dev"}]}`)
	}, StaticToken("t"))

	res, err := c.AddBookmarkToFolder(context.Background(), "f1", "b1")
	require.NoError(t, err)
	s, ok := res.(Success[Folder])
	require.True(t, ok)
	require.Len(t, s.Data.Bookmarks, 1)
	assert.Equal(t, "b1", s.Data.Bookmarks[0].ID)
}

func TestRequiredParameter(t *testing.T) {
	c := NewClient(Configuration{BasePath: "http://127.0.0.1:1"})

	_, err := c.GetBookmark(context.Background(), "")
	require.Error(t, err)
	var req *RequiredError
	require.ErrorAs(t, err, &req)
	assert.Equal(t, "id", req.Field)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestIdempotentCalls(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeBody(w, http.StatusOK, `[{"id":"1","name":"Docs","url":"https://x"}]`)
	}, nil)

	first, err := c.ListBookmarks(context.Background())
	require.NoError(t, err)
	second, err := c.ListBookmarks(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, first.(Success[[]Bookmark]).Data, second.(Success[[]Bookmark]).Data)
}

func TestHeadersAndUserAgent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "yes", r.Header.Get("X-Trace"))
		writeBody(w, http.StatusOK, `[]`)
	}, nil)
	c.Folders.base.cfg.Headers = map[string]string{"X-Trace": "yes"}

	_, err := c.ListFolders(context.Background())
	require.NoError(t, err)
}
