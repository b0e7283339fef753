package handlers

import (
	"net/http"

	"github.com/leggettc18/devmarks/internal/api/types"
	"github.com/leggettc18/devmarks/internal/services"
)

type BookmarksHandler struct {
	bookmarks services.BookmarkService
	validate  Validator
}

func NewBookmarksHandler(bookmarks services.BookmarkService, v Validator) *BookmarksHandler {
	return &BookmarksHandler{bookmarks: bookmarks, validate: v}
}

func (h *BookmarksHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	items, err := h.bookmarks.List(r.Context(), uid, embedParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, items)
}

func (h *BookmarksHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	b, err := h.bookmarks.Get(r.Context(), id, uid, embedParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, b)
}

func (h *BookmarksHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.BookmarkCreateRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, r, err)
		return
	}
	b, err := h.bookmarks.Create(r.Context(), uid, &services.CreateBookmarkInput{
		Name:  req.Name,
		URL:   req.URL,
		Color: req.Color,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/bookmarks/"+b.ID.String())
	writeData(w, r, http.StatusCreated, b)
}

func (h *BookmarksHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.BookmarkUpdateRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, r, err)
		return
	}
	b, err := h.bookmarks.Update(r.Context(), id, uid, &services.UpdateBookmarkInput{
		Name:  req.Name,
		URL:   req.URL,
		Color: req.Color,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, b)
}

func (h *BookmarksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.bookmarks.Delete(r.Context(), id, uid); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
