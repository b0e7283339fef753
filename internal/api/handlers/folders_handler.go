package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/leggettc18/devmarks/internal/api/types"
	"github.com/leggettc18/devmarks/internal/services"
)

type FoldersHandler struct {
	folders  services.FolderService
	validate Validator
}

func NewFoldersHandler(folders services.FolderService, v Validator) *FoldersHandler {
	return &FoldersHandler{folders: folders, validate: v}
}

func (h *FoldersHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	items, err := h.folders.List(r.Context(), uid, embedParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, items)
}

func (h *FoldersHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	f, err := h.folders.Get(r.Context(), id, uid, embedParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, f)
}

func (h *FoldersHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.FolderCreateRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, r, err)
		return
	}
	in := &services.CreateFolderInput{Name: req.Name, Color: req.Color}
	if req.ParentID != nil {
		pid := uuid.MustParse(*req.ParentID)
		in.ParentID = &pid
	}
	f, err := h.folders.Create(r.Context(), uid, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/folders/"+f.ID.String())
	writeData(w, r, http.StatusCreated, f)
}

// AddBookmark handles PATCH /folders/{id}/bookmarks/{bookmarkID}.
func (h *FoldersHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	uid, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	folderID, err := uuidParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	bookmarkID, err := uuidParam(r, "bookmarkID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	f, err := h.folders.AddBookmark(r.Context(), folderID, bookmarkID, uid)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, f)
}
