package handlers

import (
	"net/http"

	"github.com/leggettc18/devmarks/internal/api/types"
	"github.com/leggettc18/devmarks/internal/services"
)

type AuthHandler struct {
	auth     services.AuthService
	validate Validator
}

func NewAuthHandler(auth services.AuthService, v Validator) *AuthHandler {
	return &AuthHandler{auth: auth, validate: v}
}

// Register handles POST /users.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusCreated, types.RegisterResponse{ID: u.ID.String(), Email: u.Email})
}

// Token handles POST /auth/token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tok, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, types.TokenResponse{
		AccessToken: tok.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tok.ExpiresIn.Seconds()),
	})
}

// Me handles GET /me. ?embed=bookmarks,folders loads the user's relations.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	u, err := h.auth.GetUser(r.Context(), uid, embedParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, r, http.StatusOK, u)
}
