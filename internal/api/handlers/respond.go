package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/leggettc18/devmarks/internal/api/middleware"
	"github.com/leggettc18/devmarks/internal/api/types"
	"github.com/leggettc18/devmarks/internal/api/validators"
	appErr "github.com/leggettc18/devmarks/pkg/errors"
	"github.com/leggettc18/devmarks/pkg/logger"
	"go.uber.org/zap"
)

// Validator is the part of *validator.Validate the handlers use.
type Validator interface {
	Struct(any) error
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeJSON(w, status, types.APIResponse{
		Success: true,
		Data:    data,
		Meta:    &types.Meta{RequestID: middleware.GetRequestID(r.Context())},
	})
}

// writeError answers with the status that err's code maps to.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := appErr.CodeOf(err)
	status := appErr.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		logger.L().Error("request failed",
			zap.String("id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, types.APIResponse{
		Success: false,
		Error:   types.FromAppError(err),
		Meta:    &types.Meta{RequestID: middleware.GetRequestID(r.Context())},
	})
}

// decodeJSON reads a single JSON object into dst and validates it.
func decodeJSON(r *http.Request, v Validator, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return appErr.Wrap(err, appErr.CodeInvalid, "request body too large")
		case errors.Is(err, io.EOF):
			return appErr.New(appErr.CodeInvalid, "request body is empty")
		default:
			return appErr.Wrap(err, appErr.CodeInvalid, "invalid json")
		}
	}
	if err := v.Struct(dst); err != nil {
		return appErr.Wrap(err, appErr.CodeValidation, validators.Describe(err))
	}
	return nil
}

// embedParam splits ?embed=a,b into its trimmed, lower-cased values.
func embedParam(r *http.Request) []string {
	var out []string
	for _, raw := range r.URL.Query()["embed"] {
		for _, e := range strings.Split(raw, ",") {
			if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
				out = append(out, e)
			}
		}
	}
	return out
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, appErr.New(appErr.CodeNotFound, name+" is not a valid id")
	}
	return id, nil
}

func currentUser(r *http.Request) (uuid.UUID, error) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		return uuid.Nil, appErr.New(appErr.CodeUnauthorized, "authentication required")
	}
	return uid, nil
}
