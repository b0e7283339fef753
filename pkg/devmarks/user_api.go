package devmarks

import (
	"context"
	"net/http"
)

// UserAPI covers registration, token issuance and the current user.
type UserAPI struct {
	base *baseAPI
}

// Login exchanges credentials for a bearer token.
func (a *UserAPI) Login(ctx context.Context, in LoginRequest) (*Response[Token], error) {
	if in.Email == "" {
		return nil, &RequiredError{Field: "email", Operation: "Login"}
	}
	return call[Token](ctx, a.base, request{method: http.MethodPost, path: "/auth/token", body: in})
}

// Register creates a user account.
func (a *UserAPI) Register(ctx context.Context, in RegisterRequest) (*Response[RegisterResponse], error) {
	if in.Email == "" {
		return nil, &RequiredError{Field: "email", Operation: "Register"}
	}
	return call[RegisterResponse](ctx, a.base, request{method: http.MethodPost, path: "/users", body: in})
}

// GetUser returns the user the bearer token belongs to.
func (a *UserAPI) GetUser(ctx context.Context, embed ...string) (*Response[User], error) {
	return call[User](ctx, a.base, request{method: http.MethodGet, path: "/me", query: embedQuery(embed), auth: true})
}
