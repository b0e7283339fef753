package devmarks

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBasePath  = "http://localhost:8080"
	DefaultUserAgent = "devmarks-go/1.0"
)

// TokenProvider supplies the bearer token for a request. It is consulted on
// every request and never written through.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, bool)
}

// TokenProviderFunc adapts a function to TokenProvider.
type TokenProviderFunc func(ctx context.Context) (string, bool)

func (f TokenProviderFunc) AccessToken(ctx context.Context) (string, bool) { return f(ctx) }

// StaticToken is a TokenProvider that always returns the same token. An
// empty StaticToken provides nothing.
type StaticToken string

func (t StaticToken) AccessToken(context.Context) (string, bool) {
	return string(t), t != ""
}

// Configuration is shared by every sub-client of a Client.
type Configuration struct {
	// BasePath is the API root, e.g. https://marks.example.com.
	BasePath string
	// HTTPClient is used as is when set; Timeout is then ignored.
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
	// Headers are added to every request.
	Headers     map[string]string
	AccessToken TokenProvider
	Logger      *zap.Logger
}

func (c Configuration) withDefaults() Configuration {
	if c.BasePath == "" {
		c.BasePath = DefaultBasePath
	}
	c.BasePath = strings.TrimRight(c.BasePath, "/")
	if c.HTTPClient == nil {
		timeout := c.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		c.HTTPClient = &http.Client{Timeout: timeout}
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
