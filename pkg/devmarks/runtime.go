package devmarks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 8 << 20

// envelope is the error half of the server's response wrapper.
type envelope struct {
	Error *envelopeError `json:"error,omitempty"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	// auth attaches the bearer token when the provider has one.
	auth bool
}

// baseAPI is the transport shared by the sub-clients.
type baseAPI struct {
	cfg Configuration
}

func (a *baseAPI) do(ctx context.Context, r request) (*http.Response, []byte, error) {
	u := a.cfg.BasePath + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var bodyReader io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", a.cfg.UserAgent)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range a.cfg.Headers {
		req.Header.Set(k, v)
	}
	if r.auth && a.cfg.AccessToken != nil {
		if token, ok := a.cfg.AccessToken.AccessToken(ctx); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := a.cfg.HTTPClient.Do(req)
	if err != nil {
		a.cfg.Logger.Debug("request failed",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	a.cfg.Logger.Debug("request",
		zap.String("method", r.method),
		zap.String("path", r.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	return resp, body, nil
}

// call performs the request and decodes the envelope's data into T. A non-2xx
// status yields a *ResponseError; every other error means no usable response.
func call[T any](ctx context.Context, a *baseAPI, r request) (*Response[T], error) {
	resp, body, err := a.do(ctx, r)
	if err != nil {
		return nil, err
	}

	if !isSuccessStatus(resp.StatusCode) {
		return nil, responseError(resp, body)
	}

	out := &Response[T]{StatusCode: resp.StatusCode, Raw: resp}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := decodeData(body, &out.Data); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeData unwraps the {success,data} envelope when present and decodes
// bare JSON bodies directly.
func decodeData(body []byte, dst any) error {
	trimmed := bytes.TrimSpace(body)
	if trimmed[0] == '{' {
		var probe struct {
			Success *bool           `json:"success"`
			Data    json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return fmt.Errorf("decode response envelope: %w", err)
		}
		if probe.Success != nil {
			if len(probe.Data) == 0 || string(probe.Data) == "null" {
				return nil
			}
			trimmed = probe.Data
		}
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func responseError(resp *http.Response, body []byte) *ResponseError {
	re := &ResponseError{StatusCode: resp.StatusCode, Raw: resp}
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		re.Code = env.Error.Code
		re.Message = env.Error.Message
		re.Details = env.Error.Details
	}
	if re.Message == "" {
		re.Message = statusMessage(resp.StatusCode)
	}
	return re
}

func embedQuery(embed []string) url.Values {
	var kept []string
	for _, e := range embed {
		if e = strings.TrimSpace(e); e != "" {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return url.Values{"embed": {strings.Join(kept, ",")}}
}
