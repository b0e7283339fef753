package devmarks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Result is the outcome of a single API call. It is either a Success or a
// Failure; callers type-switch on it:
//
//	switch r := res.(type) {
//	case devmarks.Success[[]devmarks.Bookmark]:
//		use(r.Data)
//	case devmarks.Failure[[]devmarks.Bookmark]:
//		show(r.StatusCode, r.Message)
//	}
type Result[T any] interface {
	// Status is the HTTP status code the server answered with.
	Status() int
	// OK reports whether the status is in the 2xx range.
	OK() bool

	// sealed ties the variant to T, so a Success[Folder] is not a
	// Result[Bookmark].
	sealed(T)
}

// Success carries the decoded payload of a 2xx response.
type Success[T any] struct {
	StatusCode int
	Data       T
	// Raw is the underlying response. Its body has already been consumed.
	Raw *http.Response
}

func (s Success[T]) Status() int { return s.StatusCode }
func (s Success[T]) OK() bool    { return true }
func (Success[T]) sealed(T)      {}

// Failure describes a response the server answered with a non-2xx status.
type Failure[T any] struct {
	StatusCode int
	Err        *ResponseError
	Message    string
}

func (f Failure[T]) Status() int { return f.StatusCode }
func (f Failure[T]) OK() bool    { return false }
func (Failure[T]) sealed(T)      {}

// Response is what a sub-client call yields when the server answered with a
// 2xx status and the body decoded into T.
type Response[T any] struct {
	StatusCode int
	Data       T
	Raw        *http.Response
}

// Operation is a pending API call.
type Operation[T any] func(ctx context.Context) (*Response[T], error)

// Do runs op once and normalizes its outcome.
func Do[T any](ctx context.Context, op Operation[T]) (Result[T], error) {
	return Normalize(op(ctx))
}

// Normalize folds the outcome of one sub-client call into a Result.
//
// A server-reported failure (err carries a *ResponseError) becomes a Failure
// and no error is returned. Anything without a response behind it, such as
// a dial error, a cancelled context or an undecodable body, is returned as an
// error wrapping ErrMalformedResponse; it is never turned into a Failure.
func Normalize[T any](resp *Response[T], err error) (Result[T], error) {
	if err != nil {
		var re *ResponseError
		if errors.As(err, &re) {
			return failureOf[T](re), nil
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: no response", ErrMalformedResponse)
	}
	if !isSuccessStatus(resp.StatusCode) {
		return failureOf[T](&ResponseError{
			StatusCode: resp.StatusCode,
			Message:    statusMessage(resp.StatusCode),
			Raw:        resp.Raw,
		}), nil
	}
	return Success[T]{StatusCode: resp.StatusCode, Data: resp.Data, Raw: resp.Raw}, nil
}

func failureOf[T any](re *ResponseError) Failure[T] {
	return Failure[T]{StatusCode: re.StatusCode, Err: re, Message: re.Message}
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code <= 299
}
