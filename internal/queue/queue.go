// Package queue names the background tasks shared by the API and the worker.
package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	// TypeLinkCheck checks that a bookmark's URL still answers.
	TypeLinkCheck = "bookmark:linkcheck"

	linkCheckMaxRetry = 3
	linkCheckTimeout  = time.Minute
)

// LinkCheckPayload is the body of a TypeLinkCheck task.
type LinkCheckPayload struct {
	BookmarkID string `json:"bookmark_id"`
}

// NewLinkCheckTask builds the link check task for a bookmark.
func NewLinkCheckTask(bookmarkID uuid.UUID) (*asynq.Task, error) {
	b, err := json.Marshal(LinkCheckPayload{BookmarkID: bookmarkID.String()})
	if err != nil {
		return nil, fmt.Errorf("marshal link check payload: %w", err)
	}
	return asynq.NewTask(TypeLinkCheck, b, asynq.MaxRetry(linkCheckMaxRetry), asynq.Timeout(linkCheckTimeout)), nil
}

// RedisOpt builds the asynq connection options for a Redis address.
func RedisOpt(addr, password string) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: addr, Password: password}
}
