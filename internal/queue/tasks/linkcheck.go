package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/leggettc18/devmarks/internal/models"
	"github.com/leggettc18/devmarks/internal/queue"
	appErr "github.com/leggettc18/devmarks/pkg/errors"
	"github.com/leggettc18/devmarks/pkg/logger"
	"go.uber.org/zap"
)

const linkCheckUserAgent = "devmarks-linkcheck/1.0"

var (
	errBlockedAddress    = errors.New("destination address not allowed")
	errUnsupportedScheme = errors.New("unsupported URL scheme")

	// sharedAddressSpace is the carrier-grade NAT range, not covered by IsPrivate.
	sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")
)

type bookmarkGetter interface {
	GetByID(ctx context.Context, id any, dest *models.Bookmark) error
}

type linkStatusRecorder interface {
	RecordLinkStatus(ctx context.Context, bookmarkID uuid.UUID, status models.LinkStatus) error
}

// LinkCheckTaskHandler handles queue.TypeLinkCheck tasks.
type LinkCheckTaskHandler struct {
	bookmarks bookmarkGetter
	recorder  linkStatusRecorder
	client    *http.Client
	now       func() time.Time
}

// NewLinkCheckTaskHandler builds the handler. Each probe is bounded by timeout.
func NewLinkCheckTaskHandler(bookmarks bookmarkGetter, recorder linkStatusRecorder, timeout time.Duration) *LinkCheckTaskHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &LinkCheckTaskHandler{
		bookmarks: bookmarks,
		recorder:  recorder,
		client:    newCheckClient(timeout, publicOnly),
		now:       time.Now,
	}
}

func (h *LinkCheckTaskHandler) HandleLinkCheck(ctx context.Context, t *asynq.Task) error {
	var p queue.LinkCheckPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.L().Error("invalid link check payload", zap.Error(err))
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}
	id, err := uuid.Parse(p.BookmarkID)
	if err != nil {
		logger.L().Error("invalid bookmark id in task", zap.String("bookmark_id", p.BookmarkID), zap.Error(err))
		return fmt.Errorf("parse bookmark id: %v: %w", err, asynq.SkipRetry)
	}

	var b models.Bookmark
	if err := h.bookmarks.GetByID(ctx, id, &b); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			logger.L().Info("bookmark gone, skipping link check", zap.String("bookmark_id", id.String()))
			return nil
		}
		return err
	}

	status := h.Check(ctx, b.URL)
	logger.L().Info("link checked",
		zap.String("bookmark_id", id.String()),
		zap.Int("status", status.StatusCode),
		zap.Bool("reachable", status.Reachable),
	)
	if err := h.recorder.RecordLinkStatus(ctx, id, status); err != nil {
		logger.L().Error("record link status failed", zap.String("bookmark_id", id.String()), zap.Error(err))
		return err
	}
	return nil
}

// Check probes rawURL with HEAD, falling back to GET when the server does not
// allow HEAD. Any status below 400 counts as reachable. Only http and https
// URLs resolving to public addresses are contacted.
func (h *LinkCheckTaskHandler) Check(ctx context.Context, rawURL string) models.LinkStatus {
	var code int
	err := checkScheme(rawURL)
	if err == nil {
		code, err = h.probe(ctx, http.MethodHead, rawURL)
	}
	if err == nil && (code == http.StatusMethodNotAllowed || code == http.StatusNotImplemented) {
		code, err = h.probe(ctx, http.MethodGet, rawURL)
	}

	checkedAt := h.now().UTC()
	if err != nil {
		return models.LinkStatus{Error: err.Error(), CheckedAt: &checkedAt}
	}
	return models.LinkStatus{StatusCode: code, Reachable: code < 400, CheckedAt: &checkedAt}
}

func (h *LinkCheckTaskHandler) probe(ctx context.Context, method, target string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", linkCheckUserAgent)
	resp, err := h.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	return resp.StatusCode, nil
}

func checkScheme(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", errUnsupportedScheme, u.Scheme)
	}
	return nil
}

// newCheckClient builds the probing client. control runs on every dial,
// after name resolution, so redirects and DNS answers are covered too.
func newCheckClient(timeout time.Duration, control func(network, address string, c syscall.RawConn) error) *http.Client {
	dialer := &net.Dialer{Timeout: timeout, Control: control}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               nil,
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: timeout,
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// publicOnly refuses connections to loopback, private, link-local and other
// non-public addresses.
func publicOnly(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", errBlockedAddress, host)
	}
	ip = ip.Unmap()
	if !ip.IsGlobalUnicast() || ip.IsPrivate() || sharedAddressSpace.Contains(ip) {
		return fmt.Errorf("%w: %s", errBlockedAddress, ip)
	}
	return nil
}
