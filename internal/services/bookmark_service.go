package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/leggettc18/devmarks/internal/models"
	"github.com/leggettc18/devmarks/internal/queue"
	"github.com/leggettc18/devmarks/internal/repository"
	appErr "github.com/leggettc18/devmarks/pkg/errors"
	"github.com/leggettc18/devmarks/pkg/logger"
	"go.uber.org/zap"
)

// TaskEnqueuer is the part of *asynq.Client the services use.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type BookmarkService interface {
	List(ctx context.Context, ownerID uuid.UUID, embed []string) ([]models.Bookmark, error)
	Get(ctx context.Context, bookmarkID, ownerID uuid.UUID, embed []string) (*models.Bookmark, error)
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateBookmarkInput) (*models.Bookmark, error)
	Update(ctx context.Context, bookmarkID, ownerID uuid.UUID, input *UpdateBookmarkInput) (*models.Bookmark, error)
	Delete(ctx context.Context, bookmarkID, ownerID uuid.UUID) error
	// RecordLinkStatus stores the outcome of a link check. It does not check ownership.
	RecordLinkStatus(ctx context.Context, bookmarkID uuid.UUID, status models.LinkStatus) error
}

type CreateBookmarkInput struct {
	Name  string
	URL   string
	Color *string
}

// UpdateBookmarkInput holds the fields to change; nil means unchanged.
type UpdateBookmarkInput struct {
	Name  *string
	URL   *string
	Color *string
}

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	enqueuer     TaskEnqueuer
}

var _ BookmarkService = (*bookmarkService)(nil)

// NewBookmarkService builds the service. enqueuer may be nil, in which case
// no link checks are scheduled.
func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, enqueuer TaskEnqueuer) BookmarkService {
	return &bookmarkService{bookmarkRepo: bookmarkRepo, enqueuer: enqueuer}
}

func (s *bookmarkService) List(ctx context.Context, ownerID uuid.UUID, embed []string) ([]models.Bookmark, error) {
	logger.L().Debug("list bookmarks", zap.String("user_id", ownerID.String()), zap.Strings("embed", embed))
	return s.bookmarkRepo.ListByOwner(ctx, ownerID, embed)
}

func (s *bookmarkService) Get(ctx context.Context, bookmarkID, ownerID uuid.UUID, embed []string) (*models.Bookmark, error) {
	var b models.Bookmark
	if err := s.bookmarkRepo.GetWithEmbeds(ctx, bookmarkID, embed, &b); err != nil {
		return nil, err
	}
	if b.OwnerID != ownerID {
		return nil, appErr.New(appErr.CodeForbidden, "bookmark belongs to another user")
	}
	return &b, nil
}

func (s *bookmarkService) Create(ctx context.Context, ownerID uuid.UUID, input *CreateBookmarkInput) (*models.Bookmark, error) {
	b := &models.Bookmark{
		OwnerID: ownerID,
		Name:    strings.TrimSpace(input.Name),
		URL:     strings.TrimSpace(input.URL),
		Color:   input.Color,
	}
	if err := s.bookmarkRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	logger.L().Info("bookmark created", zap.String("bookmark_id", b.ID.String()), zap.String("user_id", ownerID.String()))

	s.scheduleLinkCheck(ctx, b.ID)
	return b, nil
}

func (s *bookmarkService) Update(ctx context.Context, bookmarkID, ownerID uuid.UUID, input *UpdateBookmarkInput) (*models.Bookmark, error) {
	var b models.Bookmark
	if err := s.bookmarkRepo.GetByID(ctx, bookmarkID, &b); err != nil {
		return nil, err
	}
	if b.OwnerID != ownerID {
		return nil, appErr.New(appErr.CodeForbidden, "bookmark belongs to another user")
	}

	urlChanged := false
	if input.Name != nil {
		b.Name = strings.TrimSpace(*input.Name)
	}
	if input.URL != nil {
		u := strings.TrimSpace(*input.URL)
		urlChanged = u != b.URL
		b.URL = u
	}
	if input.Color != nil {
		b.Color = input.Color
	}

	if err := s.bookmarkRepo.UpdateDetails(ctx, &b); err != nil {
		return nil, err
	}
	logger.L().Info("bookmark updated", zap.String("bookmark_id", b.ID.String()), zap.String("user_id", ownerID.String()))

	if urlChanged {
		s.scheduleLinkCheck(ctx, b.ID)
	}
	return &b, nil
}

func (s *bookmarkService) Delete(ctx context.Context, bookmarkID, ownerID uuid.UUID) error {
	var b models.Bookmark
	if err := s.bookmarkRepo.GetByID(ctx, bookmarkID, &b); err != nil {
		return err
	}
	if b.OwnerID != ownerID {
		return appErr.New(appErr.CodeForbidden, "bookmark belongs to another user")
	}
	if err := s.bookmarkRepo.Delete(ctx, bookmarkID); err != nil {
		return err
	}
	logger.L().Info("bookmark deleted", zap.String("bookmark_id", bookmarkID.String()), zap.String("user_id", ownerID.String()))
	return nil
}

func (s *bookmarkService) RecordLinkStatus(ctx context.Context, bookmarkID uuid.UUID, status models.LinkStatus) error {
	return s.bookmarkRepo.UpdateLinkStatus(ctx, bookmarkID, status)
}

// scheduleLinkCheck enqueues a link check. Failures are logged only; the
// bookmark itself is already stored.
func (s *bookmarkService) scheduleLinkCheck(ctx context.Context, bookmarkID uuid.UUID) {
	if s.enqueuer == nil {
		logger.L().Debug("task queue not configured, skipping link check", zap.String("bookmark_id", bookmarkID.String()))
		return
	}
	task, err := queue.NewLinkCheckTask(bookmarkID)
	if err != nil {
		logger.L().Error("build link check task failed", zap.Error(err), zap.String("bookmark_id", bookmarkID.String()))
		return
	}
	if _, err := s.enqueuer.EnqueueContext(ctx, task); err != nil {
		logger.L().Warn("enqueue link check failed", zap.Error(err), zap.String("bookmark_id", bookmarkID.String()))
	}
}
