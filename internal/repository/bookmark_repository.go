package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/leggettc18/devmarks/internal/models"
	appErr "github.com/leggettc18/devmarks/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookmarkEmbeds are the relations ?embed= may load on a bookmark.
var BookmarkEmbeds = map[string]string{
	"owner":   "Owner",
	"folders": "Folders",
}

type BookmarkRepository interface {
	BaseRepository[models.Bookmark]
	ListByOwner(ctx context.Context, ownerID uuid.UUID, embed []string) ([]models.Bookmark, error)
	GetWithEmbeds(ctx context.Context, id uuid.UUID, embed []string, dest *models.Bookmark) error
	// UpdateDetails writes the user-editable columns of b and nothing else.
	UpdateDetails(ctx context.Context, b *models.Bookmark) error
	UpdateLinkStatus(ctx context.Context, id uuid.UUID, status models.LinkStatus) error
}

type bookmarkRepository struct {
	BaseRepository[models.Bookmark]
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{BaseRepository: NewBaseRepository[models.Bookmark](db), db: db}
}

func (r *bookmarkRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, embed []string) ([]models.Bookmark, error) {
	out := []models.Bookmark{}
	q := preload(r.db.WithContext(ctx), embed, BookmarkEmbeds)
	if err := q.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list bookmarks by owner failed")
	}
	return out, nil
}

func (r *bookmarkRepository) GetWithEmbeds(ctx context.Context, id uuid.UUID, embed []string, dest *models.Bookmark) error {
	q := preload(r.db.WithContext(ctx), embed, BookmarkEmbeds)
	if err := q.First(dest, "id = ?", id).Error; err != nil {
		return notFoundOr(err, "bookmark not found", "get bookmark failed")
	}
	return nil
}

func (r *bookmarkRepository) UpdateDetails(ctx context.Context, b *models.Bookmark) error {
	res := r.db.WithContext(ctx).Model(b).
		Select("name", "url", "color", "updated_at").
		Updates(b)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update bookmark failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "bookmark not found")
	}
	return nil
}

func (r *bookmarkRepository) UpdateLinkStatus(ctx context.Context, id uuid.UUID, status models.LinkStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Bookmark{}).Where("id = ?", id).
		Update("link_status", datatypes.NewJSONType(status))
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update link status failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "bookmark not found")
	}
	return nil
}
