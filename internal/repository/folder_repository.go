package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/leggettc18/devmarks/internal/models"
	appErr "github.com/leggettc18/devmarks/pkg/errors"
	"gorm.io/gorm"
)

// FolderEmbeds are the relations ?embed= may load on a folder.
var FolderEmbeds = map[string]string{
	"owner":     "Owner",
	"parent":    "Parent",
	"bookmarks": "Bookmarks",
}

type FolderRepository interface {
	BaseRepository[models.Folder]
	ListByOwner(ctx context.Context, ownerID uuid.UUID, embed []string) ([]models.Folder, error)
	GetWithEmbeds(ctx context.Context, id uuid.UUID, embed []string, dest *models.Folder) error
	AddBookmark(ctx context.Context, folder *models.Folder, bookmark *models.Bookmark) error
}

type folderRepository struct {
	BaseRepository[models.Folder]
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &folderRepository{BaseRepository: NewBaseRepository[models.Folder](db), db: db}
}

func (r *folderRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, embed []string) ([]models.Folder, error) {
	out := []models.Folder{}
	q := preload(r.db.WithContext(ctx), embed, FolderEmbeds)
	if err := q.Where("owner_id = ?", ownerID).Order("name ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list folders by owner failed")
	}
	return out, nil
}

func (r *folderRepository) GetWithEmbeds(ctx context.Context, id uuid.UUID, embed []string, dest *models.Folder) error {
	q := preload(r.db.WithContext(ctx), embed, FolderEmbeds)
	if err := q.First(dest, "id = ?", id).Error; err != nil {
		return notFoundOr(err, "folder not found", "get folder failed")
	}
	return nil
}

// AddBookmark links bookmark into folder. Linking twice is a no-op.
func (r *folderRepository) AddBookmark(ctx context.Context, folder *models.Folder, bookmark *models.Bookmark) error {
	if err := r.db.WithContext(ctx).Model(folder).Omit("Bookmarks.*").Association("Bookmarks").Append(bookmark); err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "add bookmark to folder failed")
	}
	return nil
}
