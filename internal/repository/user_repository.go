package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/leggettc18/devmarks/internal/models"
	"gorm.io/gorm"
)

// UserEmbeds are the relations ?embed= may load on a user.
var UserEmbeds = map[string]string{
	"bookmarks": "Bookmarks",
	"folders":   "Folders",
}

type UserRepository interface {
	BaseRepository[models.User]
	GetByEmail(ctx context.Context, email string, dest *models.User) error
	GetWithEmbeds(ctx context.Context, id uuid.UUID, embed []string, dest *models.User) error
}

type userRepository struct {
	BaseRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[models.User](db), db: db}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(dest).Error; err != nil {
		return notFoundOr(err, "user not found", "get user by email failed")
	}
	return nil
}

func (r *userRepository) GetWithEmbeds(ctx context.Context, id uuid.UUID, embed []string, dest *models.User) error {
	q := preload(r.db.WithContext(ctx), embed, UserEmbeds)
	if err := q.First(dest, "id = ?", id).Error; err != nil {
		return notFoundOr(err, "user not found", "get user failed")
	}
	return nil
}
