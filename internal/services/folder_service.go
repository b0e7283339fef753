package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/leggettc18/devmarks/internal/models"
	"github.com/leggettc18/devmarks/internal/repository"
	appErr "github.com/leggettc18/devmarks/pkg/errors"
	"github.com/leggettc18/devmarks/pkg/logger"
	"go.uber.org/zap"
)

type FolderService interface {
	List(ctx context.Context, ownerID uuid.UUID, embed []string) ([]models.Folder, error)
	Get(ctx context.Context, folderID, ownerID uuid.UUID, embed []string) (*models.Folder, error)
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateFolderInput) (*models.Folder, error)
	// AddBookmark files a bookmark into a folder; the caller must own both.
	AddBookmark(ctx context.Context, folderID, bookmarkID, ownerID uuid.UUID) (*models.Folder, error)
}

type CreateFolderInput struct {
	Name     string
	Color    string
	ParentID *uuid.UUID
}

type folderService struct {
	folderRepo   repository.FolderRepository
	bookmarkRepo repository.BookmarkRepository
}

var _ FolderService = (*folderService)(nil)

func NewFolderService(folderRepo repository.FolderRepository, bookmarkRepo repository.BookmarkRepository) FolderService {
	return &folderService{folderRepo: folderRepo, bookmarkRepo: bookmarkRepo}
}

func (s *folderService) List(ctx context.Context, ownerID uuid.UUID, embed []string) ([]models.Folder, error) {
	logger.L().Debug("list folders", zap.String("user_id", ownerID.String()), zap.Strings("embed", embed))
	return s.folderRepo.ListByOwner(ctx, ownerID, embed)
}

func (s *folderService) Get(ctx context.Context, folderID, ownerID uuid.UUID, embed []string) (*models.Folder, error) {
	var f models.Folder
	if err := s.folderRepo.GetWithEmbeds(ctx, folderID, embed, &f); err != nil {
		return nil, err
	}
	if f.OwnerID != ownerID {
		return nil, appErr.New(appErr.CodeForbidden, "folder belongs to another user")
	}
	return &f, nil
}

func (s *folderService) Create(ctx context.Context, ownerID uuid.UUID, input *CreateFolderInput) (*models.Folder, error) {
	if input.ParentID != nil {
		var parent models.Folder
		if err := s.folderRepo.GetByID(ctx, *input.ParentID, &parent); err != nil {
			if appErr.IsCode(err, appErr.CodeNotFound) {
				return nil, appErr.Wrap(err, appErr.CodeValidation, "parent folder does not exist")
			}
			return nil, err
		}
		if parent.OwnerID != ownerID {
			return nil, appErr.New(appErr.CodeForbidden, "parent folder belongs to another user")
		}
	}

	f := &models.Folder{
		OwnerID:  ownerID,
		Name:     strings.TrimSpace(input.Name),
		Color:    strings.TrimSpace(input.Color),
		ParentID: input.ParentID,
	}
	if err := s.folderRepo.Create(ctx, f); err != nil {
		return nil, err
	}
	logger.L().Info("folder created", zap.String("folder_id", f.ID.String()), zap.String("user_id", ownerID.String()))
	return f, nil
}

func (s *folderService) AddBookmark(ctx context.Context, folderID, bookmarkID, ownerID uuid.UUID) (*models.Folder, error) {
	var f models.Folder
	if err := s.folderRepo.GetByID(ctx, folderID, &f); err != nil {
		return nil, err
	}
	if f.OwnerID != ownerID {
		return nil, appErr.New(appErr.CodeForbidden, "folder belongs to another user")
	}

	var b models.Bookmark
	if err := s.bookmarkRepo.GetByID(ctx, bookmarkID, &b); err != nil {
		return nil, err
	}
	if b.OwnerID != ownerID {
		return nil, appErr.New(appErr.CodeForbidden, "bookmark belongs to another user")
	}

	if err := s.folderRepo.AddBookmark(ctx, &f, &b); err != nil {
		return nil, err
	}
	logger.L().Info("bookmark added to folder",
		zap.String("folder_id", folderID.String()),
		zap.String("bookmark_id", bookmarkID.String()),
		zap.String("user_id", ownerID.String()),
	)

	var out models.Folder
	if err := s.folderRepo.GetWithEmbeds(ctx, folderID, []string{"bookmarks"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
