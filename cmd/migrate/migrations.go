package main

import (
	"context"

	"gorm.io/gorm"

	"github.com/leggettc18/devmarks/internal/models"
	"github.com/leggettc18/devmarks/pkg/database"
)

// registerModels returns all models that need migration
func registerModels() []any {
	return []any{
		&models.User{},
		&models.Folder{},
		&models.Bookmark{},
	}
}

// runMigrations executes all database migrations
func runMigrations(ctx context.Context, db *gorm.DB) error {
	if err := database.Migrate(ctx, db, registerModels()...); err != nil {
		return err
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addOwnerIndexes,
	}

	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}
	return nil
}

// addOwnerIndexes covers the per-owner list queries.
func addOwnerIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_bookmarks_owner_created
		ON bookmarks(owner_id, created_at DESC)
		WHERE deleted_at IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_folders_owner_name
		ON folders(owner_id, name)
		WHERE deleted_at IS NULL`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}
