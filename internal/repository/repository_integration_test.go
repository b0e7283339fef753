//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/leggettc18/devmarks/internal/models"
	appErr "github.com/leggettc18/devmarks/pkg/errors"
	"github.com/leggettc18/devmarks/pkg/database"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("devmarks"),
		tcpostgres.WithUsername("devmarks"),
		tcpostgres.WithPassword("devmarks"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(ctr) })

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.OpenPostgres(ctx, dsn, database.Options{Logger: zap.NewNop()})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, db, &models.User{}, &models.Folder{}, &models.Bookmark{}))
	return db
}

func TestRepositories_Postgres(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	bookmarks := NewBookmarkRepository(db)
	folders := NewFolderRepository(db)

	owner := &models.User{Email: "a@b.c", PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, owner))
	require.NotEqual(t, uuid.Nil, owner.ID)

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		err := users.Create(ctx, &models.User{Email: "a@b.c", PasswordHash: "y"})
		assert.True(t, appErr.IsCode(err, appErr.CodeConflict), "got %v", err)
	})

	t.Run("lookup by email", func(t *testing.T) {
		var got models.User
		require.NoError(t, users.GetByEmail(ctx, "a@b.c", &got))
		assert.Equal(t, owner.ID, got.ID)

		err := users.GetByEmail(ctx, "nobody@b.c", &got)
		assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	})

	bm := &models.Bookmark{OwnerID: owner.ID, Name: "Go", URL: "https://go.dev"}
	require.NoError(t, bookmarks.Create(ctx, bm))

	t.Run("link status round trip", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, bookmarks.UpdateLinkStatus(ctx, bm.ID, models.LinkStatus{
			StatusCode: 200, Reachable: true, CheckedAt: &now,
		}))

		var got models.Bookmark
		require.NoError(t, bookmarks.GetByID(ctx, bm.ID, &got))
		status := got.LinkStatus.Data()
		assert.Equal(t, 200, status.StatusCode)
		assert.True(t, status.Reachable)
		require.NotNil(t, status.CheckedAt)
		assert.True(t, now.Equal(*status.CheckedAt))
	})

	t.Run("detail update keeps link status", func(t *testing.T) {
		var stale models.Bookmark
		require.NoError(t, bookmarks.GetByID(ctx, bm.ID, &stale))

		now := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, bookmarks.UpdateLinkStatus(ctx, bm.ID, models.LinkStatus{
			StatusCode: 404, CheckedAt: &now,
		}))

		stale.Name = "Go docs"
		require.NoError(t, bookmarks.UpdateDetails(ctx, &stale))

		var got models.Bookmark
		require.NoError(t, bookmarks.GetByID(ctx, bm.ID, &got))
		assert.Equal(t, "Go docs", got.Name)
		assert.Equal(t, 404, got.LinkStatus.Data().StatusCode)
	})

	t.Run("folder membership and embeds", func(t *testing.T) {
		f := &models.Folder{OwnerID: owner.ID, Name: "Work"}
		require.NoError(t, folders.Create(ctx, f))
		require.NoError(t, folders.AddBookmark(ctx, f, bm))
		// Appending twice must not duplicate the join row.
		require.NoError(t, folders.AddBookmark(ctx, f, bm))

		var got models.Folder
		require.NoError(t, folders.GetWithEmbeds(ctx, f.ID, []string{"bookmarks", "owner"}, &got))
		require.Len(t, got.Bookmarks, 1)
		assert.Equal(t, bm.ID, got.Bookmarks[0].ID)
		require.NotNil(t, got.Owner)
		assert.Equal(t, "a@b.c", got.Owner.Email)

		list, err := bookmarks.ListByOwner(ctx, owner.ID, []string{"folders"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Len(t, list[0].Folders, 1)
		assert.Equal(t, "Work", list[0].Folders[0].Name)
	})

	t.Run("user embeds", func(t *testing.T) {
		var got models.User
		require.NoError(t, users.GetWithEmbeds(ctx, owner.ID, []string{"bookmarks", "folders"}, &got))
		require.Len(t, got.Bookmarks, 1)
		require.Len(t, got.Folders, 1)
		assert.Equal(t, "Work", got.Folders[0].Name)
	})

	t.Run("delete then not found", func(t *testing.T) {
		require.NoError(t, bookmarks.Delete(ctx, bm.ID))
		err := bookmarks.Delete(ctx, bm.ID)
		assert.True(t, appErr.IsCode(err, appErr.CodeNotFound))

		list, err := bookmarks.ListByOwner(ctx, owner.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
