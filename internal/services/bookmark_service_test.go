package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leggettc18/devmarks/internal/models"
	"github.com/leggettc18/devmarks/internal/queue"
	appErr "github.com/leggettc18/devmarks/pkg/errors"
)

func stubBookmark(repo *mockBookmarkRepo, ctx context.Context, b models.Bookmark) {
	repo.On("GetByID", ctx, b.ID, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(2).(*models.Bookmark) = b
	}).Return(nil)
}

func TestBookmarkService_Create_EnqueuesLinkCheck(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookmarkRepo)
	enq := new(mockEnqueuer)
	svc := NewBookmarkService(repo, enq)

	owner := uuid.New()
	id := uuid.New()
	repo.On("Create", ctx, mock.AnythingOfType("*models.Bookmark")).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Bookmark).ID = id
	}).Return(nil)
	enq.On("EnqueueContext", ctx, mock.MatchedBy(func(task *asynq.Task) bool {
		var p queue.LinkCheckPayload
		return task.Type() == queue.TypeLinkCheck &&
			json.Unmarshal(task.Payload(), &p) == nil &&
			p.BookmarkID == id.String()
	})).Return(&asynq.TaskInfo{ID: "t1"}, nil)

	b, err := svc.Create(ctx, owner, &CreateBookmarkInput{Name: " Docs ", URL: "https://x"})
	require.NoError(t, err)
	require.Equal(t, "Docs", b.Name)
	require.Equal(t, owner, b.OwnerID)
	repo.AssertExpectations(t)
	enq.AssertExpectations(t)
}

func TestBookmarkService_Create_EnqueueFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookmarkRepo)
	enq := new(mockEnqueuer)
	svc := NewBookmarkService(repo, enq)

	repo.On("Create", ctx, mock.Anything).Return(nil)
	enq.On("EnqueueContext", ctx, mock.Anything).Return(nil, errors.New("redis down"))

	_, err := svc.Create(ctx, uuid.New(), &CreateBookmarkInput{Name: "Docs", URL: "https://x"})
	require.NoError(t, err)
}

func TestBookmarkService_Create_WithoutQueue(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookmarkRepo)
	svc := NewBookmarkService(repo, nil)

	repo.On("Create", ctx, mock.Anything).Return(nil)
	_, err := svc.Create(ctx, uuid.New(), &CreateBookmarkInput{Name: "Docs", URL: "https://x"})
	require.NoError(t, err)
}

func TestBookmarkService_Get_Forbidden(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookmarkRepo)
	svc := NewBookmarkService(repo, nil)

	b := models.Bookmark{ID: uuid.New(), OwnerID: uuid.New()}
	repo.On("GetWithEmbeds", ctx, b.ID, []string{"owner"}, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(3).(*models.Bookmark) = b
	}).Return(nil)

	_, err := svc.Get(ctx, b.ID, uuid.New(), []string{"owner"})
	require.True(t, appErr.IsCode(err, appErr.CodeForbidden))

	got, err := svc.Get(ctx, b.ID, b.OwnerID, []string{"owner"})
	require.NoError(t, err)
	require.Equal(t, b.ID, got.ID)
}

func TestBookmarkService_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookmarkRepo)
	enq := new(mockEnqueuer)
	svc := NewBookmarkService(repo, enq)

	b := models.Bookmark{ID: uuid.New(), OwnerID: uuid.New(), Name: "Old", URL: "https://old"}
	stubBookmark(repo, ctx, b)
	repo.On("UpdateDetails", ctx, mock.AnythingOfType("*models.Bookmark")).Return(nil)
	enq.On("EnqueueContext", ctx, mock.Anything).Return(&asynq.TaskInfo{}, nil).Once()

	name := "New"
	url := "https://new"
	got, err := svc.Update(ctx, b.ID, b.OwnerID, &UpdateBookmarkInput{Name: &name, URL: &url})
	require.NoError(t, err)
	require.Equal(t, "New", got.Name)
	require.Equal(t, "https://new", got.URL)
	enq.AssertExpectations(t)
}

func TestBookmarkService_Update_SameURLSkipsLinkCheck(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookmarkRepo)
	enq := new(mockEnqueuer)
	svc := NewBookmarkService(repo, enq)

	b := models.Bookmark{ID: uuid.New(), OwnerID: uuid.New(), Name: "Old", URL: "https://same"}
	stubBookmark(repo, ctx, b)
	repo.On("UpdateDetails", ctx, mock.Anything).Return(nil)

	url := "https://same"
	_, err := svc.Update(ctx, b.ID, b.OwnerID, &UpdateBookmarkInput{URL: &url})
	require.NoError(t, err)
	enq.AssertNotCalled(t, "EnqueueContext", mock.Anything, mock.Anything)
}

func TestBookmarkService_Update_WritesOnlyEditableColumns(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookmarkRepo)
	svc := NewBookmarkService(repo, nil)

	b := models.Bookmark{ID: uuid.New(), OwnerID: uuid.New(), Name: "Old", URL: "https://x"}
	stubBookmark(repo, ctx, b)
	repo.On("UpdateDetails", ctx, mock.MatchedBy(func(got *models.Bookmark) bool {
		return got.ID == b.ID && got.Name == "Renamed" && got.URL == "https://x"
	})).Return(nil)

	name := "Renamed"
	_, err := svc.Update(ctx, b.ID, b.OwnerID, &UpdateBookmarkInput{Name: &name})
	require.NoError(t, err)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBookmarkService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		repo := new(mockBookmarkRepo)
		svc := NewBookmarkService(repo, nil)
		b := models.Bookmark{ID: uuid.New(), OwnerID: uuid.New()}
		stubBookmark(repo, ctx, b)
		repo.On("Delete", ctx, b.ID).Return(nil)

		require.NoError(t, svc.Delete(ctx, b.ID, b.OwnerID))
		repo.AssertExpectations(t)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		repo := new(mockBookmarkRepo)
		svc := NewBookmarkService(repo, nil)
		b := models.Bookmark{ID: uuid.New(), OwnerID: uuid.New()}
		stubBookmark(repo, ctx, b)

		err := svc.Delete(ctx, b.ID, uuid.New())
		require.True(t, appErr.IsCode(err, appErr.CodeForbidden))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing bookmark", func(t *testing.T) {
		repo := new(mockBookmarkRepo)
		svc := NewBookmarkService(repo, nil)
		id := uuid.New()
		repo.On("GetByID", ctx, id, mock.Anything).Return(appErr.New(appErr.CodeNotFound, "entity not found"))

		err := svc.Delete(ctx, id, uuid.New())
		require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
	})
}

func TestBookmarkService_RecordLinkStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookmarkRepo)
	svc := NewBookmarkService(repo, nil)

	id := uuid.New()
	status := models.LinkStatus{StatusCode: 200, Reachable: true}
	repo.On("UpdateLinkStatus", ctx, id, status).Return(nil)

	require.NoError(t, svc.RecordLinkStatus(ctx, id, status))
	repo.AssertExpectations(t)
}
