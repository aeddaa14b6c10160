package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/todolist/internal/common"
	"github.com/dmitrijs2005/todolist/internal/server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ---- fake repo ----

type fakeTaskRepo struct {
	GetAllRet []*models.Task
	GetAllErr error
	InsertErr error
	UpdateErr error
	DeleteErr error

	LastInserted *models.Task
	LastUpdated  *models.Task
	LastDeleteID string
}

func (f *fakeTaskRepo) GetAllByUser(ctx context.Context, userID int64) ([]*models.Task, error) {
	return f.GetAllRet, f.GetAllErr
}

func (f *fakeTaskRepo) Insert(ctx context.Context, task *models.Task) error {
	f.LastInserted = task
	return f.InsertErr
}

func (f *fakeTaskRepo) Update(ctx context.Context, task *models.Task) error {
	f.LastUpdated = task
	return f.UpdateErr
}

func (f *fakeTaskRepo) DeleteByID(ctx context.Context, userID int64, id string) error {
	f.LastDeleteID = id
	return f.DeleteErr
}

// ---- tests ----

func TestCreate_AssignsUUIDAndOwner(t *testing.T) {
	repo := &fakeTaskRepo{}
	svc := NewTaskService(repo)

	task, err := svc.Create(context.Background(), 5, "buy milk")
	require.NoError(t, err)
	require.Equal(t, int64(5), task.UserID)
	require.Equal(t, "buy milk", task.Title)
	require.False(t, task.Completed)

	_, err = uuid.Parse(task.ID)
	require.NoError(t, err)
	require.Same(t, task, repo.LastInserted)
}

func TestCreate_BlankTitle_Validation(t *testing.T) {
	svc := NewTaskService(&fakeTaskRepo{})

	for _, title := range []string{"", "   ", "\t"} {
		_, err := svc.Create(context.Background(), 5, title)
		require.ErrorIs(t, err, common.ErrorValidation)
	}
}

func TestUpdate_FullReplace(t *testing.T) {
	repo := &fakeTaskRepo{}
	svc := NewTaskService(repo)

	task, err := svc.Update(context.Background(), 5, "id-1", "new title", true)
	require.NoError(t, err)
	require.Equal(t, "new title", task.Title)
	require.True(t, task.Completed)
	require.Equal(t, "id-1", repo.LastUpdated.ID)
	require.Equal(t, int64(5), repo.LastUpdated.UserID)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &fakeTaskRepo{UpdateErr: common.ErrorNotFound}
	svc := NewTaskService(repo)

	_, err := svc.Update(context.Background(), 5, "missing", "t", false)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete_PassesThrough(t *testing.T) {
	repo := &fakeTaskRepo{}
	svc := NewTaskService(repo)

	require.NoError(t, svc.Delete(context.Background(), 5, "id-1"))
	require.Equal(t, "id-1", repo.LastDeleteID)
}

func TestList_ServerOrder(t *testing.T) {
	repo := &fakeTaskRepo{GetAllRet: []*models.Task{
		{ID: "1", Seq: 1},
		{ID: "2", Seq: 2},
	}}
	svc := NewTaskService(repo)

	list, err := svc.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "1", list[0].ID)
}
