package job_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverhalide/studio-api/internal/cleanup"
	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/models"
	usecase "github.com/silverhalide/studio-api/internal/usecase/job"
)

type fakeStore struct {
	mu        sync.Mutex
	uploads   []string
	deletes   []string
	uploadErr error
	deleteErr error
}

func (f *fakeStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, key)
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, key)
	return f.deleteErr
}

func (f *fakeStore) deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deletes...)
}

func TestDeleteJob_RemovesRowAndQueuesFiles(t *testing.T) {
	repo := newFakeRepo()
	repo.put(models.Job{
		ID:       7,
		StudioID: 1,
		Documents: []models.JobDocument{
			{ID: "a", JobID: 7, StorageKey: "jobs/7/contracts/one.pdf"},
			{ID: "b", JobID: 7, StorageKey: "jobs/7/invoices/two.pdf"},
		},
	})

	store := &fakeStore{}
	uc := usecase.NewDeleteJob(repo, cleanup.NewDispatcher(store), newTestAudit(t))

	require.NoError(t, uc.Execute(context.Background(), 1, 2, 7))

	assert.Equal(t, []uint{7}, repo.deleted)

	assert.Eventually(t, func() bool {
		return len(store.deleted()) == 2
	}, 2*time.Second, 10*time.Millisecond, "both files handed to storage cleanup")
}

func TestDeleteJob_StorageFailureDoesNotUndoDelete(t *testing.T) {
	repo := newFakeRepo()
	repo.put(models.Job{
		ID:       7,
		StudioID: 1,
		Documents: []models.JobDocument{
			{ID: "a", JobID: 7, StorageKey: "jobs/7/contracts/one.pdf"},
		},
	})

	store := &fakeStore{deleteErr: errors.New("bucket unreachable")}
	uc := usecase.NewDeleteJob(repo, cleanup.NewDispatcher(store), newTestAudit(t))

	require.NoError(t, uc.Execute(context.Background(), 1, 2, 7), "storage trouble never surfaces")
	assert.Equal(t, []uint{7}, repo.deleted, "the row is gone regardless")

	assert.Eventually(t, func() bool {
		return len(store.deleted()) >= 1
	}, 2*time.Second, 10*time.Millisecond, "the delete was at least attempted")
}

func TestDeleteJob_NotFound(t *testing.T) {
	uc := usecase.NewDeleteJob(newFakeRepo(), cleanup.NewDispatcher(&fakeStore{}), newTestAudit(t))

	err := uc.Execute(context.Background(), 1, 2, 99)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "job_not_found", code)
}
