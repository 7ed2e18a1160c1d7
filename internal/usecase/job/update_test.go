package job_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/models"
	usecase "github.com/silverhalide/studio-api/internal/usecase/job"
)

func TestBuildPatch_SparseFields(t *testing.T) {
	now := time.Now().UTC()
	status := "completed"

	patch := usecase.BuildPatch(usecase.UpdateJobInput{Status: &status}, now)

	require.Len(t, patch, 2, "only the provided field plus updated_at")
	assert.Equal(t, "completed", patch["status"])
	assert.Equal(t, now, patch["updated_at"])
}

func TestBuildPatch_AlwaysRefreshesUpdatedAt(t *testing.T) {
	now := time.Now().UTC()

	patch := usecase.BuildPatch(usecase.UpdateJobInput{}, now)

	require.Len(t, patch, 1)
	assert.Equal(t, now, patch["updated_at"])
}

func TestBuildPatch_ZeroValuesAreDeliberate(t *testing.T) {
	now := time.Now().UTC()
	empty := ""
	zero := 0.0

	patch := usecase.BuildPatch(usecase.UpdateJobInput{
		Notes:       &empty,
		TotalAmount: &zero,
	}, now)

	require.Len(t, patch, 3)
	assert.Equal(t, "", patch["notes"], "explicit empty string clears the field")
	assert.Equal(t, 0.0, patch["total_amount"])
}

func TestUpdateJob_PatchesOnlyProvidedColumns(t *testing.T) {
	repo := newFakeRepo()
	repo.put(models.Job{ID: 7, StudioID: 1, Name: "Miller Wedding", Notes: "keep me", Status: "active"})

	uc := usecase.NewUpdateJob(repo, newTestAudit(t))

	status := "cancelled"
	updated, err := uc.Execute(context.Background(), usecase.UpdateJobInput{
		StudioID: 1,
		UserID:   2,
		JobID:    7,
		Status:   &status,
	})
	require.NoError(t, err)

	require.Len(t, repo.patches, 1)
	patch := repo.patches[0]
	assert.Len(t, patch, 2)
	assert.Equal(t, "cancelled", patch["status"])
	assert.Contains(t, patch, "updated_at")

	assert.Equal(t, "keep me", updated.Notes, "untouched columns survive")
	assert.Equal(t, "cancelled", updated.Status)
}

func TestUpdateJob_RejectsUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.put(models.Job{ID: 7, StudioID: 1, Status: "active"})

	uc := usecase.NewUpdateJob(repo, newTestAudit(t))

	bogus := "archived"
	_, err := uc.Execute(context.Background(), usecase.UpdateJobInput{
		StudioID: 1,
		JobID:    7,
		Status:   &bogus,
	})

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "invalid_status", code)
	assert.Empty(t, repo.patches, "nothing written")
}

func TestUpdateJob_NotFound(t *testing.T) {
	uc := usecase.NewUpdateJob(newFakeRepo(), newTestAudit(t))

	name := "x"
	_, err := uc.Execute(context.Background(), usecase.UpdateJobInput{
		StudioID: 1,
		JobID:    99,
		Name:     &name,
	})

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "job_not_found", code)
}

func TestUpdateJob_ScopedToStudio(t *testing.T) {
	repo := newFakeRepo()
	repo.put(models.Job{ID: 7, StudioID: 2, Status: "active"})

	uc := usecase.NewUpdateJob(repo, newTestAudit(t))

	name := "x"
	_, err := uc.Execute(context.Background(), usecase.UpdateJobInput{
		StudioID: 1, // other tenant
		JobID:    7,
		Name:     &name,
	})

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "job_not_found", code)
}
