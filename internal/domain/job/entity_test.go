package job_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverhalide/studio-api/internal/domain/job"
	"github.com/silverhalide/studio-api/internal/models"
)

func TestNormalize_UntitledJob(t *testing.T) {
	j := &models.Job{ID: 42}
	job.Normalize(j)
	assert.Equal(t, "Untitled Job (42)", j.Name)
}

func TestNormalize_KeepsExistingName(t *testing.T) {
	j := &models.Job{ID: 42, Name: "Miller Wedding"}
	job.Normalize(j)
	assert.Equal(t, "Miller Wedding", j.Name)
}

func TestComplete(t *testing.T) {
	now := time.Now().UTC()
	j := &models.Job{Status: string(job.StatusActive)}

	job.Complete(j, now)

	assert.Equal(t, string(job.StatusCompleted), j.Status)
	require.NotNil(t, j.CompletedAt)
	assert.Equal(t, now, *j.CompletedAt)
}

func TestGroupDocuments(t *testing.T) {
	docs := []models.JobDocument{
		{ID: "a", DocType: job.DocTypeContracts},
		{ID: "b", DocType: job.DocTypeInvoices},
		{ID: "c", DocType: job.DocTypeContracts},
		{ID: "d", DocType: "moodboards"},
	}

	grouped := job.GroupDocuments(docs)

	require.Len(t, grouped, 3)
	assert.Equal(t, "a", grouped[job.DocTypeContracts][0].ID)
	assert.Equal(t, "c", grouped[job.DocTypeContracts][1].ID)
	assert.Len(t, grouped[job.DocTypeInvoices], 1)
	assert.Len(t, grouped["moodboards"], 1, "custom doc-type keys pass through")
}

func TestIsKnownStatus(t *testing.T) {
	assert.True(t, job.IsKnownStatus("active"))
	assert.True(t, job.IsKnownStatus("completed"))
	assert.True(t, job.IsKnownStatus("cancelled"))
	assert.False(t, job.IsKnownStatus("archived"))
}
