package job_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverhalide/studio-api/internal/httperr"
	usecase "github.com/silverhalide/studio-api/internal/usecase/job"
)

func TestBatchImport_CountsAndParsing(t *testing.T) {
	csv := strings.Join([]string{
		"name,client_name,client_email,type,status,main_shoot_date,total_amount",
		"Miller Wedding,Anna Miller,anna@example.com,wedding,active,2026-06-20,1200.50",
		"Baby Shoot,Joe Ray,joe@example.com,newborn,completed,,350",
		"No Email Row,Someone,,portrait,active,,0",
	}, "\n")

	repo := newFakeRepo()
	uc := usecase.NewBatchImportJobs(repo, newTestAudit(t))

	stats, err := uc.Execute(context.Background(), 1, 2, strings.NewReader(csv))
	require.NoError(t, err)

	// Every successful upsert lands on the updated counter; added is never
	// incremented. That is the counting the admin console was built against.
	assert.Equal(t, 0, stats.Added)
	assert.Equal(t, 2, stats.Updated)
	assert.Equal(t, 1, stats.Failed)

	require.Len(t, repo.upserts, 2)
	first := repo.upserts[0]
	assert.Equal(t, uint(1), first.StudioID)
	assert.Equal(t, "Miller Wedding", first.Name)
	assert.Equal(t, "anna@example.com", first.ClientEmail)
	assert.Equal(t, 1200.50, first.TotalAmount)
	require.NotNil(t, first.MainShootDate)
	assert.Equal(t, "2026-06-20", first.MainShootDate.Format("2006-01-02"))

	second := repo.upserts[1]
	assert.Equal(t, "completed", second.Status)
	assert.Nil(t, second.MainShootDate)
}

func TestBatchImport_HeaderOrderDoesNotMatter(t *testing.T) {
	csv := strings.Join([]string{
		"client_email,name",
		"anna@example.com,Miller Wedding",
	}, "\n")

	repo := newFakeRepo()
	uc := usecase.NewBatchImportJobs(repo, newTestAudit(t))

	stats, err := uc.Execute(context.Background(), 1, 2, strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Updated)
	require.Len(t, repo.upserts, 1)
	assert.Equal(t, "Miller Wedding", repo.upserts[0].Name)
}

func TestBatchImport_UnknownStatusFallsBackToActive(t *testing.T) {
	csv := strings.Join([]string{
		"name,client_email,status",
		"X,x@example.com,archived",
	}, "\n")

	repo := newFakeRepo()
	uc := usecase.NewBatchImportJobs(repo, newTestAudit(t))

	_, err := uc.Execute(context.Background(), 1, 2, strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, repo.upserts, 1)
	assert.Equal(t, "active", repo.upserts[0].Status)
}

func TestBatchImport_EmptyBody(t *testing.T) {
	uc := usecase.NewBatchImportJobs(newFakeRepo(), newTestAudit(t))

	_, err := uc.Execute(context.Background(), 1, 2, strings.NewReader(""))

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "invalid_csv", code)
}
