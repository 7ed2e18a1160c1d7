package job_test

import (
	"context"
	"sync"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/silverhalide/studio-api/internal/audit"
	domain "github.com/silverhalide/studio-api/internal/domain/job"
	"github.com/silverhalide/studio-api/internal/models"
)

// newTestAudit builds a real dispatcher over a mocked connection; audit
// writes are fire-and-forget, so the tests never assert on them.
func newTestAudit(t *testing.T) *audit.Dispatcher {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	return audit.NewDispatcher(audit.New(gdb))
}

// fakeRepo is an in-memory stand-in recording what the use cases asked of it.
type fakeRepo struct {
	mu sync.Mutex

	nextID uint
	jobs   map[uint]*models.Job
	docs   []models.JobDocument

	patches []map[string]any
	upserts []models.Job
	deleted []uint

	addDocErr error
	upsertErr error
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{jobs: map[uint]*models.Job{}}
}

func (f *fakeRepo) put(j models.Job) *models.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[j.ID] = &j
	return f.jobs[j.ID]
}

func (f *fakeRepo) ListJobs(ctx context.Context, studioID uint) ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Job{}
	for _, j := range f.jobs {
		if j.StudioID == studioID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetJob(ctx context.Context, studioID, jobID uint) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[jobID]
	if !ok || j.StudioID != studioID {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (f *fakeRepo) CreateJob(ctx context.Context, j *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	j.ID = f.nextID
	cp := *j
	f.jobs[j.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateJobFields(ctx context.Context, studioID, jobID uint, patch map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patches = append(f.patches, patch)
	if j, ok := f.jobs[jobID]; ok {
		if s, ok := patch["status"].(string); ok {
			j.Status = s
		}
	}
	return nil
}

func (f *fakeRepo) DeleteJob(ctx context.Context, studioID, jobID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.jobs, jobID)
	f.deleted = append(f.deleted, jobID)
	return nil
}

func (f *fakeRepo) UpsertJob(ctx context.Context, j *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, *j)
	return nil
}

func (f *fakeRepo) ListDocuments(ctx context.Context, jobID uint) ([]models.JobDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.JobDocument{}
	for _, d := range f.docs {
		if d.JobID == jobID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetDocument(ctx context.Context, jobID uint, docID string) (*models.JobDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.docs {
		if d.JobID == jobID && d.ID == docID {
			cp := d
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) AddDocument(ctx context.Context, doc *models.JobDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addDocErr != nil {
		return f.addDocErr
	}
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeRepo) DeleteDocument(ctx context.Context, jobID uint, docID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, d := range f.docs {
		if d.JobID == jobID && d.ID == docID {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) ReplaceCustomFields(ctx context.Context, jobID uint, fields []models.JobCustomField) error {
	return nil
}
