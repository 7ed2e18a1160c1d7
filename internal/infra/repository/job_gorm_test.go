package repository_test

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/silverhalide/studio-api/internal/infra/repository"
	"github.com/silverhalide/studio-api/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
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

	mock.MatchExpectationsInOrder(false)
	return gdb, mock
}

func TestListJobs_EmptyBackendYieldsEmptySlice(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := repository.NewJobGormRepository(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "studio_id", "name", "status"}))

	jobs, err := repo.ListJobs(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, jobs, "callers iterate without a nil check")
	assert.Empty(t, jobs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJob_MissingRowIsNilNil(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := repository.NewJobGormRepository(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	j, err := repo.GetJob(context.Background(), 1, 9)

	require.NoError(t, err, "absence is not an error")
	assert.Nil(t, j)
}

func TestGetJob_BlankNameSynthesized(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := repository.NewJobGormRepository(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "studio_id", "name", "status"}).
			AddRow(7, 1, "", "active"))
	mock.ExpectQuery(`SELECT (.+) FROM "job_custom_fields"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_id", "key", "value"}))
	mock.ExpectQuery(`SELECT (.+) FROM "job_documents"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_id", "doc_type"}))

	j, err := repo.GetJob(context.Background(), 1, 7)
	require.NoError(t, err)
	require.NotNil(t, j)

	assert.Equal(t, "Untitled Job (7)", j.Name)
}

func TestUpdateJobFields_ScopedUpdate(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := repository.NewJobGormRepository(gdb)

	mock.ExpectExec(`UPDATE "jobs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateJobFields(context.Background(), 1, 7, map[string]any{
		"status": "cancelled",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteJob_SingleStatement(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := repository.NewJobGormRepository(gdb)

	// child rows ride on the FK cascade, so one statement is all there is
	mock.ExpectExec(`DELETE FROM "jobs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteJob(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertJob_OnConflictKey(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := repository.NewJobGormRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "jobs" (.+) ON CONFLICT \("studio_id","client_email","name"\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	j := models.Job{
		StudioID:    1,
		Name:        "Miller Wedding",
		ClientEmail: "anna@example.com",
		Status:      "active",
	}
	err := repo.UpsertJob(context.Background(), &j)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDocuments_OrderedByUploadTime(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := repository.NewJobGormRepository(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "job_documents" (.+)ORDER BY uploaded_at ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_id", "doc_type", "name"}).
			AddRow("a", 7, "contracts", "first.pdf").
			AddRow("b", 7, "contracts", "second.pdf"))

	docs, err := repo.ListDocuments(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "first.pdf", docs[0].Name)
	assert.Equal(t, "second.pdf", docs[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
