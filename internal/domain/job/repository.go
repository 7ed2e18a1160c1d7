package job

import (
	"context"

	"github.com/silverhalide/studio-api/internal/models"
)

type ImportStats struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

type Repository interface {
	// -------- Job --------
	ListJobs(
		ctx context.Context,
		studioID uint,
	) ([]models.Job, error)

	// GetJob returns (nil, nil) when the job does not exist.
	GetJob(
		ctx context.Context,
		studioID uint,
		jobID uint,
	) (*models.Job, error)

	CreateJob(
		ctx context.Context,
		j *models.Job,
	) error

	// UpdateJobFields applies a sparse patch of column -> value.
	UpdateJobFields(
		ctx context.Context,
		studioID uint,
		jobID uint,
		patch map[string]any,
	) error

	DeleteJob(
		ctx context.Context,
		studioID uint,
		jobID uint,
	) error

	// UpsertJob inserts or updates on the (studio_id, client_email, name)
	// conflict key. Does not report which branch was taken.
	UpsertJob(
		ctx context.Context,
		j *models.Job,
	) error

	// -------- Documents --------
	ListDocuments(
		ctx context.Context,
		jobID uint,
	) ([]models.JobDocument, error)

	GetDocument(
		ctx context.Context,
		jobID uint,
		docID string,
	) (*models.JobDocument, error)

	AddDocument(
		ctx context.Context,
		doc *models.JobDocument,
	) error

	DeleteDocument(
		ctx context.Context,
		jobID uint,
		docID string,
	) error

	// -------- Custom fields --------
	ReplaceCustomFields(
		ctx context.Context,
		jobID uint,
		fields []models.JobCustomField,
	) error
}
