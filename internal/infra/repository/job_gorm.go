package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/silverhalide/studio-api/internal/domain/job"
	"github.com/silverhalide/studio-api/internal/models"
)

type JobGormRepository struct {
	db *gorm.DB
}

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db}
}

// --------------------------------------------------
// Job
// --------------------------------------------------

func (r *JobGormRepository) ListJobs(
	ctx context.Context,
	studioID uint,
) ([]models.Job, error) {

	jobs := []models.Job{}
	if err := r.db.WithContext(ctx).
		Preload("Documents").
		Preload("CustomFields").
		Where("studio_id = ?", studioID).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}

	for i := range jobs {
		domain.Normalize(&jobs[i])
	}

	return jobs, nil
}

func (r *JobGormRepository) GetJob(
	ctx context.Context,
	studioID uint,
	jobID uint,
) (*models.Job, error) {

	var j models.Job
	err := r.db.WithContext(ctx).
		Preload("Documents").
		Preload("CustomFields").
		Where("id = ? AND studio_id = ?", jobID, studioID).
		First(&j).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	domain.Normalize(&j)
	return &j, nil
}

func (r *JobGormRepository) CreateJob(
	ctx context.Context,
	j *models.Job,
) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *JobGormRepository) UpdateJobFields(
	ctx context.Context,
	studioID uint,
	jobID uint,
	patch map[string]any,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ? AND studio_id = ?", jobID, studioID).
		Updates(patch).Error
}

func (r *JobGormRepository) DeleteJob(
	ctx context.Context,
	studioID uint,
	jobID uint,
) error {
	// document and custom-field rows go with the job via FK cascade
	return r.db.WithContext(ctx).
		Where("id = ? AND studio_id = ?", jobID, studioID).
		Delete(&models.Job{}).Error
}

func (r *JobGormRepository) UpsertJob(
	ctx context.Context,
	j *models.Job,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "studio_id"},
				{Name: "client_email"},
				{Name: "name"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"type", "lead_source", "location", "notes",
				"main_shoot_date", "main_shoot_end_date",
				"client_name", "client_phone",
				"status", "total_amount", "paid_amount", "payment_status",
				"updated_at",
			}),
		}).
		Create(j).Error
}

// --------------------------------------------------
// Documents
// --------------------------------------------------

func (r *JobGormRepository) ListDocuments(
	ctx context.Context,
	jobID uint,
) ([]models.JobDocument, error) {

	docs := []models.JobDocument{}
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("uploaded_at ASC").
		Find(&docs).Error; err != nil {
		return nil, err
	}

	return docs, nil
}

func (r *JobGormRepository) GetDocument(
	ctx context.Context,
	jobID uint,
	docID string,
) (*models.JobDocument, error) {

	var doc models.JobDocument
	err := r.db.WithContext(ctx).
		Where("id = ? AND job_id = ?", docID, jobID).
		First(&doc).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

func (r *JobGormRepository) AddDocument(
	ctx context.Context,
	doc *models.JobDocument,
) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *JobGormRepository) DeleteDocument(
	ctx context.Context,
	jobID uint,
	docID string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND job_id = ?", docID, jobID).
		Delete(&models.JobDocument{}).Error
}

// --------------------------------------------------
// Custom fields
// --------------------------------------------------

func (r *JobGormRepository) ReplaceCustomFields(
	ctx context.Context,
	jobID uint,
	fields []models.JobCustomField,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("job_id = ?", jobID).
			Delete(&models.JobCustomField{}).Error; err != nil {
			return err
		}

		if len(fields) == 0 {
			return nil
		}

		for i := range fields {
			fields[i].JobID = jobID
		}

		return tx.Create(&fields).Error
	})
}

// Compile-time check
var _ domain.Repository = (*JobGormRepository)(nil)
