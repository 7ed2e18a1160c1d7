package job

import (
	"context"
	"time"

	"github.com/silverhalide/studio-api/internal/audit"
	domain "github.com/silverhalide/studio-api/internal/domain/job"
	"github.com/silverhalide/studio-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateJobInput struct {
	StudioID uint
	UserID   uint

	Name       string
	Type       string
	LeadSource string
	Location   string
	Notes      string

	MainShootDate    *time.Time
	MainShootEndDate *time.Time

	ClientName  string
	ClientEmail string
	ClientPhone string
	ClientID    *uint

	TotalAmount float64
	PaidAmount  float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateJob struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateJob(repo domain.Repository, auditd *audit.Dispatcher) *CreateJob {
	return &CreateJob{repo: repo, audit: auditd}
}

func (uc *CreateJob) Execute(ctx context.Context, in CreateJobInput) (*models.Job, error) {

	j := &models.Job{
		StudioID:         in.StudioID,
		Name:             in.Name,
		Type:             in.Type,
		LeadSource:       in.LeadSource,
		Location:         in.Location,
		Notes:            in.Notes,
		MainShootDate:    in.MainShootDate,
		MainShootEndDate: in.MainShootEndDate,
		ClientName:       in.ClientName,
		ClientEmail:      in.ClientEmail,
		ClientPhone:      in.ClientPhone,
		ClientID:         in.ClientID,
		Status:           string(domain.InitialStatus()),
		TotalAmount:      in.TotalAmount,
		PaidAmount:       in.PaidAmount,
	}

	if err := uc.repo.CreateJob(ctx, j); err != nil {
		return nil, err
	}

	domain.Normalize(j)

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		UserID:   &in.UserID,
		Action:   "job_created",
		Entity:   "job",
		EntityID: &j.ID,
	})

	return j, nil
}
