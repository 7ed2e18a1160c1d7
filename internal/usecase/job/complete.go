package job

import (
	"context"

	"github.com/silverhalide/studio-api/internal/audit"
	domain "github.com/silverhalide/studio-api/internal/domain/job"
	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/models"
	"github.com/silverhalide/studio-api/internal/timezone"
)

type CompleteJob struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteJob(repo domain.Repository, auditd *audit.Dispatcher) *CompleteJob {
	return &CompleteJob{repo: repo, audit: auditd}
}

func (uc *CompleteJob) Execute(
	ctx context.Context,
	studioID uint,
	userID uint,
	jobID uint,
) (*models.Job, error) {

	j, err := uc.repo.GetJob(ctx, studioID, jobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, httperr.ErrBusiness("job_not_found")
	}

	now := timezone.Now()
	domain.Complete(j, now)

	patch := map[string]any{
		"status":       j.Status,
		"completed_at": j.CompletedAt,
		"updated_at":   now,
	}
	if err := uc.repo.UpdateJobFields(ctx, studioID, jobID, patch); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &userID,
		Action:   "job_completed",
		Entity:   "job",
		EntityID: &jobID,
	})

	return j, nil
}
