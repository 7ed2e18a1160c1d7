package job

import (
	"context"

	"github.com/silverhalide/studio-api/internal/audit"
	"github.com/silverhalide/studio-api/internal/cleanup"
	domain "github.com/silverhalide/studio-api/internal/domain/job"
	"github.com/silverhalide/studio-api/internal/httperr"
)

type DeleteJob struct {
	repo    domain.Repository
	cleanup *cleanup.Dispatcher
	audit   *audit.Dispatcher
}

func NewDeleteJob(
	repo domain.Repository,
	cleanupd *cleanup.Dispatcher,
	auditd *audit.Dispatcher,
) *DeleteJob {
	return &DeleteJob{repo: repo, cleanup: cleanupd, audit: auditd}
}

// Execute removes the job row (document rows cascade with it) and queues the
// underlying files for best-effort deletion. Storage failures never block or
// undo the row delete.
func (uc *DeleteJob) Execute(
	ctx context.Context,
	studioID uint,
	userID uint,
	jobID uint,
) error {

	j, err := uc.repo.GetJob(ctx, studioID, jobID)
	if err != nil {
		return err
	}
	if j == nil {
		return httperr.ErrBusiness("job_not_found")
	}

	if err := uc.repo.DeleteJob(ctx, studioID, jobID); err != nil {
		return err
	}

	for _, doc := range j.Documents {
		uc.cleanup.Dispatch(doc.StorageKey)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &userID,
		Action:   "job_deleted",
		Entity:   "job",
		EntityID: &jobID,
	})

	return nil
}
