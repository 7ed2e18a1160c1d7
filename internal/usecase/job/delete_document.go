package job

import (
	"context"

	"github.com/silverhalide/studio-api/internal/audit"
	"github.com/silverhalide/studio-api/internal/cleanup"
	domain "github.com/silverhalide/studio-api/internal/domain/job"
	"github.com/silverhalide/studio-api/internal/httperr"
)

type DeleteDocument struct {
	repo    domain.Repository
	cleanup *cleanup.Dispatcher
	audit   *audit.Dispatcher
}

func NewDeleteDocument(
	repo domain.Repository,
	cleanupd *cleanup.Dispatcher,
	auditd *audit.Dispatcher,
) *DeleteDocument {
	return &DeleteDocument{repo: repo, cleanup: cleanupd, audit: auditd}
}

func (uc *DeleteDocument) Execute(
	ctx context.Context,
	studioID uint,
	userID uint,
	jobID uint,
	docID string,
) error {

	j, err := uc.repo.GetJob(ctx, studioID, jobID)
	if err != nil {
		return err
	}
	if j == nil {
		return httperr.ErrBusiness("job_not_found")
	}

	doc, err := uc.repo.GetDocument(ctx, jobID, docID)
	if err != nil {
		return err
	}
	if doc == nil {
		return httperr.ErrBusiness("document_not_found")
	}

	if err := uc.repo.DeleteDocument(ctx, jobID, docID); err != nil {
		return err
	}

	uc.cleanup.Dispatch(doc.StorageKey)

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &userID,
		Action:   "job_document_deleted",
		Entity:   "job",
		EntityID: &jobID,
		Metadata: map[string]string{"doc_id": docID},
	})

	return nil
}
