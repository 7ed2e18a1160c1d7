package job

import (
	"context"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/silverhalide/studio-api/internal/audit"
	domain "github.com/silverhalide/studio-api/internal/domain/job"
	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/models"
	"github.com/silverhalide/studio-api/internal/storage"
	"github.com/silverhalide/studio-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UploadDocumentInput struct {
	StudioID uint
	UserID   uint
	JobID    uint

	DocType     string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ======================================================
// USE CASE
// ======================================================

type UploadDocument struct {
	repo  domain.Repository
	store storage.Store
	audit *audit.Dispatcher
}

func NewUploadDocument(
	repo domain.Repository,
	store storage.Store,
	auditd *audit.Dispatcher,
) *UploadDocument {
	return &UploadDocument{repo: repo, store: store, audit: auditd}
}

// Execute is two writes, file then metadata row, with no rollback: a crash
// in between leaves an orphaned object in storage, which is accepted.
func (uc *UploadDocument) Execute(
	ctx context.Context,
	in UploadDocumentInput,
) (*models.JobDocument, error) {

	j, err := uc.repo.GetJob(ctx, in.StudioID, in.JobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, httperr.ErrBusiness("job_not_found")
	}

	docType := in.DocType
	if docType == "" {
		docType = domain.DocTypeOtherDocs
	}

	key := storage.JobDocumentKey(in.JobID, docType, in.FileName)

	url, err := uc.store.Upload(ctx, key, in.ContentType, in.Body)
	if err != nil {
		return nil, err
	}

	doc := &models.JobDocument{
		ID:         uuid.NewString(),
		JobID:      in.JobID,
		DocType:    docType,
		Name:       in.FileName,
		FileURL:    url,
		FileType:   in.ContentType,
		Size:       in.Size,
		StorageKey: key,
		UploadedAt: timezone.Now(),
	}

	if err := uc.repo.AddDocument(ctx, doc); err != nil {
		log.Printf("document metadata write failed after upload of %s: %v", key, err)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		UserID:   &in.UserID,
		Action:   "job_document_uploaded",
		Entity:   "job",
		EntityID: &in.JobID,
		Metadata: map[string]string{"doc_type": docType, "name": in.FileName},
	})

	return doc, nil
}
