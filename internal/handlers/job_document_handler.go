package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/httpresp"
	"github.com/silverhalide/studio-api/internal/middleware"

	jobdomain "github.com/silverhalide/studio-api/internal/domain/job"
	ucjob "github.com/silverhalide/studio-api/internal/usecase/job"
)

type JobDocumentHandler struct {
	repo   jobdomain.Repository
	upload *ucjob.UploadDocument
	delete *ucjob.DeleteDocument
}

func NewJobDocumentHandler(
	repo jobdomain.Repository,
	upload *ucjob.UploadDocument,
	deleteUC *ucjob.DeleteDocument,
) *JobDocumentHandler {
	return &JobDocumentHandler{repo: repo, upload: upload, delete: deleteUC}
}

// ======================================================
// LIST
// ======================================================

// List returns the job's documents grouped by doc-type key, oldest first
// within each group.
func (h *JobDocumentHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	j, err := h.repo.GetJob(c.Request.Context(), studioID, jobID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_job", "Failed to load job.")
		return
	}
	if j == nil {
		httperr.NotFound(c, "job_not_found", "Job not found.")
		return
	}

	docs, err := h.repo.ListDocuments(c.Request.Context(), jobID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_documents", "Failed to load documents.")
		return
	}

	httpresp.OK(c, jobdomain.GroupDocuments(docs))
}

// ======================================================
// UPLOAD
// ======================================================

func (h *JobDocumentHandler) Upload(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "File is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Failed to read uploaded file.")
		return
	}
	defer file.Close()

	doc, err := h.upload.Execute(c.Request.Context(), ucjob.UploadDocumentInput{
		StudioID:    studioID,
		UserID:      userID,
		JobID:       jobID,
		DocType:     c.PostForm("doc_type"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		mapJobError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// ======================================================
// DELETE
// ======================================================

func (h *JobDocumentHandler) Delete(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	docID := c.Param("docId")
	if docID == "" {
		httperr.BadRequest(c, "missing_document_id", "Document id is required.")
		return
	}

	err := h.delete.Execute(c.Request.Context(), studioID, userID, jobID, docID)
	if err != nil {
		if httperr.IsBusiness(err, "document_not_found") {
			httperr.NotFound(c, "document_not_found", "Document not found.")
			return
		}
		mapJobError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
