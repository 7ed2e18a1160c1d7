package job

import (
	"fmt"
	"time"

	"github.com/silverhalide/studio-api/internal/models"
)

// Default doc-type keys; arbitrary custom keys are also accepted.
const (
	DocTypeContracts      = "contracts"
	DocTypeInvoices       = "invoices"
	DocTypeQuestionnaires = "questionnaires"
	DocTypeQuotes         = "quotes"
	DocTypeOtherDocs      = "other_docs"
)

// Normalize fills in the synthesized name for untitled jobs.
func Normalize(j *models.Job) {
	if j.Name == "" {
		j.Name = fmt.Sprintf("Untitled Job (%d)", j.ID)
	}
}

// Complete is a single-field status patch, no precondition.
func Complete(j *models.Job, now time.Time) {
	j.Status = string(StatusCompleted)
	j.CompletedAt = &now
}

// GroupDocuments shapes the flat document rows into the doc-type keyed map
// the admin console renders, documents ordered by upload time per key.
func GroupDocuments(docs []models.JobDocument) map[string][]models.JobDocument {
	out := make(map[string][]models.JobDocument)
	for _, d := range docs {
		out[d.DocType] = append(out[d.DocType], d)
	}
	return out
}
