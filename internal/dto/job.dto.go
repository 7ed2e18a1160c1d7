package dto

import (
	domain "github.com/silverhalide/studio-api/internal/domain/job"
	"github.com/silverhalide/studio-api/internal/models"
)

// JobDTO is the admin-console shape: documents regrouped under their
// doc-type key instead of the flat rows the store keeps.
type JobDTO struct {
	*models.Job
	Documents map[string][]models.JobDocument `json:"documents"`
}

func NewJobDTO(j *models.Job) JobDTO {
	return JobDTO{
		Job:       j,
		Documents: domain.GroupDocuments(j.Documents),
	}
}

func NewJobDTOs(jobs []models.Job) []JobDTO {
	out := make([]JobDTO, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobDTO(&jobs[i]))
	}
	return out
}
