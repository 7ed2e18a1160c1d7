package job

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/silverhalide/studio-api/internal/audit"
	domain "github.com/silverhalide/studio-api/internal/domain/job"
	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/models"
	"github.com/silverhalide/studio-api/internal/timezone"
)

type BatchImportJobs struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBatchImportJobs(repo domain.Repository, auditd *audit.Dispatcher) *BatchImportJobs {
	return &BatchImportJobs{repo: repo, audit: auditd}
}

// Execute reads a CSV with a header row and upserts one job per data row on
// the (client_email, name) conflict key.
//
// Counter quirk carried over from the previous back-office: every successful
// upsert counts as "updated", "added" never moves. Which of the two was
// actually meant is still an open product decision.
func (uc *BatchImportJobs) Execute(
	ctx context.Context,
	studioID uint,
	userID uint,
	r io.Reader,
) (*domain.ImportStats, error) {

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_csv")
	}

	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	stats := &domain.ImportStats{}
	loc := timezone.Location(timezone.DefaultTimezone)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.Failed++
			continue
		}

		j := models.Job{
			StudioID:    studioID,
			Name:        field(row, "name"),
			Type:        field(row, "type"),
			LeadSource:  field(row, "lead_source"),
			Location:    field(row, "location"),
			Notes:       field(row, "notes"),
			ClientName:  field(row, "client_name"),
			ClientEmail: field(row, "client_email"),
			ClientPhone: field(row, "client_phone"),
			Status:      string(domain.InitialStatus()),
		}

		if s := field(row, "status"); s != "" && domain.IsKnownStatus(s) {
			j.Status = s
		}
		if d := field(row, "main_shoot_date"); d != "" {
			if t, err := time.ParseInLocation("2006-01-02", d, loc); err == nil {
				j.MainShootDate = &t
			}
		}
		if a := field(row, "total_amount"); a != "" {
			if v, err := strconv.ParseFloat(a, 64); err == nil {
				j.TotalAmount = v
			}
		}

		if j.ClientEmail == "" {
			stats.Failed++
			continue
		}

		if err := uc.repo.UpsertJob(ctx, &j); err != nil {
			stats.Failed++
			continue
		}

		stats.Updated++
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &userID,
		Action:   "jobs_imported",
		Entity:   "job",
		Metadata: stats,
	})

	return stats, nil
}
