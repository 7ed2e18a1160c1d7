package job

import (
	"context"
	"time"

	"github.com/silverhalide/studio-api/internal/audit"
	domain "github.com/silverhalide/studio-api/internal/domain/job"
	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/models"
	"github.com/silverhalide/studio-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Pointer fields distinguish "not sent" from zero values; only fields the
// caller actually provided end up in the patch.
type UpdateJobInput struct {
	StudioID uint
	UserID   uint
	JobID    uint

	Name       *string `json:"name"`
	Type       *string `json:"type"`
	LeadSource *string `json:"lead_source"`
	Location   *string `json:"location"`
	Notes      *string `json:"notes"`

	MainShootDate    *time.Time `json:"main_shoot_date"`
	MainShootEndDate *time.Time `json:"main_shoot_end_date"`

	ClientName  *string `json:"client_name"`
	ClientEmail *string `json:"client_email"`
	ClientPhone *string `json:"client_phone"`
	ClientID    *uint   `json:"client_id"`

	Status *string `json:"status"`

	TotalAmount   *float64 `json:"total_amount"`
	PaidAmount    *float64 `json:"paid_amount"`
	PaymentStatus *string  `json:"payment_status"`
}

// BuildPatch collects only the provided fields, always refreshing
// updated_at.
func BuildPatch(in UpdateJobInput, now time.Time) map[string]any {
	patch := map[string]any{"updated_at": now}

	set := func(col string, v any) {
		patch[col] = v
	}

	if in.Name != nil {
		set("name", *in.Name)
	}
	if in.Type != nil {
		set("type", *in.Type)
	}
	if in.LeadSource != nil {
		set("lead_source", *in.LeadSource)
	}
	if in.Location != nil {
		set("location", *in.Location)
	}
	if in.Notes != nil {
		set("notes", *in.Notes)
	}
	if in.MainShootDate != nil {
		set("main_shoot_date", *in.MainShootDate)
	}
	if in.MainShootEndDate != nil {
		set("main_shoot_end_date", *in.MainShootEndDate)
	}
	if in.ClientName != nil {
		set("client_name", *in.ClientName)
	}
	if in.ClientEmail != nil {
		set("client_email", *in.ClientEmail)
	}
	if in.ClientPhone != nil {
		set("client_phone", *in.ClientPhone)
	}
	if in.ClientID != nil {
		set("client_id", *in.ClientID)
	}
	if in.Status != nil {
		set("status", *in.Status)
	}
	if in.TotalAmount != nil {
		set("total_amount", *in.TotalAmount)
	}
	if in.PaidAmount != nil {
		set("paid_amount", *in.PaidAmount)
	}
	if in.PaymentStatus != nil {
		set("payment_status", *in.PaymentStatus)
	}

	return patch
}

// ======================================================
// USE CASE
// ======================================================

type UpdateJob struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateJob(repo domain.Repository, auditd *audit.Dispatcher) *UpdateJob {
	return &UpdateJob{repo: repo, audit: auditd}
}

func (uc *UpdateJob) Execute(ctx context.Context, in UpdateJobInput) (*models.Job, error) {

	existing, err := uc.repo.GetJob(ctx, in.StudioID, in.JobID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, httperr.ErrBusiness("job_not_found")
	}

	if in.Status != nil && !domain.IsKnownStatus(*in.Status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	patch := BuildPatch(in, timezone.Now())
	if err := uc.repo.UpdateJobFields(ctx, in.StudioID, in.JobID, patch); err != nil {
		return nil, err
	}

	updated, err := uc.repo.GetJob(ctx, in.StudioID, in.JobID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		UserID:   &in.UserID,
		Action:   "job_updated",
		Entity:   "job",
		EntityID: &in.JobID,
	})

	return updated, nil
}
