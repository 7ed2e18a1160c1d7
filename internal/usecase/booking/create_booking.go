package booking

import (
	"context"
	"time"

	"github.com/silverhalide/studio-api/internal/audit"
	"github.com/silverhalide/studio-api/internal/cache"
	domain "github.com/silverhalide/studio-api/internal/domain/booking"
	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/models"
	"github.com/silverhalide/studio-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	StudioID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	SessionType string

	// Slot start, studio-local "2006-01-02" + "15:04".
	Date  string
	Time  string
	Notes string
}

// Placeholder session pricing until a real rate card exists.
var sessionBasePrice = map[string]float64{
	"wedding":  1200,
	"portrait": 250,
	"family":   300,
	"newborn":  350,
}

const defaultBasePrice = 300

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo         domain.Repository
	availability *GetAvailability
	cache        *cache.AvailabilityCache
	audit        *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	availability *GetAvailability,
	c *cache.AvailabilityCache,
	auditd *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:         repo,
		availability: availability,
		cache:        c,
		audit:        auditd,
	}
}

// Execute re-runs availability for the requested day and requires the exact
// slot to still be open, then inserts behind the repository's locking
// conflict check. A slot consumed between the two steps surfaces as
// slot_unavailable.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	studio, err := uc.repo.GetStudioByID(ctx, in.StudioID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(studio.Timezone)
	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	slots, err := uc.availability.Execute(ctx, domain.AvailabilityInput{
		StudioID:    in.StudioID,
		Start:       dayStart,
		End:         dayStart.Add(24*time.Hour - time.Second),
		SessionType: in.SessionType,
	})
	if err != nil {
		return nil, err
	}

	var requested *domain.Slot
	for i := range slots {
		if slots[i].StartTime.Equal(start) {
			requested = &slots[i]
			break
		}
	}

	if requested == nil || !requested.IsAvailable {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.StudioID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	base, ok := sessionBasePrice[in.SessionType]
	if !ok {
		base = defaultBasePrice
	}

	b := &models.Booking{
		StudioID:    in.StudioID,
		ClientID:    &client.ID,
		SessionType: in.SessionType,
		StartTime:   requested.StartTime.UTC(),
		EndTime:     requested.EndTime.UTC(),
		Status:      string(domain.InitialStatus()),
		Price:       base * requested.PriceModifier,
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.StudioID)

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
