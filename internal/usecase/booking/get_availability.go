package booking

import (
	"context"

	"github.com/silverhalide/studio-api/internal/cache"
	domain "github.com/silverhalide/studio-api/internal/domain/booking"
	"github.com/silverhalide/studio-api/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, c *cache.AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c}
}

// Execute enumerates the fixed slot grid for every calendar day in
// [in.Start, in.End] (studio-local) and marks slots that collide with a
// confirmed booking. The session type does not change the grid.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	if slots, ok := uc.cache.Get(ctx, in); ok {
		return slots, nil
	}

	studio, err := uc.repo.GetStudioByID(ctx, in.StudioID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(studio.Timezone)
	start := in.Start.In(loc)
	end := in.End.In(loc)

	bookings, err := uc.repo.ListConfirmedBookings(ctx, in.StudioID, in.Start, in.End)
	if err != nil {
		return nil, err
	}

	slots := []domain.Slot{}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		slots = append(slots, domain.DaySlots(day, loc, bookings)...)
	}

	uc.cache.Set(ctx, in, slots)

	return slots, nil
}
