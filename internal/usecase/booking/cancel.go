package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/silverhalide/studio-api/internal/audit"
	"github.com/silverhalide/studio-api/internal/cache"
	domain "github.com/silverhalide/studio-api/internal/domain/booking"
	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/models"
	"github.com/silverhalide/studio-api/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	c *cache.AvailabilityCache,
	auditd *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{repo: repo, cache: c, audit: auditd}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	studioID uint,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForStudio(ctx, bookingID, studioID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, studioID)

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
