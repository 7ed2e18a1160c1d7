package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/silverhalide/studio-api/internal/audit"
	domain "github.com/silverhalide/studio-api/internal/domain/booking"
	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/models"
	"github.com/silverhalide/studio-api/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	auditd *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{repo: repo, audit: auditd}
}

// Execute marks a confirmed session as done after the shoot happened. No
// cache invalidation: a completed booking still occupies its slot.
func (uc *CompleteBooking) Execute(
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
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &userID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
