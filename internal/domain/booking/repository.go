package booking

import (
	"context"
	"time"

	"github.com/silverhalide/studio-api/internal/models"
)

type Repository interface {
	// -------- Studio --------
	GetStudioByID(
		ctx context.Context,
		id uint,
	) (*models.Studio, error)

	GetStudioBySlug(
		ctx context.Context,
		slug string,
	) (*models.Studio, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		studioID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Availability --------
	// Confirmed bookings whose start time falls in [start, end], sorted.
	ListConfirmedBookings(
		ctx context.Context,
		studioID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// -------- Booking (create / state change) --------
	// CreateBooking re-checks time conflicts under a row lock inside a
	// transaction; a losing race returns the slot_unavailable business error.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingForStudio(
		ctx context.Context,
		bookingID uint,
		studioID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
