package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/silverhalide/studio-api/internal/domain/booking"
	"github.com/silverhalide/studio-api/internal/httperr"
	"github.com/silverhalide/studio-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Studio
// --------------------------------------------------

func (r *BookingGormRepository) GetStudioByID(
	ctx context.Context,
	id uint,
) (*models.Studio, error) {

	var studio models.Studio
	if err := r.db.WithContext(ctx).First(&studio, id).Error; err != nil {
		return nil, err
	}
	return &studio, nil
}

func (r *BookingGormRepository) GetStudioBySlug(
	ctx context.Context,
	slug string,
) (*models.Studio, error) {

	var studio models.Studio
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&studio).Error; err != nil {
		return nil, err
	}
	return &studio, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	studioID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("studio_id = ? AND email = ?", studioID, email).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		StudioID: studioID,
		Name:     name,
		Phone:    phone,
		Email:    email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListConfirmedBookings(
	ctx context.Context,
	studioID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	bookings := []models.Booking{}
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "session_type", "status").
		Where(
			"studio_id = ? AND status = 'confirmed' AND start_time >= ? AND start_time <= ?",
			studioID, start, end,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"studio_id = ? AND status = 'confirmed' AND start_time < ? AND end_time > ?",
				b.StudioID,
				b.EndTime,
				b.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) GetBookingForStudio(
	ctx context.Context,
	bookingID uint,
	studioID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND studio_id = ?", bookingID, studioID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
