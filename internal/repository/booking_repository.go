package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Sponsra/sponsra-app-sub000/internal/model"
)

type BookingRepository interface {
	// Create inserts a booking. Returns ErrDateAlreadyBooked when the
	// (tier, run date) uniqueness constraint rejects the insert.
	Create(ctx context.Context, booking *model.Booking) error
	// GetByID returns a booking or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	// BookedDates returns the run dates already taken for the tier inside
	// [from, to].
	BookedDates(ctx context.Context, tierID string, from, to time.Time) ([]time.Time, error)
	// ListByTierRange returns the tier's bookings inside [from, to] with
	// pagination.
	ListByTierRange(ctx context.Context, tierID string, from, to time.Time, limit, offset int) ([]model.Booking, int64, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	err := r.db.WithContext(ctx).Create(booking).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDateAlreadyBooked
	}
	return err
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var b model.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &b, nil
}

func (r *GormBookingRepository) BookedDates(
	ctx context.Context,
	tierID string,
	from, to time.Time,
) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("tier_id = ?", tierID).
		Where("run_date >= ? AND run_date <= ?", from, to).
		Order("run_date ASC").
		Pluck("run_date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *GormBookingRepository) ListByTierRange(
	ctx context.Context,
	tierID string,
	from, to time.Time,
	limit, offset int,
) ([]model.Booking, int64, error) {
	var (
		bookings []model.Booking
		total    int64
	)

	q := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("tier_id = ?", tierID).
		Where("run_date >= ? AND run_date <= ?", from, to)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("run_date ASC").Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}
