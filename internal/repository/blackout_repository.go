package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Sponsra/sponsra-app-sub000/internal/model"
)

type BlackoutRepository interface {
	// ListByNewsletterRange returns the newsletter's blackout dates inside
	// [from, to], ordered by date.
	ListByNewsletterRange(ctx context.Context, newsletterID string, from, to time.Time) ([]model.BlackoutDate, error)
	// Create inserts a blackout date.
	Create(ctx context.Context, b *model.BlackoutDate) error
	// Delete removes a blackout date.
	Delete(ctx context.Context, id string) error
}

type GormBlackoutRepository struct {
	db *gorm.DB
}

func NewGormBlackoutRepository(db *gorm.DB) *GormBlackoutRepository {
	return &GormBlackoutRepository{db: db}
}

func (r *GormBlackoutRepository) ListByNewsletterRange(
	ctx context.Context,
	newsletterID string,
	from, to time.Time,
) ([]model.BlackoutDate, error) {
	var blackouts []model.BlackoutDate
	err := r.db.WithContext(ctx).
		Where("newsletter_id = ?", newsletterID).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&blackouts).Error
	if err != nil {
		return nil, err
	}
	return blackouts, nil
}

func (r *GormBlackoutRepository) Create(ctx context.Context, b *model.BlackoutDate) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *GormBlackoutRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.BlackoutDate{}, "id = ?", id).Error
}
