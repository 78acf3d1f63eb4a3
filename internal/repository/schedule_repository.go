package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sponsra/sponsra-app-sub000/internal/model"
)

type ScheduleRepository interface {
	// GetByNewsletter returns the newsletter's publication schedule or
	// ErrNotFound.
	GetByNewsletter(ctx context.Context, newsletterID string) (*model.ScheduleRecord, error)
	// GetByTier returns the tier's availability schedule or ErrNotFound.
	GetByTier(ctx context.Context, tierID string) (*model.ScheduleRecord, error)
	// UpsertForNewsletter creates or replaces the newsletter's schedule row.
	UpsertForNewsletter(ctx context.Context, newsletterID string, rec *model.ScheduleRecord) error
	// UpsertForTier creates or replaces the tier's schedule row.
	UpsertForTier(ctx context.Context, tierID string, rec *model.ScheduleRecord) error
	// DeleteForTier removes the tier's own schedule (e.g. when switching the
	// tier back to inherit mode).
	DeleteForTier(ctx context.Context, tierID string) error
}

type GormScheduleRepository struct {
	db *gorm.DB
}

func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

func (r *GormScheduleRepository) GetByNewsletter(ctx context.Context, newsletterID string) (*model.ScheduleRecord, error) {
	var rec model.ScheduleRecord
	if err := r.db.WithContext(ctx).First(&rec, "newsletter_id = ?", newsletterID).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &rec, nil
}

func (r *GormScheduleRepository) GetByTier(ctx context.Context, tierID string) (*model.ScheduleRecord, error) {
	var rec model.ScheduleRecord
	if err := r.db.WithContext(ctx).First(&rec, "tier_id = ?", tierID).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &rec, nil
}

func (r *GormScheduleRepository) UpsertForNewsletter(ctx context.Context, newsletterID string, rec *model.ScheduleRecord) error {
	existing, err := r.GetByNewsletter(ctx, newsletterID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if existing != nil {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	} else if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *GormScheduleRepository) UpsertForTier(ctx context.Context, tierID string, rec *model.ScheduleRecord) error {
	existing, err := r.GetByTier(ctx, tierID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if existing != nil {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	} else if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *GormScheduleRepository) DeleteForTier(ctx context.Context, tierID string) error {
	return r.db.WithContext(ctx).Delete(&model.ScheduleRecord{}, "tier_id = ?", tierID).Error
}
