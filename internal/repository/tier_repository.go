package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sponsra/sponsra-app-sub000/internal/model"
)

type TierRepository interface {
	// GetByID returns a tier or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.SponsorshipTier, error)
	// ListByNewsletter returns the newsletter's tiers in display order.
	ListByNewsletter(ctx context.Context, newsletterID string) ([]model.SponsorshipTier, error)
	// Create inserts a tier.
	Create(ctx context.Context, tier *model.SponsorshipTier) error
	// Update persists changed fields.
	Update(ctx context.Context, tier *model.SponsorshipTier) error
	// Delete removes a tier.
	Delete(ctx context.Context, id string) error
}

type GormTierRepository struct {
	db *gorm.DB
}

func NewGormTierRepository(db *gorm.DB) *GormTierRepository {
	return &GormTierRepository{db: db}
}

func (r *GormTierRepository) GetByID(ctx context.Context, id string) (*model.SponsorshipTier, error) {
	var tier model.SponsorshipTier
	if err := r.db.WithContext(ctx).First(&tier, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &tier, nil
}

func (r *GormTierRepository) ListByNewsletter(ctx context.Context, newsletterID string) ([]model.SponsorshipTier, error) {
	var tiers []model.SponsorshipTier
	err := r.db.WithContext(ctx).
		Where("newsletter_id = ?", newsletterID).
		Order("position ASC, created_at ASC").
		Find(&tiers).Error
	if err != nil {
		return nil, err
	}
	return tiers, nil
}

func (r *GormTierRepository) Create(ctx context.Context, tier *model.SponsorshipTier) error {
	return r.db.WithContext(ctx).Create(tier).Error
}

func (r *GormTierRepository) Update(ctx context.Context, tier *model.SponsorshipTier) error {
	return r.db.WithContext(ctx).Model(&model.SponsorshipTier{}).Where("id = ?", tier.ID).Updates(tier).Error
}

func (r *GormTierRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.SponsorshipTier{}, "id = ?", id).Error
}
