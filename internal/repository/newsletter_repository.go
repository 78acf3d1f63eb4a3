package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sponsra/sponsra-app-sub000/internal/model"
)

type NewsletterRepository interface {
	// GetByID returns a newsletter or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Newsletter, error)
	// GetBySlug returns a newsletter by its public slug.
	GetBySlug(ctx context.Context, slug string) (*model.Newsletter, error)
	// ListByCreator returns the creator's newsletters, newest first.
	ListByCreator(ctx context.Context, creatorID string) ([]model.Newsletter, error)
	// Create inserts a newsletter.
	Create(ctx context.Context, n *model.Newsletter) error
	// Update persists changed fields.
	Update(ctx context.Context, n *model.Newsletter) error
}

type GormNewsletterRepository struct {
	db *gorm.DB
}

func NewGormNewsletterRepository(db *gorm.DB) *GormNewsletterRepository {
	return &GormNewsletterRepository{db: db}
}

func (r *GormNewsletterRepository) GetByID(ctx context.Context, id string) (*model.Newsletter, error) {
	var n model.Newsletter
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &n, nil
}

func (r *GormNewsletterRepository) GetBySlug(ctx context.Context, slug string) (*model.Newsletter, error) {
	var n model.Newsletter
	if err := r.db.WithContext(ctx).First(&n, "slug = ?", slug).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &n, nil
}

func (r *GormNewsletterRepository) ListByCreator(ctx context.Context, creatorID string) ([]model.Newsletter, error) {
	var newsletters []model.Newsletter
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&newsletters).Error
	if err != nil {
		return nil, err
	}
	return newsletters, nil
}

func (r *GormNewsletterRepository) Create(ctx context.Context, n *model.Newsletter) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *GormNewsletterRepository) Update(ctx context.Context, n *model.Newsletter) error {
	return r.db.WithContext(ctx).Model(&model.Newsletter{}).Where("id = ?", n.ID).Updates(n).Error
}
