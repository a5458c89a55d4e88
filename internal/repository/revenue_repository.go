package repository

import (
	"context"

	"gorm.io/gorm"

	"invoicedash/internal/model"
)

// RevenueRepository reads monthly revenue.
type RevenueRepository interface {
	List(ctx context.Context) ([]model.Revenue, error)
}

type revenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository creates a new revenue repository.
func NewRevenueRepository(db *gorm.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

func (r *revenueRepository) List(ctx context.Context) ([]model.Revenue, error) {
	revenue := make([]model.Revenue, 0, 12)
	if err := r.db.WithContext(ctx).Find(&revenue).Error; err != nil {
		return nil, err
	}
	return revenue, nil
}
