package repository

import (
	"context"

	"gorm.io/gorm"

	"invoicedash/internal/model"
)

// CustomerRepository defines read operations on customers.
type CustomerRepository interface {
	Count(ctx context.Context) (int64, error)
	ListFields(ctx context.Context) ([]model.CustomerField, error)
	Summaries(ctx context.Context, query string) ([]model.CustomerSummaryRow, error)
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Count returns the total number of customers.
func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Customer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListFields returns every customer's id and name ordered by name.
func (r *customerRepository) ListFields(ctx context.Context) ([]model.CustomerField, error) {
	fields := make([]model.CustomerField, 0)
	err := r.db.WithContext(ctx).Model(&model.Customer{}).
		Select("id, name").
		Order("name ASC").
		Scan(&fields).Error
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// Summaries aggregates invoice counts and totals per customer whose name or
// email contains query.
func (r *customerRepository) Summaries(ctx context.Context, query string) ([]model.CustomerSummaryRow, error) {
	pattern := likePattern(query)
	rows := make([]model.CustomerSummaryRow, 0)
	err := r.db.WithContext(ctx).Table("customers").
		Select(
			"customers.id, customers.name, customers.email, customers.image_url, "+
				"COUNT(invoices.id) AS total_invoices, "+
				"COALESCE(SUM(CASE WHEN invoices.status = ? THEN invoices.amount ELSE 0 END), 0) AS total_pending, "+
				"COALESCE(SUM(CASE WHEN invoices.status = ? THEN invoices.amount ELSE 0 END), 0) AS total_paid",
			model.InvoiceStatusPending, model.InvoiceStatusPaid,
		).
		Joins("LEFT JOIN invoices ON customers.id = invoices.customer_id").
		Where("LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ?", pattern, pattern).
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
