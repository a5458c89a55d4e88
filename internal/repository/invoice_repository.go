package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"invoicedash/internal/model"
)

// InvoiceRepository defines invoice persistence operations.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	Update(ctx context.Context, id uuid.UUID, customerID string, amount int64, status model.InvoiceStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	Latest(ctx context.Context, limit int) ([]model.LatestInvoiceRow, error)
	Search(ctx context.Context, query string, limit, offset int) ([]model.InvoiceRow, error)
	CountSearch(ctx context.Context, query string) (int64, error)
	Count(ctx context.Context) (int64, error)
	StatusTotals(ctx context.Context) (model.StatusTotals, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository.
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create inserts a new invoice. The customer relation is never written.
func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(invoice).Error
}

// Update rewrites customer, amount and status of the invoice matching id.
func (r *invoiceRepository) Update(ctx context.Context, id uuid.UUID, customerID string, amount int64, status model.InvoiceStatus) error {
	return r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amount,
			"status":      status,
		}).Error
}

// Delete removes the invoice matching id. Deleting an absent id is not an error.
func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Invoice{}).Error
}

// FindByID finds an invoice by ID.
func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Latest returns the most recent invoices joined with their customer.
func (r *invoiceRepository) Latest(ctx context.Context, limit int) ([]model.LatestInvoiceRow, error) {
	rows := make([]model.LatestInvoiceRow, 0, limit)
	err := r.db.WithContext(ctx).Table("invoices").
		Select("invoices.id, invoices.amount, customers.name, customers.image_url, customers.email").
		Joins("JOIN customers ON invoices.customer_id = customers.id").
		Order("invoices.date DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Search returns one page of invoices whose customer name, email, amount, date
// or status contains query, newest first.
func (r *invoiceRepository) Search(ctx context.Context, query string, limit, offset int) ([]model.InvoiceRow, error) {
	rows := make([]model.InvoiceRow, 0, limit)
	err := r.searchScope(ctx, query).
		Select("invoices.id, invoices.customer_id, invoices.amount, invoices.date, invoices.status, customers.name, customers.email, customers.image_url").
		Order("invoices.date DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountSearch returns the number of invoices Search would match across all pages.
func (r *invoiceRepository) CountSearch(ctx context.Context, query string) (int64, error) {
	var count int64
	if err := r.searchScope(ctx, query).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Count returns the total number of invoices.
func (r *invoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Invoice{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// StatusTotals sums invoice amounts per status in a single aggregate query.
func (r *invoiceRepository) StatusTotals(ctx context.Context) (model.StatusTotals, error) {
	var totals model.StatusTotals
	err := r.db.WithContext(ctx).Table("invoices").
		Select(
			"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS paid, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS pending",
			model.InvoiceStatusPaid, model.InvoiceStatusPending,
		).
		Scan(&totals).Error
	if err != nil {
		return model.StatusTotals{}, err
	}
	return totals, nil
}

func (r *invoiceRepository) searchScope(ctx context.Context, query string) *gorm.DB {
	pattern := likePattern(query)
	db := r.db.WithContext(ctx)
	return db.Table("invoices").
		Joins("JOIN customers ON invoices.customer_id = customers.id").
		Where(
			"LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ? OR "+
				asText(db, "invoices.amount")+" LIKE ? OR "+
				asText(db, "invoices.date")+" LIKE ? OR LOWER(invoices.status) LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
}
