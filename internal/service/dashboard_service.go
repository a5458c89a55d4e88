package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "invoicedash/internal/errors"
	"invoicedash/internal/model"
	"invoicedash/internal/money"
	"invoicedash/internal/repository"
)

const (
	// InvoicesPerPage is the fixed page size of the invoice table.
	InvoicesPerPage = 6
	// LatestInvoicesLimit is how many invoices the dashboard overview lists.
	LatestInvoicesLimit = 5
)

// InvoiceEditForm is everything the edit page needs.
type InvoiceEditForm struct {
	Invoice   *model.InvoiceForm    `json:"invoice"`
	Customers []model.CustomerField `json:"customers"`
}

// DashboardService is the read surface of the dashboard. Every storage failure
// is logged and returned as a *errors.FetchError.
type DashboardService interface {
	FetchRevenue(ctx context.Context) ([]model.Revenue, error)
	FetchLatestInvoices(ctx context.Context) ([]model.LatestInvoice, error)
	FetchCardData(ctx context.Context) (*model.CardData, error)
	FetchFilteredInvoices(ctx context.Context, query string, page int) ([]model.InvoiceRow, error)
	FetchInvoicesPages(ctx context.Context, query string) (int, error)
	FetchInvoiceByID(ctx context.Context, id uuid.UUID) (*model.InvoiceForm, error)
	FetchCustomers(ctx context.Context) ([]model.CustomerField, error)
	FetchFilteredCustomers(ctx context.Context, query string) ([]model.CustomerSummary, error)
	FetchInvoiceForm(ctx context.Context, id uuid.UUID) (*InvoiceEditForm, error)
}

type dashboardService struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	revenueRepo  repository.RevenueRepository
	logger       logrus.FieldLogger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	revenueRepo repository.RevenueRepository,
	logger logrus.FieldLogger,
) DashboardService {
	return &dashboardService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
		logger:       logger,
	}
}

// fetchFailed logs the storage error and hides it behind a FetchError.
func (s *dashboardService) fetchFailed(err error, resource string) error {
	s.logger.WithError(err).WithField("resource", resource).Error("Database Error")
	return apperrors.NewFetchError(resource)
}

// FetchRevenue returns the monthly revenue figures.
func (s *dashboardService) FetchRevenue(ctx context.Context) ([]model.Revenue, error) {
	revenue, err := s.revenueRepo.List(ctx)
	if err != nil {
		return nil, s.fetchFailed(err, "revenue data")
	}
	return revenue, nil
}

// FetchLatestInvoices returns the newest invoices with formatted amounts.
func (s *dashboardService) FetchLatestInvoices(ctx context.Context) ([]model.LatestInvoice, error) {
	rows, err := s.invoiceRepo.Latest(ctx, LatestInvoicesLimit)
	if err != nil {
		return nil, s.fetchFailed(err, "the latest invoices")
	}

	latest := make([]model.LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, model.LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			ImageURL: row.ImageURL,
			Email:    row.Email,
			Amount:   money.FormatCurrency(row.Amount),
		})
	}
	return latest, nil
}

// FetchCardData runs the three independent aggregates concurrently.
func (s *dashboardService) FetchCardData(ctx context.Context) (*model.CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		totals        model.StatusTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoiceRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customerRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.invoiceRepo.StatusTotals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.fetchFailed(err, "card data")
	}

	return &model.CardData{
		NumberOfCustomers:    customerCount,
		NumberOfInvoices:     invoiceCount,
		TotalPaidInvoices:    money.FormatCurrency(totals.Paid),
		TotalPendingInvoices: money.FormatCurrency(totals.Pending),
	}, nil
}

// FetchFilteredInvoices returns one page of invoices matching query. Pages
// start at 1; lower values are treated as the first page.
func (s *dashboardService) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]model.InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * InvoicesPerPage

	rows, err := s.invoiceRepo.Search(ctx, query, InvoicesPerPage, offset)
	if err != nil {
		return nil, s.fetchFailed(err, "invoices")
	}
	if rows == nil {
		rows = []model.InvoiceRow{}
	}
	return rows, nil
}

// FetchInvoicesPages returns how many pages the invoices matching query fill.
func (s *dashboardService) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	count, err := s.invoiceRepo.CountSearch(ctx, query)
	if err != nil {
		return 0, s.fetchFailed(err, "total number of invoices")
	}
	return int(math.Ceil(float64(count) / float64(InvoicesPerPage))), nil
}

// FetchInvoiceByID returns the invoice prepared for editing, or
// errors.ErrInvoiceNotFound when no row matches.
func (s *dashboardService) FetchInvoiceByID(ctx context.Context, id uuid.UUID) (*model.InvoiceForm, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, s.fetchFailed(err, "invoice")
	}

	return &model.InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     money.FromMinorUnits(invoice.Amount),
		Status:     invoice.Status,
	}, nil
}

// FetchCustomers returns every customer's id and name, ordered by name.
func (s *dashboardService) FetchCustomers(ctx context.Context) ([]model.CustomerField, error) {
	customers, err := s.customerRepo.ListFields(ctx)
	if err != nil {
		return nil, s.fetchFailed(err, "all customers")
	}
	return customers, nil
}

// FetchFilteredCustomers returns the customer summary table filtered by query.
func (s *dashboardService) FetchFilteredCustomers(ctx context.Context, query string) ([]model.CustomerSummary, error) {
	rows, err := s.customerRepo.Summaries(ctx, query)
	if err != nil {
		return nil, s.fetchFailed(err, "customer table")
	}

	customers := make([]model.CustomerSummary, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, model.CustomerSummary{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  money.FormatCurrency(row.TotalPending),
			TotalPaid:     money.FormatCurrency(row.TotalPaid),
		})
	}
	return customers, nil
}

// FetchInvoiceForm loads the invoice and the customer list concurrently.
func (s *dashboardService) FetchInvoiceForm(ctx context.Context, id uuid.UUID) (*InvoiceEditForm, error) {
	form := &InvoiceEditForm{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		invoice, err := s.FetchInvoiceByID(gctx, id)
		form.Invoice = invoice
		return err
	})
	g.Go(func() error {
		customers, err := s.FetchCustomers(gctx)
		form.Customers = customers
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return form, nil
}
