package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"invoicedash/internal/auth"
	"invoicedash/internal/model"
	"invoicedash/internal/service"
)

// MockDashboardService is a mock implementation of service.DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) FetchRevenue(ctx context.Context) ([]model.Revenue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Revenue), args.Error(1)
}

func (m *MockDashboardService) FetchLatestInvoices(ctx context.Context) ([]model.LatestInvoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LatestInvoice), args.Error(1)
}

func (m *MockDashboardService) FetchCardData(ctx context.Context) (*model.CardData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CardData), args.Error(1)
}

func (m *MockDashboardService) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]model.InvoiceRow, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InvoiceRow), args.Error(1)
}

func (m *MockDashboardService) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	args := m.Called(ctx, query)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardService) FetchInvoiceByID(ctx context.Context, id uuid.UUID) (*model.InvoiceForm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InvoiceForm), args.Error(1)
}

func (m *MockDashboardService) FetchCustomers(ctx context.Context) ([]model.CustomerField, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CustomerField), args.Error(1)
}

func (m *MockDashboardService) FetchFilteredCustomers(ctx context.Context, query string) ([]model.CustomerSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CustomerSummary), args.Error(1)
}

func (m *MockDashboardService) FetchInvoiceForm(ctx context.Context, id uuid.UUID) (*service.InvoiceEditForm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoiceEditForm), args.Error(1)
}

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, form map[string]string) service.ActionResult {
	args := m.Called(ctx, form)
	return args.Get(0).(service.ActionResult)
}

func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, form map[string]string) service.ActionResult {
	args := m.Called(ctx, id, form)
	return args.Get(0).(service.ActionResult)
}

func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) (service.ActionResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.ActionResult), args.Error(1)
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, form map[string]string) (*auth.Session, string, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*auth.Session), args.String(1), args.Error(2)
}

func (m *MockAuthService) ResolveSession(ctx context.Context, claims *auth.Claims) (*auth.Session, bool) {
	args := m.Called(ctx, claims)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*auth.Session), args.Bool(1)
}

func (m *MockAuthService) SignOut(ctx context.Context, session *auth.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
