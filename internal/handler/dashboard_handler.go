package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"invoicedash/internal/model"
	"invoicedash/internal/service"
)

// DashboardHandler serves the overview page and the customers table.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// OverviewResponse is the dashboard landing page.
type OverviewResponse struct {
	Cards          *model.CardData       `json:"cards"`
	Revenue        []model.Revenue       `json:"revenue"`
	LatestInvoices []model.LatestInvoice `json:"latest_invoices"`
}

// CustomersResponse is the customers table.
type CustomersResponse struct {
	Customers []model.CustomerSummary `json:"customers"`
}

// Overview godoc
// @Summary Dashboard overview
// @Description Summary cards, monthly revenue and the latest invoices.
// @Tags dashboard
// @Produce json
// @Security SessionToken
// @Success 200 {object} OverviewResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	var resp OverviewResponse

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		resp.Cards, err = h.dashboardService.FetchCardData(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		resp.Revenue, err = h.dashboardService.FetchRevenue(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		resp.LatestInvoices, err = h.dashboardService.FetchLatestInvoices(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Customers godoc
// @Summary Customers table
// @Tags customers
// @Produce json
// @Security SessionToken
// @Param query query string false "Case-insensitive match on name or email"
// @Success 200 {object} CustomersResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard/customers [get]
func (h *DashboardHandler) Customers(c echo.Context) error {
	customers, err := h.dashboardService.FetchFilteredCustomers(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, CustomersResponse{Customers: customers})
}
