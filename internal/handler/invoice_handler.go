package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"invoicedash/internal/cache"
	"invoicedash/internal/errors"
	"invoicedash/internal/metrics"
	"invoicedash/internal/model"
	"invoicedash/internal/money"
	"invoicedash/internal/service"
)

// InvoiceHandler serves the invoice list and the invoice forms.
type InvoiceHandler struct {
	dashboardService service.DashboardService
	invoiceService   service.InvoiceService
	views            *cache.ViewCache
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(dashboardService service.DashboardService, invoiceService service.InvoiceService, views *cache.ViewCache) *InvoiceHandler {
	return &InvoiceHandler{
		dashboardService: dashboardService,
		invoiceService:   invoiceService,
		views:            views,
	}
}

// InvoiceRowResponse is one formatted line of the invoices table.
type InvoiceRowResponse struct {
	ID         uuid.UUID           `json:"id"`
	CustomerID string              `json:"customer_id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	ImageURL   string              `json:"image_url"`
	Date       string              `json:"date"`
	Amount     string              `json:"amount"`
	Status     model.InvoiceStatus `json:"status"`
}

// InvoiceListResponse is one page of the invoices table.
type InvoiceListResponse struct {
	Invoices    []InvoiceRowResponse `json:"invoices"`
	CurrentPage int                  `json:"current_page"`
	TotalPages  int                  `json:"total_pages"`
	Pagination  []string             `json:"pagination"`
}

// CreateFormResponse feeds the create invoice form.
type CreateFormResponse struct {
	Customers []model.CustomerField `json:"customers"`
}

// List godoc
// @Summary Search invoices
// @Description One page (six rows) of invoices whose customer name, email, amount, date or status contains the query.
// @Tags invoices
// @Produce json
// @Security SessionToken
// @Param query query string false "Search term"
// @Param page query int false "Page number, from 1"
// @Success 200 {object} InvoiceListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	query := c.QueryParam("query")
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	key := h.views.Key(ctx, service.InvoicesPath, "query="+query+"&page="+strconv.Itoa(page))
	if cached := h.views.Get(ctx, key); cached != nil {
		metrics.ObserveViewCache(true)
		return c.JSONBlob(http.StatusOK, cached)
	}
	metrics.ObserveViewCache(false)

	rows, err := h.dashboardService.FetchFilteredInvoices(ctx, query, page)
	if err != nil {
		return domainError(err)
	}
	totalPages, err := h.dashboardService.FetchInvoicesPages(ctx, query)
	if err != nil {
		return domainError(err)
	}

	resp := InvoiceListResponse{
		Invoices:    make([]InvoiceRowResponse, 0, len(rows)),
		CurrentPage: page,
		TotalPages:  totalPages,
		Pagination:  service.GeneratePagination(page, totalPages),
	}
	for _, row := range rows {
		resp.Invoices = append(resp.Invoices, InvoiceRowResponse{
			ID:         row.ID,
			CustomerID: row.CustomerID,
			Name:       row.Name,
			Email:      row.Email,
			ImageURL:   row.ImageURL,
			Date:       money.FormatDateToLocal(row.Date),
			Amount:     money.FormatCurrency(row.Amount),
			Status:     row.Status,
		})
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	h.views.Set(ctx, key, payload)
	return c.JSONBlob(http.StatusOK, payload)
}

// CreateForm godoc
// @Summary Create invoice form
// @Tags invoices
// @Produce json
// @Security SessionToken
// @Success 200 {object} CreateFormResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard/invoices/create [get]
func (h *InvoiceHandler) CreateForm(c echo.Context) error {
	customers, err := h.dashboardService.FetchCustomers(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, CreateFormResponse{Customers: customers})
}

// Create godoc
// @Summary Create invoice
// @Tags invoices
// @Accept x-www-form-urlencoded
// @Produce json
// @Security SessionToken
// @Param customerId formData string true "Customer ID"
// @Param amount formData string true "Amount in dollars"
// @Param status formData string true "pending or paid"
// @Success 303 "Created, redirects to the invoice list"
// @Success 200 {object} service.ActionState "Rejected, form state to redisplay"
// @Router /dashboard/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	form, err := formValues(c)
	if err != nil {
		return invalidForm()
	}
	return h.complete(c, h.invoiceService.CreateInvoice(c.Request().Context(), form))
}

// Edit godoc
// @Summary Edit invoice form
// @Tags invoices
// @Produce json
// @Security SessionToken
// @Param id path string true "Invoice ID"
// @Success 200 {object} service.InvoiceEditForm
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard/invoices/{id}/edit [get]
func (h *InvoiceHandler) Edit(c echo.Context) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}

	form, err := h.dashboardService.FetchInvoiceForm(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, form)
}

// Update godoc
// @Summary Update invoice
// @Tags invoices
// @Accept x-www-form-urlencoded
// @Produce json
// @Security SessionToken
// @Param id path string true "Invoice ID"
// @Param customerId formData string true "Customer ID"
// @Param amount formData string true "Amount in dollars"
// @Param status formData string true "pending or paid"
// @Success 303 "Updated, redirects to the invoice list"
// @Success 200 {object} service.ActionState "Rejected, form state to redisplay"
// @Failure 404 {object} errors.ErrorResponse
// @Router /dashboard/invoices/{id} [post]
func (h *InvoiceHandler) Update(c echo.Context) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}
	form, err := formValues(c)
	if err != nil {
		return invalidForm()
	}
	return h.complete(c, h.invoiceService.UpdateInvoice(c.Request().Context(), id, form))
}

// Delete godoc
// @Summary Delete invoice
// @Tags invoices
// @Security SessionToken
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard/invoices/{id}/delete [post]
func (h *InvoiceHandler) Delete(c echo.Context) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}

	result, err := h.invoiceService.DeleteInvoice(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	h.views.Invalidate(c.Request().Context(), result.Revalidate...)
	return c.NoContent(http.StatusNoContent)
}

// complete realizes an action result: a rejected submission redisplays its
// state, an accepted one invalidates views and redirects.
func (h *InvoiceHandler) complete(c echo.Context, result service.ActionResult) error {
	if result.Failed() {
		return c.JSON(http.StatusOK, result.State)
	}
	h.views.Invalidate(c.Request().Context(), result.Revalidate...)
	return c.Redirect(http.StatusSeeOther, result.Redirect)
}

// invoiceID parses the :id path parameter. A malformed id cannot name an
// invoice, so it reads as not found.
func invoiceID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainError(errors.ErrInvoiceNotFound)
	}
	return id, nil
}

func invalidForm() error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid form body",
		Code:  "INVALID_FORM",
	})
}
