package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	apperrors "invoicedash/internal/errors"
	"invoicedash/internal/metrics"
	"invoicedash/internal/model"
	"invoicedash/internal/repository"
)

// InvoicesPath is the invoice list view every successful mutation invalidates.
const InvoicesPath = "/dashboard/invoices"

const (
	msgCreateDatabaseError = "Database Error: Failed to create invoice."
	msgUpdateDatabaseError = "Database Error: Failed to update invoice."
)

// ActionState is what a form redisplays after a rejected submission.
type ActionState struct {
	Errors  FieldErrors `json:"errors,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ActionResult is the outcome of a mutation: either a state to redisplay, or
// the views to invalidate and where to navigate next.
type ActionResult struct {
	State      ActionState
	Revalidate []string
	Redirect   string
}

// Failed reports whether the action left a state for the form to show.
func (r ActionResult) Failed() bool {
	return r.State.Message != "" || len(r.State.Errors) > 0
}

func failed(errs FieldErrors, msg string) ActionResult {
	return ActionResult{State: ActionState{Errors: errs, Message: msg}}
}

// InvoiceService runs the create, update and delete actions on invoices.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, form map[string]string) ActionResult
	UpdateInvoice(ctx context.Context, id uuid.UUID, form map[string]string) ActionResult
	DeleteInvoice(ctx context.Context, id uuid.UUID) (ActionResult, error)
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	logger      logrus.FieldLogger
	now         func() time.Time
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo repository.InvoiceRepository, logger logrus.FieldLogger) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateInvoice validates form, stores a new invoice dated today and asks for
// the invoice list to be refreshed.
func (s *invoiceService) CreateInvoice(ctx context.Context, form map[string]string) ActionResult {
	fields, errs := ParseInvoiceForm(form)
	if errs != nil {
		metrics.ObserveInvoiceAction("create", "invalid")
		return failed(errs, msgCreateMissingFields)
	}

	now := s.now().UTC()
	invoice := &model.Invoice{
		CustomerID: fields.CustomerID,
		Amount:     fields.Cents,
		Status:     fields.Status,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		s.logger.WithError(err).WithField("action", "create_invoice").Error("Database Error")
		metrics.ObserveInvoiceAction("create", "error")
		return failed(nil, msgCreateDatabaseError)
	}

	metrics.ObserveInvoiceAction("create", "success")
	return ActionResult{Revalidate: []string{InvoicesPath}, Redirect: InvoicesPath}
}

// UpdateInvoice validates form and rewrites the invoice's customer, amount
// and status. The issue date never changes. Updating an absent id is a no-op.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, form map[string]string) ActionResult {
	fields, errs := ParseInvoiceForm(form)
	if errs != nil {
		metrics.ObserveInvoiceAction("update", "invalid")
		return failed(errs, msgUpdateMissingFields)
	}

	err := s.invoiceRepo.Update(ctx, id, fields.CustomerID, fields.Cents, fields.Status)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"action":     "update_invoice",
			"invoice_id": id,
		}).Error("Database Error")
		metrics.ObserveInvoiceAction("update", "error")
		return failed(nil, msgUpdateDatabaseError)
	}

	metrics.ObserveInvoiceAction("update", "success")
	return ActionResult{Revalidate: []string{InvoicesPath}, Redirect: InvoicesPath}
}

// DeleteInvoice removes the invoice. Deleting an absent id succeeds; any
// storage failure is returned as ErrDeleteInvoice.
func (s *invoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) (ActionResult, error) {
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"action":     "delete_invoice",
			"invoice_id": id,
		}).Error("Database Error")
		metrics.ObserveInvoiceAction("delete", "error")
		return ActionResult{}, apperrors.ErrDeleteInvoice
	}

	metrics.ObserveInvoiceAction("delete", "success")
	return ActionResult{Revalidate: []string{InvoicesPath}}, nil
}
