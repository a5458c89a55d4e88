package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The types below are read projections joined across tables for the dashboard pages.

// LatestInvoiceRow is a raw row of the latest invoices query.
type LatestInvoiceRow struct {
	ID       uuid.UUID
	Amount   int64
	Name     string
	ImageURL string
	Email    string
}

// LatestInvoice is a LatestInvoiceRow with the amount formatted for display.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url"`
	Email    string    `json:"email"`
	Amount   string    `json:"amount"`
}

// InvoiceRow is one line of the searchable invoices table. Amount is in cents.
type InvoiceRow struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID string        `json:"customer_id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	ImageURL   string        `json:"image_url"`
	Date       time.Time     `json:"date"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

// InvoiceForm is an invoice prepared for editing. Amount is in display units.
type InvoiceForm struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     InvoiceStatus   `json:"status"`
}

// CustomerField is the id/name pair used by customer pickers.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerSummaryRow aggregates a customer's invoices. Totals are in cents.
type CustomerSummaryRow struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}

// CustomerSummary is a CustomerSummaryRow with formatted totals.
type CustomerSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

// StatusTotals holds the summed invoice amounts per status, in cents.
type StatusTotals struct {
	Paid    int64
	Pending int64
}

// CardData feeds the dashboard summary cards.
type CardData struct {
	NumberOfCustomers    int64  `json:"number_of_customers"`
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}
