package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"invoicedash/internal/model"
)

func TestParseInvoiceForm(t *testing.T) {
	tests := []struct {
		name           string
		form           map[string]string
		expectedFields []string
	}{
		{
			name: "valid",
			form: map[string]string{"customerId": "C1", "amount": "19.99", "status": "paid"},
		},
		{
			name:           "zero amount",
			form:           map[string]string{"customerId": "C1", "amount": "0", "status": "paid"},
			expectedFields: []string{"amount"},
		},
		{
			name:           "negative amount",
			form:           map[string]string{"customerId": "C1", "amount": "-5", "status": "pending"},
			expectedFields: []string{"amount"},
		},
		{
			name:           "non numeric amount",
			form:           map[string]string{"customerId": "C1", "amount": "ten", "status": "pending"},
			expectedFields: []string{"amount"},
		},
		{
			name:           "missing amount",
			form:           map[string]string{"customerId": "C1", "status": "pending"},
			expectedFields: []string{"amount"},
		},
		{
			name:           "rounds to zero cents",
			form:           map[string]string{"customerId": "C1", "amount": "0.004", "status": "paid"},
			expectedFields: []string{"amount"},
		},
		{
			name:           "cents overflow",
			form:           map[string]string{"customerId": "C1", "amount": "100000000000000000", "status": "paid"},
			expectedFields: []string{"amount"},
		},
		{
			name:           "exponent overflow",
			form:           map[string]string{"customerId": "C1", "amount": "1e30", "status": "paid"},
			expectedFields: []string{"amount"},
		},
		{
			name:           "unknown status",
			form:           map[string]string{"customerId": "C1", "amount": "10", "status": "overdue"},
			expectedFields: []string{"status"},
		},
		{
			name:           "empty form",
			form:           map[string]string{},
			expectedFields: []string{"customerId", "amount", "status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, errs := ParseInvoiceForm(tt.form)

			if len(tt.expectedFields) == 0 {
				assert.Nil(t, errs)
				assert.Equal(t, tt.form["customerId"], fields.CustomerID)
				assert.Equal(t, model.InvoiceStatus(tt.form["status"]), fields.Status)
				return
			}

			assert.Len(t, errs, len(tt.expectedFields))
			for _, field := range tt.expectedFields {
				assert.Len(t, errs[field], 1, field)
			}
		})
	}
}

func TestParseInvoiceForm_Messages(t *testing.T) {
	_, errs := ParseInvoiceForm(map[string]string{"amount": "-1", "status": "draft"})

	assert.Equal(t, []string{"Please select a customer."}, errs["customerId"])
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, errs["amount"])
	assert.Equal(t, []string{"Please select an invoice status."}, errs["status"])
}

func TestParseInvoiceForm_CoercesAmount(t *testing.T) {
	fields, errs := ParseInvoiceForm(map[string]string{"customerId": "C1", "amount": " 19.99 ", "status": "paid"})

	assert.Nil(t, errs)
	assert.True(t, decimal.RequireFromString("19.99").Equal(fields.Amount))
	assert.Equal(t, int64(1999), fields.Cents)
}

func TestParseInvoiceForm_AmountBounds(t *testing.T) {
	_, errs := ParseInvoiceForm(map[string]string{"customerId": "C1", "amount": "100000000000000000", "status": "paid"})
	assert.Equal(t, []string{"Please enter a smaller amount."}, errs["amount"])

	_, errs = ParseInvoiceForm(map[string]string{"customerId": "C1", "amount": "0.001", "status": "paid"})
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, errs["amount"])

	fields, errs := ParseInvoiceForm(map[string]string{"customerId": "C1", "amount": "0.005", "status": "paid"})
	assert.Nil(t, errs)
	assert.Equal(t, int64(1), fields.Cents)
}

func TestParseCredentials(t *testing.T) {
	_, ok := ParseCredentials(map[string]string{"email": "user@nextmail.com", "password": "123456"})
	assert.True(t, ok)

	_, ok = ParseCredentials(map[string]string{"email": "user@nextmail.com", "password": "123"})
	assert.False(t, ok)

	_, ok = ParseCredentials(map[string]string{"email": "user", "password": "123456"})
	assert.False(t, ok)
}
