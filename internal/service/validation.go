package service

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"invoicedash/internal/model"
	"invoicedash/internal/money"
)

const (
	msgSelectCustomer = "Please select a customer."
	msgAmountPositive = "Please enter an amount greater than $0."
	msgSelectStatus   = "Please select an invoice status."
	msgAmountTooLarge = "Please enter a smaller amount."

	msgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	msgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
)

// FieldErrors maps a form field name to the messages that rejected it.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// InvoiceFields is a validated invoice submission. Amount is in display
// units; Cents is the same amount as stored.
type InvoiceFields struct {
	CustomerID string              `form:"customerId" validate:"required"`
	Amount     decimal.Decimal     `form:"amount" validate:"gt=0"`
	Cents      int64               `form:"-" validate:"-"`
	Status     model.InvoiceStatus `form:"status" validate:"required,oneof=pending paid"`
}

// Credentials is the sign-in form.
type Credentials struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=6"`
}

var validate = NewValidator()

// NewValidator returns a validator that reports fields by their form name and
// compares decimal amounts numerically.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

var invoiceFieldMessages = map[string]string{
	"customerId": msgSelectCustomer,
	"amount":     msgAmountPositive,
	"status":     msgSelectStatus,
}

// ParseInvoiceForm coerces an untyped form submission into InvoiceFields.
// A non-empty FieldErrors means the submission was rejected.
func ParseInvoiceForm(form map[string]string) (InvoiceFields, FieldErrors) {
	errs := FieldErrors{}
	fields := InvoiceFields{
		CustomerID: strings.TrimSpace(form["customerId"]),
		Status:     model.InvoiceStatus(form["status"]),
	}

	raw := strings.TrimSpace(form["amount"])
	if raw == "" {
		raw = "0"
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		errs.add("amount", msgAmountPositive)
	}
	fields.Amount = amount

	if err := validate.Struct(fields); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			errs.add("amount", msgAmountPositive)
			return fields, errs
		}
		for _, fe := range verrs {
			if _, seen := errs[fe.Field()]; seen {
				continue
			}
			errs.add(fe.Field(), invoiceFieldMessages[fe.Field()])
		}
	}
	if _, rejected := errs["amount"]; !rejected {
		// a positive amount can still round to zero cents or overflow the column
		cents, err := money.ToMinorUnits(fields.Amount)
		switch {
		case err != nil:
			errs.add("amount", msgAmountTooLarge)
		case cents <= 0:
			errs.add("amount", msgAmountPositive)
		default:
			fields.Cents = cents
		}
	}
	if len(errs) > 0 {
		return InvoiceFields{}, errs
	}
	return fields, nil
}

// ParseCredentials validates a sign-in submission.
func ParseCredentials(form map[string]string) (Credentials, bool) {
	creds := Credentials{
		Email:    strings.TrimSpace(form["email"]),
		Password: form["password"],
	}
	if err := validate.Struct(creds); err != nil {
		return Credentials{}, false
	}
	return creds, true
}
