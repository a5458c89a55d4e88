package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice is a bill issued to a customer. Amount is stored in cents.
type Invoice struct {
	ID         uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	CustomerID string        `json:"customer_id" gorm:"type:char(36);not null;index"`
	Amount     int64         `json:"amount" gorm:"not null"`
	Status     InvoiceStatus `json:"status" gorm:"type:varchar(255);not null;index"`
	Date       time.Time     `json:"date" gorm:"type:date;not null;index"`

	// Relations
	Customer Customer `json:"-" gorm:"foreignKey:CustomerID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
