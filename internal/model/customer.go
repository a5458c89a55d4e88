package model

// Customer is the party an invoice is billed to. Customers are read-only here.
type Customer struct {
	ID       string `json:"id" gorm:"type:char(36);primaryKey"`
	Name     string `json:"name" gorm:"size:255;not null;index"`
	Email    string `json:"email" gorm:"size:255;not null"`
	ImageURL string `json:"image_url" gorm:"column:image_url;size:255;not null"`
}
