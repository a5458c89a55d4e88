package model

// Revenue is the aggregated revenue of one calendar month ("Jan", "Feb", ...).
type Revenue struct {
	Month   string `json:"month" gorm:"size:4;primaryKey"`
	Revenue int64  `json:"revenue" gorm:"not null"`
}

// TableName keeps the singular table name used by the dashboard schema.
func (Revenue) TableName() string {
	return "revenue"
}
