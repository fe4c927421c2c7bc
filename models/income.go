package models

import "time"

// Income is a single income record. Every lookup that mutates or returns a
// row is scoped by (income_id, user_id); the id alone is never enough.
type Income struct {
	ID           uint           `json:"income_id" gorm:"column:income_id;primaryKey"`
	Amount       float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date         time.Time      `json:"date" gorm:"not null;index"`
	Source       string         `json:"source" gorm:"size:100"`
	Description  string         `json:"description" gorm:"size:500"`
	CreationDate time.Time      `json:"creation_date" gorm:"column:creation_date;autoCreateTime"`
	UserID       uint           `json:"user_id" gorm:"column:user_id;index;not null"`
	CategoryID   uint           `json:"category_id" gorm:"column:category_id;index;not null"`
	Category     IncomeCategory `json:"category" gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName sets the table name.
func (Income) TableName() string {
	return "incomes"
}
