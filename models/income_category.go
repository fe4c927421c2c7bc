package models

import "time"

// IncomeCategory is either a system category (UserID nil, visible to every
// user) or a custom category owned by exactly one user. Custom names are
// unique per owner, case-insensitively; the two namespaces are independent.
type IncomeCategory struct {
	ID        uint      `json:"category_id" gorm:"column:category_id;primaryKey"`
	Name      string    `json:"category_name" gorm:"column:category_name;size:50;not null;index"`
	IconURL   *string   `json:"icon_url" gorm:"column:icon_url;size:255"`
	IsCustom  bool      `json:"is_custom" gorm:"not null;default:false;index"`
	UserID    *uint     `json:"user_id" gorm:"column:user_id;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (IncomeCategory) TableName() string {
	return "income_categories"
}
