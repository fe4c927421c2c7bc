// Package store is the persistence gateway: relational storage of users,
// incomes and categories behind small per-aggregate interfaces. The GORM
// implementation is the production one; Memory backs the tests.
package store

import (
	"errors"
	"time"

	"fintrack/models"
)

// ErrNotFound is returned when no row matches a lookup. Lookups scoped to
// an owner return it for rows that exist but belong to someone else, so the
// two cases cannot be told apart by callers.
var ErrNotFound = errors.New("record not found")

// IncomeFilter restricts a listing to date ∈ [Start, End], both bounds
// inclusive where present.
type IncomeFilter struct {
	Start *time.Time
	End   *time.Time
}

// IncomeStore persists income rows. Mutating lookups take the owner id as
// part of the predicate, never the primary key alone.
type IncomeStore interface {
	CreateIncome(in *models.Income) error
	IncomeByID(id, userID uint) (*models.Income, error)
	ListIncomes(userID uint, f IncomeFilter) ([]models.Income, error)
	UpdateIncome(in *models.Income, updates map[string]interface{}) (*models.Income, error)
	DeleteIncome(in *models.Income) error
	CountIncomesByCategory(categoryID uint) (int64, error)
}

// CategoryStore persists income categories, system and custom.
type CategoryStore interface {
	VisibleCategories(userID uint) ([]models.IncomeCategory, error)
	UserCategories(userID uint) ([]models.IncomeCategory, error)
	CategoryByID(id uint) (*models.IncomeCategory, error)
	UserCategoryByID(id, userID uint) (*models.IncomeCategory, error)
	// UserCategoryByName matches case-insensitively within one user's custom
	// categories. excludeID, when non-zero, skips that row (rename checks).
	UserCategoryByName(userID uint, name string, excludeID uint) (*models.IncomeCategory, error)
	CreateCategory(cat *models.IncomeCategory) error
	UpdateCategory(cat *models.IncomeCategory, updates map[string]interface{}) (*models.IncomeCategory, error)
	DeleteCategory(cat *models.IncomeCategory) error
}

// UserStore persists accounts.
type UserStore interface {
	CreateUser(u *models.User) error
	UserByID(id uint) (*models.User, error)
	UserByEmail(email string) (*models.User, error)
	UpdateUser(u *models.User, updates map[string]interface{}) (*models.User, error)
}

// Store is the full gateway, satisfied by both implementations.
type Store interface {
	IncomeStore
	CategoryStore
	UserStore
}
