package service

import (
	"errors"
	"math"
	"time"
	"unicode/utf8"

	"fintrack/apperr"
	"fintrack/models"
	"fintrack/store"
)

// DefaultCategoryID is the system category incomes fall back to when the
// request names none. The seeder pins it to the first system row.
const DefaultCategoryID uint = 1

const (
	maxSourceLen      = 100
	maxDescriptionLen = 500
)

// IncomeService implements income CRUD with per-owner scoping. Every
// mutating operation loads the row by (id, ownerID) first; a row owned by
// someone else is indistinguishable from a missing one.
type IncomeService struct {
	incomes    store.IncomeStore
	categories store.CategoryStore
}

// NewIncomeService wires the service to its gateways.
func NewIncomeService(incomes store.IncomeStore, categories store.CategoryStore) *IncomeService {
	return &IncomeService{incomes: incomes, categories: categories}
}

// CreateIncomeInput carries the fields of a create request after coercion.
type CreateIncomeInput struct {
	Amount      float64
	Date        *time.Time
	Source      string
	Description string
	CategoryID  *uint
}

// UpdateIncomeInput carries a partial update; nil means "keep the current
// value".
type UpdateIncomeInput struct {
	Amount      *float64
	Date        *time.Time
	Source      *string
	Description *string
	CategoryID  *uint
}

// resolveCategory returns the category id the income may reference: a
// system category, or a custom category owned by ownerID. Anything else,
// including another user's custom category, is an invalid reference.
func (s *IncomeService) resolveCategory(ownerID, categoryID uint) (uint, error) {
	cat, err := s.categories.CategoryByID(categoryID)
	if errors.Is(err, store.ErrNotFound) {
		return 0, apperr.BadRequest("Invalid category")
	}
	if err != nil {
		return 0, err
	}
	if cat.UserID != nil && *cat.UserID != ownerID {
		return 0, apperr.BadRequest("Invalid category")
	}
	return cat.ID, nil
}

func validateAmount(amount float64) error {
	// NaN fails every comparison, so the non-finite cases need their own
	// check ahead of the sign one.
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return apperr.BadRequest("Amount must be greater than 0")
	}
	return nil
}

func validateSource(source string) error {
	if utf8.RuneCountInString(source) > maxSourceLen {
		return apperr.BadRequest("Source cannot exceed 100 characters")
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return apperr.BadRequest("Description cannot exceed 500 characters")
	}
	return nil
}

// Create persists a new income for ownerID and returns it joined with its
// category. Date defaults to now, the category to the system default.
func (s *IncomeService) Create(ownerID uint, in CreateIncomeInput) (*models.Income, error) {
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}
	if err := validateSource(in.Source); err != nil {
		return nil, err
	}
	if err := validateDescription(in.Description); err != nil {
		return nil, err
	}

	categoryID := DefaultCategoryID
	if in.CategoryID != nil {
		id, err := s.resolveCategory(ownerID, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		categoryID = id
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	income := &models.Income{
		UserID:      ownerID,
		Amount:      in.Amount,
		Date:        date,
		Source:      in.Source,
		Description: in.Description,
		CategoryID:  categoryID,
	}
	if err := s.incomes.CreateIncome(income); err != nil {
		return nil, err
	}
	return income, nil
}

// List returns ownerID's incomes, optionally restricted to date ∈
// [start, end], most recent date first with ties broken by creation order.
func (s *IncomeService) List(ownerID uint, start, end *time.Time) ([]models.Income, error) {
	if start != nil && end != nil && start.After(*end) {
		return nil, apperr.BadRequest("Start date cannot be after end date")
	}
	return s.incomes.ListIncomes(ownerID, store.IncomeFilter{Start: start, End: end})
}

// GetByID returns the income if it exists and belongs to ownerID.
func (s *IncomeService) GetByID(id, ownerID uint) (*models.Income, error) {
	income, err := s.incomes.IncomeByID(id, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("Income not found")
	}
	if err != nil {
		return nil, err
	}
	return income, nil
}

// Update re-validates and applies only the supplied fields, after the
// ownership check. Omitted fields keep their prior values.
func (s *IncomeService) Update(id, ownerID uint, in UpdateIncomeInput) (*models.Income, error) {
	income, err := s.incomes.IncomeByID(id, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("Income not found or not authorized")
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Amount != nil {
		if err := validateAmount(*in.Amount); err != nil {
			return nil, err
		}
		updates["amount"] = *in.Amount
	}
	if in.Source != nil {
		if err := validateSource(*in.Source); err != nil {
			return nil, err
		}
		updates["source"] = *in.Source
	}
	if in.Description != nil {
		if err := validateDescription(*in.Description); err != nil {
			return nil, err
		}
		updates["description"] = *in.Description
	}
	if in.Date != nil {
		updates["date"] = *in.Date
	}
	if in.CategoryID != nil {
		categoryID, err := s.resolveCategory(ownerID, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = categoryID
	}

	if len(updates) == 0 {
		return income, nil
	}
	return s.incomes.UpdateIncome(income, updates)
}

// Delete removes the income after the ownership check. No side effects
// beyond the row itself.
func (s *IncomeService) Delete(id, ownerID uint) error {
	income, err := s.incomes.IncomeByID(id, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("Income not found or not authorized")
	}
	if err != nil {
		return err
	}
	return s.incomes.DeleteIncome(income)
}
