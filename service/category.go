package service

import (
	"errors"
	"strings"

	"fintrack/apperr"
	"fintrack/models"
	"fintrack/store"
)

// CategoryService manages income categories. System categories (no owner)
// are read-only here; users create, rename and delete only their own.
type CategoryService struct {
	categories store.CategoryStore
	incomes    store.IncomeStore
}

// NewCategoryService wires the service to its gateways.
func NewCategoryService(categories store.CategoryStore, incomes store.IncomeStore) *CategoryService {
	return &CategoryService{categories: categories, incomes: incomes}
}

// CategoryInput carries the fields of a create or rename request.
type CategoryInput struct {
	Name    string
	IconURL *string
}

// ListVisible returns the categories the user can assign to an income:
// all system categories plus their own custom ones.
func (s *CategoryService) ListVisible(ownerID uint) ([]models.IncomeCategory, error) {
	return s.categories.VisibleCategories(ownerID)
}

// ListOwn returns only the user's custom categories.
func (s *CategoryService) ListOwn(ownerID uint) ([]models.IncomeCategory, error) {
	return s.categories.UserCategories(ownerID)
}

// Create adds a custom category for ownerID. Names are unique per owner,
// case-insensitively.
func (s *CategoryService) Create(ownerID uint, in CategoryInput) (*models.IncomeCategory, error) {
	name := strings.TrimSpace(in.Name)
	_, err := s.categories.UserCategoryByName(ownerID, name, 0)
	if err == nil {
		return nil, apperr.Conflict("Category already exists")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	cat := &models.IncomeCategory{
		Name:     name,
		IconURL:  in.IconURL,
		IsCustom: true,
		UserID:   &ownerID,
	}
	if err := s.categories.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Update renames a custom category and/or changes its icon. System
// categories and other users' categories come back as not found.
func (s *CategoryService) Update(id, ownerID uint, in CategoryInput) (*models.IncomeCategory, error) {
	cat, err := s.categories.UserCategoryByID(id, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("Category not found or not authorized")
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(in.Name); name != "" {
		_, err := s.categories.UserCategoryByName(ownerID, name, cat.ID)
		if err == nil {
			return nil, apperr.Conflict("Category name already exists")
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		updates["category_name"] = name
	}
	if in.IconURL != nil {
		updates["icon_url"] = in.IconURL
	}

	if len(updates) == 0 {
		return cat, nil
	}
	return s.categories.UpdateCategory(cat, updates)
}

// Delete removes a custom category, refusing while any income still
// references it.
func (s *CategoryService) Delete(id, ownerID uint) error {
	cat, err := s.categories.UserCategoryByID(id, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("Category not found or not authorized")
	}
	if err != nil {
		return err
	}

	count, err := s.incomes.CountIncomesByCategory(cat.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("Cannot delete category that is being used")
	}
	return s.categories.DeleteCategory(cat)
}
