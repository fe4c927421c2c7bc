package api

import (
	"github.com/gin-gonic/gin"

	"fintrack/middleware"
	"fintrack/service"
	"fintrack/validation"
)

// CategoryHandler serves the income category endpoints.
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler creates the category handler.
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func categoryInput(body map[string]interface{}) service.CategoryInput {
	in := service.CategoryInput{Name: validation.Str(body, "category_name")}
	if v, ok := body["icon_url"]; ok && v != nil {
		if s, isStr := v.(string); isStr {
			in.IconURL = &s
		}
	}
	return in
}

// List returns the categories visible to the user.
// @Summary List categories
// @Description Lists the system categories plus the user's own. With own=1, only the user's custom categories.
// @Tags categories
// @Produce json
// @Param own query string false "Set to 1 to list only custom categories"
// @Success 200 {array} models.IncomeCategory "Visible categories"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	if c.Query("own") == "1" {
		list, err := h.categories.ListOwn(userID)
		if err != nil {
			Fail(c, err)
			return
		}
		OK(c, list)
		return
	}

	list, err := h.categories.ListVisible(userID)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, list)
}

// Create adds a custom category.
// @Summary Create category
// @Description Creates a custom category for the authenticated user. Names are unique per user, case-insensitively.
// @Tags categories
// @Accept json
// @Produce json
// @Param request body map[string]string true "category_name, optional icon_url"
// @Success 201 {object} models.IncomeCategory "Created category"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Category already exists"
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	cat, err := h.categories.Create(userID, categoryInput(middleware.ValidatedBody(c)))
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, cat)
}

// Update renames a custom category.
// @Summary Update category
// @Description Renames a custom category owned by the authenticated user; system categories cannot be changed.
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body map[string]string true "category_name, optional icon_url"
// @Success 200 {object} models.IncomeCategory "Updated category"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Category not found or not authorized"
// @Failure 409 {object} ErrorResponse "Category name already exists"
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	cat, err := h.categories.Update(pathID(c), userID, categoryInput(middleware.ValidatedBody(c)))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, cat)
}

// Delete removes a custom category.
// @Summary Delete category
// @Description Deletes a custom category owned by the authenticated user, unless an income still references it.
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Category not found or not authorized"
// @Failure 409 {object} ErrorResponse "Category is in use"
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	if err := h.categories.Delete(pathID(c), userID); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}
