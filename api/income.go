package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/apperr"
	"fintrack/middleware"
	"fintrack/service"
	"fintrack/validation"
)

// IncomeHandler serves the income CRUD endpoints. Validation runs in the
// route pipeline; here the sanitized body is coerced into service inputs.
type IncomeHandler struct {
	incomes *service.IncomeService
}

// NewIncomeHandler creates the income handler.
func NewIncomeHandler(incomes *service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomes: incomes}
}

func pathID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id)
}

// Create records a new income.
// @Summary Create income
// @Description Records an income for the authenticated user. Date defaults to now, category to the system default.
// @Tags incomes
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "amount, optional date/source/description/category_id"
// @Success 201 {object} models.Income "Created income with its category"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/incomes [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	body := middleware.ValidatedBody(c)

	in := service.CreateIncomeInput{
		Source:      validation.Str(body, "source"),
		Description: validation.Str(body, "description"),
	}
	in.Amount, _ = validation.Amount(body["amount"])
	if v, ok := body["date"]; ok && v != nil && v != "" {
		if t, err := validation.ParseDate(v); err == nil {
			in.Date = &t
		}
	}
	if v, ok := body["category_id"]; ok && v != nil {
		if id, err := validation.PositiveInt(v); err == nil {
			in.CategoryID = &id
		}
	}

	income, err := h.incomes.Create(userID, in)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, income)
}

// List returns the user's incomes, newest date first.
// @Summary List incomes
// @Description Lists the authenticated user's incomes, optionally limited to an inclusive date range.
// @Tags incomes
// @Produce json
// @Param start query string false "Range start (2024-01-01)"
// @Param end query string false "Range end, inclusive (2024-12-31)"
// @Success 200 {array} models.Income "Incomes with their categories"
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/incomes [get]
func (h *IncomeHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	start, end, err := parseDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		Fail(c, err)
		return
	}

	incomes, err := h.incomes.List(userID, start, end)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, incomes)
}

// parseDateRange interprets the start/end list filters. A date-only end
// bound is widened to the last second of that day so the range stays
// inclusive.
func parseDateRange(startStr, endStr string) (start, end *time.Time, err error) {
	if startStr != "" {
		t, perr := validation.ParseDate(startStr)
		if perr != nil {
			return nil, nil, apperr.BadRequest("Invalid date format", "Invalid start date")
		}
		start = &t
	}
	if endStr != "" {
		t, perr := validation.ParseDate(endStr)
		if perr != nil {
			return nil, nil, apperr.BadRequest("Invalid date format", "Invalid end date")
		}
		if validation.IsDateOnly(endStr) {
			t = t.Add(24*time.Hour - time.Second)
		}
		end = &t
	}
	return start, end, nil
}

// Get returns a single income.
// @Summary Get income
// @Description Returns one income by id, if it belongs to the authenticated user.
// @Tags incomes
// @Produce json
// @Param id path int true "Income ID"
// @Success 200 {object} models.Income "Income with its category"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Income not found"
// @Router /api/incomes/{id} [get]
func (h *IncomeHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	income, err := h.incomes.GetByID(pathID(c), userID)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, income)
}

// Update partially updates an income.
// @Summary Update income
// @Description Applies the supplied fields to an income owned by the authenticated user.
// @Tags incomes
// @Accept json
// @Produce json
// @Param id path int true "Income ID"
// @Param request body map[string]interface{} true "Any of amount/date/source/description/category_id"
// @Success 200 {object} models.Income "Updated income"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Income not found or not authorized"
// @Router /api/incomes/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	body := middleware.ValidatedBody(c)

	if len(body) == 0 {
		Fail(c, apperr.BadRequest("No update data provided"))
		return
	}

	var in service.UpdateIncomeInput
	if v, ok := body["amount"]; ok && v != nil {
		if a, err := validation.Amount(v); err == nil {
			in.Amount = &a
		}
	}
	if v, ok := body["date"]; ok && v != nil && v != "" {
		if t, err := validation.ParseDate(v); err == nil {
			in.Date = &t
		}
	}
	if _, ok := body["source"]; ok {
		s := validation.Str(body, "source")
		in.Source = &s
	}
	if _, ok := body["description"]; ok {
		s := validation.Str(body, "description")
		in.Description = &s
	}
	if v, ok := body["category_id"]; ok && v != nil {
		if id, err := validation.PositiveInt(v); err == nil {
			in.CategoryID = &id
		}
	}

	income, err := h.incomes.Update(pathID(c), userID, in)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, income)
}

// Delete removes an income.
// @Summary Delete income
// @Description Deletes an income owned by the authenticated user.
// @Tags incomes
// @Param id path int true "Income ID"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Income not found or not authorized"
// @Router /api/incomes/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	if err := h.incomes.Delete(pathID(c), userID); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}
