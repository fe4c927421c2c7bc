package api

import (
	"github.com/gin-gonic/gin"

	"fintrack/middleware"
	"fintrack/service"
	"fintrack/validation"
)

// UserHandler serves the profile endpoints.
type UserHandler struct {
	auth *service.AuthService
}

// NewUserHandler creates the user handler.
func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// GetProfile returns the authenticated user's profile.
// @Summary Get profile
// @Tags user
// @Produce json
// @Success 200 {object} models.User "Profile"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/user/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.auth.Profile(middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, user)
}

// UpdateProfile applies a partial profile update. Email is immutable.
// @Summary Update profile
// @Tags user
// @Accept json
// @Produce json
// @Param request body map[string]string true "Any of firstname/lastname/username"
// @Success 200 {object} models.User "Updated profile"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/user/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	body := middleware.ValidatedBody(c)

	var in service.UpdateProfileInput
	if _, ok := body["firstname"]; ok {
		s := validation.Str(body, "firstname")
		in.Firstname = &s
	}
	if _, ok := body["lastname"]; ok {
		s := validation.Str(body, "lastname")
		in.Lastname = &s
	}
	if _, ok := body["username"]; ok {
		s := validation.Str(body, "username")
		in.Username = &s
	}

	user, err := h.auth.UpdateProfile(middleware.GetCurrentUserID(c), in)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, user)
}

// ChangePassword replaces the password after checking the current one.
// @Summary Change password
// @Tags user
// @Accept json
// @Produce json
// @Param request body map[string]string true "currentPassword, newPassword"
// @Success 200 {object} map[string]string "Confirmation message"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Current password is incorrect"
// @Router /api/user/profile/password [patch]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	body := middleware.ValidatedBody(c)

	err := h.auth.ChangePassword(
		middleware.GetCurrentUserID(c),
		validation.Str(body, "currentPassword"),
		validation.Str(body, "newPassword"),
	)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, gin.H{"message": "Password updated successfully"})
}
