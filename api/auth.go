package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fintrack/config"
	"fintrack/middleware"
	"fintrack/service"
	"fintrack/validation"
)

// AuthHandler serves signup, login, logout and the current-user endpoint.
// The session is a signed JWT in an HTTP-only cookie; no token ever appears
// in a response body.
type AuthHandler struct {
	cfg   *config.Config
	auth  *service.AuthService
	email *service.EmailService
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(cfg *config.Config, auth *service.AuthService, email *service.EmailService) *AuthHandler {
	return &AuthHandler{cfg: cfg, auth: auth, email: email}
}

// cookieOptions picks the cookie security attributes for the run mode.
// Cross-site frontends need SameSite=None, which browsers only accept with
// Secure, so release mode uses that pair; local development stays on Lax.
func (h *AuthHandler) cookieOptions() (secure bool, sameSite http.SameSite) {
	if h.cfg.Server.Mode == "release" {
		return true, http.SameSiteNoneMode
	}
	return false, http.SameSiteLaxMode
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, userID uint, email string) error {
	token, err := middleware.GenerateToken(userID, email, h.cfg.JWT.ExpireTime)
	if err != nil {
		return err
	}
	secure, sameSite := h.cookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.TokenCookieName, token, int(h.cfg.JWT.ExpireTime.Seconds()), "/", "", secure, true)
	return nil
}

func (h *AuthHandler) clearAuthCookie(c *gin.Context) {
	secure, sameSite := h.cookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", secure, true)
}

// Signup creates an account and logs the user in.
// @Summary Sign up
// @Description Creates an account and starts a session via the auth cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]string true "email, password, optional username/firstname/lastname"
// @Success 201 {object} models.User "Created account"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	body := middleware.ValidatedBody(c)

	user, err := h.auth.Signup(service.SignupInput{
		Email:     validation.Str(body, "email"),
		Password:  validation.Str(body, "password"),
		Username:  validation.Str(body, "username"),
		Firstname: validation.Str(body, "firstname"),
		Lastname:  validation.Str(body, "lastname"),
	})
	if err != nil {
		Fail(c, err)
		return
	}

	if err := h.setAuthCookie(c, user.ID, user.Email); err != nil {
		Fail(c, err)
		return
	}

	if h.email.Enabled() {
		go func(email, username string) {
			if err := h.email.SendWelcomeEmail(email, username); err != nil {
				log.Warn().Err(err).Str("email", email).Msg("welcome email failed")
			}
		}(user.Email, user.Username)
	}

	Created(c, user)
}

// Login verifies credentials and starts a session.
// @Summary Log in
// @Description Verifies credentials and starts a session via the auth cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]string true "email, password"
// @Success 200 {object} models.User "Authenticated account"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	body := middleware.ValidatedBody(c)

	user, err := h.auth.Login(validation.Str(body, "email"), validation.Str(body, "password"))
	if err != nil {
		Fail(c, err)
		return
	}

	if err := h.setAuthCookie(c, user.ID, user.Email); err != nil {
		Fail(c, err)
		return
	}

	OK(c, user)
}

// Logout ends the session.
// @Summary Log out
// @Description Clears the session cookie. Always succeeds.
// @Tags auth
// @Success 204 "Session cleared"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearAuthCookie(c)
	NoContent(c)
}

// Me returns the authenticated account.
// @Summary Current user
// @Description Returns the account behind the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} models.User "Current account"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.Profile(middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, user)
}
