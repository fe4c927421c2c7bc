package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"fintrack/apperr"
	"fintrack/models"
	"fintrack/store"
)

// AuthService covers account lifecycle: signup, credential checks, profile
// reads and updates, password changes.
type AuthService struct {
	users store.UserStore
}

// NewAuthService wires the service to its gateway.
func NewAuthService(users store.UserStore) *AuthService {
	return &AuthService{users: users}
}

// SignupInput carries a validated signup request.
type SignupInput struct {
	Email     string
	Password  string
	Username  string
	Firstname string
	Lastname  string
}

// Signup creates an account with a bcrypt password hash. The username
// defaults to the email's local part when omitted.
func (s *AuthService) Signup(in SignupInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	_, err := s.users.UserByEmail(email)
	if err == nil {
		return nil, apperr.Conflict("Email already in use")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		if at := strings.Index(email, "@"); at > 0 {
			username = email[:at]
		} else {
			username = email
		}
	}

	user := &models.User{
		Email:          email,
		Username:       username,
		Firstname:      strings.TrimSpace(in.Firstname),
		Lastname:       strings.TrimSpace(in.Lastname),
		HashedPassword: string(hash),
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials. An unknown email and a wrong password
// produce the same error, so accounts cannot be enumerated.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.UserByEmail(email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	return user, nil
}

// Profile returns the account by id.
func (s *AuthService) Profile(userID uint) (*models.User, error) {
	user, err := s.users.UserByID(userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfileInput carries a partial profile update; nil keeps the
// current value. Email is immutable.
type UpdateProfileInput struct {
	Firstname *string
	Lastname  *string
	Username  *string
}

// UpdateProfile applies the supplied fields.
func (s *AuthService) UpdateProfile(userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Firstname != nil {
		updates["firstname"] = strings.TrimSpace(*in.Firstname)
	}
	if in.Lastname != nil {
		updates["lastname"] = strings.TrimSpace(*in.Lastname)
	}
	if in.Username != nil {
		updates["username"] = strings.TrimSpace(*in.Username)
	}

	if len(updates) == 0 {
		return user, nil
	}
	return s.users.UpdateUser(user, updates)
}

// ChangePassword replaces the password after verifying the current one.
func (s *AuthService) ChangePassword(userID uint, current, next string) error {
	user, err := s.Profile(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(current)); err != nil {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.users.UpdateUser(user, map[string]interface{}{"hashed_password": string(hash)})
	return err
}
