package service

import (
	"errors"
	"fmt"
	"strings"

	"contact_management/internal/models"
	"contact_management/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// Registration input errors, reported field by field.
const (
	ErrUsernameTooShort = ValidationError("username must be at least 3 characters")
	ErrPasswordTooShort = ValidationError("password must be at least 6 characters")
	ErrUsernameInvalid  = ValidationError("username may only contain letters, digits and underscores")
)

var (
	// ErrUsernameTaken is distinct from generic validation failure.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is the single login failure: unknown user and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService handles registration and credential checks.
type AuthService struct {
	authRepo repository.Authorization
}

func NewAuthService(repo repository.Authorization) *AuthService {
	return &AuthService{authRepo: repo}
}

// SignUp validates the credentials, hashes the password and creates the
// user. The raw password is never stored or logged.
func (s *AuthService) SignUp(username, password string) (int, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if len(username) < minUsernameLen {
		return 0, ErrUsernameTooShort
	}
	if len(password) < minPasswordLen {
		return 0, ErrPasswordTooShort
	}
	if !usernameRe.MatchString(username) {
		return 0, ErrUsernameInvalid
	}

	existing, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrUsernameTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}

	id, err := s.authRepo.Create(username, hash)
	if err != nil {
		// The UNIQUE constraint catches registrations racing past the
		// pre-check above.
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	return id, nil
}

// Authenticate verifies the credentials and returns the matching user.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
