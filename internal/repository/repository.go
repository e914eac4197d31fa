package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"contact_management/internal/models"
)

// ErrDuplicate reports a storage-level uniqueness violation
// (username across users, phone within one user).
var ErrDuplicate = errors.New("duplicate record")

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// Contacts is the persistence contract for address-book entries.
// Every method is scoped by the owning user id; rows belonging to
// other users are simply not visible through it.
type Contacts interface {
	ListByUser(ctx context.Context, userID int, search string) ([]models.Contact, error)
	GetByID(ctx context.Context, userID, contactID int) (*models.Contact, error)
	Create(ctx context.Context, c models.Contact) (models.Contact, error)
	Update(ctx context.Context, c models.Contact) error
	Delete(ctx context.Context, userID, contactID int) error
	CountByUser(ctx context.Context, userID int) (int, error)
	PhoneInUse(ctx context.Context, userID int, phone string, excludeID int) (bool, error)
}

type Repository struct {
	Auth     Authorization
	Contacts Contacts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:     NewUserRepository(db),
		Contacts: NewContactRepository(db),
	}
}

// isUniqueViolation matches the SQLite error text for UNIQUE constraint
// failures; the modernc driver exposes no typed error for it.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
