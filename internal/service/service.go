package service

import (
	"context"
	"time"

	"contact_management/internal/models"
	"contact_management/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	Authenticate(username, password string) (*models.User, error)
}

// Sessions is the server-side association between opaque tokens and
// authenticated identities.
type Sessions interface {
	Create(userID int, username string) string
	Get(token string) (SessionIdentity, bool)
	Delete(token string)
	TTL() time.Duration
	Run(ctx context.Context, tick time.Duration)
}

// Contacts exposes the per-user address-book operations.
type Contacts interface {
	List(ctx context.Context, userID int, search string) ([]models.Contact, error)
	Create(ctx context.Context, userID int, p ContactParams) (models.Contact, error)
	Update(ctx context.Context, userID, contactID int, p ContactParams) (models.Contact, error)
	Delete(ctx context.Context, userID, contactID int) error
	Count(ctx context.Context, userID int) (int, error)
}

// Service aggregates all sub-services behind one dependency for the
// HTTP layer.
type Service struct {
	Authorization
	Sessions
	Contacts
}

func NewService(repos *repository.Repository, sessionTTL time.Duration) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth),
		Sessions:      NewSessionManager(sessionTTL),
		Contacts:      NewContactService(repos.Contacts),
	}
}
