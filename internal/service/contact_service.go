package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"contact_management/internal/models"
	"contact_management/internal/repository"
)

const maxNameLen = 100

// Contact input errors.
const (
	ErrNameRequired  = ValidationError("name is required")
	ErrNameTooLong   = ValidationError("name is too long (max 100 characters)")
	ErrPhoneRequired = ValidationError("phone is required")
	ErrPhoneInvalid  = ValidationError("invalid mobile phone number")
)

var (
	// ErrDuplicatePhone is distinct from generic validation failure.
	ErrDuplicatePhone = errors.New("a contact with this phone already exists")

	// ErrContactNotFound covers both a missing contact and one owned by a
	// different user, so cross-user probing cannot tell them apart.
	ErrContactNotFound = errors.New("contact not found")
)

// ContactParams carries the mutable contact fields for create and update.
type ContactParams struct {
	Name    string
	Phone   string
	Address string
}

func (p ContactParams) trimmed() ContactParams {
	return ContactParams{
		Name:    strings.TrimSpace(p.Name),
		Phone:   strings.TrimSpace(p.Phone),
		Address: strings.TrimSpace(p.Address),
	}
}

// ContactService owns validation and ownership scoping for contact CRUD.
type ContactService struct {
	contactRepo repository.Contacts
}

func NewContactService(repo repository.Contacts) *ContactService {
	return &ContactService{contactRepo: repo}
}

// List returns the user's contacts, newest first, optionally filtered by a
// substring match on name or phone. An empty search term means no filter.
func (s *ContactService) List(ctx context.Context, userID int, search string) ([]models.Contact, error) {
	return s.contactRepo.ListByUser(ctx, userID, strings.TrimSpace(search))
}

// Create validates the input, rejects a phone the user already stores, and
// persists a new contact with a fresh id and the current UTC timestamp.
func (s *ContactService) Create(ctx context.Context, userID int, p ContactParams) (models.Contact, error) {
	p = p.trimmed()
	if p.Name == "" {
		return models.Contact{}, ErrNameRequired
	}
	if utf8.RuneCountInString(p.Name) > maxNameLen {
		return models.Contact{}, ErrNameTooLong
	}
	if p.Phone == "" {
		return models.Contact{}, ErrPhoneRequired
	}
	if !phoneRe.MatchString(p.Phone) {
		return models.Contact{}, ErrPhoneInvalid
	}

	inUse, err := s.contactRepo.PhoneInUse(ctx, userID, p.Phone, 0)
	if err != nil {
		return models.Contact{}, err
	}
	if inUse {
		return models.Contact{}, ErrDuplicatePhone
	}

	created, err := s.contactRepo.Create(ctx, models.Contact{
		UserID:    userID,
		Name:      p.Name,
		Phone:     p.Phone,
		Address:   p.Address,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Contact{}, ErrDuplicatePhone
		}
		return models.Contact{}, err
	}
	return created, nil
}

// Update overwrites name/phone/address of an owned contact. It checks only
// that name and phone are present; the length and pattern rules are
// enforced at create time only.
func (s *ContactService) Update(ctx context.Context, userID, contactID int, p ContactParams) (models.Contact, error) {
	p = p.trimmed()
	if p.Name == "" {
		return models.Contact{}, ErrNameRequired
	}
	if p.Phone == "" {
		return models.Contact{}, ErrPhoneRequired
	}

	existing, err := s.contactRepo.GetByID(ctx, userID, contactID)
	if err != nil {
		return models.Contact{}, err
	}
	if existing == nil {
		return models.Contact{}, ErrContactNotFound
	}

	inUse, err := s.contactRepo.PhoneInUse(ctx, userID, p.Phone, contactID)
	if err != nil {
		return models.Contact{}, err
	}
	if inUse {
		return models.Contact{}, ErrDuplicatePhone
	}

	updated := *existing
	updated.Name = p.Name
	updated.Phone = p.Phone
	updated.Address = p.Address
	if err := s.contactRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Contact{}, ErrDuplicatePhone
		}
		return models.Contact{}, err
	}
	return updated, nil
}

// Delete removes an owned contact permanently.
func (s *ContactService) Delete(ctx context.Context, userID, contactID int) error {
	existing, err := s.contactRepo.GetByID(ctx, userID, contactID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrContactNotFound
	}
	return s.contactRepo.Delete(ctx, userID, contactID)
}

// Count returns the number of contacts the user owns.
func (s *ContactService) Count(ctx context.Context, userID int) (int, error) {
	return s.contactRepo.CountByUser(ctx, userID)
}
