package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contact_management/internal/models"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

var _ Contacts = (*ContactRepository)(nil)

const (
	insertContactSQL = `INSERT INTO contacts (user_id, name, phone, address, created_at) VALUES (?, ?, ?, ?, ?)`

	selectContactByIDSQL = `SELECT id, user_id, name, phone, address, created_at FROM contacts WHERE id = ? AND user_id = ?`

	// Newest first; id breaks ties between rows created in the same second.
	listContactsSQL = `SELECT id, user_id, name, phone, address, created_at FROM contacts WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	searchContactsSQL = `SELECT id, user_id, name, phone, address, created_at FROM contacts WHERE user_id = ? AND (name LIKE ? OR phone LIKE ?) ORDER BY created_at DESC, id DESC`

	updateContactSQL = `UPDATE contacts SET name = ?, phone = ?, address = ? WHERE id = ? AND user_id = ?`

	deleteContactSQL = `DELETE FROM contacts WHERE id = ? AND user_id = ?`

	countContactsSQL = `SELECT COUNT(*) FROM contacts WHERE user_id = ?`

	phoneInUseSQL = `SELECT id FROM contacts WHERE user_id = ? AND phone = ? AND id != ? LIMIT 1`
)

// scanContact reads one contacts row in select-column order.
func scanContact(row interface{ Scan(...any) error }) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Address, &c.CreatedAt)
	if err != nil {
		return models.Contact{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

// ListByUser returns the user's contacts, newest first. A non-empty search
// term keeps only rows whose name or phone contains it (SQLite LIKE is
// case-insensitive for ASCII).
func (r *ContactRepository) ListByUser(ctx context.Context, userID int, search string) ([]models.Contact, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if search == "" {
		rows, err = r.db.QueryContext(ctx, listContactsSQL, userID)
	} else {
		pattern := "%" + search + "%"
		rows, err = r.db.QueryContext(ctx, searchContactsSQL, userID, pattern, pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("list contacts for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Contact, 0, 16)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact rows: %w", err)
	}
	return out, nil
}

// GetByID fetches one contact owned by userID. Returns (nil, nil) when no
// such row exists — a row owned by someone else counts as not existing.
func (r *ContactRepository) GetByID(ctx context.Context, userID, contactID int) (*models.Contact, error) {
	row := r.db.QueryRowContext(ctx, selectContactByIDSQL, contactID, userID)
	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select contact %d: %w", contactID, err)
	}
	return &c, nil
}

// Create inserts a new contact and returns it with the generated id.
// A (user_id, phone) collision surfaces as ErrDuplicate.
func (r *ContactRepository) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	c.CreatedAt = c.CreatedAt.UTC()
	res, err := r.db.ExecContext(ctx, insertContactSQL, c.UserID, c.Name, c.Phone, c.Address, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Contact{}, fmt.Errorf("insert contact %q: %w", c.Name, ErrDuplicate)
		}
		return models.Contact{}, fmt.Errorf("insert contact %q: %w", c.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Contact{}, fmt.Errorf("get last insert id for contact %q: %w", c.Name, err)
	}
	c.ID = int(lastID)
	return c, nil
}

// Update overwrites name/phone/address in place; id, user_id and created_at
// never change.
func (r *ContactRepository) Update(ctx context.Context, c models.Contact) error {
	_, err := r.db.ExecContext(ctx, updateContactSQL, c.Name, c.Phone, c.Address, c.ID, c.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update contact %d: %w", c.ID, ErrDuplicate)
		}
		return fmt.Errorf("update contact %d: %w", c.ID, err)
	}
	return nil
}

// Delete removes the contact permanently. Deleting a row that does not
// exist (or is owned by someone else) is not an error here; the service
// layer checks existence first.
func (r *ContactRepository) Delete(ctx context.Context, userID, contactID int) error {
	if _, err := r.db.ExecContext(ctx, deleteContactSQL, contactID, userID); err != nil {
		return fmt.Errorf("delete contact %d: %w", contactID, err)
	}
	return nil
}

func (r *ContactRepository) CountByUser(ctx context.Context, userID int) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countContactsSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contacts for user %d: %w", userID, err)
	}
	return n, nil
}

// PhoneInUse reports whether another contact of this user already holds the
// phone. excludeID skips one contact id (0 skips nothing: ids start at 1).
func (r *ContactRepository) PhoneInUse(ctx context.Context, userID int, phone string, excludeID int) (bool, error) {
	var id int
	err := r.db.QueryRowContext(ctx, phoneInUseSQL, userID, phone, excludeID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check phone %q for user %d: %w", phone, userID, err)
	}
	return true, nil
}
