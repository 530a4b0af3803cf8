package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contact_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// ContactRepository defines operations for contact data
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindByID(ctx context.Context, id int64) (*model.Contact, error)
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, id, userID int64) error
	Search(ctx context.Context, userID int64, filters model.ContactFilters) ([]model.Contact, int, error)
}

type contactRepository struct {
	db DBTX
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db DBTX) ContactRepository {
	return &contactRepository{db: db}
}

const contactColumns = `id, user_id, first_name, last_name, email, phone, created_at, updated_at`

func scanContact(row pgx.Row, c *model.Contact) error {
	return row.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
}

// Create inserts a new contact into the database
func (r *contactRepository) Create(ctx context.Context, c *model.Contact) error {
	sql := `INSERT INTO contacts (user_id, first_name, last_name, email, phone)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, c.UserID, c.FirstName, c.LastName, c.Email, c.Phone).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// FindByID retrieves a contact by its ID, nil when absent
func (r *contactRepository) FindByID(ctx context.Context, id int64) (*model.Contact, error) {
	c := &model.Contact{}
	sql := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	if err := scanContact(r.db.QueryRow(ctx, sql, id), c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find contact by ID: %w", err)
	}
	return c, nil
}

// Update overwrites every editable field of an owned contact
func (r *contactRepository) Update(ctx context.Context, c *model.Contact) error {
	sql := `UPDATE contacts
            SET first_name = $1, last_name = $2, email = $3, phone = $4, updated_at = NOW()
            WHERE id = $5 AND user_id = $6 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, c.FirstName, c.LastName, c.Email, c.Phone, c.ID, c.UserID).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return nil
}

// Delete removes an owned contact
func (r *contactRepository) Delete(ctx context.Context, id, userID int64) error {
	sql := `DELETE FROM contacts WHERE id = $1 AND user_id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Search returns one page of the user's contacts matching the filters and
// the total number of matches
func (r *contactRepository) Search(ctx context.Context, userID int64, filters model.ContactFilters) ([]model.Contact, int, error) {
	var where strings.Builder
	where.WriteString(` FROM contacts WHERE user_id = $1`)
	args := []interface{}{userID}
	argCount := 2 // Start after user_id

	if filters.Name != nil && *filters.Name != "" {
		where.WriteString(fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+*filters.Name+"%")
		argCount++
	}
	if filters.Email != nil && *filters.Email != "" {
		where.WriteString(fmt.Sprintf(" AND email ILIKE $%d", argCount))
		args = append(args, "%"+*filters.Email+"%")
		argCount++
	}
	if filters.Phone != nil && *filters.Phone != "" {
		where.WriteString(fmt.Sprintf(" AND phone ILIKE $%d", argCount))
		args = append(args, "%"+*filters.Phone+"%")
		argCount++
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	query := `SELECT ` + contactColumns + where.String() +
		fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", argCount, argCount+1)
	args = append(args, filters.Size, (filters.Page-1)*filters.Size)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var c model.Contact
		if err := scanContact(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating contact rows: %w", err)
	}
	return contacts, total, nil
}
