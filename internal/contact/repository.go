// internal/contact/repository.go

package contact

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Schema is applied by `web -migrate`.
const Schema = `
CREATE TABLE IF NOT EXISTS contacts (
    id              BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    name            VARCHAR(255) NOT NULL,
    email           VARCHAR(255) NOT NULL,
    phone           VARCHAR(20)  NOT NULL,
    subject         VARCHAR(255) NOT NULL,
    message         TEXT         NOT NULL,
    submission_date DATETIME     NOT NULL,
    ip_address      VARCHAR(45),
    PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`

const insertQuery = `
    INSERT INTO contacts
        (name, email, phone, subject, message, submission_date, ip_address)
    VALUES (?, ?, ?, ?, ?, NOW(), ?)`

// Repository owns the contacts table.
type Repository struct {
	db *sqlx.DB
}

// NewRepository wraps the shared pool.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Insert appends one contact row and returns the engine-assigned key,
// which doubles as the contactId quoted in the response.
func (r *Repository) Insert(ctx context.Context, m *Message) (int64, error) {
	result, err := r.db.ExecContext(ctx, insertQuery,
		m.Name, m.Email, m.Phone, m.Subject, m.Body, m.IPAddress)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
