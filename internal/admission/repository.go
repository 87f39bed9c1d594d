// internal/admission/repository.go
//
// Persistence for admission applications: a single parameterized insert
// per submission.  The caller supplies a context so the write respects
// request deadlines.  Raw driver errors stay server-side; handlers map
// any failure to a generic message.

package admission

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Schema is applied by `web -migrate`.
const Schema = `
CREATE TABLE IF NOT EXISTS applications (
    id              BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    full_name       VARCHAR(255) NOT NULL,
    date_of_birth   DATE         NOT NULL,
    religion        VARCHAR(100) NOT NULL,
    class_interest  VARCHAR(100) NOT NULL,
    gender          VARCHAR(20)  NOT NULL,
    address         VARCHAR(500) NOT NULL,
    nationality     VARCHAR(100) NOT NULL,
    state           VARCHAR(100) NOT NULL,
    city            VARCHAR(100) NOT NULL,
    student_phone   VARCHAR(20),
    student_email   VARCHAR(255),
    mother_name     VARCHAR(255) NOT NULL,
    father_name     VARCHAR(255) NOT NULL,
    mother_phone    VARCHAR(20)  NOT NULL,
    father_phone    VARCHAR(20)  NOT NULL,
    parent_email    VARCHAR(255) NOT NULL,
    parent_address  VARCHAR(500) NOT NULL,
    submission_date DATETIME     NOT NULL,
    status          VARCHAR(20)  NOT NULL DEFAULT 'pending',
    application_id  VARCHAR(20)  NOT NULL,
    ip_address      VARCHAR(45),
    PRIMARY KEY (id),
    UNIQUE KEY uq_application_id (application_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`

const insertQuery = `
    INSERT INTO applications (
        full_name, date_of_birth, religion, class_interest, gender, address,
        nationality, state, city, student_phone, student_email,
        mother_name, father_name, mother_phone, father_phone,
        parent_email, parent_address,
        submission_date, status, application_id, ip_address
    ) VALUES (
        ?, ?, ?, ?, ?, ?,
        ?, ?, ?, ?, ?,
        ?, ?, ?, ?,
        ?, ?,
        NOW(), 'pending', ?, ?
    )`

// Repository owns the applications table.  The pool is injected at
// startup; the repository never opens connections.
type Repository struct {
	db *sqlx.DB
}

// NewRepository wraps the shared pool.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Insert appends one application row.  Rows are never mutated by this
// pipeline; status transitions belong to the admissions back office.
// It returns the engine-assigned key, which is logged but not exposed
// to the submitter.
func (r *Repository) Insert(ctx context.Context, a *Application) (int64, error) {
	result, err := r.db.ExecContext(ctx, insertQuery,
		a.FullName, a.DateOfBirth, a.Religion, a.ClassInterest, a.Gender, a.Address,
		a.Nationality, a.State, a.City, a.StudentPhone, a.StudentEmail,
		a.MotherName, a.FatherName, a.MotherPhone, a.FatherPhone,
		a.ParentEmail, a.ParentAddress,
		a.ApplicationID, a.IPAddress,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
