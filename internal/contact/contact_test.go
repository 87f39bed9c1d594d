// internal/contact/contact_test.go

package contact

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/beautifulminds/website/internal/form"
)

func validSubmission() form.Values {
	return form.Values{
		"contactName":    "Ada Eze",
		"contactEmail":   "ada@example.com",
		"contactPhone":   "08031234567",
		"contactSubject": "Admission enquiry",
		"contactMessage": "I would like to know the resumption date for next term.",
	}
}

func TestPrepareValid(t *testing.T) {
	m, res := Prepare(validSubmission())
	if !res.OK() {
		t.Fatalf("unexpected errors: %#v", res.Errors)
	}
	if m.Phone != "2348031234567" {
		t.Errorf("phone = %q", m.Phone)
	}
}

func TestPrepareMissingRequired(t *testing.T) {
	m, res := Prepare(form.Values{})
	if m != nil || res.OK() {
		t.Fatal("empty submission must fail")
	}
	for _, key := range []string{"contactName", "contactEmail", "contactPhone", "contactMessage"} {
		if _, ok := res.Errors[key]; !ok {
			t.Errorf("missing error for %s", key)
		}
	}
	// Subject defaults with a warning, never errors.
	if _, ok := res.Errors["contactSubject"]; ok {
		t.Error("subject must not be a blocking error")
	}
}

func TestPrepareSubjectDefault(t *testing.T) {
	v := validSubmission()
	delete(v, "contactSubject")
	m, res := Prepare(v)
	if !res.OK() {
		t.Fatalf("unexpected errors: %#v", res.Errors)
	}
	if m.Subject != "General Inquiry" {
		t.Errorf("subject = %q", m.Subject)
	}
	if _, ok := res.Warnings["contactSubject"]; !ok {
		t.Error("missing default-subject warning")
	}
}

func TestPrepareShortMessageWarns(t *testing.T) {
	v := validSubmission()
	v["contactMessage"] = "Hi"
	m, res := Prepare(v)
	if !res.OK() || m == nil {
		t.Fatalf("short message must warn, not block: %#v", res.Errors)
	}
	if _, ok := res.Warnings["contactMessage"]; !ok {
		t.Error("missing short-message warning")
	}
}

func TestPrepareBadPhoneBlocks(t *testing.T) {
	v := validSubmission()
	v["contactPhone"] = "12345"
	_, res := Prepare(v)
	if _, ok := res.Errors["contactPhone"]; !ok {
		t.Error("out-of-range phone must be a blocking error")
	}
}

func TestResponseDataTruncatesMessage(t *testing.T) {
	m := &Message{Body: strings.Repeat("a", 300)}
	data := m.ResponseData(5)
	msg := data["message"].(string)
	if len(msg) != 203 || !strings.HasSuffix(msg, "...") {
		t.Errorf("truncation wrong: len=%d", len(msg))
	}
}

func TestInsertContact(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewRepository(sqlx.NewDb(db, "sqlmock"))

	m := &Message{
		Name: "Ada Eze", Email: "ada@example.com", Phone: "2348031234567",
		Subject: "Admission enquiry", Body: "When does next term start?",
		IPAddress: "203.0.113.9",
	}
	mock.ExpectExec("INSERT INTO contacts").
		WithArgs(m.Name, m.Email, m.Phone, m.Subject, m.Body, m.IPAddress).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := repo.Insert(context.Background(), m)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id != 42 {
		t.Errorf("contact id = %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestInsertContactFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewRepository(sqlx.NewDb(db, "sqlmock"))

	mock.ExpectExec("INSERT INTO contacts").
		WillReturnError(errors.New("Error 1045: Access denied"))

	if _, err := repo.Insert(context.Background(), &Message{}); err == nil {
		t.Fatal("expected insert error")
	}
}
