// components/contact/contact_test.go

package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/beautifulminds/website/internal/contact"
	"github.com/beautifulminds/website/internal/mailer"
)

type stubMailer struct {
	err  error
	sent []mailer.Message
}

func (s *stubMailer) Send(_ context.Context, m mailer.Message) error {
	s.sent = append(s.sent, m)
	return s.err
}

func newTestComp(t *testing.T, mailErr error) (*Comp, sqlmock.Sqlmock, *stubMailer) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	sm := &stubMailer{err: mailErr}
	comp := New(contact.NewRepository(sqlx.NewDb(db, "sqlmock")), sm, "ops@example.com")
	return comp, mock, sm
}

const validBody = `{
	"contactName": "Ada Eze",
	"contactEmail": "ada@example.com",
	"contactPhone": "08031234567",
	"contactSubject": "Admission enquiry",
	"contactMessage": "I would like to know the resumption date for next term."
}`

func post(comp *Comp, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest("POST", "/submit_contact", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	comp.Routes().ServeHTTP(rec, r)
	return rec
}

func TestSubmitValid(t *testing.T) {
	comp, mock, sm := newTestComp(t, nil)
	mock.ExpectExec("INSERT INTO contacts").WillReturnResult(sqlmock.NewResult(42, 1))

	rec := post(comp, validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var got struct {
		Success       bool  `json:"success"`
		ContactID     int64 `json:"contactId"`
		EmailSent     bool  `json:"emailSent"`
		DatabaseSaved bool  `json:"databaseSaved"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Success || got.ContactID != 42 || !got.EmailSent || !got.DatabaseSaved {
		t.Errorf("envelope: %+v", got)
	}
	if len(sm.sent) != 1 || sm.sent[0].ReplyTo != "ada@example.com" {
		t.Errorf("notification wrong: %+v", sm.sent)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestSubmitValidationErrors(t *testing.T) {
	comp, _, _ := newTestComp(t, nil)

	rec := post(comp, `{"contactName":"Ada Eze"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		Errors map[string]string `json:"errors"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	for _, key := range []string{"contactEmail", "contactPhone", "contactMessage"} {
		if _, ok := got.Errors[key]; !ok {
			t.Errorf("missing error for %s: %#v", key, got.Errors)
		}
	}
}

func TestSubmitEmptyWarningsSerializeAsArray(t *testing.T) {
	comp, mock, _ := newTestComp(t, nil)
	mock.ExpectExec("INSERT INTO contacts").WillReturnResult(sqlmock.NewResult(1, 1))

	rec := post(comp, validBody)
	if !strings.Contains(rec.Body.String(), `"warnings":[]`) {
		t.Errorf("empty warnings must serialize as []: %s", rec.Body.String())
	}
}

func TestSubmitInsertFailure(t *testing.T) {
	comp, mock, sm := newTestComp(t, nil)
	mock.ExpectExec("INSERT INTO contacts").
		WillReturnError(errors.New("Error 1045: Access denied for user"))

	rec := post(comp, validBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "Access denied") {
		t.Error("driver error text leaked to client")
	}
	if len(sm.sent) != 0 {
		t.Error("no email may be sent when the insert fails")
	}
}

func TestSubmitEmailFailureStillSucceeds(t *testing.T) {
	comp, mock, _ := newTestComp(t, errors.New("dial tcp: i/o timeout"))
	mock.ExpectExec("INSERT INTO contacts").WillReturnResult(sqlmock.NewResult(2, 1))

	rec := post(comp, validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		EmailSent     bool `json:"emailSent"`
		DatabaseSaved bool `json:"databaseSaved"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.EmailSent || !got.DatabaseSaved {
		t.Errorf("envelope flags: %+v", got)
	}
}

func TestSubmitWrongMethod(t *testing.T) {
	comp, _, _ := newTestComp(t, nil)
	r := httptest.NewRequest("DELETE", "/submit_contact", nil)
	rec := httptest.NewRecorder()
	comp.Routes().ServeHTTP(rec, r)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
}
