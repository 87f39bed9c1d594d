// internal/admission/application_test.go
//
// Unit-tests for the resolve → validate → normalize step.
//
// Run: go test ./internal/admission -v

package admission

import (
	"regexp"
	"testing"
	"time"

	"github.com/beautifulminds/website/internal/form"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

// validSubmission returns a complete, valid JSON-style submission using
// the camelCase HTML names.
func validSubmission() form.Values {
	return form.Values{
		"fullName":      "Ngozi Obi",
		"dob":           "14/05/2015",
		"religion":      "Christianity",
		"gender":        "Female",
		"classInterest": "Primary 4",
		"address":       "12 Market Road, Makurdi",
		"state":         "Benue",
		"city":          "Makurdi",
		"motherName":    "Adaeze Obi",
		"fatherName":    "Chukwu Obi",
		"motherPhone":   "08031234567",
		"fatherPhone":   "+234 806 555 1212",
		"parentEmail":   "obi.family@example.com",
		"parentAddress": "12 Market Road, Makurdi",
	}
}

func TestPrepareValid(t *testing.T) {
	app, res := Prepare(validSubmission(), testNow)
	if !res.OK() {
		t.Fatalf("unexpected errors: %#v", res.Errors)
	}
	if app.DateOfBirth != "2015-05-14" {
		t.Errorf("dob = %q", app.DateOfBirth)
	}
	if app.MotherPhone != "2348031234567" {
		t.Errorf("mother phone = %q", app.MotherPhone)
	}
	if app.FatherPhone != "2348065551212" {
		t.Errorf("father phone = %q", app.FatherPhone)
	}
	if app.Nationality != "Nigeria" {
		t.Errorf("nationality default not applied: %q", app.Nationality)
	}
}

func TestPrepareMissingRequiredFields(t *testing.T) {
	app, res := Prepare(form.Values{}, testNow)
	if app != nil || res.OK() {
		t.Fatal("empty submission must fail validation")
	}
	for _, key := range []string{
		"fullName", "dob", "religion", "gender", "classInterest", "address",
		"state", "city", "motherName", "fatherName", "motherPhone",
		"fatherPhone", "parentEmail", "parentAddress",
	} {
		if _, ok := res.Errors[key]; !ok {
			t.Errorf("missing error for %s", key)
		}
	}
	// Nationality has a default and must not error.
	if _, ok := res.Errors["nationality"]; ok {
		t.Error("nationality should default, not error")
	}
}

func TestPrepareBadBirthYear(t *testing.T) {
	v := validSubmission()
	v["dob"] = "14/05/1890"
	_, res := Prepare(v, testNow)
	if _, ok := res.Errors["dob"]; !ok {
		t.Error("birth year below 1900 must produce a dob error")
	}

	v["dob"] = "2030-01-01"
	_, res = Prepare(v, testNow)
	if _, ok := res.Errors["dob"]; !ok {
		t.Error("future birth year must produce a dob error")
	}
}

func TestPrepareWarningsDoNotBlock(t *testing.T) {
	v := validSubmission()
	v["fullName"] = "Jo"
	v["studentEmail"] = "not-an-email"
	v["studentPhone"] = "12345"

	app, res := Prepare(v, testNow)
	if !res.OK() {
		t.Fatalf("warnings must not block: %#v", res.Errors)
	}
	if app == nil {
		t.Fatal("expected application")
	}
	for _, key := range []string{"fullName", "studentEmail", "studentPhone"} {
		if _, ok := res.Warnings[key]; !ok {
			t.Errorf("missing warning for %s", key)
		}
	}
}

func TestPrepareBadParentPhoneBlocks(t *testing.T) {
	v := validSubmission()
	v["motherPhone"] = "12345"
	_, res := Prepare(v, testNow)
	if _, ok := res.Errors["motherPhone"]; !ok {
		t.Error("short mother phone must be a blocking error")
	}
}

func TestPrepareSnakeCaseAliases(t *testing.T) {
	v := form.Values{}
	for k, val := range validSubmission() {
		v[k] = val
	}
	delete(v, "fullName")
	v["full_name"] = "Ngozi Obi"
	delete(v, "parentEmail")
	v["email"] = "obi.family@example.com" // generic alias, last in precedence

	app, res := Prepare(v, testNow)
	if !res.OK() {
		t.Fatalf("snake_case aliases rejected: %#v", res.Errors)
	}
	if app.FullName != "Ngozi Obi" || app.ParentEmail != "obi.family@example.com" {
		t.Errorf("alias resolution wrong: %+v", app)
	}
}

func TestNewApplicationIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^APP\d{8}[A-Z0-9]{6}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewApplicationID(testNow)
		if !pattern.MatchString(id) {
			t.Fatalf("bad id format: %q", id)
		}
		if id[3:11] != "20260830" {
			t.Fatalf("id date segment: %q", id)
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Error("ids should vary across calls")
	}
}
