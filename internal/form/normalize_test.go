// internal/form/normalize_test.go
//
// Unit-tests for the date and phone normalizers.
//
// Run: go test ./internal/form -v

package form

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1990-05-14", "1990-05-14", true},
		{"14/05/1990", "1990-05-14", true},  // DD/MM/YYYY
		{"05/14/1990", "1990-05-14", true},  // MM/DD/YYYY (day > 12 impossible)
		{"14-05-1990", "1990-05-14", true},  // DD-MM-YYYY
		{"13/02/2020", "2020-02-13", true},  // must resolve day-first, not month 13
		{"May 14, 1990", "1990-05-14", true}, // permissive fallback
		{"1899-12-31", "", false},           // below year floor
		{"not-a-date", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeDate(c.in, testNow)
		if ok != c.ok || got != c.want {
			t.Errorf("NormalizeDate(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestNormalizeDateFutureYear(t *testing.T) {
	future := testNow.AddDate(2, 0, 0).Format("2006-01-02")
	if _, ok := NormalizeDate(future, testNow); ok {
		t.Errorf("year beyond the current year must be rejected, got ok for %q", future)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"08031234567", "2348031234567"},    // local leading zero → country code
		{"2348031234567", "2348031234567"},  // idempotent on canonical input
		{"+234 803 123 4567", "2348031234567"},
		{"0803-123-4567", "2348031234567"},
		{"12345", "12345"},                  // too short; original preserved
		{"no digits here", "no digits here"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizePhone(c.in); got != c.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	// Idempotence: a second pass never changes the canonical form.
	once := NormalizePhone("08031234567")
	if twice := NormalizePhone(once); twice != once {
		t.Errorf("second normalization changed %q to %q", once, twice)
	}
}

func TestFormatPhoneDisplay(t *testing.T) {
	if got := FormatPhoneDisplay("2348031234567"); got != "+2348031234567" {
		t.Errorf("display form = %q", got)
	}
	if got := FormatPhoneDisplay(""); got != "" {
		t.Errorf("empty input should stay empty, got %q", got)
	}
}

func TestValidEmail(t *testing.T) {
	good := []string{"parent@example.com", "a.b+c@mail.example.ng"}
	bad := []string{"", "plain", "a@b", "@example.com", "a @example.com"}
	for _, s := range good {
		if !ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = false, want true", s)
		}
	}
	for _, s := range bad {
		if ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = true, want false", s)
		}
	}
}
