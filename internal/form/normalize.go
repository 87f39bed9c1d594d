// internal/form/normalize.go
//
// Value normalizers: date of birth and phone numbers.
//
// Context
//   Dates arrive in whatever format the visitor typed.  We try a fixed
//   list of explicit layouts first and demand that re-formatting the
//   parsed time reproduces the input exactly; Go's parser is lenient
//   about zero-padding, so without the round-trip check "5/4/1990" would
//   silently match the wrong layout.  Only when every explicit layout
//   fails do we hand the string to dateparse, the permissive
//   general-purpose parser.
//
//   Phone numbers are canonicalized to a digits-only, country-coded
//   string.  The site serves a Nigerian school, so the local 11-digit
//   leading-zero convention maps to the 234 country code.

package form

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayouts in trial order: ISO first, then day-first before
// month-first so ambiguous inputs resolve the local way.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"01-02-2006",
}

const minBirthYear = 1900

// NormalizeDate parses raw against the explicit layouts, falling back to
// a permissive parse, and returns the canonical YYYY-MM-DD form.  The
// parsed year must lie within [1900, now.Year()]; anything else reports
// ok == false.
func NormalizeDate(raw string, now time.Time) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		// Round-trip check: the layout must reproduce the input exactly.
		if t.Format(layout) != raw {
			continue
		}
		if y := t.Year(); y < minBirthYear || y > now.Year() {
			continue
		}
		return t.Format("2006-01-02"), true
	}

	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return "", false
	}
	if y := t.Year(); y < minBirthYear || y > now.Year() {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// NormalizePhone strips non-digits and canonicalizes Nigerian local
// numbers (11 digits, leading zero) to the 234 country code.  Digit
// strings already 10–15 long pass through unchanged.  Inputs that cannot
// be normalized are returned as given so the caller can decide whether
// that is an error, a warning, or acceptable.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return raw
	}

	if len(digits) == 11 && digits[0] == '0' {
		return "234" + digits[1:]
	}
	if len(digits) >= 10 && len(digits) <= 15 {
		return digits
	}
	return raw
}

// PhoneLengthOK reports whether a normalized phone number has an
// acceptable digit count.
func PhoneLengthOK(normalized string) bool {
	return len(normalized) >= 10 && len(normalized) <= 15
}

// FormatPhoneDisplay re-prepends "+" to a canonical digit string for
// human-facing presentation (email bodies, response echoes).  Anything
// that is not all digits is shown as-is.
func FormatPhoneDisplay(normalized string) string {
	if normalized == "" {
		return ""
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return normalized
		}
	}
	return "+" + normalized
}

// emailPattern mirrors the classic local@domain.tld shape.  ParseAddress
// alone accepts dotless domains ("a@b"), which real submitters never
// mean.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether s is a plausible deliverable address.
func ValidEmail(s string) bool {
	if s == "" {
		return false
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return false
	}
	return emailPattern.MatchString(s)
}
