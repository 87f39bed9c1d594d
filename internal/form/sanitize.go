// internal/form/sanitize.go

package form

import (
	"html"
	"strings"
)

// Sanitize trims and HTML-escapes a free-text value before it is stored
// or embedded in a notification email.  Phone numbers and dates are
// normalized elsewhere and never pass through here.
func Sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
