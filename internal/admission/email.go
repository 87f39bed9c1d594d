// internal/admission/email.go
//
// Notification email for a saved application: a field table in HTML with
// a plain-text alternative.  The submitter's parent email becomes the
// reply-to so the admissions office can answer in one click.

package admission

import (
	"fmt"
	"strings"

	"github.com/beautifulminds/website/internal/form"
	"github.com/beautifulminds/website/internal/mailer"
)

// NotificationEmail composes the ops notification for a.  to is the
// school's operations address.
func NotificationEmail(a *Application, to string) mailer.Message {
	rows := []struct{ label, value string }{
		{"Application ID", a.ApplicationID},
		{"Student Name", a.FullName},
		{"Date of Birth", a.DateOfBirth},
		{"Gender", a.Gender},
		{"Religion", a.Religion},
		{"Class of Interest", a.ClassInterest},
		{"Nationality", a.Nationality},
		{"State", a.State},
		{"City", a.City},
		{"Address", a.Address},
		{"Student Phone", form.FormatPhoneDisplay(a.StudentPhone)},
		{"Student Email", a.StudentEmail},
		{"Mother's Name", a.MotherName},
		{"Mother's Phone", form.FormatPhoneDisplay(a.MotherPhone)},
		{"Father's Name", a.FatherName},
		{"Father's Phone", form.FormatPhoneDisplay(a.FatherPhone)},
		{"Parent Email", a.ParentEmail},
		{"Parent Address", a.ParentAddress},
	}

	var html, text strings.Builder
	html.WriteString("<h3>New Admission Application</h3>")
	html.WriteString(`<table cellpadding="6" style="border-collapse: collapse;">`)
	text.WriteString("New Admission Application\n\n")
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		fmt.Fprintf(&html,
			`<tr><td style="border: 1px solid #ddd;"><strong>%s</strong></td><td style="border: 1px solid #ddd;">%s</td></tr>`,
			row.label, row.value)
		fmt.Fprintf(&text, "%s: %s\n", row.label, row.value)
	}
	html.WriteString("</table>")

	return mailer.Message{
		To:          to,
		ReplyTo:     a.ParentEmail,
		ReplyToName: a.MotherName,
		Subject:     "New Admission Application: " + a.FullName + " (" + a.ApplicationID + ")",
		HTMLBody:    html.String(),
		TextBody:    text.String(),
	}
}
