// internal/contact/contact.go
//
// Contact-message pipeline: field table, validation, and normalization.
// Same shape as the admissions pipeline, smaller field surface.

package contact

import (
	"github.com/beautifulminds/website/internal/form"
)

const (
	keyName    = "contactName"
	keyEmail   = "contactEmail"
	keyPhone   = "contactPhone"
	keySubject = "contactSubject"
	keyMessage = "contactMessage"
)

// defaultSubject fills a blank subject; the submitter is told via a
// warning rather than an error.
const defaultSubject = "General Inquiry"

// Fields maps the HTML form names (contactName, contactEmail, ...) to
// the storage columns.  Generic aliases sit last.
var Fields = []form.Field{
	{Column: "name", Aliases: []string{"contactName", "contact_name", "name", "full_name"}},
	{Column: "email", Aliases: []string{"contactEmail", "contact_email", "email"}},
	{Column: "phone", Aliases: []string{"contactPhone", "contact_phone", "phone", "mobile"}},
	{Column: "subject", Aliases: []string{"contactSubject", "contact_subject", "subject", "title"}},
	{Column: "message", Aliases: []string{"contactMessage", "contact_message", "message", "content"}},
}

// Message is the ephemeral, validated contact submission.
type Message struct {
	Name    string
	Email   string
	Phone   string // canonical digits
	Subject string
	Body    string

	IPAddress string
}

// Prepare resolves aliases, validates, and normalizes.  The returned
// Message is populated only when res.OK().
func Prepare(vals form.Values) (*Message, *form.Result) {
	f := vals.ResolveFields(Fields)
	res := form.NewResult()

	if f["name"] == "" {
		res.Fail(keyName, "Please provide your name")
	} else if len(f["name"]) < 2 {
		res.Warn(keyName, "Name seems very short")
	}

	if f["email"] == "" {
		res.Fail(keyEmail, "Please provide your email address")
	} else if !form.ValidEmail(f["email"]) {
		res.Fail(keyEmail, "Please enter a valid email address")
	}

	phone := form.NormalizePhone(f["phone"])
	if f["phone"] == "" {
		res.Fail(keyPhone, "Please provide your phone number")
	} else if !form.PhoneLengthOK(phone) {
		res.Fail(keyPhone, "Phone number must be 10-15 digits")
	}

	subject := f["subject"]
	if subject == "" {
		subject = defaultSubject
		res.Warn(keySubject, `No subject provided, using "General Inquiry"`)
	}

	if f["message"] == "" {
		res.Fail(keyMessage, "Please enter your message")
	} else if len(f["message"]) < 10 {
		res.Warn(keyMessage, "Message seems very short")
	}

	if !res.OK() {
		return nil, res
	}

	return &Message{
		Name:    form.Sanitize(f["name"]),
		Email:   form.Sanitize(f["email"]),
		Phone:   phone,
		Subject: form.Sanitize(subject),
		Body:    form.Sanitize(f["message"]),
	}, res
}

// ResponseData builds the success-payload echo.  Long messages are
// truncated; the full text is already persisted.
func (m *Message) ResponseData(contactID int64) map[string]any {
	data := map[string]any{
		"contactId": contactID,
		"name":      m.Name,
		"email":     m.Email,
		"subject":   m.Subject,
		"phone":     m.Phone,
	}
	if len(m.Body) > 200 {
		data["message"] = m.Body[:200] + "..."
	} else {
		data["message"] = m.Body
	}
	return data
}
