// internal/contact/email.go

package contact

import (
	"strings"

	"github.com/beautifulminds/website/internal/form"
	"github.com/beautifulminds/website/internal/mailer"
)

// NotificationEmail composes the ops notification for m.
func NotificationEmail(m *Message, to string) mailer.Message {
	var html strings.Builder
	html.WriteString("<h3>New Contact Form Submission</h3>")
	html.WriteString("<p><strong>Name:</strong> " + m.Name + "</p>")
	html.WriteString("<p><strong>Email:</strong> " + m.Email + "</p>")
	if m.Phone != "" {
		html.WriteString("<p><strong>Phone:</strong> " + form.FormatPhoneDisplay(m.Phone) + "</p>")
	}
	html.WriteString("<p><strong>Subject:</strong> " + m.Subject + "</p>")
	html.WriteString("<p><strong>Message:</strong></p>")
	html.WriteString(`<div style="background: #f5f5f5; padding: 15px; border-radius: 5px;">`)
	html.WriteString(strings.ReplaceAll(m.Body, "\n", "<br>"))
	html.WriteString("</div>")

	var text strings.Builder
	text.WriteString("New Contact Form Submission\n\n")
	text.WriteString("Name: " + m.Name + "\n")
	text.WriteString("Email: " + m.Email + "\n")
	if m.Phone != "" {
		text.WriteString("Phone: " + form.FormatPhoneDisplay(m.Phone) + "\n")
	}
	text.WriteString("Subject: " + m.Subject + "\n\n")
	text.WriteString(m.Body + "\n")

	return mailer.Message{
		To:          to,
		ReplyTo:     m.Email,
		ReplyToName: m.Name,
		Subject:     "New Contact Message: " + m.Subject,
		HTMLBody:    html.String(),
		TextBody:    text.String(),
	}
}
