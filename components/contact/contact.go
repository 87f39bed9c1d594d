// components/contact/contact.go
//
// Contact component – the POST /submit_contact endpoint.  Same linear
// pipeline as admissions with a smaller field surface.

package contact

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/beautifulminds/website/internal/component"
	"github.com/beautifulminds/website/internal/contact"
	"github.com/beautifulminds/website/internal/form"
	"github.com/beautifulminds/website/internal/mailer"
	"github.com/beautifulminds/website/internal/metrics"
	"github.com/beautifulminds/website/internal/requestinfo"
	"github.com/beautifulminds/website/internal/respond"
)

// compile-time assertion
var _ component.Component = (*Comp)(nil)

// Comp wires the contact pipeline to its collaborators.
type Comp struct {
	repo     *contact.Repository
	mail     mailer.Mailer
	opsEmail string
}

// New builds the component.
func New(repo *contact.Repository, mail mailer.Mailer, opsEmail string) *Comp {
	return &Comp{repo: repo, mail: mail, opsEmail: opsEmail}
}

func (c *Comp) Name() string         { return "contact" }
func (c *Comp) Migrations() []string { return []string{contact.Schema} }

func (c *Comp) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/submit_contact", c.handleSubmit)
	r.Options("/submit_contact", respond.Preflight)
	r.MethodNotAllowed(respond.MethodNotAllowed)
	return r
}

func (c *Comp) handleSubmit(w http.ResponseWriter, r *http.Request) {
	metrics.SubmissionsReceived.WithLabelValues("contact").Inc()

	vals, err := form.ParseBody(r)
	if err != nil {
		respond.JSON(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	msg, res := contact.Prepare(vals)
	if !res.OK() {
		metrics.SubmissionsRejected.WithLabelValues("contact").Inc()
		respond.JSON(w, http.StatusUnprocessableEntity, "Please fix the following errors:", map[string]any{
			"errors":   respond.FieldMap(res.Errors),
			"warnings": respond.FieldMap(res.Warnings),
		})
		return
	}

	msg.IPAddress = requestinfo.FromContext(r.Context()).IPString()

	start := time.Now()
	contactID, err := c.repo.Insert(r.Context(), msg)
	if err != nil {
		zap.S().Errorw("contact insert failed", "err", err)
		respond.JSON(w, http.StatusInternalServerError,
			"We could not save your message. Please try again later.", nil)
		return
	}
	metrics.SubmissionsSaved.WithLabelValues("contact").Inc()
	metrics.InsertDuration.WithLabelValues("contact").Observe(time.Since(start).Seconds())

	emailSent := false
	if err := c.mail.Send(r.Context(), contact.NotificationEmail(msg, c.opsEmail)); err == nil {
		emailSent = true
		metrics.EmailsSent.Inc()
	} else {
		metrics.EmailFailures.Inc()
	}

	zap.S().Infow("contact saved",
		"contact_id", contactID,
		"ip", msg.IPAddress,
		"email_sent", emailSent,
	)

	respond.JSON(w, http.StatusOK,
		"Thank you! Your message has been received. We will contact you shortly.",
		map[string]any{
			"contactId":     contactID,
			"emailSent":     emailSent,
			"warnings":      respond.FieldMap(res.Warnings),
			"databaseSaved": true,
			"data":          respond.DataMap(msg.ResponseData(contactID)),
		})
}
