// components/admissions/admissions.go
//
// Admissions component – the POST /submit_application endpoint.
//
// Control flow is strictly linear: intake → resolve/validate/normalize →
// persist → best-effort notify → respond.  Validation errors are the
// only condition that short-circuits before a side effect; once the row
// is committed the response is a success regardless of the email
// outcome.

package admissions

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/beautifulminds/website/internal/admission"
	"github.com/beautifulminds/website/internal/component"
	"github.com/beautifulminds/website/internal/form"
	"github.com/beautifulminds/website/internal/mailer"
	"github.com/beautifulminds/website/internal/metrics"
	"github.com/beautifulminds/website/internal/requestinfo"
	"github.com/beautifulminds/website/internal/respond"
)

// compile-time assertion
var _ component.Component = (*Comp)(nil)

// Comp wires the admissions pipeline to its collaborators.
type Comp struct {
	repo     *admission.Repository
	mail     mailer.Mailer
	opsEmail string
}

// New builds the component.  opsEmail receives the notifications.
func New(repo *admission.Repository, mail mailer.Mailer, opsEmail string) *Comp {
	return &Comp{repo: repo, mail: mail, opsEmail: opsEmail}
}

func (c *Comp) Name() string          { return "admissions" }
func (c *Comp) Migrations() []string  { return []string{admission.Schema} }

func (c *Comp) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/submit_application", c.handleSubmit)
	r.Options("/submit_application", respond.Preflight)
	r.MethodNotAllowed(respond.MethodNotAllowed)
	return r
}

func (c *Comp) handleSubmit(w http.ResponseWriter, r *http.Request) {
	metrics.SubmissionsReceived.WithLabelValues("application").Inc()

	vals, err := form.ParseBody(r)
	if err != nil {
		respond.JSON(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	app, res := admission.Prepare(vals, time.Now())
	if !res.OK() {
		metrics.SubmissionsRejected.WithLabelValues("application").Inc()
		respond.JSON(w, http.StatusUnprocessableEntity, "Please fix the following errors:", map[string]any{
			"errors":   respond.FieldMap(res.Errors),
			"warnings": respond.FieldMap(res.Warnings),
		})
		return
	}

	app.ApplicationID = admission.NewApplicationID(time.Now())
	app.IPAddress = requestinfo.FromContext(r.Context()).IPString()

	start := time.Now()
	dbID, err := c.repo.Insert(r.Context(), app)
	if err != nil {
		// Raw driver text stays server-side.
		zap.S().Errorw("application insert failed",
			"application_id", app.ApplicationID, "err", err)
		respond.JSON(w, http.StatusInternalServerError,
			"We could not save your application. Please try again later.", nil)
		return
	}
	metrics.SubmissionsSaved.WithLabelValues("application").Inc()
	metrics.InsertDuration.WithLabelValues("application").Observe(time.Since(start).Seconds())

	emailSent := false
	if err := c.mail.Send(r.Context(), admission.NotificationEmail(app, c.opsEmail)); err == nil {
		emailSent = true
		metrics.EmailsSent.Inc()
	} else {
		metrics.EmailFailures.Inc()
	}

	zap.S().Infow("application saved",
		"application_id", app.ApplicationID,
		"db_id", dbID,
		"ip", app.IPAddress,
		"email_sent", emailSent,
	)

	respond.JSON(w, http.StatusOK,
		"Application submitted successfully! Our admissions team will contact you within 2-3 business days.",
		map[string]any{
			"application_id": app.ApplicationID,
			"emailSent":      emailSent,
			"warnings":       respond.FieldMap(res.Warnings),
			"databaseSaved":  true,
			"data":           respond.DataMap(app.ResponseData()),
		})
}
