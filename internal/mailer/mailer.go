// internal/mailer/mailer.go
//
// Best-effort notification email service.
//
// Context
//   Every successful submission triggers one notification email to the
//   operations address, with the submitter set as reply-to so staff can
//   answer directly from their inbox.  Sending is strictly best-effort:
//   the row is already committed when we get here, so any failure is
//   logged, recorded in the dated failure log, and surfaced to the
//   caller only as emailSent:false.  It never changes the HTTP outcome.
//
// Transports
//   Primary   – SMTP via go-mail, honoring the configured security mode
//               (tls = STARTTLS, ssl = implicit TLS, none = cleartext).
//   Fallback  – the local sendmail binary, used when no SMTP host is
//               configured or the SMTP conversation fails.
//
// Messages carry an HTML body plus a plain-text alternative, both with
// the school signature appended.

package mailer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	mail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Message is one notification to compose and send.
type Message struct {
	To          string
	ReplyTo     string // submitter address; may be empty
	ReplyToName string
	Subject     string
	HTMLBody    string
	TextBody    string
}

// Mailer is the interface handlers depend on; tests substitute a stub.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// Identity holds the school strings used in the signature block.
type Identity struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Options configures the service.
type Options struct {
	Host     string // empty disables SMTP; sendmail fallback only
	Port     int
	Secure   string // "tls", "ssl", or "none"
	User     string
	Password string
	From     string
	FromName string

	School     Identity
	FailLogDir string // dated append-only log of failed sends
}

// Service implements Mailer over SMTP with a sendmail fallback.
type Service struct {
	client *mail.Client
	opts   Options
	log    *zap.SugaredLogger
}

// New builds the service.  An unreachable or unconfigured SMTP server is
// not an error here; the service degrades to the fallback transport.
func New(opts Options, log *zap.SugaredLogger) *Service {
	s := &Service{opts: opts, log: log}

	if opts.Host == "" {
		log.Infow("smtp disabled, using sendmail fallback only")
		return s
	}

	clientOpts := []mail.Option{
		mail.WithPort(opts.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(opts.User),
		mail.WithPassword(opts.Password),
	}
	switch opts.Secure {
	case "ssl":
		clientOpts = append(clientOpts, mail.WithSSL())
	case "none":
		clientOpts = append(clientOpts, mail.WithTLSPolicy(mail.NoTLS))
	default: // "tls"
		clientOpts = append(clientOpts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		log.Errorw("smtp client init failed, falling back to sendmail", "err", err)
		return s
	}
	s.client = client
	return s
}

// Send composes and delivers m.  The returned error is informational;
// callers report it as emailSent:false and move on.
func (s *Service) Send(ctx context.Context, m Message) error {
	msg, err := s.compose(m)
	if err != nil {
		s.recordFailure(m, err)
		return err
	}

	if s.client != nil {
		if err = s.client.DialAndSendWithContext(ctx, msg); err == nil {
			return nil
		}
		s.log.Warnw("smtp send failed, trying sendmail", "to", m.To, "err", err)
	}

	if err2 := msg.WriteToSendmail(); err2 != nil {
		if err == nil {
			err = err2
		} else {
			err = fmt.Errorf("smtp: %v; sendmail: %w", err, err2)
		}
		s.recordFailure(m, err)
		return err
	}
	return nil
}

// compose builds the MIME message: plain-text body plus HTML
// alternative, both signed.
func (s *Service) compose(m Message) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(s.opts.FromName, s.opts.From); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyToFormat(m.ReplyToName, m.ReplyTo); err != nil {
			return nil, fmt.Errorf("reply-to address: %w", err)
		}
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.TextBody+s.signatureText())
	msg.AddAlternativeString(mail.TypeTextHTML, m.HTMLBody+s.signatureHTML())
	return msg, nil
}

func (s *Service) signatureHTML() string {
	sc := s.opts.School
	return `<div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #eee; color: #666; font-size: 14px;">` +
		"<strong>" + sc.Name + "</strong><br>" +
		sc.Address + "<br>" +
		"Phone: " + sc.Phone + " | Email: " + sc.Email +
		"</div>"
}

func (s *Service) signatureText() string {
	sc := s.opts.School
	return "\n\n--\n" + sc.Name + "\n" + sc.Address + "\nPhone: " + sc.Phone + " | Email: " + sc.Email
}

// recordFailure logs the failed send and appends one line to the dated
// failure log so undelivered notifications can be replayed by hand.
func (s *Service) recordFailure(m Message, err error) {
	s.log.Errorw("notification email failed", "to", m.To, "subject", m.Subject, "err", err)

	if s.opts.FailLogDir == "" {
		return
	}
	if mkErr := os.MkdirAll(s.opts.FailLogDir, 0o755); mkErr != nil {
		s.log.Errorw("email failure log dir", "err", mkErr)
		return
	}

	now := time.Now()
	line := fmt.Sprintf("[%s] TO: %s | SUBJECT: %s\n",
		now.Format("2006-01-02 15:04:05"), m.To, m.Subject)
	path := filepath.Join(s.opts.FailLogDir, now.Format("2006-01-02")+".log")

	f, openErr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if openErr != nil {
		s.log.Errorw("email failure log open", "err", openErr)
		return
	}
	defer f.Close()
	if _, wErr := f.WriteString(line); wErr != nil {
		s.log.Errorw("email failure log write", "err", wErr)
	}
}
