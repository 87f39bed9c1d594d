// internal/mailer/mailer_test.go

package mailer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testService(t *testing.T, failDir string) *Service {
	t.Helper()
	return New(Options{
		From:     "ops@example.com",
		FromName: "Beautiful Minds Schools",
		School: Identity{
			Name:    "Beautiful Minds Schools",
			Email:   "ops@example.com",
			Phone:   "+234 703 354 6935",
			Address: "Makurdi, Nigeria",
		},
		FailLogDir: failDir,
	}, zap.NewNop().Sugar())
}

func TestComposeBodiesAndSignature(t *testing.T) {
	s := testService(t, "")
	msg, err := s.compose(Message{
		To:          "ops@example.com",
		ReplyTo:     "parent@example.com",
		ReplyToName: "Ngozi Obi",
		Subject:     "New Admission Application",
		HTMLBody:    "<h3>New Application</h3>",
		TextBody:    "New Application",
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	var sb strings.Builder
	if _, err := msg.WriteTo(&sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "Reply-To:") {
		t.Error("reply-to header missing")
	}
	if !strings.Contains(out, "Beautiful Minds Schools") {
		t.Error("signature missing")
	}
	if !strings.Contains(out, "multipart/alternative") {
		t.Error("expected HTML + text alternative body")
	}
}

func TestComposeRejectsBadAddress(t *testing.T) {
	s := testService(t, "")
	if _, err := s.compose(Message{To: "not an address", Subject: "x"}); err == nil {
		t.Fatal("expected error for malformed recipient")
	}
}

func TestRecordFailureWritesDatedLog(t *testing.T) {
	dir := t.TempDir()
	s := testService(t, dir)

	s.recordFailure(Message{To: "ops@example.com", Subject: "New Contact Message"}, os.ErrDeadlineExceeded)

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failure log missing: %v", err)
	}
	line := string(b)
	if !strings.Contains(line, "TO: ops@example.com") || !strings.Contains(line, "SUBJECT: New Contact Message") {
		t.Errorf("unexpected log line: %q", line)
	}
}
