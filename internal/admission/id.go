// internal/admission/id.go

package admission

import (
	"crypto/rand"
	"time"
)

// idAlphabet excludes nothing: staff read these codes aloud over the
// phone, but the full uppercase alphanumeric set matches what parents
// already received historically.
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewApplicationID returns the external identifier quoted back to the
// submitter: "APP" + YYYYMMDD + 6 random uppercase alphanumerics.  It is
// distinct from the auto-increment key, which never leaves the server.
func NewApplicationID(now time.Time) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// fall back to a time-derived suffix rather than refusing the
		// submission.
		nano := now.UnixNano()
		for i := range buf {
			buf[i] = idAlphabet[nano%int64(len(idAlphabet))]
			nano /= int64(len(idAlphabet))
		}
	} else {
		for i, b := range buf {
			buf[i] = idAlphabet[int(b)%len(idAlphabet)]
		}
	}
	return "APP" + now.Format("20060102") + string(buf)
}
