// internal/requestinfo/requestinfo_test.go

package requestinfo

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIPForwardedFor(t *testing.T) {
	r := httptest.NewRequest("POST", "/submit_contact", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	r.RemoteAddr = "10.0.0.2:4123"

	if got := clientIP(r).String(); got != "203.0.113.9" {
		t.Errorf("clientIP = %q, want left-most forwarded address", got)
	}
}

func TestClientIPRemoteAddrFallback(t *testing.T) {
	r := httptest.NewRequest("POST", "/submit_contact", nil)
	r.RemoteAddr = "198.51.100.7:55001"

	if got := clientIP(r).String(); got != "198.51.100.7" {
		t.Errorf("clientIP = %q", got)
	}
}

func TestEnrichStoresInfo(t *testing.T) {
	var seen *RequestInfo
	h := Enrich(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	r := httptest.NewRequest("POST", "/submit_application", nil)
	r.RemoteAddr = "198.51.100.7:55001"
	r.Header.Set("User-Agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
	h.ServeHTTP(httptest.NewRecorder(), r)

	if seen == nil {
		t.Fatal("RequestInfo missing from context")
	}
	if seen.IPString() != "198.51.100.7" {
		t.Errorf("IPString = %q", seen.IPString())
	}
	if seen.UA.Browser != "Chrome" || seen.UA.Device != "Desktop" {
		t.Errorf("UA parse: %+v", seen.UA)
	}
}

func TestIPStringUnknown(t *testing.T) {
	var ri *RequestInfo
	if ri.IPString() != "unknown" {
		t.Error("nil receiver should report unknown")
	}
}
