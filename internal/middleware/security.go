// internal/middleware/security.go
//
// Security-header middleware.
//
// Injects the headers the site has always sent:
//
//   • X-Content-Type-Options    –  MIME-sniffing defence
//   • X-Frame-Options           –  click-jacking defence
//   • Referrer-Policy           –  drops path/query from Referer
//   • Strict-Transport-Security –  only when HTTPS is enforced
//
// Notes
// -----
// • Headers are set *before* next.ServeHTTP; anything added after the
//   handler writes its status line would be silently dropped.
// • If the service runs behind a TLS-terminating proxy, HSTS is still
//   useful because browsers see the public domain as HTTPS.

package middleware

import "net/http"

// Security sets security headers for every response.  hsts enables the
// Strict-Transport-Security header and should track the force_https
// config flag.
func Security(hsts bool) func(http.Handler) http.Handler {
	const (
		stsValue = "max-age=31536000; includeSubDomains; preload"
		xfo      = "SAMEORIGIN"
		nosn     = "nosniff"
		refer    = "strict-origin-when-cross-origin"
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", nosn)
			h.Set("X-Frame-Options", xfo)
			h.Set("Referrer-Policy", refer)
			if hsts {
				h.Set("Strict-Transport-Security", stsValue)
			}

			next.ServeHTTP(w, r)
		})
	}
}
