// internal/respond/respond.go
//
// Uniform JSON envelope for the form endpoints.
//
// Context
//   Every response carries status ("success"|"error" derived from the
//   HTTP status class), a success boolean, and a human-readable message.
//   Handlers may attach errors, warnings, and data; when those
//   collections are empty they serialize as [] rather than null or an
//   empty object, because the front-end iterates them unconditionally.
//
//   CORS headers ride on every response.  The site's marketing pages may
//   be served from a different origin than this API, so the policy is
//   deliberately permissive.

package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// FieldMap is a field → message collection that serializes to [] when
// empty, matching the front-end's array-or-object contract.
type FieldMap map[string]string

func (m FieldMap) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(map[string]string(m))
}

// DataMap carries the success-payload echo with the same empty-as-array
// behavior.
type DataMap map[string]any

func (m DataMap) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(map[string]any(m))
}

// setHeaders writes the Content-Type and CORS headers shared by every
// response, including preflights.
func setHeaders(h http.Header) {
	h.Set("Content-Type", "application/json; charset=UTF-8")
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Requested-With")
	h.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE, PUT")
	h.Set("Access-Control-Max-Age", "86400")
}

// JSON writes the envelope.  Extra keys are merged on top of the base
// status/success/message trio; pass FieldMap and DataMap values so empty
// collections keep their [] form.
func JSON(w http.ResponseWriter, status int, message string, extra map[string]any) {
	setHeaders(w.Header())
	w.WriteHeader(status)

	ok := status >= 200 && status < 300
	payload := map[string]any{
		"success": ok,
		"message": message,
	}
	if ok {
		payload["status"] = "success"
	} else {
		payload["status"] = "error"
	}
	for k, v := range extra {
		payload[k] = v
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.S().Errorw("response encode failed", "err", err)
	}
}

// Preflight answers an OPTIONS request: CORS headers, 200, no body.
func Preflight(w http.ResponseWriter, _ *http.Request) {
	setHeaders(w.Header())
	w.WriteHeader(http.StatusOK)
}

// MethodNotAllowed is the shared 405 handler for the POST-only endpoints.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusMethodNotAllowed, "Please submit the form using POST method.", nil)
}
