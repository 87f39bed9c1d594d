// internal/form/intake.go
//
// Form intake: content negotiation for the submission endpoints.
//
// Context
//   The public site posts either JSON (fetch from main.js) or classic
//   urlencoded/multipart form bodies.  ParseBody collapses both transports
//   into one flat Values map before any business logic runs, so the
//   resolver, validator, and persister never care which one arrived.
//
// Notes
//   • JSON scalars are stringified; nested objects and arrays are ignored
//     because no form field is structured.
//   • A body that claims application/json but does not decode is a client
//     error (400), surfaced as ErrMalformedBody.

package form

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// ErrMalformedBody signals an unparseable request body.  Handlers map it
// to HTTP 400 with a generic message.
var ErrMalformedBody = errors.New("malformed request body")

// Values is the flat field-name → raw-string mapping every pipeline stage
// consumes.  It is transport-agnostic by construction.
type Values map[string]string

// maxBodyBytes caps submission bodies.  The largest legitimate payload is
// a contact message of a few KB.
const maxBodyBytes = 1 << 20

// ParseBody reads the request body and returns a Values map.  JSON bodies
// are detected by Content-Type; everything else goes through the stdlib
// form parsers (urlencoded and multipart).
func ParseBody(r *http.Request) (Values, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	ct := r.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(ct); err == nil && mt == "application/json" {
		return parseJSON(r)
	}
	return parseForm(r)
}

func parseJSON(r *http.Request) (Values, error) {
	var raw map[string]any
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&raw); err != nil {
		return nil, ErrMalformedBody
	}

	vals := make(Values, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			vals[k] = t
		case float64:
			vals[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			vals[k] = strconv.FormatBool(t)
		case nil:
			// absent; the resolver's default kicks in.
		}
	}
	return vals, nil
}

func parseForm(r *http.Request) (Values, error) {
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil &&
		strings.HasPrefix(mt, "multipart/") {
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, ErrMalformedBody
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, ErrMalformedBody
	}

	vals := make(Values, len(r.PostForm))
	for k, vv := range r.PostForm {
		if len(vv) > 0 {
			vals[k] = vv[0]
		}
	}
	return vals, nil
}
