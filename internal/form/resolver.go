// internal/form/resolver.go
//
// Declarative field-alias resolution.
//
// The HTML forms use camelCase names (fullName, contactEmail) while the
// database columns are snake_case.  Each canonical field declares an
// ordered alias list; Resolve walks it and returns the first non-blank
// trimmed match.  Alias order is a contract: generic names such as
// "email" or "phone" sit last so form-specific names win.

package form

import "strings"

// Field declares one canonical field: the storage column it feeds, the
// input names that may supply it (in precedence order), and the default
// used when every alias is blank or absent.
type Field struct {
	Column  string
	Aliases []string
	Default string
}

// Resolve returns the first alias present with a non-blank trimmed value,
// else def.  Absence is never an error here; required-ness belongs to the
// validator.
func (v Values) Resolve(aliases []string, def string) string {
	for _, name := range aliases {
		if raw, ok := v[name]; ok {
			if s := strings.TrimSpace(raw); s != "" {
				return s
			}
		}
	}
	return def
}

// ResolveFields applies Resolve over a field table and returns the
// column → value mapping the validator and persister work from.
func (v Values) ResolveFields(fields []Field) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Column] = v.Resolve(f.Aliases, f.Default)
	}
	return out
}
