// internal/config/model.go
//
// Typed configuration model for the school website backend.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                   – dotenv values,
//   • `conf/global.yaml`                     – primary static file,
//   • `BMS_`-prefixed environment overrides  – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the Vault client *before* unmarshalling, so the model never
// stores Vault URIs—only plain strings.  In practice that covers the
// database and SMTP passwords.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml`
//     tags unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.

package config

import "fmt"

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Database section
//

// Database holds the DSN template and its secret.
//
// The *template* (`DSN`) lives in YAML so operators can tweak host, port,
// or flags without touching Vault.  It must contain exactly one `%s` verb
// where the password goes; the *secret* (`Password`) is stored in Vault
// or the environment and injected at runtime, keeping credentials out of
// flat files and git history.
type Database struct {
	DSN           string `koanf:"dsn"      validate:"required,contains=%s"`
	Password      string `koanf:"password" validate:"required"`
	RetryAttempts int    `koanf:"retry_attempts" validate:"omitempty,min=1"`
	RetryDelaySec int    `koanf:"retry_delay_seconds" validate:"omitempty,min=1"`
}

// ResolvedDSN splices the password into the DSN template.
func (d Database) ResolvedDSN() string {
	return fmt.Sprintf(d.DSN, d.Password)
}

//
// SMTP section
//

// SMTP configures the primary notification transport.  An empty Host
// disables SMTP entirely and the mailer falls back to the local sendmail
// binary.
type SMTP struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"     validate:"omitempty,min=1,max=65535"`
	Secure   string `koanf:"secure"   validate:"omitempty,oneof=tls ssl none"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	From     string `koanf:"from"      validate:"omitempty,email"`
	FromName string `koanf:"from_name"`
}

//
// School section
//

// School holds the identity strings used in notification emails and the
// email signature block.
type School struct {
	Name    string `koanf:"name"    validate:"required"`
	Email   string `koanf:"email"   validate:"required,email"`
	Phone   string `koanf:"phone"`
	Address string `koanf:"address"`
}

//
// GeoIP section
//

// GeoIP points at an optional MaxMind database for request enrichment.
// When DBPath is empty, geo lookups are skipped.
type GeoIP struct {
	DBPath string `koanf:"db_path"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or BMS_ROOT override) so later code can
// build absolute file paths, most importantly the logs directory.
type Paths struct {
	Root string // BMS_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	SMTP     SMTP     `koanf:"smtp"`
	School   School   `koanf:"school"`
	GeoIP    GeoIP    `koanf:"geoip"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}
