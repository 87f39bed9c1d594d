// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from three layers (highest
precedence last):

  1. Optional `conf/.env` dotenv file.
  2. `conf/global.yaml`.
  3. Environment variables prefixed `BMS_`, where `__` maps to “.”
     (e.g., `BMS_DATABASE__PASSWORD → database.password`).

After merging, any string value of the form `vault:<path>#<key>` is
replaced by the secret it references, the tree is unmarshalled into
strongly-typed structs, validated, enriched with the runtime root path,
and cached in an `atomic.Pointer` for lock-free reads.

Instrumentation
---------------
  • DEBUG spans — root discovery, YAML read, env overlay, vault refs.
  • ERROR spans — YAML parse, env overlay, vault fetch, unmarshal, and
    validation failures.
  • INFO  span  — final “config loaded” with key highlights.
  • Logs use the global *sugared* logger (`zap.S()`) so early boot issues
    surface even before the file logger is installed.

Notes
-----
  • `rootDir()` climbs the cwd tree until it finds `conf/global.yaml`;
    this lets `go run ./cmd/web` work from any sub-directory.
  • Vault is only dialed when at least one `vault:` reference exists, so
    development setups without a Vault server never block on it.
*/
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/beautifulminds/website/internal/vault"
)

var current atomic.Pointer[Config]

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves BMS_ROOT or climbs directories until conf/global.yaml
// is found.  Falls back to executable heuristic for production layout.
func rootDir() string {
	if r := os.Getenv("BMS_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", "global.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}

	exe, _ := os.Executable()
	if filepath.Base(filepath.Dir(exe)) == "bin" {
		return filepath.Dir(filepath.Dir(exe))
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, env overrides, resolves vault references,
// validates, and caches Config.
func Load() (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := filepath.Join(root, "conf", "global.yaml")
	if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
		zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
		return nil, err
	}
	zap.S().Debugw("config yaml loaded", "file", yamlPath)

	// Env overrides: BMS_DATABASE__PASSWORD → database.password
	if err := k.Load(env.Provider("BMS_", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, "BMS_"), "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	if err := resolveVaultRefs(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	cfg.Paths.Root = root
	applyDefaults(&cfg)
	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"force_https", cfg.HTTP.ForceHTTPS,
		"smtp_host", cfg.SMTP.Host,
		"school", cfg.School.Name,
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

// applyDefaults fills the few values that have sensible fallbacks so the
// YAML can stay minimal.
func applyDefaults(cfg *Config) {
	if cfg.Database.RetryAttempts == 0 {
		cfg.Database.RetryAttempts = 3
	}
	if cfg.Database.RetryDelaySec == 0 {
		cfg.Database.RetryDelaySec = 2
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.SMTP.Secure == "" {
		cfg.SMTP.Secure = "tls"
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.School.Email
	}
	if cfg.SMTP.FromName == "" {
		cfg.SMTP.FromName = cfg.School.Name
	}
}

/*──────────────────────────── vault resolution ─────────────────────────────*/

// vaultRefPrefix marks a config value as a secret reference of the form
// vault:<mount/path>#<key>.
const vaultRefPrefix = "vault:"

// resolveVaultRefs swaps every vault: reference in the merged tree for
// the secret it names.  The client is created lazily on the first ref.
func resolveVaultRefs(k *koanf.Koanf) error {
	var cli *vault.Client

	for _, key := range k.Keys() {
		val := k.String(key)
		if !strings.HasPrefix(val, vaultRefPrefix) {
			continue
		}

		ref := strings.TrimPrefix(val, vaultRefPrefix)
		path, secretKey, ok := strings.Cut(ref, "#")
		if !ok {
			return fmt.Errorf("config %s: vault reference %q lacks #key", key, val)
		}

		if cli == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			c, err := vault.New(ctx, zap.S().Infof)
			cancel()
			if err != nil {
				zap.S().Errorw("vault client init failed", "err", err)
				return err
			}
			cli = c
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		secret, err := cli.GetKV(ctx, path, secretKey, time.Minute)
		cancel()
		if err != nil {
			zap.S().Errorw("vault secret fetch failed", "config_key", key, "err", err)
			return err
		}

		if err := k.Set(key, secret); err != nil {
			return err
		}
		zap.S().Debugw("vault reference resolved", "config_key", key)
	}
	return nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func Get() *Config { return current.Load() }
