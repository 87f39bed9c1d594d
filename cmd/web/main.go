// cmd/web/main.go
//
// School website backend – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Load layered config (conf/.env → conf/global.yaml → BMS_* env,
//     with vault: references resolved).
//
//  4. Connect to MySQL with a fixed-delay retry loop; exhausting the
//     attempts is fatal.
//
//  5. Build the mailer (SMTP primary, local sendmail fallback).
//
//  6. Register form components and mount their routers, plus /metrics,
//     /healthz, and a static fallback from public/.
//
//  7. Serve with hardened timeouts; SIGINT/SIGTERM drain in-flight
//     requests before exit.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/beautifulminds/website/components/admissions"
	contactcomp "github.com/beautifulminds/website/components/contact"
	"github.com/beautifulminds/website/internal/admission"
	"github.com/beautifulminds/website/internal/component"
	"github.com/beautifulminds/website/internal/config"
	"github.com/beautifulminds/website/internal/contact"
	"github.com/beautifulminds/website/internal/database"
	"github.com/beautifulminds/website/internal/logger"
	"github.com/beautifulminds/website/internal/mailer"
	"github.com/beautifulminds/website/internal/middleware"
	"github.com/beautifulminds/website/internal/requestinfo"
	"github.com/beautifulminds/website/internal/respond"
	"github.com/beautifulminds/website/internal/server"
)

const serverEnvPath = "/usr/local/etc/bms-website/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	migrate := flag.Bool("migrate", false, "apply component schema migrations and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer logOut.Sync() //nolint:errcheck

	//
	// ── 1.  Database connect (retry loop) ───────────────────────────────
	//
	logOut.Infof("connecting to database …")
	db, err := database.ConnectWithRetry(
		cfg.Database.ResolvedDSN(),
		cfg.Database.RetryAttempts,
		time.Duration(cfg.Database.RetryDelaySec)*time.Second,
	)
	if err != nil {
		logOut.Fatalf("connect database: %v", err)
	}
	defer db.Close()
	logOut.Infof("database online")

	//
	// ── 2.  Request enrichment (optional GeoIP) ─────────────────────────
	//
	if err := requestinfo.InitGeo(cfg.GeoIP.DBPath); err != nil {
		logOut.Warnw("geoip disabled", "err", err)
	}

	//
	// ── 3.  Mailer (SMTP primary, sendmail fallback) ────────────────────
	//
	mail := mailer.New(mailer.Options{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Secure:   cfg.SMTP.Secure,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
		School: mailer.Identity{
			Name:    cfg.School.Name,
			Email:   cfg.School.Email,
			Phone:   cfg.School.Phone,
			Address: cfg.School.Address,
		},
		FailLogDir: filepath.Join(cfg.Paths.Root, "logs", "email_failures"),
	}, logOut)

	//
	// ── 4.  Components ──────────────────────────────────────────────────
	//
	component.Register(admissions.New(admission.NewRepository(db), mail, cfg.School.Email))
	component.Register(contactcomp.New(contact.NewRepository(db), mail, cfg.School.Email))

	if *migrate {
		for _, c := range component.All() {
			for _, stmt := range c.Migrations() {
				if _, err := db.Exec(stmt); err != nil {
					logOut.Fatalf("migrate %s: %v", c.Name(), err)
				}
			}
			logOut.Infof("migrated %s", c.Name())
		}
		return
	}

	//
	// ── 5.  Router ──────────────────────────────────────────────────────
	//
	r := chi.NewRouter()
	r.Use(middleware.Security(cfg.HTTP.ForceHTTPS))
	r.Use(requestinfo.Enrich)
	r.MethodNotAllowed(respond.MethodNotAllowed)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			respond.JSON(w, http.StatusInternalServerError, "database unreachable", nil)
			return
		}
		respond.JSON(w, http.StatusOK, "ok", nil)
	})

	// Components register absolute paths, so their routes are lifted onto
	// the root mux rather than mounted under a prefix.
	for _, c := range component.All() {
		walkErr := chi.Walk(c.Routes(), func(method, route string, h http.Handler, _ ...func(http.Handler) http.Handler) error {
			r.Method(method, route, h)
			return nil
		})
		if walkErr != nil {
			logOut.Fatalf("mount %s: %v", c.Name(), walkErr)
		}
	}

	// Unmatched paths fall through to the static site, when present.
	if pub := filepath.Join(cfg.Paths.Root, "public"); dirExists(pub) {
		fs := http.FileServer(http.Dir(pub))
		r.NotFound(fs.ServeHTTP)
	}

	//
	// ── 6.  Serve until signalled ───────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, r)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logOut.Infof("listening on %s", cfg.HTTP.ListenAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logOut.Infof("shutting down …")
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
}

// dirExists reports whether path is an existing directory.
func dirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
