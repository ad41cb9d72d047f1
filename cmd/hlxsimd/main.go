// Command hlxsimd runs the same control engine as hlxd against no real
// matrix hardware at all: every zone, source, and group lives purely in
// memory (backed by the same JSON document hlxd persists to), seeded
// optionally from a profile file on first boot. It exists so a client can
// be developed and tested against a full HLX unit without one on the
// bench.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/openhlx/hlxgo/internal/admin"
	"github.com/openhlx/hlxgo/internal/backup"
	"github.com/openhlx/hlxgo/internal/metrics"
	"github.com/openhlx/hlxgo/internal/server"
	"github.com/openhlx/hlxgo/internal/transport"
)

// CLI mirrors hlxd's surface, with different defaults (a simulator is run
// alongside a real hlxd far more often than two real units ever share a
// bench) and one addition: Profile.
type CLI struct {
	Bind       string `help:"TCP address the protocol listener binds." default:":8023"`
	AdminBind  string `help:"HTTP address for /healthz, /metrics, /status." default:":8081"`
	ConfigPath string `help:"Path to the backup JSON document." default:"hlxsim.json"`
	Profile    string `help:"Optional YAML profile seeding source/zone/group names on first boot." default:""`
	Debug      bool   `help:"Enable debug logging."`
}

func main() {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("hlxsimd"),
		kong.Description("HLX multi-zone audio matrix simulator daemon"),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	profile, err := LoadProfile(cli.Profile)
	if err != nil {
		log.Error("hlxsimd: failed to read profile", "path", cli.Profile, "err", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := backup.NewJSONStore(cli.ConfigPath)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	existing, err := store.Load()
	if err != nil {
		log.Warn("hlxsimd: failed to probe existing backup, treating as fresh", "path", cli.ConfigPath, "err", err)
	}

	app := server.New(store, nil, log)
	app.SetMetrics(m)
	app.Start()
	defer app.Stop()

	if existing == nil && profile != nil {
		log.Info("hlxsimd: applying seed profile", "path", cli.Profile)
		profile.Apply(app.State(), log)
		app.Configuration.MarkDirty()
	}

	ln, err := transport.Listen(cli.Bind)
	if err != nil {
		log.Error("hlxsimd: failed to bind protocol listener", "addr", cli.Bind, "err", err)
		os.Exit(2)
	}
	log.Info("hlxsimd: listening", "addr", ln.Addr())

	adminSrv := &http.Server{Addr: cli.AdminBind, Handler: admin.NewRouter(app, reg, time.Now())}
	go func() {
		if err := adminSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("hlxsimd: admin server failed", "err", err)
		}
	}()
	log.Info("hlxsimd: admin surface listening", "addr", cli.AdminBind)

	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.SetConnectionsActive(app.ConnectionCount())
			}
		}
	}()

	go func() {
		<-ctx.Done()
		log.Info("hlxsimd: shutting down")
		_ = ln.Close()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = adminSrv.Shutdown(shutdownCtx)
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Warn("hlxsimd: accept failed", "err", err)
			continue
		}
		go app.Connections.Serve(conn)
	}
}
