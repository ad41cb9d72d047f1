// Command hlxd is the HLX matrix control daemon: it serves the bracketed
// ASCII protocol over TCP (and, optionally, a serial control port) and
// exposes a read-only operational surface (health, Prometheus metrics,
// status) on a separate HTTP listener.
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

// CLI is hlxd's command-line surface: a bind address for the protocol
// listener, an optional serial control port, the admin HTTP address, and
// the backup document path.
type CLI struct {
	Bind       string `help:"TCP address the protocol listener binds." default:":23"`
	Serial     string `help:"Serial device for the RS-232 control port (e.g. /dev/ttyUSB0). When set, the TCP listener is still started alongside it." default:""`
	Baud       int    `help:"Serial baud rate; 0 selects the matrix's documented default." default:"0"`
	AdminBind  string `help:"HTTP address for /healthz, /metrics, /status." default:":8080"`
	ConfigPath string `help:"Path to the backup JSON document." default:"hlx.json"`
	Debug      bool   `help:"Enable debug logging."`
}

func main() {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("hlxd"),
		kong.Description("HLX multi-zone audio matrix control daemon"),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := backup.NewJSONStore(cli.ConfigPath)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	app := server.New(store, nil, log)
	app.SetMetrics(m)
	app.Start()
	defer app.Stop()

	ln, err := transport.Listen(cli.Bind)
	if err != nil {
		log.Error("hlxd: failed to bind protocol listener", "addr", cli.Bind, "err", err)
		os.Exit(2)
	}
	log.Info("hlxd: listening", "addr", ln.Addr())

	if cli.Serial != "" {
		sc, err := transport.OpenSerial(cli.Serial, cli.Baud)
		if err != nil {
			log.Error("hlxd: failed to open serial port", "dev", cli.Serial, "err", err)
			os.Exit(2)
		}
		log.Info("hlxd: serving serial control port", "dev", cli.Serial)
		go app.Connections.Serve(sc)
	}

	adminSrv := &http.Server{Addr: cli.AdminBind, Handler: admin.NewRouter(app, reg, time.Now())}
	go func() {
		if err := adminSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("hlxd: admin server failed", "err", err)
		}
	}()
	log.Info("hlxd: admin surface listening", "addr", cli.AdminBind)

	go sampleConnectionsActive(ctx, app, m)

	go func() {
		<-ctx.Done()
		log.Info("hlxd: shutting down")
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
			log.Warn("hlxd: accept failed", "err", err)
			continue
		}
		go app.Connections.Serve(conn)
	}
}

func sampleConnectionsActive(ctx context.Context, app *server.Application, m *metrics.Metrics) {
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
}
