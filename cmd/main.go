package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/angeloszaimis/storagecheck/config"
	"github.com/angeloszaimis/storagecheck/internal/envfile"
	"github.com/angeloszaimis/storagecheck/internal/handler"
	"github.com/angeloszaimis/storagecheck/internal/httpserver"
	"github.com/angeloszaimis/storagecheck/internal/report"
	"github.com/angeloszaimis/storagecheck/internal/resolver"
	"github.com/angeloszaimis/storagecheck/internal/storage"
	"github.com/angeloszaimis/storagecheck/pkg/logger"
)

const (
	exitReady    = 0
	exitNotReady = 1
	exitFailure  = 2
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(exitFailure)
	}

	log := logger.New(cfg.Logging.Level, false, cfg.Server.Environment, os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.Mode != config.ModeServe {
		code := check(ctx, cfg, log, os.Stdout, os.Environ())
		cancel()
		os.Exit(code)
	}

	if err := serve(ctx, cfg, log, os.Environ); err != nil {
		log.Error("Status server failed", slog.Any("err", err))
		cancel()
		os.Exit(exitFailure)
	}
}

// check resolves the current snapshot once, writes the report to out and
// returns the process exit code.
func check(ctx context.Context, cfg *config.Config, log *slog.Logger, out io.Writer, environ []string) int {
	src, err := envfile.Load(cfg.EnvFile.Path, environ)
	if err != nil {
		log.Error("Failed to load env file",
			slog.String("path", cfg.EnvFile.Path),
			slog.Any("err", err))
		return exitFailure
	}

	res := resolver.Resolve(src)

	log.Debug("Resolved storage configuration",
		slog.String("active", res.Active.String()),
		slog.Bool("r2_configured", res.R2.Configured),
		slog.Bool("cloudinary_configured", res.Cloudinary.Configured),
		slog.Bool("ready", res.Ready))

	// Unusable R2 settings are reported but do not change readiness.
	if client, err := storage.ActiveR2Client(ctx, src, res); err != nil {
		log.Warn("R2 settings are unusable", slog.Any("err", err))
	} else if client != nil {
		log.Debug("R2 client ready", slog.String("bucket", client.Bucket()))
	}

	if err := report.Write(out, cfg.Output.Format, src, res); err != nil {
		log.Error("Failed to write report", slog.Any("err", err))
		return exitFailure
	}

	if !res.Ready {
		log.Warn("Active storage is not properly configured",
			slog.String("backend", res.Active.String()),
			slog.Any("missing", res.Status(res.Active).Missing))
		return exitNotReady
	}

	return exitReady
}

// serve runs the status endpoints until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, log *slog.Logger, environ func() []string) error {
	status := handler.NewStatusHandler(log, envfile.Loader(cfg.EnvFile.Path, environ))

	srv, err := httpserver.New(cfg.Server.Address, status.Routes())
	if err != nil {
		return err
	}

	srvErrCh := make(chan error, 1)

	go func() {
		srvErrCh <- srv.Start()
	}()

	log.Info("Status server listening",
		slog.String("addr", srv.Addr()),
		slog.String("env_file", cfg.EnvFile.Path))

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
			return err
		}
		return nil
	case err := <-srvErrCh:
		return err
	}
}
