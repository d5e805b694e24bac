package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"fallbaq/internal/accesslog"
	"fallbaq/internal/config"
	"fallbaq/internal/logging"
	"fallbaq/internal/resolver"
	"fallbaq/internal/server"
	"fallbaq/internal/telemetry"
)

const serviceName = "fallbaq"

func main() {
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(cfg, run).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(cfg config.Config, runFn func(context.Context, config.Config) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           serviceName + " [flags] <root>...",
		Short:         "Serve files from the first root directory that has them",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Roots = args
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runFn(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	cmd.Flags().StringVar(&cfg.Host, "host", cfg.Host, "address to bind")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "lifecycle log level")

	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logging.Init(level)

	if err := telemetry.Init(cfg.SentryDSN, cfg.Environment, serviceName); err != nil {
		log.Warn().Err(err).Msg("error reporting disabled")
	}
	defer telemetry.Flush()

	roots, err := resolver.NewRoots(cfg.Roots...)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve root directories")
		return err
	}

	for i, root := range roots.All() {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			log.Warn().Int("index", i).Str("root", root).Msg("root is not a directory, requests will skip it")
			continue
		}

		log.Info().Int("index", i).Str("root", root).Msg("serving root")
	}

	srv := server.New(roots, accesslog.New(nil))
	if err := srv.Run(ctx, cfg.Addr()); err != nil {
		log.Error().Err(err).Msg("server stopped")
		telemetry.CaptureError(err, "server run failed")
		return err
	}

	log.Info().Msg("server stopped")

	return nil
}
