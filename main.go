package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Serve or export the portfolio page",
		// With no subcommand the binary serves, same as "portfolio serve".
		RunE:         runServe,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	addServeFlags(root.Flags())

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	addServeFlags(serve.Flags())

	export := &cobra.Command{
		Use:   "export [dir]",
		Short: "Write index.html and static assets to dir (default ./dist)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}

	root.AddCommand(serve, export)
	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Mode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var visits *VisitStore
	if cfg.DBPath != "" {
		visits, err = OpenVisitStore(ctx, cfg.DBPath, cfg.Retention, logger)
		if err != nil {
			return err
		}
		defer visits.Close()

		if _, err := visits.Prune(ctx); err != nil {
			logger.Error("pruning visits", "error", err)
		}
		logger.Info("visit metrics enabled", "db", cfg.DBPath, "retention", cfg.Retention)
		if cfg.AdminToken == "" {
			logger.Warn("admin token not set, /admin/api is disabled")
		}
	}

	srv, err := NewServer(DefaultContent(), visits, cfg.AdminToken, logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx, cfg.Addr)
}

func runExport(cmd *cobra.Command, args []string) error {
	dir := "dist"
	if len(args) == 1 {
		dir = args[0]
	}

	v, err := newViper(cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	written, err := ExportSite(dir, DefaultContent())
	if err != nil {
		return err
	}
	for _, path := range written {
		logger.Debug("wrote file", "path", path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s\n", len(written), dir)
	return nil
}
