package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raven-os/albinos/internal/configstore"
	"github.com/raven-os/albinos/internal/netsvc"
)

// defaultSocketPath is the well-known location a client with no explicit
// --socket override connects to.
func defaultSocketPath() string {
	return filepath.Join(os.TempDir(), "raven-os_service_albinos.sock")
}

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Database string
	Socket   string
}

// NewServeCommand creates the serve command: open the store, bind the
// socket, and run the dispatch loop until a signal or listener failure.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the configuration service",
		Long: `Open the configuration store and listen for clients on a local
UNIX-domain socket until interrupted.

Example:
  albinosd serve --db ./albinos.db
  albinosd serve --db /var/lib/albinos/albinos.db --socket /run/albinos.sock`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the SQLite database (required)")
	cmd.Flags().StringVar(&opts.Socket, "socket", defaultSocketPath(), "path to the UNIX-domain socket")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	logger.Info("opening store", "path", opts.Database)
	store, err := configstore.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	logger.Info("binding socket", "path", opts.Socket)
	listener, err := netsvc.Listen(opts.Socket)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to bind socket", err)
	}
	defer listener.Close()

	srv := netsvc.New(listener, store, logger)

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Info("albinosd started", "socket", opts.Socket, "db", opts.Database)

	if err := srv.Run(ctx); err != nil && err != context.Canceled && err != context.DeadlineExceeded {
		return WrapExitError(ExitFailure, "server error", err)
	}

	logger.Info("albinosd stopped gracefully")
	return nil
}
