package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/framewright/framegen/internal/server"
	"github.com/framewright/framegen/internal/service"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Port string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP generation server",
		Long: `Start the HTTP server exposing the generation pipeline.

Routes:
  POST /generate  floor plan in, generated frame out
  GET  /rules     registered rule IDs and names
  GET  /health    liveness probe

Configuration comes from the environment (PORT, ENV, READ_TIMEOUT,
WRITE_TIMEOUT); --port overrides PORT.

Example:
  framegen serve
  framegen serve --port 8080 --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Port, "port", "", "port to listen on (overrides PORT)")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	cfg := server.LoadConfig()
	if opts.Port != "" {
		cfg.Port = opts.Port
	}

	svc := service.New(nil)

	// Cycle warnings surface once at startup; they degrade rule
	// ordering but never block the server.
	for _, w := range svc.CycleWarnings() {
		slog.Warn("rule dependency cycle", "message", w.Message, "path", w.Path)
	}

	app := server.New(cfg, svc)

	slog.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "rules", len(svc.ListRules()))
	fmt.Fprintf(cmd.OutOrStdout(), "Listening on :%s. Press Ctrl-C to stop.\n", cfg.Port)

	if err := server.Listen(app, cfg); err != nil {
		return WrapExitError(ExitFailure, "server error", err)
	}

	slog.Info("server stopped")
	return nil
}
