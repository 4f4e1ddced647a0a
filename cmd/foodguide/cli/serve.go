package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the food guide HTTP API",
		Long:  "Serve the food guide HTTP API until interrupted. Logs are written to stdout as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, cleanup, err := opts.openApp(ctx, os.Stdout, false)
			if err != nil {
				return err
			}
			defer cleanup()

			return a.Serve(ctx)
		},
	}
}
