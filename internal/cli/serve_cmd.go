package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amterp/better-emoji-picker/internal/preview"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the built artifact over HTTP for picker development",
		Long: `Serves the most recently built artifact on /emojis.json, along with
/healthz and Prometheus /metrics. The artifact is re-read per request,
so rebuilding while serving is fine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("configuration not loaded")
			}
			if addr == "" {
				addr = AppCfg.ServeAddr
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			return preview.NewServer(addr, AppCfg.OutputPath).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to serve_addr from config)")
	return cmd
}
