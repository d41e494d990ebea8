package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/amterp/better-emoji-picker/internal/config"
	"github.com/amterp/better-emoji-picker/internal/logging"
)

var (
	cfgFile string
	dryRun  bool
	AppCfg  *config.AppConfig // Populated in PersistentPreRunE
)

var RootCmd = &cobra.Command{
	Use:   "emoji-data-builder",
	Short: "Builds the emoji dataset consumed by the picker app.",
	Long: `emoji-data-builder fetches the emoji catalog and the keyword index,
merges them into normalized records, and writes one compact JSON artifact.
Invoked with no arguments it performs a build.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		AppCfg = loadedCfg

		logging.Setup(AppCfg.Log)
		AppCfg.DryRun = dryRun
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// signalContext returns a child of parent that is cancelled on SIGINT
// or SIGTERM, so an interrupted run aborts in-flight fetches and lets
// the preview server shut down gracefully.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case s := <-sigCh:
			log.Info().Str("signal", s.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml, $HOME/.emoji-data-builder/config.yaml)")
	RootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "run the pipeline without writing the artifact")

	RootCmd.AddCommand(NewBuildCmd())
	RootCmd.AddCommand(NewServeCmd())
}
