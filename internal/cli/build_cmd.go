package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/amterp/better-emoji-picker/internal/app"
)

// NewBuildCmd creates the build command, the explicit spelling of the
// root command's default action.
func NewBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Fetch both sources and write the dataset artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context())
		},
	}
}

// runBuild wires an Application from the loaded config and runs one build.
func runBuild(parent context.Context) error {
	if AppCfg == nil {
		log.Error().Msg("Configuration not loaded; PersistentPreRunE did not run or failed")
		return fmt.Errorf("configuration not loaded")
	}

	ctx, cancel := signalContext(parent)
	defer cancel()

	application := app.NewApplication(AppCfg)
	if err := application.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Build failed")
		return err
	}
	return nil
}
