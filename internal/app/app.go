package app

import (
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/amterp/better-emoji-picker/internal/artifact"
	"github.com/amterp/better-emoji-picker/internal/config"
	"github.com/amterp/better-emoji-picker/internal/source"
	"github.com/amterp/better-emoji-picker/pkg/interfaces"
)

// Application holds all dependencies for one build run.
type Application struct {
	Config  *config.AppConfig
	Sources interfaces.SourceProvider
	Sink    interfaces.ArtifactSink

	// Out receives the human-readable report; stdout in production.
	Out io.Writer

	// RunID tags logs and pushed metrics so concurrent or successive
	// builds can be told apart.
	RunID string
}

// NewApplication wires the concrete source client and artifact writer
// from config.
func NewApplication(cfg *config.AppConfig) *Application {
	return &Application{
		Config:  cfg,
		Sources: source.NewClient(cfg.Sources),
		Sink:    artifact.NewWriter(cfg.OutputPath),
		Out:     os.Stdout,
		RunID:   uuid.NewString(),
	}
}
