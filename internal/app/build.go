package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/amterp/better-emoji-picker/internal/dataset"
	"github.com/amterp/better-emoji-picker/internal/metrics"
	"github.com/amterp/better-emoji-picker/internal/report"
)

// Run executes one build: fetch both sources, merge them into the
// normalized dataset, write the artifact, and print the report.
func (app *Application) Run(ctx context.Context) error {
	l := log.With().Str("run_id", app.RunID).Logger()
	l.Info().Msg("Starting dataset build")

	var (
		catalog  []dataset.CatalogEntry
		keywords dataset.KeywordIndex
	)

	// The two documents are independent, so fetch them concurrently.
	// Either failure cancels the other fetch and aborts the build.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = app.Sources.FetchCatalog(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		keywords, err = app.Sources.FetchKeywords(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("fetching sources: %w", err)
	}

	metrics.SourceEntries.WithLabelValues("catalog").Add(float64(len(catalog)))
	metrics.SourceEntries.WithLabelValues("keywords").Add(float64(len(keywords)))
	l.Info().
		Int("catalog_entries", len(catalog)).
		Int("keyword_entries", len(keywords)).
		Msg("Sources fetched")

	result := dataset.Build(catalog, keywords)
	metrics.RecordsKept.Add(float64(len(result.Emojis)))
	for reason, n := range result.Skipped {
		metrics.RecordsSkipped.WithLabelValues(string(reason)).Add(float64(n))
	}
	l.Info().
		Int("kept", len(result.Emojis)).
		Int("skipped", result.SkippedTotal()).
		Interface("skipped_by_reason", result.Skipped).
		Msg("Dataset built")

	summary := report.Summary{
		CatalogEntries: len(catalog),
		KeywordEntries: len(keywords),
		Result:         result,
		DryRun:         app.Config.DryRun,
	}

	if app.Config.DryRun {
		l.Info().Msg("[DRY RUN] Skipping artifact write")
	} else {
		info, err := app.Sink.Write(result.Emojis)
		if err != nil {
			return fmt.Errorf("writing artifact: %w", err)
		}
		metrics.ArtifactBytes.Set(float64(info.Size))
		summary.Artifact = info
		l.Info().Str("path", info.Path).Int("bytes", info.Size).Msg("Artifact written")
	}

	report.Print(app.Out, summary)

	// Metrics are best-effort: an unreachable gateway must not fail a
	// build that already produced its artifact.
	if url := app.Config.PushgatewayURL; url != "" {
		if err := metrics.Push(url, app.RunID); err != nil {
			l.Warn().Err(err).Str("gateway", url).Msg("Failed to push metrics")
		} else {
			l.Debug().Str("gateway", url).Msg("Metrics pushed")
		}
	}

	return nil
}
