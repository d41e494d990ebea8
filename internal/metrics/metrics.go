package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	// SourceEntries counts entries decoded per source document.
	SourceEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emoji_builder_source_entries_total",
			Help: "Total number of entries decoded from a source document.",
		},
		[]string{"source"}, // catalog, keywords
	)

	// SourceBytes counts payload bytes downloaded per source document.
	SourceBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emoji_builder_source_bytes_total",
			Help: "Total number of payload bytes downloaded from a source.",
		},
		[]string{"source"},
	)

	// RecordsKept counts normalized records emitted into the artifact.
	RecordsKept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "emoji_builder_records_kept_total",
			Help: "Total number of normalized emoji records emitted.",
		},
	)

	// RecordsSkipped counts catalog entries excluded by the pipeline.
	RecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emoji_builder_records_skipped_total",
			Help: "Total number of catalog entries excluded from the artifact.",
		},
		[]string{"reason"}, // no_apple_img, skin_tone_variant, bad_codepoint, duplicate_glyph
	)

	// ArtifactBytes reports the size of the most recently written artifact.
	ArtifactBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "emoji_builder_artifact_bytes",
			Help: "Size in bytes of the artifact written by the last build.",
		},
	)
)

// Push sends the current metric state to a Pushgateway, the exposition
// path for one-shot builds where nothing sticks around to be scraped.
// The run id becomes a grouping label so successive builds do not
// overwrite each other.
func Push(gatewayURL, runID string) error {
	return push.New(gatewayURL, "emoji_data_builder").
		Grouping("run_id", runID).
		Gatherer(prometheus.DefaultGatherer).
		Push()
}
