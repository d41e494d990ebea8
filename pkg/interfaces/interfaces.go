package interfaces

import (
	"context"

	"github.com/amterp/better-emoji-picker/internal/dataset"
)

// ArtifactInfo describes a written artifact for reporting.
type ArtifactInfo struct {
	Path string
	Size int
}

// SourceProvider supplies the two remote emoji datasets. Both fetches
// are independent reads; a failure of either is fatal to the build.
type SourceProvider interface {
	FetchCatalog(ctx context.Context) ([]dataset.CatalogEntry, error)
	FetchKeywords(ctx context.Context) (dataset.KeywordIndex, error)
}

// ArtifactSink persists the final dataset and reports where it landed
// and how large it is.
type ArtifactSink interface {
	Write(emojis []dataset.Emoji) (ArtifactInfo, error)
}
