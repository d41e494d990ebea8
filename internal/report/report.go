package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kyokomi/emoji/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/amterp/better-emoji-picker/internal/dataset"
	"github.com/amterp/better-emoji-picker/pkg/interfaces"
)

const (
	bannerWidth   = 60
	sampleEntries = 3
	sampleKeyword = 5
)

// Summary aggregates everything the post-build report prints.
type Summary struct {
	CatalogEntries int
	KeywordEntries int
	Result         dataset.Result
	Artifact       interfaces.ArtifactInfo
	DryRun         bool
}

// Print writes the human-readable build summary. This is the tool's
// one stdout surface; diagnostics go to the logger on stderr.
func Print(w io.Writer, s Summary) {
	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "Emoji Dataset Builder")
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Catalog entries: %d\n", s.CatalogEntries)
	fmt.Fprintf(w, "Keyword entries: %d\n", s.KeywordEntries)
	fmt.Fprintf(w, "Processed %d emojis (%d skipped)\n", len(s.Result.Emojis), s.Result.SkippedTotal())

	printCategories(w, s.Result.Emojis)
	printArtifact(w, s)
	printSamples(w, s.Result.Emojis)

	fmt.Fprintln(w)
	fmt.Fprintln(w, emoji.Sprint(":white_check_mark:Done!"))
}

// printCategories lists per-category record counts, sorted by name.
func printCategories(w io.Writer, emojis []dataset.Emoji) {
	counts := make(map[string]int)
	for _, e := range emojis {
		counts[e.Category]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "By category:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %d\n", name, counts[name])
	}
}

func printArtifact(w io.Writer, s Summary) {
	fmt.Fprintln(w)
	if s.DryRun {
		fmt.Fprintln(w, "Dry run: artifact not written")
		return
	}
	fmt.Fprintf(w, "Output: %s\n", s.Artifact.Path)

	// Thousands-separated byte count ("272,123 bytes").
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Size: %d bytes (%.1f KB)\n", s.Artifact.Size, float64(s.Artifact.Size)/1024)
}

func printSamples(w io.Writer, emojis []dataset.Emoji) {
	if len(emojis) == 0 {
		return
	}
	n := len(emojis)
	if n > sampleEntries {
		n = sampleEntries
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sample entries:")
	for _, e := range emojis[:n] {
		kws := e.Keywords
		if len(kws) > sampleKeyword {
			kws = kws[:sampleKeyword]
		}
		fmt.Fprintf(w, "  %s %s (order: %d)\n", e.Emoji, e.Name, e.SortOrder)
		fmt.Fprintf(w, "     keywords: %s\n", strings.Join(kws, ", "))
	}
}
