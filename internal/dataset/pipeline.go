package dataset

import "strings"

// Defaults substituted when the catalog omits an optional field.
const (
	DefaultCategory  = "Other"
	DefaultSortOrder = 9999
)

// The five Fitzpatrick skin-tone modifiers (U+1F3FB..U+1F3FF) as they
// appear in unified segments. Entries carrying one are tone variants of
// a base emoji and stay out of the dataset.
var skinToneModifiers = map[string]struct{}{
	"1F3FB": {},
	"1F3FC": {},
	"1F3FD": {},
	"1F3FE": {},
	"1F3FF": {},
}

// HasSkinToneModifier reports whether any segment of the unified
// sequence is a skin-tone modifier codepoint.
func HasSkinToneModifier(unified string) bool {
	for _, seg := range strings.Split(unified, "-") {
		if _, ok := skinToneModifiers[strings.ToUpper(seg)]; ok {
			return true
		}
	}
	return false
}

// SkipReason labels why a catalog entry was excluded from the output.
type SkipReason string

const (
	SkipNoAppleImg SkipReason = "no_apple_img"
	SkipSkinTone   SkipReason = "skin_tone_variant"
	SkipBadCode    SkipReason = "bad_codepoint"
	SkipDuplicate  SkipReason = "duplicate_glyph"
)

// Result is the outcome of one pipeline run: the ordered records plus
// per-reason skip counts for reporting.
type Result struct {
	Emojis  []Emoji
	Skipped map[SkipReason]int
}

// SkippedTotal sums the skip counts across all reasons.
func (r Result) SkippedTotal() int {
	var n int
	for _, c := range r.Skipped {
		n += c
	}
	return n
}

// Build runs the merge-and-normalize pipeline: a single linear pass
// over the catalog in its given order, filtering ineligible entries and
// joining each survivor with its keyword-index entry. The catalog is
// expected to arrive sorted ascending by sort_order; Build does not
// re-sort, so emission order is the final artifact order. All state
// (duplicate tracking, output accumulation) is local to the call.
//
// Per-entry failures never abort the run: an entry that cannot be
// decoded is skipped and counted, nothing more.
func Build(catalog []CatalogEntry, keywords KeywordIndex) Result {
	res := Result{
		Emojis:  make([]Emoji, 0, len(catalog)),
		Skipped: make(map[SkipReason]int),
	}
	seen := make(map[string]struct{}, len(catalog))

	for _, entry := range catalog {
		if !entry.HasAppleImg {
			res.Skipped[SkipNoAppleImg]++
			continue
		}
		if HasSkinToneModifier(entry.Unified) {
			res.Skipped[SkipSkinTone]++
			continue
		}
		glyph, err := DecodeUnified(entry.Unified)
		if err != nil {
			res.Skipped[SkipBadCode]++
			continue
		}
		if _, dup := seen[glyph]; dup {
			res.Skipped[SkipDuplicate]++
			continue
		}
		seen[glyph] = struct{}{}

		category := DefaultCategory
		if entry.Category != nil {
			category = *entry.Category
		}
		sortOrder := DefaultSortOrder
		if entry.SortOrder != nil {
			sortOrder = *entry.SortOrder
		}

		res.Emojis = append(res.Emojis, Emoji{
			Emoji:     glyph,
			Name:      strings.ToLower(entry.Name),
			Keywords:  MergeKeywords(entry.ShortNames, keywords[glyph]),
			Category:  category,
			SortOrder: sortOrder,
		})
	}

	return res
}
