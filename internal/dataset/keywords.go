package dataset

import "strings"

// NormalizeKeyword lowercases a keyword and replaces underscores with
// spaces, so "Thumbs_Up" and "thumbs up" compare equal.
func NormalizeKeyword(kw string) string {
	return strings.ReplaceAll(strings.ToLower(kw), "_", " ")
}

// MergeKeywords builds the search-keyword list for one emoji from the
// catalog short names and its keyword-index entry. Order encodes search
// relevance and is part of the contract: normalized short names first,
// then index entries, each deduplicated against everything already
// accumulated. The first index entry repeats the emoji's display name
// and is dropped; a single-entry index list therefore contributes
// nothing. Entries starting with ':' or ';' are text emoticons and are
// excluded. The result is never nil so the artifact serializes an empty
// list, not null.
func MergeKeywords(shortNames, indexEntry []string) []string {
	merged := make([]string, 0, len(shortNames)+len(indexEntry))
	seen := make(map[string]struct{}, len(shortNames)+len(indexEntry))

	for _, sn := range shortNames {
		kw := NormalizeKeyword(sn)
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		merged = append(merged, kw)
	}

	if len(indexEntry) > 1 {
		for _, raw := range indexEntry[1:] {
			kw := NormalizeKeyword(raw)
			if strings.HasPrefix(kw, ":") || strings.HasPrefix(kw, ";") {
				continue
			}
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			merged = append(merged, kw)
		}
	}

	return merged
}
