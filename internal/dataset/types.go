package dataset

// CatalogEntry is one record of the primary metadata source: a base
// emoji descriptor, never a skin-tone variant row of the output.
// Category and SortOrder are pointers so an absent field can be told
// apart from a present zero value when defaults are applied.
type CatalogEntry struct {
	Unified     string   `json:"unified"`
	Name        string   `json:"name"`
	ShortNames  []string `json:"short_names"`
	Category    *string  `json:"category"`
	SortOrder   *int     `json:"sort_order"`
	HasAppleImg bool     `json:"has_img_apple"`
}

// KeywordIndex is the secondary keyword source: rendered emoji mapped
// to an ordered alias list. By convention the first entry repeats the
// emoji's common name; later entries are synonyms, some of them
// text-emoticon aliases (":D", ";P") that never become search terms.
type KeywordIndex map[string][]string

// Emoji is one normalized output record. The field set and JSON names
// are fixed; the picker app reads them verbatim.
type Emoji struct {
	Emoji     string   `json:"emoji"`
	Name      string   `json:"name"`
	Keywords  []string `json:"keywords"`
	Category  string   `json:"category"`
	SortOrder int      `json:"sortOrder"`
}
