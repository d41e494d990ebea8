package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// entry builds a renderable catalog entry with the common fields set.
func entry(unified, name string, sortOrder int) CatalogEntry {
	return CatalogEntry{
		Unified:     unified,
		Name:        name,
		ShortNames:  []string{},
		Category:    strPtr("Smileys & Emotion"),
		SortOrder:   intPtr(sortOrder),
		HasAppleImg: true,
	}
}

func glyphs(emojis []Emoji) []string {
	out := make([]string, 0, len(emojis))
	for _, e := range emojis {
		out = append(out, e.Emoji)
	}
	return out
}

func TestBuild_EndToEndRecord(t *testing.T) {
	catalog := []CatalogEntry{
		{
			Unified:     "1F600",
			Name:        "GRINNING FACE",
			ShortNames:  []string{"grinning"},
			Category:    strPtr("Smileys & Emotion"),
			SortOrder:   intPtr(1),
			HasAppleImg: true,
		},
	}
	keywords := KeywordIndex{"😀": {"grinning_face", "happy", "joy"}}

	res := Build(catalog, keywords)
	require.Len(t, res.Emojis, 1)
	assert.Equal(t, Emoji{
		Emoji:     "😀",
		Name:      "grinning face",
		Keywords:  []string{"grinning", "happy", "joy"},
		Category:  "Smileys & Emotion",
		SortOrder: 1,
	}, res.Emojis[0])
	assert.Zero(t, res.SkippedTotal())
}

func TestBuild_ExcludesWithoutAppleRendering(t *testing.T) {
	e := entry("1F600", "GRINNING FACE", 1)
	e.HasAppleImg = false

	res := Build([]CatalogEntry{e}, nil)
	assert.Empty(t, res.Emojis)
	assert.Equal(t, 1, res.Skipped[SkipNoAppleImg])
}

func TestBuild_ExcludesSkinToneVariants(t *testing.T) {
	// Each modifier excludes the entry even though has_img_apple is true.
	for _, mod := range []string{"1F3FB", "1F3FC", "1F3FD", "1F3FE", "1F3FF"} {
		res := Build([]CatalogEntry{entry("1F44D-"+mod, "THUMBS UP SIGN", 1)}, nil)
		assert.Empty(t, res.Emojis, "modifier %s must be excluded", mod)
		assert.Equal(t, 1, res.Skipped[SkipSkinTone], "modifier %s", mod)
	}
}

func TestBuild_SkipsUndecodableEntries(t *testing.T) {
	res := Build([]CatalogEntry{
		entry("ZZZZ", "BROKEN", 1),
		entry("1F601", "GRINNING FACE WITH SMILING EYES", 2),
	}, nil)

	require.Len(t, res.Emojis, 1)
	assert.Equal(t, "😁", res.Emojis[0].Emoji)
	assert.Equal(t, 1, res.Skipped[SkipBadCode])
}

func TestBuild_SuppressesDuplicateGlyphs(t *testing.T) {
	res := Build([]CatalogEntry{
		entry("1F600", "GRINNING FACE", 1),
		entry("1F600", "GRINNING FACE AGAIN", 2),
	}, nil)

	require.Len(t, res.Emojis, 1)
	assert.Equal(t, "grinning face", res.Emojis[0].Name, "first occurrence wins")
	assert.Equal(t, 1, res.Skipped[SkipDuplicate])
}

func TestBuild_DefaultsForMissingFields(t *testing.T) {
	res := Build([]CatalogEntry{
		{
			Unified:     "1F4A9",
			Name:        "PILE OF POO",
			ShortNames:  []string{"hankey"},
			HasAppleImg: true,
		},
	}, nil)

	require.Len(t, res.Emojis, 1)
	assert.Equal(t, DefaultCategory, res.Emojis[0].Category)
	assert.Equal(t, DefaultSortOrder, res.Emojis[0].SortOrder)
}

func TestBuild_EmptyKeywordsSerializeAsList(t *testing.T) {
	res := Build([]CatalogEntry{
		{Unified: "1F600", Name: "GRINNING FACE", HasAppleImg: true},
	}, nil)

	require.Len(t, res.Emojis, 1)
	assert.NotNil(t, res.Emojis[0].Keywords)
	assert.Empty(t, res.Emojis[0].Keywords)
}

// Eligible entries come out in catalog order even when sort_order is
// not ascending: the pipeline never re-sorts.
func TestBuild_PreservesCatalogOrder(t *testing.T) {
	catalog := []CatalogEntry{
		entry("1F602", "FACE WITH TEARS OF JOY", 3),
		entry("1F4A9-1F3FB", "TONE VARIANT", 1), // filtered out
		entry("1F600", "GRINNING FACE", 9),
		entry("ZZZZ", "BROKEN", 2), // filtered out
		entry("1F601", "GRINNING FACE WITH SMILING EYES", 5),
		entry("1F600", "DUPLICATE GRINNING FACE", 1), // filtered out
	}

	res := Build(catalog, nil)
	assert.Equal(t, []string{"😂", "😀", "😁"}, glyphs(res.Emojis))
	assert.Equal(t, 3, res.SkippedTotal())
}

func TestHasSkinToneModifier(t *testing.T) {
	assert.True(t, HasSkinToneModifier("1F44D-1F3FD"))
	assert.True(t, HasSkinToneModifier("1f3fb"))
	assert.False(t, HasSkinToneModifier("1F44D"))
	assert.False(t, HasSkinToneModifier("1F3FA"), "U+1F3FA is not a tone modifier")
}
