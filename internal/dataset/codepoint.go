package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DecodeUnified converts a dash-joined sequence of hex codepoints into
// the rendered character sequence:
//
//	"1F600"       -> "😀"
//	"1F1FA-1F1F8" -> "🇺🇸" (regional-indicator pair)
//
// Every segment must parse as hex and land on a valid Unicode code
// point; otherwise the whole sequence is rejected and the caller skips
// the record.
func DecodeUnified(unified string) (string, error) {
	var b strings.Builder
	for _, seg := range strings.Split(unified, "-") {
		cp, err := strconv.ParseUint(seg, 16, 32)
		if err != nil {
			return "", fmt.Errorf("codepoint %q: %w", seg, err)
		}
		if !utf8.ValidRune(rune(cp)) {
			return "", fmt.Errorf("codepoint %q: not a valid code point", seg)
		}
		b.WriteRune(rune(cp))
	}
	return b.String(), nil
}
