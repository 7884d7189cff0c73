// Package normalize holds the pure string transforms applied to content before it is
// persisted: slug derivation and tag list handling.
package normalize

import (
	"strings"
	"unicode"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters and symbols that do not decompose into an ASCII base plus combining marks.
var transliterations = map[rune]string{
	'&': " and ",
	'ß': "ss",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'ł': "l", 'Ł': "L",
	'þ': "th", 'Þ': "TH",
	'ı': "i",
}

// BuildSlug derives a URL-safe identifier from a title. Non-Latin scripts are
// transliterated to ASCII. The result only contains [a-z0-9-], never starts or ends
// with a hyphen and never holds two hyphens in a row. It is empty when the title has no
// letters or digits at all. Equal titles always produce equal slugs; distinct titles
// may collide.
func BuildSlug(title string) string {
	var expanded strings.Builder
	expanded.Grow(len(title))
	for _, r := range title {
		if repl, ok := transliterations[r]; ok {
			expanded.WriteString(repl)
			continue
		}
		expanded.WriteRune(r)
	}

	stripped, _, err := transform.String(stripMarks(), expanded.String())
	if err != nil {
		stripped = expanded.String()
	}
	// Cyrillic, Greek, CJK and the like have no ASCII base letter to fall back on.
	stripped = unidecode.Unidecode(stripped)

	var b strings.Builder
	b.Grow(len(stripped))
	pendingSep := false
	for _, r := range stripped {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '_' || unicode.IsSpace(r):
			pendingSep = true
		}
	}
	return b.String()
}

func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
