package signal

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining marks after NFD decomposition, so "bezpečí"
// and "bezpeci" normalize to the same token.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’'
}

// tokenize splits raw text on anything outside letters/digits/apostrophes
// and lowercases the result.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !isTokenRune(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, strings.ToLower(f))
	}
	return out
}

// normalizeToken strips diacritics and quote marks from a lowercased token.
func normalizeToken(tok string) string {
	if folded, _, err := transform.String(stripMarks, tok); err == nil {
		tok = folded
	}
	return strings.Map(func(r rune) rune {
		if r == '\'' || r == '’' || r == '`' {
			return -1
		}
		return r
	}, tok)
}

// lookup finds a token in one lexicon: exact match first, then each stem
// suffix in its fixed order. A stripped form must keep at least three
// characters to count.
func lookup(lex map[string]float64, tok string) (float64, bool) {
	if w, ok := lex[tok]; ok {
		return w, true
	}
	for _, suf := range stemSuffixes {
		if len(tok)-len(suf) < 3 {
			continue
		}
		if !strings.HasSuffix(tok, suf) {
			continue
		}
		if w, ok := lex[tok[:len(tok)-len(suf)]]; ok {
			return w, true
		}
	}
	return 0, false
}
