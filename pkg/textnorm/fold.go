// Package textnorm folds Portuguese text for keyword comparison.
// Pipeline: NFD decomposition, case folding, combining-mark removal, NFC.
package textnorm

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		)
	},
}

// Fold returns s trimmed, case-folded and stripped of diacritics,
// so "Terça" and "terca" compare equal.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Contains reports whether needle occurs in haystack after folding both.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
