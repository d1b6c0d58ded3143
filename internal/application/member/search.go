package member

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldSearch normaliza un texto para búsqueda: minúsculas y sin marcas diacríticas
// (NFD, quitar Mn, NFC), de modo que "José" y "jose" coincidan. Los adaptadores en
// memoria comparan textos plegados; Postgres resuelve el caso con ILIKE.
func FoldSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.TrimSpace(folded)
}
