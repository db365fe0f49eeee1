// Package textutil normalización de texto para búsquedas insensibles a
// mayúsculas y acentos (los nombres de clientes y productos suelen escribirse
// con y sin tildes).
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve el texto en minúsculas y sin marcas diacríticas.
func Fold(s string) string {
	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Contains indica si Fold(haystack) contiene needle (needle ya plegado).
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), needle)
}
