// Package normalize canonicaliza textos libres (roles, cargos, sedes) para que
// las comparaciones heurísticas sean insensibles a mayúsculas y tildes.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Text canonicaliza un texto libre: recorta espacios, pasa a mayúsculas y
// elimina marcas diacríticas combinantes ("GESTIÓN" y "GESTION" comparan igual).
// Entrada vacía devuelve cadena vacía. Función pura, sin modo de fallo.
func Text(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// NFD descompone los caracteres acentuados (é → e + tilde combinante)
	// y luego se descartan las marcas no espaciadoras.
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.TrimSpace(out))
}

// Sites separa una cadena de sedes separadas por comas y devuelve cada sede
// normalizada. Un usuario puede tener varias sedes asignadas ("CHIMBOTE, LIMA").
// Entradas vacías entre comas se descartan.
func Sites(s string) []string {
	parts := strings.Split(s, ",")
	sites := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := Text(p); n != "" {
			sites = append(sites, n)
		}
	}
	return sites
}

// isMn reporta si r es una marca combinante no espaciadora (tildes, diéresis).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
