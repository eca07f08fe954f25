// Package sanitize limpia el texto que llega de usuarios antes de persistirlo.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Las políticas de bluemonday son seguras para uso concurrente una vez construidas.
var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// RichText conserva el formato básico (párrafos, listas, enlaces) y elimina scripts y atributos peligrosos.
// Se usa para descripciones de vacantes, cartas de presentación y contenido de CV.
func RichText(s string) string {
	return strings.TrimSpace(ugc.Sanitize(s))
}

// PlainText elimina cualquier marcado. Títulos, nombres y ubicaciones.
// El resultado es texto, no HTML: las entidades que escapa la política se decodifican
// para que "R&D" se guarde y se busque tal cual. JSON, PDF y XML escapan al serializar.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
