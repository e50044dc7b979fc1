package adminkit

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape replaces the five HTML-sensitive characters in text with their
// entities. Everything else, including text that already looks like an
// entity, is left alone: callers must not escape text before passing it in.
func Escape(text string) string {
	return htmlEscaper.Replace(text)
}
