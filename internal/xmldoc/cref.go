package xmldoc

import "strings"

// crefMarkers are the two-character kind prefixes the compiler embeds in
// cross-reference identifiers: type, method, property, field.
var crefMarkers = strings.NewReplacer("T:", "", "M:", "", "P:", "", "F:", "")

// CleanCref strips symbol-kind markers from a cross-reference identifier,
// wherever they occur. An identifier without markers passes through unchanged.
func CleanCref(cref string) string {
	return crefMarkers.Replace(cref)
}
