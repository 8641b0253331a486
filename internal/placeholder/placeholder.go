// Package placeholder protects Hugo shortcodes and template expressions
// during translation. Markup-aware backends leave HTML tags alone but happily
// translate the inside of {{< ref "..." >}}, so each shortcode is swapped for
// an empty element marker (<ph id="0"/>, <ph id="1"/>, …) that tag handling
// preserves, and substituted back after translation.
package placeholder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// shortcodes: {{< ... >}} and {{% ... %}}, non-greedy, may span lines
	reShortcode = regexp.MustCompile(`(?s){{<.*?>}}|{{%.*?%}}`)

	// bare template expressions: {{ ... }}
	reTemplateExpr = regexp.MustCompile(`{{[^{}]*}}`)

	// marker reference in translated text
	reMarker = regexp.MustCompile(`<ph id="(\d+)"\s*/>`)
)

// Protect replaces shortcodes and template expressions with numbered markers
// in the order they appear in text. It returns the modified text and the
// slice of captured originals so Restore can put them back. Text without any
// shortcode passes through untouched.
func Protect(text string) (string, []string) {
	var markers []string
	counter := 0

	replace := func(match string) string {
		id := fmt.Sprintf(`<ph id="%d"/>`, counter)
		markers = append(markers, match)
		counter++
		return id
	}

	// Shortcodes first: they contain {{ }} pairs the bare-expression pattern
	// would otherwise chew into pieces.
	text = reShortcode.ReplaceAllStringFunc(text, replace)
	text = reTemplateExpr.ReplaceAllStringFunc(text, replace)

	return text, markers
}

// Restore substitutes <ph id="n"/> markers in text back with the originals
// captured by Protect. Unrecognised indices leave the marker as-is.
func Restore(text string, markers []string) string {
	return reMarker.ReplaceAllStringFunc(text, func(match string) string {
		sub := reMarker.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		idx, err := strconv.Atoi(sub[1])
		if err != nil || idx < 0 || idx >= len(markers) {
			return match
		}
		return markers[idx]
	})
}

// Validate checks whether all markers created by Protect are still present in
// the translated text. It returns the list of missing indices.
func Validate(text string, markers []string) []int {
	var missing []int
	for i := range markers {
		if !strings.Contains(text, fmt.Sprintf(`<ph id="%d"`, i)) {
			missing = append(missing, i)
		}
	}
	return missing
}
