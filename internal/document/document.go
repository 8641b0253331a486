// Package document parses and reconstructs front-matter documents: a metadata
// block between two "---" delimiter lines followed by a body.
//
// The front matter is deliberately not treated as YAML. Only flat
// "key: value" lines are recognized; everything else is carried through
// reconstruction verbatim. The raw block, not the parsed map, is the source
// of truth when the document is rewritten, so comments, spacing and lines the
// grammar does not understand survive the round trip byte-for-byte.
package document

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Delimiter is the marker line that opens and closes the front-matter block.
const Delimiter = "---"

// ErrMalformed reports input that does not match the delimiter grammar.
var ErrMalformed = errors.New("malformed document")

// fieldLine matches a single flat front-matter assignment. Keys are
// case-sensitive and restricted to letters, underscore and hyphen.
var fieldLine = regexp.MustCompile(`^([a-zA-Z_-]+):\s*(.*)$`)

// Document is one parsed front-matter file.
//
// FrontMatterRaw holds the exact original text between the two delimiter
// lines. Fields is a derived, lossy view of it used only to answer whether a
// key exists and what its value is.
type Document struct {
	FrontMatterRaw string
	Fields         map[string]string
	Body           string
}

// Parse splits raw text into front matter and body.
//
// The text must start with a "---" line and contain a closing "---" line;
// anything after the closing delimiter is the body, verbatim. Errors wrap
// ErrMalformed.
func Parse(text string) (*Document, error) {
	open := Delimiter + "\n"
	if !strings.HasPrefix(text, open) {
		return nil, fmt.Errorf("%w: missing opening %q delimiter", ErrMalformed, Delimiter)
	}

	rest := text[len(open):]
	closing := "\n" + Delimiter + "\n"
	idx := strings.Index(rest, closing)
	if idx < 0 {
		return nil, fmt.Errorf("%w: missing closing %q delimiter", ErrMalformed, Delimiter)
	}

	raw := rest[:idx]
	body := rest[idx+len(closing):]

	return &Document{
		FrontMatterRaw: raw,
		Fields:         parseFields(raw),
		Body:           body,
	}, nil
}

func parseFields(raw string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		m := fieldLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		fields[m[1]] = m[2]
	}
	return fields
}

// Reconstruct rewrites the original front matter line by line and reassembles
// the full document around translatedBody.
//
// A line whose key is exactly "lang" always gets the lowercase two-character
// prefix of targetLang, whether or not "lang" was requested for translation.
// A line whose key has an entry in translated gets that value. Every other
// line, including lines the field grammar does not match, passes through
// unchanged.
func Reconstruct(frontMatterRaw string, translated map[string]string, translatedBody, targetLang string) string {
	lines := strings.Split(frontMatterRaw, "\n")
	for i, line := range lines {
		m := fieldLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key := m[1]
		if key == "lang" {
			lines[i] = key + ": " + ShortLang(targetLang)
		} else if value, ok := translated[key]; ok {
			lines[i] = key + ": " + value
		}
	}

	var b strings.Builder
	b.WriteString(Delimiter)
	b.WriteString("\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(Delimiter)
	b.WriteString("\n")
	b.WriteString(translatedBody)
	return b.String()
}

// ShortLang derives the short language code written into the "lang" field:
// the lowercase two-character prefix of code.
func ShortLang(code string) string {
	code = strings.ToLower(code)
	if len(code) > 2 {
		return code[:2]
	}
	return code
}
