// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabular parses delimited text into rows of string fields. The
// parser is deliberately permissive: quote characters toggle a quoted span
// during a single left-to-right scan, delimiters inside a quoted span are
// literal content, and unbalanced quoting never fails — the scan simply runs
// to the end of the line in whatever mode it is in. encoding/csv is not used
// because it rejects exactly the malformed inputs this source format
// requires us to absorb (bare quotes, unterminated quoted fields).
package tabular

import "strings"

// Delimiter separates fields. The paper source is comma-delimited.
const Delimiter = ','

// Quote wraps fields that contain the delimiter.
const Quote = '"'

// Document holds a parsed tabular file: the header row and the data rows
// that produced at least one field.
type Document struct {
	// Header holds the first line's field names. Positionally significant
	// but not validated against the data rows.
	Header []string

	// Rows holds one field slice per non-empty data line, in file order.
	Rows [][]string
}

// ParseLine splits one line into trimmed fields. Quote characters flip the
// in-quotes state and are not emitted; delimiters inside quotes are kept as
// content. The text after the last delimiter is always emitted as a field,
// so a completely empty line yields one empty field — callers treating a
// row as meaningful should check Blank first.
func ParseLine(line string) []string {
	fields := make([]string, 0, 8)
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == Quote:
			inQuotes = !inQuotes
		case r == Delimiter && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// Blank reports whether a parsed row carries no meaningful fields.
func Blank(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}

// ParseDocument splits text into lines, captures the first line as the
// header, and parses every subsequent line. Blank lines and lines that
// yield no fields are skipped. An empty document yields a Document with a
// nil header and no rows.
func ParseDocument(text string) Document {
	var doc Document

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 {
		return doc
	}

	doc.Header = ParseLine(lines[0])
	if Blank(doc.Header) {
		doc.Header = nil
	}

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := ParseLine(line)
		if Blank(fields) {
			continue
		}
		doc.Rows = append(doc.Rows, fields)
	}
	return doc
}
