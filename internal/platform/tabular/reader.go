package tabular

import (
	"math"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// Row is one data line keyed by the ordered header list of its source.
// Header order matters: several exports encode meaning in column position.
type Row struct {
	headers []string
	values  []string
	present int
}

func (r Row) Headers() []string {
	return r.headers
}

// Values returns every cell, padded with "" up to the header count.
func (r Row) Values() []string {
	return r.values
}

// Len is the number of cells after padding.
func (r Row) Len() int {
	return len(r.values)
}

// Present is the number of cells the source line actually carried.
func (r Row) Present() int {
	return r.present
}

func (r Row) At(i int) string {
	if i < 0 || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}

// Get returns the value of the first column named header.
func (r Row) Get(header string) (string, bool) {
	for i, h := range r.headers {
		if h == header {
			return r.At(i), true
		}
	}
	return "", false
}

// Lines splits text on newlines and drops blank lines.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Header splits a header line on commas without quote handling.
func Header(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Parse reads text into rows. The first non-blank line is the header.
func Parse(text string) []Row {
	lines := Lines(text)
	if len(lines) == 0 {
		return nil
	}

	headers := Header(lines[0])
	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := SplitQuoted(line)
		present := len(values)
		for len(values) < len(headers) {
			values = append(values, "")
		}
		rows = append(rows, Row{headers: headers, values: values, present: present})
	}
	return rows
}

// SplitQuoted splits one line on commas. A double quote toggles quoted mode
// and is dropped from the output; doubled quotes are not escapes.
func SplitQuoted(line string) []string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	out := make([]string, 0, 16)
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			out = append(out, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			_ = buf.WriteByte(c)
		}
	}
	out = append(out, strings.TrimSpace(buf.String()))
	return out
}

// ParseNumber parses a trimmed decimal cell. Empty, NaN and infinite values
// are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func IsNumeric(s string) bool {
	_, ok := ParseNumber(s)
	return ok
}
