package domain

import "strings"

// Segment is a run of text that either matches the query or not
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text into segments, marking case-insensitive occurrences of query.
// An empty query yields the whole text as a single unmatched segment.
func Highlight(text, query string) []Segment {
	query = strings.ToLower(strings.TrimSpace(query))
	lower := strings.ToLower(text)

	// Offsets are only valid while lower-casing keeps byte lengths
	if query == "" || len(lower) != len(text) {
		return []Segment{{Text: text}}
	}

	var segments []Segment
	pos := 0
	for {
		idx := strings.Index(lower[pos:], query)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(query)
		if start > pos {
			segments = append(segments, Segment{Text: text[pos:start]})
		}
		segments = append(segments, Segment{Text: text[start:end], Match: true})
		pos = end
	}
	if pos < len(text) {
		segments = append(segments, Segment{Text: text[pos:]})
	}
	if len(segments) == 0 {
		return []Segment{{Text: text}}
	}
	return segments
}
