package entity

import (
	"sort"
	"strings"
)

// Parse splits the codepoint range [start, end) of text into an ordered, gapless list of segments.
// Spans that are not fully inside the range are ignored, as are spans that overlap one already taken.
// A negative end means the end of the text.
func Parse(text string, set *Set, start, end int) []Segment {
	runes := []rune(text)
	if end < 0 || end > len(runes) {
		end = len(runes)
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return nil
	}

	var spans []Span
	for _, sp := range set.allSpans() {
		if sp.Start >= start && sp.End <= end && sp.Start < sp.End {
			spans = append(spans, sp)
		}
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	var res []Segment
	pos := start
	for _, sp := range spans {
		if sp.Start < pos {
			continue
		}
		if sp.Start > pos {
			res = append(res, Segment{Kind: KindText, Raw: string(runes[pos:sp.Start])})
		}
		res = append(res, Segment{
			Kind:    sp.Kind,
			Raw:     string(runes[sp.Start:sp.End]),
			Value:   sp.Value,
			Display: sp.Display,
			Url:     sp.Url,
		})
		pos = sp.End
	}
	if pos < end {
		res = append(res, Segment{Kind: KindText, Raw: string(runes[pos:end])})
	}
	return res
}

// Concat joins the raw text of all segments.
func Concat(segs []Segment) string {
	var sb strings.Builder
	for _, seg := range segs {
		sb.WriteString(seg.Raw)
	}
	return sb.String()
}
