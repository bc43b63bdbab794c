package entity

import "regexp"

type TrailingUrl int

const (
	TuNoChange TrailingUrl = iota
	TuRemove
	TuUrlify
)

// Tweets with attachments end in a bare short link to the media itself.
var reTrailingUrl = regexp.MustCompile(`\bhttps://t\.co/[0-9a-zA-Z]+$`)

// ApplyTrailingUrl strips or linkifies the media link at the end of a tweet's text.
// It only acts when the tweet has media and the last segment is plain text.
func ApplyTrailingUrl(segs []Segment, set *Set, behavior TrailingUrl) []Segment {
	if behavior == TuNoChange || !set.HasMedia() || len(segs) == 0 {
		return segs
	}
	last := segs[len(segs)-1]
	if last.Kind != KindText {
		return segs
	}
	loc := reTrailingUrl.FindStringIndex(last.Raw)
	if loc == nil {
		return segs
	}
	link := last.Raw[loc[0]:]
	res := make([]Segment, 0, len(segs)+1)
	res = append(res, segs[:len(segs)-1]...)
	if loc[0] > 0 {
		res = append(res, Segment{Kind: KindText, Raw: last.Raw[:loc[0]]})
	}
	if behavior == TuUrlify {
		res = append(res, Segment{Kind: KindUrl, Raw: link, Value: link, Display: link, Url: link})
	}
	return res
}
