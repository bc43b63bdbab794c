package entity

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func kinds(segs []Segment) []Kind {
	res := make([]Kind, len(segs))
	for i, seg := range segs {
		res[i] = seg.Kind
	}
	return res
}

func raws(segs []Segment) []string {
	res := make([]string, len(segs))
	for i, seg := range segs {
		res[i] = seg.Raw
	}
	return res
}

func TestParseDisjointSpans(t *testing.T) {
	text := "hello @bob #tag end"
	set := &Set{
		Mentions: []Span{{Kind: KindMention, Start: 6, End: 10, Value: "bob"}},
		Hashtags: []Span{{Kind: KindHashtag, Start: 11, End: 15, Value: "tag"}},
	}
	segs := Parse(text, set, 0, -1)
	assert.Equal(t, []Kind{KindText, KindMention, KindText, KindHashtag, KindText}, kinds(segs))
	assert.Equal(t, []string{"hello ", "@bob", " ", "#tag", " end"}, raws(segs))
	assert.Equal(t, "bob", segs[1].Value)
	assert.Equal(t, "tag", segs[3].Value)
	assert.Equal(t, text, Concat(segs))
}

func TestParseSortsSpansFromAllKinds(t *testing.T) {
	text := "$ABC see https://t.co/x @amy"
	set := &Set{
		Mentions: []Span{{Kind: KindMention, Start: 24, End: 28, Value: "amy"}},
		Symbols:  []Span{{Kind: KindSymbol, Start: 0, End: 4, Value: "$ABC"}},
		Urls: []Span{{Kind: KindUrl, Start: 9, End: 23,
			Value: "https://example.com/page", Display: "example.com/page", Url: "https://t.co/x"}},
	}
	segs := Parse(text, set, 0, -1)
	assert.Equal(t, []Kind{KindSymbol, KindText, KindUrl, KindText, KindMention}, kinds(segs))
	assert.Equal(t, "example.com/page", segs[2].Display)
	assert.Equal(t, text, Concat(segs))
}

func TestParseNoSpans(t *testing.T) {
	segs := Parse("just text", nil, 0, -1)
	assert.Equal(t, 1, len(segs))
	assert.Equal(t, KindText, segs[0].Kind)
	assert.Equal(t, "just text", segs[0].Raw)

	segs = Parse("just text", &Set{}, 5, 9)
	assert.Equal(t, []string{"text"}, raws(segs))
}

func TestParseEmptyRange(t *testing.T) {
	assert.Nil(t, Parse("", nil, 0, -1))
	assert.Nil(t, Parse("abc", nil, 2, 2))
	assert.Nil(t, Parse("abc", nil, 3, 1))
}

func TestParseCodepointIndices(t *testing.T) {
	// The emoji is one codepoint but two UTF-16 units and four bytes
	text := "🐦🐦 hi @bob!"
	set := &Set{
		Mentions: []Span{{Kind: KindMention, Start: 6, End: 10, Value: "bob"}},
	}
	segs := Parse(text, set, 0, -1)
	assert.Equal(t, []string{"🐦🐦 hi ", "@bob", "!"}, raws(segs))
	assert.Equal(t, text, Concat(segs))
}

func TestParseDropsSpansOutsideDisplayRange(t *testing.T) {
	text := "@amy @bob look at this https://t.co/abc"
	set := &Set{
		Mentions: []Span{
			{Kind: KindMention, Start: 0, End: 4, Value: "amy"},
			{Kind: KindMention, Start: 5, End: 9, Value: "bob"},
		},
		Urls: []Span{{Kind: KindUrl, Start: 23, End: 39, Url: "https://t.co/abc"}},
	}
	segs := Parse(text, set, 10, 22)
	assert.Equal(t, []Kind{KindText}, kinds(segs))
	assert.Equal(t, "look at this", segs[0].Raw)

	// Partially covered span is dropped, text is kept
	segs = Parse(text, set, 2, 22)
	assert.Equal(t, []string{"my ", "@bob", " look at this"}, raws(segs))
}

func TestParseSkipsOverlapsAndBadSpans(t *testing.T) {
	text := "#golang rocks"
	set := &Set{
		Hashtags: []Span{
			{Kind: KindHashtag, Start: 0, End: 7, Value: "golang"},
			{Kind: KindHashtag, Start: 3, End: 7, Value: "lang"},
			{Kind: KindHashtag, Start: 9, End: 9, Value: "empty"},
			{Kind: KindHashtag, Start: 12, End: 40, Value: "toolong"},
		},
	}
	segs := Parse(text, set, 0, -1)
	assert.Equal(t, []string{"#golang", " rocks"}, raws(segs))
	assert.Equal(t, text, Concat(segs))
}

func TestParseClampsRange(t *testing.T) {
	segs := Parse("abc", nil, -3, 99)
	assert.Equal(t, []string{"abc"}, raws(segs))
}
