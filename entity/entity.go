package entity

type Kind int

const (
	KindText Kind = iota
	KindMention
	KindHashtag
	KindSymbol
	KindUrl
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMention:
		return "mention"
	case KindHashtag:
		return "hashtag"
	case KindSymbol:
		return "symbol"
	case KindUrl:
		return "url"
	}
	return "unknown"
}

// Span is one annotation over a half-open [Start, End) range of codepoints.
type Span struct {
	Kind  Kind
	Start int
	End   int
	// Handle for mentions, tag text for hashtags, "$"-prefixed ticker for symbols, expanded URL for links
	Value string
	// Link text shown for URLs
	Display string
	// Shortened URL as it appears in the text
	Url string
}

type Variant struct {
	Url         string
	ContentType string
}

// Media is an attachment. It is rendered on its own, never inline.
type Media struct {
	Type     string
	Url      string
	Variants []Variant
	// Codepoint offset where the media's short link ends in the text
	End      int
}

func (m *Media) IsVideo() bool {
	return m.Type == "video" || m.Type == "animated_gif"
}

// Set is everything the remote API annotated on one piece of text.
type Set struct {
	Mentions []Span
	Hashtags []Span
	Symbols  []Span
	Urls     []Span
	Media    []Media
}

func (s *Set) HasMedia() bool {
	return s != nil && len(s.Media) > 0
}

func (s *Set) allSpans() []Span {
	if s == nil {
		return nil
	}
	res := make([]Span, 0, len(s.Mentions)+len(s.Hashtags)+len(s.Symbols)+len(s.Urls))
	res = append(res, s.Mentions...)
	res = append(res, s.Hashtags...)
	res = append(res, s.Symbols...)
	res = append(res, s.Urls...)
	return res
}

// Segment is one piece of parsed text. Raw is the exact substring it covers.
type Segment struct {
	Kind    Kind
	Raw     string
	Value   string
	Display string
	Url     string
}
