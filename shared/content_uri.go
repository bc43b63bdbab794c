package shared

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const ContentScheme = "twitter"

const (
	ContentTimeline = "timeline"
	ContentImage    = "image"
)

type FeedType string

const (
	FtHome      FeedType = "home"
	FtUser      FeedType = "user"
	FtMentions  FeedType = "mentions"
	FtOtherUser FeedType = "otheruser"
	FtSearch    FeedType = "search"
)

var ErrBadContentUri = errors.New("malformed content uri")

func ParseFeedType(str string) (FeedType, bool) {
	ft := FeedType(strings.ToLower(str))
	switch ft {
	case FtHome, FtUser, FtMentions, FtOtherUser, FtSearch:
		return ft, true
	}
	return "", false
}

// NeedsParam is true for feed types that are keyed by a handle or keyword.
func (ft FeedType) NeedsParam() bool {
	return ft == FtOtherUser || ft == FtSearch
}

// ContentRef is what a content URI points at: a timeline or a single image.
type ContentRef struct {
	Kind  string
	Feed  FeedType
	Param string
}

func TimelineUri(ft FeedType, param string) string {
	res := fmt.Sprintf("%s://%s/%s", ContentScheme, ContentTimeline, ft)
	if param != "" {
		res += "?" + url.QueryEscape(param)
	}
	return res
}

func ImageUri(imgUrl string) string {
	return fmt.Sprintf("%s://%s?%s", ContentScheme, ContentImage, url.QueryEscape(imgUrl))
}

func ParseContentUri(uri string) (*ContentRef, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadContentUri, err)
	}
	if parsed.Scheme != ContentScheme {
		return nil, fmt.Errorf("%w: unexpected scheme '%s'", ErrBadContentUri, parsed.Scheme)
	}
	param, err := url.QueryUnescape(parsed.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadContentUri, err)
	}
	switch parsed.Host {
	case ContentImage:
		if param == "" {
			return nil, fmt.Errorf("%w: image uri without url", ErrBadContentUri)
		}
		return &ContentRef{Kind: ContentImage, Param: param}, nil
	case ContentTimeline:
		ft, ok := ParseFeedType(strings.Trim(parsed.Path, "/"))
		if !ok {
			return nil, fmt.Errorf("%w: unknown feed '%s'", ErrBadContentUri, parsed.Path)
		}
		if ft.NeedsParam() && param == "" {
			return nil, fmt.Errorf("%w: feed '%s' needs a parameter", ErrBadContentUri, ft)
		}
		return &ContentRef{Kind: ContentTimeline, Feed: ft, Param: param}, nil
	}
	return nil, fmt.Errorf("%w: unknown content '%s'", ErrBadContentUri, parsed.Host)
}
