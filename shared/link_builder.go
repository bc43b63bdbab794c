package shared

import (
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
)

// Path segments of the local command endpoints
const (
	CmdSearch   = "search"
	CmdUser     = "user"
	CmdImage    = "image"
	CmdRefresh  = "refresh"
	CmdOlder    = "older"
	CmdReply    = "reply"
	CmdRetweet  = "retweet"
	CmdLike     = "like"
	CmdUnlike   = "unlike"
	CmdFollow   = "follow"
	CmdUnfollow = "unfollow"
	CmdCss      = "css"
	CmdDocument = "document"
)

const remoteSiteUrl = "https://twitter.com"

// LinkBuilder produces callback URLs that point back at the local service.
// The base is only known once the listener has bound its port; until then links are root-relative.
type LinkBuilder struct {
	base atomic.Value
}

func NewLinkBuilder() *LinkBuilder {
	res := LinkBuilder{}
	res.base.Store("")
	return &res
}

func (lb *LinkBuilder) SetBase(base string) {
	lb.base.Store(strings.TrimRight(base, "/"))
}

func (lb *LinkBuilder) Base() string {
	return lb.base.Load().(string)
}

func (lb *LinkBuilder) cmd(segments ...string) string {
	var sb strings.Builder
	sb.WriteString(lb.Base())
	for _, seg := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(seg))
	}
	return sb.String()
}

func (lb *LinkBuilder) Search(query string) string {
	return lb.cmd(CmdSearch, query)
}

func (lb *LinkBuilder) Hashtag(tag string) string {
	return lb.cmd(CmdSearch, "#"+tag)
}

func (lb *LinkBuilder) User(handle string) string {
	return lb.cmd(CmdUser, handle)
}

func (lb *LinkBuilder) Image(imgUrl string) string {
	return lb.cmd(CmdImage, imgUrl)
}

func (lb *LinkBuilder) Refresh(ft FeedType, query string) string {
	if query == "" {
		return lb.cmd(CmdRefresh, string(ft))
	}
	return lb.cmd(CmdRefresh, string(ft), query)
}

func (lb *LinkBuilder) Older(ft FeedType, query string) string {
	if query == "" {
		return lb.cmd(CmdOlder, string(ft))
	}
	return lb.cmd(CmdOlder, string(ft), query)
}

func (lb *LinkBuilder) Reply(id, handle string) string {
	return lb.cmd(CmdReply, id, handle)
}

func (lb *LinkBuilder) Retweet(id, tweetUrl, brief string) string {
	return lb.cmd(CmdRetweet, id, tweetUrl, brief)
}

// Like returns the toggle link: unlike for a liked tweet, like otherwise.
func (lb *LinkBuilder) Like(id string, liked bool) string {
	if liked {
		return lb.cmd(CmdUnlike, id)
	}
	return lb.cmd(CmdLike, id)
}

func (lb *LinkBuilder) Follow(handle string, following bool) string {
	if following {
		return lb.cmd(CmdUnfollow, handle)
	}
	return lb.cmd(CmdFollow, handle)
}

func (lb *LinkBuilder) Css() string {
	return lb.cmd(CmdCss)
}

func (lb *LinkBuilder) Document(uri string) string {
	return fmt.Sprintf("%s/%s?uri=%s", lb.Base(), CmdDocument, url.QueryEscape(uri))
}

func TweetPermalink(handle, id string) string {
	return fmt.Sprintf("%s/%s/status/%s", remoteSiteUrl, handle, id)
}

func UserPermalink(handle string) string {
	return fmt.Sprintf("%s/%s", remoteSiteUrl, handle)
}
