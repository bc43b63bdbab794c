package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLinksBeforeAndAfterBase(t *testing.T) {
	lb := NewLinkBuilder()
	assert.Equal(t, "/like/42", lb.Like("42", false))

	lb.SetBase("http://127.0.0.1:51234/")
	assert.Equal(t, "http://127.0.0.1:51234/like/42", lb.Like("42", false))
	assert.Equal(t, "http://127.0.0.1:51234/unlike/42", lb.Like("42", true))
	assert.Equal(t, "http://127.0.0.1:51234/follow/bob", lb.Follow("bob", false))
	assert.Equal(t, "http://127.0.0.1:51234/unfollow/bob", lb.Follow("bob", true))
	assert.Equal(t, "http://127.0.0.1:51234/css", lb.Css())
}

func TestLinkParamsAreEscaped(t *testing.T) {
	lb := NewLinkBuilder()
	assert.Equal(t, "/search/%23golang", lb.Hashtag("golang"))
	assert.Equal(t, "/search/cats%20&%20dogs", lb.Search("cats & dogs"))
	assert.Equal(t, "/refresh/home", lb.Refresh(FtHome, ""))
	assert.Equal(t, "/older/search/a%2Fb", lb.Older(FtSearch, "a/b"))
	assert.Equal(t,
		"/retweet/7/https:%2F%2Ftwitter.com%2Fbob%2Fstatus%2F7/@bob:%20hi",
		lb.Retweet("7", TweetPermalink("bob", "7"), "@bob: hi"))
	assert.Equal(t, "/document?uri=twitter%3A%2F%2Ftimeline%2Fhome", lb.Document(TimelineUri(FtHome, "")))
}
