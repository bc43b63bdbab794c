package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEllipticalTruncate(t *testing.T) {
	assert.Equal(t, "…", TruncateWithEllipsis("1 2 3", 0))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 1))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 2))
	assert.Equal(t, "1 2…", TruncateWithEllipsis("1 2 3", 3))
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 5))
	assert.Equal(t, "héllo…", TruncateWithEllipsis("héllowörld", 5))
}

func TestLimitRunes(t *testing.T) {
	assert.Equal(t, "", LimitRunes("abc", 0))
	assert.Equal(t, "ab", LimitRunes("abc", 2))
	assert.Equal(t, "abc", LimitRunes("abc", 10))
	assert.Equal(t, "🐦x", LimitRunes("🐦xyz", 2))
}

func TestTweetBrief(t *testing.T) {
	assert.Equal(t, "@bob: 0123456789", TweetBrief("bob", "0123456789abc"))
	assert.Equal(t, "@bob: hi", TweetBrief("bob", "hi"))
}
