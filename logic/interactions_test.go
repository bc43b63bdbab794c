package logic_test

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"net/url"
	"testing"
	"twitter_webview/dto"
	"twitter_webview/logic"
	"twitter_webview/shared"
	"twitter_webview/test/mocks"
)

type interactionsScaffold struct {
	*scaffold
	texts     *mocks.MockITexts
	registry  *mocks.MockIRegistry
	formatter *mocks.MockIFormatter
	host      *mocks.MockIHost
	sut       logic.IInteractions
}

func newInteractionsScaffold(ctrl *gomock.Controller) *interactionsScaffold {
	res := interactionsScaffold{
		scaffold:  newScaffold(ctrl),
		texts:     mocks.NewMockITexts(ctrl),
		registry:  mocks.NewMockIRegistry(ctrl),
		formatter: mocks.NewMockIFormatter(ctrl),
		host:      mocks.NewMockIHost(ctrl),
	}
	stubTexts(res.texts)
	res.sut = logic.NewInteractions(res.logger, res.texts, res.client, res.registry, res.formatter, res.host)
	return &res
}

// loadedTimeline returns a home timeline that already holds the given tweets.
func (sc *interactionsScaffold) loadedTimeline(t *testing.T, tweets ...*dto.Tweet) *logic.Timeline {
	tl := logic.NewTimeline(shared.FtHome, "", sc.cfg, sc.logger, sc.metrics, sc.client)
	sc.client.EXPECT().Get(gomock.Any(), "statuses/home_timeline", gomock.Any()).Return(mustJson(tweets), nil)
	assert.Nil(t, tl.LoadNewer(context.Background()))
	return tl
}

func TestLikeUpdatesCachesAndReturnsFragment(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newInteractionsScaffold(ctrl)
	tl := sc.loadedTimeline(t, mkTweet("5", "hello"))

	fresh := mkTweet("5", "hello")
	fresh.FavoriteCount = 1
	sc.client.EXPECT().Post(gomock.Any(), "favorites/create", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) (json.RawMessage, error) {
			assert.Equal(t, "5", params.Get("id"))
			assert.Equal(t, "true", params.Get("include_entities"))
			return mustJson(fresh), nil
		})
	sc.registry.EXPECT().Live().Return([]*logic.Timeline{tl})
	sc.formatter.EXPECT().FormatLike(gomock.Any()).DoAndReturn(func(tw *logic.Tweet) string {
		assert.True(t, tw.Liked)
		return "<like fragment>"
	})

	fragment, err := sc.sut.Like(context.Background(), "5", true)
	assert.Nil(t, err)
	assert.Equal(t, "<like fragment>", fragment)
	cached := tl.Tweets()[0]
	assert.True(t, cached.Liked)
	assert.Equal(t, 1, cached.LikeCount)
}

func TestUnlikeFailureLeavesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newInteractionsScaffold(ctrl)

	sc.client.EXPECT().Post(gomock.Any(), "favorites/destroy", gomock.Any()).
		Return(nil, &logic.RemoteError{Messages: []string{"No status found with that ID."}})

	fragment, err := sc.sut.Like(context.Background(), "5", false)
	assert.EqualError(t, err, "No status found with that ID.")
	assert.Equal(t, "", fragment)
}

func TestRetweetCachesSourceAsRetweeted(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newInteractionsScaffold(ctrl)
	tl := sc.loadedTimeline(t, mkTweet("5", "hello"))

	wrapper := mkTweet("900", "RT @bob: hello")
	wrapper.RetweetedStatus = mkTweet("5", "hello")
	wrapper.RetweetedStatus.RetweetCount = 1
	sc.client.EXPECT().Post(gomock.Any(), "statuses/retweet/5", gomock.Any()).Return(mustJson(wrapper), nil)
	sc.registry.EXPECT().Live().Return([]*logic.Timeline{tl})
	sc.formatter.EXPECT().FormatRetweet(gomock.Any()).DoAndReturn(func(tw *logic.Tweet) string {
		assert.Equal(t, "5", tw.Id)
		assert.True(t, tw.Retweeted)
		return "<rt fragment>"
	})

	fragment, err := sc.sut.Retweet(context.Background(), "5")
	assert.Nil(t, err)
	assert.Equal(t, "<rt fragment>", fragment)
	assert.True(t, tl.Tweets()[0].Retweeted)
	assert.Equal(t, 1, tl.Tweets()[0].RetweetCount)
}

func TestRetweetOrCommentChoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newInteractionsScaffold(ctrl)

	gomock.InOrder(
		sc.host.EXPECT().Choose(gomock.Any(), "retweet_choice.txt", "Retweet", "Comment").Return("Comment", nil),
		sc.host.EXPECT().Choose(gomock.Any(), "retweet_choice.txt", "Retweet", "Comment").Return("", nil),
		sc.host.EXPECT().Choose(gomock.Any(), "retweet_choice.txt", "Retweet", "Comment").Return("", context.Canceled),
	)

	fragment, comment, err := sc.sut.RetweetOrComment(context.Background(), "5")
	assert.Nil(t, err)
	assert.True(t, comment)
	assert.Equal(t, "", fragment)

	fragment, comment, err = sc.sut.RetweetOrComment(context.Background(), "5")
	assert.Nil(t, err)
	assert.False(t, comment)
	assert.Equal(t, "", fragment)

	_, _, err = sc.sut.RetweetOrComment(context.Background(), "5")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFollowUpdatesProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newInteractionsScaffold(ctrl)
	tl := logic.NewTimeline(shared.FtOtherUser, "alice", sc.cfg, sc.logger, sc.metrics, sc.client)
	gomock.InOrder(
		sc.client.EXPECT().Get(gomock.Any(), "users/show", gomock.Any()).
			Return(mustJson(dto.User{Name: "Alice", ScreenName: "alice"}), nil),
		sc.client.EXPECT().Get(gomock.Any(), "statuses/user_timeline", gomock.Any()).
			Return(mustJson(tweetIds("1")), nil),
	)
	assert.Nil(t, tl.LoadNewer(context.Background()))

	sc.client.EXPECT().Post(gomock.Any(), "friendships/create", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) (json.RawMessage, error) {
			assert.Equal(t, "alice", params.Get("screen_name"))
			return json.RawMessage(`{"screen_name":"alice"}`), nil
		})
	sc.registry.EXPECT().Live().Return([]*logic.Timeline{tl})
	sc.formatter.EXPECT().FormatFollow(true, "alice").Return("<follow fragment>")

	fragment, err := sc.sut.Follow(context.Background(), "alice", true)
	assert.Nil(t, err)
	assert.Equal(t, "<follow fragment>", fragment)
	assert.True(t, tl.Profile().Following)
}

func TestReplyPostsWithReplyId(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newInteractionsScaffold(ctrl)

	sc.host.EXPECT().Prompt(gomock.Any(), "reply_prompt.txt\nhandle\tbob", "", "@bob ").Return("@bob agreed", true, nil)
	sc.client.EXPECT().Post(gomock.Any(), "statuses/update", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) (json.RawMessage, error) {
			assert.Equal(t, "@bob agreed", params.Get("status"))
			assert.Equal(t, "42", params.Get("in_reply_to_status_id"))
			return mustJson(mkTweet("43", "@bob agreed")), nil
		})
	sc.host.EXPECT().ShowInfo("posted.txt\ntext\t@bob agreed")

	assert.Nil(t, sc.sut.Reply(context.Background(), "42", "bob"))
}

func TestReplyCancelledPostsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newInteractionsScaffold(ctrl)

	gomock.InOrder(
		sc.host.EXPECT().Prompt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", false, nil),
		sc.host.EXPECT().Prompt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("   ", true, nil),
	)
	assert.Nil(t, sc.sut.Reply(context.Background(), "42", "bob"))
	assert.Nil(t, sc.sut.Reply(context.Background(), "42", "bob"))
}

func TestCommentAppendsTweetUrl(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newInteractionsScaffold(ctrl)

	tweetUrl := shared.TweetPermalink("bob", "42")
	sc.host.EXPECT().Prompt(gomock.Any(), "comment_prompt.txt\nbrief\t@bob: hello", "comment_placeholder.txt", "").
		Return(" so true ", true, nil)
	sc.client.EXPECT().Post(gomock.Any(), "statuses/update", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params url.Values) (json.RawMessage, error) {
			assert.Equal(t, "so true "+tweetUrl, params.Get("status"))
			assert.False(t, params.Has("in_reply_to_status_id"))
			return mustJson(mkTweet("43", "so true https://t.co/abc")), nil
		})
	sc.host.EXPECT().ShowInfo(gomock.Any())

	assert.Nil(t, sc.sut.Comment(context.Background(), tweetUrl, "@bob: hello"))
}

func TestPostStatusRejectsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newInteractionsScaffold(ctrl)

	_, err := sc.sut.PostStatus(context.Background(), " ", "")
	assert.NotNil(t, err)
}

func TestRefreshLoadsAndAsksHostToRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newInteractionsScaffold(ctrl)
	tl := logic.NewTimeline(shared.FtSearch, "go lang", sc.cfg, sc.logger, sc.metrics, sc.client)

	sc.registry.EXPECT().Resolve(shared.FtSearch, "go lang").Return(tl)
	sc.client.EXPECT().Get(gomock.Any(), "search/tweets", gomock.Any()).Return(json.RawMessage(`{"statuses":[]}`), nil)
	sc.host.EXPECT().RefreshDocument("twitter://timeline/search?go+lang")

	assert.Nil(t, sc.sut.Refresh(context.Background(), shared.FtSearch, "go lang", false))
}

func TestRefreshFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newInteractionsScaffold(ctrl)
	tl := logic.NewTimeline(shared.FtHome, "", sc.cfg, sc.logger, sc.metrics, sc.client)

	gomock.InOrder(
		sc.registry.EXPECT().Resolve(shared.FeedType("nope"), "").Return(nil),
		sc.registry.EXPECT().Resolve(shared.FtHome, "").Return(tl),
	)
	sc.client.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("offline"))

	assert.NotNil(t, sc.sut.Refresh(context.Background(), "nope", "", false))
	assert.EqualError(t, sc.sut.Refresh(context.Background(), shared.FtHome, "", true), "offline")
}

func TestNavigationOpensDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newInteractionsScaffold(ctrl)

	sc.host.EXPECT().OpenDocument("twitter://timeline/otheruser?alice")
	sc.host.EXPECT().OpenDocument(shared.ImageUri("https://pbs.example/a.jpg:large"))

	sc.sut.Navigate(shared.FtOtherUser, "alice")
	sc.sut.ShowImage("https://pbs.example/a.jpg:large")
}
