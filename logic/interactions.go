package logic

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"twitter_webview/dto"
	"twitter_webview/shared"
	"twitter_webview/texts"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_interactions.go -package mocks twitter_webview/logic IInteractions

const (
	epFavoritesCreate    = "favorites/create"
	epFavoritesDestroy   = "favorites/destroy"
	epRetweet            = "statuses/retweet/"
	epUpdate             = "statuses/update"
	epFriendshipsCreate  = "friendships/create"
	epFriendshipsDestroy = "friendships/destroy"

	choiceRetweet = "Retweet"
	choiceComment = "Comment"
	postedMaxLen  = 40
)

// IInteractions carries out what the user does on a rendered timeline.
// Like, retweet and follow return a fragment that replaces the clicked link.
// Everything else works through the host: prompts, opened documents, refreshes.
type IInteractions interface {
	Like(ctx context.Context, id string, like bool) (string, error)
	Retweet(ctx context.Context, id string) (string, error)
	// RetweetOrComment asks the user what to do. If they pick comment, wantsComment is true and no fragment is returned.
	RetweetOrComment(ctx context.Context, id string) (fragment string, wantsComment bool, err error)
	Follow(ctx context.Context, handle string, follow bool) (string, error)
	Reply(ctx context.Context, id, handle string) error
	Comment(ctx context.Context, tweetUrl, brief string) error
	PostStatus(ctx context.Context, status, inReplyTo string) (*Tweet, error)
	Refresh(ctx context.Context, ft shared.FeedType, param string, older bool) error
	Navigate(ft shared.FeedType, param string)
	ShowImage(imgUrl string)
}

type interactions struct {
	logger    shared.ILogger
	texts     texts.ITexts
	client    ITwitterClient
	registry  IRegistry
	formatter IFormatter
	host      IHost
}

func NewInteractions(
	logger shared.ILogger,
	texts texts.ITexts,
	client ITwitterClient,
	registry IRegistry,
	formatter IFormatter,
	host IHost,
) IInteractions {
	return &interactions{
		logger:    logger,
		texts:     texts,
		client:    client,
		registry:  registry,
		formatter: formatter,
		host:      host,
	}
}

func tweetParams() url.Values {
	return url.Values{
		"tweet_mode":       {"extended"},
		"include_entities": {"true"},
	}
}

func (in *interactions) Like(ctx context.Context, id string, like bool) (string, error) {
	endpoint := epFavoritesCreate
	if !like {
		endpoint = epFavoritesDestroy
	}
	params := tweetParams()
	params.Set("id", id)
	raw, err := in.client.Post(ctx, endpoint, params)
	if err != nil {
		return "", err
	}
	fresh, err := decodeTweet(raw)
	if err != nil {
		return "", err
	}
	// The response can lag behind the action
	liked := *fresh
	liked.Liked = like
	in.replaceEverywhere(&liked)
	return in.formatter.FormatLike(&liked), nil
}

func (in *interactions) Retweet(ctx context.Context, id string) (string, error) {
	raw, err := in.client.Post(ctx, epRetweet+id, tweetParams())
	if err != nil {
		return "", err
	}
	wrapper, err := decodeTweet(raw)
	if err != nil {
		return "", err
	}
	source := *wrapper.Source()
	source.Retweeted = true
	in.replaceEverywhere(&source)
	return in.formatter.FormatRetweet(&source), nil
}

func (in *interactions) RetweetOrComment(ctx context.Context, id string) (string, bool, error) {
	choice, err := in.host.Choose(ctx, in.texts.Get("retweet_choice.txt"), choiceRetweet, choiceComment)
	if err != nil {
		return "", false, err
	}
	switch choice {
	case choiceRetweet:
		fragment, err := in.Retweet(ctx, id)
		return fragment, false, err
	case choiceComment:
		return "", true, nil
	}
	return "", false, nil
}

func (in *interactions) Follow(ctx context.Context, handle string, follow bool) (string, error) {
	endpoint := epFriendshipsCreate
	if !follow {
		endpoint = epFriendshipsDestroy
	}
	if _, err := in.client.Post(ctx, endpoint, url.Values{"screen_name": {handle}}); err != nil {
		return "", err
	}
	for _, tl := range in.registry.Live() {
		tl.SetFollowing(handle, follow)
	}
	return in.formatter.FormatFollow(follow, handle), nil
}

func (in *interactions) Reply(ctx context.Context, id, handle string) error {
	prompt := in.texts.WithVals("reply_prompt.txt", map[string]string{"handle": handle})
	status, ok, err := in.host.Prompt(ctx, prompt, "", "@"+handle+" ")
	if err != nil {
		return err
	}
	if !ok || strings.TrimSpace(status) == "" {
		return nil
	}
	_, err = in.PostStatus(ctx, status, id)
	return err
}

func (in *interactions) Comment(ctx context.Context, tweetUrl, brief string) error {
	prompt := in.texts.WithVals("comment_prompt.txt", map[string]string{"brief": brief})
	comment, ok, err := in.host.Prompt(ctx, prompt, in.texts.Get("comment_placeholder.txt"), "")
	if err != nil {
		return err
	}
	if !ok || strings.TrimSpace(comment) == "" {
		return nil
	}
	_, err = in.PostStatus(ctx, strings.TrimSpace(comment)+" "+tweetUrl, "")
	return err
}

func (in *interactions) PostStatus(ctx context.Context, status, inReplyTo string) (*Tweet, error) {
	if strings.TrimSpace(status) == "" {
		return nil, errors.New("status is empty")
	}
	params := tweetParams()
	params.Set("status", status)
	if inReplyTo != "" {
		params.Set("in_reply_to_status_id", inReplyTo)
	}
	raw, err := in.client.Post(ctx, epUpdate, params)
	if err != nil {
		return nil, err
	}
	posted, err := decodeTweet(raw)
	if err != nil {
		return nil, err
	}
	in.logger.Infof("Posted tweet %s", posted.Id)
	in.host.ShowInfo(in.texts.WithVals("posted.txt", map[string]string{
		"text": shared.TruncateWithEllipsis(posted.Text, postedMaxLen),
	}))
	return posted, nil
}

// Refresh pages the timeline and asks the host to re-request the document.
// If the timeline is already being fetched, that fetch's refresh will do.
func (in *interactions) Refresh(ctx context.Context, ft shared.FeedType, param string, older bool) error {
	tl := in.registry.Resolve(ft, param)
	if tl == nil {
		return fmt.Errorf("unknown feed '%s'", ft)
	}
	var err error
	if older {
		err = tl.LoadOlder(ctx)
	} else {
		err = tl.LoadNewer(ctx)
	}
	if errors.Is(err, ErrFetchInProgress) {
		in.logger.Debugf("Skipping refresh of %s: fetch in progress", tl.Uri())
		return nil
	}
	if err != nil {
		return err
	}
	in.host.RefreshDocument(tl.Uri())
	return nil
}

func (in *interactions) Navigate(ft shared.FeedType, param string) {
	in.host.OpenDocument(shared.TimelineUri(ft, param))
}

func (in *interactions) ShowImage(imgUrl string) {
	in.host.OpenDocument(shared.ImageUri(imgUrl))
}

func (in *interactions) replaceEverywhere(fresh *Tweet) {
	for _, tl := range in.registry.Live() {
		tl.ReplaceTweet(fresh)
	}
}

func decodeTweet(raw []byte) (*Tweet, error) {
	d, err := decodeInto[dto.Tweet](raw)
	if err != nil {
		return nil, err
	}
	res := TweetFromDto(d)
	if res == nil {
		return nil, errors.New("response contains no tweet")
	}
	return res, nil
}
