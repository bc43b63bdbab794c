package logic

import (
	"context"
	"net/url"
	"strings"
	"twitter_webview/dto"
	"twitter_webview/shared"
)

const (
	epHomeTimeline     = "statuses/home_timeline"
	epMentionsTimeline = "statuses/mentions_timeline"
	epUserTimeline     = "statuses/user_timeline"
	epSearch           = "search/tweets"
	epLookup           = "statuses/lookup"
	epVerifyCreds      = "account/verify_credentials"
	epUsersShow        = "users/show"
)

type fetchFunc func(ctx context.Context, client ITwitterClient, fc *feedConfig, param string, params url.Values) ([]*dto.Tweet, error)
type profileFunc func(ctx context.Context, client ITwitterClient, param string) (*dto.User, error)

// feedConfig is everything that differs between feed types.
type feedConfig struct {
	feedType shared.FeedType
	endpoint string
	pooled   bool
	title    func(param string) string
	params   func(param string) url.Values
	profile  profileFunc
	fetch    fetchFunc
}

var feedConfigs = map[shared.FeedType]*feedConfig{
	shared.FtHome: {
		feedType: shared.FtHome,
		endpoint: epHomeTimeline,
		title:    func(string) string { return "Home Timeline" },
		fetch:    fetchTimeline,
	},
	shared.FtMentions: {
		feedType: shared.FtMentions,
		endpoint: epMentionsTimeline,
		title:    func(string) string { return "Mentions Timeline" },
		fetch:    fetchTimeline,
	},
	shared.FtUser: {
		feedType: shared.FtUser,
		endpoint: epUserTimeline,
		title:    func(string) string { return "User Timeline" },
		profile:  fetchOwnProfile,
		fetch:    fetchTimeline,
	},
	shared.FtOtherUser: {
		feedType: shared.FtOtherUser,
		endpoint: epUserTimeline,
		pooled:   true,
		title:    func(param string) string { return "User: @" + param },
		params:   func(param string) url.Values { return url.Values{"screen_name": {param}} },
		profile:  fetchUserProfile,
		fetch:    fetchTimeline,
	},
	shared.FtSearch: {
		feedType: shared.FtSearch,
		endpoint: epSearch,
		pooled:   true,
		title:    func(param string) string { return "Search results: " + param },
		params:   func(param string) url.Values { return url.Values{"q": {param}} },
		fetch:    fetchSearch,
	},
}

func fetchTimeline(ctx context.Context, client ITwitterClient, fc *feedConfig, param string, params url.Values) ([]*dto.Tweet, error) {
	raw, err := client.Get(ctx, fc.endpoint, params)
	if err != nil {
		return nil, err
	}
	return decodeTweetList(raw)
}

// fetchSearch gets candidate IDs from the entity-light search endpoint, then looks them up in full.
// Results keep the order the search returned.
func fetchSearch(ctx context.Context, client ITwitterClient, fc *feedConfig, param string, params url.Values) ([]*dto.Tweet, error) {
	params.Set("include_entities", "false")
	raw, err := client.Get(ctx, fc.endpoint, params)
	if err != nil {
		return nil, err
	}
	candidates, err := decodeTweetList(raw)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, c := range candidates {
		if c != nil && c.IdStr != "" {
			ids = append(ids, c.IdStr)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	lookupParams := url.Values{}
	lookupParams.Set("id", strings.Join(ids, ","))
	lookupParams.Set("include_entities", "true")
	lookupParams.Set("tweet_mode", "extended")
	if raw, err = client.Get(ctx, epLookup, lookupParams); err != nil {
		return nil, err
	}
	full, err := decodeTweetList(raw)
	if err != nil {
		return nil, err
	}
	byId := make(map[string]*dto.Tweet, len(full))
	for _, t := range full {
		if t != nil {
			byId[t.IdStr] = t
		}
	}
	res := make([]*dto.Tweet, 0, len(ids))
	for _, id := range ids {
		if t, ok := byId[id]; ok {
			res = append(res, t)
		}
	}
	return res, nil
}

func fetchOwnProfile(ctx context.Context, client ITwitterClient, _ string) (*dto.User, error) {
	raw, err := client.Get(ctx, epVerifyCreds, url.Values{"include_entities": {"true"}})
	if err != nil {
		return nil, err
	}
	return decodeInto[dto.User](raw)
}

func fetchUserProfile(ctx context.Context, client ITwitterClient, param string) (*dto.User, error) {
	raw, err := client.Get(ctx, epUsersShow, url.Values{"screen_name": {param}, "include_entities": {"true"}})
	if err != nil {
		return nil, err
	}
	return decodeInto[dto.User](raw)
}
