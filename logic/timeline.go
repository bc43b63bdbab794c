package logic

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"twitter_webview/dto"
	"twitter_webview/shared"
)

const MaxCachedTweets = 1000

type FetchState int32

const (
	StateIdle FetchState = iota
	StateFetchingNewer
	StateFetchingOlder
)

var ErrFetchInProgress = errors.New("timeline is already being fetched")

// Timeline is one feed instance: a newest-first cache of tweets plus the watermarks used to page it.
// At most one fetch runs at a time; a second caller gets ErrFetchInProgress.
type Timeline struct {
	fc       *feedConfig
	param    string
	client   ITwitterClient
	logger   shared.ILogger
	metrics  IMetrics
	pageSize int
	state    atomic.Int32

	// idle is closed when the running fetch finishes; nil while idle
	fetchMu sync.Mutex
	idle    chan struct{}

	mu      sync.RWMutex
	tweets  []*Tweet
	sinceId string
	maxId   string
	profile *User
	loaded  bool
}

// NewTimeline returns nil for an unknown feed type, or for a keyed feed type without a parameter.
func NewTimeline(
	ft shared.FeedType,
	param string,
	cfg *shared.Config,
	logger shared.ILogger,
	metrics IMetrics,
	client ITwitterClient,
) *Timeline {
	fc, ok := feedConfigs[ft]
	if !ok {
		return nil
	}
	if fc.pooled && param == "" {
		return nil
	}
	if !fc.pooled {
		param = ""
	}
	return &Timeline{
		fc:       fc,
		param:    param,
		client:   client,
		logger:   logger,
		metrics:  metrics,
		pageSize: cfg.PageSize,
	}
}

func (tl *Timeline) Type() shared.FeedType {
	return tl.fc.feedType
}

func (tl *Timeline) Param() string {
	return tl.param
}

func (tl *Timeline) Title() string {
	return tl.fc.title(tl.param)
}

func (tl *Timeline) Uri() string {
	return shared.TimelineUri(tl.fc.feedType, tl.param)
}

func (tl *Timeline) State() FetchState {
	return FetchState(tl.state.Load())
}

func (tl *Timeline) Tweets() []*Tweet {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	res := make([]*Tweet, len(tl.tweets))
	copy(res, tl.tweets)
	return res
}

func (tl *Timeline) Len() int {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	return len(tl.tweets)
}

func (tl *Timeline) SinceId() string {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	return tl.sinceId
}

func (tl *Timeline) MaxId() string {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	return tl.maxId
}

func (tl *Timeline) Profile() *User {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	return tl.profile
}

// Loaded is true once the first fetch has succeeded.
func (tl *Timeline) Loaded() bool {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	return tl.loaded
}

// EnsureLoaded performs the initial fetch if no fetch has succeeded yet.
// If another fetch is already running it waits for that one, and fetches itself if it did not load anything.
func (tl *Timeline) EnsureLoaded(ctx context.Context) error {
	for !tl.Loaded() {
		err := tl.LoadNewer(ctx)
		if !errors.Is(err, ErrFetchInProgress) {
			return err
		}
		if err = tl.waitIdle(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (tl *Timeline) beginFetch(st FetchState) bool {
	tl.fetchMu.Lock()
	defer tl.fetchMu.Unlock()
	if FetchState(tl.state.Load()) != StateIdle {
		return false
	}
	tl.state.Store(int32(st))
	tl.idle = make(chan struct{})
	return true
}

func (tl *Timeline) endFetch() {
	tl.fetchMu.Lock()
	defer tl.fetchMu.Unlock()
	tl.state.Store(int32(StateIdle))
	close(tl.idle)
	tl.idle = nil
}

func (tl *Timeline) waitIdle(ctx context.Context) error {
	tl.fetchMu.Lock()
	idle := tl.idle
	tl.fetchMu.Unlock()
	if idle == nil {
		return nil
	}
	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LoadNewer fetches tweets newer than the cache head and puts them in front.
func (tl *Timeline) LoadNewer(ctx context.Context) error {
	if !tl.beginFetch(StateFetchingNewer) {
		return ErrFetchInProgress
	}
	defer tl.endFetch()

	params := tl.baseParams()
	if sinceId := tl.SinceId(); sinceId != "" {
		params.Set("since_id", sinceId)
	}
	batch, profile, err := tl.fetch(ctx, params, true)
	if err != nil {
		return err
	}

	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.mergeNewer(batch)
	if profile != nil {
		tl.profile = profile
	}
	tl.loaded = true
	tl.metrics.CachedTweets(string(tl.fc.feedType), len(tl.tweets))
	tl.logger.Debugf("%s: %d new tweets, %d cached", tl.Uri(), len(batch), len(tl.tweets))
	return nil
}

// LoadOlder fetches tweets up to and including the cache tail and appends them.
// On an empty cache there is nothing to page back from, so it loads newer tweets instead.
func (tl *Timeline) LoadOlder(ctx context.Context) error {
	if tl.Len() == 0 {
		return tl.LoadNewer(ctx)
	}
	if !tl.beginFetch(StateFetchingOlder) {
		return ErrFetchInProgress
	}
	defer tl.endFetch()

	params := tl.baseParams()
	params.Set("max_id", tl.MaxId())
	batch, _, err := tl.fetch(ctx, params, false)
	if err != nil {
		return err
	}

	tl.mu.Lock()
	defer tl.mu.Unlock()
	added := tl.mergeOlder(batch)
	tl.loaded = true
	tl.metrics.CachedTweets(string(tl.fc.feedType), len(tl.tweets))
	tl.logger.Debugf("%s: %d older tweets, %d cached", tl.Uri(), added, len(tl.tweets))
	return nil
}

func (tl *Timeline) baseParams() url.Values {
	params := url.Values{}
	if tl.fc.params != nil {
		for k, v := range tl.fc.params(tl.param) {
			params[k] = v
		}
	}
	params.Set("count", strconv.Itoa(tl.pageSize))
	params.Set("tweet_mode", "extended")
	return params
}

// fetch runs all remote calls before anything is merged, so a failure leaves the timeline untouched.
func (tl *Timeline) fetch(ctx context.Context, params url.Values, withProfile bool) ([]*Tweet, *User, error) {
	var profile *User
	if withProfile && tl.fc.profile != nil {
		userDto, err := tl.fc.profile(ctx, tl.client, tl.param)
		if err != nil {
			tl.fetchFailed(err)
			return nil, nil, err
		}
		profile = UserFromDto(userDto)
	}
	var items []*dto.Tweet
	var err error
	if items, err = tl.fc.fetch(ctx, tl.client, tl.fc, tl.param, params); err != nil {
		tl.fetchFailed(err)
		return nil, nil, err
	}
	return TweetsFromDto(items), profile, nil
}

func (tl *Timeline) fetchFailed(err error) {
	tl.logger.Warnf("Failed to fetch %s: %v", tl.Uri(), err)
	tl.metrics.FetchFailed(string(tl.fc.feedType))
}

// mergeNewer puts the batch, newest first, ahead of the cache. A fresh copy of a tweet replaces the cached one.
func (tl *Timeline) mergeNewer(batch []*Tweet) {
	seen := make(map[string]bool, len(batch))
	merged := make([]*Tweet, 0, len(batch)+len(tl.tweets))
	for _, t := range batch {
		if seen[t.Id] {
			continue
		}
		seen[t.Id] = true
		merged = append(merged, t)
	}
	for _, t := range tl.tweets {
		if !seen[t.Id] {
			merged = append(merged, t)
		}
	}
	if len(merged) > MaxCachedTweets {
		merged = merged[:MaxCachedTweets]
	}
	tl.tweets = merged
	tl.updateWatermarks()
}

// mergeOlder drops the first item, which repeats the max_id boundary, and appends the rest.
// The cache is not trimmed in this direction.
func (tl *Timeline) mergeOlder(batch []*Tweet) int {
	if len(batch) > 0 {
		batch = batch[1:]
	}
	known := make(map[string]bool, len(tl.tweets))
	for _, t := range tl.tweets {
		known[t.Id] = true
	}
	added := 0
	for _, t := range batch {
		if known[t.Id] {
			continue
		}
		known[t.Id] = true
		tl.tweets = append(tl.tweets, t)
		added++
	}
	tl.updateWatermarks()
	return added
}

func (tl *Timeline) updateWatermarks() {
	if len(tl.tweets) == 0 {
		tl.sinceId, tl.maxId = "", ""
		return
	}
	tl.sinceId = tl.tweets[0].Id
	tl.maxId = tl.tweets[len(tl.tweets)-1].Id
}

// ReplaceTweet swaps in a fresher copy of a cached tweet, including one shown as the source of a retweet.
func (tl *Timeline) ReplaceTweet(fresh *Tweet) bool {
	if fresh == nil {
		return false
	}
	tl.mu.Lock()
	defer tl.mu.Unlock()
	found := false
	for i, t := range tl.tweets {
		if t.Id == fresh.Id {
			tl.tweets[i] = fresh
			found = true
		} else if t.RetweetedStatus != nil && t.RetweetedStatus.Id == fresh.Id {
			wrapper := *t
			wrapper.RetweetedStatus = fresh
			tl.tweets[i] = &wrapper
			found = true
		}
	}
	return found
}

// SetFollowing updates the follow state of the cached profile if it belongs to handle.
func (tl *Timeline) SetFollowing(handle string, following bool) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	if tl.profile == nil || !sameHandle(tl.profile.Handle, handle) {
		return
	}
	updated := *tl.profile
	updated.Following = following
	tl.profile = &updated
}
