package logic

import (
	"context"
	"errors"
	"github.com/patrickmn/go-cache"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
	"twitter_webview/dto"
	"twitter_webview/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_trends.go -package mocks twitter_webview/logic ITrends

const (
	epTrendsPlace  = "trends/place"
	trendsCacheKey = "trends"
	volumeStar     = "★"
	volumeNew      = "new"
)

type Trend struct {
	Label  string
	Volume string
	Query  string
}

// ITrends lists what is trending at the configured place. Results are cached for a few minutes.
type ITrends interface {
	Get(ctx context.Context) ([]Trend, error)
}

type trends struct {
	cfg    *shared.Config
	logger shared.ILogger
	client ITwitterClient
	cache  *cache.Cache
}

func NewTrends(cfg *shared.Config, logger shared.ILogger, client ITwitterClient) ITrends {
	ttl := time.Duration(cfg.TrendsCacheMinutes) * time.Minute
	return &trends{
		cfg:    cfg,
		logger: logger,
		client: client,
		cache:  cache.New(ttl, 2*ttl),
	}
}

func (t *trends) Get(ctx context.Context) ([]Trend, error) {
	if cached, found := t.cache.Get(trendsCacheKey); found {
		return cached.([]Trend), nil
	}
	raw, err := t.client.Get(ctx, epTrendsPlace, url.Values{"id": {strconv.Itoa(t.cfg.TrendsPlaceId)}})
	if err != nil {
		return nil, err
	}
	places, err := decodeInto[[]dto.TrendsPlace](raw)
	if err != nil {
		return nil, err
	}
	if len(*places) == 0 {
		return nil, errors.New("no trends returned for place")
	}
	var res []Trend
	for _, tr := range (*places)[0].Trends {
		query := tr.Query
		if unescaped, err := url.QueryUnescape(query); err == nil {
			query = unescaped
		}
		res = append(res, Trend{
			Label:  tr.Name,
			Volume: volumeLabel(tr.TweetVolume),
			Query:  query,
		})
	}
	t.logger.Debugf("Fetched %d trends", len(res))
	t.cache.SetDefault(trendsCacheKey, res)
	return res, nil
}

// volumeLabel shows one star per order of magnitude (natural log) of the tweet volume.
func volumeLabel(volume int64) string {
	if volume <= 0 {
		return volumeNew
	}
	return strings.Repeat(volumeStar, int(math.Log(float64(volume))))
}
