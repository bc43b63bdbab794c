package logic

import (
	"strings"
	"sync"
	"twitter_webview/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_registry.go -package mocks twitter_webview/logic IRegistry

const MaxPooledTimelines = 20

// IRegistry owns every live timeline.
// Home, mentions and own-user timelines are singletons for the life of the process;
// other-user and search timelines live in per-type pools with first-in-first-out eviction.
type IRegistry interface {
	// Resolve returns the timeline for a feed type and parameter, creating it on first use.
	// It returns nil for an unknown type or a missing parameter.
	Resolve(ft shared.FeedType, param string) *Timeline
	// Live returns all timelines currently held.
	Live() []*Timeline
	// Singletons returns the singleton timelines created so far.
	Singletons() []*Timeline
	// Reset forgets every timeline.
	Reset()
}

type registry struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    IMetrics
	client     ITwitterClient
	mu         sync.Mutex
	singletons map[shared.FeedType]*Timeline
	pools      map[shared.FeedType][]*Timeline
}

func NewRegistry(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics IMetrics,
	client ITwitterClient,
) IRegistry {
	res := registry{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		client:  client,
	}
	res.Reset()
	return &res
}

func (reg *registry) Reset() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.singletons = make(map[shared.FeedType]*Timeline)
	reg.pools = make(map[shared.FeedType][]*Timeline)
}

func (reg *registry) Resolve(ft shared.FeedType, param string) *Timeline {
	fc, ok := feedConfigs[ft]
	if !ok {
		reg.logger.Warnf("Cannot resolve unknown feed type '%s'", ft)
		return nil
	}
	if fc.pooled && param == "" {
		reg.logger.Warnf("Cannot resolve feed '%s' without a parameter", ft)
		return nil
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if !fc.pooled {
		if tl, found := reg.singletons[ft]; found {
			reg.metrics.FeedResolved(ResolveHit)
			return tl
		}
		tl := NewTimeline(ft, "", reg.cfg, reg.logger, reg.metrics, reg.client)
		reg.singletons[ft] = tl
		reg.metrics.FeedResolved(ResolveMiss)
		return tl
	}

	pool := reg.pools[ft]
	for _, tl := range pool {
		if tl.Param() == param {
			reg.metrics.FeedResolved(ResolveHit)
			return tl
		}
	}
	if len(pool) >= MaxPooledTimelines {
		reg.logger.Debugf("Evicting %s", pool[0].Uri())
		reg.metrics.FeedResolved(ResolveEvict)
		pool = pool[1:]
	}
	tl := NewTimeline(ft, param, reg.cfg, reg.logger, reg.metrics, reg.client)
	reg.pools[ft] = append(pool, tl)
	reg.metrics.FeedResolved(ResolveMiss)
	return tl
}

func (reg *registry) Live() []*Timeline {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	res := reg.singletonsLocked()
	for _, ft := range []shared.FeedType{shared.FtOtherUser, shared.FtSearch} {
		res = append(res, reg.pools[ft]...)
	}
	return res
}

func (reg *registry) Singletons() []*Timeline {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.singletonsLocked()
}

func (reg *registry) singletonsLocked() []*Timeline {
	var res []*Timeline
	for _, ft := range []shared.FeedType{shared.FtHome, shared.FtMentions, shared.FtUser} {
		if tl, ok := reg.singletons[ft]; ok {
			res = append(res, tl)
		}
	}
	return res
}

func sameHandle(a, b string) bool {
	return strings.EqualFold(strings.TrimPrefix(a, "@"), strings.TrimPrefix(b, "@"))
}
