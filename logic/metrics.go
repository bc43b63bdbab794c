package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"time"
	"twitter_webview/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks twitter_webview/logic IMetrics,IRequestObserver

const (
	ResolveHit   = "hit"
	ResolveMiss  = "miss"
	ResolveEvict = "evict"
)

type IMetrics interface {
	StartRemoteRequest(endpoint string) IRequestObserver
	StartCommandIn(label string) IRequestObserver
	FeedResolved(outcome string)
	FetchFailed(feed string)
	CachedTweets(feed string, count int)
	ServiceStarted()
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg            *shared.Config
	remoteRequests *prometheus.HistogramVec
	commandsIn     *prometheus.HistogramVec
	feedsResolved  *prometheus.CounterVec
	fetchesFailed  *prometheus.CounterVec
	cachedTweets   *prometheus.GaugeVec
	serviceStarted prometheus.Counter
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.remoteRequests = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "remote_requests_duration",
		Help: "Duration in seconds of requests made to the remote API.",
	}, []string{"label"})
	prometheus.Register(res.remoteRequests)

	res.commandsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "commands_in_duration",
		Help: "Duration in seconds of local commands served.",
	}, []string{"label"})
	prometheus.Register(res.commandsIn)

	res.feedsResolved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feeds_resolved",
		Help: "Number of feed lookups by outcome",
	}, []string{"outcome"})
	prometheus.Register(res.feedsResolved)

	res.fetchesFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fetches_failed",
		Help: "Number of failed timeline fetches",
	}, []string{"feed"})
	prometheus.Register(res.fetchesFailed)

	res.cachedTweets = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cached_tweets",
		Help: "Tweets held in a timeline's cache",
	}, []string{"feed"})
	prometheus.Register(res.cachedTweets)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartRemoteRequest(endpoint string) IRequestObserver {
	return &requestObserver{endpoint, time.Now(), m.remoteRequests}
}

func (m *metrics) StartCommandIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.commandsIn}
}

func (m *metrics) FeedResolved(outcome string) {
	m.feedsResolved.WithLabelValues(outcome).Add(1)
}

func (m *metrics) FetchFailed(feed string) {
	m.fetchesFailed.WithLabelValues(feed).Add(1)
}

func (m *metrics) CachedTweets(feed string, count int) {
	m.cachedTweets.WithLabelValues(feed).Set(float64(count))
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
