package logic

import (
	"context"
	"errors"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
	"time"
	"twitter_webview/shared"
)

// IAutoRefresher periodically pulls newer tweets into the singleton feeds the user has opened.
type IAutoRefresher interface {
	RefreshNow(ctx context.Context)
}

type autoRefresher struct {
	cfg       *shared.Config
	logger    shared.ILogger
	registry  IRegistry
	host      IHost
	scheduler gocron.Scheduler
}

func NewAutoRefresher(
	lc fx.Lifecycle,
	cfg *shared.Config,
	logger shared.ILogger,
	registry IRegistry,
	host IHost,
) (IAutoRefresher, error) {
	res := &autoRefresher{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		host:     host,
	}
	if cfg.AutoRefreshMinutes <= 0 {
		logger.Info("Auto refresh is disabled")
		return res, nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	res.scheduler = scheduler
	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Duration(cfg.AutoRefreshMinutes)*time.Minute),
		gocron.NewTask(func() { res.RefreshNow(context.Background()) }),
		gocron.WithName("Refresh loaded timelines"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Infof("Auto refresh every %d minutes", cfg.AutoRefreshMinutes)
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Shutdown()
		},
	})
	return res, nil
}

// RefreshNow only touches timelines that have been bootstrapped, so nothing is fetched for feeds never shown.
func (ar *autoRefresher) RefreshNow(ctx context.Context) {
	for _, tl := range ar.registry.Singletons() {
		if !tl.Loaded() {
			continue
		}
		err := tl.LoadNewer(ctx)
		if errors.Is(err, ErrFetchInProgress) {
			continue
		}
		if err != nil {
			ar.logger.Warnf("Auto refresh of %s failed: %v", tl.Uri(), err)
			continue
		}
		ar.host.RefreshDocument(tl.Uri())
	}
}
