package logic

import (
	"context"
	"fmt"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"
	"twitter_webview/shared"
)

const profilerStartDelay = 10 * time.Second
const profilerInterval = 60 * time.Second

// IProfiler dumps goroutine stacks into ProfileDir so that stuck fetches or host prompts can be diagnosed
// in a session that has been running for days.
type IProfiler interface {
	SaveNow() (string, error)
}

type profiler struct {
	logger          shared.ILogger
	profileDir      string
	profileKeepDays int
}

func NewProfiler(lc fx.Lifecycle, cfg *shared.Config, logger shared.ILogger) (IProfiler, error) {
	prof := &profiler{logger, cfg.ProfileDir, cfg.ProfileKeepDays}
	if prof.profileDir == "" {
		return prof, nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(profilerInterval),
		gocron.NewTask(prof.saveAndPurge),
		gocron.WithName("Goroutine profile"),
		gocron.WithStartAt(gocron.WithStartDateTime(time.Now().Add(profilerStartDelay))),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := os.MkdirAll(prof.profileDir, 0755); err != nil {
				return err
			}
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Shutdown()
		},
	})
	return prof, nil
}

// SaveNow writes one goroutine dump and returns its path.
func (prof *profiler) SaveNow() (string, error) {
	if prof.profileDir == "" {
		return "", fmt.Errorf("profiling is disabled")
	}
	ts := time.Now().Format("2006-01-02!15-04-05.000")
	profPath := filepath.Join(prof.profileDir, fmt.Sprintf("%v.txt", ts))
	f, err := os.Create(profPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err = fmt.Fprintf(f, "Goroutine count: %d\n\n", runtime.NumGoroutine()); err != nil {
		return "", err
	}
	if err = pprof.Lookup("goroutine").WriteTo(f, 2); err != nil {
		return "", err
	}
	return profPath, nil
}

func purgeOld(profileDir string, retentionDays int) error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return filepath.Walk(profileDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.ModTime().Before(cutoff) {
			return os.Remove(path)
		}
		return nil
	})
}

func (prof *profiler) saveAndPurge() {
	if _, err := prof.SaveNow(); err != nil {
		prof.logger.Warnf("Failed to save goroutine profile: %v", err)
		return
	}
	if prof.profileKeepDays <= 0 {
		return
	}
	if err := purgeOld(prof.profileDir, prof.profileKeepDays); err != nil {
		prof.logger.Warnf("Failed to purge old profiles: %v", err)
	}
}
