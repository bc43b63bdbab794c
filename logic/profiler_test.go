package logic_test

import (
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"twitter_webview/logic"
)

func TestProfilerWritesGoroutineDump(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newScaffold(ctrl)
	sc.cfg.ProfileDir = filepath.Join(t.TempDir(), "profiles")
	sc.cfg.ProfileKeepDays = 1
	lc := fxtest.NewLifecycle(t)

	prof, err := logic.NewProfiler(lc, sc.cfg, sc.logger)
	assert.Nil(t, err)
	lc.RequireStart()
	defer lc.RequireStop()

	path, err := prof.SaveNow()
	assert.Nil(t, err)
	assert.Equal(t, sc.cfg.ProfileDir, filepath.Dir(path))
	content, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(string(content), "Goroutine count: "))
	assert.Contains(t, string(content), "goroutine ")
}

func TestProfilerDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newScaffold(ctrl)
	lc := fxtest.NewLifecycle(t)

	prof, err := logic.NewProfiler(lc, sc.cfg, sc.logger)
	assert.Nil(t, err)
	lc.RequireStart()
	lc.RequireStop()

	_, err = prof.SaveNow()
	assert.NotNil(t, err)
}
