package logic_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"testing"
	"twitter_webview/logic"
	"twitter_webview/shared"
	"twitter_webview/test/mocks"
)

func TestRefreshNowSkipsFeedsNeverShown(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newScaffold(ctrl)
	registry := mocks.NewMockIRegistry(ctrl)
	host := mocks.NewMockIHost(ctrl)
	lc := fxtest.NewLifecycle(t)

	home := logic.NewTimeline(shared.FtHome, "", sc.cfg, sc.logger, sc.metrics, sc.client)
	mentions := logic.NewTimeline(shared.FtMentions, "", sc.cfg, sc.logger, sc.metrics, sc.client)
	user := logic.NewTimeline(shared.FtUser, "", sc.cfg, sc.logger, sc.metrics, sc.client)
	sc.client.EXPECT().Get(gomock.Any(), "statuses/home_timeline", gomock.Any()).Return(mustJson(tweetIds("1")), nil)
	assert.Nil(t, home.LoadNewer(context.Background()))
	gomock.InOrder(
		sc.client.EXPECT().Get(gomock.Any(), "account/verify_credentials", gomock.Any()).
			Return(mustJson(map[string]string{"screen_name": "me"}), nil),
		sc.client.EXPECT().Get(gomock.Any(), "statuses/user_timeline", gomock.Any()).
			Return(mustJson(tweetIds("1")), nil),
	)
	assert.Nil(t, user.LoadNewer(context.Background()))

	refresher, err := logic.NewAutoRefresher(lc, sc.cfg, sc.logger, registry, host)
	assert.Nil(t, err)

	registry.EXPECT().Singletons().Return([]*logic.Timeline{home, mentions, user})
	gomock.InOrder(
		sc.client.EXPECT().Get(gomock.Any(), "statuses/home_timeline", gomock.Any()).Return(mustJson(tweetIds("2")), nil),
		sc.client.EXPECT().Get(gomock.Any(), "account/verify_credentials", gomock.Any()).Return(nil, errors.New("offline")),
	)
	host.EXPECT().RefreshDocument("twitter://timeline/home")

	refresher.RefreshNow(context.Background())
	assert.Equal(t, 2, home.Len())
	assert.Equal(t, 0, mentions.Len())
	assert.Equal(t, 1, user.Len())
}

func TestSchedulerFollowsLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	sc := newScaffold(ctrl)
	sc.cfg.AutoRefreshMinutes = 10
	lc := fxtest.NewLifecycle(t)

	_, err := logic.NewAutoRefresher(lc, sc.cfg, sc.logger, mocks.NewMockIRegistry(ctrl), mocks.NewMockIHost(ctrl))
	assert.Nil(t, err)
	lc.RequireStart()
	lc.RequireStop()
}
