package logic_test

import (
	"encoding/json"
	"go.uber.org/mock/gomock"
	"strconv"
	"twitter_webview/dto"
	"twitter_webview/shared"
	"twitter_webview/test/mocks"
)

func stubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func stubMetrics(ctrl *gomock.Controller, mockMetrics *mocks.MockIMetrics) {
	obs := mocks.NewMockIRequestObserver(ctrl)
	obs.EXPECT().Finish().AnyTimes()
	mockMetrics.EXPECT().StartRemoteRequest(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartCommandIn(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().FeedResolved(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().FetchFailed(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().CachedTweets(gomock.Any(), gomock.Any()).AnyTimes()
}

func stubTexts(mockTexts *mocks.MockITexts) {
	mockTexts.EXPECT().Get(gomock.Any()).DoAndReturn(func(id string) string {
		return id
	}).AnyTimes()
	mockTexts.EXPECT().WithVals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(id string, vals map[string]string) string {
			return dummyTextWithVals(id, vals)
		}).AnyTimes()
}

func dummyTextWithVals(id string, vals map[string]string) string {
	res := id
	for k, v := range vals {
		res += "\n" + k + "\t" + v
	}
	return res
}

type scaffold struct {
	ctrl    *gomock.Controller
	cfg     *shared.Config
	logger  *mocks.MockILogger
	metrics *mocks.MockIMetrics
	client  *mocks.MockITwitterClient
}

func newScaffold(ctrl *gomock.Controller) *scaffold {
	res := scaffold{
		ctrl:    ctrl,
		cfg:     &shared.Config{PageSize: 20, TrendsPlaceId: 1, TrendsCacheMinutes: 5},
		logger:  mocks.NewMockILogger(ctrl),
		metrics: mocks.NewMockIMetrics(ctrl),
		client:  mocks.NewMockITwitterClient(ctrl),
	}
	stubLogger(res.logger)
	stubMetrics(ctrl, res.metrics)
	return &res
}

func mkTweet(id, text string) *dto.Tweet {
	return &dto.Tweet{
		IdStr:     id,
		CreatedAt: "Mon Jan 02 15:04:05 +0000 2023",
		FullText:  text,
		User:      &dto.User{IdStr: "u1", Name: "Bob", ScreenName: "bob"},
	}
}

// tweetRange returns tweets with numeric IDs from high down to low, newest first.
func tweetRange(high, low int) []*dto.Tweet {
	var res []*dto.Tweet
	for i := high; i >= low; i-- {
		id := strconv.Itoa(i)
		res = append(res, mkTweet(id, "tweet "+id))
	}
	return res
}

func tweetIds(ids ...string) []*dto.Tweet {
	var res []*dto.Tweet
	for _, id := range ids {
		res = append(res, mkTweet(id, "tweet "+id))
	}
	return res
}

func mustJson(obj any) json.RawMessage {
	res, err := json.Marshal(obj)
	if err != nil {
		panic(err)
	}
	return res
}
