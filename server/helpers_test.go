package server_test

import (
	"github.com/gorilla/mux"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"strings"
	"twitter_webview/server"
	"twitter_webview/shared"
	"twitter_webview/test/mocks"
	"twitter_webview/texts"
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
}

type scaffold struct {
	ctrl         *gomock.Controller
	cfg          *shared.Config
	logger       *mocks.MockILogger
	metrics      *mocks.MockIMetrics
	texts        texts.ITexts
	links        *shared.LinkBuilder
	host         *mocks.MockIHost
	interactions *mocks.MockIInteractions
	documents    *mocks.MockIDocuments
	trends       *mocks.MockITrends
}

func newScaffold(ctrl *gomock.Controller) *scaffold {
	res := scaffold{
		ctrl:         ctrl,
		cfg:          &shared.Config{},
		logger:       mocks.NewMockILogger(ctrl),
		metrics:      mocks.NewMockIMetrics(ctrl),
		texts:        texts.NewTexts(),
		links:        shared.NewLinkBuilder(),
		host:         mocks.NewMockIHost(ctrl),
		interactions: mocks.NewMockIInteractions(ctrl),
		documents:    mocks.NewMockIDocuments(ctrl),
		trends:       mocks.NewMockITrends(ctrl),
	}
	res.links.SetBase("http://127.0.0.1:4567")
	stubLogger(res.logger)
	stubMetrics(ctrl, res.metrics)
	return &res
}

// router wires all handler groups the way the application does.
func (s *scaffold) router() *mux.Router {
	groups := []server.IHandlerGroup{
		server.NewCmdHandlerGroup(s.logger, s.metrics, s.texts, s.host, s.interactions),
		server.NewDocHandlerGroup(s.logger, s.texts, s.host, s.documents),
		server.NewApiHandlerGroup(s.cfg, s.logger, s.texts, s.links, s.interactions, s.trends),
		server.NewMetricsHandlerGroup(s.cfg, s.logger),
	}
	return server.NewMux(groups, s.logger)
}

func (s *scaffold) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router().ServeHTTP(rr, req)
	return rr
}

func (s *scaffold) get(target string) *httptest.ResponseRecorder {
	return s.serve(httptest.NewRequest("GET", strings.TrimPrefix(target, s.links.Base()), nil))
}
