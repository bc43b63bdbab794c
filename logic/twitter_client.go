package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/dghubble/oauth1"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"twitter_webview/dto"
	"twitter_webview/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_twitter_client.go -package mocks twitter_webview/logic ITwitterClient

// ITwitterClient performs signed calls against the remote REST API.
// Endpoints are given without the base URL and the ".json" suffix, e.g. "statuses/home_timeline".
type ITwitterClient interface {
	Get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error)
	Post(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error)
}

// RemoteError carries every message the API returned for a failed call.
type RemoteError struct {
	Status   int
	Messages []string
}

func (e *RemoteError) Error() string {
	return strings.Join(e.Messages, "; ")
}

type twitterClient struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    IMetrics
	userAgent  shared.IUserAgent
	httpClient *http.Client
	baseUrl    string
}

func NewTwitterClient(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics IMetrics,
	userAgent shared.IUserAgent,
) ITwitterClient {
	oauthCfg := oauth1.NewConfig(cfg.Secrets.ConsumerKey, cfg.Secrets.ConsumerSecret)
	token := oauth1.NewToken(cfg.Secrets.AccessToken, cfg.Secrets.AccessTokenSecret)
	httpClient := oauthCfg.Client(context.Background(), token)
	httpClient.Timeout = time.Duration(cfg.RequestTimeoutSec) * time.Second
	baseUrl := cfg.ApiBaseUrl
	if !strings.HasSuffix(baseUrl, "/") {
		baseUrl += "/"
	}
	return &twitterClient{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		userAgent:  userAgent,
		httpClient: httpClient,
		baseUrl:    baseUrl,
	}
}

func (tc *twitterClient) Get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	reqUrl := tc.endpointUrl(endpoint)
	if len(params) != 0 {
		reqUrl += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, err
	}
	return tc.do(endpoint, req)
}

func (tc *twitterClient) Post(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	body := strings.NewReader(params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tc.endpointUrl(endpoint), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return tc.do(endpoint, req)
}

func (tc *twitterClient) endpointUrl(endpoint string) string {
	return tc.baseUrl + strings.TrimPrefix(endpoint, "/") + ".json"
}

func (tc *twitterClient) do(endpoint string, req *http.Request) (json.RawMessage, error) {

	obs := tc.metrics.StartRemoteRequest(endpoint)
	defer obs.Finish()

	tc.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", "application/json")

	resp, err := tc.httpClient.Do(req)
	if err != nil {
		tc.logger.Warnf("%s %s failed: %v", req.Method, endpoint, err)
		return nil, &RemoteError{Messages: []string{err.Error()}}
	}
	defer resp.Body.Close()

	var bodyBytes []byte
	if bodyBytes, err = io.ReadAll(resp.Body); err != nil {
		tc.logger.Warnf("Failed to read response to %s %s: %v", req.Method, endpoint, err)
		return nil, &RemoteError{Status: resp.StatusCode, Messages: []string{err.Error()}}
	}

	if resp.StatusCode != http.StatusOK {
		remoteErr := parseRemoteError(resp.StatusCode, bodyBytes)
		tc.logger.Warnf("%s %s returned status %d: %v", req.Method, endpoint, resp.StatusCode, remoteErr)
		return nil, remoteErr
	}
	tc.logger.Debugf("%s %s: %d bytes", req.Method, endpoint, len(bodyBytes))
	return bodyBytes, nil
}

func parseRemoteError(status int, body []byte) *RemoteError {
	res := RemoteError{Status: status}
	var errResp dto.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		for _, e := range errResp.Errors {
			res.Messages = append(res.Messages, e.Message)
		}
	}
	if len(res.Messages) == 0 {
		res.Messages = []string{fmt.Sprintf("request failed with status %d", status)}
	}
	return &res
}

// decodeTweetList accepts either a bare array of tweets or a search envelope with a "statuses" member.
func decodeTweetList(raw json.RawMessage) ([]*dto.Tweet, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []*dto.Tweet
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to parse tweet list: %w", err)
		}
		return list, nil
	}
	var sr dto.SearchResult
	if err := json.Unmarshal(trimmed, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse search result: %w", err)
	}
	return sr.Statuses, nil
}

func decodeInto[T any](raw json.RawMessage) (*T, error) {
	var obj T
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &obj, nil
}
