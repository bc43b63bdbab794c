package server

import (
	"net/http"
	"strings"
	"sync/atomic"
	"twitter_webview/dto"
	"twitter_webview/logic"
	"twitter_webview/shared"
	"twitter_webview/texts"
)

// apiHandlerGroup is the JSON API the host calls directly.
type apiHandlerGroup struct {
	cfg          *shared.Config
	logger       shared.ILogger
	texts        texts.ITexts
	links        *shared.LinkBuilder
	interactions logic.IInteractions
	trends       logic.ITrends
	tipIx        atomic.Uint32
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	texts texts.ITexts,
	links *shared.LinkBuilder,
	interactions logic.IInteractions,
	trends logic.ITrends,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:          cfg,
		logger:       logger,
		texts:        texts,
		links:        links,
		interactions: interactions,
		trends:       trends,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/status", func(w http.ResponseWriter, r *http.Request) { hg.postStatus(w, r) }},
		{"GET", "/trends", func(w http.ResponseWriter, r *http.Request) { hg.getTrends(w, r) }},
		{"GET", "/uri/:type/:query?", func(w http.ResponseWriter, r *http.Request) { hg.getUri(w, r) }},
		{"GET", "/search-prompt", func(w http.ResponseWriter, r *http.Request) { hg.getSearchPrompt(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

// authMW only checks keys if any are configured.
func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(hg.cfg.Secrets.ApiKeys) == 0 {
			next.ServeHTTP(w, r)
			return
		}
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) postStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	status := r.PostForm.Get("status")
	if strings.TrimSpace(status) == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	posted, err := hg.interactions.PostStatus(r.Context(), status, r.PostForm.Get("in_reply_to"))
	if err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadGateway)
		return
	}
	handle := ""
	if posted.User != nil {
		handle = posted.User.Handle
	}
	writeJsonResponse(hg.logger, w, &dto.PostStatusResp{
		Id:   posted.Id,
		Text: posted.Text,
		Url:  shared.TweetPermalink(handle, posted.Id),
	})
}

func (hg *apiHandlerGroup) getTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := hg.trends.Get(r.Context())
	if err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadGateway)
		return
	}
	res := make([]dto.TrendResp, 0, len(trends))
	for _, t := range trends {
		res = append(res, dto.TrendResp{
			Label:  t.Label,
			Volume: t.Volume,
			Query:  t.Query,
			Uri:    shared.TimelineUri(shared.FtSearch, t.Query),
		})
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) getUri(w http.ResponseWriter, r *http.Request) {
	params := PathParams(r)
	ft, ok := shared.ParseFeedType(params["type"])
	query := params["query"]
	if !ok || (ft.NeedsParam() && query == "") {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if !ft.NeedsParam() {
		query = ""
	}
	uri := shared.TimelineUri(ft, query)
	writeJsonResponse(hg.logger, w, &dto.UriResp{Uri: uri, Url: hg.links.Document(uri)})
}

// getSearchPrompt cycles through the search tips as the input's placeholder.
func (hg *apiHandlerGroup) getSearchPrompt(w http.ResponseWriter, r *http.Request) {
	res := dto.SearchPromptResp{Prompt: hg.texts.Get("search_prompt.txt")}
	if tips := hg.texts.Lines("search_tips.txt"); len(tips) > 0 {
		ix := hg.tipIx.Add(1) - 1
		res.Placeholder = tips[int(ix)%len(tips)]
	}
	writeJsonResponse(hg.logger, w, &res)
}
