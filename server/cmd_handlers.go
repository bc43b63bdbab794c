package server

import (
	"context"
	"net/http"
	"twitter_webview/logic"
	"twitter_webview/shared"
	"twitter_webview/texts"
)

// cmdHandlerGroup serves the links embedded in rendered timelines.
// Like, retweet and follow answer with a fragment that replaces the clicked link.
// Everything else answers right away with an empty body and finishes through the host.
type cmdHandlerGroup struct {
	logger       shared.ILogger
	metrics      logic.IMetrics
	texts        texts.ITexts
	host         logic.IHost
	interactions logic.IInteractions
}

func NewCmdHandlerGroup(
	logger shared.ILogger,
	metrics logic.IMetrics,
	texts texts.ITexts,
	host logic.IHost,
	interactions logic.IInteractions,
) IHandlerGroup {
	res := cmdHandlerGroup{
		logger:       logger,
		metrics:      metrics,
		texts:        texts,
		host:         host,
		interactions: interactions,
	}
	return &res
}

func (hg *cmdHandlerGroup) Prefix() string {
	return "/"
}

func (hg *cmdHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/" + shared.CmdSearch + "/:query", hg.observed(shared.CmdSearch, hg.getSearch)},
		{"GET", "/" + shared.CmdUser + "/:handle", hg.observed(shared.CmdUser, hg.getUser)},
		{"GET", "/" + shared.CmdImage + "/:url", hg.observed(shared.CmdImage, hg.getImage)},
		{"GET", "/" + shared.CmdRefresh + "/:type/:query?", hg.observed(shared.CmdRefresh, hg.getRefresh)},
		{"GET", "/" + shared.CmdOlder + "/:type/:query?", hg.observed(shared.CmdOlder, hg.getOlder)},
		{"GET", "/" + shared.CmdReply + "/:id/:handle", hg.observed(shared.CmdReply, hg.getReply)},
		{"GET", "/" + shared.CmdRetweet + "/:id/:url/:brief", hg.observed(shared.CmdRetweet, hg.getRetweet)},
		{"GET", "/" + shared.CmdLike + "/:id", hg.observed(shared.CmdLike, hg.getLike)},
		{"GET", "/" + shared.CmdUnlike + "/:id", hg.observed(shared.CmdUnlike, hg.getUnlike)},
		{"GET", "/" + shared.CmdFollow + "/:handle", hg.observed(shared.CmdFollow, hg.getFollow)},
		{"GET", "/" + shared.CmdUnfollow + "/:handle", hg.observed(shared.CmdUnfollow, hg.getUnfollow)},
	}
}

func (hg *cmdHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *cmdHandlerGroup) observed(label string, handler http.HandlerFunc) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		obs := hg.metrics.StartCommandIn(label)
		defer obs.Finish()
		hg.logger.Debugf("Command: %s", r.URL.Path)
		handler(w, r)
	}
}

func (hg *cmdHandlerGroup) reportFailure(action string, err error) {
	hg.logger.Warnf("Failed to %s: %v", action, err)
	hg.host.ShowError(hg.texts.WithVals("action_failed.txt", map[string]string{
		"action": action,
		"error":  err.Error(),
	}))
}

// fail reports the error through the host; the caller gets a bare 502.
func (hg *cmdHandlerGroup) fail(w http.ResponseWriter, action string, err error) {
	hg.reportFailure(action, err)
	w.WriteHeader(http.StatusBadGateway)
}

func ack(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

// async runs work that waits on the user or the remote API after the request has been acknowledged.
func (hg *cmdHandlerGroup) async(action string, work func(ctx context.Context) error) {
	go func() {
		if err := work(context.Background()); err != nil {
			hg.reportFailure(action, err)
		}
	}()
}

func (hg *cmdHandlerGroup) fragment(w http.ResponseWriter, r *http.Request, action string,
	work func(ctx context.Context) (string, error)) {
	html, err := work(r.Context())
	if err != nil {
		hg.fail(w, action, err)
		return
	}
	writeHtml(hg.logger, w, html)
}

func (hg *cmdHandlerGroup) getSearch(w http.ResponseWriter, r *http.Request) {
	hg.interactions.Navigate(shared.FtSearch, PathParams(r)["query"])
	ack(w)
}

func (hg *cmdHandlerGroup) getUser(w http.ResponseWriter, r *http.Request) {
	hg.interactions.Navigate(shared.FtOtherUser, PathParams(r)["handle"])
	ack(w)
}

func (hg *cmdHandlerGroup) getImage(w http.ResponseWriter, r *http.Request) {
	hg.interactions.ShowImage(PathParams(r)["url"])
	ack(w)
}

func (hg *cmdHandlerGroup) getRefresh(w http.ResponseWriter, r *http.Request) {
	hg.refresh(w, r, "refresh", false)
}

func (hg *cmdHandlerGroup) getOlder(w http.ResponseWriter, r *http.Request) {
	hg.refresh(w, r, "load older tweets", true)
}

func (hg *cmdHandlerGroup) refresh(w http.ResponseWriter, r *http.Request, action string, older bool) {
	params := PathParams(r)
	ft, ok := shared.ParseFeedType(params["type"])
	if !ok {
		hg.fail(w, action, shared.ErrBadContentUri)
		return
	}
	query := params["query"]
	hg.async(action, func(ctx context.Context) error {
		return hg.interactions.Refresh(ctx, ft, query, older)
	})
	ack(w)
}

func (hg *cmdHandlerGroup) getReply(w http.ResponseWriter, r *http.Request) {
	params := PathParams(r)
	hg.async("reply", func(ctx context.Context) error {
		return hg.interactions.Reply(ctx, params["id"], params["handle"])
	})
	ack(w)
}

func (hg *cmdHandlerGroup) getRetweet(w http.ResponseWriter, r *http.Request) {
	params := PathParams(r)
	fragment, comment, err := hg.interactions.RetweetOrComment(r.Context(), params["id"])
	if err != nil {
		hg.fail(w, "retweet", err)
		return
	}
	if comment {
		hg.async("comment", func(ctx context.Context) error {
			return hg.interactions.Comment(ctx, params["url"], params["brief"])
		})
		ack(w)
		return
	}
	writeHtml(hg.logger, w, fragment)
}

func (hg *cmdHandlerGroup) getLike(w http.ResponseWriter, r *http.Request) {
	id := PathParams(r)["id"]
	hg.fragment(w, r, "like", func(ctx context.Context) (string, error) {
		return hg.interactions.Like(ctx, id, true)
	})
}

func (hg *cmdHandlerGroup) getUnlike(w http.ResponseWriter, r *http.Request) {
	id := PathParams(r)["id"]
	hg.fragment(w, r, "unlike", func(ctx context.Context) (string, error) {
		return hg.interactions.Like(ctx, id, false)
	})
}

func (hg *cmdHandlerGroup) getFollow(w http.ResponseWriter, r *http.Request) {
	handle := PathParams(r)["handle"]
	hg.fragment(w, r, "follow", func(ctx context.Context) (string, error) {
		return hg.interactions.Follow(ctx, handle, true)
	})
}

func (hg *cmdHandlerGroup) getUnfollow(w http.ResponseWriter, r *http.Request) {
	handle := PathParams(r)["handle"]
	hg.fragment(w, r, "unfollow", func(ctx context.Context) (string, error) {
		return hg.interactions.Follow(ctx, handle, false)
	})
}
