package server

import (
	"errors"
	"fmt"
	"github.com/spaolacci/murmur3"
	"net/http"
	"twitter_webview/logic"
	"twitter_webview/shared"
	"twitter_webview/texts"
)

type docHandlerGroup struct {
	logger    shared.ILogger
	texts     texts.ITexts
	host      logic.IHost
	documents logic.IDocuments
}

func NewDocHandlerGroup(
	logger shared.ILogger,
	texts texts.ITexts,
	host logic.IHost,
	documents logic.IDocuments,
) IHandlerGroup {
	res := docHandlerGroup{
		logger:    logger,
		texts:     texts,
		host:      host,
		documents: documents,
	}
	return &res
}

func (hg *docHandlerGroup) Prefix() string {
	return "/"
}

func (hg *docHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/" + shared.CmdDocument, func(w http.ResponseWriter, r *http.Request) { hg.getDocument(w, r) }},
		{"GET", "/" + shared.CmdCss, func(w http.ResponseWriter, r *http.Request) { hg.getCss(w, r) }},
	}
}

func (hg *docHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func etag(body string) string {
	return fmt.Sprintf(`"%016x"`, murmur3.Sum64([]byte(body)))
}

// getDocument renders the content behind ?uri=. Unchanged documents are answered with 304.
func (hg *docHandlerGroup) getDocument(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	doc, err := hg.documents.Render(r.Context(), uri)
	if err != nil {
		if errors.Is(err, shared.ErrBadContentUri) {
			hg.logger.Infof("Bad document request: %v", err)
			http.Error(w, badRequestStr, http.StatusBadRequest)
			return
		}
		hg.host.ShowError(hg.texts.WithVals("action_failed.txt", map[string]string{
			"action": "load " + uri,
			"error":  err.Error(),
		}))
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	tag := etag(doc)
	w.Header().Set(strCacheControlHdr, "no-cache")
	w.Header().Del("Pragma")
	w.Header().Del("Expires")
	w.Header().Set("ETag", tag)
	if r.Header.Get("If-None-Match") == tag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeHtml(hg.logger, w, doc)
}

func (hg *docHandlerGroup) getCss(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", cssContentType)
	if _, err := fmt.Fprint(w, hg.texts.Get("style.css")); err != nil {
		hg.logger.Warnf("Failed to write stylesheet: %v", err)
	}
}
