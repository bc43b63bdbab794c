package server

import (
	"context"
	"github.com/gorilla/mux"
	"go.uber.org/fx"
	"net"
	"net/http"
	"strconv"
	"strings"
	"twitter_webview/logic"
	"twitter_webview/shared"
)

const strCacheControlHdr = "Cache-Control"

// NewHTTPServer listens on the configured host and port. With port 0 the system picks one;
// the actual address becomes the base of all callback links and is announced to the host.
func NewHTTPServer(
	cfg *shared.Config,
	logger shared.ILogger,
	lc fx.Lifecycle,
	router *mux.Router,
	links *shared.LinkBuilder,
	host logic.IHost,
) *http.Server {
	addStr := net.JoinHostPort(cfg.ServiceHost, strconv.FormatUint(uint64(cfg.ServicePort), 10))
	srv := &http.Server{Addr: addStr, Handler: trimSlashHandler(router)}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			serviceUrl := "http://" + listener.Addr().String()
			links.SetBase(serviceUrl)
			logger.Printf("Starting HTTP server at %v", serviceUrl)
			go srv.Serve(listener)
			host.Ready(serviceUrl)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Printf("Shutting down HTTP server")
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

func trimSlashHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			r.URL.Path = strings.TrimSuffix(r.URL.Path, "/")
			r.URL.RawPath = strings.TrimSuffix(r.URL.RawPath, "/")
		}
		next.ServeHTTP(w, r)
	})
}

func NewMux(groups []IHandlerGroup, logger shared.ILogger) *mux.Router {
	router := mux.NewRouter().UseEncodedPath()
	for _, group := range groups {
		subRouter := router.PathPrefix(group.Prefix()).Subrouter()
		subRouter.Use(noCacheMW)
		subRouter.Use(group.AuthMW())
		cmdRouter := NewCmdRouter(subRouter)
		for _, def := range group.GroupDefs() {
			if err := cmdRouter.Register(def.method, def.pattern, def.handler); err != nil {
				logger.Errorf("Failed to register %s %s: %v", def.method, def.pattern, err)
				panic(err)
			}
		}
	}
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debugf("No handler for %s %s", r.Method, r.URL.Path)
		http.Error(w, notFoundStr, http.StatusNotFound)
	})
	return router
}

func noCacheMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(strCacheControlHdr, "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
