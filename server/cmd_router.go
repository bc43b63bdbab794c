package server

import (
	"fmt"
	"github.com/gorilla/mux"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

var reParamName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// CmdRouter dispatches local command URLs registered with express-style patterns,
// e.g. "/refresh/:type/:query?". Parameters match a single path segment.
// The underlying router must use encoded paths so that an escaped "/" stays inside its segment.
type CmdRouter struct {
	router *mux.Router
}

func NewCmdRouter(router *mux.Router) *CmdRouter {
	return &CmdRouter{router: router}
}

// Register adds a handler for method and pattern. A pattern with an optional last parameter
// is registered both with and without it.
func (cr *CmdRouter) Register(method, pattern string, handler http.HandlerFunc) error {
	templates, err := expandPattern(pattern)
	if err != nil {
		return err
	}
	for _, tmpl := range templates {
		cr.router.HandleFunc(tmpl, handler).Methods("OPTIONS", method)
	}
	return nil
}

func (cr *CmdRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cr.router.ServeHTTP(w, r)
}

func expandPattern(pattern string) ([]string, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("pattern must start with '/': %s", pattern)
	}
	segs := strings.Split(strings.TrimPrefix(pattern, "/"), "/")
	optional := false
	for i, seg := range segs {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := strings.TrimPrefix(seg, ":")
		if strings.HasSuffix(name, "?") {
			if i != len(segs)-1 {
				return nil, fmt.Errorf("only the last parameter can be optional: %s", pattern)
			}
			name = strings.TrimSuffix(name, "?")
			optional = true
		}
		if !reParamName.MatchString(name) {
			return nil, fmt.Errorf("invalid parameter name '%s' in %s", name, pattern)
		}
		segs[i] = "{" + name + "}"
	}
	full := "/" + strings.Join(segs, "/")
	if !optional {
		return []string{full}, nil
	}
	short := "/" + strings.Join(segs[:len(segs)-1], "/")
	return []string{short, full}, nil
}

// PathParams returns the request's path parameters, unescaped.
// A parameter that is not a valid escape sequence is returned as it came.
func PathParams(r *http.Request) map[string]string {
	vars := mux.Vars(r)
	res := make(map[string]string, len(vars))
	for k, v := range vars {
		if unescaped, err := url.PathUnescape(v); err == nil {
			v = unescaped
		}
		res[k] = v
	}
	return res
}
