package shared

import (
	"fmt"
	"net/http"
	"runtime"
)

const (
	Version           = "1.4.0"
	userAgentTemplate = "Twitter-Webview/%s (%s; %s)"
)

type IUserAgent interface {
	AddUserAgent(req *http.Request)
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent() IUserAgent {
	return &userAgent{
		userAgentValue: fmt.Sprintf(userAgentTemplate, Version, runtime.GOOS, runtime.GOARCH),
	}
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Set("User-Agent", ua.userAgentValue)
}
