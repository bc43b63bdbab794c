package dto

// Message types written to the host on stdout
const (
	HostMsgReady   = "ready"
	HostMsgInfo    = "info"
	HostMsgError   = "error"
	HostMsgOpen    = "open"
	HostMsgRefresh = "refresh"
	HostMsgPrompt  = "prompt"
	HostMsgChoose  = "choose"
)

// Message types read from the host on stdin
const (
	HostMsgReply    = "reply"
	HostMsgSettings = "settings"
)

type HostMessage struct {
	Type        string   `json:"type"`
	Id          string   `json:"id,omitempty"`
	Uri         string   `json:"uri,omitempty"`
	Url         string   `json:"url,omitempty"`
	Message     string   `json:"message,omitempty"`
	Prompt      string   `json:"prompt,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Value       string   `json:"value,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type HostReply struct {
	Type      string `json:"type"`
	Id        string `json:"id,omitempty"`
	Value     string `json:"value,omitempty"`
	Cancelled bool   `json:"cancelled,omitempty"`
	NoMedia   *bool  `json:"no_media,omitempty"`
	AutoPlay  *bool  `json:"auto_play,omitempty"`
}
