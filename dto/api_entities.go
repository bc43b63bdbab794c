package dto

type TrendResp struct {
	Label  string `json:"label"`
	Volume string `json:"volume"`
	Query  string `json:"query"`
	Uri    string `json:"uri"`
}

type UriResp struct {
	Uri string `json:"uri"`
	Url string `json:"url"`
}

type PostStatusResp struct {
	Id   string `json:"id"`
	Text string `json:"text"`
	Url  string `json:"url"`
}

type SearchPromptResp struct {
	Prompt      string `json:"prompt"`
	Placeholder string `json:"placeholder"`
}
