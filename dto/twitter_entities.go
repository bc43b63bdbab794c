package dto

// Indices is a half-open [start, end) codepoint range into a tweet's text.
type Indices [2]int

type Tweet struct {
	IdStr               string    `json:"id_str"`
	CreatedAt           string    `json:"created_at"`
	Text                string    `json:"text"`
	FullText            string    `json:"full_text"`
	DisplayTextRange    []int     `json:"display_text_range"`
	User                *User     `json:"user"`
	Entities            *Entities `json:"entities"`
	ExtendedEntities    *Entities `json:"extended_entities"`
	RetweetCount        int       `json:"retweet_count"`
	FavoriteCount       int       `json:"favorite_count"`
	Retweeted           bool      `json:"retweeted"`
	Favorited           bool      `json:"favorited"`
	InReplyToScreenName string    `json:"in_reply_to_screen_name"`
	QuotedStatus        *Tweet    `json:"quoted_status"`
	RetweetedStatus     *Tweet    `json:"retweeted_status"`
}

type Entities struct {
	Hashtags     []HashtagEntity `json:"hashtags"`
	Symbols      []HashtagEntity `json:"symbols"`
	UserMentions []MentionEntity `json:"user_mentions"`
	Urls         []UrlEntity     `json:"urls"`
	Media        []MediaEntity   `json:"media"`
}

type HashtagEntity struct {
	Indices Indices `json:"indices"`
	Text    string  `json:"text"`
}

type MentionEntity struct {
	Indices    Indices `json:"indices"`
	IdStr      string  `json:"id_str"`
	Name       string  `json:"name"`
	ScreenName string  `json:"screen_name"`
}

type UrlEntity struct {
	Indices     Indices `json:"indices"`
	Url         string  `json:"url"`
	DisplayUrl  string  `json:"display_url"`
	ExpandedUrl string  `json:"expanded_url"`
}

type MediaEntity struct {
	UrlEntity
	IdStr         string     `json:"id_str"`
	Type          string     `json:"type"`
	MediaUrlHttps string     `json:"media_url_https"`
	VideoInfo     *VideoInfo `json:"video_info"`
}

type VideoInfo struct {
	AspectRatio    []int          `json:"aspect_ratio"`
	DurationMillis int            `json:"duration_millis"`
	Variants       []VideoVariant `json:"variants"`
}

type VideoVariant struct {
	Bitrate     int    `json:"bitrate"`
	ContentType string `json:"content_type"`
	Url         string `json:"url"`
}

type User struct {
	IdStr                string        `json:"id_str"`
	Name                 string        `json:"name"`
	ScreenName           string        `json:"screen_name"`
	ProfileImageUrlHttps string        `json:"profile_image_url_https"`
	Description          string        `json:"description"`
	Url                  string        `json:"url"`
	Location             string        `json:"location"`
	Verified             bool          `json:"verified"`
	Following            bool          `json:"following"`
	StatusesCount        int           `json:"statuses_count"`
	FriendsCount         int           `json:"friends_count"`
	FollowersCount       int           `json:"followers_count"`
	FavouritesCount      int           `json:"favourites_count"`
	CreatedAt            string        `json:"created_at"`
	Entities             *UserEntities `json:"entities"`
}

type UserEntities struct {
	Url         *Entities `json:"url"`
	Description *Entities `json:"description"`
}

type SearchResult struct {
	Statuses []*Tweet `json:"statuses"`
}

type ApiError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type ErrorResponse struct {
	Errors []ApiError `json:"errors"`
}

type TrendsPlace struct {
	Trends []Trend `json:"trends"`
}

type Trend struct {
	Name        string `json:"name"`
	Url         string `json:"url"`
	Query       string `json:"query"`
	TweetVolume int64  `json:"tweet_volume"`
}
