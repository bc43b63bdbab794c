package logic

import (
	"time"
	"twitter_webview/dto"
	"twitter_webview/entity"
	"unicode/utf8"
)

type User struct {
	Id                  string
	Name                string
	Handle              string
	Image               string
	Description         string
	DescriptionEntities *entity.Set
	Url                 string
	UrlEntities         *entity.Set
	Location            string
	Verified            bool
	Following           bool
	StatusesCount       int
	FriendsCount        int
	FollowersCount      int
	FavouritesCount     int
	Created             time.Time
}

// Tweet is built once from the wire format and never modified afterwards.
// A fresher copy replaces it as a whole.
type Tweet struct {
	Id              string
	Created         time.Time
	User            *User
	Text            string
	DisplayStart    int
	DisplayEnd      int
	Entities        *entity.Set
	RetweetCount    int
	LikeCount       int
	Retweeted       bool
	Liked           bool
	InReplyTo       string
	Quoted          *Tweet
	RetweetedStatus *Tweet
}

// Source is the tweet whose content is shown: the original for retweets, the tweet itself otherwise.
func (t *Tweet) Source() *Tweet {
	if t.RetweetedStatus != nil {
		return t.RetweetedStatus
	}
	return t
}

func parseTime(str string) time.Time {
	if str == "" {
		return time.Time{}
	}
	res, err := time.Parse(time.RubyDate, str)
	if err != nil {
		return time.Time{}
	}
	return res
}

// TweetFromDto converts a wire tweet. It returns nil for items without an ID.
func TweetFromDto(d *dto.Tweet) *Tweet {
	if d == nil || d.IdStr == "" {
		return nil
	}
	res := Tweet{
		Id:              d.IdStr,
		Created:         parseTime(d.CreatedAt),
		User:            UserFromDto(d.User),
		Text:            d.FullText,
		RetweetCount:    d.RetweetCount,
		LikeCount:       d.FavoriteCount,
		Retweeted:       d.Retweeted,
		Liked:           d.Favorited,
		InReplyTo:       d.InReplyToScreenName,
		Quoted:          TweetFromDto(d.QuotedStatus),
		RetweetedStatus: TweetFromDto(d.RetweetedStatus),
	}
	if res.Text == "" {
		res.Text = d.Text
	}
	res.DisplayStart, res.DisplayEnd = 0, utf8.RuneCountInString(res.Text)
	if len(d.DisplayTextRange) == 2 && d.DisplayTextRange[0] <= d.DisplayTextRange[1] {
		res.DisplayStart, res.DisplayEnd = d.DisplayTextRange[0], d.DisplayTextRange[1]
	}
	res.Entities = entitySetFromDto(d.Entities)
	if d.ExtendedEntities != nil && len(d.ExtendedEntities.Media) > 0 {
		res.Entities.Media = mediaFromDto(d.ExtendedEntities.Media)
	}
	return &res
}

func TweetsFromDto(items []*dto.Tweet) []*Tweet {
	res := make([]*Tweet, 0, len(items))
	for _, itm := range items {
		if t := TweetFromDto(itm); t != nil {
			res = append(res, t)
		}
	}
	return res
}

func UserFromDto(d *dto.User) *User {
	if d == nil {
		return nil
	}
	res := User{
		Id:              d.IdStr,
		Name:            d.Name,
		Handle:          d.ScreenName,
		Image:           d.ProfileImageUrlHttps,
		Description:     d.Description,
		Url:             d.Url,
		Location:        d.Location,
		Verified:        d.Verified,
		Following:       d.Following,
		StatusesCount:   d.StatusesCount,
		FriendsCount:    d.FriendsCount,
		FollowersCount:  d.FollowersCount,
		FavouritesCount: d.FavouritesCount,
		Created:         parseTime(d.CreatedAt),
	}
	if d.Entities != nil {
		res.DescriptionEntities = entitySetFromDto(d.Entities.Description)
		res.UrlEntities = entitySetFromDto(d.Entities.Url)
	} else {
		res.DescriptionEntities = &entity.Set{}
		res.UrlEntities = &entity.Set{}
	}
	return &res
}

// ExpandedUrl is the full form of the profile's home page link, if the API resolved it.
func (u *User) ExpandedUrl() string {
	if u.UrlEntities != nil && len(u.UrlEntities.Urls) > 0 && u.UrlEntities.Urls[0].Value != "" {
		return u.UrlEntities.Urls[0].Value
	}
	return u.Url
}

func entitySetFromDto(d *dto.Entities) *entity.Set {
	res := entity.Set{}
	if d == nil {
		return &res
	}
	for _, m := range d.UserMentions {
		res.Mentions = append(res.Mentions, entity.Span{
			Kind: entity.KindMention, Start: m.Indices[0], End: m.Indices[1], Value: m.ScreenName,
		})
	}
	for _, h := range d.Hashtags {
		res.Hashtags = append(res.Hashtags, entity.Span{
			Kind: entity.KindHashtag, Start: h.Indices[0], End: h.Indices[1], Value: h.Text,
		})
	}
	for _, s := range d.Symbols {
		res.Symbols = append(res.Symbols, entity.Span{
			Kind: entity.KindSymbol, Start: s.Indices[0], End: s.Indices[1], Value: "$" + s.Text,
		})
	}
	for _, u := range d.Urls {
		display := u.DisplayUrl
		if display == "" {
			display = u.Url
		}
		res.Urls = append(res.Urls, entity.Span{
			Kind: entity.KindUrl, Start: u.Indices[0], End: u.Indices[1],
			Value: u.ExpandedUrl, Display: display, Url: u.Url,
		})
	}
	res.Media = mediaFromDto(d.Media)
	return &res
}

func mediaFromDto(items []dto.MediaEntity) []entity.Media {
	var res []entity.Media
	for _, itm := range items {
		m := entity.Media{Type: itm.Type, Url: itm.MediaUrlHttps, End: itm.Indices[1]}
		if itm.VideoInfo != nil {
			for _, v := range itm.VideoInfo.Variants {
				m.Variants = append(m.Variants, entity.Variant{Url: v.Url, ContentType: v.ContentType})
			}
		}
		res = append(res, m)
	}
	return res
}
