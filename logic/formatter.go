package logic

import (
	"bytes"
	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"html"
	"html/template"
	"strings"
	"time"
	"twitter_webview/entity"
	"twitter_webview/shared"
	"twitter_webview/texts"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_formatter.go -package mocks twitter_webview/logic IFormatter

const (
	maxAutoplayVideos = 10
	dotSeparator      = " • "
	spaceSeparator    = "&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;"
	barSeparator      = "&nbsp;&nbsp;|&nbsp;&nbsp;"
	retweetSymbol     = "♺"
	heartSymbol       = "♡"
	replyLabel        = "Reply"
	endLine           = "<hr/>"
	autoplayControl   = `autoplay loop`
	videoControl      = `muted controls preload="none"`
	joinedFormat      = "Jan-02-2006"
	updatedFormat     = "3:04 PM, Jan 2, 2006"
)

type userPosition int

const (
	posTweet userPosition = iota
	posRetweet
	posQuoted
)

var strictPolicy = bluemonday.StrictPolicy()

// IFormatter turns timelines and tweets into HTML.
// Interactive elements are links with a data-cmd attribute; the page script calls that URL on click,
// and for links marked data-splice it replaces the link with the fragment that comes back.
type IFormatter interface {
	FormatTimeline(tl *Timeline) string
	RenderTimeline(title string, ft shared.FeedType, query string, headerHtml string, tweetsHtml string) string
	RenderImage(imgUrl string) string
	FormatTweets(tweets []*Tweet) string
	FormatTweet(t *Tweet) string
	FormatProfile(u *User) string
	FormatLike(t *Tweet) string
	FormatRetweet(t *Tweet) string
	FormatFollow(following bool, handle string) string
}

type formatter struct {
	logger   shared.ILogger
	texts    texts.ITexts
	settings shared.ISettings
	links    *shared.LinkBuilder
	page     *template.Template
}

type timelineModel struct {
	Title      string
	CssUrl     string
	RefreshUrl string
	OlderUrl   string
	Updated    string
	Header     template.HTML
	Tweets     template.HTML
}

func NewFormatter(
	logger shared.ILogger,
	texts texts.ITexts,
	settings shared.ISettings,
	links *shared.LinkBuilder,
) IFormatter {
	return &formatter{
		logger:   logger,
		texts:    texts,
		settings: settings,
		links:    links,
		page:     template.Must(template.New("timeline").Parse(texts.Get("timeline.tmpl"))),
	}
}

func (f *formatter) FormatTimeline(tl *Timeline) string {
	header := f.FormatProfile(tl.Profile())
	tweets := f.FormatTweets(tl.Tweets())
	return f.RenderTimeline(tl.Title(), tl.Type(), tl.Param(), header, tweets)
}

func (f *formatter) RenderTimeline(title string, ft shared.FeedType, query string, headerHtml string, tweetsHtml string) string {
	model := timelineModel{
		Title:      title,
		CssUrl:     f.links.Css(),
		RefreshUrl: f.links.Refresh(ft, query),
		OlderUrl:   f.links.Older(ft, query),
		Updated:    time.Now().Format(updatedFormat),
		Header:     template.HTML(headerHtml),
		Tweets:     template.HTML(tweetsHtml),
	}
	var buf bytes.Buffer
	if err := f.page.Execute(&buf, &model); err != nil {
		f.logger.Errorf("Failed to render timeline '%s': %v", title, err)
		return ""
	}
	return f.limitAutoplay(buf.String())
}

func (f *formatter) RenderImage(imgUrl string) string {
	return f.texts.WithVals("image.html", map[string]string{
		"css": f.links.Css(),
		"url": imgUrl,
	})
}

// limitAutoplay turns autoplay off for every video once a document has more than maxAutoplayVideos of them.
func (f *formatter) limitAutoplay(doc string) string {
	if strings.Count(doc, "<video") <= maxAutoplayVideos {
		return doc
	}
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		f.logger.Warnf("Failed to parse rendered document: %v", err)
		return doc
	}
	videos := gq.Find("video")
	if videos.Length() <= maxAutoplayVideos {
		return doc
	}
	f.logger.Infof("Too many videos (%d), disabling autoplay", videos.Length())
	videos.Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr("autoplay"); !ok {
			return
		}
		// same attributes as a video that never autoplays, still looping
		s.RemoveAttr("autoplay")
		s.SetAttr("muted", "")
		s.SetAttr("controls", "")
		s.SetAttr("preload", "none")
		s.SetAttr("loop", "")
	})
	res, err := gq.Html()
	if err != nil {
		f.logger.Warnf("Failed to serialize document: %v", err)
		return doc
	}
	return res
}

func (f *formatter) FormatTweets(tweets []*Tweet) string {
	var sb strings.Builder
	for _, t := range tweets {
		sb.WriteString(f.formatTweet(t, false))
	}
	return sb.String()
}

func (f *formatter) FormatTweet(t *Tweet) string {
	return f.formatTweet(t, false)
}

func (f *formatter) formatTweet(t *Tweet, quoted bool) string {
	if t == nil {
		return ""
	}
	if t.RetweetedStatus != nil {
		return "<p>" + f.formatUser(t.User, posRetweet) + " Retweeted</p>" + f.formatTweet(t.RetweetedStatus, quoted)
	}

	var sb strings.Builder
	if quoted {
		sb.WriteString("<blockquote>")
	}
	sb.WriteString("<p>")
	if quoted {
		sb.WriteString(f.formatUser(t.User, posQuoted))
	} else {
		sb.WriteString(f.formatUser(t.User, posTweet))
		if !t.Created.IsZero() {
			sb.WriteString(dotSeparator + humanize.Time(t.Created))
		}
	}
	sb.WriteString("&nbsp;(" + externalLink("Detail", shared.TweetPermalink(handleOf(t), t.Id)) + ")</p>")
	sb.WriteString("<p>" + f.processText(t.Entities, t.Text, t.DisplayStart, bodyEnd(t), true) + "</p>")

	if t.Quoted != nil {
		sb.WriteString(f.formatTweet(t.Quoted, true))
	}
	if t.Entities.HasMedia() && !f.settings.NoMedia() {
		sb.WriteString(f.formatMedia(t.Entities.Media, quoted))
	}
	if !quoted {
		sb.WriteString(f.formatStatusLine(t) + endLine)
	} else {
		sb.WriteString("</blockquote>")
	}
	return sb.String()
}

// bodyEnd widens the display range to take in the media link, which the API leaves outside of it.
func bodyEnd(t *Tweet) int {
	end := t.DisplayEnd
	if !t.Entities.HasMedia() {
		return end
	}
	for _, m := range t.Entities.Media {
		if m.End > end {
			end = m.End
		}
	}
	return end
}

func (f *formatter) processText(set *entity.Set, text string, start, end int, handleTrailingUrl bool) string {
	segs := entity.Parse(text, set, start, end)
	behavior := entity.TuNoChange
	if handleTrailingUrl {
		if f.settings.NoMedia() {
			behavior = entity.TuUrlify
		} else {
			behavior = entity.TuRemove
		}
	}
	segs = entity.ApplyTrailingUrl(segs, set, behavior)

	var sb strings.Builder
	for _, seg := range segs {
		switch seg.Kind {
		case entity.KindMention:
			sb.WriteString(cmdLink(safeText(seg.Raw), f.links.User(seg.Value), false))
		case entity.KindHashtag:
			sb.WriteString(cmdLink(safeText(seg.Raw), f.links.Hashtag(seg.Value), false))
		case entity.KindSymbol:
			sb.WriteString(cmdLink(safeText(seg.Raw), f.links.Search(seg.Value), false))
		case entity.KindUrl:
			text, href := seg.Display, seg.Url
			if text == "" {
				text = seg.Raw
			}
			if href == "" {
				href = seg.Value
			}
			sb.WriteString(externalLink(safeText(text), href))
		default:
			sb.WriteString(safeText(seg.Raw))
		}
	}
	return sb.String()
}

func (f *formatter) formatMedia(media []entity.Media, quoted bool) string {
	size := ":small"
	if quoted {
		size = ":thumb"
	}
	var items []string
	for _, m := range media {
		if m.IsVideo() {
			if video := f.formatVideo(&m); video != "" {
				items = append(items, video)
				continue
			}
		}
		if m.Url == "" {
			continue
		}
		img := `<img src="` + attr(m.Url+size) + `"/>`
		items = append(items, "<details><summary>[image]</summary>"+cmdLink(img, f.links.Image(m.Url+":large"), false)+"</details>")
	}
	if len(items) == 0 {
		return ""
	}
	return "<p>" + strings.Join(items, " ") + "</p>"
}

func (f *formatter) formatVideo(m *entity.Media) string {
	var sources strings.Builder
	for _, v := range m.Variants {
		if strings.HasPrefix(v.ContentType, "video") {
			sources.WriteString(`<source src="` + attr(v.Url) + `" type="` + attr(v.ContentType) + `"/>`)
		}
	}
	if sources.Len() == 0 {
		return ""
	}
	control := videoControl
	if m.Type == "animated_gif" && f.settings.AutoPlay() {
		control = autoplayControl
	}
	return `<details><summary>[video]</summary><video width="340" poster="` + attr(m.Url) + `" ` + control + `>` +
		sources.String() + `</video></details>`
}

func (f *formatter) formatUser(u *User, pos userPosition) string {
	if u == nil {
		return ""
	}
	name := safeText(u.Name)
	userLink := f.links.User(u.Handle)
	switch pos {
	case posRetweet:
		return retweetSymbol + " " + cmdLink(name, userLink, false)
	case posQuoted:
		return "<strong>" + name + "</strong> " + cmdLink("@"+safeText(u.Handle), userLink, false)
	}
	res := ""
	if !f.settings.NoMedia() && u.Image != "" {
		res += `<img src="` + attr(u.Image) + `"/>&nbsp;`
	}
	return res + cmdLink(name, userLink, false)
}

func (f *formatter) FormatProfile(u *User) string {
	if u == nil {
		return ""
	}
	permalink := shared.UserPermalink(u.Handle)
	var sb strings.Builder
	if !f.settings.NoMedia() && u.Image != "" {
		sb.WriteString(`<div class="avatar"><img src="` + attr(strings.Replace(u.Image, "_normal", "_400x400", 1)) + `"/></div>`)
	}
	sb.WriteString(`<p><span style="font-size: 1.5em;"><strong>` + externalLink(safeText(u.Name), permalink) + `</strong></span>&nbsp;&nbsp;`)
	sb.WriteString(externalLink("@"+safeText(u.Handle), permalink) + barSeparator + f.FormatFollow(u.Following, u.Handle) + "</p>")
	if u.Url != "" {
		sb.WriteString("<p>" + externalLink(safeText(u.ExpandedUrl()), u.Url) + "</p>")
	}
	sb.WriteString("<p>" + f.processText(u.DescriptionEntities, u.Description, 0, -1, false) + "</p>")
	sb.WriteString("<p><strong>Location: </strong>&nbsp;" + safeText(u.Location) + "</p>")
	if !u.Created.IsZero() {
		sb.WriteString("<p><strong>Joined: </strong>&nbsp;" + u.Created.Format(joinedFormat) + "</p>")
	}
	sb.WriteString("<p><strong>Tweets: </strong>&nbsp;" + humanize.Comma(int64(u.StatusesCount)) + barSeparator)
	sb.WriteString("<strong>Following: </strong>&nbsp;" + humanize.Comma(int64(u.FriendsCount)) + barSeparator)
	sb.WriteString("<strong>Followers: </strong>&nbsp;" + humanize.Comma(int64(u.FollowersCount)) + barSeparator)
	sb.WriteString("<strong>Likes: </strong>&nbsp;" + humanize.Comma(int64(u.FavouritesCount)) + "</p>")
	sb.WriteString(`<div class="clear">&nbsp;</div>` + endLine)
	return sb.String()
}

func (f *formatter) formatStatusLine(t *Tweet) string {
	reply := cmdLink(replyLabel, f.links.Reply(t.Id, handleOf(t)), false)
	return reply + spaceSeparator + f.FormatRetweet(t) + spaceSeparator + f.FormatLike(t)
}

func (f *formatter) FormatRetweet(t *Tweet) string {
	text := retweetSymbol + countSuffix(t.RetweetCount)
	if t.Retweeted {
		return `<span class="retweeted">` + text + `</span>`
	}
	permalink := shared.TweetPermalink(handleOf(t), t.Id)
	brief := shared.TweetBrief(handleOf(t), t.Text)
	return cmdLink(text, f.links.Retweet(t.Id, permalink, brief), true)
}

func (f *formatter) FormatLike(t *Tweet) string {
	text := heartSymbol + countSuffix(t.LikeCount)
	if t.Liked {
		text = `<span class="liked">` + text + `</span>`
	}
	return cmdLink(text, f.links.Like(t.Id, t.Liked), true)
}

func (f *formatter) FormatFollow(following bool, handle string) string {
	text := "Following"
	if !following {
		text = `<span class="unfollow">Not Following</span>`
	}
	return cmdLink(text, f.links.Follow(handle, following), true)
}

func countSuffix(count int) string {
	if count == 0 {
		return ""
	}
	return " " + humanize.Comma(int64(count)) + " "
}

func handleOf(t *Tweet) string {
	if t.User == nil || t.User.Handle == "" {
		return "i/web"
	}
	return t.User.Handle
}

// safeText renders untrusted text as HTML: markup is stripped, entities are normalized, line breaks are kept.
func safeText(str string) string {
	plain := html.UnescapeString(strictPolicy.Sanitize(str))
	return strings.ReplaceAll(html.EscapeString(plain), "\n", "<br/>")
}

func attr(str string) string {
	return html.EscapeString(str)
}

func externalLink(text, href string) string {
	return `<a target="_blank" href="` + attr(href) + `">` + text + `</a>`
}

func cmdLink(text, cmdUrl string, splice bool) string {
	res := `<a class="cmd" data-cmd="` + attr(cmdUrl) + `"`
	if splice {
		res += ` data-splice="1"`
	}
	return res + ">" + text + "</a>"
}
