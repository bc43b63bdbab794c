package shared

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func TruncateWithEllipsis(text string, maxLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := -1
	count := 0
	for i, r := range text {
		if count == maxLen {
			cut := i
			if !unicode.IsSpace(r) && lastSpaceIx > 0 {
				cut = lastSpaceIx
			}
			return strings.TrimRightFunc(text[:cut], unicode.IsSpace) + "…"
		}
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		count++
	}
	return text
}

// LimitRunes returns at most the first n codepoints of text.
func LimitRunes(text string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}

// TweetBrief is the short "@handle: text" label used when quoting a tweet back to the user.
func TweetBrief(handle, text string) string {
	return "@" + handle + ": " + LimitRunes(text, 10)
}
