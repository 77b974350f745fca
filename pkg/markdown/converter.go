package markdown

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	paragraphPattern = regexp.MustCompile(`(?s)<p>(.*?)</p>`)
	codeBlockPattern = regexp.MustCompile(`(?s)<pre><code(?: class="[^"]*")?>(.*?)</code></pre>`)
	tagPattern       = regexp.MustCompile(`</?([a-zA-Z0-9]+)(?:\s[^>]*)?/?>`)
	newlinesPattern  = regexp.MustCompile(`\n{3,}`)
	listBreakPattern = regexp.MustCompile(`(?:<br\s*/?>\s*)+</li>`)
)

// Tags Telegram accepts in HTML parse mode.
var telegramTags = map[string]bool{
	"b": true, "i": true, "u": true, "s": true,
	"code": true, "pre": true, "a": true,
}

// ToHTML renders a reply for the browser. Raw HTML in the input is dropped
// and single newlines become line breaks, since replies are written as
// plain multi-line text rather than strict markdown.
func ToHTML(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.SkipHTML | blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank,
	})
	html := blackfriday.Run([]byte(text),
		blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.HardLineBreak),
		blackfriday.WithRenderer(renderer),
	)

	return strings.TrimSpace(listBreakPattern.ReplaceAllString(string(html), "</li>"))
}

// ToTelegramHTML converts markdown to Telegram-compatible HTML
func ToTelegramHTML(text string) string {
	if text == "" {
		return ""
	}

	html := string(blackfriday.Run([]byte(text), blackfriday.WithExtensions(blackfriday.CommonExtensions)))

	return cleanHTMLForTelegram(html)
}

// cleanHTMLForTelegram cleans HTML to be compatible with Telegram
func cleanHTMLForTelegram(html string) string {
	html = paragraphPattern.ReplaceAllString(html, "$1\n\n")

	html = strings.ReplaceAll(html, "<strong>", "<b>")
	html = strings.ReplaceAll(html, "</strong>", "</b>")
	html = strings.ReplaceAll(html, "<em>", "<i>")
	html = strings.ReplaceAll(html, "</em>", "</i>")
	html = strings.ReplaceAll(html, "<del>", "<s>")
	html = strings.ReplaceAll(html, "</del>", "</s>")

	html = codeBlockPattern.ReplaceAllString(html, "<pre>$1</pre>")

	// Lists and headings become plain lines
	html = strings.ReplaceAll(html, "<li>", "• ")
	html = strings.ReplaceAll(html, "</li>\n", "\n")
	html = strings.ReplaceAll(html, "</li>", "\n")
	for _, h := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
		html = strings.ReplaceAll(html, "<"+h+">", "<b>")
		html = strings.ReplaceAll(html, "</"+h+">", "</b>\n")
	}

	html = tagPattern.ReplaceAllStringFunc(html, func(match string) string {
		name := tagPattern.FindStringSubmatch(match)[1]
		if telegramTags[strings.ToLower(name)] {
			return match
		}
		return ""
	})

	html = newlinesPattern.ReplaceAllString(html, "\n\n")

	return strings.TrimSpace(html)
}
