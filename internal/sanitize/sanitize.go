// Package sanitize cleans author-supplied HTML before it is stored.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// AllowedTags lists the elements that survive sanitization.
var AllowedTags = []string{
	"a", "p", "ul", "ol", "li", "strong", "em", "code", "pre",
	"img", "blockquote", "br", "h2", "h3", "h4",
}

// AllowedProtocols lists the URL schemes permitted in links and images.
var AllowedProtocols = []string{"http", "https"}

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(AllowedTags...)
	p.AllowAttrs("href", "title", "rel", "target").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")
	p.AllowURLSchemes(AllowedProtocols...)
	p.AllowRelativeURLs(true)
	return p
}

// HTML strips every tag, attribute and URL scheme outside the allow-list.
// script and style elements are removed along with their content. Invalid
// UTF-8 is replaced with U+FFFD, as JSON encoding would do to it. The result
// is stable under repeated application.
func HTML(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(strings.ToValidUTF8(s, "\uFFFD"))
}
