package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every tag; used for all plain-text fields. Script and
// style element content is dropped entirely, not unwrapped.
var strictPolicy = bluemonday.StrictPolicy()

// descriptionPolicy keeps the small formatting allowlist for rich-text job
// descriptions. Link targets must parse and carry an allowed scheme, so a
// javascript: href never survives.
var descriptionPolicy = newDescriptionPolicy()

func newDescriptionPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "b", "strong", "i", "em", "ul", "ol", "li", "blockquote", "pre", "code", "a")
	p.AllowAttrs("href", "name", "target", "rel").OnElements("a")
	p.RequireParseableURLs(true)
	p.AllowURLSchemes("http", "https", "mailto")
	return p
}

// StripTags removes all markup from s and trims surrounding whitespace.
func StripTags(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// CleanDescription sanitizes rich text down to the description allowlist.
func CleanDescription(s string) string {
	return descriptionPolicy.Sanitize(s)
}
