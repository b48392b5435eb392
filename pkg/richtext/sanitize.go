package richtext

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// sanitizePolicy is the UGC policy plus the attributes the UBB renderer
// itself emits.
var sanitizePolicy = newSanitizePolicy()

func newSanitizePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("span", "div")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^ubb-(flash|ref)$`)).OnElements("img", "div")
	p.AllowAttrs("data-src").OnElements("img")
	p.AllowStyles("color").OnElements("span")
	return p
}

// Sanitize strips anything from rendered HTML that could run script or
// break the surrounding page.
func Sanitize(html string) string {
	return sanitizePolicy.Sanitize(html)
}
