package render

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	disclaimerPolicyOnce sync.Once
	disclaimerPolicy     *bluemonday.Policy

	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// SanitizeDisclaimer keeps inline emphasis and links, dropping everything
// else.
func SanitizeDisclaimer(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(disclaimerSanitizer().Sanitize(trimmed))
}

// PlainText strips all markup and decodes entities. Used for the text and
// JSON formats.
func PlainText(raw string) string {
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(strings.TrimSpace(raw))))
}

func disclaimerSanitizer() *bluemonday.Policy {
	disclaimerPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("em", "strong", "b", "i", "small", "br")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(true)
		disclaimerPolicy = policy
	})
	return disclaimerPolicy
}
