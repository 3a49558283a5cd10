package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// Group descriptions may carry limited inline markup; everything else is
// stripped before the value reaches the template as trusted HTML.
func sanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(descriptionSanitizer().Sanitize(trimmed))
}

func descriptionSanitizer() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"a", "abbr", "b", "br", "code", "em", "i", "small", "span", "strong",
		)
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowAttrs("title").OnElements("abbr")
		policy.RequireNoFollowOnLinks(true)

		descriptionPolicy = policy
	})
	return descriptionPolicy
}
