package docs

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descrPolicyOnce sync.Once
	descrPolicy     *bluemonday.Policy
)

// sanitizeDescription strips any markup that leaked into framework metadata
// so rendered documents stay plain text. Entities are unescaped afterwards
// because the output is not HTML.
func sanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	policy := descrSanitizer()
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(trimmed)))
}

func descrSanitizer() *bluemonday.Policy {
	descrPolicyOnce.Do(func() {
		descrPolicy = bluemonday.StrictPolicy()
	})
	return descrPolicy
}
