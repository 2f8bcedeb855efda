package markup

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// Sanitize filters raw markup through a user-generated-content policy:
// formatting elements and links survive, scripts, event handlers and
// javascript: URLs do not.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return fragmentSanitizer().Sanitize(trimmed)
}

// AppendSafe appends raw markup after running it through Sanitize.
func (b *Builder) AppendSafe(raw string) {
	if cleaned := Sanitize(raw); cleaned != "" {
		b.out = append(b.out, cleaned)
	}
}

func fragmentSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.RequireNoFollowOnLinks(true)
		fragmentPolicy = policy
	})
	return fragmentPolicy
}
