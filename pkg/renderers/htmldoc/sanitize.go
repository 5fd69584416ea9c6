package htmldoc

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// sanitizeFragment strips anything but the line-break markup the renderer
// itself produces from description fragments. Docstrings are author input;
// they are escaped before conversion, and this keeps the |safe fragments safe
// even if a conversion step regresses.
func sanitizeFragment(raw string) string {
	if raw == "" {
		return ""
	}
	return fragmentSanitizer().Sanitize(raw)
}

func fragmentSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("br")
		fragmentPolicy = policy
	})
	return fragmentPolicy
}
