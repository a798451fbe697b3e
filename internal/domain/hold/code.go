package hold

import (
	"strings"

	"github.com/google/uuid"
)

const codePrefix = "HLD-"

// NewCode draws a short human-readable hold code. Uniqueness is not
// guaranteed here; the store's unique constraint is the authoritative guard
// and callers retry on collision.
func NewCode() string {
	return codePrefix + strings.ToUpper(uuid.NewString()[:8])
}

func IsCode(s string) bool {
	return len(s) == len(codePrefix)+8 && strings.HasPrefix(s, codePrefix)
}
