// Package regid generates human-readable registration identifiers.
package regid

import (
	"strings"

	"github.com/google/uuid"
)

const prefix = "TF2025-"

// New returns an identifier of the form TF2025-XXXXXXXX where the suffix is
// the first 8 hex characters of a random UUID, uppercased.
func New() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(raw[:8])
}

// IsValid reports whether s has the TF2025-XXXXXXXX shape.
func IsValid(s string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	suffix := s[len(prefix):]
	if len(suffix) != 8 {
		return false
	}
	for _, r := range suffix {
		if (r < '0' || r > '9') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
