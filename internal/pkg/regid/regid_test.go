//go:build unit

package regid_test

import (
	"strings"
	"testing"

	"techfest-backend/internal/pkg/regid"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	id := regid.New()

	assert.True(t, strings.HasPrefix(id, "TF2025-"))
	assert.Len(t, id, len("TF2025-")+8)
	assert.Equal(t, strings.ToUpper(id), id)
	assert.True(t, regid.IsValid(id))
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := regid.New()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		id    string
		valid bool
	}{
		{"TF2025-1A2B3C4D", true},
		{"TF2025-ABCDEF01", true},
		{"tf2025-1a2b3c4d", false},
		{"TF2025-1A2B3C", false},
		{"TF2024-1A2B3C4D", false},
		{"TF2025-GHIJKLMN", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, regid.IsValid(tc.id), tc.id)
	}
}
