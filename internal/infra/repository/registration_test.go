//go:build unit

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateFieldNames(t *testing.T) {
	testCases := []struct {
		name        string
		emailDup    bool
		whatsappDup bool
		expected    []string
	}{
		{
			name:     "no duplicates",
			expected: nil,
		},
		{
			name:     "email only",
			emailDup: true,
			expected: []string{"email"},
		},
		{
			name:        "whatsapp only",
			whatsappDup: true,
			expected:    []string{"whatsapp"},
		},
		{
			// The same person re-registering matches both fields on one
			// row; both must be reported.
			name:        "same row matches both fields",
			emailDup:    true,
			whatsappDup: true,
			expected:    []string{"email", "whatsapp"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, duplicateFieldNames(tc.emailDup, tc.whatsappDup))
		})
	}
}
