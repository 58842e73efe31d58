package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTier(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{1.0, "strong"},
		{0.85, "strong"},
		{0.7, "moderate"},
		{0.6, "moderate"},
		{0.4, "weak"},
		{0.3, "weak"},
		{0.1, "no_signal"},
		{0.0, "no_signal"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyTier(tc.score), "score=%v", tc.score)
	}
}
