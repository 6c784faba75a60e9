// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermFrequencies_Top(t *testing.T) {
	tf := TermFrequencies{{Term: "sanat", Count: 9}, {Term: "eser", Count: 7}, {Term: "cami", Count: 2}}

	tests := []struct {
		name string
		n    int
		want TermFrequencies
	}{
		{name: "prefix", n: 2, want: tf[:2]},
		{name: "more than available", n: 10, want: tf},
		{name: "negative returns all", n: -1, want: tf},
		{name: "zero", n: 0, want: TermFrequencies{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tf.Top(tt.n))
		})
	}

	assert.Equal(t, []string{"sanat", "eser"}, tf.Terms(2))
	assert.Empty(t, TermFrequencies(nil).Top(5))
}
