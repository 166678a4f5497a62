package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	got, err := Generate(16)
	require.NoError(t, err)
	assert.Len(t, got, 16)
	for _, r := range got {
		assert.True(t, strings.ContainsRune(alphabet, r))
	}
}

func TestGenerate_DefaultLength(t *testing.T) {
	got, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := MustGenerate(16)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
