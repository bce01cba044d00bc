package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRejectsOutOfRangeNode(t *testing.T) {
	assert.Error(t, Init(4096))
}

func TestNewIsMonotonic(t *testing.T) {
	require.NoError(t, Init(7))

	prev := New()
	for i := 0; i < 1000; i++ {
		id := New()
		assert.Greater(t, id.Int64(), prev.Int64())
		assert.Equal(t, int64(7), id.Node())
		prev = id
	}
	assert.NotEmpty(t, NewString())
}
