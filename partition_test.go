package wall_maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	t.Run("Starts with singleton groups", func(t *testing.T) {
		p := NewPartition(5)
		for i := 0; i < 5; i++ {
			assert.Equal(t, i, p.Find(i))
		}
		assert.Equal(t, 5, p.Groups())
		assert.False(t, p.IsFullyConnected())
	})

	t.Run("Union merges groups once", func(t *testing.T) {
		p := NewPartition(4)
		assert.True(t, p.Union(0, 1))
		assert.Equal(t, p.Find(0), p.Find(1))
		assert.False(t, p.Union(1, 0))
		assert.Equal(t, 3, p.Groups())
		assert.NotEqual(t, p.Find(0), p.Find(2))
	})

	t.Run("Labels are stable between merges", func(t *testing.T) {
		p := NewPartition(6)
		p.Union(0, 1)
		p.Union(2, 3)
		label := p.Find(3)
		for i := 0; i < 3; i++ {
			assert.Equal(t, label, p.Find(2))
			assert.Equal(t, label, p.Find(3))
		}
	})

	t.Run("Transitive connection", func(t *testing.T) {
		p := NewPartition(4)
		assert.True(t, p.Union(0, 1))
		assert.True(t, p.Union(2, 3))
		assert.True(t, p.Union(1, 2))
		assert.False(t, p.Union(0, 3))
		assert.True(t, p.IsFullyConnected())
		assert.Equal(t, 1, p.Groups())
	})

	t.Run("Single cell is fully connected", func(t *testing.T) {
		assert.True(t, NewPartition(1).IsFullyConnected())
	})
}
