package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickOne(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		_, ok := PickOne(NewSampler(), []int{})
		assert.False(t, ok)
	})

	t.Run("uses sampler index", func(t *testing.T) {
		s := NewSequenceSampler(nil, []int{2, 0})
		items := []string{"a", "b", "c"}

		got, ok := PickOne[string](s, items)
		assert.True(t, ok)
		assert.Equal(t, "c", got)

		got, _ = PickOne[string](s, items)
		assert.Equal(t, "a", got)
	})

	t.Run("global sampler stays in range", func(t *testing.T) {
		items := []int{10, 20, 30}
		for i := 0; i < 200; i++ {
			got, ok := PickOne(NewSampler(), items)
			assert.True(t, ok)
			assert.Contains(t, items, got)
		}
	})
}

func TestSequenceSampler(t *testing.T) {
	s := NewSequenceSampler([]float64{0.1, 0.9}, []int{7})

	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.9, s.Float64())
	assert.Equal(t, 0.1, s.Float64(), "floats cycle")
	assert.Equal(t, 1, s.IntN(3), "ints are reduced modulo n")

	empty := NewSequenceSampler(nil, nil)
	assert.Equal(t, 0.0, empty.Float64())
	assert.Equal(t, 0, empty.IntN(5))
}

func TestNewSamplerRange(t *testing.T) {
	s := NewSampler()
	for i := 0; i < 100; i++ {
		v := s.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
		n := s.IntN(4)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 4)
	}
}
