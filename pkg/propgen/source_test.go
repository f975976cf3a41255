package propgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Reproducible(t *testing.T) {
	first := NewSource(42)
	second := NewSource(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, first.Intn(1000), second.Intn(1000))
	}
}

func TestSource_SeedIsKept(t *testing.T) {
	source := NewSource(1234)
	assert.Equal(t, int64(1234), source.Seed())
}

func TestSource_ZeroSeedUsesClock(t *testing.T) {
	source := NewSource(0)
	assert.NotEqual(t, int64(0), source.Seed())
}

func TestSource_IntnBounds(t *testing.T) {
	source := NewSource(7)

	for i := 0; i < 1000; i++ {
		value := source.Intn(10)
		assert.GreaterOrEqual(t, value, 0)
		assert.Less(t, value, 10)
	}
}

func TestSource_IntRange(t *testing.T) {
	source := NewSource(7)

	for i := 0; i < 1000; i++ {
		value := source.IntRange(-5, 5)
		assert.GreaterOrEqual(t, value, -5)
		assert.LessOrEqual(t, value, 5)
	}

	assert.Equal(t, 3, source.IntRange(3, 3))
}

func TestSource_BoolCoversBothValues(t *testing.T) {
	source := NewSource(7)

	sawTrue, sawFalse := false, false
	for i := 0; i < 100; i++ {
		if source.Bool() {
			sawTrue = true
		} else {
			sawFalse = true
		}
	}
	assert.True(t, sawTrue)
	assert.True(t, sawFalse)
}

func TestSource_Read(t *testing.T) {
	first := NewSource(9)
	second := NewSource(9)

	a := make([]byte, 16)
	b := make([]byte, 16)

	n, err := first.Read(a)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	_, err = second.Read(b)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestChooseOne_Deterministic(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	first := NewSource(11)
	second := NewSource(11)
	for i := 0; i < 50; i++ {
		assert.Equal(t, ChooseOne(items, first), ChooseOne(items, second))
	}
}

func TestChooseOne_CoversAllElements(t *testing.T) {
	items := []int{1, 2, 3}
	source := NewSource(13)

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		seen[ChooseOne(items, source)] = true
	}
	assert.Len(t, seen, len(items))
}

func TestChooseOne_Singleton(t *testing.T) {
	source := NewSource(1)
	assert.Equal(t, "only", ChooseOne([]string{"only"}, source))
}
