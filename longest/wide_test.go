package longest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWide_AddAndNarrow(t *testing.T) {
	v, ok := wideOf(math.MaxInt64).add(1).add(-1).int64()
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), v)

	v, ok = wideOf(math.MinInt64).add(-1).add(5).int64()
	assert.True(t, ok)
	assert.Equal(t, int64(math.MinInt64+4), v)

	_, ok = wideOf(math.MaxInt64).add(1).int64()
	assert.False(t, ok)
	_, ok = wideOf(math.MinInt64).add(-1).int64()
	assert.False(t, ok)

	_, ok = wideOf(math.MaxInt64).add(math.MaxInt64).add(math.MaxInt64).int64()
	assert.False(t, ok)
}

func TestWide_Less(t *testing.T) {
	big := wideOf(math.MaxInt64).add(1)
	small := wideOf(math.MinInt64).add(-1)

	assert.True(t, wideOf(math.MaxInt64).less(big))
	assert.True(t, small.less(wideOf(math.MinInt64)))
	assert.True(t, small.less(big))
	assert.True(t, wideOf(-1).less(wideOf(0)))
	assert.False(t, wideOf(3).less(wideOf(3)))
}
