package longest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longest"
)

func edges(defs ...[3]int) []core.Edge {
	res := make([]core.Edge, len(defs))
	for i, s := range defs {
		res[i] = core.Edge{ID: i, From: s[0], To: s[1], Weight: int64(s[2])}
	}

	return res
}

func TestReconstruct_GreedyByDistance(t *testing.T) {
	es := edges([3]int{0, 1, 1}, [3]int{0, 2, 2}, [3]int{1, 2, -3}, [3]int{1, 3, 4}, [3]int{2, 3, 5})
	dist := []longest.Distance{longest.Finite(0), longest.Finite(1), longest.Finite(2), longest.Finite(7)}
	reach := []bool{true, true, true, true}

	path, w, err := longest.Reconstruct(es, 0, dist, reach)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, path)
	assert.Equal(t, int64(7), w)
}

func TestReconstruct_UnreachedTargetsSkipped(t *testing.T) {
	es := edges([3]int{0, 1, 9}, [3]int{0, 2, 1})
	dist := []longest.Distance{longest.Finite(0), {}, longest.Finite(1)}
	reach := []bool{true, false, true}

	path, w, err := longest.Reconstruct(es, 0, dist, reach)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, path)
	assert.Equal(t, int64(1), w)
}

func TestReconstruct_UnreachableSourceIgnored(t *testing.T) {
	// start itself flagged unreachable: its edges never qualify
	es := edges([3]int{0, 1, 1})
	dist := []longest.Distance{longest.Finite(0), longest.Finite(1)}

	path, _, err := longest.Reconstruct(es, 0, dist, []bool{false, true})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

func TestReconstruct_RevisitFails(t *testing.T) {
	// a table that bypassed the cycle check: 0⇄1 with both targets reached
	es := edges([3]int{0, 1, 5}, [3]int{1, 0, 5})
	dist := []longest.Distance{longest.Finite(10), longest.Finite(5)}
	reach := []bool{true, true}

	path, _, err := longest.Reconstruct(es, 0, dist, reach)
	assert.Nil(t, path)
	assert.ErrorIs(t, err, longest.ErrInconsistentPath)
}

func TestReconstruct_BadInput(t *testing.T) {
	dist := []longest.Distance{longest.Finite(0), longest.Finite(1)}

	cases := []struct {
		name  string
		es    []core.Edge
		start int
		reach []bool
	}{
		{"length mismatch", nil, 0, []bool{true}},
		{"start negative", nil, -1, []bool{true, true}},
		{"start too large", nil, 2, []bool{true, true}},
		{"edge target outside", edges([3]int{0, 5, 1}), 0, []bool{true, true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := longest.Reconstruct(tc.es, tc.start, dist, tc.reach)
			assert.ErrorIs(t, err, longest.ErrInconsistentPath)
		})
	}
}
