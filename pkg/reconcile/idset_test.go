package reconcile

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sortedInt64s(ids []int64) []int64 {
	out := append([]int64(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestDifference_ReconcileAddRemoveScenario(t *testing.T) {
	db := toSet([]int64{1, 2, 3})
	esi := toSet([]int64{2, 3, 4})

	toRemove := difference(db, esi)
	toAdd := difference(esi, db)

	assert.Equal(t, []int64{1}, toRemove)
	assert.Equal(t, []int64{4}, toAdd)
}

func TestDifference_EmptySets(t *testing.T) {
	assert.Empty(t, difference(toSet(nil), toSet(nil)))
}

func TestDifference_IdenticalSetsYieldNoDifference(t *testing.T) {
	a := toSet([]int64{1, 2, 3})
	b := toSet([]int64{3, 2, 1})
	assert.Empty(t, difference(a, b))
}

func TestDifference_IsAsymmetric(t *testing.T) {
	a := toSet([]int64{1, 2})
	b := toSet([]int64{2, 3})

	assert.Equal(t, []int64{1}, sortedInt64s(difference(a, b)))
	assert.Equal(t, []int64{3}, sortedInt64s(difference(b, a)))
}

func TestToSet_DeduplicatesInput(t *testing.T) {
	set := toSet([]int64{5, 5, 5})
	assert.Len(t, set, 1)
	_, found := set[5]
	assert.True(t, found)
}
