package dsu_test

import (
	"testing"

	"github.com/katalvlaran/ellers/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreate_MonotonicIDs verifies ids start at 1, grow by one and never repeat,
// even after sets are merged away or swept.
func TestCreate_MonotonicIDs(t *testing.T) {
	r := dsu.NewRegistry()

	a := r.Create()
	b := r.Create()
	assert.Equal(t, dsu.SetID(1), a)
	assert.Equal(t, dsu.SetID(2), b)

	_, err := r.Merge(b, a)
	require.NoError(t, err)
	r.Sweep()

	c := r.Create()
	assert.Equal(t, dsu.SetID(3), c, "merged or swept ids must not be reused")
	assert.Equal(t, dsu.SetID(4), r.Next())
}

// TestWithFirstID verifies the first allocated id honours the option and
// that meaningless ids panic in the option constructor.
func TestWithFirstID(t *testing.T) {
	r := dsu.NewRegistry(dsu.WithFirstID(10), dsu.WithCapacity(4))
	assert.Equal(t, dsu.SetID(10), r.Create())

	assert.Panics(t, func() { dsu.WithFirstID(0) })
	assert.Panics(t, func() { dsu.WithCapacity(-1) })
}

// TestAdd_Idempotent verifies set semantics of the member collection.
func TestAdd_Idempotent(t *testing.T) {
	r := dsu.NewRegistry()
	s := r.Create()

	require.NoError(t, r.Add(s, 7))
	require.NoError(t, r.Add(s, 7))
	require.NoError(t, r.Add(s, 3))

	n, err := r.Size(s)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	members, err := r.Members(s)
	require.NoError(t, err)
	assert.Equal(t, []dsu.Label{3, 7}, members)
}

// TestRemove_KeepsEmptySet verifies that Remove is a no-op for absent labels
// and that an emptied set is still a valid, queryable set.
func TestRemove_KeepsEmptySet(t *testing.T) {
	r := dsu.NewRegistry()
	s := r.Create()
	require.NoError(t, r.Add(s, 1))

	require.NoError(t, r.Remove(s, 42)) // absent
	require.NoError(t, r.Remove(s, 1))

	assert.True(t, r.Has(s))
	members, err := r.Members(s)
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)

	ok, err := r.Contains(s, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestMerge_MovesMembersAndDiscardsSource checks the union contract.
func TestMerge_MovesMembersAndDiscardsSource(t *testing.T) {
	r := dsu.NewRegistry()
	from := r.Create()
	to := r.Create()
	for _, l := range []dsu.Label{5, 1, 3} {
		require.NoError(t, r.Add(from, l))
	}
	require.NoError(t, r.Add(to, 2))
	require.NoError(t, r.Add(to, 3)) // overlap is tolerated

	moved, err := r.Merge(from, to)
	require.NoError(t, err)
	assert.Equal(t, []dsu.Label{1, 3, 5}, moved)

	assert.False(t, r.Has(from))
	members, err := r.Members(to)
	require.NoError(t, err)
	assert.Equal(t, []dsu.Label{1, 2, 3, 5}, members)
	assert.Equal(t, 1, r.Len())
}

// TestMerge_SelfIsNoop verifies Merge(x, x) leaves the set untouched.
func TestMerge_SelfIsNoop(t *testing.T) {
	r := dsu.NewRegistry()
	s := r.Create()
	require.NoError(t, r.Add(s, 9))

	moved, err := r.Merge(s, s)
	require.NoError(t, err)
	assert.Nil(t, moved)
	assert.True(t, r.Has(s))

	n, err := r.Size(s)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestUnknownSet_FailsFast verifies every operation rejects ids that were
// never allocated or no longer exist, and that a failed Merge mutates nothing.
func TestUnknownSet_FailsFast(t *testing.T) {
	r := dsu.NewRegistry()
	s := r.Create()
	require.NoError(t, r.Add(s, 1))
	const ghost = dsu.SetID(99)

	assert.ErrorIs(t, r.Add(ghost, 1), dsu.ErrUnknownSet)
	assert.ErrorIs(t, r.Remove(ghost, 1), dsu.ErrUnknownSet)

	_, err := r.Members(ghost)
	assert.ErrorIs(t, err, dsu.ErrUnknownSet)
	assert.EqualError(t, err, "dsu: unknown set: Members(99)")
	_, err = r.Contains(ghost, 1)
	assert.ErrorIs(t, err, dsu.ErrUnknownSet)
	_, err = r.Size(ghost)
	assert.ErrorIs(t, err, dsu.ErrUnknownSet)

	_, err = r.Merge(s, ghost)
	assert.ErrorIs(t, err, dsu.ErrUnknownSet)
	assert.True(t, r.Has(s), "failed merge must not discard the source")
	_, err = r.Merge(ghost, s)
	assert.ErrorIs(t, err, dsu.ErrUnknownSet)
}

// TestSweep_DropsOnlyEmptySets verifies Sweep keeps populated sets.
func TestSweep_DropsOnlyEmptySets(t *testing.T) {
	r := dsu.NewRegistry()
	full := r.Create()
	empty1 := r.Create()
	empty2 := r.Create()
	require.NoError(t, r.Add(full, 0))

	assert.Equal(t, 2, r.Sweep())
	assert.True(t, r.Has(full))
	assert.False(t, r.Has(empty1))
	assert.False(t, r.Has(empty2))
	assert.Equal(t, 0, r.Sweep())

	_, err := r.Members(empty1)
	assert.ErrorIs(t, err, dsu.ErrUnknownSet)
}
