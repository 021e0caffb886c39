// SPDX-License-Identifier: MIT
// Package: ellers/dsu
//
// registry.go: the Registry and its set operations.
//
// Complexity:
//   • Create, Add, Remove, Contains, Size: O(1) expected.
//   • Merge, Members: O(k log k) for k labels; results are sorted.
//   • Sweep: O(number of sets).

package dsu

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Registry owns the mapping SetID → member labels.
//
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	sets map[SetID]mapset.Set[Label]
	next SetID
}

// NewRegistry returns an empty Registry. Options are applied in order,
// later options override earlier ones.
func NewRegistry(opts ...Option) *Registry {
	cfg := registryConfig{firstID: defaultFirstID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Registry{
		sets: make(map[SetID]mapset.Set[Label], cfg.capacity),
		next: cfg.firstID,
	}
}

// Create allocates a fresh, never-reused SetID with no members.
// Complexity: O(1).
func (r *Registry) Create() SetID {
	id := r.next
	r.next++
	r.sets[id] = mapset.New[Label]()

	return id
}

// Add inserts label into set. Adding a label twice is a no-op.
// Returns ErrUnknownSet if set does not exist.
func (r *Registry) Add(set SetID, label Label) error {
	members, ok := r.sets[set]
	if !ok {
		return unknownSet("Add", set)
	}
	members.Put(label)

	return nil
}

// Remove deletes label from set. Removing an absent label is a no-op, and
// the set stays registered even when it becomes empty.
// Returns ErrUnknownSet if set does not exist.
func (r *Registry) Remove(set SetID, label Label) error {
	members, ok := r.sets[set]
	if !ok {
		return unknownSet("Remove", set)
	}
	members.Remove(label)

	return nil
}

// Merge moves every member of from into to and discards from.
// It returns the labels that changed set, in ascending order, so the caller
// can update the set id recorded on each of them.
//
// Merge(x, x) returns (nil, nil) provided x exists.
// Returns ErrUnknownSet if either id does not exist; in that case no state
// is modified.
//
// Complexity: O(|from| log |from|) because of the sorted result.
func (r *Registry) Merge(from, to SetID) ([]Label, error) {
	src, ok := r.sets[from]
	if !ok {
		return nil, unknownSet("Merge", from)
	}
	dst, ok := r.sets[to]
	if !ok {
		return nil, unknownSet("Merge", to)
	}
	if from == to {
		return nil, nil
	}

	moved := make([]Label, 0, src.Size())
	src.Each(func(l Label) {
		dst.Put(l)
		moved = append(moved, l)
	})
	delete(r.sets, from)
	sortLabels(moved)

	return moved, nil
}

// Members returns a sorted copy of the labels in set.
// An empty set yields an empty, non-nil slice.
func (r *Registry) Members(set SetID) ([]Label, error) {
	members, ok := r.sets[set]
	if !ok {
		return nil, unknownSet("Members", set)
	}
	out := make([]Label, 0, members.Size())
	members.Each(func(l Label) {
		out = append(out, l)
	})
	sortLabels(out)

	return out, nil
}

// Contains reports whether label is a member of set.
func (r *Registry) Contains(set SetID, label Label) (bool, error) {
	members, ok := r.sets[set]
	if !ok {
		return false, unknownSet("Contains", set)
	}

	return members.Has(label), nil
}

// Size returns the number of members of set.
func (r *Registry) Size(set SetID) (int, error) {
	members, ok := r.sets[set]
	if !ok {
		return 0, unknownSet("Size", set)
	}

	return members.Size(), nil
}

// Has reports whether set is currently registered.
func (r *Registry) Has(set SetID) bool {
	_, ok := r.sets[set]
	return ok
}

// Len returns the number of registered sets, empty ones included.
func (r *Registry) Len() int {
	return len(r.sets)
}

// Next returns the id the following Create call will allocate.
func (r *Registry) Next() SetID {
	return r.next
}

// Sweep unregisters every empty set and returns how many were dropped.
// Swept ids are not reused; later references to them fail with ErrUnknownSet.
func (r *Registry) Sweep() int {
	dropped := 0
	for id, members := range r.sets {
		if members.Size() == 0 {
			delete(r.sets, id)
			dropped++
		}
	}

	return dropped
}

// sortLabels orders labels ascending in place.
func sortLabels(ls []Label) {
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
}
