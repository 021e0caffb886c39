// SPDX-License-Identifier: MIT
// Package: ellers/dsu
//
// types.go: identities, options and the sentinel error of the set registry.
//
// Contract:
//   • SetIDs start at 1 (WithFirstID) and are never reused.
//   • Option constructors PANIC on meaningless input.
//   • Operations on an unknown set return ErrUnknownSet and mutate nothing.

package dsu

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownSet indicates an operation referenced a SetID the registry never
// allocated, or one that was already merged away or swept.
var ErrUnknownSet = errors.New("dsu: unknown set")

// Label is the process-unique identity of a maze cell.
type Label int

// SetID identifies one disjoint set. Zero is never allocated.
type SetID int

// String renders the id the way it is printed in maze rows.
func (id SetID) String() string {
	return strconv.Itoa(int(id))
}

// defaultFirstID is the first identifier handed out by Create.
const defaultFirstID SetID = 1

// registryConfig holds the resolved options of NewRegistry.
type registryConfig struct {
	firstID  SetID
	capacity int
}

// Option customizes a Registry before its first allocation.
type Option func(*registryConfig)

// WithFirstID sets the first SetID returned by Create.
// Panics if id < 1: zero is reserved so that a zero-value SetID never
// aliases a live set.
func WithFirstID(id SetID) Option {
	if id < 1 {
		panic("dsu: WithFirstID(id<1)")
	}
	return func(c *registryConfig) {
		c.firstID = id
	}
}

// WithCapacity pre-sizes the internal set table. Panics on a negative hint.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("dsu: WithCapacity(n<0)")
	}
	return func(c *registryConfig) {
		c.capacity = n
	}
}

// unknownSet wraps ErrUnknownSet with the calling method and the offending id.
func unknownSet(method string, id SetID) error {
	return fmt.Errorf("%w: %s(%d)", ErrUnknownSet, method, int(id))
}
