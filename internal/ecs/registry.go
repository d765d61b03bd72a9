package ecs

import (
	"iter"
	"reflect"
)

// column is a type-erased store for one component type inside an archetype.
type column interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}

// ComponentRegistry records how to build a column for every component type a Storage may hold.
// Registries are per Storage, so independent worlds never share type tables.
type ComponentRegistry struct {
	factories map[reflect.Type]func() column
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent makes T usable as a component. It must be called before T is spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() column {
		return &chunkedColumn[T]{}
	}
}

// Registered reports whether t has a column factory.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) factory(t reflect.Type) func() column {
	return r.factories[t]
}

const chunkSize = 64

type chunk[T any] struct {
	items  [chunkSize]T
	filled [chunkSize]bool
}

// chunkedColumn keeps components in fixed-size chunks held by pointer, so a pointer returned by Get
// stays valid while the slot is alive even when later appends grow the column.
type chunkedColumn[T any] struct {
	chunks    []*chunk[T]
	freeSlots []int
	nextIndex int
	live      int
}

func (c *chunkedColumn[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(c.freeSlots); n > 0 {
		index = c.freeSlots[n-1]
		c.freeSlots = c.freeSlots[:n-1]
	} else {
		index = c.nextIndex
		c.nextIndex++
		if index/chunkSize >= len(c.chunks) {
			c.chunks = append(c.chunks, &chunk[T]{})
		}
	}

	ch := c.chunks[index/chunkSize]
	ch.items[index%chunkSize] = value
	ch.filled[index%chunkSize] = true
	c.live++
	return index
}

func (c *chunkedColumn[T]) slot(index int) (*chunk[T], int, bool) {
	if index < 0 || index >= c.nextIndex {
		return nil, 0, false
	}
	ch := c.chunks[index/chunkSize]
	return ch, index % chunkSize, ch.filled[index%chunkSize]
}

func (c *chunkedColumn[T]) Get(index int) any {
	ch, i, ok := c.slot(index)
	if !ok {
		return nil
	}
	return &ch.items[i]
}

func (c *chunkedColumn[T]) Has(index int) bool {
	_, _, ok := c.slot(index)
	return ok
}

func (c *chunkedColumn[T]) Delete(index int) {
	ch, i, ok := c.slot(index)
	if !ok {
		return
	}
	var zero T
	ch.items[i] = zero
	ch.filled[i] = false
	c.freeSlots = append(c.freeSlots, index)
	c.live--
}

func (c *chunkedColumn[T]) Len() int {
	return c.live
}

func (c *chunkedColumn[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.nextIndex; i++ {
			if !c.chunks[i/chunkSize].filled[i%chunkSize] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
