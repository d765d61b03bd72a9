package ecs

import (
	"iter"
	"reflect"
	"slices"
)

// Archetype stores every entity that has exactly one particular set of component types.
// All columns share slot indices, so slot i of each column belongs to the same entity.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []column
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
	}
	for idx, typ := range types {
		factory := registry.factory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.columns[idx] = factory()
	}
	return a
}

func (a *Archetype) columnIndex(t reflect.Type) int {
	return slices.Index(a.types, t)
}

// spawn appends one entity. components must already be ordered like a.types.
func (a *Archetype) spawn(components []any) uint32 {
	slot := -1
	for idx, comp := range components {
		pos := a.columns[idx].Append(comp)
		if slot == -1 {
			slot = pos
		} else if pos != slot {
			panic("archetype columns out of step")
		}
	}
	return uint32(slot)
}

func (a *Archetype) component(index uint32, t reflect.Type) any {
	idx := a.columnIndex(t)
	if idx == -1 {
		return nil
	}
	return a.columns[idx].Get(int(index))
}

func (a *Archetype) delete(index uint32) bool {
	if len(a.columns) == 0 || !a.columns[0].Has(int(index)) {
		return false
	}
	for _, col := range a.columns {
		col.Delete(int(index))
	}
	return true
}

func (a *Archetype) has(index uint32) bool {
	return len(a.columns) > 0 && a.columns[0].Has(int(index))
}

// ID returns the archetype id.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the component types, sorted by name.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// HasComponent reports whether entities of this archetype carry t.
func (a *Archetype) HasComponent(t reflect.Type) bool {
	return a.columnIndex(t) != -1
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// Iter yields the ids of all live entities in slot order.
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}
