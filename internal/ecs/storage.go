package ecs

import (
	"hash/fnv"
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

type singletonEntry struct {
	typ     reflect.Type
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// Storage owns every archetype and singleton of one world.
type Storage struct {
	archetypes map[uint32]*Archetype
	singletons *intmap.Map[uint64, *singletonEntry]
	registry   *ComponentRegistry
}

// NewStorage creates an empty world whose component types come from registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: make(map[uint32]*Archetype),
		singletons: intmap.New[uint64, *singletonEntry](16),
		registry:   registry,
	}
}

// Registry returns the registry the storage was built with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates an entity from the given component values (or pointers to them).
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types, ordered := sortComponents(components)
	archetype := s.archetypeFor(types)
	return NewEntityId(archetype.id, archetype.spawn(ordered))
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypes(types)
	archetype, ok := s.archetypes[id]
	if !ok {
		archetype = newArchetype(id, types, s.registry)
		s.archetypes[id] = archetype
	}
	return archetype
}

// Delete removes the entity. It reports false if the id was not alive.
func (s *Storage) Delete(id EntityId) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return false
	}
	return archetype.delete(id.Index())
}

// Alive reports whether id names a live entity.
func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	return ok && archetype.has(id.Index())
}

// GetComponent returns a pointer to the entity's component of type t, or nil.
func (s *Storage) GetComponent(id EntityId, t reflect.Type) any {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return archetype.component(id.Index(), t)
}

// HasComponent reports whether the entity's archetype carries t.
func (s *Storage) HasComponent(id EntityId, t reflect.Type) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	return ok && archetype.HasComponent(t)
}

// Count returns the number of live entities.
func (s *Storage) Count() int {
	n := 0
	for _, archetype := range s.archetypes {
		n += archetype.Len()
	}
	return n
}

// AddSingleton stores value as the world-wide instance of its type, replacing any previous one.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)

	s.singletons.Put(typeKey(v.Type()), &singletonEntry{
		typ:     v.Type(),
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	})
}

// ReadSingleton points *target at the singleton of type T. target must be a **T.
func (s *Storage) ReadSingleton(target any) bool {
	out := reflect.ValueOf(target)
	if out.Kind() != reflect.Ptr || out.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}
	entry := s.getSingletonEntry(out.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	out.Elem().Set(entry.value)
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	entry, ok := s.singletons.Get(typeKey(t))
	if !ok {
		return nil
	}
	return entry
}

// ReadComponent is a typed GetComponent.
func ReadComponent[T any](s *Storage, id EntityId) *T {
	comp := s.GetComponent(id, reflect.TypeFor[T]())
	if comp == nil {
		return nil
	}
	return comp.(*T)
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return t
}

// sortComponents orders components by type name, the canonical archetype column order.
func sortComponents(components []any) ([]reflect.Type, []any) {
	idx := make([]int, len(components))
	types := make([]reflect.Type, len(components))
	for i, comp := range components {
		idx[i] = i
		types[i] = componentType(comp)
	}
	sort.Slice(idx, func(a, b int) bool {
		return types[idx[a]].String() < types[idx[b]].String()
	})

	sortedTypes := make([]reflect.Type, len(components))
	sortedComps := make([]any, len(components))
	for i, j := range idx {
		sortedTypes[i] = types[j]
		sortedComps[i] = components[j]
	}
	return sortedTypes, sortedComps
}

func typeKey(t reflect.Type) uint64 {
	return uint64(uintptr(dataPointer(t)))
}

// hashTypes derives an archetype id from a sorted type list.
func hashTypes(types []reflect.Type) uint32 {
	h := fnv.New32a()
	for _, t := range types {
		h.Write([]byte(t.PkgPath()))
		h.Write([]byte{'.'})
		h.Write([]byte(t.String()))
		h.Write([]byte{0})
	}
	return h.Sum32()
}
