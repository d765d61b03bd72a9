package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

type viewField struct {
	typ      reflect.Type
	offset   uintptr
	optional bool
}

// View reads entities through a struct of component pointers.
//
// Every pointer field of T names a component type. Embedded pointer fields are required; named fields
// may be tagged `ecs:"optional"` and are left nil when missing. A field of type EntityId receives the
// entity's id.
type View[T any] struct {
	storage  *Storage
	fields   []viewField
	idOffset uintptr
	hasId    bool
}

// NewView builds a view over storage. It panics if T is not a struct of the shape described on View.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or EntityId")
		}

		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" && !field.Anonymous {
			if tag != "optional" {
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
			optional = true
		}
		v.fields = append(v.fields, viewField{
			typ:      field.Type.Elem(),
			offset:   field.Offset,
			optional: optional,
		})
	}
	return v
}

func (v *View[T]) matches(archetype *Archetype) bool {
	for _, f := range v.fields {
		if !f.optional && !archetype.HasComponent(f.typ) {
			return false
		}
	}
	return true
}

func (v *View[T]) fill(archetype *Archetype, id EntityId, out *T) bool {
	base := unsafe.Pointer(out)
	for _, f := range v.fields {
		slot := (*unsafe.Pointer)(unsafe.Add(base, f.offset))
		comp := archetype.component(id.Index(), f.typ)
		if comp == nil {
			if !f.optional {
				return false
			}
			*slot = nil
			continue
		}
		*slot = dataPointer(comp)
	}
	if v.hasId {
		*(*EntityId)(unsafe.Add(base, v.idOffset)) = id
	}
	return true
}

// Get returns the view of one entity, or nil when it lacks a required component.
func (v *View[T]) Get(id EntityId) *T {
	archetype, ok := v.storage.archetypes[id.ArchetypeId()]
	if !ok || !archetype.has(id.Index()) || !v.matches(archetype) {
		return nil
	}
	var result T
	if !v.fill(archetype, id, &result) {
		return nil
	}
	return &result
}

// Iter yields every matching entity. Archetype order is unspecified; slots within one archetype are
// visited in index order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.archetypes {
			if !v.matches(archetype) {
				continue
			}
			var result T
			for id := range archetype.Iter() {
				if !v.fill(archetype, id, &result) {
					continue
				}
				if !yield(id, result) {
					return
				}
			}
		}
	}
}

// Values is Iter without the ids.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v *View[T]) Count() int {
	n := 0
	for _, archetype := range v.storage.archetypes {
		if v.matches(archetype) {
			n += archetype.Len()
		}
	}
	return n
}
