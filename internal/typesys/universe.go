package typesys

import (
	"sync"

	"github.com/toyz/propgen/internal/errors"
)

// Built-in type names present in every Universe
const (
	// ObjectType is the universal root; every declared type is
	// assignable to it.
	ObjectType ID = "Object"

	// CollectionType marks bulk sequence containers. Generators whose
	// first producible type is collection-like are never indexed at the
	// universal root.
	CollectionType ID = "Collection"

	// MapType marks keyed containers, with the same root-suppression
	// treatment as CollectionType.
	MapType ID = "Map"
)

// Universe is an append-only catalog of declared types rooted at Object.
// Callers populate it during configuration; it is the core's only source
// of hierarchy, enum, and functional-interface information.
type Universe struct {
	mu    sync.RWMutex
	types map[ID]*Type

	object     *Type
	collection *Type
	mapping    *Type
}

// NewUniverse creates a universe containing only the built-in root and
// container marker types.
func NewUniverse() *Universe {
	u := &Universe{types: make(map[ID]*Type)}

	u.object = &Type{Name: ObjectType, Kind: KindClass}
	u.types[ObjectType] = u.object

	u.collection = &Type{Name: CollectionType, Kind: KindInterface}
	u.types[CollectionType] = u.collection

	u.mapping = &Type{Name: MapType, Kind: KindInterface}
	u.types[MapType] = u.mapping

	return u
}

// Object returns the universal root type
func (u *Universe) Object() *Type {
	return u.object
}

// Collection returns the collection marker interface
func (u *Universe) Collection() *Type {
	return u.collection
}

// Mapping returns the map marker interface
func (u *Universe) Mapping() *Type {
	return u.mapping
}

// DefineClass declares a class. A nil super means the class extends the
// universal root directly.
func (u *Universe) DefineClass(name ID, super *Type, interfaces ...*Type) (*Type, error) {
	if super == nil {
		super = u.object
	}
	return u.define(&Type{
		Name:       name,
		Kind:       KindClass,
		Super:      super,
		Interfaces: interfaces,
	})
}

// DefineInterface declares an interface embedding the given interfaces
func (u *Universe) DefineInterface(name ID, embeds ...*Type) (*Type, error) {
	return u.define(&Type{
		Name:       name,
		Kind:       KindInterface,
		Interfaces: embeds,
	})
}

// DefineFunctional declares a functional interface whose sole abstract
// method returns the given type.
func (u *Universe) DefineFunctional(name ID, returns *Type, embeds ...*Type) (*Type, error) {
	return u.define(&Type{
		Name:       name,
		Kind:       KindInterface,
		Interfaces: embeds,
		Functional: returns,
	})
}

// DefineEnum declares an enumeration with the given constants
func (u *Universe) DefineEnum(name ID, values ...any) (*Type, error) {
	return u.define(&Type{
		Name:       name,
		Kind:       KindEnum,
		Super:      u.object,
		EnumValues: values,
	})
}

func (u *Universe) define(t *Type) (*Type, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.types[t.Name]; exists {
		return nil, errors.NewTypeDefinitionError(string(t.Name), "type already defined")
	}

	u.types[t.Name] = t
	return t, nil
}

// Lookup returns the type declared under the given name
func (u *Universe) Lookup(name ID) (*Type, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	t, ok := u.types[name]
	return t, ok
}

// MustLookup returns the type declared under the given name, panicking
// if it is absent. Intended for wiring code that defines the type itself.
func (u *Universe) MustLookup(name ID) *Type {
	t, ok := u.Lookup(name)
	if !ok {
		panic("typesys: unknown type " + string(name))
	}
	return t
}

// Hierarchy enumerates t and all of its supertypes: t itself, the
// superclass chain, the root hop for interfaces, and every directly
// implemented interface, transitively. The walk is an explicit work
// queue with a visited set, so a malformed hierarchy containing a cycle
// still terminates.
func (u *Universe) Hierarchy(t *Type) []*Type {
	var result []*Type

	visited := make(map[ID]bool)
	queue := []*Type{t}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current.Name] {
			continue
		}
		visited[current.Name] = true
		result = append(result, current)

		if current.Super != nil {
			queue = append(queue, current.Super)
		} else if current.IsInterface() {
			// Interfaces have no superclass; values of an interface
			// type are still objects.
			queue = append(queue, u.object)
		}
		queue = append(queue, current.Interfaces...)
	}

	return result
}

// Supertypes enumerates every strict supertype of t, always including
// the universal root for any type other than the root itself.
func (u *Universe) Supertypes(t *Type) []*Type {
	all := u.Hierarchy(t)

	result := make([]*Type, 0, len(all))
	for _, candidate := range all {
		if candidate.Name != t.Name {
			result = append(result, candidate)
		}
	}
	return result
}

// AssignableTo reports whether a value of type t can be treated as a
// value of the target type.
func (u *Universe) AssignableTo(t, target *Type) bool {
	for _, candidate := range u.Hierarchy(t) {
		if candidate.Name == target.Name {
			return true
		}
	}
	return false
}
