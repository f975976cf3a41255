package propgen

import (
	"math"
	"reflect"

	"github.com/google/uuid"

	"github.com/toyz/propgen/internal/typesys"
)

// Type names declared by StandardUniverse
const (
	IntType    typesys.ID = "Int"
	Int64Type  typesys.ID = "Int64"
	FloatType  typesys.ID = "Float"
	BoolType   typesys.ID = "Bool"
	StringType typesys.ID = "String"
	UUIDType   typesys.ID = "UUID"
	NumberType typesys.ID = "Number"
	ListType   typesys.ID = "List"
)

// stringAlphabet is the character pool for builtin string values
const stringAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// StandardUniverse declares the builtin scalar and container types:
// Number with Int, Int64 and Float beneath it, Bool, String, UUID, and
// List under the Collection marker. Map values are produced directly at
// the builtin Map marker.
func StandardUniverse() *typesys.Universe {
	u := typesys.NewUniverse()

	number, _ := u.DefineInterface(NumberType)
	_, _ = u.DefineClass(IntType, nil, number)
	_, _ = u.DefineClass(Int64Type, nil, number)
	_, _ = u.DefineClass(FloatType, nil, number)
	_, _ = u.DefineClass(BoolType, nil)
	_, _ = u.DefineClass(StringType, nil)
	_, _ = u.DefineClass(UUIDType, nil)
	_, _ = u.DefineClass(ListType, nil, u.Collection())

	return u
}

// Builtins returns fresh instances of the builtin generators, one per
// standard type.
func Builtins() []Generator {
	return []Generator{
		NewIntGenerator(),
		NewInt64Generator(),
		NewFloatGenerator(),
		NewBoolGenerator(),
		NewStringGenerator(),
		NewUUIDGenerator(),
		NewListGenerator(),
		NewMapGenerator(),
	}
}

// ScalarGenerator is a component-free generator producing values of a
// single declared type from a supplied production function.
type ScalarGenerator struct {
	name    typesys.ID
	produce func(source *Source) any
}

// NewScalarGenerator creates a generator for one declared type
func NewScalarGenerator(name typesys.ID, produce func(source *Source) any) *ScalarGenerator {
	return &ScalarGenerator{name: name, produce: produce}
}

// Types returns the single declared type
func (g *ScalarGenerator) Types() []typesys.ID { return []typesys.ID{g.name} }

// HasComponents reports false
func (g *ScalarGenerator) HasComponents() bool { return false }

// ComponentArity returns 0
func (g *ScalarGenerator) ComponentArity() int { return 0 }

// BindComponents is a no-op for scalar generators
func (g *ScalarGenerator) BindComponents(components []Generator) {}

// Produce runs the production function
func (g *ScalarGenerator) Produce(source *Source) any { return g.produce(source) }

// Copy returns a fresh generator with the same declaration
func (g *ScalarGenerator) Copy() Generator {
	return NewScalarGenerator(g.name, g.produce)
}

// NewIntGenerator produces Int values across the int32 range
func NewIntGenerator() *ScalarGenerator {
	return NewScalarGenerator(IntType, func(source *Source) any {
		return source.IntRange(math.MinInt32, math.MaxInt32)
	})
}

// NewInt64Generator produces Int64 values across the full int64 range
func NewInt64Generator() *ScalarGenerator {
	return NewScalarGenerator(Int64Type, func(source *Source) any {
		value := source.Int63()
		if source.Bool() {
			value = -value - 1
		}
		return value
	})
}

// NewFloatGenerator produces Float values in [0, 1)
func NewFloatGenerator() *ScalarGenerator {
	return NewScalarGenerator(FloatType, func(source *Source) any {
		return source.Float64()
	})
}

// NewBoolGenerator produces Bool values
func NewBoolGenerator() *ScalarGenerator {
	return NewScalarGenerator(BoolType, func(source *Source) any {
		return source.Bool()
	})
}

// NewStringGenerator produces short alphanumeric String values
func NewStringGenerator() *ScalarGenerator {
	return NewScalarGenerator(StringType, func(source *Source) any {
		length := source.Intn(maxSyntheticLength + 1)
		buf := make([]byte, length)
		for i := range buf {
			buf[i] = stringAlphabet[source.Intn(len(stringAlphabet))]
		}
		return string(buf)
	})
}

// NewUUIDGenerator produces UUID values drawn from the source, so runs
// under a fixed seed yield the same identifiers.
func NewUUIDGenerator() *ScalarGenerator {
	return NewScalarGenerator(UUIDType, func(source *Source) any {
		id, err := uuid.NewRandomFromReader(source)
		if err != nil {
			return uuid.Nil
		}
		return id
	})
}

// ListGenerator produces List values as []any filled from its single
// component generator. It carries mutable component state, so the
// resolver copies it on every selection.
type ListGenerator struct {
	components []Generator
}

// NewListGenerator creates an unbound List generator
func NewListGenerator() *ListGenerator {
	return &ListGenerator{}
}

// Components returns the bound component generators
func (g *ListGenerator) Components() []Generator { return g.components }

// Types returns the List identity
func (g *ListGenerator) Types() []typesys.ID { return []typesys.ID{ListType} }

// HasComponents reports true; List needs an element generator
func (g *ListGenerator) HasComponents() bool { return true }

// ComponentArity returns 1
func (g *ListGenerator) ComponentArity() int { return 1 }

// BindComponents attaches the element generator
func (g *ListGenerator) BindComponents(components []Generator) {
	g.components = append([]Generator(nil), components...)
}

// Produce returns a []any of random length
func (g *ListGenerator) Produce(source *Source) any {
	if len(g.components) == 0 {
		return []any{}
	}

	length := source.Intn(maxSyntheticLength + 1)
	values := make([]any, length)
	for i := range values {
		values[i] = g.components[0].Produce(source)
	}
	return values
}

// Copy returns a fresh List generator with no bound components
func (g *ListGenerator) Copy() Generator {
	return NewListGenerator()
}

// MapGenerator produces Map values as map[any]any from a key and a
// value component generator. Entries with non-comparable keys are
// skipped rather than panicking.
type MapGenerator struct {
	components []Generator
}

// NewMapGenerator creates an unbound Map generator
func NewMapGenerator() *MapGenerator {
	return &MapGenerator{}
}

// Components returns the bound component generators
func (g *MapGenerator) Components() []Generator { return g.components }

// Types returns the Map identity
func (g *MapGenerator) Types() []typesys.ID { return []typesys.ID{typesys.MapType} }

// HasComponents reports true; Map needs key and value generators
func (g *MapGenerator) HasComponents() bool { return true }

// ComponentArity returns 2
func (g *MapGenerator) ComponentArity() int { return 2 }

// BindComponents attaches the key and value generators in order
func (g *MapGenerator) BindComponents(components []Generator) {
	g.components = append([]Generator(nil), components...)
}

// Produce returns a map[any]any of random size
func (g *MapGenerator) Produce(source *Source) any {
	values := make(map[any]any)
	if len(g.components) < 2 {
		return values
	}

	size := source.Intn(maxSyntheticLength + 1)
	for i := 0; i < size; i++ {
		key := g.components[0].Produce(source)
		if key == nil || !reflect.TypeOf(key).Comparable() {
			continue
		}
		values[key] = g.components[1].Produce(source)
	}
	return values
}

// Copy returns a fresh Map generator with no bound components
func (g *MapGenerator) Copy() Generator {
	return NewMapGenerator()
}
