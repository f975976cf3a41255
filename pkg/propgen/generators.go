package propgen

import "github.com/toyz/propgen/internal/typesys"

// maxSyntheticLength bounds the element count of produced arrays
const maxSyntheticLength = 16

// CompositeGenerator bundles the candidate generators found for one
// resolved request. The choice among candidates is deferred to value
// production time: Produce picks one uniformly with the supplied
// source. Composites are ephemeral resolution results and are not meant
// to be registered.
type CompositeGenerator struct {
	candidates []Generator
}

// NewCompositeGenerator wraps a non-empty candidate list
func NewCompositeGenerator(candidates []Generator) *CompositeGenerator {
	return &CompositeGenerator{candidates: candidates}
}

// Candidates returns the bundled candidate generators in match order
func (g *CompositeGenerator) Candidates() []Generator {
	return append([]Generator(nil), g.candidates...)
}

// Types returns nil; a composite has no declared identity of its own
func (g *CompositeGenerator) Types() []typesys.ID { return nil }

// HasComponents reports false; components belong to the candidates
func (g *CompositeGenerator) HasComponents() bool { return false }

// ComponentArity returns 0
func (g *CompositeGenerator) ComponentArity() int { return 0 }

// BindComponents is a no-op for composites
func (g *CompositeGenerator) BindComponents(components []Generator) {}

// Produce picks one candidate uniformly and produces a value from it
func (g *CompositeGenerator) Produce(source *Source) any {
	return ChooseOne(g.candidates, source).Produce(source)
}

// Copy returns a composite over the same candidates
func (g *CompositeGenerator) Copy() Generator {
	return NewCompositeGenerator(g.candidates)
}

// ArrayGenerator produces slices whose elements come from a resolved
// component generator. The registry is never consulted for the array
// type itself.
type ArrayGenerator struct {
	component *typesys.Type
	elements  Generator
}

// NewArrayGenerator wraps a component generator for the given element type
func NewArrayGenerator(component *typesys.Type, elements Generator) *ArrayGenerator {
	return &ArrayGenerator{component: component, elements: elements}
}

// ComponentType returns the declared element type. It is nil when the
// element is itself an array, which has no declared identity of its
// own; ElementGenerator still carries the full element resolution.
func (g *ArrayGenerator) ComponentType() *typesys.Type { return g.component }

// ElementGenerator returns the generator used for elements
func (g *ArrayGenerator) ElementGenerator() Generator { return g.elements }

// Types returns nil; arrays are synthesized per request, never registered
func (g *ArrayGenerator) Types() []typesys.ID { return nil }

// HasComponents reports false; the element generator is already bound
func (g *ArrayGenerator) HasComponents() bool { return false }

// ComponentArity returns 0
func (g *ArrayGenerator) ComponentArity() int { return 0 }

// BindComponents is a no-op for array generators
func (g *ArrayGenerator) BindComponents(components []Generator) {}

// Produce returns a []any of random length filled from the element generator
func (g *ArrayGenerator) Produce(source *Source) any {
	length := source.Intn(maxSyntheticLength + 1)
	values := make([]any, length)
	for i := range values {
		values[i] = g.elements.Produce(source)
	}
	return values
}

// Copy returns an array generator over the same element generator
func (g *ArrayGenerator) Copy() Generator {
	return NewArrayGenerator(g.component, g.elements)
}

// EnumGenerator produces a uniformly chosen constant of an enum type.
// Enum requests bypass the registry entirely and never fail.
type EnumGenerator struct {
	enum *typesys.Type
}

// NewEnumGenerator creates a generator over the enum's declared constants
func NewEnumGenerator(enum *typesys.Type) *EnumGenerator {
	return &EnumGenerator{enum: enum}
}

// Types returns the enum's identity
func (g *EnumGenerator) Types() []typesys.ID { return []typesys.ID{g.enum.Name} }

// HasComponents reports false
func (g *EnumGenerator) HasComponents() bool { return false }

// ComponentArity returns 0
func (g *EnumGenerator) ComponentArity() int { return 0 }

// BindComponents is a no-op for enum generators
func (g *EnumGenerator) BindComponents(components []Generator) {}

// Produce returns one of the enum's declared constants
func (g *EnumGenerator) Produce(source *Source) any {
	return ChooseOne(g.enum.EnumValues, source)
}

// Copy returns an enum generator over the same type
func (g *EnumGenerator) Copy() Generator {
	return NewEnumGenerator(g.enum)
}

// FuncGenerator is the synthesized adapter for a functional interface:
// it produces a function value whose invocations delegate to a
// generator resolved for the sole abstract method's return type.
type FuncGenerator struct {
	functional *typesys.Type
	delegate   Generator
}

// NewFuncGenerator adapts a delegate generator to a functional type
func NewFuncGenerator(functional *typesys.Type, delegate Generator) *FuncGenerator {
	return &FuncGenerator{functional: functional, delegate: delegate}
}

// Delegate returns the generator backing the synthesized function
func (g *FuncGenerator) Delegate() Generator { return g.delegate }

// Types returns the functional type's identity
func (g *FuncGenerator) Types() []typesys.ID { return []typesys.ID{g.functional.Name} }

// HasComponents reports false
func (g *FuncGenerator) HasComponents() bool { return false }

// ComponentArity returns 0
func (g *FuncGenerator) ComponentArity() int { return 0 }

// BindComponents is a no-op for functional adapters
func (g *FuncGenerator) BindComponents(components []Generator) {}

// Produce returns a func() any; each invocation draws a fresh value
// from the delegate and advances the captured source.
func (g *FuncGenerator) Produce(source *Source) any {
	return func() any {
		return g.delegate.Produce(source)
	}
}

// Copy returns an adapter over the same delegate
func (g *FuncGenerator) Copy() Generator {
	return NewFuncGenerator(g.functional, g.delegate)
}
