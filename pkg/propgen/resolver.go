package propgen

import (
	"github.com/toyz/propgen/internal/errors"
	"github.com/toyz/propgen/internal/typesys"
)

// FillerType is the default substitute for type parameters that carry
// no usable bound information (unbounded wildcards and raw container
// requests). It must be declared in the universe and have a registered
// generator before such requests can resolve.
const FillerType = IntType

// Resolver turns type descriptors into composite generators by
// consulting a registry and recursing into type arguments. Resolution
// is synchronous and re-entrant; the randomness source is threaded
// explicitly through the whole call graph.
type Resolver struct {
	registry *GeneratorRegistry
	universe *typesys.Universe
}

// NewResolver creates a resolver over the given registry and universe
func NewResolver(registry *GeneratorRegistry, universe *typesys.Universe) *Resolver {
	return &Resolver{
		registry: registry,
		universe: universe,
	}
}

// Resolve returns a generator for the described type, allowing mixed
// candidates. It fails only when a raw type has no registered generator
// and is not adaptable as a functional interface.
func (r *Resolver) Resolve(descriptor *typesys.Descriptor, source *Source) (Generator, error) {
	return r.resolve(descriptor, source, true)
}

func (r *Resolver) resolve(descriptor *typesys.Descriptor, source *Source, allowMixed bool) (Generator, error) {
	if descriptor.Array {
		elements, err := r.resolve(descriptor.Component, source, true)
		if err != nil {
			return nil, err
		}
		return NewArrayGenerator(rawOf(descriptor.Component), elements), nil
	}

	if descriptor.IsEnum() {
		return NewEnumGenerator(descriptor.Raw), nil
	}

	matches, err := r.findMatching(descriptor.Raw, source, allowMixed)
	if err != nil {
		return nil, err
	}

	// Parameter generators are resolved once per request, independent
	// of which candidates were found.
	forComponents := make([]Generator, 0, len(descriptor.Parameters))
	for _, parameter := range descriptor.Parameters {
		resolved, err := r.resolveParameter(parameter, source)
		if err != nil {
			return nil, err
		}
		forComponents = append(forComponents, resolved)
	}

	for _, match := range matches {
		if err := r.applyComponents(match, forComponents, source); err != nil {
			return nil, err
		}
	}

	return NewCompositeGenerator(matches), nil
}

// findMatching returns the candidate generators for a raw type. When the
// registry has no entry, a functional interface falls back to a
// synthesized adapter; anything else is unresolvable.
func (r *Resolver) findMatching(raw *typesys.Type, source *Source, allowMixed bool) ([]Generator, error) {
	if !r.registry.HasGeneratorsFor(raw.Name) {
		if raw.IsFunctional() {
			delegate, err := r.Resolve(typesys.DescriptorOf(raw.Functional), source)
			if err != nil {
				return nil, err
			}
			return []Generator{NewFuncGenerator(raw, delegate)}, nil
		}
		return nil, errors.NewUnresolvableTypeError(string(raw.Name))
	}

	matches := r.registry.GeneratorsFor(raw.Name)
	if !allowMixed {
		matches = []Generator{ChooseOne(matches, source)}
	}

	// Component-bearing candidates are copied before binding so two
	// independent resolutions never share component-holder state.
	copies := make([]Generator, 0, len(matches))
	for _, match := range matches {
		if match.HasComponents() {
			match = match.Copy()
		}
		copies = append(copies, match)
	}
	return copies, nil
}

// resolveParameter resolves one variance-tagged type argument
func (r *Resolver) resolveParameter(parameter typesys.Parameter, source *Source) (Generator, error) {
	switch parameter.Variance {
	case typesys.Exact:
		return r.resolve(parameter.Bound, source, true)

	case typesys.Unbounded:
		// A wildcard with no bound carries no type information; fall
		// back to the filler type.
		return r.resolveFiller(source)

	case typesys.UpperBounded:
		// Mixing generators for different subtypes under one upper
		// bound would produce inconsistent composites, so exactly one
		// concrete generator is chosen.
		return r.resolve(parameter.Bound, source, false)

	default: // typesys.LowerBounded
		supertypes := r.universe.Supertypes(parameter.Bound.Raw)
		if len(supertypes) == 0 {
			// The universal root has no strict supertype to substitute
			return nil, errors.NewUnresolvableTypeError(string(parameter.Bound.Raw.Name))
		}
		chosen := ChooseOne(supertypes, source)
		return r.resolve(typesys.DescriptorOf(chosen), source, false)
	}
}

// applyComponents binds component generators to a candidate that needs
// them. A raw request without explicit type arguments gets filler
// components, one per needed slot.
func (r *Resolver) applyComponents(generator Generator, forComponents []Generator, source *Source) error {
	if !generator.HasComponents() {
		return nil
	}

	if len(forComponents) == 0 {
		substitutes := make([]Generator, 0, generator.ComponentArity())
		for i := 0; i < generator.ComponentArity(); i++ {
			filler, err := r.resolveFiller(source)
			if err != nil {
				return err
			}
			substitutes = append(substitutes, filler)
		}
		generator.BindComponents(substitutes)
		return nil
	}

	generator.BindComponents(forComponents)
	return nil
}

func (r *Resolver) resolveFiller(source *Source) (Generator, error) {
	filler, ok := r.universe.Lookup(FillerType)
	if !ok {
		return nil, errors.NewUnresolvableTypeError(string(FillerType))
	}
	return r.Resolve(typesys.DescriptorOf(filler), source)
}

// rawOf returns the descriptor's raw identity, or nil for an array
// descriptor, which has none.
func rawOf(descriptor *typesys.Descriptor) *typesys.Type {
	if descriptor.Array {
		return nil
	}
	return descriptor.Raw
}
