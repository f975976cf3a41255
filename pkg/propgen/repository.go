package propgen

import (
	"github.com/toyz/propgen/internal/errors"
	"github.com/toyz/propgen/internal/typeexpr"
	"github.com/toyz/propgen/internal/typesys"
)

// Repository is the public entry point: a universe, a registry, and a
// resolver behind one surface. Generators are registered once during
// configuration and looked up many times afterwards.
type Repository struct {
	universe *typesys.Universe
	registry *GeneratorRegistry
	resolver *Resolver
	parser   *typeexpr.Parser
	source   *Source
}

// NewRepository creates a repository over the given universe. The
// source drives every random choice made during resolution and value
// production.
func NewRepository(universe *typesys.Universe, source *Source) *Repository {
	registry := NewGeneratorRegistry(universe)
	return &Repository{
		universe: universe,
		registry: registry,
		resolver: NewResolver(registry, universe),
		parser:   typeexpr.NewParser(universe),
		source:   source,
	}
}

// StandardRepository creates a repository over StandardUniverse with
// every builtin generator registered, including one for the filler
// type.
func StandardRepository(source *Source) *Repository {
	repository := NewRepository(StandardUniverse(), source)
	if err := repository.RegisterAll(Builtins()); err != nil {
		// Builtins only declare StandardUniverse types
		panic(err)
	}
	return repository
}

// Universe returns the repository's type universe
func (r *Repository) Universe() *typesys.Universe {
	return r.universe
}

// Source returns the repository's randomness source
func (r *Repository) Source() *Source {
	return r.source
}

// Register indexes a generator under its producible types and their
// supertypes.
func (r *Repository) Register(generator Generator) error {
	return r.registry.Register(generator)
}

// RegisterAll registers each generator in order
func (r *Repository) RegisterAll(generators []Generator) error {
	return r.registry.RegisterAll(generators)
}

// IsEmpty reports whether the repository has no registered generators
func (r *Repository) IsEmpty() bool {
	return r.registry.IsEmpty()
}

// GeneratorFor parses a type expression and resolves it into a
// generator.
func (r *Repository) GeneratorFor(expression string) (Generator, error) {
	descriptor, err := r.parser.Parse(expression)
	if err != nil {
		return nil, err
	}
	return r.resolver.Resolve(descriptor, r.source)
}

// GeneratorForDescriptor resolves an already-built descriptor
func (r *Repository) GeneratorForDescriptor(descriptor *typesys.Descriptor) (Generator, error) {
	return r.resolver.Resolve(descriptor, r.source)
}

// IsUnresolvableType reports whether err is the resolver's hard
// failure: a type with no registered generator and no functional
// adapter.
func IsUnresolvableType(err error) bool {
	return errors.IsUnresolvableType(err)
}
