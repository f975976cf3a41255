package propgen

import (
	"sync"

	"github.com/toyz/propgen/internal/errors"
	"github.com/toyz/propgen/internal/typesys"
)

// GeneratorRegistry indexes generators by every type they can satisfy.
// Registering a generator walks the declared hierarchy of each of its
// producible types and records the generator at every visited node, so
// a request for an ancestor type finds generators registered against a
// subtype.
//
// The registry is append-only; there is no removal operation.
type GeneratorRegistry struct {
	universe   *typesys.Universe
	generators map[typesys.ID][]Generator
	mu         sync.RWMutex
}

// NewGeneratorRegistry creates an empty registry over the given universe
func NewGeneratorRegistry(universe *typesys.Universe) *GeneratorRegistry {
	return &GeneratorRegistry{
		universe:   universe,
		generators: make(map[typesys.ID][]Generator),
	}
}

// Register indexes a generator under each of its producible types and
// all of their supertypes. It fails if a producible type was never
// declared in the universe.
func (r *GeneratorRegistry) Register(generator Generator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate every producible type before touching any state, so a
	// failed registration leaves the registry untouched.
	producible := make([]*typesys.Type, 0, len(generator.Types()))
	for _, name := range generator.Types() {
		declared, ok := r.universe.Lookup(name)
		if !ok {
			return errors.NewRegistrationError(string(name))
		}
		producible = append(producible, declared)
	}

	for _, declared := range producible {
		r.registerHierarchy(declared, generator)
	}
	return nil
}

// RegisterAll registers each generator in order. Iteration order fixes
// the relative insertion order at shared hierarchy nodes.
func (r *GeneratorRegistry) RegisterAll(generators []Generator) error {
	for _, generator := range generators {
		if err := r.Register(generator); err != nil {
			return err
		}
	}
	return nil
}

// registerHierarchy records the generator at the declared type and at
// every ancestor reachable through the superclass chain and implemented
// interfaces. Callers must hold the write lock.
func (r *GeneratorRegistry) registerHierarchy(declared *typesys.Type, generator Generator) {
	for _, node := range r.universe.Hierarchy(declared) {
		r.registerForType(node, generator)
	}
}

// registerForType records the generator at a single node, preserving
// first-insertion order and skipping duplicates.
func (r *GeneratorRegistry) registerForType(node *typesys.Type, generator Generator) {
	// Do not feed collections or maps to requests for plain objects,
	// including unconstrained type parameters. Only the first declared
	// producible type decides suppression.
	if node.Name == typesys.ObjectType {
		first, ok := r.universe.Lookup(generator.Types()[0])
		if ok && r.isContainerLike(first) {
			return
		}
	}

	forType := r.generators[node.Name]
	for _, existing := range forType {
		if existing == generator {
			return
		}
	}
	r.generators[node.Name] = append(forType, generator)
}

func (r *GeneratorRegistry) isContainerLike(t *typesys.Type) bool {
	return r.universe.AssignableTo(t, r.universe.Collection()) ||
		r.universe.AssignableTo(t, r.universe.Mapping())
}

// IsEmpty reports whether no type has any registered generator
func (r *GeneratorRegistry) IsEmpty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.generators) == 0
}

// HasGeneratorsFor reports whether any generator is indexed under the
// given type identity.
func (r *GeneratorRegistry) HasGeneratorsFor(name typesys.ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.generators[name]
	return exists
}

// GeneratorsFor returns a snapshot of the generators indexed under the
// given type identity, in first-insertion order.
func (r *GeneratorRegistry) GeneratorsFor(name typesys.ID) []Generator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Generator(nil), r.generators[name]...)
}
