// Package propgen resolves arbitrary, possibly generic type requests
// into value-producing generators for property-based testing.
//
// Callers declare a type universe, register generators against it once
// during configuration, and then request generators for type
// expressions such as "List<? extends Number>". The resolver walks the
// declared hierarchy, recurses into type arguments, and returns a
// composite generator ready to produce values from a seeded source.
package propgen

import "github.com/toyz/propgen/internal/typesys"

// Generator is a value-producing unit bound to one or more declared
// types. Implementations must be comparable (pointer receivers) so the
// registry can keep per-type sets unique.
type Generator interface {
	// Types returns the identities this generator can satisfy. The
	// first element is significant: it alone decides whether the
	// generator is suppressed at the universal root during
	// registration.
	Types() []typesys.ID

	// HasComponents reports whether the generator requires component
	// generators before it can produce values.
	HasComponents() bool

	// ComponentArity returns the number of component generators needed
	ComponentArity() int

	// BindComponents attaches component generators in declared order
	BindComponents(components []Generator)

	// Produce generates a value using the given randomness source
	Produce(source *Source) any

	// Copy returns a fresh instance with the same producible-type
	// declaration and no shared component state. The resolver copies
	// every component-bearing candidate before binding, so independent
	// resolutions never alias component holders.
	Copy() Generator
}
