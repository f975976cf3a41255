package propgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toyz/propgen/internal/typesys"
)

// stubGenerator is a minimal generator for exercising registration and
// resolution without real value-production logic.
type stubGenerator struct {
	declared   []typesys.ID
	arity      int
	components []Generator
	value      any
}

func newStub(value any, declared ...typesys.ID) *stubGenerator {
	return &stubGenerator{declared: declared, value: value}
}

func newComponentStub(value any, arity int, declared ...typesys.ID) *stubGenerator {
	return &stubGenerator{declared: declared, arity: arity, value: value}
}

func (g *stubGenerator) Types() []typesys.ID { return g.declared }

func (g *stubGenerator) HasComponents() bool { return g.arity > 0 }

func (g *stubGenerator) ComponentArity() int { return g.arity }

func (g *stubGenerator) BindComponents(components []Generator) {
	g.components = append([]Generator(nil), components...)
}

func (g *stubGenerator) Produce(source *Source) any { return g.value }

func (g *stubGenerator) Copy() Generator {
	return &stubGenerator{declared: g.declared, arity: g.arity, value: g.value}
}

// scenarioUniverse declares the hierarchy the resolver tests run
// against: Number above Integer and Double, a List under the Collection
// marker, an enum, a functional interface, and the filler type.
func scenarioUniverse(t *testing.T) *typesys.Universe {
	t.Helper()

	u := typesys.NewUniverse()

	number, err := u.DefineInterface("Number")
	require.NoError(t, err)
	integer, err := u.DefineClass("Integer", nil, number)
	require.NoError(t, err)
	_, err = u.DefineClass("Double", nil, number)
	require.NoError(t, err)
	_, err = u.DefineClass("String", nil)
	require.NoError(t, err)
	_, err = u.DefineClass(FillerType, nil, number)
	require.NoError(t, err)
	_, err = u.DefineClass("List", nil, u.Collection())
	require.NoError(t, err)
	_, err = u.DefineEnum("DayOfWeek", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun")
	require.NoError(t, err)
	_, err = u.DefineFunctional("Comparator", integer)
	require.NoError(t, err)

	return u
}

func lookup(t *testing.T, u *typesys.Universe, name typesys.ID) *typesys.Type {
	t.Helper()

	declared, ok := u.Lookup(name)
	require.True(t, ok, "type %s not declared", name)
	return declared
}

func descriptorFor(t *testing.T, u *typesys.Universe, name typesys.ID, params ...typesys.Parameter) *typesys.Descriptor {
	t.Helper()
	return typesys.DescriptorOf(lookup(t, u, name), params...)
}

// resolveComposite resolves and asserts the result is a composite
func resolveComposite(t *testing.T, resolver *Resolver, descriptor *typesys.Descriptor, source *Source) *CompositeGenerator {
	t.Helper()

	generator, err := resolver.Resolve(descriptor, source)
	require.NoError(t, err)
	composite, ok := generator.(*CompositeGenerator)
	require.True(t, ok, "expected composite, got %T", generator)
	return composite
}
