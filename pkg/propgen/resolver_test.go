package propgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/propgen/internal/typesys"
)

func newTestResolver(t *testing.T) (*Resolver, *GeneratorRegistry, *typesys.Universe) {
	t.Helper()

	u := scenarioUniverse(t)
	registry := NewGeneratorRegistry(u)
	return NewResolver(registry, u), registry, u
}

func TestResolver_DirectResolution(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	g1 := newStub(1, "Integer")
	require.NoError(t, registry.Register(g1))

	composite := resolveComposite(t, resolver, descriptorFor(t, u, "Integer"), source)
	assert.Equal(t, []Generator{g1}, composite.Candidates())
}

func TestResolver_AncestorResolution(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	g1 := newStub(1, "Integer")
	require.NoError(t, registry.Register(g1))

	// Superclass/interface propagation makes the generator resolvable
	// at every ancestor.
	composite := resolveComposite(t, resolver, descriptorFor(t, u, "Number"), source)
	assert.Equal(t, []Generator{g1}, composite.Candidates())

	composite = resolveComposite(t, resolver, descriptorFor(t, u, typesys.ObjectType), source)
	assert.Equal(t, []Generator{g1}, composite.Candidates())
}

func TestResolver_ObjectRequestSkipsContainers(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	g1 := newStub(1, "Integer")
	listGen := newComponentStub(nil, 1, "List")
	require.NoError(t, registry.RegisterAll([]Generator{listGen, g1}))

	composite := resolveComposite(t, resolver, descriptorFor(t, u, typesys.ObjectType), source)
	assert.Equal(t, []Generator{g1}, composite.Candidates())
}

func TestResolver_Array(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	g1 := newStub(7, "Integer")
	require.NoError(t, registry.Register(g1))

	generator, err := resolver.Resolve(typesys.ArrayOf(descriptorFor(t, u, "Integer")), source)
	require.NoError(t, err)

	array, ok := generator.(*ArrayGenerator)
	require.True(t, ok, "expected array generator, got %T", generator)
	assert.Equal(t, lookup(t, u, "Integer"), array.ComponentType())

	elements, ok := array.ElementGenerator().(*CompositeGenerator)
	require.True(t, ok)
	assert.Equal(t, []Generator{g1}, elements.Candidates())

	values, ok := array.Produce(source).([]any)
	require.True(t, ok)
	for _, value := range values {
		assert.Equal(t, 7, value)
	}
}

func TestResolver_Enum(t *testing.T) {
	resolver, _, u := newTestResolver(t)
	source := NewSource(1)

	// Nothing registered: enum requests bypass the registry entirely
	generator, err := resolver.Resolve(descriptorFor(t, u, "DayOfWeek"), source)
	require.NoError(t, err)

	enum, ok := generator.(*EnumGenerator)
	require.True(t, ok, "expected enum generator, got %T", generator)

	day := lookup(t, u, "DayOfWeek")
	for i := 0; i < 50; i++ {
		assert.Contains(t, day.EnumValues, enum.Produce(source))
	}
}

func TestResolver_UnresolvableType(t *testing.T) {
	resolver, _, u := newTestResolver(t)
	source := NewSource(1)

	_, err := resolver.Resolve(descriptorFor(t, u, "String"), source)
	require.Error(t, err)
	assert.True(t, IsUnresolvableType(err))
	assert.Contains(t, err.Error(), "String")
}

func TestResolver_FunctionalFallback(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	g1 := newStub(42, "Integer")
	require.NoError(t, registry.Register(g1))

	// Comparator has no registered generator; its sole abstract method
	// returns Integer, which does.
	composite := resolveComposite(t, resolver, descriptorFor(t, u, "Comparator"), source)
	require.Len(t, composite.Candidates(), 1)

	adapter, ok := composite.Candidates()[0].(*FuncGenerator)
	require.True(t, ok, "expected functional adapter, got %T", composite.Candidates()[0])

	delegate, ok := adapter.Delegate().(*CompositeGenerator)
	require.True(t, ok)
	assert.Equal(t, []Generator{g1}, delegate.Candidates())

	fn, ok := adapter.Produce(source).(func() any)
	require.True(t, ok)
	assert.Equal(t, 42, fn())
}

func TestResolver_FunctionalFallbackWithParameters(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	g1 := newStub(42, "Integer")
	stringGen := newStub("s", "String")
	require.NoError(t, registry.RegisterAll([]Generator{g1, stringGen}))

	composite := resolveComposite(t, resolver,
		descriptorFor(t, u, "Comparator", typesys.ExactParam(descriptorFor(t, u, "String"))), source)
	require.Len(t, composite.Candidates(), 1)
	assert.IsType(t, &FuncGenerator{}, composite.Candidates()[0])
}

func TestResolver_FunctionalFallbackNeedsResolvableReturnType(t *testing.T) {
	resolver, _, u := newTestResolver(t)
	source := NewSource(1)

	// The adapter delegates to the method's return type; with nothing
	// registered for Integer the fallback fails too.
	_, err := resolver.Resolve(descriptorFor(t, u, "Comparator"), source)
	require.Error(t, err)
	assert.True(t, IsUnresolvableType(err))
}

func TestResolver_RegisteredGeneratorBeatsFunctionalFallback(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	direct := newStub("cmp", "Comparator")
	require.NoError(t, registry.Register(direct))

	composite := resolveComposite(t, resolver, descriptorFor(t, u, "Comparator"), source)
	assert.Equal(t, []Generator{direct}, composite.Candidates())
}

func TestResolver_MixedCandidates(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	g3 := newStub(3, "Integer")
	g4 := newStub(4.0, "Double")
	require.NoError(t, registry.RegisterAll([]Generator{g3, g4}))

	composite := resolveComposite(t, resolver, descriptorFor(t, u, "Number"), source)
	assert.Equal(t, []Generator{g3, g4}, composite.Candidates())
}

func TestResolver_UpperBoundedParameterForcesSingleChoice(t *testing.T) {
	resolver, registry, u := newTestResolver(t)

	g3 := newStub(3, "Integer")
	g4 := newStub(4.0, "Double")
	listGen := newComponentStub(nil, 1, "List")
	require.NoError(t, registry.RegisterAll([]Generator{g3, g4, listGen}))

	descriptor := descriptorFor(t, u, "List",
		typesys.ExtendsParam(descriptorFor(t, u, "Number")))

	sawG3, sawG4 := false, false
	for seed := int64(1); seed <= 40; seed++ {
		source := NewSource(seed)
		composite := resolveComposite(t, resolver, descriptor, source)
		require.Len(t, composite.Candidates(), 1)

		bound, ok := composite.Candidates()[0].(*stubGenerator)
		require.True(t, ok)
		require.Len(t, bound.components, 1)

		component, ok := bound.components[0].(*CompositeGenerator)
		require.True(t, ok)
		// Exactly one concrete generator, never a mix
		require.Len(t, component.Candidates(), 1)
		switch component.Candidates()[0] {
		case Generator(g3):
			sawG3 = true
		case Generator(g4):
			sawG4 = true
		default:
			t.Fatalf("unexpected candidate %v", component.Candidates()[0])
		}
	}
	assert.True(t, sawG3, "Integer generator never chosen across seeds")
	assert.True(t, sawG4, "Double generator never chosen across seeds")
}

func TestResolver_ExactParameterAllowsMix(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	g3 := newStub(3, "Integer")
	g4 := newStub(4.0, "Double")
	listGen := newComponentStub(nil, 1, "List")
	require.NoError(t, registry.RegisterAll([]Generator{g3, g4, listGen}))

	composite := resolveComposite(t, resolver, descriptorFor(t, u, "List",
		typesys.ExactParam(descriptorFor(t, u, "Number"))), source)

	bound := composite.Candidates()[0].(*stubGenerator)
	require.Len(t, bound.components, 1)
	component := bound.components[0].(*CompositeGenerator)
	assert.Equal(t, []Generator{g3, g4}, component.Candidates())
}

func TestResolver_UnboundedWildcardUsesFiller(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	fillerGen := newStub(0, FillerType)
	listGen := newComponentStub(nil, 1, "List")
	require.NoError(t, registry.RegisterAll([]Generator{fillerGen, listGen}))

	composite := resolveComposite(t, resolver, descriptorFor(t, u, "List",
		typesys.WildcardParam()), source)

	bound := composite.Candidates()[0].(*stubGenerator)
	require.Len(t, bound.components, 1)
	component := bound.components[0].(*CompositeGenerator)
	assert.Equal(t, []Generator{fillerGen}, component.Candidates())
}

func TestResolver_LowerBoundedParameterChoosesSupertype(t *testing.T) {
	resolver, registry, u := newTestResolver(t)

	g1 := newStub(1, "Integer")
	listGen := newComponentStub(nil, 1, "List")
	require.NoError(t, registry.RegisterAll([]Generator{g1, listGen}))

	descriptor := descriptorFor(t, u, "List",
		typesys.SuperParam(descriptorFor(t, u, "Integer")))

	// Supertypes of Integer are Number and Object; g1 propagated to
	// both, so any choice resolves to g1 alone.
	for seed := int64(1); seed <= 10; seed++ {
		source := NewSource(seed)
		composite := resolveComposite(t, resolver, descriptor, source)

		bound := composite.Candidates()[0].(*stubGenerator)
		require.Len(t, bound.components, 1)
		component := bound.components[0].(*CompositeGenerator)
		assert.Equal(t, []Generator{g1}, component.Candidates())
	}
}

func TestResolver_LowerBoundOnRootIsUnresolvable(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	g1 := newStub(1, "Integer")
	listGen := newComponentStub(nil, 1, "List")
	require.NoError(t, registry.RegisterAll([]Generator{g1, listGen}))

	// Object has no strict supertype to substitute for the bound
	_, err := resolver.Resolve(descriptorFor(t, u, "List",
		typesys.SuperParam(descriptorFor(t, u, typesys.ObjectType))), source)
	require.Error(t, err)
	assert.True(t, IsUnresolvableType(err))
	assert.Contains(t, err.Error(), string(typesys.ObjectType))
}

func TestResolver_NestedArrayComponentType(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	g1 := newStub(7, "Integer")
	require.NoError(t, registry.Register(g1))

	generator, err := resolver.Resolve(
		typesys.ArrayOf(typesys.ArrayOf(descriptorFor(t, u, "Integer"))), source)
	require.NoError(t, err)

	outer, ok := generator.(*ArrayGenerator)
	require.True(t, ok)
	// An array element has no declared identity of its own
	assert.Nil(t, outer.ComponentType())

	inner, ok := outer.ElementGenerator().(*ArrayGenerator)
	require.True(t, ok)
	assert.Equal(t, lookup(t, u, "Integer"), inner.ComponentType())
}

func TestResolver_RawRequestSynthesizesFillerComponents(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	fillerGen := newStub(0, FillerType)
	listGen := newComponentStub(nil, 1, "List")
	require.NoError(t, registry.RegisterAll([]Generator{fillerGen, listGen}))

	// Raw List request: exactly arity-many filler components
	composite := resolveComposite(t, resolver, descriptorFor(t, u, "List"), source)

	bound := composite.Candidates()[0].(*stubGenerator)
	require.Len(t, bound.components, 1)
	component := bound.components[0].(*CompositeGenerator)
	assert.Equal(t, []Generator{fillerGen}, component.Candidates())
}

func TestResolver_RawRequestHonorsArity(t *testing.T) {
	u := scenarioUniverse(t)
	_, err := u.DefineClass("Pair", nil)
	require.NoError(t, err)

	registry := NewGeneratorRegistry(u)
	resolver := NewResolver(registry, u)
	source := NewSource(1)

	fillerGen := newStub(0, FillerType)
	pairGen := newComponentStub(nil, 2, "Pair")
	require.NoError(t, registry.RegisterAll([]Generator{fillerGen, pairGen}))

	composite := resolveComposite(t, resolver, descriptorFor(t, u, "Pair"), source)

	bound := composite.Candidates()[0].(*stubGenerator)
	assert.Len(t, bound.components, 2)
}

func TestResolver_CopyOnSelect(t *testing.T) {
	resolver, registry, u := newTestResolver(t)
	source := NewSource(1)

	g1 := newStub(1, "Integer")
	listGen := newComponentStub(nil, 1, "List")
	require.NoError(t, registry.RegisterAll([]Generator{g1, listGen}))

	descriptor := descriptorFor(t, u, "List",
		typesys.ExactParam(descriptorFor(t, u, "Integer")))

	first := resolveComposite(t, resolver, descriptor, source)
	second := resolveComposite(t, resolver, descriptor, source)

	firstBound := first.Candidates()[0].(*stubGenerator)
	secondBound := second.Candidates()[0].(*stubGenerator)

	// The registered generator itself is never bound, and the two
	// resolutions never share a component holder.
	assert.NotSame(t, listGen, firstBound)
	assert.NotSame(t, listGen, secondBound)
	assert.NotSame(t, firstBound, secondBound)
	assert.Nil(t, listGen.components)

	// Component-free candidates are shared as-is
	direct := resolveComposite(t, resolver, descriptorFor(t, u, "Integer"), source)
	assert.Same(t, Generator(g1), direct.Candidates()[0])
}

func TestResolver_DeterministicUnderFixedSeed(t *testing.T) {
	buildAndResolve := func(seed int64) Generator {
		u := scenarioUniverse(t)
		registry := NewGeneratorRegistry(u)
		resolver := NewResolver(registry, u)

		g3 := newStub(3, "Integer")
		g4 := newStub(4.0, "Double")
		require.NoError(t, registry.RegisterAll([]Generator{g3, g4}))

		generator, err := resolver.resolve(descriptorFor(t, u, "Number"), NewSource(seed), false)
		require.NoError(t, err)
		return generator.(*CompositeGenerator).Candidates()[0]
	}

	for seed := int64(1); seed <= 20; seed++ {
		first := buildAndResolve(seed).(*stubGenerator)
		second := buildAndResolve(seed).(*stubGenerator)
		assert.Equal(t, first.value, second.value, "seed %d chose different candidates", seed)
	}
}
