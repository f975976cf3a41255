package typesys

import "strings"

// Variance classifies a generic type parameter
type Variance int

const (
	// Exact is a concrete type argument, e.g. List<Int>
	Exact Variance = iota

	// Unbounded is a wildcard with no bound, e.g. List<?>
	Unbounded

	// UpperBounded produces a bound-or-subtype, e.g. List<? extends Number>
	UpperBounded

	// LowerBounded accepts a bound-or-supertype, e.g. List<? super Int>
	LowerBounded
)

// String returns the string representation of the variance tag
func (v Variance) String() string {
	switch v {
	case Exact:
		return "exact"
	case Unbounded:
		return "unbounded"
	case UpperBounded:
		return "extends"
	case LowerBounded:
		return "super"
	default:
		return "unknown"
	}
}

// Parameter is a variance-tagged type argument of a parameterized request
type Parameter struct {
	// Variance classifies the argument
	Variance Variance

	// Bound is the argument type for Exact and the bound for
	// UpperBounded/LowerBounded. It is nil for Unbounded.
	Bound *Descriptor
}

// Descriptor is the abstract representation of a requested type: raw
// identity, variance-tagged type arguments, and array structure.
type Descriptor struct {
	// Raw is the requested raw type. It is nil when Array is set.
	Raw *Type

	// Parameters holds the type arguments in declared order
	Parameters []Parameter

	// Array marks an array request; Component describes the element type
	Array     bool
	Component *Descriptor
}

// DescriptorOf builds a descriptor for a (possibly parameterized) type
func DescriptorOf(raw *Type, params ...Parameter) *Descriptor {
	return &Descriptor{Raw: raw, Parameters: params}
}

// ArrayOf builds a descriptor for an array of the given component type
func ArrayOf(component *Descriptor) *Descriptor {
	return &Descriptor{Array: true, Component: component}
}

// ExactParam tags a type argument as a concrete type
func ExactParam(d *Descriptor) Parameter {
	return Parameter{Variance: Exact, Bound: d}
}

// WildcardParam tags a type argument as an unbounded wildcard
func WildcardParam() Parameter {
	return Parameter{Variance: Unbounded}
}

// ExtendsParam tags a type argument as upper-bounded
func ExtendsParam(bound *Descriptor) Parameter {
	return Parameter{Variance: UpperBounded, Bound: bound}
}

// SuperParam tags a type argument as lower-bounded
func SuperParam(bound *Descriptor) Parameter {
	return Parameter{Variance: LowerBounded, Bound: bound}
}

// IsEnum reports whether the described raw type is an enumeration
func (d *Descriptor) IsEnum() bool {
	return !d.Array && d.Raw != nil && d.Raw.IsEnum()
}

// String renders the descriptor in type-expression syntax
func (d *Descriptor) String() string {
	if d.Array {
		return "[]" + d.Component.String()
	}

	var sb strings.Builder
	sb.WriteString(string(d.Raw.Name))

	if len(d.Parameters) > 0 {
		sb.WriteString("<")
		for i, p := range d.Parameters {
			if i > 0 {
				sb.WriteString(", ")
			}
			switch p.Variance {
			case Exact:
				sb.WriteString(p.Bound.String())
			case Unbounded:
				sb.WriteString("?")
			case UpperBounded:
				sb.WriteString("? extends " + p.Bound.String())
			case LowerBounded:
				sb.WriteString("? super " + p.Bound.String())
			}
		}
		sb.WriteString(">")
	}

	return sb.String()
}
