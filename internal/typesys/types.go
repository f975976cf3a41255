package typesys

// ID is the identity of a type within a Universe. It is the key under
// which generators are indexed and looked up.
type ID string

// Kind classifies a declared type
type Kind int

const (
	KindClass Kind = iota
	KindInterface
	KindEnum
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Type is a declared type token. Tokens are created through a Universe
// and carry the declared hierarchy explicitly, so the core never depends
// on any particular runtime's reflection quirks.
type Type struct {
	// Name is the type's identity
	Name ID

	// Kind classifies the type as class, interface, or enum
	Kind Kind

	// Super is the direct superclass. It is nil for the universal root
	// and for interfaces.
	Super *Type

	// Interfaces lists the directly implemented (or, for an interface,
	// directly embedded) interfaces in declaration order.
	Interfaces []*Type

	// EnumValues holds the declared constants of an enum type
	EnumValues []any

	// Functional is the declared return type of the sole abstract method
	// when the type is a functional interface, nil otherwise.
	Functional *Type
}

// IsEnum reports whether the type is an enumeration
func (t *Type) IsEnum() bool {
	return t.Kind == KindEnum
}

// IsInterface reports whether the type is an interface
func (t *Type) IsInterface() bool {
	return t.Kind == KindInterface
}

// IsFunctional reports whether the type exposes exactly one abstractly
// declared method and can therefore be satisfied by a synthesized adapter.
func (t *Type) IsFunctional() bool {
	return t.Functional != nil
}

// String returns the type's name
func (t *Type) String() string {
	return string(t.Name)
}
