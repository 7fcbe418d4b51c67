// Package naming defines how containers are named.
//
// Names are hierarchical. Tokens are separated by dots and each token is a
// capitalized CamelCase element name, optionally followed by integer indices
// in square brackets, for example "Demo.Languages[0]".
package naming

// Named describes an object that has a name.
type Named interface {
	// Name returns the name of the object.
	Name() string
}

// NamedBase is a base implementation of Named.
type NamedBase struct {
	name string
}

// Name returns the name.
func (b NamedBase) Name() string {
	return b.name
}

// MakeNamedBase validates the name and creates a NamedBase.
func MakeNamedBase(name string) NamedBase {
	NameMustBeValid(name)

	return NamedBase{name: name}
}
