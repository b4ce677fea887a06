package extension

import (
	"fmt"
	"slices"
)

// Multilocational is implemented by values whose content may live in
// several places. Paths are ordered by lookup priority.
type Multilocational interface {
	Paths() []string
}

// Overridable is implemented by values that can be superseded by another
// value of the same kind.
type Overridable[T any] interface {
	// CanOverrideBy reports whether candidate is compatible as an override.
	CanOverrideBy(candidate T) bool
	// Override returns a new value representing the receiver overridden by
	// candidate. Neither operand is modified.
	Override(candidate T) (T, error)
	// Base returns the original, non-overridden definition.
	Base() T
}

// Extension is the read contract shared by plain and overridden extensions.
type Extension interface {
	Multilocational
	Overridable[Extension]
	fmt.Stringer

	Name() string
	Type() string
}

// Plain is an extension as declared by a single app layer.
type Plain struct {
	name  string
	typ   string
	paths []string
}

var _ Extension = (*Plain)(nil)

// New creates an extension located at a single path.
func New(name, typ, path string) *Plain {
	return &Plain{name: name, typ: typ, paths: []string{path}}
}

// NewMulti creates an extension located at the given paths. The slice is
// copied, so later changes by the caller are not observed.
func NewMulti(name, typ string, paths []string) *Plain {
	p := make([]string, len(paths))
	copy(p, paths)
	return &Plain{name: name, typ: typ, paths: p}
}

// Name returns the name of the extension.
func (p *Plain) Name() string { return p.name }

// Type returns the type of the extension, e.g. "image" or "theme".
func (p *Plain) Type() string { return p.typ }

// Paths returns a copy of the paths the extension can be located at.
func (p *Plain) Paths() []string { return slices.Clone(p.paths) }

// CanOverrideBy reports whether candidate has the same name and type.
func (p *Plain) CanOverrideBy(candidate Extension) bool {
	return canOverride(p, candidate)
}

// Override returns p overridden by candidate, or an *InvalidOverrideError
// when candidate is not compatible.
func (p *Plain) Override(candidate Extension) (Extension, error) {
	return override(p, candidate)
}

// Base returns p itself.
func (p *Plain) Base() Extension { return p }

func (p *Plain) String() string {
	return fmt.Sprintf("Extension{name='%s', type='%s', paths=%v}", p.name, p.typ, p.paths)
}

func canOverride(base, candidate Extension) bool {
	if isNil(candidate) {
		return false
	}
	return base.Name() == candidate.Name() && base.Type() == candidate.Type()
}

func override(base, candidate Extension) (Extension, error) {
	if !base.CanOverrideBy(candidate) {
		return nil, newInvalidOverride(base, candidate)
	}
	return &Overridden{base: base, override: candidate}, nil
}

// Equal reports whether a and b have the same name, type and paths. Paths
// are compared element by element in order. Plain and overridden values
// compare by what they expose, so a composite can equal a plain value.
func Equal(a, b Extension) bool {
	an, bn := isNil(a), isNil(b)
	if an || bn {
		return an && bn
	}
	return a.Name() == b.Name() &&
		a.Type() == b.Type() &&
		slices.Equal(a.Paths(), b.Paths())
}

func isNil(e Extension) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Plain:
		return v == nil
	case *Overridden:
		return v == nil
	}
	return false
}
