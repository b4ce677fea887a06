package extension

import "fmt"

// Overridden is an extension of a lower layer superseded by an extension of
// a higher one. It is created by Override and can itself be overridden,
// forming a chain whose root is returned by Base.
type Overridden struct {
	base     Extension
	override Extension
}

var _ Extension = (*Overridden)(nil)

// Name returns the name of the applied override.
func (o *Overridden) Name() string { return o.override.Name() }

// Type returns the type of the applied override.
func (o *Overridden) Type() string { return o.override.Type() }

// Paths returns the override's paths followed by the paths of the wrapped
// extension, so lookups prefer the newest layer.
func (o *Overridden) Paths() []string {
	over, under := o.override.Paths(), o.base.Paths()
	paths := make([]string, 0, len(over)+len(under))
	paths = append(paths, over...)
	return append(paths, under...)
}

// CanOverrideBy reports whether candidate has the same name and type.
func (o *Overridden) CanOverrideBy(candidate Extension) bool {
	return canOverride(o, candidate)
}

// Override wraps o again with candidate applied on top.
func (o *Overridden) Override(candidate Extension) (Extension, error) {
	return override(o, candidate)
}

// Base returns the root of the override chain.
func (o *Overridden) Base() Extension { return o.base.Base() }

// Parent returns the extension o directly wraps.
func (o *Overridden) Parent() Extension { return o.base }

// Applied returns the override applied on top of Parent.
func (o *Overridden) Applied() Extension { return o.override }

func (o *Overridden) String() string {
	return fmt.Sprintf("OverriddenExtension{base=%s, override=%s}", o.base, o.override)
}

// Chain returns the extensions that make up e, from the root definition
// to the most recently applied override. A plain extension yields itself.
func Chain(e Extension) []Extension {
	var rev []Extension
	for {
		o, ok := e.(*Overridden)
		if !ok || o == nil {
			break
		}
		rev = append(rev, o.override)
		e = o.base
	}
	chain := make([]Extension, 0, len(rev)+1)
	if !isNil(e) {
		chain = append(chain, e)
	}
	for i := len(rev) - 1; i >= 0; i-- {
		chain = append(chain, rev[i])
	}
	return chain
}
