package extension

import "github.com/zeebo/xxh3"

// Hash returns a hash of the name and type of e. Paths are not part of the
// hash: values that differ only in their paths hash equally even though
// Equal reports them as different.
func Hash(e Extension) uint64 {
	if isNil(e) {
		return 0
	}
	// NUL keeps ("ab", "c") and ("a", "bc") apart.
	return xxh3.HashString(e.Name() + "\x00" + e.Type())
}
