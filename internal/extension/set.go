package extension

// Set is a collection of distinct extensions. Members are bucketed by Hash
// and told apart with Equal, so extensions sharing a name and type but not
// paths share a bucket and are still kept as separate members.
//
// The zero value is an empty set. A Set is not safe for concurrent mutation.
type Set struct {
	buckets map[uint64][]Extension
	order   []Extension
}

// NewSet returns a set holding the given extensions.
func NewSet(exts ...Extension) *Set {
	s := &Set{buckets: make(map[uint64][]Extension)}
	for _, e := range exts {
		s.Add(e)
	}
	return s
}

// Add inserts e and reports whether it was not already present.
func (s *Set) Add(e Extension) bool {
	if isNil(e) || s.Contains(e) {
		return false
	}
	if s.buckets == nil {
		s.buckets = make(map[uint64][]Extension)
	}
	h := Hash(e)
	s.buckets[h] = append(s.buckets[h], e)
	s.order = append(s.order, e)
	return true
}

// Contains reports whether an extension equal to e is present.
func (s *Set) Contains(e Extension) bool {
	for _, m := range s.buckets[Hash(e)] {
		if Equal(m, e) {
			return true
		}
	}
	return false
}

// Bucket returns the members sharing e's name and type.
func (s *Set) Bucket(e Extension) []Extension {
	if isNil(e) {
		return nil
	}
	b :=s.buckets[Hash(e)]
	out := make([]Extension, 0, len(b))
	for _, m := range b {
		if m.Name() == e.Name() && m.Type() == e.Type() {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.order) }

// Values returns the members in insertion order.
func (s *Set) Values() []Extension {
	out := make([]Extension, len(s.order))
	copy(out, s.order)
	return out
}
