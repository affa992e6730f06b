package viewport

// ExpandedSet tracks which nodes are currently expanded. The engine owns
// the only mutable instance; default membership is every node id present in
// the snapshot at load time.
type ExpandedSet map[string]struct{}

// NewExpandedSet returns a set containing the given node ids.
func NewExpandedSet(ids ...string) ExpandedSet {
	s := make(ExpandedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether the node is expanded.
func (s ExpandedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips the node's membership and reports the new state.
func (s ExpandedSet) Toggle(id string) bool {
	if s.Has(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}
