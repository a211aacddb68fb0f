package node

import "reflect"

// visitKey identifies a reference on the current descent path. Slices also
// record their length so a sub-slice of a visited slice is not a cycle.
type visitKey struct {
	ptr uintptr
	len int
	typ reflect.Type
}

// visitSet holds the references being described. A reference met again
// before it is left is a cycle.
type visitSet struct {
	active map[visitKey]struct{}
}

// enter marks key as active and reports whether it was not active already.
func (s *visitSet) enter(key visitKey) bool {
	if s.active == nil {
		s.active = make(map[visitKey]struct{})
	}

	if _, exists := s.active[key]; exists {
		return false
	}

	s.active[key] = struct{}{}

	return true
}

func (s *visitSet) leave(key visitKey) {
	delete(s.active, key)
}
