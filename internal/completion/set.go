package completion

import "slices"

// Set is the set of completed module ids. The zero value is an empty set.
// Ids keep the order in which they were added, matching the persisted array.
type Set struct {
	ids []int
}

// NewSet returns a set holding ids, with duplicates dropped.
func NewSet(ids ...int) Set {
	var s Set
	for _, id := range ids {
		s = s.Add(id)
	}
	return s
}

// Contains reports whether id is in the set.
func (s Set) Contains(id int) bool {
	return slices.Contains(s.ids, id)
}

// Add returns the set with id included.
func (s Set) Add(id int) Set {
	if s.Contains(id) {
		return s
	}
	return Set{ids: append(slices.Clone(s.ids), id)}
}

// Remove returns the set without id.
func (s Set) Remove(id int) Set {
	return Set{ids: slices.DeleteFunc(slices.Clone(s.ids), func(v int) bool { return v == id })}
}

// Toggle flips the membership of id.
func (s Set) Toggle(id int) Set {
	if s.Contains(id) {
		return s.Remove(id)
	}
	return s.Add(id)
}

// Len returns the number of ids.
func (s Set) Len() int { return len(s.ids) }

// IDs returns a copy of the ids in insertion order.
func (s Set) IDs() []int {
	if len(s.ids) == 0 {
		return []int{}
	}
	return slices.Clone(s.ids)
}

// CountIn returns how many of ids are in the set.
func (s Set) CountIn(ids []int) int {
	n := 0
	for _, id := range ids {
		if s.Contains(id) {
			n++
		}
	}
	return n
}
