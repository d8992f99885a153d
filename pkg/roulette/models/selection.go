package models

import "sort"

// SelectionSet is the set of categories a user picked for one flow.
// The caller owns it; the selector only reads it.
type SelectionSet map[string]struct{}

// NewSelectionSet builds a set from labels. Blank labels are ignored.
func NewSelectionSet(labels ...string) SelectionSet {
	s := make(SelectionSet, len(labels))
	for _, l := range labels {
		s.Add(l)
	}
	return s
}

// Add puts a category into the set.
func (s SelectionSet) Add(label string) {
	if label == "" {
		return
	}
	s[label] = struct{}{}
}

// Toggle flips membership of a category and reports whether it is now selected.
func (s SelectionSet) Toggle(label string) bool {
	if _, ok := s[label]; ok {
		delete(s, label)
		return false
	}
	s.Add(label)
	return label != ""
}

// Contains reports whether the category is selected.
func (s SelectionSet) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// Len returns the number of selected categories.
func (s SelectionSet) Len() int {
	return len(s)
}

// Sorted returns the selected categories in lexical order.
func (s SelectionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
