package models

// Kind identifies which flow an index belongs to.
type Kind string

const (
	// KindMenu is the "what to eat" flow backed by the detail_menu sheet.
	KindMenu Kind = "menu"
	// KindRestaurant is the "where to eat" flow backed by the restaurants sheet.
	KindRestaurant Kind = "restaurant"
)

// ParseKind converts a user-supplied string into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindMenu, KindRestaurant:
		return Kind(s), true
	}
	return "", false
}

// Index maps a category to its entries in source row order.
// Duplicates are kept.
type Index struct {
	// Kind is the flow this index serves.
	Kind Kind `json:"kind"`
	// Entries maps category label to menu or restaurant names.
	Entries map[string][]string `json:"entries"`
}

// NewIndex returns an empty index of the given kind.
func NewIndex(kind Kind) Index {
	return Index{Kind: kind, Entries: make(map[string][]string)}
}

// Add appends a value to the category's list, creating the list if absent.
// A zero Index (or one decoded from "entries": null) gets its map on first use.
func (ix *Index) Add(category, value string) {
	if ix.Entries == nil {
		ix.Entries = make(map[string][]string)
	}
	ix.Entries[category] = append(ix.Entries[category], value)
}

// Lookup returns the entries for a category. A missing category is an empty list.
func (ix Index) Lookup(category string) []string {
	return ix.Entries[category]
}

// Len returns the total number of entries across all categories.
func (ix Index) Len() int {
	n := 0
	for _, v := range ix.Entries {
		n += len(v)
	}
	return n
}
