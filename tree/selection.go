package tree

import (
	"slices"

	"github.com/nguyengg/x7z/listing"
)

// Selection is the set of record indices chosen for extraction.
//
// Selection has a single owner; it is not safe for concurrent mutation.
type Selection map[int]struct{}

// NewSelection returns a Selection containing the given indices.
func NewSelection(indices ...int) Selection {
	s := make(Selection, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}

	return s
}

func (s Selection) Add(i int) {
	s[i] = struct{}{}
}

func (s Selection) Remove(i int) {
	delete(s, i)
}

func (s Selection) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

func (s Selection) Len() int {
	return len(s)
}

// Clear empties the selection. Call this whenever a new archive is loaded.
func (s Selection) Clear() {
	clear(s)
}

// Sorted returns the indices in ascending order, which is also listing order.
func (s Selection) Sorted() []int {
	indices := make([]int, 0, len(s))
	for i := range s {
		indices = append(indices, i)
	}

	slices.Sort(indices)
	return indices
}

// State is the tri-state selection status of a node.
type State int

const (
	Deselected State = iota
	Partial
	Selected
)

func (s State) String() string {
	switch s {
	case Selected:
		return "selected"
	case Partial:
		return "partial"
	default:
		return "deselected"
	}
}

// Indices returns the record indices of the subtree rooted at id, in pre-order.
func (f *Forest) Indices(id NodeID) []int {
	indices := make([]int, 0)
	f.walk(id, 0, func(id NodeID, _ int) bool {
		if n := &f.Nodes[id]; n.HasSource() {
			indices = append(indices, n.Source)
		}
		return true
	})

	return indices
}

// Toggle selects or deselects the whole subtree rooted at id.
//
// If every index of the subtree is already selected, they are all removed. Otherwise every missing index is added, so
// a partially selected subtree always becomes fully selected.
func (f *Forest) Toggle(id NodeID, sel Selection) {
	indices := f.Indices(id)
	if len(indices) == 0 {
		return
	}

	if n, _ := count(indices, sel); n == len(indices) {
		for _, i := range indices {
			sel.Remove(i)
		}
		return
	}

	for _, i := range indices {
		sel.Add(i)
	}
}

// IsSelected returns true if the subtree has at least one index and all of them are selected.
func (f *Forest) IsSelected(id NodeID, sel Selection) bool {
	return f.State(id, sel) == Selected
}

// State returns the tri-state status of the subtree rooted at id.
func (f *Forest) State(id NodeID, sel Selection) State {
	n, total := count(f.Indices(id), sel)
	switch {
	case total == 0 || n == 0:
		return Deselected
	case n == total:
		return Selected
	default:
		return Partial
	}
}

// IsPartiallySelected returns true if some, but not all, indices of the subtree are selected.
func (f *Forest) IsPartiallySelected(id NodeID, sel Selection) bool {
	return f.State(id, sel) == Partial
}

func count(indices []int, sel Selection) (n, total int) {
	for _, i := range indices {
		if sel.Contains(i) {
			n++
		}
	}

	return n, len(indices)
}

// Resolve maps the selection back to record paths, in listing order.
//
// Indices that are out of range for records are ignored.
func Resolve(records []listing.FileRecord, sel Selection) []string {
	paths := make([]string, 0, len(sel))
	for _, i := range sel.Sorted() {
		if i >= 0 && i < len(records) {
			paths = append(paths, records[i].Path)
		}
	}

	return paths
}

// ResolveExtract is Resolve for paths handed to 7zz, which extracts the whole content of every directory it is given.
//
// A directory record is only kept if its entire subtree is selected, so deselecting "a/b" inside a selected "a" leaves
// "a" out and passes the remaining files of "a" instead.
func (f *Forest) ResolveExtract(records []listing.FileRecord, sel Selection) []string {
	paths := make([]string, 0, len(sel))
	for _, i := range sel.Sorted() {
		if i < 0 || i >= len(records) {
			continue
		}

		if id, ok := f.Lookup(records[i].Path); ok && f.Node(id).IsDir && f.State(id, sel) != Selected {
			continue
		}

		paths = append(paths, records[i].Path)
	}

	return paths
}
