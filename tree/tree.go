// Package tree rebuilds the directory hierarchy of an archive from its flat listing.
//
// Nodes live in a flat arena owned by Forest; parent and children are indices into that arena. A Forest is built once
// per listing and never patched: load a new listing, build a new Forest.
package tree

import (
	"strings"
	"time"

	"github.com/nguyengg/x7z/listing"
)

// NodeID is the index of a Node in Forest.Nodes.
type NodeID int

// NoNode is the Parent of root nodes and the Source of synthetic directories.
const NoNode NodeID = -1

// Node is one path segment of the hierarchy.
type Node struct {
	// Name is the single path segment.
	Name string
	// FullPath is the cumulative path from the root to this node.
	FullPath string
	// IsDir is true for every node that is an intermediate segment of some record, or whose record is a directory.
	IsDir bool
	// Size and Modified are only populated for nodes backed by a record.
	Size     int64
	Modified *time.Time
	// Source is the index of the record backing this node, -1 for synthetic intermediate directories.
	Source int
	// Parent is NoNode for roots.
	Parent NodeID
	// Children are in first-seen order.
	Children []NodeID
}

// HasSource returns true if the node is backed by a listed record.
func (n *Node) HasSource() bool {
	return n.Source >= 0
}

// Forest is the hierarchy rebuilt from one listing. There may be many roots.
type Forest struct {
	Nodes []Node
	Roots []NodeID

	byPath map[string]NodeID
}

// Build rebuilds the hierarchy of the given records.
//
// Records are processed in order, and the index of each record becomes the Source of the node for its last path
// segment. Nodes are shared by cumulative path, so "a/b/1.txt" and "a/b/2.txt" converge on the same "a" and "a/b".
// If a record is listed after a node with the same path has been synthesised, that node takes over the record's size,
// timestamp, and index instead of being duplicated.
func Build(records []listing.FileRecord) *Forest {
	f := &Forest{
		Nodes:  make([]Node, 0, len(records)),
		Roots:  make([]NodeID, 0),
		byPath: make(map[string]NodeID, len(records)),
	}

	for i, rec := range records {
		segments := split(rec.Path)
		if len(segments) == 0 {
			continue
		}

		var (
			parent   = NoNode
			fullPath string
			last     = len(segments) - 1
		)

		for j, name := range segments {
			if j == 0 {
				fullPath = name
			} else {
				fullPath += "/" + name
			}

			id, ok := f.byPath[fullPath]
			switch {
			case ok && j == last:
				n := &f.Nodes[id]
				n.IsDir = n.IsDir || rec.IsDir
				n.Size, n.Modified, n.Source = rec.Size, rec.Modified, i
			case ok:
				f.Nodes[id].IsDir = true
			default:
				n := Node{
					Name:     name,
					FullPath: fullPath,
					IsDir:    true,
					Source:   -1,
					Parent:   parent,
				}
				if j == last {
					n.IsDir, n.Size, n.Modified, n.Source = rec.IsDir, rec.Size, rec.Modified, i
				}

				id = NodeID(len(f.Nodes))
				f.Nodes = append(f.Nodes, n)
				f.byPath[fullPath] = id

				if parent == NoNode {
					f.Roots = append(f.Roots, id)
				} else {
					f.Nodes[parent].Children = append(f.Nodes[parent].Children, id)
				}
			}

			parent = id
		}
	}

	return f
}

// split splits path on `/` and drops empty segments.
func split(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/'
	})
}

// Len returns the number of nodes.
func (f *Forest) Len() int {
	return len(f.Nodes)
}

// Node returns the node with the given id.
//
// Panics if id is out of range.
func (f *Forest) Node(id NodeID) *Node {
	return &f.Nodes[id]
}

// Lookup returns the node whose FullPath is the given path.
//
// Leading, trailing, and repeated `/` are ignored.
func (f *Forest) Lookup(path string) (NodeID, bool) {
	id, ok := f.byPath[strings.Join(split(path), "/")]
	if !ok {
		return NoNode, false
	}

	return id, true
}

// Path returns the ids from the root down to and including the given node.
func (f *Forest) Path(id NodeID) []NodeID {
	ids := make([]NodeID, 0)
	for ; id != NoNode; id = f.Nodes[id].Parent {
		ids = append(ids, id)
	}

	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	return ids
}

// Walk visits every node in pre-order, roots first in order.
//
// The depth of roots is 0. If fn returns false, the children of that node are skipped but the walk continues with
// its siblings.
func (f *Forest) Walk(fn func(id NodeID, depth int) bool) {
	for _, id := range f.Roots {
		f.walk(id, 0, fn)
	}
}

func (f *Forest) walk(id NodeID, depth int, fn func(id NodeID, depth int) bool) {
	if !fn(id, depth) {
		return
	}

	for _, c := range f.Nodes[id].Children {
		f.walk(c, depth+1, fn)
	}
}
