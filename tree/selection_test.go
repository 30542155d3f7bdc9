package tree

import (
	"testing"

	"github.com/nguyengg/x7z/listing"
	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	f := Build(records("a/b/file1.txt", "a/b/file2.txt"))
	sel := NewSelection()

	b, _ := f.Lookup("a/b")
	file1, _ := f.Lookup("a/b/file1.txt")

	f.Toggle(b, sel)
	assert.Equal(t, []int{0, 1}, sel.Sorted())
	assert.True(t, f.IsSelected(b, sel))
	assert.False(t, f.IsPartiallySelected(b, sel))
	assert.Equal(t, Selected, f.State(b, sel))

	// deselecting file1 leaves b partially selected.
	f.Toggle(file1, sel)
	assert.Equal(t, []int{1}, sel.Sorted())
	assert.False(t, f.IsSelected(b, sel))
	assert.True(t, f.IsPartiallySelected(b, sel))
	assert.Equal(t, Partial, f.State(b, sel))

	// a partial subtree becomes fully selected, never deselected.
	f.Toggle(b, sel)
	assert.Equal(t, []int{0, 1}, sel.Sorted())

	// and a fully selected one is deselected.
	f.Toggle(f.Roots[0], sel)
	assert.Equal(t, 0, sel.Len())
	assert.Equal(t, Deselected, f.State(f.Roots[0], sel))
}

func TestToggle_SyntheticOnly(t *testing.T) {
	f := Build(records("a/b/c"))
	sel := NewSelection()

	// a synthetic node whose only descendant is the record still selects that record.
	f.Toggle(f.Roots[0], sel)
	assert.Equal(t, []int{0}, sel.Sorted())
	assert.True(t, f.IsSelected(f.Roots[0], sel))
}

func TestState_EmptySubtree(t *testing.T) {
	// hand-made forest with a synthetic node that has no indices at all.
	f := &Forest{Nodes: []Node{{Name: "a", FullPath: "a", IsDir: true, Source: -1, Parent: NoNode}}, Roots: []NodeID{0}}
	sel := NewSelection(0)

	assert.False(t, f.IsSelected(0, sel))
	assert.False(t, f.IsPartiallySelected(0, sel))

	f.Toggle(0, sel)
	assert.Equal(t, []int{0}, sel.Sorted())
}

func TestIndices(t *testing.T) {
	f := Build(records("d", "d/x", "d/e/y", "z"))

	d, _ := f.Lookup("d")
	assert.Equal(t, []int{0, 1, 2}, f.Indices(d))

	z, _ := f.Lookup("z")
	assert.Equal(t, []int{3}, f.Indices(z))
}

func TestResolve_RoundTrip(t *testing.T) {
	recs := records("root/z.txt", "root/a/1.txt", "root/a/2.txt", "root/b/3.txt")
	f := Build(recs)
	sel := NewSelection()

	f.Toggle(f.Roots[0], sel)
	assert.Equal(t, []string{"root/z.txt", "root/a/1.txt", "root/a/2.txt", "root/b/3.txt"}, Resolve(recs, sel))
}

func TestResolve(t *testing.T) {
	recs := records("a", "b", "c")

	assert.Equal(t, []string{"a", "c"}, Resolve(recs, NewSelection(2, 0)))
	assert.Equal(t, []string{"b"}, Resolve(recs, NewSelection(-1, 1, 3)))
	assert.Equal(t, []string{}, Resolve(recs, NewSelection()))
}

func TestForest_ResolveExtract(t *testing.T) {
	recs := []listing.FileRecord{
		{Path: "docs", IsDir: true},
		{Path: "docs/a.txt"},
		{Path: "docs/sub", IsDir: true},
		{Path: "docs/sub/b.txt"},
		{Path: "readme.md"},
	}
	f := Build(recs)
	docs, _ := f.Lookup("docs")
	sub, _ := f.Lookup("docs/sub")

	tests := []struct {
		name    string
		toggles []NodeID
		want    []string
	}{
		{
			name:    "whole directory",
			toggles: []NodeID{docs},
			want:    []string{"docs", "docs/a.txt", "docs/sub", "docs/sub/b.txt"},
		},
		{
			name:    "sub-directory deselected",
			toggles: []NodeID{docs, sub},
			want:    []string{"docs/a.txt"},
		},
		{
			name:    "only sub-directory",
			toggles: []NodeID{sub},
			want:    []string{"docs/sub", "docs/sub/b.txt"},
		},
		{
			name: "nothing",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelection()
			for _, id := range tt.toggles {
				f.Toggle(id, sel)
			}

			assert.Equal(t, tt.want, f.ResolveExtract(recs, sel))
		})
	}

	// a file reused as a directory only keeps its record when its whole subtree is selected.
	odd := records("a", "a/b")
	g := Build(odd)
	assert.Equal(t, []string{"a/b"}, g.ResolveExtract(odd, NewSelection(1)))
	assert.Equal(t, []string{"a", "a/b"}, g.ResolveExtract(odd, NewSelection(0, 1)))
}

func TestSelection(t *testing.T) {
	sel := NewSelection(3, 1)
	assert.True(t, sel.Contains(1))
	assert.False(t, sel.Contains(2))

	sel.Add(2)
	sel.Remove(3)
	assert.Equal(t, []int{1, 2}, sel.Sorted())

	sel.Clear()
	assert.Equal(t, 0, sel.Len())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "selected", Selected.String())
	assert.Equal(t, "partial", Partial.String())
	assert.Equal(t, "deselected", Deselected.String())
}
