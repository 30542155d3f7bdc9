package tree

// Expansion holds which directories are expanded for display, keyed by full path.
//
// It is kept apart from Forest because it is view state: rebuilding a Forest for the same archive can reuse it.
type Expansion map[string]bool

func (e Expansion) Expand(path string) {
	e[path] = true
}

func (e Expansion) Collapse(path string) {
	delete(e, path)
}

// Toggle flips the state of the given path and returns the new state.
func (e Expansion) Toggle(path string) bool {
	if e[path] {
		delete(e, path)
		return false
	}

	e[path] = true
	return true
}

func (e Expansion) IsExpanded(path string) bool {
	return e[path]
}

// ExpandToDepth expands every directory of f whose depth is less than depth, so that nodes down to that depth are
// visible. A negative depth expands everything.
func (e Expansion) ExpandToDepth(f *Forest, depth int) {
	f.Walk(func(id NodeID, d int) bool {
		if depth >= 0 && d >= depth {
			return false
		}

		if n := f.Node(id); n.IsDir && len(n.Children) != 0 {
			e[n.FullPath] = true
		}
		return true
	})
}

// Visible walks f in pre-order but only descends into expanded directories.
func (e Expansion) Visible(f *Forest, fn func(id NodeID, depth int)) {
	f.Walk(func(id NodeID, depth int) bool {
		fn(id, depth)
		return e[f.Node(id).FullPath]
	})
}
