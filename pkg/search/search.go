// Package search filters the outline by substring for the interactive finder.
//
// Every call walks the whole tree. Callers that re-run the same query may use
// a Memo, which is keyed on the tree revision and never changes results.
package search

import (
	"tableflip.dev/remap/pkg/mindmap"
)

// Match is a node that satisfied a query, with its display path.
type Match struct {
	Node *mindmap.Node
	Path string
}

// Name returns the matched node's name.
func (m Match) Name() string {
	return m.Node.Name()
}

// Find returns every non-root node whose name contains query, in pre-order.
func Find(tree *mindmap.Tree, query string) []Match {
	if tree == nil {
		return nil
	}
	nodes := tree.FindNodes(query)
	out := make([]Match, len(nodes))
	for i, n := range nodes {
		out[i] = Match{Node: n, Path: n.Path()}
	}
	return out
}

// Limit truncates matches to at most n entries; n <= 0 keeps everything.
func Limit(matches []Match, n int) []Match {
	if n <= 0 || len(matches) <= n {
		return matches
	}
	return matches[:n]
}

// Memo caches the results of the last queries for a single tree revision.
type Memo struct {
	tree     *mindmap.Tree
	revision uint64
	results  map[string][]Match
}

// NewMemo returns an empty cache.
func NewMemo() *Memo {
	return &Memo{}
}

// Find behaves like the package level Find.
func (m *Memo) Find(tree *mindmap.Tree, query string) []Match {
	if tree == nil {
		return nil
	}
	if m.tree != tree || m.revision != tree.Revision() || m.results == nil {
		m.tree = tree
		m.revision = tree.Revision()
		m.results = make(map[string][]Match)
	}
	if cached, ok := m.results[query]; ok {
		return cached
	}
	res := Find(tree, query)
	m.results[query] = res
	return res
}
