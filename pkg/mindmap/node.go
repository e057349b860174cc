// Package mindmap holds the outline tree: nodes, their ordered children and
// the lookups used by navigation and search.
package mindmap

import "strings"

// PathSeparator joins node names when a node is described by its path.
const PathSeparator = "/"

// Node is a single outline entry. The parent reference is a lookup edge only;
// ownership runs strictly from parent to children.
type Node struct {
	name     string
	parent   *Node
	children []*Node
}

// Name returns the display name.
func (n *Node) Name() string {
	return n.name
}

// Parent returns the parent node, nil for the root or a detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Children returns a copy of the ordered children.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Len is the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the i-th child or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	return n.Child(0)
}

// IndexOf returns the identity index of child, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Depth counts the edges between n and its root.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Ancestors returns the chain from the root down to n, n included.
func (n *Node) Ancestors() []*Node {
	var chain []*Node
	for c := n; c != nil; c = c.parent {
		chain = append(chain, c)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Path renders the names from the root to n joined by PathSeparator.
func (n *Node) Path() string {
	chain := n.Ancestors()
	names := make([]string, len(chain))
	for i, c := range chain {
		names[i] = c.name
	}
	return strings.Join(names, " "+PathSeparator+" ")
}

func (n *Node) String() string {
	return n.name
}

func (n *Node) appendChild(name string) *Node {
	child := &Node{name: name, parent: n}
	n.children = append(n.children, child)
	return child
}

func (n *Node) detach(child *Node) bool {
	idx := n.IndexOf(child)
	if idx < 0 {
		return false
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	child.parent = nil
	return true
}
