package mindmap

import (
	"fmt"
	"strings"
)

// DefaultRootName names the root of a fresh tree.
const DefaultRootName = "root"

// Tree owns the node graph rooted at a single parentless node.
type Tree struct {
	root     *Node
	revision uint64
}

// New returns a tree holding only a root node.
func New(rootName string) *Tree {
	if rootName == "" {
		rootName = DefaultRootName
	}
	return &Tree{root: &Node{name: rootName}}
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Revision increases on every rename and structural change.
func (t *Tree) Revision() uint64 {
	return t.revision
}

// AddChild appends a new node named name to parent's children.
func (t *Tree) AddChild(parent *Node, name string) *Node {
	if parent == nil {
		parent = t.root
	}
	child := parent.appendChild(name)
	t.revision++
	return child
}

// Rename sets node's name. It returns false, and leaves the revision alone,
// when the name is unchanged.
func (t *Tree) Rename(node *Node, name string) bool {
	if node == nil || node.name == name {
		return false
	}
	node.name = name
	t.revision++
	return true
}

// Remove detaches node and its whole subtree from its parent.
func (t *Tree) Remove(node *Node) error {
	if node == nil {
		return NotFoundError{}
	}
	if node.parent == nil {
		if node == t.root {
			return RootDeletionError{}
		}
		return NotFoundError{Name: node.name}
	}
	if !node.parent.detach(node) {
		return NotFoundError{Name: node.name}
	}
	t.revision++
	return nil
}

// Walk visits nodes in pre-order starting at start (the root when nil). The
// walk stops as soon as fn returns false.
func (t *Tree) Walk(start *Node, fn func(n *Node) bool) {
	if start == nil {
		start = t.root
	}
	walk(start, fn)
}

func walk(n *Node, fn func(n *Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// FindExact returns the first node in pre-order from start (inclusive) whose
// name equals name.
func (t *Tree) FindExact(name string, start *Node) *Node {
	var found *Node
	t.Walk(start, func(n *Node) bool {
		if n.name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindNodes collects, in pre-order, every non-root node whose name contains
// substring. The match is case-sensitive.
func (t *Tree) FindNodes(substring string) []*Node {
	var out []*Node
	t.Walk(nil, func(n *Node) bool {
		if n != t.root && strings.Contains(n.name, substring) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Len counts every node, root included.
func (t *Tree) Len() int {
	count := 0
	t.Walk(nil, func(*Node) bool {
		count++
		return true
	})
	return count
}

// Contains reports whether node is reachable from the root.
func (t *Tree) Contains(node *Node) bool {
	if node == nil {
		return false
	}
	top := node
	for top.parent != nil {
		if top.parent.IndexOf(top) < 0 {
			return false
		}
		top = top.parent
	}
	return top == t.root
}

// Resolve walks names child by child from the root; the first path element
// may name the root itself. Each step takes the first child with that name.
func (t *Tree) Resolve(path []string) (*Node, error) {
	cur := t.root
	if len(path) > 0 && path[0] == t.root.name {
		path = path[1:]
	}
	for _, name := range path {
		var next *Node
		for _, c := range cur.children {
			if c.name == name {
				next = c
				break
			}
		}
		if next == nil {
			return nil, NotFoundError{Name: name}
		}
		cur = next
	}
	return cur, nil
}

// SplitPath turns "a/b/c" into its trimmed, non-empty elements.
func SplitPath(path string) []string {
	parts := strings.Split(path, PathSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks the parent/children invariant and acyclicity.
func (t *Tree) Validate() error {
	if t.root == nil {
		return fmt.Errorf("mindmap: tree has no root")
	}
	if t.root.parent != nil {
		return fmt.Errorf("mindmap: root %q has a parent", t.root.name)
	}
	seen := make(map[*Node]struct{})
	var check func(n *Node) error
	check = func(n *Node) error {
		if _, ok := seen[n]; ok {
			return fmt.Errorf("mindmap: node %q reachable twice", n.name)
		}
		seen[n] = struct{}{}
		for _, c := range n.children {
			if c.parent != n {
				return fmt.Errorf("mindmap: node %q does not point back to parent %q", c.name, n.name)
			}
			count := 0
			for _, s := range n.children {
				if s == c {
					count++
				}
			}
			if count != 1 {
				return fmt.Errorf("mindmap: node %q listed %d times under %q", c.name, count, n.name)
			}
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
	return check(t.root)
}
