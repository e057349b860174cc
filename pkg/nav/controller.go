// Package nav is the focus/selection state machine over an outline tree. It
// is the only place that moves focus and selection; structural edits are
// delegated to the tree and reported through an Observer.
package nav

import (
	"tableflip.dev/remap/pkg/mindmap"
)

// Controller tracks the focused node and the selected child for one session.
// It is not safe for concurrent use.
type Controller struct {
	tree     *mindmap.Tree
	focused  *mindmap.Node
	selected *mindmap.Node
	pending  *DeleteRequest
	opts     Options
}

// New focuses the root of tree and selects its first child.
func New(tree *mindmap.Tree, opts Options) *Controller {
	if tree == nil {
		tree = mindmap.New(mindmap.DefaultRootName)
	}
	if len(opts.SampleNames) == 0 {
		opts.SampleNames = DefaultSampleNames
	}
	c := &Controller{tree: tree, opts: opts}
	c.focusOn(tree.Root())
	return c
}

// Tree returns the tree being navigated.
func (c *Controller) Tree() *mindmap.Tree {
	return c.tree
}

// Focused returns the navigation origin; never nil.
func (c *Controller) Focused() *mindmap.Node {
	return c.focused
}

// Selected returns the highlighted child, or nil.
func (c *Controller) Selected() *mindmap.Node {
	return c.selected
}

// View snapshots the focused node, its children and the selection.
func (c *Controller) View() View {
	return View{
		Focused:  c.focused,
		Children: c.focused.Children(),
		Selected: c.selected,
	}
}

// SetObserver swaps the change observer.
func (c *Controller) SetObserver(o Observer) {
	c.opts.Observer = o
}

// SetNotifier swaps the notification collaborator.
func (c *Controller) SetNotifier(n Notifier) {
	c.opts.Notifier = n
}

// Replace swaps in a whole new tree, e.g. after a load. Any pending delete is
// dropped.
func (c *Controller) Replace(tree *mindmap.Tree) {
	if tree == nil {
		tree = mindmap.New(mindmap.DefaultRootName)
	}
	c.cancelPending()
	c.tree = tree
	c.focusOn(tree.Root())
	c.viewChanged()
}

// FocusChild focuses node, which must be reachable from the root, and
// selects its first child.
func (c *Controller) FocusChild(node *mindmap.Node) error {
	if !c.tree.Contains(node) {
		return mindmap.NotFoundError{Name: nameOf(node)}
	}
	c.focusOn(node)
	c.viewChanged()
	return nil
}

// FocusNode is FocusChild for callers that pick arbitrary nodes, such as a
// pointer click or a search result.
func (c *Controller) FocusNode(node *mindmap.Node) error {
	return c.FocusChild(node)
}

// FocusByName focuses the first node in pre-order named name.
func (c *Controller) FocusByName(name string) error {
	node := c.tree.FindExact(name, nil)
	if node == nil {
		return mindmap.NotFoundError{Name: name}
	}
	return c.FocusChild(node)
}

// FocusParent moves focus up one level. It does nothing at the root.
func (c *Controller) FocusParent() {
	if parent := c.focused.Parent(); parent != nil {
		c.focusOn(parent)
	}
	c.viewChanged()
}

// SelectNext moves the selection to the next child, wrapping around.
func (c *Controller) SelectNext() {
	c.stepSelection(1)
	c.viewChanged()
}

// SelectPrevious moves the selection to the previous child, wrapping around.
func (c *Controller) SelectPrevious() {
	c.stepSelection(-1)
	c.viewChanged()
}

func (c *Controller) stepSelection(delta int) {
	if c.selected == nil {
		return
	}
	idx := c.focused.IndexOf(c.selected)
	if idx < 0 {
		return
	}
	c.selected = c.focused.Child(cyclic(idx, delta, c.focused.Len()))
}

// FocusSelected descends into the selected child.
func (c *Controller) FocusSelected() {
	if c.selected != nil {
		c.focusOn(c.selected)
	}
	c.viewChanged()
}

// FocusNextSibling focuses the sibling after the focused node, wrapping.
func (c *Controller) FocusNextSibling() error {
	return c.stepSibling(1)
}

// FocusPreviousSibling focuses the sibling before the focused node, wrapping.
func (c *Controller) FocusPreviousSibling() error {
	return c.stepSibling(-1)
}

func (c *Controller) stepSibling(delta int) error {
	parent := c.focused.Parent()
	if parent == nil || parent.Len() == 1 {
		c.notify(msgNoSiblings)
		return mindmap.NoSiblingsError{Name: c.focused.Name()}
	}
	idx := parent.IndexOf(c.focused)
	if idx < 0 {
		return mindmap.NotFoundError{Name: c.focused.Name()}
	}
	c.focused = parent.Child(cyclic(idx, delta, parent.Len()))
	if c.opts.SiblingSelection == ResetSelection {
		c.selected = c.focused.FirstChild()
	}
	c.viewChanged()
	return nil
}

// CreateChild appends a child named name to the focused node and selects it.
// An empty name means the text entry was cancelled and nothing happens.
func (c *Controller) CreateChild(name string) *mindmap.Node {
	if name == "" {
		c.viewChanged()
		return nil
	}
	node := c.tree.AddChild(c.focused, name)
	c.selected = node
	c.dataChanged()
	c.viewChanged()
	return node
}

// RenameTarget renames the selected node, or the focused one when nothing is
// selected. Empty or unchanged names are ignored.
func (c *Controller) RenameTarget(name string) bool {
	if name == "" {
		c.viewChanged()
		return false
	}
	target := c.selected
	if target == nil {
		target = c.focused
	}
	ok, _ := c.RenameNode(target, name)
	return ok
}

// RenameNode renames any reachable node without moving focus.
func (c *Controller) RenameNode(node *mindmap.Node, name string) (bool, error) {
	if !c.tree.Contains(node) {
		return false, mindmap.NotFoundError{Name: nameOf(node)}
	}
	if name == "" || !c.tree.Rename(node, name) {
		c.viewChanged()
		return false, nil
	}
	c.dataChanged()
	c.viewChanged()
	return true, nil
}

// CreateSampleChildren adds the placeholder children used to seed a demo.
func (c *Controller) CreateSampleChildren() {
	for _, name := range c.opts.SampleNames {
		c.CreateChild(name)
	}
}

func (c *Controller) focusOn(node *mindmap.Node) {
	c.focused = node
	c.selected = node.FirstChild()
}

func (c *Controller) notify(message string) {
	if c.opts.Notifier != nil {
		c.opts.Notifier.Show(message)
	}
}

func (c *Controller) viewChanged() {
	if c.opts.Observer != nil {
		c.opts.Observer.ViewChanged(c.View())
	}
}

func (c *Controller) dataChanged() {
	if c.opts.Observer != nil {
		c.opts.Observer.DataChanged(c.tree)
	}
}

func nameOf(n *mindmap.Node) string {
	if n == nil {
		return ""
	}
	return n.Name()
}

func cyclic(idx, delta, n int) int {
	return ((idx+delta)%n + n) % n
}
