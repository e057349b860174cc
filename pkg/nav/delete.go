package nav

import (
	"errors"

	"tableflip.dev/remap/pkg/mindmap"
)

// ErrAlreadyResolved is returned when a delete request is answered twice or
// after it was superseded.
var ErrAlreadyResolved = errors.New("nav: delete request already resolved")

// DeleteRequest is a deletion waiting on an external confirmation. It can be
// resolved exactly once.
type DeleteRequest struct {
	c        *Controller
	target   *mindmap.Node
	resolved bool
}

// Target is the node that will be removed on approval.
func (r *DeleteRequest) Target() *mindmap.Node {
	return r.target
}

// Resolved reports whether the request has been answered or dropped.
func (r *DeleteRequest) Resolved() bool {
	return r.resolved
}

// DeleteFocused asks to remove the focused node. The root cannot be removed.
// Otherwise the returned request must be resolved by the confirmation
// collaborator; nothing changes until then. A new request supersedes any
// earlier pending one.
func (c *Controller) DeleteFocused() (*DeleteRequest, error) {
	if c.focused.IsRoot() {
		c.notify(msgCannotDelete)
		return nil, mindmap.RootDeletionError{}
	}
	c.cancelPending()
	c.pending = &DeleteRequest{c: c, target: c.focused}
	return c.pending, nil
}

// Pending returns the outstanding delete request, if any.
func (c *Controller) Pending() *DeleteRequest {
	return c.pending
}

// Resolve answers the confirmation. On approval the target and its subtree
// are removed and focus moves to its former parent. A target that is no
// longer focused is reported as not found and left alone.
func (r *DeleteRequest) Resolve(approved bool) error {
	if r.resolved {
		return ErrAlreadyResolved
	}
	r.resolved = true
	c := r.c
	if c.pending == r {
		c.pending = nil
	}
	if !approved {
		c.viewChanged()
		return nil
	}
	if c.focused != r.target || !c.tree.Contains(r.target) {
		return mindmap.NotFoundError{Name: r.target.Name()}
	}
	parent := r.target.Parent()
	if err := c.tree.Remove(r.target); err != nil {
		return err
	}
	c.focusOn(parent)
	c.dataChanged()
	c.viewChanged()
	return nil
}

func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending.resolved = true
		c.pending = nil
	}
}
