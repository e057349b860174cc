package mindmap

import (
	"errors"
	"fmt"
)

// RootDeletionError is returned when a caller tries to remove the root.
type RootDeletionError struct{}

func (RootDeletionError) Error() string {
	return "cannot delete root"
}

// NoSiblingsError is returned by sibling navigation when the focused node is
// the root or an only child.
type NoSiblingsError struct {
	Name string
}

func (e NoSiblingsError) Error() string {
	if e.Name == "" {
		return "no siblings"
	}
	return fmt.Sprintf("no siblings: %s", e.Name)
}

// NotFoundError reports a lookup or focus target that is absent from the tree.
type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("node not found: %s", e.Name)
}

// IsRootDeletion reports whether err is, or wraps, a RootDeletionError.
func IsRootDeletion(err error) bool {
	var target RootDeletionError
	return errors.As(err, &target)
}

// IsNoSiblings reports whether err is, or wraps, a NoSiblingsError.
func IsNoSiblings(err error) bool {
	var target NoSiblingsError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}
