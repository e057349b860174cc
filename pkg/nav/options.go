package nav

import (
	"fmt"
	"strings"

	"tableflip.dev/remap/pkg/mindmap"
)

// SelectionPolicy decides what happens to the selection when focus moves to
// a sibling.
type SelectionPolicy int

const (
	// KeepSelection leaves the selection untouched after sibling navigation.
	KeepSelection SelectionPolicy = iota
	// ResetSelection selects the new focus's first child.
	ResetSelection
)

func (p SelectionPolicy) String() string {
	switch p {
	case ResetSelection:
		return "reset"
	default:
		return "keep"
	}
}

// ParseSelectionPolicy accepts "keep" or "reset"; empty means keep.
func ParseSelectionPolicy(raw string) (SelectionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "keep":
		return KeepSelection, nil
	case "reset":
		return ResetSelection, nil
	default:
		return KeepSelection, fmt.Errorf("nav: unknown sibling selection policy %q", raw)
	}
}

// DefaultSampleNames are the placeholders added by CreateSampleChildren.
var DefaultSampleNames = []string{"fake 1", "fake 2", "fake 3"}

// View is what a renderer needs after a change: the focused node, its direct
// children and the highlighted child.
type View struct {
	Focused  *mindmap.Node
	Children []*mindmap.Node
	Selected *mindmap.Node
}

// Observer receives change events. DataChanged fires once per tree mutation.
type Observer interface {
	ViewChanged(v View)
	DataChanged(tree *mindmap.Tree)
}

// Notifier shows transient messages.
type Notifier interface {
	Show(message string)
}

// Options configure a Controller. Nil collaborators are ignored.
type Options struct {
	Observer         Observer
	Notifier         Notifier
	SiblingSelection SelectionPolicy
	SampleNames      []string
}

const (
	msgNoSiblings   = "No siblings"
	msgCannotDelete = "Cannot delete root"
)
