package rm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/mindmap"
	"tableflip.dev/remap/pkg/snake"
)

// Rm deletes the node at Path and its subtree after a confirmation, unless
// Yes is set.
type Rm struct {
	Path string
	Yes  bool

	Service *app.Service
	In      io.Reader
	Out     io.Writer

	// Confirm overrides the interactive prompt.
	Confirm func(label string) (bool, error)
}

func (n *Rm) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	var promptErr error
	removed, err := n.Service.RemoveAt(n.Path, func(target *mindmap.Node) bool {
		if n.Yes {
			return true
		}
		label := fmt.Sprintf("Delete %q and its %d children", target.Path(), target.Len())
		ok, err := n.confirm(label)
		if err != nil {
			promptErr = err
			return false
		}
		return ok
	})
	if err != nil {
		return err
	}
	if promptErr != nil {
		return promptErr
	}
	if !removed {
		_, _ = color.New(color.Faint).Fprintln(n.Out, "delete cancelled")
		return nil
	}
	_, err = fmt.Fprintln(n.Out, "deleted")
	return err
}

func (n *Rm) confirm(label string) (bool, error) {
	if n.Confirm != nil {
		return n.Confirm(label)
	}
	return snake.Confirm(label, n.In, n.Out)
}
