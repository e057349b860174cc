package rename

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/remap/pkg/app"
)

// Rename gives the node at Path a new name.
type Rename struct {
	Path string
	Name string

	Service *app.Service
	Out     io.Writer
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rename, no service")
	}
	changed, err := n.Service.RenameAt(n.Path, n.Name)
	if err != nil {
		return err
	}
	if !changed {
		_, _ = color.New(color.Faint).Fprintln(n.Out, "name unchanged")
		return nil
	}
	_, err = fmt.Fprintf(n.Out, "renamed to %s\n", color.New(color.Bold).Sprint(n.Name))
	return err
}
