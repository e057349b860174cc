package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/printers"
)

// Add creates Name under the node at Parent and prints the parent.
type Add struct {
	Parent string
	Name   string

	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	node, err := n.Service.AddAt(n.Parent, n.Name)
	if err != nil {
		return err
	}

	doc, err := n.Service.ShowAt(node.Parent().Path())
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, Depth: 1}
	pp.Path(node.Path())
	pp.NewLine()
	pp.Tree(doc)
	return nil
}
