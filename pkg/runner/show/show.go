package show

import (
	"context"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/printers"
)

// Show prints the tree, or the subtree at Path, as a colored outline.
type Show struct {
	Path  string
	Depth int
	JSON  bool

	Service *app.Service
	Out     io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	doc, err := n.Service.ShowAt(n.Path)
	if err != nil {
		return err
	}
	if n.JSON {
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(n.Out, string(b))
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, Depth: n.Depth}
	pp.Tree(doc)
	return nil
}
