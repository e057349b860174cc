package find

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/search"
	"tableflip.dev/remap/pkg/snake"
)

// Find lists nodes whose names contain Query.
type Find struct {
	Query       string
	Limit       int
	Interactive bool

	Service *app.Service
	In      io.Reader
	Out     io.Writer
}

func (n *Find) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not find, no service")
	}
	matches := n.Service.Find(n.Query, n.Limit)

	if n.Interactive {
		picked, err := snake.PickMatch(matches, n.In, n.Out)
		if err != nil {
			if errors.Is(err, snake.ErrNoChoices) {
				_, _ = fmt.Fprintln(n.Out, "no matches")
				return nil
			}
			return err
		}
		_, err = fmt.Fprintln(n.Out, picked.Path)
		return err
	}

	_, err := fmt.Fprintln(n.Out, Table(matches))
	return err
}

// Table renders matches as NAME / PATH columns.
func Table(matches []search.Match) *uitable.Table {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("NAME"), bold.Sprint("PATH"))
	for _, m := range matches {
		tbl.AddRow(m.Name(), faint.Sprint(m.Path))
	}
	if len(matches) == 0 {
		tbl.AddRow(faint.Sprint("no matches"), "")
	}
	return tbl
}
