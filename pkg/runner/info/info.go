package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uitable"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/store"
)

// Info reports where the tree is stored and how big it is.
type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if override := os.Getenv("REMAP_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(n.Out, "REMAP_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(n.Out, "REMAP_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Service == nil {
		return errors.New("failed to create service")
	}

	r := n.Service.Report()
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Config.path:", n.Config.BasePath())
	tbl.AddRow("Config.key:", r.Key)
	tbl.AddRow("Sibling selection:", n.Config.SiblingSelection())
	tbl.AddRow("Notify delay:", n.Config.NotifyDelay().String())
	tbl.AddRow("Nodes:", r.Nodes)
	tbl.AddRow("Leaves:", r.Leaves)
	tbl.AddRow("Max depth:", r.MaxDepth)
	tbl.AddRow("Stored bytes:", r.Bytes)
	tbl.RightAlign(0)
	_, err := fmt.Fprintln(n.Out, tbl)
	return err
}
