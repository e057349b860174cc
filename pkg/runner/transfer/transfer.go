// Package transfer moves whole trees between the store and files.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/codec"
	"tableflip.dev/remap/pkg/printers"
)

// Export writes the tree to File, or Out when File is empty or "-". With SVG
// set it draws a radial picture instead of a document.
type Export struct {
	File   string
	Format codec.Format
	SVG    bool

	Service *app.Service
	Out     io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	if n.File == "" || n.File == "-" {
		return n.write(n.Out)
	}
	f, err := os.Create(n.File)
	if err != nil {
		return err
	}
	if err := n.write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (n *Export) write(w io.Writer) error {
	if n.SVG {
		return printers.Radial(w, n.Service.Show())
	}
	return n.Service.Export(w, n.Format)
}

// Import replaces the stored tree with the one in File, or In when File is
// "-". Malformed input is rejected and the stored tree is kept.
type Import struct {
	File   string
	Format codec.Format

	Service *app.Service
	In      io.Reader
	Out     io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}
	r := n.In
	if n.File != "" && n.File != "-" {
		f, err := os.Open(n.File)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	tree, err := n.Service.Import(r, n.Format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(n.Out, "imported %d nodes\n", tree.Len())
	return err
}
