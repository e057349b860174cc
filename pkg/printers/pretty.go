package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/remap/pkg/codec"
)

type PrettyPrint struct {
	Out io.Writer
	// Depth limits how many levels below the root are printed; 0 prints all.
	Depth int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return os.Stdout
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " node")
	default:
		_, _ = c.Fprintln(pp.out(), " nodes")
	}
}

// depthColors cycle by level so siblings share a color.
var depthColors = []*color.Color{
	color.New(color.FgHiCyan),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiBlue),
}

// Tree prints doc as an indented outline with box-drawing branches.
func (pp *PrettyPrint) Tree(doc codec.Document) {
	root := color.New(color.Bold)
	_, _ = root.Fprintln(pp.out(), doc.Name)
	pp.children(doc.Children, "", 1)
	if len(doc.Children) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), " none")
	}
}

func (pp *PrettyPrint) children(docs []codec.Document, prefix string, depth int) {
	if pp.Depth > 0 && depth > pp.Depth {
		if len(docs) > 0 {
			f := color.New(color.Faint)
			_, _ = f.Fprintf(pp.out(), "%s└── … %d more\n", prefix, len(docs))
		}
		return
	}
	branch := color.New(color.Faint)
	c := depthColors[(depth-1)%len(depthColors)]
	for i, d := range docs {
		last := i == len(docs)-1
		joint, next := "├── ", "│   "
		if last {
			joint, next = "└── ", "    "
		}
		_, _ = branch.Fprint(pp.out(), prefix+joint)
		_, _ = c.Fprintln(pp.out(), d.Name)
		pp.children(d.Children, prefix+next, depth+1)
	}
}

// Path prints a breadcrumb, dimming everything but the last element.
func (pp *PrettyPrint) Path(path string) {
	parts := strings.Split(path, " / ")
	f := color.New(color.Faint)
	b := color.New(color.Bold)
	for i, p := range parts {
		if i == len(parts)-1 {
			_, _ = b.Fprintln(pp.out(), p)
			return
		}
		_, _ = f.Fprint(pp.out(), p+" / ")
	}
}
