package printers

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"tableflip.dev/remap/pkg/codec"
	"tableflip.dev/remap/pkg/tui/theme"
)

const (
	ringGap      = 140
	radialMargin = 120
	nodeRadius   = 6
)

type placed struct {
	doc    codec.Document
	x, y   float64
	depth  int
	parent int
}

// Radial draws doc as an SVG mindmap: the root in the middle and every level
// on its own ring, each subtree getting a wedge sized by its leaf count.
func Radial(w io.Writer, doc codec.Document) error {
	depth := maxDepth(doc)
	size := 2 * (depth*ringGap + radialMargin)
	center := float64(size) / 2

	nodes := []placed{{doc: doc, x: center, y: center, parent: -1}}
	layout(&nodes, 0, 0, 2*math.Pi, center)

	colors := theme.Gradient("#5FAFFF", "#FF5FD7", max(depth, 1))

	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#1e1e2e")
	for _, n := range nodes[1:] {
		p := nodes[n.parent]
		canvas.Line(int(p.x), int(p.y), int(n.x), int(n.y), "stroke:#6c7086;stroke-width:1.5")
	}
	for i, n := range nodes {
		fill := "#f5f5f5"
		if i > 0 && len(colors) > 0 {
			fill = colors[(n.depth-1)%len(colors)]
		}
		canvas.Circle(int(n.x), int(n.y), nodeRadius, fmt.Sprintf("fill:%s", fill))
		style := fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace;text-anchor:middle", fill)
		if i == 0 {
			style += ";font-weight:bold"
		}
		canvas.Text(int(n.x), int(n.y)-nodeRadius-6, n.doc.Name, style)
	}
	canvas.End()
	return nil
}

// layout places the children of nodes[idx] inside the wedge [from, to).
func layout(nodes *[]placed, idx int, from, to, center float64) {
	parent := (*nodes)[idx]
	total := 0
	for _, c := range parent.doc.Children {
		total += leaves(c)
	}
	at := from
	for _, c := range parent.doc.Children {
		span := (to - from) * float64(leaves(c)) / float64(total)
		mid := at + span/2
		r := float64((parent.depth + 1) * ringGap)
		*nodes = append(*nodes, placed{
			doc:    c,
			x:      center + r*math.Cos(mid),
			y:      center + r*math.Sin(mid),
			depth:  parent.depth + 1,
			parent: idx,
		})
		layout(nodes, len(*nodes)-1, at, at+span, center)
		at += span
	}
}

func leaves(doc codec.Document) int {
	if len(doc.Children) == 0 {
		return 1
	}
	n := 0
	for _, c := range doc.Children {
		n += leaves(c)
	}
	return n
}

func maxDepth(doc codec.Document) int {
	d := 0
	for _, c := range doc.Children {
		if cd := maxDepth(c) + 1; cd > d {
			d = cd
		}
	}
	return d
}
