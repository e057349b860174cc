package printers

import (
	"bytes"
	"strings"
	"testing"

	"tableflip.dev/remap/pkg/codec"
)

func TestRadialDrawsEveryNode(t *testing.T) {
	doc := codec.Document{Name: "root", Children: []codec.Document{
		{Name: "ideas", Children: []codec.Document{{Name: "garden"}, {Name: "<b>bold</b>"}}},
		{Name: "todo"},
	}}
	var buf bytes.Buffer
	if err := Radial(&buf, doc); err != nil {
		t.Fatalf("Radial: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "<circle"); got != 5 {
		t.Fatalf("expected 5 circles, got %d", got)
	}
	if got := strings.Count(out, "<line"); got != 4 {
		t.Fatalf("expected 4 edges, got %d", got)
	}
	if !strings.Contains(out, "&lt;b&gt;bold&lt;/b&gt;") || strings.Contains(out, "<b>") {
		t.Fatalf("names must be escaped:\n%s", out)
	}
	if !strings.Contains(out, `width="800"`) {
		t.Fatalf("expected an 800px canvas for depth 2:\n%s", out[:200])
	}
}

func TestRadialRootOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := Radial(&buf, codec.Document{Name: "root"}); err != nil {
		t.Fatalf("Radial: %v", err)
	}
	if strings.Count(buf.String(), "<circle") != 1 {
		t.Fatalf("expected just the root")
	}
}
