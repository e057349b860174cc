package transfer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/codec"
	"tableflip.dev/remap/pkg/logging"
	"tableflip.dev/remap/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(store.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("store.Load: %v", err)
	}
	svc, err := app.New(&store.Repository{KV: p, Log: logging.Discard()}, app.Options{Log: logging.Discard()})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	return svc
}

func TestExportToFileImportFromFile(t *testing.T) {
	src := newService(t)
	if _, err := src.AddAt("", "ideas"); err != nil {
		t.Fatalf("add: %v", err)
	}
	file := filepath.Join(t.TempDir(), "map.yaml")

	e := Export{File: file, Format: codec.FormatYAML, Service: src}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}
	raw, err := os.ReadFile(file)
	if err != nil || !strings.Contains(string(raw), "ideas") {
		t.Fatalf("unexpected export file %q, %v", raw, err)
	}

	dst := newService(t)
	var out bytes.Buffer
	i := Import{File: file, Format: codec.FormatYAML, Service: dst, Out: &out}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := dst.Show(); len(got.Children) != 1 || got.Children[0].Name != "ideas" {
		t.Fatalf("unexpected imported tree %+v", got)
	}
	if out.String() != "imported 2 nodes\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestImportMalformedKeepsTree(t *testing.T) {
	svc := newService(t)
	if _, err := svc.AddAt("", "keep me"); err != nil {
		t.Fatalf("add: %v", err)
	}
	i := Import{File: "-", Service: svc, In: strings.NewReader(`[1,2,3]`), Out: &bytes.Buffer{}}
	if err := i.Do(context.Background()); !codec.IsMalformed(err) {
		t.Fatalf("expected malformed error, got %v", err)
	}
	if got := svc.Show(); len(got.Children) != 1 {
		t.Fatalf("malformed import changed the tree")
	}
}
