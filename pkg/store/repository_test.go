package store

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"tableflip.dev/remap/pkg/mindmap"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()
	base := t.TempDir()
	cfg := StaticConfig{Path: base}
	kv, err := Load(cfg)
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return NewRepository(kv, cfg, quietLogger()), base
}

func TestKVGetSet(t *testing.T) {
	kv, err := Load(StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := kv.Set("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set("k", "v2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := kv.Get("k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("Get(k) = %q, %v, %v", v, ok, err)
	}
	if err := kv.Set("a/b", "x"); err == nil {
		t.Fatalf("expected error for a key with a separator")
	}
	if err := kv.Set("", "x"); err == nil {
		t.Fatalf("expected error for an empty key")
	}
}

func TestKVSetRenamesIntoPlace(t *testing.T) {
	base := t.TempDir()
	kv, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := kv.Set("k", "whole"); err != nil {
		t.Fatalf("set: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(base, "k"))
	if err != nil || string(data) != "whole" {
		t.Fatalf("stored file = %q, %v", data, err)
	}
	left, err := os.ReadDir(filepath.Join(base, tempDirName))
	if err != nil {
		t.Fatalf("read temp dir: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected no temp files after a write, got %d", len(left))
	}
	if err := kv.Set(tempDirName, "x"); err == nil {
		t.Fatalf("expected the temp dir name to be refused as a key")
	}
}

func TestKVGetSeesExternalWrites(t *testing.T) {
	base := t.TempDir()
	kv, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := kv.Set("k", "mine"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "k"), []byte("theirs"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	v, _, err := kv.Get("k")
	if err != nil || v != "theirs" {
		t.Fatalf("Get(k) = %q, %v", v, err)
	}
}

func TestLoadTreeColdStart(t *testing.T) {
	repo, _ := newTestRepository(t)
	tree, err := repo.LoadTree()
	if err != nil {
		t.Fatalf("load tree: %v", err)
	}
	if tree.Root().Name() != mindmap.DefaultRootName || tree.Root().Len() != 0 {
		t.Fatalf("expected a fresh root, got %v with %d children", tree.Root(), tree.Root().Len())
	}
}

func TestLoadTreeMalformedFallsBack(t *testing.T) {
	for name, payload := range map[string]string{
		"garbage":      "not json",
		"missing name": `{"children":[]}`,
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			repo, _ := newTestRepository(t)
			if err := repo.KV.Set(repo.Key, payload); err != nil {
				t.Fatalf("set: %v", err)
			}
			tree, err := repo.LoadTree()
			if err != nil {
				t.Fatalf("expected cold start, got %v", err)
			}
			if tree.Len() != 1 {
				t.Fatalf("expected a single root, got %d nodes", tree.Len())
			}
		})
	}
}

func TestSaveThenLoadTree(t *testing.T) {
	repo, base := newTestRepository(t)
	tree := mindmap.New("root")
	a := tree.AddChild(tree.Root(), "a")
	tree.AddChild(a, "a1")

	payload, err := repo.SaveTree(tree)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	onDisk, err := os.ReadFile(filepath.Join(base, DefaultKey))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(onDisk) != payload {
		t.Fatalf("returned payload differs from stored file")
	}

	got, err := repo.LoadTree()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a1 := got.FindExact("a1", nil)
	if a1 == nil || a1.Parent().Name() != "a" {
		t.Fatalf("tree not restored: %v", got.FindNodes(""))
	}
}
