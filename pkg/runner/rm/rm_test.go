package rm

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/logging"
	"tableflip.dev/remap/pkg/mindmap"
	"tableflip.dev/remap/pkg/store"
)

type memoryStore map[string]string

func (m memoryStore) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memoryStore) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m memoryStore) Watch(context.Context) (<-chan store.Event, error) { return nil, nil }
func (m memoryStore) BasePath() string                                 { return "memory" }

func newService(t *testing.T) *app.Service {
	t.Helper()
	ms := memoryStore{store.DefaultKey: `{"name":"root","children":[{"name":"ideas","children":[{"name":"garden","children":[]}]}]}`}
	svc, err := app.New(&store.Repository{KV: ms, Log: logging.Discard()}, app.Options{Log: logging.Discard()})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	return svc
}

func TestRmAsks(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer
	var asked string
	r := Rm{
		Path:    "ideas",
		Service: svc,
		Out:     &out,
		Confirm: func(label string) (bool, error) {
			asked = label
			return false, nil
		},
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(asked, `"root / ideas" and its 1 children`) {
		t.Fatalf("unexpected prompt %q", asked)
	}
	if !strings.Contains(out.String(), "delete cancelled") {
		t.Fatalf("unexpected output %q", out.String())
	}
	if _, err := svc.Lookup("ideas/garden"); err != nil {
		t.Fatalf("declined delete removed the node")
	}
}

func TestRmYes(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer
	r := Rm{
		Path:    "ideas",
		Yes:     true,
		Service: svc,
		Out:     &out,
		Confirm: func(string) (bool, error) {
			t.Fatalf("--yes must not prompt")
			return false, nil
		},
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if _, err := svc.Lookup("ideas"); !mindmap.IsNotFound(err) {
		t.Fatalf("expected ideas removed, got %v", err)
	}
}

func TestRmPromptError(t *testing.T) {
	svc := newService(t)
	boom := errors.New("closed")
	r := Rm{
		Path:    "ideas",
		Service: svc,
		Out:     &bytes.Buffer{},
		Confirm: func(string) (bool, error) { return false, boom },
	}
	if err := r.Do(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected prompt error, got %v", err)
	}
}

func TestRmRoot(t *testing.T) {
	r := Rm{Path: "root", Yes: true, Service: newService(t), Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); !mindmap.IsRootDeletion(err) {
		t.Fatalf("expected root deletion error, got %v", err)
	}
}
