package help

import (
	"strings"
	"testing"
)

func TestHelpRendersKeys(t *testing.T) {
	m := New(80, 40)
	if err := m.Err(); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	view := m.View()
	for _, want := range []string{"Navigate", "focus the parent"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in help view:\n%s", want, view)
		}
	}
}

func TestHelpMinimumSize(t *testing.T) {
	m := New(1, 1)
	if m.width != 32 || m.height != 8 {
		t.Fatalf("expected minimum size, got %dx%d", m.width, m.height)
	}
}
