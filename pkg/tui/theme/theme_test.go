package theme

import (
	"strings"
	"testing"
)

func TestGradientEndpoints(t *testing.T) {
	g := Gradient("#000000", "#ffffff", 3)
	if len(g) != 3 {
		t.Fatalf("expected 3 colors, got %d", len(g))
	}
	if g[0] != "#000000" || !strings.EqualFold(g[2], "#ffffff") {
		t.Fatalf("unexpected endpoints %v", g)
	}
}

func TestGradientRejectsBadInput(t *testing.T) {
	if g := Gradient("nope", "#ffffff", 3); g != nil {
		t.Fatalf("expected nil for a bad color, got %v", g)
	}
	if g := Gradient("#000000", "#ffffff", 0); g != nil {
		t.Fatalf("expected nil for zero steps, got %v", g)
	}
}
