package ui

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/remap/pkg/app"
)

func TestUIRequiresService(t *testing.T) {
	u := UI{Terminal: func() bool { return true }}
	if err := u.Do(context.Background()); err == nil {
		t.Fatalf("expected an error without a service")
	}
}

func TestUIRequiresTerminal(t *testing.T) {
	u := UI{Service: &app.Service{}, Terminal: func() bool { return false }}
	if err := u.Do(context.Background()); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
}
