package snake

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseBool(t *testing.T) {
	for in, want := range map[string]bool{"yes": true, "Y": true, "1": true, "no": false, "N": false, "false": false} {
		got, err := ParseBool(in)
		if err != nil || got != want {
			t.Fatalf("ParseBool(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Fatalf("expected an error for maybe")
	}
}

func TestPickMatchWithoutChoices(t *testing.T) {
	_, err := PickMatch(nil, &bytes.Buffer{}, &bytes.Buffer{})
	if !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices, got %v", err)
	}
}
