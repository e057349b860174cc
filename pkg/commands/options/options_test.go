package options

import (
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/remap/pkg/codec"
)

func TestFormatOptions(t *testing.T) {
	o := &FormatOptions{}
	cmd := &cobra.Command{Use: "export"}
	AddFormatArgs(cmd, o)
	if err := cmd.ParseFlags([]string{"--format", "yml", "--file", "out.yaml"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	f, err := o.Format()
	if err != nil || f != codec.FormatYAML {
		t.Fatalf("format = %q, %v", f, err)
	}
	if o.File != "out.yaml" {
		t.Fatalf("file = %q", o.File)
	}

	o.Raw = "toml"
	if _, err := o.Format(); err == nil {
		t.Fatalf("expected an error for toml")
	}
}

func TestJoinArgs(t *testing.T) {
	if got := JoinArgs([]string{" water", "the", "plants "}); got != "water the plants" {
		t.Fatalf("JoinArgs = %q", got)
	}
	if got := JoinArgs(nil); got != "" {
		t.Fatalf("JoinArgs(nil) = %q", got)
	}
}
