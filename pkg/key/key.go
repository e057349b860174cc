package key

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Binding is one key of the interactive editor.
type Binding struct {
	Keys    []string
	Meaning string
}

// Group is a set of bindings that are active together.
type Group struct {
	Title    string
	Bindings []Binding
}

// Groups lists the editor's keys by mode.
func Groups() []Group {
	return []Group{
		{Title: "Navigate", Bindings: []Binding{
			{Keys: []string{"n", "j", "down"}, Meaning: "select the next child"},
			{Keys: []string{"p", "k", "up"}, Meaning: "select the previous child"},
			{Keys: []string{"enter"}, Meaning: "focus the selected child"},
			{Keys: []string{"esc"}, Meaning: "focus the parent"},
			{Keys: []string{"N", "J"}, Meaning: "focus the next sibling"},
			{Keys: []string{"P", "K"}, Meaning: "focus the previous sibling"},
			{Keys: []string{"1-9"}, Meaning: "focus the numbered child"},
		}},
		{Title: "Edit", Bindings: []Binding{
			{Keys: []string{"c"}, Meaning: "create a child under the focused node"},
			{Keys: []string{"r"}, Meaning: "rename the selected node"},
			{Keys: []string{"d"}, Meaning: "delete the focused node and its subtree"},
			{Keys: []string{"t"}, Meaning: "add three sample children"},
		}},
		{Title: "Other", Bindings: []Binding{
			{Keys: []string{"f"}, Meaning: "find nodes by name"},
			{Keys: []string{"y"}, Meaning: "copy the selected path"},
			{Keys: []string{"?"}, Meaning: "toggle this help"},
			{Keys: []string{"q", "ctrl+c"}, Meaning: "quit"},
		}},
	}
}

// Markdown renders the groups as a document for the help overlay.
func Markdown() string {
	var b strings.Builder
	b.WriteString("# remap keys\n")
	for _, g := range Groups() {
		fmt.Fprintf(&b, "\n## %s\n\n| Key | Action |\n| --- | --- |\n", g.Title)
		for _, k := range g.Bindings {
			fmt.Fprintf(&b, "| `%s` | %s |\n", strings.Join(k.Keys, "` `"), k.Meaning)
		}
	}
	return b.String()
}

// Key prints the key table.
type Key struct {
	Out io.Writer
}

func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)
	title := color.New(color.Bold, color.Underline)
	for i, g := range Groups() {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		_, _ = title.Fprintln(out, g.Title)
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Action"))
		for _, v := range g.Bindings {
			tbl.AddRow(strings.Join(v.Keys, " "), v.Meaning)
		}
		if _, err := fmt.Fprintln(out, tbl); err != nil {
			return err
		}
	}
	return nil
}
