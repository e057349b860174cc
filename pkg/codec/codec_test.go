package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"tableflip.dev/remap/pkg/mindmap"
)

func TestMarshalOmitsParent(t *testing.T) {
	tree := mindmap.New("root")
	c := tree.AddChild(tree.Root(), "C")
	tree.AddChild(c, "C1")

	data, err := Marshal(tree)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"root","children":[{"name":"C","children":[{"name":"C1","children":[]}]}]}`
	if string(data) != want {
		t.Fatalf("unexpected payload\n got: %s\nwant: %s", data, want)
	}
	if strings.Contains(string(data), "parent") {
		t.Fatalf("parent reference leaked into payload")
	}
}

func TestUnmarshalRestoresParents(t *testing.T) {
	tree, err := Unmarshal([]byte(`{"name":"root","children":[{"name":"a","children":[{"name":"b"}]},{"name":"c","children":null}]}`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := tree.Validate(); err != nil {
		t.Fatalf("invalid tree: %v", err)
	}
	b := tree.FindExact("b", nil)
	if b == nil || b.Parent().Name() != "a" || b.Parent().Parent() != tree.Root() {
		t.Fatalf("parent chain not restored for b")
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":          `{"name":`,
		"null":              `null`,
		"array":             `[{"name":"root"}]`,
		"string":            `"root"`,
		"missing name":      `{"children":[]}`,
		"child missing":     `{"name":"root","children":[{"children":[]}]}`,
		"null child":        `{"name":"root","children":[null]}`,
		"children object":   `{"name":"root","children":{"name":"x"}}`,
		"name not a string": `{"name":5}`,
		"unknown field":     `{"name":"root","parent":{}}`,
		"trailing":          `{"name":"root"}{"name":"again"}`,
		"stray brace":       `{"name":"a"}}`,
		"stray bracket":     `{"name":"a","children":[{"name":"b"}]}]`,
		"trailing text":     "{\"name\":\"a\"}\n garbage",
		"empty":             ``,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal([]byte(input))
			if !IsMalformed(err) {
				t.Fatalf("expected MalformedPersistedDataError, got %v", err)
			}
		})
	}
}

func TestEncodeDecodeYAML(t *testing.T) {
	tree := mindmap.New("root")
	a := tree.AddChild(tree.Root(), "a")
	tree.AddChild(a, "a1")
	tree.AddChild(tree.Root(), "b")

	var buf bytes.Buffer
	if err := Encode(&buf, tree, FormatYAML); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(&buf, FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(Serialize(tree.Root()), Serialize(got.Root())); diff != "" {
		t.Fatalf("yaml round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAMLMalformed(t *testing.T) {
	for _, input := range []string{
		"name: root\nextra: 1\n",
		"name: root\n---\nname: again\n",
	} {
		_, err := Decode(strings.NewReader(input), FormatYAML)
		if !IsMalformed(err) {
			t.Fatalf("Decode(%q): expected MalformedPersistedDataError, got %v", input, err)
		}
	}
}

func TestDecodeAllowsTrailingWhitespace(t *testing.T) {
	tree, err := Decode(strings.NewReader("{\"name\":\"a\",\"children\":[]}\n\n  "), FormatJSON)
	if err != nil || tree.Root().Name() != "a" {
		t.Fatalf("Decode = %v, %v", tree, err)
	}
}

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]Format{"": FormatJSON, "JSON": FormatJSON, "yml": FormatYAML, "yaml": FormatYAML} {
		got, err := ParseFormat(raw)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}

func TestRoundTripPreservesStructure(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tree := mindmap.New(rapid.StringMatching(`[a-z]{0,4}`).Draw(rt, "root"))
		nodes := []*mindmap.Node{tree.Root()}
		count := rapid.IntRange(0, 40).Draw(rt, "count")
		for i := 0; i < count; i++ {
			parent := rapid.SampledFrom(nodes).Draw(rt, "parent")
			name := rapid.String().Draw(rt, "name")
			nodes = append(nodes, tree.AddChild(parent, name))
		}

		data, err := Marshal(tree)
		if err != nil {
			rt.Fatalf("marshal: %v", err)
		}
		got, err := Unmarshal(data)
		if err != nil {
			rt.Fatalf("unmarshal: %v", err)
		}
		if diff := cmp.Diff(Serialize(tree.Root()), Serialize(got.Root())); diff != "" {
			rt.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
		if err := got.Validate(); err != nil {
			rt.Fatalf("round trip broke invariants: %v", err)
		}
		if got.Root() == tree.Root() {
			rt.Fatalf("expected fresh nodes after round trip")
		}
	})
}
