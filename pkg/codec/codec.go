// Package codec converts an outline tree to and from a flat, cycle-free
// document. Parent references are dropped on the way out and rebuilt top-down
// on the way in.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"tableflip.dev/remap/pkg/mindmap"
)

// Document is the persisted shape of a node.
type Document struct {
	Name     string     `json:"name" yaml:"name"`
	Children []Document `json:"children" yaml:"children"`
}

// MalformedPersistedDataError reports input that does not have the expected
// document shape.
type MalformedPersistedDataError struct {
	Err error
}

func (e *MalformedPersistedDataError) Error() string {
	if e.Err == nil {
		return "codec: malformed persisted data"
	}
	return fmt.Sprintf("codec: malformed persisted data: %v", e.Err)
}

func (e *MalformedPersistedDataError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is, or wraps, a MalformedPersistedDataError.
func IsMalformed(err error) bool {
	var target *MalformedPersistedDataError
	return errors.As(err, &target)
}

// Format selects a text encoding for Encode and Decode.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml; empty means json.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("codec: unknown format %q", raw)
	}
}

// Serialize flattens the subtree under root.
func Serialize(root *mindmap.Node) Document {
	doc := Document{Name: root.Name(), Children: make([]Document, 0, root.Len())}
	for _, c := range root.Children() {
		doc.Children = append(doc.Children, Serialize(c))
	}
	return doc
}

// Deserialize rebuilds a tree, creating each node under its freshly created
// parent.
func Deserialize(doc Document) *mindmap.Tree {
	tree := mindmap.New(doc.Name)
	if doc.Name == "" {
		tree.Rename(tree.Root(), "")
	}
	var build func(parent *mindmap.Node, children []Document)
	build = func(parent *mindmap.Node, children []Document) {
		for _, c := range children {
			build(tree.AddChild(parent, c.Name), c.Children)
		}
	}
	build(tree.Root(), doc.Children)
	return tree
}

// Marshal encodes the whole tree as JSON.
func Marshal(tree *mindmap.Tree) ([]byte, error) {
	return json.Marshal(Serialize(tree.Root()))
}

// Unmarshal decodes JSON produced by Marshal.
func Unmarshal(data []byte) (*mindmap.Tree, error) {
	return Decode(bytes.NewReader(data), FormatJSON)
}

// Encode writes the tree to w in the given format.
func Encode(w io.Writer, tree *mindmap.Tree, format Format) error {
	doc := Serialize(tree.Root())
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("codec: unknown format %q", format)
	}
}

// rawDocument keeps required fields distinguishable from zero values.
type rawDocument struct {
	Name     *string        `json:"name" yaml:"name"`
	Children []*rawDocument `json:"children" yaml:"children"`
}

var errTrailingData = errors.New("trailing data after document")

// Decode reads a tree in the given format. Shape errors are reported as
// *MalformedPersistedDataError.
func Decode(r io.Reader, format Format) (*mindmap.Tree, error) {
	var raw *rawDocument
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			return nil, &MalformedPersistedDataError{Err: err}
		}
		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, &MalformedPersistedDataError{Err: errTrailingData}
		}
	case FormatJSON, "":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return nil, &MalformedPersistedDataError{Err: err}
		}
		rest, err := io.ReadAll(io.MultiReader(dec.Buffered(), r))
		if err != nil {
			return nil, err
		}
		if len(bytes.TrimSpace(rest)) > 0 {
			return nil, &MalformedPersistedDataError{Err: errTrailingData}
		}
	default:
		return nil, fmt.Errorf("codec: unknown format %q", format)
	}
	doc, err := raw.document("root")
	if err != nil {
		return nil, &MalformedPersistedDataError{Err: err}
	}
	return Deserialize(doc), nil
}

func (r *rawDocument) document(at string) (Document, error) {
	if r == nil {
		return Document{}, fmt.Errorf("%s: expected an object", at)
	}
	if r.Name == nil {
		return Document{}, fmt.Errorf("%s: missing name", at)
	}
	doc := Document{Name: *r.Name, Children: make([]Document, 0, len(r.Children))}
	for i, c := range r.Children {
		child, err := c.document(fmt.Sprintf("%s.children[%d]", at, i))
		if err != nil {
			return Document{}, err
		}
		doc.Children = append(doc.Children, child)
	}
	return doc, nil
}
