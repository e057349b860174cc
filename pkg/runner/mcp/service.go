// Package mcp provides the Model Context Protocol server integration for remap.
package mcp

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/codec"
	"tableflip.dev/remap/pkg/mindmap"
)

// Service adapts the editing session to the operations exposed over MCP.
type Service struct {
	App *app.Service
}

// ErrConfirmRequired is returned by DeleteNode when the caller did not
// acknowledge that the subtree goes with the node.
var ErrConfirmRequired = errors.New("delete requires confirm=true")

// NodeDTO is a transport-friendly projection of a node.
type NodeDTO struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Depth    int    `json:"depth"`
	Children int    `json:"children"`
}

// DeleteResult describes a removed subtree.
type DeleteResult struct {
	Path    string `json:"path"`
	Removed int    `json:"removed"`
}

// NewService builds a service wrapper around an editing session.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

// Tree snapshots the subtree at path, cut below depth levels when depth > 0.
func (s *Service) Tree(ctx context.Context, path string, depth int) (codec.Document, error) {
	if s.App == nil {
		return codec.Document{}, errors.New("service is not configured")
	}
	doc, err := s.App.ShowAt(path)
	if err != nil {
		return codec.Document{}, err
	}
	if depth > 0 {
		doc = prune(doc, depth)
	}
	return doc, nil
}

func prune(doc codec.Document, depth int) codec.Document {
	if depth <= 0 {
		return codec.Document{Name: doc.Name, Children: []codec.Document{}}
	}
	out := codec.Document{Name: doc.Name, Children: make([]codec.Document, len(doc.Children))}
	for i, c := range doc.Children {
		out.Children[i] = prune(c, depth-1)
	}
	return out
}

// FindNodes returns nodes whose names contain query.
func (s *Service) FindNodes(ctx context.Context, query string, limit int) ([]NodeDTO, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is required")
	}
	matches := s.App.Find(query, limit)
	out := make([]NodeDTO, len(matches))
	for i, m := range matches {
		out[i] = NodeDTO{
			Name:     m.Name(),
			Path:     m.Path,
			Depth:    m.Node.Depth(),
			Children: m.Node.Len(),
		}
	}
	return out, nil
}

// AddNode creates name under the node at parent.
func (s *Service) AddNode(ctx context.Context, parent, name string) (*NodeDTO, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}
	n, err := s.App.AddAt(parent, name)
	if err != nil {
		return nil, err
	}
	dto := toDTO(n)
	return &dto, nil
}

// RenameNode renames the node at path.
func (s *Service) RenameNode(ctx context.Context, path, name string) (*NodeDTO, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}
	n, err := s.App.Lookup(path)
	if err != nil {
		return nil, err
	}
	if _, err := s.App.RenameAt(path, name); err != nil {
		return nil, err
	}
	dto := toDTO(n)
	return &dto, nil
}

// DeleteNode removes the node at path with its subtree. The root can not be
// deleted.
func (s *Service) DeleteNode(ctx context.Context, path string, confirm bool) (*DeleteResult, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}
	if !confirm {
		return nil, ErrConfirmRequired
	}
	var res DeleteResult
	_, err := s.App.RemoveAt(path, func(n *mindmap.Node) bool {
		res.Path = n.Path()
		res.Removed = count(n)
		return true
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func count(n *mindmap.Node) int {
	total := 1
	for _, c := range n.Children() {
		total += count(c)
	}
	return total
}

func toDTO(n *mindmap.Node) NodeDTO {
	return NodeDTO{
		Name:     n.Name(),
		Path:     n.Path(),
		Depth:    n.Depth(),
		Children: n.Len(),
	}
}
