package app

import (
	"tableflip.dev/remap/pkg/mindmap"
)

// Report summarises the stored tree for the info command.
type Report struct {
	Path     string
	Key      string
	Nodes    int
	Leaves   int
	MaxDepth int
	Bytes    int
	Focused  string
}

// Report describes the session tree and where it is stored.
func (s *Service) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Report{
		Path:    s.Repository.KV.BasePath(),
		Key:     s.Repository.Key,
		Bytes:   len(s.lastWrite),
		Focused: s.ctl.Focused().Path(),
	}
	s.ctl.Tree().Walk(nil, func(n *mindmap.Node) bool {
		r.Nodes++
		if n.Len() == 0 {
			r.Leaves++
		}
		if d := n.Depth(); d > r.MaxDepth {
			r.MaxDepth = d
		}
		return true
	})
	return r
}
