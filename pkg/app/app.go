package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"tableflip.dev/remap/pkg/codec"
	"tableflip.dev/remap/pkg/mindmap"
	"tableflip.dev/remap/pkg/nav"
	"tableflip.dev/remap/pkg/search"
	"tableflip.dev/remap/pkg/store"
)

// Service owns one editing session: the tree, its navigation state and the
// repository it is saved to. UIs, CLIs and the MCP server share it.
type Service struct {
	Repository *store.Repository
	Log        logrus.FieldLogger

	// OnView, when set, receives every view change.
	OnView func(nav.View)

	mu        sync.Mutex
	ctl       *nav.Controller
	memo      *search.Memo
	lastWrite string
	saveErr   error
}

// Options configure a new Service.
type Options struct {
	Log              logrus.FieldLogger
	SiblingSelection nav.SelectionPolicy
	Notifier         nav.Notifier
	OnView           func(nav.View)
}

var ErrNameRequired = errors.New("app: name required")

// New loads the stored tree and focuses its root.
func New(repo *store.Repository, opts Options) (*Service, error) {
	if repo == nil {
		return nil, errors.New("app: no repository configured")
	}
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	tree, err := repo.LoadTree()
	if err != nil {
		return nil, fmt.Errorf("app: load tree: %w", err)
	}
	s := &Service{
		Repository: repo,
		Log:        log,
		OnView:     opts.OnView,
		memo:       search.NewMemo(),
	}
	if raw, ok, err := repo.Raw(); err == nil && ok {
		s.lastWrite = raw
	}
	s.ctl = nav.New(tree, nav.Options{
		Observer:         s,
		Notifier:         opts.Notifier,
		SiblingSelection: opts.SiblingSelection,
	})
	return s, nil
}

// ViewChanged forwards the view to OnView.
func (s *Service) ViewChanged(v nav.View) {
	if s.OnView != nil {
		s.OnView(v)
	}
}

// DataChanged writes the tree before the triggering operation returns.
func (s *Service) DataChanged(tree *mindmap.Tree) {
	payload, err := s.Repository.SaveTree(tree)
	if err != nil {
		s.Log.WithError(err).Error("saving tree failed")
		s.saveErr = err
		return
	}
	s.lastWrite = payload
}

// Do runs fn against the controller while holding the session lock. A failed
// save during fn is reported if fn itself succeeded.
func (s *Service) Do(fn func(c *nav.Controller) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.do(fn)
}

func (s *Service) do(fn func(c *nav.Controller) error) error {
	s.saveErr = nil
	err := fn(s.ctl)
	if err == nil && s.saveErr != nil {
		err = s.saveErr
	}
	s.saveErr = nil
	return err
}

// SetNotifier swaps the notification collaborator.
func (s *Service) SetNotifier(n nav.Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctl.SetNotifier(n)
}

// View returns the current view.
func (s *Service) View() nav.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctl.View()
}

// Show snapshots the whole tree as a document.
func (s *Service) Show() codec.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return codec.Serialize(s.ctl.Tree().Root())
}

// ShowAt snapshots the subtree at path.
func (s *Service) ShowAt(path string) (codec.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	node, err := s.ctl.Tree().Resolve(mindmap.SplitPath(path))
	if err != nil {
		return codec.Document{}, err
	}
	return codec.Serialize(node), nil
}

// Lookup resolves path to a node of the current tree.
func (s *Service) Lookup(path string) (*mindmap.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctl.Tree().Resolve(mindmap.SplitPath(path))
}

// Find returns up to limit nodes whose names contain query.
func (s *Service) Find(query string, limit int) []search.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	return search.Limit(s.memo.Find(s.ctl.Tree(), query), limit)
}

// AddAt creates name under the node at parentPath and focuses the parent.
func (s *Service) AddAt(parentPath, name string) (*mindmap.Node, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	var created *mindmap.Node
	err := s.Do(func(c *nav.Controller) error {
		parent, err := c.Tree().Resolve(mindmap.SplitPath(parentPath))
		if err != nil {
			return err
		}
		if err := c.FocusNode(parent); err != nil {
			return err
		}
		created = c.CreateChild(name)
		return nil
	})
	return created, err
}

// RenameAt renames the node at path. It reports false when the name did not
// change.
func (s *Service) RenameAt(path, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrNameRequired
	}
	var changed bool
	err := s.Do(func(c *nav.Controller) error {
		node, err := c.Tree().Resolve(mindmap.SplitPath(path))
		if err != nil {
			return err
		}
		changed, err = c.RenameNode(node, name)
		return err
	})
	return changed, err
}

// RemoveAt deletes the node at path after confirm approves it. It reports
// whether the node was removed. A refused or declined delete leaves focus
// where it was.
func (s *Service) RemoveAt(path string, confirm func(*mindmap.Node) bool) (bool, error) {
	var removed bool
	err := s.Do(func(c *nav.Controller) error {
		node, err := c.Tree().Resolve(mindmap.SplitPath(path))
		if err != nil {
			return err
		}
		if node.IsRoot() {
			return mindmap.RootDeletionError{}
		}
		if confirm != nil && !confirm(node) {
			return nil
		}
		if err := c.FocusNode(node); err != nil {
			return err
		}
		req, err := c.DeleteFocused()
		if err != nil {
			return err
		}
		if err := req.Resolve(true); err != nil {
			return err
		}
		removed = true
		return nil
	})
	return removed, err
}

// Replace installs tree as the session tree and saves it.
func (s *Service) Replace(tree *mindmap.Tree) error {
	return s.Do(func(c *nav.Controller) error {
		c.Replace(tree)
		s.DataChanged(tree)
		return nil
	})
}

// Reload re-reads the stored tree after an outside change. Payloads this
// session wrote itself are ignored. A missing or malformed payload keeps the
// session tree; malformed data is returned as a
// *codec.MalformedPersistedDataError. It reports whether the tree was
// replaced.
func (s *Service) Reload() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok, err := s.Repository.Raw()
	if err != nil {
		return false, err
	}
	if !ok {
		s.Log.Debug("stored tree disappeared, keeping the session tree")
		return false, nil
	}
	if raw == s.lastWrite {
		return false, nil
	}
	tree, err := codec.Unmarshal([]byte(raw))
	if err != nil {
		s.Log.WithError(err).Warn("stored tree is malformed, keeping the session tree")
		return false, err
	}
	s.lastWrite = raw
	s.ctl.Replace(tree)
	s.Log.WithField("nodes", tree.Len()).Info("tree reloaded from storage")
	return true, nil
}

// Watch subscribes to storage change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Repository.KV == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Repository.KV.Watch(ctx)
}

// Export writes the whole tree in the given format.
func (s *Service) Export(w io.Writer, format codec.Format) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return codec.Encode(w, s.ctl.Tree(), format)
}

// Import decodes a tree from r and replaces the session tree with it.
// Malformed input leaves the session untouched.
func (s *Service) Import(r io.Reader, format codec.Format) (*mindmap.Tree, error) {
	tree, err := codec.Decode(r, format)
	if err != nil {
		return nil, err
	}
	if err := s.Replace(tree); err != nil {
		return nil, err
	}
	return tree, nil
}
