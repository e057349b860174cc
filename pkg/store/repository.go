package store

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tableflip.dev/remap/pkg/codec"
	"tableflip.dev/remap/pkg/mindmap"
)

// Repository persists one tree under a single key as a JSON document.
type Repository struct {
	KV  Persistence
	Key string
	Log logrus.FieldLogger
}

// NewRepository binds a repository to the configured tree key.
func NewRepository(kv Persistence, cfg Config, log logrus.FieldLogger) *Repository {
	key := DefaultKey
	if cfg != nil {
		key = cfg.TreeKey()
	}
	return &Repository{KV: kv, Key: key, Log: log}
}

// LoadTree returns the stored tree. A missing key or a corrupt document both
// yield a fresh single-root tree; only storage failures are errors.
func (r *Repository) LoadTree() (*mindmap.Tree, error) {
	raw, ok, err := r.KV.Get(r.key())
	if err != nil {
		return nil, err
	}
	if !ok {
		r.logger().WithField("key", r.key()).Debug("no stored tree, starting fresh")
		return mindmap.New(mindmap.DefaultRootName), nil
	}
	tree, err := codec.Unmarshal([]byte(raw))
	if err != nil {
		if codec.IsMalformed(err) {
			r.logger().WithError(err).WithField("key", r.key()).Warn("stored tree is malformed, starting fresh")
			return mindmap.New(mindmap.DefaultRootName), nil
		}
		return nil, err
	}
	return tree, nil
}

// SaveTree serialises tree and writes it before returning. The written
// payload is returned so callers can recognise their own writes.
func (r *Repository) SaveTree(tree *mindmap.Tree) (string, error) {
	data, err := codec.Marshal(tree)
	if err != nil {
		return "", fmt.Errorf("store: encode tree: %w", err)
	}
	if err := r.KV.Set(r.key(), string(data)); err != nil {
		return "", err
	}
	r.logger().WithFields(logrus.Fields{"key": r.key(), "nodes": tree.Len()}).Debug("tree saved")
	return string(data), nil
}

// Raw returns the stored payload without decoding it.
func (r *Repository) Raw() (string, bool, error) {
	return r.KV.Get(r.key())
}

func (r *Repository) key() string {
	if r.Key == "" {
		return DefaultKey
	}
	return r.Key
}

func (r *Repository) logger() logrus.FieldLogger {
	if r.Log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		r.Log = l
	}
	return r.Log
}
