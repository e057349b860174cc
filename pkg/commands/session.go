package commands

import (
	"io"

	"github.com/sirupsen/logrus"

	"tableflip.dev/remap/pkg/app"
	"tableflip.dev/remap/pkg/logging"
	"tableflip.dev/remap/pkg/nav"
	"tableflip.dev/remap/pkg/store"
)

type session struct {
	Config  store.Config
	Log     *logrus.Logger
	Service *app.Service

	closer io.Closer
}

// openSession loads the config, the logger and the stored tree. Logs go to the
// configured log file, or to logOut when none is set.
func openSession(logOut io.Writer) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return openSessionWith(cfg, logOut)
}

func openSessionWith(cfg store.Config, logOut io.Writer) (*session, error) {
	log, closer, err := logging.New(cfg, logOut)
	if err != nil {
		return nil, err
	}
	policy, err := nav.ParseSelectionPolicy(cfg.SiblingSelection())
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	svc, err := app.New(store.NewRepository(p, cfg, log), app.Options{
		Log:              log,
		SiblingSelection: policy,
	})
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"path": cfg.BasePath(),
		"key":  cfg.TreeKey(),
	}).Debug("session opened")
	return &session{Config: cfg, Log: log, Service: svc, closer: closer}, nil
}

func (s *session) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
