// Package file keeps a save slot as a JSON file on disk.
package file

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iamasit07/lineup/internal/codec"
	"github.com/iamasit07/lineup/internal/domain"
)

// Store resolves slots as paths relative to Dir (the working directory
// when Dir is empty).
type Store struct {
	Dir    string
	logger *zap.Logger
}

func NewStore(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{Dir: dir, logger: logger.With(zap.String("component", "file"))}
}

func (s *Store) path(slot string) string {
	if s.Dir == "" || filepath.IsAbs(slot) {
		return slot
	}
	return filepath.Join(s.Dir, slot)
}

// Save writes through a temp file so a failed write never truncates the
// previous save.
func (s *Store) Save(_ context.Context, slot string, g *domain.Game) error {
	data, err := codec.Marshal(g)
	if err != nil {
		return err
	}

	path := s.path(slot)
	tmp, err := os.CreateTemp(filepath.Dir(path), ".lineup-*.json")
	if err != nil {
		return errors.Wrapf(err, "create temp file for %s", path)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "replace %s", path)
	}

	s.logger.Debug("save file written", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

func (s *Store) Load(_ context.Context, slot string) (*domain.Game, error) {
	path := s.path(slot)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, domain.ErrNoSavedGame
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	g, err := codec.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return g, nil
}
