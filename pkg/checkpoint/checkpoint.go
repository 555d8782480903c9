package checkpoint

import (
	"fmt"
	"path/filepath"

	"stackcollect/pkg/logger"
	"stackcollect/pkg/models"
	"stackcollect/pkg/storage"
)

// Manager writes periodic snapshots of in-progress collection results.
//
// Each snapshot is the full accumulated slice so far, so every checkpoint
// file is a cumulative prefix of the final result and is valid JSON on its
// own. Checkpoints limit data loss if a long run is killed; they are not a
// resume mechanism, and the collector never reads them back.
type Manager struct {
	dir    string
	prefix string
	logger logger.Logger
}

// NewManager creates a checkpoint manager writing into dir with the given
// file name prefix.
func NewManager(dir, prefix string, log logger.Logger) *Manager {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Manager{
		dir:    dir,
		prefix: prefix,
		logger: log,
	}
}

// Write persists the accumulated questions to a checkpoint file keyed by
// the current count, e.g. questions_temp_20.json.
func (m *Manager) Write(questions []models.Question, count int) error {
	path := m.Path(count)
	if err := storage.Save(questions, path); err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}

	m.logger.InfoWithFields("checkpoint written", map[string]interface{}{
		"path":  path,
		"count": count,
	})

	return nil
}

// Path returns the checkpoint file path for a given count
func (m *Manager) Path(count int) string {
	return filepath.Join(m.dir, fmt.Sprintf("%s_temp_%d.json", m.prefix, count))
}
