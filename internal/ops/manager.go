// Package ops implements the save lifecycle on top of the record store
// and the directory copy primitive.
package ops

import (
	"path/filepath"
	"time"

	"github.com/noitatools/noitasave/internal/model"
)

// liveStateDir is the subdirectory of the game root that the game reads
// and writes. It is the unit that gets copied in and out; its contents
// are opaque.
const liveStateDir = "save00"

// Store defines the persistence interface required by lifecycle
// operations. The concrete implementation is storage.Store, but this
// interface allows an in-memory backend for tests.
type Store interface {
	Load() (*model.Document, error)
	Transact(update func(*model.Document) error) error
	SaveDir(id string) string
	BackupDir() string
}

// Copier duplicates a directory tree. It either fully succeeds or
// reports failure; partial output must not be relied on. The lifecycle
// manager orders its steps so that a failed copy never loses data, and
// tests inject failing copiers to exercise exactly that.
type Copier interface {
	CopyTree(src, dst string) error
}

// CopyFunc adapts a function to the Copier interface.
type CopyFunc func(src, dst string) error

// CopyTree calls f.
func (f CopyFunc) CopyTree(src, dst string) error { return f(src, dst) }

// Manager implements the save lifecycle: save, import, list, load,
// remove, restore, delete.
type Manager struct {
	store  Store
	copier Copier
	now    func() time.Time
}

// NewManager returns a Manager over the given store and copier.
func NewManager(store Store, copier Copier) *Manager {
	return &Manager{store: store, copier: copier, now: time.Now}
}

// SetRootDir records the external game root directory. This is the only
// operation permitted before the tool is configured.
func (m *Manager) SetRootDir(path string) error {
	return m.store.Transact(func(doc *model.Document) error {
		doc.Config.NoitaRootDir = path
		return nil
	})
}

// RootDir returns the configured external game root.
func (m *Manager) RootDir() (string, error) {
	doc, err := m.configured()
	if err != nil {
		return "", err
	}
	return doc.Config.NoitaRootDir, nil
}

// configured loads the document and rejects unconfigured stores.
func (m *Manager) configured() (*model.Document, error) {
	doc, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	if !doc.Configured() {
		return nil, &NotConfiguredError{}
	}
	return doc, nil
}

func liveDir(doc *model.Document) string {
	return filepath.Join(doc.Config.NoitaRootDir, liveStateDir)
}
