// Package storage persists the save record store and owns the managed
// storage layout.
//
// Layout under the storage root:
//
//	saves.json     the store document (single source of truth)
//	saves/<id>/    one snapshot per storage id referenced by a record
//	backup/        single pre-load backup of the live directory
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/noitatools/noitasave/internal/model"
)

const (
	documentFile = "saves.json"
	savesDir     = "saves"
	backupDir    = "backup"
)

// CorruptError indicates the persisted document exists but cannot be
// parsed. No automatic repair is attempted.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("store document %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Store provides access to the managed storage root.
type Store struct {
	root string
}

// New returns a Store rooted at dir. The directory is created lazily on
// the first transaction.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the managed storage root directory.
func (s *Store) Root() string { return s.root }

// DocumentPath returns the path of the persisted store document.
func (s *Store) DocumentPath() string {
	return filepath.Join(s.root, documentFile)
}

// SaveDir returns the snapshot directory for a storage id.
func (s *Store) SaveDir(id string) string {
	return filepath.Join(s.root, savesDir, id)
}

// BackupDir returns the single pre-load backup directory.
func (s *Store) BackupDir() string {
	return filepath.Join(s.root, backupDir)
}

// Load reads the current document. A missing document file yields an
// empty default document; an unreadable or unparsable file is an error.
func (s *Store) Load() (*model.Document, error) {
	path := s.DocumentPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.Document{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}
	return &doc, nil
}

// Transact loads the document, applies update to the in-memory copy, and
// persists the result. The new document is written to a temporary file and
// renamed into place, so a crash mid-write never corrupts the previously
// committed document and readers never observe a half-written one.
//
// Transact is the only sanctioned way to mutate the document. Any error,
// from the update itself or from I/O, aborts with no mutation persisted.
func (s *Store) Transact(update func(*model.Document) error) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}

	if err := update(doc); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store document: %w", err)
	}

	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("failed to create storage root %s: %w", s.root, err)
	}

	path := s.DocumentPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to commit %s: %w", path, err)
	}
	return nil
}
