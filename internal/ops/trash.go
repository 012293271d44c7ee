package ops

import (
	"fmt"
	"os"

	"github.com/noitatools/noitasave/internal/model"
)

// Remove moves an active save to the trash. No physical I/O happens; the
// snapshot stays in storage and the move is reversible with Restore.
func (m *Manager) Remove(name string) error {
	if _, err := m.configured(); err != nil {
		return err
	}
	return m.store.Transact(func(doc *model.Document) error {
		i := doc.FindSave(name)
		if i < 0 {
			return &NotFoundError{Name: name}
		}
		doc.Trash = append(doc.Trash, doc.Saves[i])
		doc.Saves = append(doc.Saves[:i], doc.Saves[i+1:]...)
		return nil
	})
}

// Restore moves a trashed save back to the active collection. The record
// keeps its storage id and timestamp.
func (m *Manager) Restore(name string) error {
	if _, err := m.configured(); err != nil {
		return err
	}
	return m.store.Transact(func(doc *model.Document) error {
		i := doc.FindTrashed(name)
		if i < 0 {
			return &NotFoundError{Name: name, Trashed: true}
		}
		doc.Saves = append(doc.Saves, doc.Trash[i])
		doc.Trash = append(doc.Trash[:i], doc.Trash[i+1:]...)
		return nil
	})
}

// Delete permanently deletes a trashed save: the record first, durably,
// then the snapshot directory. If the physical removal fails the
// directory is merely orphaned; a record pointing at nothing would be
// worse, which is why the order is fixed.
func (m *Manager) Delete(name string) error {
	if _, err := m.configured(); err != nil {
		return err
	}

	var deleted model.Save
	err := m.store.Transact(func(doc *model.Document) error {
		if doc.FindSave(name) >= 0 {
			return &ActiveDeleteError{Name: name}
		}
		i := doc.FindTrashed(name)
		if i < 0 {
			return &NotFoundError{Name: name, Trashed: true}
		}
		deleted = doc.Trash[i]
		doc.Trash = append(doc.Trash[:i], doc.Trash[i+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	dir := m.store.SaveDir(deleted.Directory)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("record deleted, but failed to remove snapshot directory %s: %w", dir, err)
	}
	return nil
}
