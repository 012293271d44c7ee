package ops

import (
	"fmt"
	"os"

	"github.com/noitatools/noitasave/internal/model"
)

// Load replaces the live save directory with the named snapshot.
//
// The steps are strictly ordered around the one irreversible action,
// deleting the live directory:
//
//  1. drop any previous backup
//  2. copy the live directory into the backup slot
//  3. delete the live directory
//  4. copy the snapshot into the live location
//
// A failure during 1 or 2 aborts with the system exactly as it was. A
// failure at 3 or 4 is surfaced as a ReplaceError pointing at the backup
// slot, which at that point holds the only copy of the pre-load state.
func (m *Manager) Load(name string) (*model.Save, error) {
	doc, err := m.configured()
	if err != nil {
		return nil, err
	}

	i := doc.FindSave(name)
	if i < 0 {
		return nil, &NotFoundError{Name: name}
	}
	record := doc.Saves[i]

	snapshot := m.store.SaveDir(record.Directory)
	if _, err := os.Stat(snapshot); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Name: name}
		}
		return nil, fmt.Errorf("failed to access snapshot %s: %w", snapshot, err)
	}

	live := liveDir(doc)
	backup := m.store.BackupDir()

	if _, err := os.Stat(backup); err == nil {
		if err := os.RemoveAll(backup); err != nil {
			return nil, fmt.Errorf("failed to clear previous backup %s: %w", backup, err)
		}
	}

	if err := m.copier.CopyTree(live, backup); err != nil {
		return nil, fmt.Errorf("failed to back up the live save directory (nothing has been changed): %w", err)
	}

	if err := os.RemoveAll(live); err != nil {
		return nil, &ReplaceError{Name: name, Step: ReplaceStepClear, Backup: backup, Err: err}
	}

	if err := m.copier.CopyTree(snapshot, live); err != nil {
		return nil, &ReplaceError{Name: name, Step: ReplaceStepInstall, Backup: backup, Err: err}
	}

	return &record, nil
}
