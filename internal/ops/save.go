package ops

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/noitatools/noitasave/internal/model"
)

// Scope selects which save collection an operation works over.
type Scope int

const (
	ScopeActive Scope = iota
	ScopeTrashed
)

// ValidateName checks that a save name is not empty or whitespace-only.
// Names never touch the filesystem, so anything else is allowed.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("save name must not be empty")
	}
	return nil
}

// Save captures the current live save directory under name.
func (m *Manager) Save(name string) (*model.Save, error) {
	doc, err := m.configured()
	if err != nil {
		return nil, err
	}
	return m.capture(doc, name, liveDir(doc))
}

// Import captures an arbitrary directory under name. The source is read
// but never modified.
func (m *Manager) Import(name, src string) (*model.Save, error) {
	doc, err := m.configured()
	if err != nil {
		return nil, err
	}
	return m.capture(doc, name, src)
}

// capture copies src into managed storage under a fresh storage id and
// then commits the record. The copy happens before the record so a copy
// failure leaves no record pointing at missing data; the worst case is an
// unreferenced directory, which nothing will ever address.
func (m *Manager) capture(doc *model.Document, name, src string) (*model.Save, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := nameConflict(doc, name); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	if err := m.copier.CopyTree(src, m.store.SaveDir(id)); err != nil {
		return nil, fmt.Errorf("failed to copy %s into storage: %w", src, err)
	}

	record := model.Save{
		Name:      name,
		Directory: id,
		Timestamp: model.Timestamp(m.now()),
	}
	err := m.store.Transact(func(doc *model.Document) error {
		// Re-check against the freshly loaded document before inserting.
		if err := nameConflict(doc, name); err != nil {
			return err
		}
		doc.Saves = append(doc.Saves, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func nameConflict(doc *model.Document, name string) error {
	if doc.FindSave(name) >= 0 {
		return &ExistsError{Name: name}
	}
	if doc.FindTrashed(name) >= 0 {
		return &ExistsError{Name: name, Trashed: true}
	}
	return nil
}

// List returns the chosen collection sorted newest first.
func (m *Manager) List(scope Scope) ([]model.Save, error) {
	doc, err := m.configured()
	if err != nil {
		return nil, err
	}

	var saves []model.Save
	switch scope {
	case ScopeTrashed:
		saves = append(saves, doc.Trash...)
	default:
		saves = append(saves, doc.Saves...)
	}
	model.SortSaves(saves)
	return saves, nil
}
