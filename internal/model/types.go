// Package model defines the persisted data structures for noitasave.
package model

import (
	"sort"
	"time"
)

// TimestampFormat is the layout for save creation times. It sorts
// lexicographically in chronological order, so listings can order saves
// by plain string comparison.
const TimestampFormat = "2006-01-02 15:04:05"

// Timestamp formats t for storage in a save record.
func Timestamp(t time.Time) string {
	return t.Format(TimestampFormat)
}

// Save is a named pointer to a physical snapshot.
//
// Name is the user-chosen display key. Directory is the machine-generated
// storage id addressing the snapshot under the managed saves/ directory;
// it is the only key ever used to touch disk, so names may contain any
// characters. Timestamp records creation time in TimestampFormat.
type Save struct {
	Name      string `json:"name"`
	Directory string `json:"directory"`
	Timestamp string `json:"timestamp"`
}

// Config holds the external-root setting stored inside the document.
type Config struct {
	NoitaRootDir string `json:"noita_root_dir"`
}

// Document is the complete persisted store document: the external-root
// configuration plus the active and trashed save collections.
type Document struct {
	Saves  []Save `json:"saves"`
	Trash  []Save `json:"trash"`
	Config Config `json:"config"`
}

// Configured reports whether the external root has been set.
func (d *Document) Configured() bool {
	return d.Config.NoitaRootDir != ""
}

// FindSave returns the index of name in the active collection, or -1.
func (d *Document) FindSave(name string) int {
	return findByName(d.Saves, name)
}

// FindTrashed returns the index of name in the trash collection, or -1.
func (d *Document) FindTrashed(name string) int {
	return findByName(d.Trash, name)
}

// NameExists reports whether name is present in either collection.
// Creation and import must check both: names are unique across the union.
func (d *Document) NameExists(name string) bool {
	return d.FindSave(name) >= 0 || d.FindTrashed(name) >= 0
}

func findByName(saves []Save, name string) int {
	for i, s := range saves {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// SortSaves orders saves newest first, with name as a tiebreak so listings
// are stable when two saves share a timestamp.
func SortSaves(saves []Save) {
	sort.Slice(saves, func(i, j int) bool {
		if saves[i].Timestamp != saves[j].Timestamp {
			return saves[i].Timestamp > saves[j].Timestamp
		}
		return saves[i].Name < saves[j].Name
	})
}
