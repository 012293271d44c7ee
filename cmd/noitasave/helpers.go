package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/noitatools/noitasave/internal/cli"
	"github.com/noitatools/noitasave/internal/fsutil"
	"github.com/noitatools/noitasave/internal/model"
	"github.com/noitatools/noitasave/internal/ops"
	"github.com/noitatools/noitasave/internal/storage"
)

// newManager wires a lifecycle manager from user settings: storage root
// resolution, color mode, the file-backed store and the real copier.
func newManager() (*ops.Manager, *storage.Store, error) {
	settings, err := storage.LoadSettings()
	if err != nil {
		return nil, nil, err
	}

	switch settings.Color {
	case storage.ColorAlways:
		cli.SetColorEnabled(true)
	case storage.ColorNever:
		cli.SetColorEnabled(false)
	}

	root, err := storage.ResolveRoot(settings)
	if err != nil {
		return nil, nil, err
	}

	st := storage.New(root)
	return ops.NewManager(st, ops.CopyFunc(fsutil.CopyTree)), st, nil
}

// renderSaves prints a listing sorted newest first, or a friendly message
// when the collection is empty.
func renderSaves(saves []model.Save, scope ops.Scope) {
	if len(saves) == 0 {
		if scope == ops.ScopeTrashed {
			fmt.Println("Trash is empty")
		} else {
			fmt.Println("No saves found")
		}
		return
	}

	table := cli.NewTable()
	for _, s := range saves {
		table.AddRow(cli.Gray(s.Timestamp), s.Name)
	}
	table.Render(os.Stdout)
}

// listSaves loads and prints the chosen collection.
func listSaves(m *ops.Manager, scope ops.Scope) error {
	saves, err := m.List(scope)
	if err != nil {
		return err
	}
	renderSaves(saves, scope)
	return nil
}

// reportNotFound downgrades a NotFoundError to a printed message. It
// returns true if err was a not-found and has been reported.
func reportNotFound(err error) bool {
	var notFound *ops.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Println(notFound.Error())
		return true
	}
	return false
}
