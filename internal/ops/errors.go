package ops

import "fmt"

// NotConfiguredError indicates the external game directory has not been
// set. Every operation except set-external-dir is blocked until it is.
type NotConfiguredError struct{}

func (e *NotConfiguredError) Error() string {
	return "external game directory is not set. Run: noitasave set-external-dir <path>"
}

// NotFoundError indicates a save name is absent from the collection the
// operation expected it in. Commands report it as a message rather than a
// process failure.
type NotFoundError struct {
	Name    string
	Trashed bool // the collection that was searched
}

func (e *NotFoundError) Error() string {
	if e.Trashed {
		return fmt.Sprintf("no save named [%s] in the trash", e.Name)
	}
	return fmt.Sprintf("failed to find save with name: %s", e.Name)
}

// ExistsError indicates a save or import name collides with an existing
// record. Names are unique across active and trashed saves; Trashed tells
// the user which side the conflict is on.
type ExistsError struct {
	Name    string
	Trashed bool
}

func (e *ExistsError) Error() string {
	if e.Trashed {
		return fmt.Sprintf("[%s] already exists in the trash (restore or delete it first)", e.Name)
	}
	return fmt.Sprintf("[%s] already exists", e.Name)
}

// ActiveDeleteError indicates an attempt to permanently delete a save
// that has not been trashed.
type ActiveDeleteError struct {
	Name string
}

func (e *ActiveDeleteError) Error() string {
	return fmt.Sprintf("[%s] is an active save: remove it to the trash before deleting", e.Name)
}

// Replace steps that can fail after the point of no return.
const (
	ReplaceStepClear   = "clear"
	ReplaceStepInstall = "install"
)

// ReplaceError indicates a load failed at or after the destructive step.
// The live directory is gone or partially populated; the backup directory
// holds the last-known-good live state and the error message must point
// the user at it.
type ReplaceError struct {
	Name   string
	Step   string // ReplaceStepClear or ReplaceStepInstall
	Backup string // path of the backup directory
	Err    error
}

func (e *ReplaceError) Error() string {
	var what string
	switch e.Step {
	case ReplaceStepClear:
		what = "failed to clear the live save directory"
	case ReplaceStepInstall:
		what = fmt.Sprintf("failed to install save [%s] into the live directory", e.Name)
	default:
		what = "failed to replace the live save directory"
	}
	return fmt.Sprintf("%s: %v\nthe pre-load live state is preserved in %s; copy it back manually to recover",
		what, e.Err, e.Backup)
}

func (e *ReplaceError) Unwrap() error { return e.Err }
