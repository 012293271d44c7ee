package cli

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenFileBrowser opens the platform file browser at dir. The browser is
// started detached; its exit status is not observed.
func OpenFileBrowser(dir string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", dir)
	case "windows":
		cmd = exec.Command("explorer", dir)
	default:
		cmd = exec.Command("xdg-open", dir)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open file browser at %s: %w", dir, err)
	}
	return nil
}
