// Package spawn launches expanded menu commands detached from the
// launcher process.
package spawn

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/atomicstack/popup-launcher/internal/logging/events"
)

// Detached starts the shell command and releases it without waiting for
// completion. Output is discarded; the command is trusted configuration
// input and owns its own lifecycle once started.
func Detached(command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return fmt.Errorf("empty command")
	}
	cmd := exec.Command("sh", "-c", command)
	if err := cmd.Start(); err != nil {
		events.Exec.SpawnError(command, err)
		return fmt.Errorf("spawn %q: %w", command, err)
	}
	events.Exec.Spawn(command)
	return cmd.Process.Release()
}
