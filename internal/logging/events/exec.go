package events

import "github.com/atomicstack/popup-launcher/internal/logging"

type ExecTracer struct{}

var Exec = ExecTracer{}

func (ExecTracer) Spawn(command string) {
	logging.Trace("exec.spawn", map[string]interface{}{"command": command})
}

func (ExecTracer) SpawnError(command string, err error) {
	logging.Trace("exec.spawn_error", map[string]interface{}{
		"command": command,
		"error":   err.Error(),
	})
}
