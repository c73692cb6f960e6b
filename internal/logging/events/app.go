package events

import "github.com/atomicstack/popup-launcher/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) RootSwitch(ref string) {
	logging.Trace("app.root_switch", map[string]interface{}{"ref": ref})
}
