package events

import "github.com/atomicstack/popup-launcher/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Filter(term string, visible bool) {
	logging.Trace("ui.filter", map[string]interface{}{
		"term":    term,
		"visible": visible,
	})
}

func (UITracer) Push(title string, level int) {
	logging.Trace("ui.push", map[string]interface{}{
		"title": title,
		"level": level,
	})
}

func (UITracer) Pop(title string) {
	logging.Trace("ui.pop", map[string]interface{}{"title": title})
}
