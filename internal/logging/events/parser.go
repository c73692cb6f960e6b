package events

import "github.com/atomicstack/popup-launcher/internal/logging"

type ParserTracer struct{}

var Parser = ParserTracer{}

func (ParserTracer) Document(ref string, level, items int) {
	logging.Trace("parser.document", map[string]interface{}{
		"ref":   ref,
		"level": level,
		"items": items,
	})
}

func (ParserTracer) Skip(ref, reason string) {
	logging.Trace("parser.skip", map[string]interface{}{
		"ref":    ref,
		"reason": reason,
	})
}
