package events

import "github.com/pennaedit/penna/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Intent(name string) {
	logging.Trace("session.intent", map[string]interface{}{"intent": name})
}

func (SessionTracer) Opened(path string) {
	logging.Trace("session.opened", map[string]interface{}{"path": path})
}

func (SessionTracer) Saved(path string) {
	logging.Trace("session.saved", map[string]interface{}{"path": path})
}

func (SessionTracer) OpenFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("session.open-failed", map[string]interface{}{"error": err.Error()})
}

func (SessionTracer) SaveFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("session.save-failed", map[string]interface{}{"error": err.Error()})
}
