package events

import "github.com/pennaedit/penna/internal/logging"

type UITracer struct{}

type DialogTracer struct{}

var (
	UI     = UITracer{}
	Dialog = DialogTracer{}
)

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Quit() {
	logging.Trace("ui.quit", nil)
}

func (DialogTracer) Open(kind string) {
	logging.Trace("dialog.open", map[string]interface{}{"kind": kind})
}

func (DialogTracer) Picked(kind, path string) {
	logging.Trace("dialog.picked", map[string]interface{}{"kind": kind, "path": path})
}

func (DialogTracer) Closed(kind string) {
	logging.Trace("dialog.closed", map[string]interface{}{"kind": kind})
}
