package events

import "github.com/pennaedit/penna/internal/logging"

type FileTracer struct{}

var File = FileTracer{}

func (FileTracer) Loaded(path string, bytes int) {
	logging.Trace("file.loaded", map[string]interface{}{"path": path, "bytes": bytes})
}

func (FileTracer) Saved(path string, bytes int) {
	logging.Trace("file.saved", map[string]interface{}{"path": path, "bytes": bytes})
}

func (FileTracer) LoadFailed(path string, err error) {
	logging.Error(err)
	logging.Trace("file.load-failed", map[string]interface{}{"path": path, "error": err.Error()})
}

func (FileTracer) SaveFailed(path string, err error) {
	logging.Error(err)
	logging.Trace("file.save-failed", map[string]interface{}{"path": path, "error": err.Error()})
}
