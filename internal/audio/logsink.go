package audio

import (
	"github.com/charmbracelet/log"
)

// LogOutput writes one debug line per track.
type LogOutput struct {
	Logger *log.Logger
}

// Start implements Output.
func (l LogOutput) Start(t Track) {
	if l.Logger == nil {
		return
	}
	l.Logger.Debug("cue", "cue", t.Cue, "file", t.File, "loop", t.Loop, "silent", t.Silent)
}

// StopAll implements Output.
func (l LogOutput) StopAll() {
	if l.Logger == nil {
		return
	}
	l.Logger.Debug("cue", "cue", "silence")
}
