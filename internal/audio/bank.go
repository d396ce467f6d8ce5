// Package audio realizes engine cues. There is no sound device in a
// terminal, so a cue becomes a caption on screen and a log line; the mixer
// still tracks what would be playing and falls back to a silent placeholder
// for any cue whose asset is missing.
package audio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nightwatch/internal/config"
	"github.com/vovakirdan/nightwatch/internal/encounter"
)

// Track is what a cue resolves to.
type Track struct {
	Cue     encounter.Cue
	File    string
	Volume  float64
	Loop    bool
	Caption string
	Silent  bool // asset unavailable, playing it does nothing audible
}

// Bank maps every cue to a track.
type Bank struct {
	tracks map[encounter.Cue]Track
}

// NewBank builds a bank from the audio config. Cues without an entry get a
// silent placeholder.
func NewBank(cfg config.AudioSection) *Bank {
	b := &Bank{tracks: make(map[encounter.Cue]Track)}
	for _, cue := range encounter.AllCues() {
		asset, ok := cfg.Cues[cue.Key()]
		if !ok {
			b.tracks[cue] = Track{Cue: cue, Silent: true}
			continue
		}
		b.tracks[cue] = Track{
			Cue:     cue,
			File:    asset.File,
			Volume:  asset.Volume,
			Loop:    asset.Loop,
			Caption: asset.Caption,
			Silent:  asset.File == "",
		}
	}
	return b
}

// Probe checks every asset in fsys and marks missing ones silent.
// Returns the number of silent tracks. Missing files are logged, never
// returned as errors.
func (b *Bank) Probe(fsys fs.FS, logger *log.Logger) int {
	silent := 0
	for _, cue := range encounter.AllCues() {
		tr := b.tracks[cue]
		if tr.File != "" && !tr.Silent {
			if _, err := fs.Stat(fsys, filepath.ToSlash(tr.File)); err != nil {
				tr.Silent = true
				b.tracks[cue] = tr
				if logger != nil {
					level := log.WarnLevel
					if errors.Is(err, fs.ErrNotExist) {
						level = log.DebugLevel
					}
					logger.Log(level, "sound unavailable, using silence", "cue", cue, "file", tr.File, "error", err)
				}
			}
		}
		if b.tracks[cue].Silent {
			silent++
		}
	}
	return silent
}

// ProbeDir is Probe against a directory on disk.
func (b *Bank) ProbeDir(root string, logger *log.Logger) int {
	return b.Probe(os.DirFS(root), logger)
}

// Track returns the track for a cue.
func (b *Bank) Track(c encounter.Cue) Track {
	if tr, ok := b.tracks[c]; ok {
		return tr
	}
	return Track{Cue: c, Silent: true}
}
