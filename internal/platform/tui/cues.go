package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bandit/internal/sim"
)

// bell is the terminal bell control character.
const bell = "\a"

// LogCues is the audio collaborator of a terminal session. Every cue is
// logged at debug level; crashes also ring the terminal bell.
type LogCues struct {
	logger *log.Logger
	out    io.Writer // where the bell goes; nil keeps the session silent
}

// NewLogCues creates a cue sink. Either argument may be nil.
func NewLogCues(logger *log.Logger, out io.Writer) *LogCues {
	return &LogCues{logger: logger, out: out}
}

// Cue implements sim.CueSink.
func (c *LogCues) Cue(cue sim.Cue, speed int) {
	if c.logger != nil {
		c.logger.Debug("cue", "name", cue, "speed", speed)
	}
	if cue == sim.CueCrash && c.out != nil {
		//nolint:errcheck // Best-effort bell
		io.WriteString(c.out, bell)
	}
}
