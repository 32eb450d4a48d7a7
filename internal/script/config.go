package script

import (
	"time"

	"timewalker/internal/keyframe"
	"timewalker/internal/ptysession"
)

// Config describes one scripted capture run.
type Config struct {
	Command     []string
	Steps       []Step
	OutputDir   string
	Env         map[string]string
	Cwd         string
	PtySize     ptysession.Size
	Timeout     time.Duration
	ReadTimeout time.Duration
}

// SessionArtifacts is the filesystem and exit-status summary returned by
// Driver.Run.
type SessionArtifacts struct {
	RunID      string
	ExitStatus *int
	Signal     *int
	AnsiPath   string
	Keyframes  []keyframe.Frame
}
