package twcmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"timewalker/internal/normalize"
	"timewalker/internal/twconfig"
)

// normalizeCapabilities resolves the TerminalCapabilities a replay/render
// invocation should normalize against: the ambient config's
// default_capabilities when present, or the zero value (strip everything)
// when no config file exists.
func normalizeCapabilities() normalize.Capabilities {
	cfg, err := twconfig.Load()
	if err != nil {
		return normalize.Capabilities{}
	}
	return cfg.DefaultCapabilities.ToCapabilities()
}

// defaultChunkSize resolves the ambient config's default_chunk_size, or 0
// (vtreplay.Parser's own default) when no config file exists or it doesn't
// set one.
func defaultChunkSize() int {
	cfg, err := twconfig.Load()
	if err != nil {
		return 0
	}
	return cfg.DefaultChunkSize
}

// defaultPaletteForTerminal picks a sensible default HTML background/
// foreground pair by inspecting the invoking terminal's color scheme. It
// only probes the terminal when stdout is a real TTY; otherwise it falls
// back to the dark theme the HTML renderer already defaults to.
func defaultPaletteForTerminal() map[string]string {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) && !isatty.IsTerminal(uintptr(fd)) {
		return nil
	}

	output := termenv.NewOutput(os.Stdout)
	if output.HasDarkBackground() {
		return nil
	}

	return map[string]string{
		"default":    "#1d1f21",
		"default_bg": "#f5f5f5",
	}
}
