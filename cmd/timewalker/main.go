// Command timewalker scripts a PTY-backed process, records its output,
// and replays/renders the capture.
package main

import (
	"fmt"
	"os"

	"timewalker/internal/twcmd"
)

func main() {
	if err := twcmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
