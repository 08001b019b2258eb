//go:build windows

package audio

import "fmt"

func newPlayer() Player {
	return lookupPlayer(
		commandPlayer{binary: "powershell", args: func(path string) []string {
			script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", path)
			return []string{"-NoProfile", "-NonInteractive", "-Command", script}
		}},
	)
}
