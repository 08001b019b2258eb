//go:build darwin

package audio

func newPlayer() Player {
	return lookupPlayer(
		commandPlayer{binary: "afplay", args: func(path string) []string { return []string{path} }},
	)
}
