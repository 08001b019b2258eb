//go:build linux

package audio

func newPlayer() Player {
	return lookupPlayer(
		commandPlayer{binary: "paplay", args: func(path string) []string { return []string{path} }},
		commandPlayer{binary: "pw-play", args: func(path string) []string { return []string{path} }},
		commandPlayer{binary: "aplay", args: func(path string) []string { return []string{"-q", path} }},
	)
}
