//go:build !linux && !darwin && !windows

package audio

func newPlayer() Player {
	return unsupportedPlayer{}
}
