// Package player drives an external media player as the live stream behind the playback reducer.
// The only backend is mpv, controlled over its JSON-IPC socket.
package player

import (
	"errors"

	"github.com/vidplay-cli/vidplay/playback"
)

// ErrNotRunning is returned by IPC calls made while no player process is alive.
var ErrNotRunning = errors.New("player is not running")

// Player is a playback.Stream with window and lifecycle controls.
type Player interface {
	playback.Stream

	// ToggleFullscreen flips the video window between windowed and fullscreen.
	ToggleFullscreen() error

	// Eject unloads the current file and leaves the player idle, so the next render binds again.
	Eject() error

	// Socket returns the IPC socket path, empty before the first start.
	Socket() string

	// Wait returns a channel that is closed when the player process exits.
	Wait() <-chan struct{}

	// Close terminates the player process.
	Close() error
}
