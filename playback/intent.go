// Package playback holds the player's transient intent and the reducer that advances it.
//
// The intent never stores an absolute position or volume: those live in the media
// stream. Seeking and volume changes are carried as one-shot edges that the render
// step turns into deltas against whatever the stream reports at that moment.
package playback

import "github.com/samber/mo"

// SeekEdge selects the direction of a pending relative seek.
type SeekEdge int8

const (
	SeekBackward SeekEdge = iota - 1
	SeekNone
	SeekForward
)

func (e SeekEdge) String() string {
	switch e {
	case SeekBackward:
		return "backward"
	case SeekForward:
		return "forward"
	default:
		return "none"
	}
}

// VolumeEdge selects the sign of a pending volume nudge.
type VolumeEdge int8

const (
	VolumeDown VolumeEdge = iota - 1
	VolumeNone
	VolumeUp
)

func (e VolumeEdge) String() string {
	switch e {
	case VolumeDown:
		return "down"
	case VolumeUp:
		return "up"
	default:
		return "none"
	}
}

// Intent is what the player wants the live stream to look like after the next render.
// The zero value is a paused player with nothing loaded.
type Intent struct {
	Source  mo.Option[string]
	Playing bool
	Seek    SeekEdge
	Volume  VolumeEdge
}
