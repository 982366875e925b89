package playback

import "github.com/samber/mo"

// Command is a user request the reducer understands.
type Command interface {
	command()
}

// SetSource loads a new media file.
type SetSource struct {
	Path string
}

// TogglePlayPause flips between playing and paused.
type TogglePlayPause struct{}

// SeekForwards requests a forward seek by one step.
type SeekForwards struct{}

// SeekBackwards requests a backward seek by one step.
type SeekBackwards struct{}

// RaiseVolume requests a louder stream by one step.
type RaiseVolume struct{}

// LowerVolume requests a quieter stream by one step.
type LowerVolume struct{}

func (SetSource) command()       {}
func (TogglePlayPause) command() {}
func (SeekForwards) command()    {}
func (SeekBackwards) command()   {}
func (RaiseVolume) command()     {}
func (LowerVolume) command()     {}

// Apply returns the intent that follows cmd.
//
// Both edges are cleared before cmd takes effect, so an edge survives exactly one
// command: the render that follows it. A nil or unknown command only clears edges.
func Apply(intent Intent, cmd Command) Intent {
	intent.Seek = SeekNone
	intent.Volume = VolumeNone

	switch c := cmd.(type) {
	case SetSource:
		intent.Source = mo.Some(c.Path)
	case TogglePlayPause:
		intent.Playing = !intent.Playing
	case SeekForwards:
		intent.Seek = SeekForward
	case SeekBackwards:
		intent.Seek = SeekBackward
	case RaiseVolume:
		intent.Volume = VolumeUp
	case LowerVolume:
		intent.Volume = VolumeDown
	}

	return intent
}
