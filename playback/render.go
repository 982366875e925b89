package playback

import (
	"fmt"
	"time"
)

// Stream is the live media handle the render step drives.
// Volume is a fraction where 1 is unity gain; implementations clamp what they are given
// to the range the backend accepts.
type Stream interface {
	HasSource() (bool, error)
	Bind(path string) error
	SetPlaying(playing bool) error
	Position() (time.Duration, error)
	SeekTo(pos time.Duration) error
	Volume() (float64, error)
	SetVolume(volume float64) error
}

// Steps sizes a single seek and a single volume nudge.
type Steps struct {
	Seek   time.Duration
	Volume float64
}

// DefaultSteps is ten seconds and ten percent.
var DefaultSteps = Steps{
	Seek:   10 * time.Second,
	Volume: 0.1,
}

// Render pushes intent onto stream.
//
// Seeking is relative to the position the stream reports now. The volume pass runs on
// every render, adding zero when no volume edge is pending. Until a source is bound
// there is no stream to drive and only the bind is attempted.
func Render(intent Intent, stream Stream, steps Steps) error {
	bound, err := stream.HasSource()
	if err != nil {
		return fmt.Errorf("query source: %w", err)
	}

	if !bound {
		path, ok := intent.Source.Get()
		if !ok {
			return nil
		}
		if err := stream.Bind(path); err != nil {
			return fmt.Errorf("bind %s: %w", path, err)
		}
	}

	if err := stream.SetPlaying(intent.Playing); err != nil {
		return fmt.Errorf("set playing: %w", err)
	}

	if intent.Seek != SeekNone {
		pos, err := stream.Position()
		if err != nil {
			return fmt.Errorf("read position: %w", err)
		}
		if err := stream.SeekTo(pos + time.Duration(intent.Seek)*steps.Seek); err != nil {
			return fmt.Errorf("seek: %w", err)
		}
	}

	volume, err := stream.Volume()
	if err != nil {
		return fmt.Errorf("read volume: %w", err)
	}
	if err := stream.SetVolume(volume + float64(intent.Volume)*steps.Volume); err != nil {
		return fmt.Errorf("set volume: %w", err)
	}

	return nil
}
