// Package tui is the interactive player screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/mediainfo"
	"github.com/vidplay-cli/vidplay/playback"
	"github.com/vidplay-cli/vidplay/player"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// File is opened on start, as if picked in the file dialog.
	File string
}

// Steps reads the seek and volume step sizes from the config.
func Steps() playback.Steps {
	steps := playback.DefaultSteps

	if seek := viper.GetInt(key.PlayerSeekStep); seek > 0 {
		steps.Seek = time.Duration(seek) * time.Second
	}

	if volume := viper.GetInt(key.PlayerVolumeStep); volume > 0 {
		steps.Volume = float64(volume) / 100
	}

	return steps
}

// Run starts the player screen and blocks until the user quits.
func Run(options *Options) error {
	app := newApp(
		options,
		player.NewMPV(viper.GetString(key.PlayerBinary)),
		mediainfo.NewExtractor(mediainfo.NewFFProbe()),
		Steps(),
	)

	defer func() {
		if err := app.Close(); err != nil {
			log.Warnf("close player: %s", err)
		}
	}()

	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
