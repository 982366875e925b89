package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidplay-cli/vidplay/mediainfo"
	"github.com/vidplay-cli/vidplay/playback"
)

// overlay identifies a window drawn over the player.
type overlay int

const (
	infoOverlay overlay = iota
	aboutOverlay
	shortcutsOverlay
	pickerOverlay
)

func (o overlay) String() string {
	switch o {
	case infoOverlay:
		return "info"
	case aboutOverlay:
		return "about"
	case shortcutsOverlay:
		return "shortcuts"
	case pickerOverlay:
		return "picker"
	default:
		return "unknown"
	}
}

// FileSelectedMsg reports a file chosen in the picker or passed on the command line.
type FileSelectedMsg struct {
	Path string
}

// CommandMsg feeds a command to the player's reducer.
type CommandMsg struct {
	Command playback.Command
}

// GetInfoMsg asks the media info panel to extract path.
type GetInfoMsg struct {
	Path string
}

// InfoLoadedMsg carries a finished extraction.
type InfoLoadedMsg struct {
	Path   string
	Record mediainfo.Record
}

// InfoFailedMsg carries a failed extraction.
type InfoFailedMsg struct {
	Path string
	Err  error
}

// ShowMsg opens an overlay.
type ShowMsg struct {
	overlay overlay
}

// HideMsg closes an overlay.
type HideMsg struct {
	overlay overlay
}

// ToggleFullscreenMsg flips the video window's fullscreen state.
type ToggleFullscreenMsg struct{}

// send wraps msg in a tea.Cmd.
func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
