package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/style"
)

// keymap holds every key binding of the player screen.
type keymap struct {
	open, info, about, shortcuts,
	playPause, seekForward, seekBackward,
	volumeUp, volumeDown,
	fullscreen,
	back,
	quit, forceQuit key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		open: key.NewBinding(
			key.WithKeys("o", "ctrl+o"),
			key.WithHelp("o", "open file"),
		),
		info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "media info"),
		),
		about: key.NewBinding(
			key.WithKeys("a", "ctrl+a"),
			key.WithHelp("a", "about"),
		),
		shortcuts: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "shortcuts"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp(style.Fg(color.Orange)("space"), style.Fg(color.Orange)("play/pause")),
		),
		seekForward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "forward"),
		),
		seekBackward: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "back"),
		),
		volumeUp: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑", "volume up"),
		),
		volumeDown: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓", "volume down"),
		),
		fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.playPause, k.seekBackward, k.seekForward, k.open, k.shortcuts, k.quit}
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.playPause, k.seekBackward, k.seekForward, k.volumeUp, k.volumeDown, k.fullscreen},
		{k.open, k.info, k.about, k.shortcuts, k.back, k.quit},
	}
}

// Shortcut is one row of the keyboard shortcuts table.
type Shortcut struct {
	Group  string `json:"group"`
	Action string `json:"action"`
	Keys   string `json:"keys"`
}

// Shortcuts lists the key bindings of the player screen, grouped.
func Shortcuts() []Shortcut {
	k := newKeymap()

	row := func(group, action string, b key.Binding) Shortcut {
		keys := make([]string, len(b.Keys()))
		for i, name := range b.Keys() {
			if name == " " {
				name = "space"
			}
			keys[i] = name
		}
		return Shortcut{Group: group, Action: action, Keys: strings.Join(keys, ", ")}
	}

	return []Shortcut{
		row("General", "Open file", k.open),
		row("General", "Media info", k.info),
		row("General", "About", k.about),
		row("General", "Keyboard shortcuts", k.shortcuts),
		row("General", "Close window", k.back),
		row("General", "Quit", k.quit),
		row("Playback", "Play / pause", k.playPause),
		row("Playback", "Seek forward", k.seekForward),
		row("Playback", "Seek backward", k.seekBackward),
		row("Playback", "Volume up", k.volumeUp),
		row("Playback", "Volume down", k.volumeDown),
		row("Playback", "Toggle fullscreen", k.fullscreen),
	}
}
