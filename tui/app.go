package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/internal/ui"
	"github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/mediainfo"
	"github.com/vidplay-cli/vidplay/picker"
	"github.com/vidplay-cli/vidplay/playback"
	"github.com/vidplay-cli/vidplay/player"
	"github.com/vidplay-cli/vidplay/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

// App is the top-level component. It owns every child component directly.
type App struct {
	keymap *keymap

	player    *playerModel
	info      infoPanel
	about     aboutWindow
	shortcuts shortcutsWindow
	picker    picker.Model
	helpC     help.Model
	notifier  *ui.Model

	// open overlays, most recent on top
	overlays util.Stack[overlay]

	width, height int
	options       *Options
}

func newApp(options *Options, window player.Player, extractor *mediainfo.Extractor, steps playback.Steps) *App {
	app := &App{
		keymap:   newKeymap(),
		player:   newPlayerModel(window, steps),
		info:     newInfoPanel(extractor),
		picker:   picker.New(),
		helpC:    help.New(),
		notifier: &ui.Model{},
		options:  options,
	}

	if w, h, err := util.TerminalSize(); err == nil {
		app.resize(w, h)
	}

	return app
}

// Init starts the player's result listeners and preloads the file given on the command line.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.player.Init()}

	if a.options != nil && a.options.File != "" {
		cmds = append(cmds, send(FileSelectedMsg{Path: a.options.File}))
	}

	return tea.Batch(cmds...)
}

func (a *App) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	a.width = width - x
	a.height = height - y
	a.helpC.Width = a.width
}

// top returns the overlay currently drawn over the player, if any.
func (a *App) top() (overlay, bool) {
	if a.overlays.Len() == 0 {
		return 0, false
	}
	return a.overlays.Peek(), true
}

func (a *App) isOpen(o overlay) bool {
	switch o {
	case infoOverlay:
		return a.info.visible
	case aboutOverlay:
		return a.about.visible
	case shortcutsOverlay:
		return a.shortcuts.visible
	case pickerOverlay:
		return a.picker.Visible()
	default:
		return false
	}
}

func (a *App) showHelp() bool {
	return viper.GetBool(key.TUIShowHelp)
}

// Close shuts the player down. Safe to call more than once.
func (a *App) Close() error {
	return a.player.Close()
}
