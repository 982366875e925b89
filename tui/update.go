package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidplay-cli/vidplay/constant"
	"github.com/vidplay-cli/vidplay/picker"
	"github.com/vidplay-cli/vidplay/playback"
	"github.com/vidplay-cli/vidplay/util"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd := a.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return a, tea.Batch(append(cmds, a.handleKey(msg))...)
	case FileSelectedMsg:
		// Two independent sends: neither component waits for the other.
		cmds = append(cmds,
			send(CommandMsg{Command: playback.SetSource{Path: msg.Path}}),
			send(GetInfoMsg{Path: msg.Path}),
			tea.SetWindowTitle(constant.App+" - "+util.FileStem(msg.Path)),
		)
	case picker.SelectedMsg:
		a.removeOverlay(pickerOverlay)
		a.picker = a.picker.Hide()
		cmds = append(cmds, send(FileSelectedMsg{Path: msg.Path}))
	case picker.CancelledMsg:
		a.removeOverlay(pickerOverlay)
		a.picker = a.picker.Hide()
	case ShowMsg:
		a.removeOverlay(msg.overlay)
		a.overlays.Push(msg.overlay)
		if msg.overlay == pickerOverlay && !a.picker.Visible() {
			var cmd tea.Cmd
			a.picker, cmd = a.picker.Show()
			cmds = append(cmds, cmd)
		}
	case HideMsg:
		a.removeOverlay(msg.overlay)
		if msg.overlay == pickerOverlay {
			a.picker = a.picker.Hide()
		}
	}

	cmds = append(cmds, a.player.Update(msg))

	var cmd tea.Cmd
	a.info, cmd = a.info.Update(msg)
	cmds = append(cmds, cmd)

	a.about.update(aboutOverlay, msg)
	a.shortcuts.update(shortcutsOverlay, msg)

	// directory reads and window sizes; keys reach the picker through handleKey
	a.picker, cmd = a.picker.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

func (a *App) removeOverlay(o overlay) {
	a.overlays.Remove(func(other overlay) bool { return other == o })
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keymap.forceQuit) {
		return tea.Quit
	}

	if a.picker.Visible() {
		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(msg)
		return cmd
	}

	toggle := func(o overlay) tea.Cmd {
		if a.isOpen(o) {
			return send(HideMsg{overlay: o})
		}
		return send(ShowMsg{overlay: o})
	}

	command := func(c playback.Command) tea.Cmd {
		return a.player.Update(CommandMsg{Command: c})
	}

	switch {
	case key.Matches(msg, a.keymap.back):
		if top, ok := a.top(); ok {
			return send(HideMsg{overlay: top})
		}
	case key.Matches(msg, a.keymap.quit):
		return tea.Quit
	case key.Matches(msg, a.keymap.open):
		return send(ShowMsg{overlay: pickerOverlay})
	case key.Matches(msg, a.keymap.info):
		return toggle(infoOverlay)
	case key.Matches(msg, a.keymap.about):
		return toggle(aboutOverlay)
	case key.Matches(msg, a.keymap.shortcuts):
		return toggle(shortcutsOverlay)
	case key.Matches(msg, a.keymap.playPause):
		return command(playback.TogglePlayPause{})
	case key.Matches(msg, a.keymap.seekForward):
		return command(playback.SeekForwards{})
	case key.Matches(msg, a.keymap.seekBackward):
		return command(playback.SeekBackwards{})
	case key.Matches(msg, a.keymap.volumeUp):
		return command(playback.RaiseVolume{})
	case key.Matches(msg, a.keymap.volumeDown):
		return command(playback.LowerVolume{})
	case key.Matches(msg, a.keymap.fullscreen):
		return a.player.Update(ToggleFullscreenMsg{})
	}

	return nil
}
