package picker

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	vkey "github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/style"
)

// SelectedMsg is sent once when the user chooses a file.
type SelectedMsg struct {
	Path string
}

// CancelledMsg is sent when the picker is dismissed without a choice.
type CancelledMsg struct{}

// Model is an open-file dialog over the bubbles file picker, restricted to Extensions.
type Model struct {
	picker  filepicker.Model
	cancel  key.Binding
	visible bool
	notice  string
}

// New returns a closed picker rooted at picker.start_dir, or the home directory.
func New() Model {
	fp := filepicker.New()
	fp.AllowedTypes = allowedTypes()
	fp.CurrentDirectory = StartDir()
	fp.ShowHidden = viper.GetBool(vkey.PickerShowHidden)
	fp.ShowPermissions = false
	fp.AutoHeight = true
	fp.Styles.Selected = fp.Styles.Selected.Foreground(style.AccentColor)
	fp.Styles.Cursor = fp.Styles.Cursor.Foreground(style.AccentColor)

	// esc closes the dialog instead of going up a directory
	fp.KeyMap.Back = key.NewBinding(
		key.WithKeys("h", "backspace", "left"),
		key.WithHelp("h", "back"),
	)

	return Model{
		picker: fp,
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// StartDir is where the picker opens.
func StartDir() string {
	if dir := viper.GetString(vkey.PickerStartDir); dir != "" {
		return dir
	}

	if home, err := os.UserHomeDir(); err == nil {
		return home
	}

	return "."
}

// Show opens the dialog and reads the current directory.
func (m Model) Show() (Model, tea.Cmd) {
	m.visible = true
	m.notice = ""
	return m, m.picker.Init()
}

// Hide closes the dialog.
func (m Model) Hide() Model {
	m.visible = false
	return m
}

// Visible reports whether the dialog is open.
func (m Model) Visible() bool {
	return m.visible
}

// Update forwards msg to the file picker. Keys are only handled while visible;
// other messages always pass through so directory reads land.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if !m.visible {
			return m, nil
		}

		if key.Matches(keyMsg, m.cancel) {
			m.visible = false
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if !m.visible {
		return m, cmd
	}

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.visible = false
		return m, tea.Batch(cmd, func() tea.Msg { return SelectedMsg{Path: path} })
	}

	// the file picker matches suffixes case-sensitively, so clip.Mp4 lands here
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		if IsVideo(path) {
			m.visible = false
			return m, tea.Batch(cmd, func() tea.Msg { return SelectedMsg{Path: path} })
		}
		m.notice = filepath.Base(path) + " is not a supported video"
	}

	return m, cmd
}

// View renders the dialog, or nothing while hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	view := style.Title("Open Video") + "\n\n" + style.Faint(m.picker.CurrentDirectory) + "\n\n" + m.picker.View()
	if m.notice != "" {
		view += "\n" + style.Fg(style.ErrorColor)(m.notice)
	}
	return view
}
