package tui

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/constant"
	"github.com/vidplay-cli/vidplay/style"
)

// window is a dialog that is either shown or hidden.
type window struct {
	visible bool
}

func (w *window) update(target overlay, msg any) {
	switch msg := msg.(type) {
	case ShowMsg:
		if msg.overlay == target {
			w.visible = true
		}
	case HideMsg:
		if msg.overlay == target {
			w.visible = false
		}
	}
}

// aboutWindow shows the application name, version and license.
type aboutWindow struct {
	window
}

func (a *aboutWindow) View() string {
	return strings.Join([]string{
		style.Fg(style.AccentColor)(strings.TrimRight(constant.AsciiArtLogo, "\n")),
		"",
		style.Title(constant.Title),
		"",
		fmt.Sprintf("%s %s", style.Fg(color.Blue)("Version:"), constant.Version),
		fmt.Sprintf("%s %s", style.Fg(color.Blue)("License:"), constant.License),
		fmt.Sprintf("%s %s", style.Fg(color.Blue)("Revision:"), constant.Revision),
	}, "\n")
}

// shortcutsWindow shows the key bindings table.
type shortcutsWindow struct {
	window
}

func (s *shortcutsWindow) View() string {
	shortcuts := Shortcuts()
	width := lo.Max(lo.Map(shortcuts, func(s Shortcut, _ int) int { return len(s.Action) }))

	var b strings.Builder
	b.WriteString(style.Title("Keyboard Shortcuts"))

	group := ""
	for _, shortcut := range shortcuts {
		if shortcut.Group != group {
			group = shortcut.Group
			b.WriteString("\n\n" + style.Bold(group))
		}
		fmt.Fprintf(&b, "\n  %-*s  %s", width, shortcut.Action, style.Fg(color.Purple)(shortcut.Keys))
	}

	return b.String()
}
