package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/constant"
	"github.com/vidplay-cli/vidplay/icon"
	"github.com/vidplay-cli/vidplay/style"
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(style.FaintColor).
	Padding(0, 1)

func (a *App) View() string {
	var body string

	top, ok := a.top()
	switch {
	case ok && top == pickerOverlay:
		body = a.picker.View()
	case ok && top == aboutOverlay:
		body = a.about.View()
	case ok && top == shortcutsOverlay:
		body = a.shortcuts.View()
	case a.info.visible:
		half := a.width / 2
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			lipgloss.NewStyle().Width(half).Render(a.viewPlayer()),
			panelStyle.Width(a.width-half-panelStyle.GetHorizontalFrameSize()).Render(a.info.View(a.width-half-4)),
		)
	default:
		body = a.viewPlayer()
	}

	return a.notifier.View(a.renderLines(a.showHelp(), strings.Split(body, "\n")))
}

func (a *App) viewPlayer() string {
	p := a.player

	lines := []string{style.Title(constant.App), ""}

	path, ok := p.intent.Source.Get()
	if !ok {
		lines = append(lines,
			style.Faint("No file opened"),
			"",
			fmt.Sprintf("Press %s to open a video", style.Fg(color.Orange)(a.keymap.open.Help().Key)),
		)
		return strings.Join(lines, "\n")
	}

	name := filepath.Base(path)
	if p.status.filename != "" {
		name = p.status.filename
	}

	state := icon.Get(icon.Pause) + " Paused"
	if p.intent.Playing {
		state = icon.Get(icon.Play) + " Playing"
	}

	lines = append(lines,
		style.Truncate(a.width)(icon.Get(icon.Film)+" "+style.Fg(color.Purple)(name)),
		"",
		state,
	)

	if p.status.known {
		lines = append(lines,
			fmt.Sprintf("%s / %s", clock(p.status.position), clock(p.status.duration)),
			fmt.Sprintf("%s %3.0f%%", icon.Get(icon.Volume), p.status.volume*100),
		)
		if p.status.fullscreen {
			lines = append(lines, style.Faint("fullscreen"))
		}
	}

	return strings.Join(lines, "\n")
}

func clock(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%02d:%02d:%02d", h, m, d/time.Second)
}

func (a *App) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if a.height > h {
			l += strings.Repeat("\n", a.height-h)
		}
		l += a.helpC.View(a.keymap)
	}

	return paddingStyle.Render(l)
}
