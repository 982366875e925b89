package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/mo"
	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/icon"
	"github.com/vidplay-cli/vidplay/internal/ui"
	"github.com/vidplay-cli/vidplay/mediainfo"
	"github.com/vidplay-cli/vidplay/style"
)

const notAvailable = "N/A"

// infoPanel is the media info window. It keeps the last good record across failures.
type infoPanel struct {
	visible bool
	current mo.Option[mediainfo.Record]
	lastErr error
	pending string

	extractor *mediainfo.Extractor
	spinnerC  spinner.Model
}

func newInfoPanel(extractor *mediainfo.Extractor) infoPanel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style.New().Foreground(style.AccentColor)

	return infoPanel{
		extractor: extractor,
		spinnerC:  s,
	}
}

func (p infoPanel) loading() bool {
	return p.pending != ""
}

func (p infoPanel) Update(msg tea.Msg) (infoPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case GetInfoMsg:
		p.pending = msg.Path
		return p, tea.Batch(p.extract(msg.Path), p.spinnerC.Tick)
	case InfoLoadedMsg:
		if msg.Path != p.pending {
			return p, nil
		}
		p.pending = ""
		p.current = mo.Some(msg.Record)
		p.lastErr = nil
	case InfoFailedMsg:
		if msg.Path != p.pending {
			return p, nil
		}
		p.pending = ""
		p.lastErr = msg.Err
		return p, ui.NotifyError(msg.Err)
	case ShowMsg:
		if msg.overlay == infoOverlay {
			p.visible = true
		}
	case HideMsg:
		if msg.overlay == infoOverlay {
			p.visible = false
		}
	case spinner.TickMsg:
		if !p.loading() {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinnerC, cmd = p.spinnerC.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p infoPanel) extract(path string) tea.Cmd {
	extractor := p.extractor
	return func() tea.Msg {
		record, err := extractor.Extract(context.Background(), path)
		if err != nil {
			return InfoFailedMsg{Path: path, Err: err}
		}
		return InfoLoadedMsg{Path: path, Record: record}
	}
}

func (p infoPanel) View(width int) string {
	lines := []string{style.Title("Media Info"), ""}

	if p.loading() {
		lines = append(lines, p.spinnerC.View()+" Reading "+style.Fg(color.Purple)(p.pending), "")
	}

	record, ok := p.current.Get()
	if !ok && !p.loading() && p.lastErr == nil {
		lines = append(lines, style.Faint("No file opened"))
	}

	if ok {
		field := func(name, value string) string {
			if value == "" {
				value = notAvailable
			}
			return fmt.Sprintf("%s %s", style.Fg(color.Blue)(name+":"), value)
		}

		lines = append(lines,
			field("File", record.Path),
			field("Format", record.Format.OrElse(notAvailable)),
			field("Duration", record.Duration),
			field("Bitrate", record.Bitrate),
			"",
			style.Bold("Tags"),
		)

		if len(record.Tags) == 0 {
			lines = append(lines, style.Faint("none"))
		}
		for _, tag := range record.Tags {
			lines = append(lines, wrap.String(fmt.Sprintf("%s %s", style.Fg(color.Purple)(tag.Key), tag.Value), width))
		}
	}

	if p.lastErr != nil {
		lines = append(lines, "",
			icon.Get(icon.Fail)+" "+style.Fg(style.ErrorColor)(wrap.String(p.lastErr.Error(), width)),
		)
	}

	return strings.Join(lines, "\n")
}
