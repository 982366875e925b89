package tui

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidplay-cli/vidplay/internal/ui"
	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/playback"
	"github.com/vidplay-cli/vidplay/player"
)

const queueSize = 64

// renderJob is a snapshot of the intent to push onto the stream.
type renderJob struct {
	intent playback.Intent
	eject  bool
}

type renderedMsg struct {
	err error
}

type fullscreenToggledMsg struct {
	err error
}

// propertyMsg is an mpv property change or event.
type propertyMsg struct {
	name string
	data interface{}
}

// status is what the player last reported about itself. It is display-only.
type status struct {
	position   time.Duration
	duration   time.Duration
	paused     bool
	volume     float64
	fullscreen bool
	filename   string
	known      bool
}

// playerModel owns the playback intent and the stream it is rendered onto.
// Renders run in order on a single worker goroutine.
type playerModel struct {
	intent playback.Intent
	status status

	window player.Player
	steps  playback.Steps

	jobs    chan renderJob
	results chan renderedMsg
	events  chan propertyMsg
	done    chan struct{}

	listener *player.EventListener
	once     sync.Once
}

func newPlayerModel(window player.Player, steps playback.Steps) *playerModel {
	p := &playerModel{
		window:  window,
		steps:   steps,
		jobs:    make(chan renderJob, queueSize),
		results: make(chan renderedMsg, queueSize),
		events:  make(chan propertyMsg, queueSize),
		done:    make(chan struct{}),
	}

	go p.work()
	return p
}

func (p *playerModel) Init() tea.Cmd {
	return tea.Batch(p.waitForRendered(), p.waitForProperty())
}

// work renders jobs in the order they were queued.
func (p *playerModel) work() {
	defer close(p.done)

	for job := range p.jobs {
		if job.eject {
			if err := p.window.Eject(); err != nil {
				log.Warnf("eject: %s", err)
			}
		}

		err := playback.Render(job.intent, p.window, p.steps)
		if err != nil {
			log.Errorf("render: %s", err)
		} else {
			p.listen()
		}

		p.results <- renderedMsg{err: err}
	}
}

// listen starts an event listener on the player's socket unless one is running.
func (p *playerModel) listen() {
	socket := p.window.Socket()
	if socket == "" {
		return
	}

	if p.listener != nil {
		select {
		case <-p.listener.Done():
		default:
			return
		}
	}

	p.listener = player.NewEventListener(socket, func(name string, data interface{}) {
		select {
		case p.events <- propertyMsg{name: name, data: data}:
		default:
		}
	})

	if err := p.listener.Start(); err != nil {
		log.Warnf("listen to player events: %s", err)
		p.listener = nil
	}
}

func (p *playerModel) waitForRendered() tea.Cmd {
	return func() tea.Msg {
		return <-p.results
	}
}

func (p *playerModel) waitForProperty() tea.Cmd {
	return func() tea.Msg {
		return <-p.events
	}
}

// Update applies reducer commands and queues a render for each.
func (p *playerModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case CommandMsg:
		return p.apply(msg.Command)
	case renderedMsg:
		if msg.err != nil {
			return tea.Batch(p.waitForRendered(), ui.NotifyError(msg.err))
		}
		return p.waitForRendered()
	case ToggleFullscreenMsg:
		window := p.window
		return func() tea.Msg {
			return fullscreenToggledMsg{err: window.ToggleFullscreen()}
		}
	case fullscreenToggledMsg:
		if msg.err != nil {
			return ui.NotifyError(fmt.Errorf("fullscreen: %w", msg.err))
		}
	case propertyMsg:
		p.status.apply(msg.name, msg.data)
		return p.waitForProperty()
	}

	return nil
}

func (p *playerModel) apply(cmd playback.Command) tea.Cmd {
	previous, hadSource := p.intent.Source.Get()
	p.intent = playback.Apply(p.intent, cmd)

	// The render only binds an empty stream, so a different file needs the old one unloaded first.
	current, _ := p.intent.Source.Get()
	job := renderJob{
		intent: p.intent,
		eject:  hadSource && previous != current,
	}

	select {
	case p.jobs <- job:
		return nil
	default:
		return ui.NotifyError(fmt.Errorf("player is busy, dropped %T", cmd))
	}
}

// Close stops rendering and shuts the player down.
func (p *playerModel) Close() error {
	var err error

	p.once.Do(func() {
		close(p.jobs)

		// drain so the worker is never stuck on a full result queue
		go func() {
			for range p.results {
			}
		}()
		<-p.done
		close(p.results)

		if p.listener != nil {
			p.listener.Stop()
		}

		err = p.window.Close()
	})

	return err
}

func (s *status) apply(name string, data interface{}) {
	s.known = true

	switch name {
	case "time-pos":
		s.position = seconds(data)
	case "duration":
		s.duration = seconds(data)
	case "pause":
		s.paused, _ = data.(bool)
	case "volume":
		if v, ok := data.(float64); ok {
			s.volume = v / 100
		}
	case "fullscreen":
		s.fullscreen, _ = data.(bool)
	case "filename":
		s.filename, _ = data.(string)
	case "end-file":
		s.position = 0
	case "shutdown":
		*s = status{}
	}
}

func seconds(data interface{}) time.Duration {
	v, ok := data.(float64)
	if !ok {
		return 0
	}
	return time.Duration(v * float64(time.Second))
}
