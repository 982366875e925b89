package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/vidplay-cli/vidplay/log"
)

// EventCallback is the function signature for mpv event notifications.
type EventCallback func(property string, data interface{})

// ObservedProperties are the properties an EventListener subscribes to.
var ObservedProperties = []string{"time-pos", "duration", "pause", "volume", "fullscreen", "filename"}

const eventReadDeadline = 5 * time.Second

// EventListener reports mpv property changes through observe_property.
// Observers are registered on the listener's own connection, since mpv scopes them per client.
type EventListener struct {
	socketPath string
	conn       net.Conn
	callback   EventCallback
	stopCh     chan struct{}
	done       chan struct{}
	mu         sync.Mutex
	listening  bool
}

// NewEventListener creates a new event listener for the given socket.
func NewEventListener(socketPath string, callback EventCallback) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		callback:   callback,
		stopCh:     make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start subscribes to ObservedProperties and starts the read loop.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	for i, name := range ObservedProperties {
		payload, err := json.Marshal(ipcCommand{Command: []interface{}{"observe_property", i + 1, name}})
		if err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
		if _, err := conn.Write(append(payload, '\n')); err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.conn = conn
	el.listening = true

	go el.readLoop()

	log.Debugf("mpv event listener started on %s", el.socketPath)
	return nil
}

// Stop terminates the event listener and waits for its read loop to return.
func (el *EventListener) Stop() {
	el.mu.Lock()
	if !el.listening {
		el.mu.Unlock()
		return
	}
	close(el.stopCh)
	el.conn.Close()
	el.mu.Unlock()

	<-el.done
}

// Done is closed once the read loop has returned, either after Stop or when mpv goes away.
func (el *EventListener) Done() <-chan struct{} {
	return el.done
}

// readLoop reads newline-delimited JSON events from the persistent connection.
func (el *EventListener) readLoop() {
	defer func() {
		el.mu.Lock()
		el.listening = false
		el.conn.Close()
		el.mu.Unlock()
		close(el.done)
	}()

	reader := bufio.NewReaderSize(el.conn, 4096)
	var pending []byte

	for {
		select {
		case <-el.stopCh:
			return
		default:
		}

		if err := el.conn.SetReadDeadline(time.Now().Add(eventReadDeadline)); err != nil {
			return
		}

		line, err := reader.ReadBytes('\n')
		pending = append(pending, line...)
		if err == nil {
			el.processEvent(pending)
			pending = pending[:0]
			continue
		}
		if errors.Is(err, os.ErrDeadlineExceeded) {
			continue
		}

		select {
		case <-el.stopCh:
		default:
			log.Warnf("event listener read error: %v", err)
		}
		return
	}
}

// processEvent parses and dispatches a single mpv event line.
// Replies to the observe_property commands carry no event and are skipped.
func (el *EventListener) processEvent(line []byte) {
	var event map[string]interface{}
	if err := json.Unmarshal(line, &event); err != nil {
		return
	}

	eventType, ok := event["event"].(string)
	if !ok || el.callback == nil {
		return
	}

	switch eventType {
	case "property-change":
		if name, _ := event["name"].(string); name != "" {
			el.callback(name, event["data"])
		}
	default:
		// e.g. "end-file", "file-loaded", "shutdown"
		el.callback(eventType, event)
	}
}
