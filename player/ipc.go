package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

// ipcCommand is the JSON structure sent to mpv's IPC socket.
type ipcCommand struct {
	Command []interface{} `json:"command"`
}

// ipcResponse is the JSON structure received from mpv's IPC socket.
// Event lines carry Event instead of Error.
type ipcResponse struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error"`
	Event string      `json:"event"`
}

const (
	maxRetries   = 3
	retryDelay   = 100 * time.Millisecond
	readDeadline = 1 * time.Second
	maxLineSize  = 1 << 20
)

// errPropertyUnavailable is mpv's answer for properties of a file that is not loaded.
const errPropertyUnavailable = "property unavailable"

// sendCommand sends a JSON-IPC command to mpv via Unix domain socket.
// Transient connection errors are retried; mpv errors are not.
func (m *MPV) sendCommand(command []interface{}) (interface{}, error) {
	if !m.running() {
		return nil, ErrNotRunning
	}
	socketPath := m.Socket()

	m.mu.Lock()
	defer m.mu.Unlock()

	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}

		result, err := doSendCommand(socketPath, command)
		if err == nil {
			return result, nil
		}

		var mpvErr *mpvError
		if errors.As(err, &mpvErr) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("ipc command failed after %d attempts: %w", maxRetries, lastErr)
}

// mpvError is an error reported by mpv itself, as opposed to a transport failure.
type mpvError struct {
	Command string
	Reason  string
}

func (e *mpvError) Error() string {
	return fmt.Sprintf("mpv error: %s: %s", e.Command, e.Reason)
}

func isPropertyUnavailable(err error) bool {
	var mpvErr *mpvError
	return errors.As(err, &mpvErr) && mpvErr.Reason == errPropertyUnavailable
}

// doSendCommand performs a single IPC command attempt.
func doSendCommand(socketPath string, command []interface{}) (interface{}, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	payload, err := json.Marshal(ipcCommand{Command: command})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	// mpv requires newline-delimited JSON
	if _, err = conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(readDeadline)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 4096), maxLineSize)

	for scanner.Scan() {
		var resp ipcResponse
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			return nil, fmt.Errorf("unmarshal: %w", err)
		}

		// mpv broadcasts events to every client
		if resp.Event != "" {
			continue
		}

		if resp.Error != "" && resp.Error != "success" {
			return nil, &mpvError{Command: commandName(command), Reason: resp.Error}
		}

		return resp.Data, nil
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return nil, fmt.Errorf("read: connection closed before reply")
}

func commandName(command []interface{}) string {
	parts := make([]string, 0, 2)
	for i, c := range command {
		if i == 2 {
			break
		}
		parts = append(parts, fmt.Sprint(c))
	}
	return strings.Join(parts, " ")
}
