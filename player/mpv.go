package player

import (
	"crypto/rand"
	"fmt"
	"math"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/util"
	"github.com/vidplay-cli/vidplay/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second

	// mpv reports and accepts volume as a percentage
	volumeScale = 100.0

	// mpv's default volume-max
	defaultVolumeMax = 130.0
)

// MPV implements Player using mpv's JSON-IPC protocol.
// The process is started lazily by the first Bind and restarted if the user closes its window.
type MPV struct {
	binary string

	state      sync.RWMutex // protects socketPath, cmd and exited
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when mpv process exits

	mu        sync.Mutex // protects socket writes
	lifecycle sync.Mutex // protects start and close
}

// NewMPV creates a new mpv player (does not start the process).
func NewMPV(binary string) *MPV {
	if binary == "" {
		binary = "mpv"
	}

	exited := make(chan struct{})
	close(exited)

	return &MPV{
		binary: binary,
		exited: exited,
	}
}

// process returns the current socket, process and exit channel.
func (m *MPV) process() (string, *exec.Cmd, chan struct{}) {
	m.state.RLock()
	defer m.state.RUnlock()
	return m.socketPath, m.cmd, m.exited
}

// running reports whether the mpv process is alive.
func (m *MPV) running() bool {
	socketPath, _, exited := m.process()
	if socketPath == "" {
		return false
	}

	select {
	case <-exited:
		return false
	default:
		return true
	}
}

// start launches an idle, paused mpv bound to a fresh IPC socket.
// The new process is published only once its socket accepts connections.
func (m *MPV) start() error {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()

	if m.running() {
		return nil
	}

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Errorf("generate socket name: %w", err)
	}
	socketPath := filepath.Join(where.Temp(), fmt.Sprintf("mpv-%x.sock", randomBytes))

	// Only the socket and window behaviour are passed: the user's mpv.conf stays in charge
	// of decoding and output.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", socketPath),
		"--force-window=yes",
		"--idle=yes",
		"--keep-open=yes",
		"--pause",
	}

	cmd := exec.Command(m.binary, args...)

	// Detach from the terminal's process group so ctrl+c in the TUI does not reach mpv.
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", m.binary, err)
	}

	exited := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	if err := waitForSocket(socketPath, exited); err != nil {
		select {
		case <-exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(cmd)
		}
		_ = os.Remove(socketPath)
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	m.state.Lock()
	m.socketPath, m.cmd, m.exited = socketPath, cmd, exited
	m.state.Unlock()

	log.Infof("mpv started, pid %d, socket %s", cmd.Process.Pid, socketPath)
	return nil
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func waitForSocket(socketPath string, exited <-chan struct{}) error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", socketPath, socketWaitRetries)
}

// HasSource reports whether mpv has a file loaded.
// A player that is not running has nothing bound.
func (m *MPV) HasSource() (bool, error) {
	if !m.running() {
		return false, nil
	}

	data, err := m.sendCommand([]interface{}{"get_property", "path"})
	if err != nil {
		if isPropertyUnavailable(err) {
			return false, nil
		}
		return false, err
	}

	path, _ := data.(string)
	return path != "", nil
}

// Bind loads path into mpv, starting the process first if needed.
func (m *MPV) Bind(path string) error {
	target, err := sanitizeMediaTarget(path)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if err := m.start(); err != nil {
		return err
	}

	_, err = m.sendCommand([]interface{}{"loadfile", target, "replace"})
	return err
}

// SetPlaying pauses or resumes playback.
func (m *MPV) SetPlaying(playing bool) error {
	return m.set("pause", !playing)
}

// Position returns the current playback position.
func (m *MPV) Position() (time.Duration, error) {
	seconds, err := m.getFloatProperty("time-pos")
	if err != nil {
		return 0, err
	}
	return secondsToDuration(seconds), nil
}

// SeekTo moves playback to an absolute position. Negative positions seek to the start,
// since mpv reads negative absolute targets as counted from the end.
func (m *MPV) SeekTo(pos time.Duration) error {
	seconds := math.Max(pos.Seconds(), 0)
	_, err := m.sendCommand([]interface{}{"seek", seconds, "absolute"})
	return err
}

// Volume returns the current volume as a fraction, 1 being 100%.
// mpv amplifies past 100% up to volume-max, so values above 1 are reported as is.
func (m *MPV) Volume() (float64, error) {
	percent, err := m.getFloatProperty("volume")
	if err != nil {
		return 0, err
	}
	return percent / volumeScale, nil
}

// SetVolume sets the volume, clamping to [0, volume-max].
func (m *MPV) SetVolume(volume float64) error {
	ceiling, err := m.getFloatProperty("volume-max")
	if err != nil {
		ceiling = defaultVolumeMax
	}

	percent := math.Round(util.Clamp(volume*volumeScale, 0, ceiling))
	return m.set("volume", percent)
}

// ToggleFullscreen flips mpv's fullscreen flag.
func (m *MPV) ToggleFullscreen() error {
	_, err := m.sendCommand([]interface{}{"cycle", "fullscreen"})
	return err
}

// Eject stops playback and unloads the current file. The process stays idle.
func (m *MPV) Eject() error {
	if !m.running() {
		return nil
	}
	_, err := m.sendCommand([]interface{}{"stop"})
	return err
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	_, _, exited := m.process()
	return exited
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	socketPath, _, _ := m.process()
	return socketPath
}

// Close shuts down the mpv process and removes its socket.
func (m *MPV) Close() error {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()

	socketPath, cmd, exited := m.process()
	if socketPath == "" {
		return nil
	}

	if m.running() {
		_, _ = m.sendCommand([]interface{}{"quit"})

		select {
		case <-exited:
		case <-time.After(quitTimeout):
			_ = killProcess(cmd)
		}
	}

	_ = os.Remove(socketPath)
	return nil
}

func (m *MPV) set(property string, value interface{}) error {
	_, err := m.sendCommand([]interface{}{"set_property", property, value})
	return err
}

// getFloatProperty is a helper to retrieve a float64 mpv property via IPC.
func (m *MPV) getFloatProperty(name string) (float64, error) {
	data, err := m.sendCommand([]interface{}{"get_property", name})
	if err != nil {
		return 0, err
	}

	if data == nil {
		return 0, fmt.Errorf("property %s: nil response", name)
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}

	return val, nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// sanitizeMediaTarget validates a local file path before handing it to mpv.
func sanitizeMediaTarget(path string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.ContainsAny(p, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in path")
	}

	// loadfile would treat "-" as stdin and anything with "://" as a URL
	if p == "-" || strings.Contains(p, "://") {
		return "", fmt.Errorf("not a local file: %s", p)
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", p, err)
	}
	return abs, nil
}
