// Package open hands files over to other programs.
package open

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vidplay-cli/vidplay/constant"
)

// ErrUnsupportedOS is returned where no default file handler is known.
var ErrUnsupportedOS = fmt.Errorf("unsupported OS: %s", runtime.GOOS)

// Command returns the command that opens path with the system's default handler.
func Command(path string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", path), nil
	case constant.Darwin:
		return exec.Command("open", path), nil
	case constant.Linux:
		return exec.Command("xdg-open", path), nil
	case constant.Android:
		return exec.Command("termux-open", path), nil
	default:
		return nil, ErrUnsupportedOS
	}
}

// Editor returns the command that edits path with $VISUAL, then $EDITOR, then the default handler.
// The editor variable may carry arguments, e.g. "code --wait".
func Editor(path string) (*exec.Cmd, error) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		fields := strings.Fields(os.Getenv(env))
		if len(fields) == 0 {
			continue
		}

		args := append(fields[1:], path)
		return exec.Command(fields[0], args...), nil
	}

	cmd, err := Command(path)
	if errors.Is(err, ErrUnsupportedOS) {
		return nil, fmt.Errorf("set $EDITOR to edit %s: %w", path, err)
	}
	return cmd, err
}

// Edit opens path in the editor attached to the current terminal and waits for it to exit.
func Edit(path string) error {
	cmd, err := Editor(path)
	if err != nil {
		return err
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
