package version

import (
	"context"
	"fmt"

	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/icon"
	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/style"
)

// Requirement is an external tool and the oldest version known to work.
type Requirement struct {
	Name    string
	Flag    string
	Minimum Version
}

var (
	// MPV needs JSON IPC with get_property replies and --keep-open.
	MPV = Requirement{Name: "mpv", Flag: "--version", Minimum: Version{Major: 0, Minor: 32}}

	// FFprobe needs -print_format json with format tags.
	FFprobe = Requirement{Name: "ffprobe", Flag: "-version", Minimum: Version{Major: 4}}
)

// Check detects the version of binary and reports whether it satisfies r.
func (r Requirement) Check(ctx context.Context, binary string) (Version, bool, error) {
	found, err := Detect(ctx, binary, r.Flag)
	if err != nil {
		return Version{}, false, err
	}

	return found, Compare(found, r.Minimum) >= 0, nil
}

// Notify prints a warning when binary is older than r.Minimum. Detection failures are only logged.
func (r Requirement) Notify(ctx context.Context, binary string) {
	found, ok, err := r.Check(ctx, binary)
	if err != nil {
		log.Warnf("detect %s version: %s", r.Name, err)
		return
	}

	if ok {
		return
	}

	fmt.Printf(`
%s %s %s is older than %s
%s

`,
		style.Fg(color.Yellow)(icon.Get(icon.Fail)),
		style.Bold(r.Name),
		style.Bold(found.String()),
		style.Bold(r.Minimum.String()),
		style.Faint("Some features may not work, consider upgrading"),
	)
}
