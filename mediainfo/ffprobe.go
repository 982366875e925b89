package mediainfo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/key"
)

const maxStderr = 4096

// FFProbe implements Prober by running ffprobe and reading its JSON output.
type FFProbe struct {
	Binary  string
	Timeout time.Duration
}

// NewFFProbe returns an ffprobe prober configured from the probe.* keys.
func NewFFProbe() *FFProbe {
	return &FFProbe{
		Binary:  viper.GetString(key.ProbeFFprobePath),
		Timeout: time.Duration(viper.GetInt(key.ProbeTimeout)) * time.Second,
	}
}

func (f *FFProbe) Probe(ctx context.Context, path string) (Container, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	binary := f.Binary
	if binary == "" {
		binary = "ffprobe"
	}

	// #nosec G204 - the path is passed after the options and never interpreted as a flag
	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"--", path,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if len(msg) > maxStderr {
			msg = msg[:maxStderr] + "..."
		}
		if msg == "" {
			return Container{}, fmt.Errorf("ffprobe failed: %w", err)
		}
		return Container{}, fmt.Errorf("ffprobe failed: %w (stderr: %s)", err, msg)
	}

	return parseProbeOutput(out)
}

// parseProbeOutput reads the format section of ffprobe's JSON output.
// The tags object is walked in document order so duplicate keys survive.
func parseProbeOutput(out []byte) (Container, error) {
	format, dataType, _, err := jsonparser.Get(out, "format")
	if err != nil {
		return Container{}, fmt.Errorf("json decode: %w", err)
	}
	if dataType != jsonparser.Object {
		return Container{}, fmt.Errorf("json decode: format is %s, not an object", dataType)
	}

	var container Container

	if name, err := jsonparser.GetString(format, "format_long_name"); err == nil && name != "" {
		container.FormatDescription = mo.Some(name)
	}

	if raw, err := jsonparser.GetString(format, "duration"); err == nil {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Container{}, fmt.Errorf("parse duration %q: %w", raw, err)
		}
		container.DurationMicros = int64(math.Round(seconds * 1_000_000))
	}

	if raw, err := jsonparser.GetString(format, "bit_rate"); err == nil {
		bps, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Container{}, fmt.Errorf("parse bit_rate %q: %w", raw, err)
		}
		container.BitRate = bps
	}

	err = jsonparser.ObjectEach(format, func(k, v []byte, dataType jsonparser.ValueType, _ int) error {
		value := string(v)
		if dataType == jsonparser.String {
			unescaped, err := jsonparser.ParseString(v)
			if err != nil {
				return err
			}
			value = unescaped
		}

		container.Tags = append(container.Tags, Tag{Key: string(k), Value: value})
		return nil
	}, "tags")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return Container{}, fmt.Errorf("read tags: %w", err)
	}

	return container, nil
}
