package version

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

const detectTimeout = 5 * time.Second

// Detect runs `binary flag` and parses the version from the first line of its output.
func Detect(ctx context.Context, binary, flag string) (Version, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, binary, flag).Output()
	if err != nil {
		return Version{}, fmt.Errorf("run %s %s: %w", binary, flag, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(out))
	if !scanner.Scan() {
		return Version{}, fmt.Errorf("%s printed no version", binary)
	}

	return Parse(scanner.Text())
}
