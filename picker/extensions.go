// Package picker chooses a video file, either inside the TUI or through a CLI prompt.
package picker

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// ErrNoFileSelected is returned when the user dismisses a picker without choosing.
var ErrNoFileSelected = errors.New("no file selected")

// Extensions are the accepted video file extensions, without the dot.
var Extensions = []string{"mp4", "mkv", "mka", "mk3d", "mks", "mov", "avi", "wmv", "flv", "f4v", "webm", "ogv"}

// IsVideo reports whether path has one of Extensions, ignoring case.
func IsVideo(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	return lo.Contains(Extensions, strings.ToLower(ext))
}

// allowedTypes returns dotted suffixes in lower and upper case, as the file picker matches them verbatim.
// Mixed-case suffixes show as disabled and are let through by Model.Update.
func allowedTypes() []string {
	return lo.FlatMap(Extensions, func(ext string, _ int) []string {
		return []string{"." + ext, "." + strings.ToUpper(ext)}
	})
}
