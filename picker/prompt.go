package picker

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/filesystem"
	"github.com/vidplay-cli/vidplay/key"
)

// Videos lists the video files directly inside dir, sorted by name.
// Hidden files are skipped unless picker.show_hidden is set.
func Videos(dir string) ([]string, error) {
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	showHidden := viper.GetBool(key.PickerShowHidden)

	var videos []string
	for _, entry := range entries {
		if entry.IsDir() || !IsVideo(entry.Name()) {
			continue
		}
		if !showHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		videos = append(videos, entry.Name())
	}

	sort.Strings(videos)
	return videos, nil
}

// Prompt asks the user to pick a video inside dir and returns its path.
func Prompt(dir string) (string, error) {
	videos, err := Videos(dir)
	if err != nil {
		return "", err
	}

	if len(videos) == 0 {
		return "", fmt.Errorf("no videos in %s", dir)
	}

	var choice string
	err = survey.AskOne(&survey.Select{
		Message: "Choose a video",
		Options: videos,
	}, &choice)
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrNoFileSelected
		}
		return "", err
	}

	return filepath.Join(dir, choice), nil
}
