package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/constant"
	"github.com/vidplay-cli/vidplay/icon"
	"github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/style"
	"github.com/vidplay-cli/vidplay/version"
)

// dependency is an external program vidplay needs on PATH.
type dependency struct {
	requirement version.Requirement
	configKey   string
	// package name per platform
	packages map[string]string
}

var (
	mpvDependency = dependency{
		requirement: version.MPV,
		configKey:   key.PlayerBinary,
		packages: map[string]string{
			constant.Darwin:  "brew install mpv",
			constant.Linux:   "sudo apt install mpv",
			constant.Windows: "scoop install mpv",
		},
	}

	ffprobeDependency = dependency{
		requirement: version.FFprobe,
		configKey:   key.ProbeFFprobePath,
		packages: map[string]string{
			constant.Darwin:  "brew install ffmpeg",
			constant.Linux:   "sudo apt install ffmpeg",
			constant.Windows: "scoop install ffmpeg",
		},
	}
)

// CheckDependencies exits if any of deps is missing from PATH and warns about outdated ones.
func CheckDependencies(deps ...dependency) {
	for _, dep := range deps {
		binary := viper.GetString(dep.configKey)
		if _, err := exec.LookPath(binary); err != nil {
			printMissingDependencyError(binary, dep.packages[runtime.GOOS])
			os.Exit(1)
		}

		dep.requirement.Notify(context.Background(), binary)
	}
}

func printMissingDependencyError(dep, installCmd string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
