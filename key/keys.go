// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Media Playback - these keys configure the external mpv process and the render step.
const (
	PlayerBinary     = "player.binary"
	PlayerSeekStep   = "player.seek_step"
	PlayerVolumeStep = "player.volume_step"
)

// Container Probing - these keys configure the ffprobe invocation used by the media info panel.
const (
	ProbeFFprobePath = "probe.ffprobe_path"
	ProbeTimeout     = "probe.timeout"
)

// File Picker - these keys configure the file selection dialog.
const (
	PickerShowHidden = "picker.show_hidden"
	PickerStartDir   = "picker.start_dir"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment's styling.
const (
	TUIShowHelp = "tui.show_help"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
