// Package icon renders UI symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/key"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Play
	Pause
	Film
	Info
	Volume
)

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "\uf00c", plain: "✓"},
	Fail:     {emoji: "💥", nerd: "\uf00d", plain: "✖"},
	Progress: {emoji: "⏳", nerd: "\uf110", plain: "…"},
	Play:     {emoji: "▶️", nerd: "\uf04b", plain: "▶"},
	Pause:    {emoji: "⏸️", nerd: "\uf04c", plain: "‖"},
	Film:     {emoji: "🎬", nerd: "\uf008", plain: "#"},
	Info:     {emoji: "ℹ️", nerd: "\uf05a", plain: "i"},
	Volume:   {emoji: "🔊", nerd: "\uf028", plain: "♪"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get returns the symbol for i, or "" for an unknown variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.get()
}
