// Package color names the terminal colors used across the CLI.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps a color value (ANSI index or hex).
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
)

// High-intensity variants.
var (
	HiRed    = New("9")
	HiPurple = New("13")
)

// Hex accents.
var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)
