package mediainfo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatDuration renders microseconds as HH:MM:SS.
// Every field wraps at 60, hours included. Negative durations render as zero.
func FormatDuration(micros int64) string {
	if micros < 0 {
		micros = 0
	}

	seconds := micros / 1_000_000

	return fmt.Sprintf(
		"%02d:%02d:%02d",
		(seconds/3600)%60,
		(seconds/60)%60,
		seconds%60,
	)
}

// FormatBitrate renders bits per second as megabits per second with two decimals.
func FormatBitrate(bps int64) string {
	return fmt.Sprintf("%.2f Mbps", float64(bps)/1_000_000)
}

// NormalizeKey upper-cases the first character of a tag key and lower-cases the rest.
// The first character takes its full upper-case mapping, which may be longer (ß becomes SS).
func NormalizeKey(key string) string {
	if key == "" {
		return key
	}

	first, size := utf8.DecodeRuneInString(key)

	var b strings.Builder
	b.Grow(len(key))

	if first == utf8.RuneError && size <= 1 {
		b.WriteString(key[:size])
	} else {
		// a Caser keeps state between calls, so each key gets its own
		b.WriteString(cases.Upper(language.Und).String(key[:size]))
	}

	b.WriteString(strings.ToLower(key[size:]))
	return b.String()
}
