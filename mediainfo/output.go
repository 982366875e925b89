package mediainfo

import (
	"fmt"
	"strings"

	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/style"
	"github.com/vidplay-cli/vidplay/util"
)

// Output is the serialized form of a Record.
type Output struct {
	Path     string  `json:"path" jsonschema:"description=Path of the probed file."`
	Format   *string `json:"format" jsonschema:"description=Long name of the container format. Null when unknown."`
	Duration string  `json:"duration" jsonschema:"description=Duration as HH:MM:SS. Hours wrap at 60."`
	Bitrate  string  `json:"bitrate" jsonschema:"description=Overall bit rate in megabits per second with two decimals."`
	Tags     []Tag   `json:"tags" jsonschema:"description=Container tags in file order. Duplicates are kept."`
}

// Output converts r for JSON encoding.
func (r Record) Output() Output {
	tags := r.Tags
	if tags == nil {
		tags = []Tag{}
	}

	return Output{
		Path:     r.Path,
		Format:   r.Format.ToPointer(),
		Duration: r.Duration,
		Bitrate:  r.Bitrate,
		Tags:     tags,
	}
}

// Pretty renders r for the terminal.
func (r Record) Pretty() string {
	label := func(name string) string {
		return style.Fg(color.Blue)(fmt.Sprintf("%-9s", name+":"))
	}

	lines := []string{
		label("File") + " " + style.Fg(color.Purple)(r.Path),
		label("Format") + " " + r.Format.OrElse("N/A"),
		label("Duration") + " " + r.Duration,
		label("Bitrate") + " " + r.Bitrate,
		"",
		style.Bold(util.Quantify(len(r.Tags), "tag", "tags")),
	}

	for _, tag := range r.Tags {
		lines = append(lines, fmt.Sprintf("  %s %s", style.Fg(color.Yellow)(tag.Key+":"), tag.Value))
	}

	return strings.Join(lines, "\n")
}
