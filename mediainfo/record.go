// Package mediainfo reads container-level metadata from media files and formats it for display.
package mediainfo

import "github.com/samber/mo"

// Tag is a single free-form container tag.
type Tag struct {
	Key   string `json:"key" jsonschema:"description=Tag name with the first letter upper-cased and the rest lower-cased."`
	Value string `json:"value" jsonschema:"description=Tag value as stored in the container."`
}

// Record is the display-ready metadata of one media file.
// Tags keep the container's enumeration order, duplicates included.
type Record struct {
	Path     string            `json:"path"`
	Format   mo.Option[string] `json:"format"`
	Duration string            `json:"duration"`
	Bitrate  string            `json:"bitrate"`
	Tags     []Tag             `json:"tags"`
}

// Container is what a Prober reports about a file, before any formatting.
type Container struct {
	FormatDescription mo.Option[string]
	DurationMicros    int64
	BitRate           int64
	Tags              []Tag
}

// NewRecord formats a probed container.
func NewRecord(path string, c Container) Record {
	tags := make([]Tag, len(c.Tags))
	for i, tag := range c.Tags {
		tags[i] = Tag{Key: NormalizeKey(tag.Key), Value: tag.Value}
	}

	return Record{
		Path:     path,
		Format:   c.FormatDescription,
		Duration: FormatDuration(c.DurationMicros),
		Bitrate:  FormatBitrate(c.BitRate),
		Tags:     tags,
	}
}
