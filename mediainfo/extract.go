package mediainfo

import (
	"context"

	"github.com/vidplay-cli/vidplay/log"
)

// Prober reads container metadata from a file.
type Prober interface {
	Probe(ctx context.Context, path string) (Container, error)
}

// Extractor turns probe results into records.
type Extractor struct {
	prober Prober
}

// NewExtractor returns an extractor backed by prober.
func NewExtractor(prober Prober) *Extractor {
	return &Extractor{prober: prober}
}

// Extract probes path once and formats the result.
// Any probe failure comes back as an *UnreadableContainerError.
func (e *Extractor) Extract(ctx context.Context, path string) (Record, error) {
	container, err := e.prober.Probe(ctx, path)
	if err != nil {
		log.Warnf("probe %s: %s", path, err)
		return Record{}, &UnreadableContainerError{Path: path, Cause: err}
	}

	record := NewRecord(path, container)
	log.Debugf("probed %s: %d tags", path, len(record.Tags))
	return record, nil
}
