package reference

import (
	"fmt"
	"os"

	"github.com/bpietropaoli/thegame/boundary"
	"github.com/bpietropaoli/thegame/frame"
	"github.com/fxamacker/cbor/v2"
)

// wireEntry is RefinementEntry's on-disk shape: frame.ReferenceList holds
// unexported fields, so persistence round-trips through plain name slices
// and is reassembled via frame.New on Load.
type wireEntry struct {
	SourceName  string     `cbor:"source_name"`
	Source      []string   `cbor:"source"`
	Destination []string   `cbor:"destination"`
	Images      [][]string `cbor:"images"`
}

// DocumentStore persists a library of boundary.RefinementEntry values to a
// single CBOR document. It implements boundary.FormatDocument only;
// FormatDirectory requests fail with boundary.ErrUnknownFormat.
type DocumentStore struct{}

// NewDocumentStore constructs a DocumentStore.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Save writes entries to path as a single CBOR document.
func (s *DocumentStore) Save(path string, format boundary.Format, entries []boundary.RefinementEntry) error {
	if format != boundary.FormatDocument {
		return fmt.Errorf("reference.DocumentStore.Save: %w", boundary.ErrUnknownFormat)
	}
	wire := make([]wireEntry, len(entries))
	for i, e := range entries {
		images := make([][]string, len(e.Images))
		for j, img := range e.Images {
			images[j] = img.Names()
		}
		wire[i] = wireEntry{
			SourceName:  e.SourceName,
			Source:      e.Source.Names(),
			Destination: e.Destination.Names(),
			Images:      images,
		}
	}
	buf, err := cbor.Marshal(wire)
	if err != nil {
		return fmt.Errorf("reference.DocumentStore.Save: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("reference.DocumentStore.Save: %w", err)
	}
	return nil
}

// Load reads a CBOR document written by Save back into RefinementEntry
// values.
func (s *DocumentStore) Load(path string, format boundary.Format) ([]boundary.RefinementEntry, error) {
	if format != boundary.FormatDocument {
		return nil, fmt.Errorf("reference.DocumentStore.Load: %w", boundary.ErrUnknownFormat)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reference.DocumentStore.Load: %w", err)
	}
	var wire []wireEntry
	if err := cbor.Unmarshal(buf, &wire); err != nil {
		return nil, fmt.Errorf("reference.DocumentStore.Load: %w", err)
	}

	entries := make([]boundary.RefinementEntry, len(wire))
	for i, w := range wire {
		source, err := frame.New(w.Source...)
		if err != nil {
			return nil, fmt.Errorf("reference.DocumentStore.Load: entry %d source: %w", i, err)
		}
		destination, err := frame.New(w.Destination...)
		if err != nil {
			return nil, fmt.Errorf("reference.DocumentStore.Load: entry %d destination: %w", i, err)
		}
		images := make([]frame.ReferenceList, len(w.Images))
		for j, names := range w.Images {
			images[j], err = frame.New(names...)
			if err != nil {
				return nil, fmt.Errorf("reference.DocumentStore.Load: entry %d image %d: %w", i, j, err)
			}
		}
		entries[i] = boundary.RefinementEntry{
			SourceName:  w.SourceName,
			Source:      source,
			Destination: destination,
			Images:      images,
		}
	}
	return entries, nil
}
