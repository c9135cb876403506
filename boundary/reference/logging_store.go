package reference

import (
	"time"

	"github.com/bpietropaoli/thegame/boundary"
	"github.com/rs/zerolog"
)

// LoggingStore wraps a boundary.Store, emitting a structured zerolog event
// around every Load/Save call: path, format, entry count, and duration.
// Failures are logged at Error level with the underlying error; successes
// at Debug.
type LoggingStore struct {
	next boundary.Store
	log  zerolog.Logger
}

// NewLoggingStore wraps next with logging against log.
func NewLoggingStore(next boundary.Store, log zerolog.Logger) *LoggingStore {
	return &LoggingStore{next: next, log: log}
}

func (s *LoggingStore) Load(path string, format boundary.Format) ([]boundary.RefinementEntry, error) {
	start := time.Now()
	entries, err := s.next.Load(path, format)
	evt := s.log.Debug()
	if err != nil {
		evt = s.log.Error().Err(err)
	}
	evt.Str("path", path).
		Str("format", format.String()).
		Int("entries", len(entries)).
		Dur("elapsed", time.Since(start)).
		Msg("boundary.Store.Load")
	return entries, err
}

func (s *LoggingStore) Save(path string, format boundary.Format, entries []boundary.RefinementEntry) error {
	start := time.Now()
	err := s.next.Save(path, format, entries)
	evt := s.log.Debug()
	if err != nil {
		evt = s.log.Error().Err(err)
	}
	evt.Str("path", path).
		Str("format", format.String()).
		Int("entries", len(entries)).
		Dur("elapsed", time.Since(start)).
		Msg("boundary.Store.Save")
	return err
}
