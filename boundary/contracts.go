package boundary

import (
	"time"

	"github.com/bpietropaoli/thegame/frame"
)

// Format selects a refinement persistence encoding. The core never parses
// either format itself; Store implementations do.
type Format int

const (
	// FormatDirectory is a directory tree of human-readable files, one
	// per refinement.
	FormatDirectory Format = iota
	// FormatDocument is a single file in a hierarchical markup format
	// holding every refinement.
	FormatDocument
)

// String renders f's name for logging.
func (f Format) String() string {
	switch f {
	case FormatDirectory:
		return "directory"
	case FormatDocument:
		return "document"
	default:
		return "unknown"
	}
}

// RefinementEntry is the structural, parser-agnostic read/write unit a
// Store exchanges with persistent storage: a named source frame, its
// destination frame, and the per-world destination names that a caller
// resolves into transform.Refinement's DiscreteElement images.
type RefinementEntry struct {
	SourceName  string
	Source      frame.ReferenceList
	Destination frame.ReferenceList
	Images      []frame.ReferenceList
}

// Store is the persistence contract for a library of refinement entries.
// Implementations must round-trip: Save followed by Load yields
// structurally equal entries (same reference lists, same per-world
// images).
type Store interface {
	Load(path string, format Format) ([]RefinementEntry, error)
	Save(path string, format Format, entries []RefinementEntry) error
}

// CalibrationPoint is one knot of a sensor's piecewise-linear calibration
// curve: an input reading X mapped to a named focal-mass distribution.
type CalibrationPoint struct {
	X      float64
	Masses map[string]float64
}

// SensorModel evaluates a raw sensor reading into named focal masses via
// piecewise-linear interpolation between CalibrationPoints. The curve
// fitting itself is a caller concern; SensorModel only exposes the
// evaluated result.
type SensorModel interface {
	Evaluate(x float64) (map[string]float64, error)
}

// Snapshot is a minimal serialisable projection of a mass function: N is
// the frame size, Focals holds each focal element's Key() (or Hash(), for
// cross-process use), and Masses[i] is the mass on Focals[i]. It lets
// boundary describe temporal and generative contracts without importing
// the generic mass package.
type Snapshot struct {
	N      int
	Focals []uint64
	Masses []float64
}

// TemporalPolicy governs how a running belief estimate evolves with time
// and with fresh evidence. TempoSpecificity relaxes last toward the
// vacuous mass as elapsed grows (a belief "ages" toward ignorance);
// TempoFusion merges a fresh Snapshot into last, weighted by elapsed.
type TemporalPolicy interface {
	TempoSpecificity(last Snapshot, elapsed time.Duration) Snapshot
	TempoFusion(last Snapshot, fresh Snapshot, elapsed time.Duration) (Snapshot, error)
}

// Generator produces synthetic belief snapshots for testing and
// benchmarking: Generate builds a Snapshot with k focal elements over an
// n-world frame. It fails with ErrInvalidBeliefConstructor if k exceeds
// 2^n - 1, the number of non-empty proper subsets plus the full set.
type Generator interface {
	Generate(n, k int) (Snapshot, error)
}
