// Package boundary defines the contracts through which the evidence-theory
// core is fed by, and reports to, the outside world: refinement
// persistence, sensor calibration, temporal fusion policy, and synthetic
// belief generation. It deliberately holds contracts only — no parsing,
// no curve fitting, no reservoir sampling — so that concrete adapters
// (file formats, sensor drivers, generators) stay external collaborators
// that depend on boundary, never the reverse.
//
// Snapshot exists so this package never imports mass: it is a minimal,
// serialisable projection of a MassFunction's focal/mass pairs, built and
// consumed at the edges by callers that do hold a concrete element type.
package boundary
