// Package reference provides minimal, concrete adapters discharging the
// boundary contracts: a CBOR-backed document Store (boundary.FormatDocument
// only; FormatDirectory is explicitly out of scope here) and a
// zerolog-backed logging wrapper around any boundary.Store. Neither is a
// production persistence layer — calibration curve fitting, temporal
// fusion math, and reservoir sampling for wide frames are deliberately not
// implemented here.
package reference
