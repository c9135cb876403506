package transform

import (
	"fmt"

	"github.com/bpietropaoli/thegame/element"
	"github.com/bpietropaoli/thegame/frame"
)

// Refinement is a multi-valued mapping from a source frame's worlds to
// non-empty subsets of a destination frame: Images[k] is the destination
// DiscreteElement assigned to source world k. A well-formed refinement
// must cover the destination frame (the union of all Images equals its
// full element); Strict additionally requires the Images to be pairwise
// disjoint, the "strict refinement" reading used by the round-trip
// marginalisation identity.
type Refinement struct {
	Source frame.ReferenceList
	Images []*element.DiscreteElement
	Strict bool
}

// shape reports whether r's Images slice matches its declared Source
// frame and destination width, and every image is non-nil and non-empty.
func (r Refinement) shape(destSize int) error {
	if len(r.Images) != r.Source.Size() {
		return fmt.Errorf("transform: refinement has %d images for a %d-world source: %w", len(r.Images), r.Source.Size(), ErrInvalidBeliefModel)
	}
	for k, img := range r.Images {
		if img == nil {
			return fmt.Errorf("transform: refinement world %d has no image: %w", k, ErrInvalidBeliefModel)
		}
		if img.N() != destSize {
			return fmt.Errorf("transform: refinement world %d: image frame size %d != destination %d: %w", k, img.N(), destSize, ErrInvalidBeliefModel)
		}
		if img.Cardinality() == 0 {
			return fmt.Errorf("transform: refinement world %d has an empty image: %w", k, ErrInvalidBeliefModel)
		}
	}
	return nil
}

// validate checks that r covers the destination frame, and that its
// images are pairwise disjoint when Strict.
func (r Refinement) validate(destSize int) error {
	if err := r.shape(destSize); err != nil {
		return err
	}
	union := element.Empty(destSize)
	for _, img := range r.Images {
		var err error
		union, err = element.Union(union, img)
		if err != nil {
			return fmt.Errorf("transform: %w", err)
		}
	}
	if union.Cardinality() != destSize {
		return fmt.Errorf("transform: refinement does not cover the destination frame: %w", ErrInvalidBeliefModel)
	}
	if r.Strict {
		for i := range r.Images {
			for j := i + 1; j < len(r.Images); j++ {
				inter, err := element.Intersection(r.Images[i], r.Images[j])
				if err != nil {
					return fmt.Errorf("transform: %w", err)
				}
				if inter.Cardinality() != 0 {
					return fmt.Errorf("transform: refinement worlds %d and %d overlap: %w", i, j, ErrInvalidBeliefModel)
				}
			}
		}
	}
	return nil
}
