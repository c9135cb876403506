package element_test

import (
	"fmt"

	"github.com/bpietropaoli/thegame/element"
)

// ExampleDiscreteElement_bitmapAndComplement walks a 5-world frame: the
// bitmap 0b01011 has cardinality 3, its complement has cardinality 2,
// their union is the complete element, and their intersection is empty.
func ExampleDiscreteElement_bitmapAndComplement() {
	e, err := element.FromBits(5, 0b01011)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	comp := element.Complement(e)
	union, _ := element.Union(e, comp)
	inter, _ := element.Intersection(e, comp)

	fmt.Println(e.Cardinality())
	fmt.Println(comp.Cardinality())
	fmt.Println(union.Equal(element.Complete(5)))
	fmt.Println(inter.Equal(element.Empty(5)))
	// Output:
	// 3
	// 2
	// true
	// true
}
