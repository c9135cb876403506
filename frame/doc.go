// Package frame provides ReferenceList, the ordered, duplicate-free naming
// of the worlds of a frame of discernment.
//
// A ReferenceList decorates output (element.DiscreteElement.String) and
// asserts compatibility of frames named at component boundaries; it is
// never consulted by arithmetic (element, mass) operators, which work
// purely on frame size.
package frame
