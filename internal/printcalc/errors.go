package printcalc

import "fmt"

// Validation failures carry enough detail for a user-facing message.
// None of them is ever coerced into a best-guess result: out-of-range
// pages are not clamped and a missing price is not defaulted.

type InvalidPageCountError struct {
	TotalPages int
}

func (e *InvalidPageCountError) Error() string {
	return fmt.Sprintf("document page count must be positive, got %d", e.TotalPages)
}

type MalformedTermError struct {
	Term string
}

func (e *MalformedTermError) Error() string {
	return fmt.Sprintf("page selection term %q is not a page number or a range", e.Term)
}

type InvertedRangeError struct {
	Start int
	End   int
}

func (e *InvertedRangeError) Error() string {
	return fmt.Sprintf("page range %d-%d starts after it ends", e.Start, e.End)
}

type OutOfBoundsError struct {
	Page       int
	TotalPages int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("page %d does not exist in this document (document has %d pages)", e.Page, e.TotalPages)
}

type EmptySelectionError struct{}

func (e *EmptySelectionError) Error() string {
	return "page selection resolves to no pages"
}

type CopiesOutOfRangeError struct {
	Copies int
	Max    int
}

func (e *CopiesOutOfRangeError) Error() string {
	return fmt.Sprintf("copies must be between 1 and %d, got %d", e.Max, e.Copies)
}

type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("print mode %q has no entry in the pricing table", e.Mode)
}

type UnsupportedOptionError struct {
	Option string
	Value  string
}

func (e *UnsupportedOptionError) Error() string {
	return fmt.Sprintf("unsupported %s %q", e.Option, e.Value)
}

// PricingUnavailableError signals that the pricing source could not be
// queried. Authoritative computations must fail with it instead of
// falling back to a stale or hard-coded price.
type PricingUnavailableError struct {
	Cause error
}

func (e *PricingUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pricing unavailable: %v", e.Cause)
	}
	return "pricing unavailable"
}

func (e *PricingUnavailableError) Unwrap() error { return e.Cause }
