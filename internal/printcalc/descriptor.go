package printcalc

// PaperSize is an output sheet format the shop can produce.
type PaperSize string

const (
	PaperA4     PaperSize = "a4"
	PaperA3     PaperSize = "a3"
	PaperLetter PaperSize = "letter"
)

// Orientation is the page orientation of the output.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Options are the user-chosen print options of a job.
type Options struct {
	Copies      int
	Mode        Mode
	PaperSize   PaperSize
	Orientation Orientation
	Duplex      bool
}

// Descriptor is the immutable bundle handed to the order pipeline:
// document identity, the raw expression plus its resolved selection, the
// chosen options and the cost computed from them. Once built it is never
// mutated; the server builds its own from the same raw inputs and its
// own authoritative page count.
type Descriptor struct {
	DocumentID string
	Expression string
	TotalPages int
	Selection  Selection
	Options    Options
	Estimate   Estimate
}

// BuildDescriptor validates options, resolves the expression against
// totalPages and prices the result using the given snapshot.
func BuildDescriptor(documentID, expression string, totalPages int, opts Options, snap Snapshot) (Descriptor, error) {
	if opts.PaperSize == "" {
		opts.PaperSize = PaperA4
	}
	if opts.Orientation == "" {
		opts.Orientation = OrientationPortrait
	}

	switch opts.PaperSize {
	case PaperA4, PaperA3, PaperLetter:
	default:
		return Descriptor{}, &UnsupportedOptionError{Option: "paper size", Value: string(opts.PaperSize)}
	}
	switch opts.Orientation {
	case OrientationPortrait, OrientationLandscape:
	default:
		return Descriptor{}, &UnsupportedOptionError{Option: "orientation", Value: string(opts.Orientation)}
	}

	sel, err := Resolve(expression, totalPages)
	if err != nil {
		return Descriptor{}, err
	}
	est, err := EstimateCost(sel.Count, opts.Copies, opts.Mode, snap)
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		DocumentID: documentID,
		Expression: expression,
		TotalPages: totalPages,
		Selection:  sel,
		Options:    opts,
		Estimate:   est,
	}, nil
}
