package qfix

// Bound identifies which end of a shape's range a value fell outside.
type Bound int

const (
	// Above means the value exceeded the largest representable value.
	Above Bound = iota
	// Below means the value exceeded the smallest representable value.
	Below
)

func (b Bound) String() string {
	if b == Above {
		return "above"
	}
	return "below"
}

// OverflowEvent describes a value that did not fit the width it was
// truncated into.
type OverflowEvent struct {
	Bound Bound
	// Before and After are the canonical text forms of the value
	// immediately before and after truncation.
	Before, After string
}

// Overflow, when non-nil, is called whenever an operation truncates a
// value that does not fit its declared width. It is advisory only: the
// truncated result is returned either way, and nothing is reported when
// it is nil. This variable is not synchronized, so it should be set on
// program start, like a logging sink.
var Overflow func(OverflowEvent)

// reportOverflow checks whether a full-width word fits in the given
// widths and, if not, delivers an event to Overflow. Only called when
// Overflow is set, so the event strings never get built on the default
// path.
func reportOverflow(num int64, ibits, fbits int) {
	top := num >> (31 + ibits)
	if top == 0 || top == -1 {
		return
	}
	bound := Above
	if top < 0 {
		bound = Below
	}
	masked := num & maskFor(ibits, fbits)
	Overflow(OverflowEvent{
		Bound:  bound,
		Before: format(num, fbits),
		After:  format(signExtend(masked, ibits), fbits),
	})
}
