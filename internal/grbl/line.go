// internal/grbl/line.go
package grbl

// DefaultLineCapacity matches the receive buffer of the reference firmware.
const DefaultLineCapacity = 40

// ByteSource is the non-blocking read side of the controller link.
// NextByte is only called after Available returned true.
type ByteSource interface {
	Available() bool
	NextByte() byte
}

// LineAssembler accumulates bytes into lines of bounded length.
//
// One slot of capacity is reserved for a terminator, so at most
// capacity-1 bytes of a line are kept. Bytes past that are dropped
// until the next line feed, which always resets the buffer.
type LineAssembler struct {
	buf        []byte
	idx        int
	overflowed bool
	classifier *Classifier
}

// NewLineAssembler creates an assembler. capacity < 2 selects DefaultLineCapacity.
// A nil classifier selects the default prefix table.
func NewLineAssembler(capacity int, classifier *Classifier) *LineAssembler {
	if capacity < 2 {
		capacity = DefaultLineCapacity
	}
	if classifier == nil {
		classifier = defaultClassifier
	}
	return &LineAssembler{
		buf:        make([]byte, capacity),
		classifier: classifier,
	}
}

// Line is one completed line and its classification.
type Line struct {
	Text      string
	Status    Status
	Truncated bool
}

// Drain consumes every byte currently available from src.
// handle (optional) sees each completed line in arrival order.
// The return value is the status of the last completed line, or Unknown
// if no line completed during this call.
func (a *LineAssembler) Drain(src ByteSource, handle func(Line)) Status {
	last := Unknown

	for src.Available() {
		c := src.NextByte()

		switch {
		case c == '\r':
			continue

		case c == '\n':
			ln := Line{
				Text:      string(a.buf[:a.idx]),
				Truncated: a.overflowed,
			}
			a.idx = 0
			a.overflowed = false

			ln.Status = a.classifier.Classify(ln.Text)
			last = ln.Status
			if handle != nil {
				handle(ln)
			}

		case a.idx < len(a.buf)-1:
			a.buf[a.idx] = c
			a.idx++

		default:
			a.overflowed = true
		}
	}

	return last
}

// Pending returns the number of bytes held for the unfinished line.
func (a *LineAssembler) Pending() int {
	return a.idx
}
