package eval

import (
	"fmt"
	"io"
)

// Sink receives the evaluator's output stream. Run serializes all calls, so
// implementations need no locking of their own. Header is called exactly
// once before any Point; each Point call carries one in-set coordinate pair.
type Sink interface {
	Header() error
	Point(x, y float64) error
}

// CSVSink writes the stream in the wire format consumed by the plotting and
// benchmarking tooling: a literal "x,y" header line followed by one
// "%.10f,%.10f" record per point.
type CSVSink struct {
	w io.Writer
}

func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: w}
}

func (s *CSVSink) Header() error {
	_, err := fmt.Fprintln(s.w, "x,y")
	return err
}

func (s *CSVSink) Point(x, y float64) error {
	_, err := fmt.Fprintf(s.w, "%.10f,%.10f\n", x, y)
	return err
}
