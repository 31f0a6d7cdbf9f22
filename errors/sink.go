package errors

import "sync"

// Sink receives diagnostics. Implementations must be safe for the caller's
// concurrency; the inference engine reports from one goroutine per sink.
type Sink interface {
	Report(Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Discard is a Sink that drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Collector is a Sink that records diagnostics in report order.
// The zero value is ready to use and safe for concurrent use.
type Collector struct {
	items []Diagnostic
	mu    sync.Mutex
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

// Diagnostics returns a copy of the recorded diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of recorded diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Err returns the recorded diagnostics as a DiagnosticList, or nil when empty.
func (c *Collector) Err() error {
	items := c.Diagnostics()
	if len(items) == 0 {
		return nil
	}
	return DiagnosticList(items)
}

// WithDocument returns a Sink that stamps name on every diagnostic lacking a
// document before forwarding it to next.
func WithDocument(next Sink, name string) Sink {
	return SinkFunc(func(d Diagnostic) {
		if d.Document == "" {
			d.Document = name
		}
		next.Report(d)
	})
}

// Tee returns a Sink that forwards every diagnostic to each of sinks in order.
// Nil sinks are skipped.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(d Diagnostic) {
		for _, s := range sinks {
			if s != nil {
				s.Report(d)
			}
		}
	})
}
