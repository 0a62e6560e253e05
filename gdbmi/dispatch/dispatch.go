// Package dispatch is the convenience layer built atop gdbmi/parser
// (spec.md §4.E): it walks each completed output command and fans its
// records out to a fixed set of host callbacks, converting the internal
// parse tree into borrowed views that are only valid for the duration
// of the callback.
package dispatch

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/gdbmi/gdbmi"
	"github.com/dhamidi/gdbmi/gdbmi/parser"
)

// Handler is the set of callbacks a host installs to receive events.
// Every field is optional; a nil field is silently skipped (spec.md
// §6). This mirrors the field-of-callbacks shape of the teacher's
// protocol.Handler in java/codebase/lsp.go, generalized from LSP
// request handlers to MI record kinds.
type Handler struct {
	// OnStream is called once per stream record, in the order it
	// appeared in the output command.
	OnStream func(*gdbmi.StreamRecord)
	// OnAsync is called once per async record, in the order it
	// appeared in the output command.
	OnAsync func(*gdbmi.AsyncRecord)
	// OnResult is called at most once per output command, if a result
	// record was present.
	OnResult func(*gdbmi.ResultRecord)
	// OnPrompt is called exactly once per completed output command,
	// after any OnStream/OnAsync/OnResult calls for it.
	OnPrompt func()
	// OnParseError is called instead of the above for a line that
	// failed to parse; no output is delivered for that line.
	OnParseError func(*gdbmi.ParseError)
}

// Dispatcher wraps a *parser.Parser and fans out completed output
// commands to a Handler. It is the type a host application actually
// drives (spec.md §4.E's "create"/"push_data"/"destroy" operations).
type Dispatcher struct {
	handler Handler
	logger  commonlog.Logger
	inner   *parser.Parser
}

// Option configures a Dispatcher at construction time.
type Option func(*Dispatcher)

// WithLogger injects a logger for parse/recovery diagnostics. Per
// spec.md §9's design note, the logger is always instance-scoped, never
// a package-level global. Defaults to commonlog.MOCK_LOGGER.
func WithLogger(logger commonlog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Dispatcher that delivers events to handler.
func New(handler Handler, opts ...Option) *Dispatcher {
	d := &Dispatcher{handler: handler, logger: commonlog.MOCK_LOGGER}
	for _, opt := range opts {
		opt(d)
	}
	d.inner = parser.New(d.deliver, d.deliverError)
	return d
}

// PushData feeds bytes into the underlying parser, synchronously
// delivering every output command the new bytes complete (spec.md
// §5: "A call to push returns only after ... all relevant callbacks
// have returned").
func (d *Dispatcher) PushData(data []byte) error {
	if d == nil {
		return gdbmi.ErrLogic
	}
	_, err := d.inner.Push(data)
	return err
}

// Close releases the dispatcher's parser state. Tolerates a nil
// receiver.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.inner.Close()
}

func (d *Dispatcher) deliver(out *gdbmi.Output) {
	d.logger.Debugf("dispatching output with %d oob record(s), result=%v", len(out.OOBRecords), out.Result != nil)

	for _, rec := range out.OOBRecords {
		switch rec.Kind {
		case gdbmi.OOBStream:
			if d.handler.OnStream != nil {
				d.handler.OnStream(rec.Stream)
			}
		case gdbmi.OOBAsync:
			if d.handler.OnAsync != nil {
				d.handler.OnAsync(rec.Async)
			}
		}
	}

	if out.Result != nil && d.handler.OnResult != nil {
		d.handler.OnResult(out.Result)
	}

	if d.handler.OnPrompt != nil {
		d.handler.OnPrompt()
	}

	gdbmi.Free(out)
}

func (d *Dispatcher) deliverError(err *gdbmi.ParseError) {
	d.logger.Warningf("gdbmi parse error at %d:%d: %s", err.Position.Line, err.Position.Column, err.Kind)
	if d.handler.OnParseError != nil {
		d.handler.OnParseError(err)
	}
}
