package main

import (
	"io"
	"os"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/gdbmi/gdbmi"
	"github.com/dhamidi/gdbmi/gdbmi/dispatch"
)

const lsName = "gdbmiwatch"

// Watcher is an LSP-shaped front end for a GDB/MI transcript, modeled
// on the teacher's LSPServer: a protocol.Handler struct literal wired
// to a server.Server, except the events it turns into notifications
// come from a parsed MI stream rather than editor requests.
type Watcher struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu  sync.Mutex
	ctx *glsp.Context
}

func NewWatcher(version string) *Watcher {
	w := &Watcher{version: version}

	w.handler = protocol.Handler{
		Initialize:  w.initialize,
		Initialized: w.initialized,
		Shutdown:    w.shutdown,
	}

	w.server = server.NewServer(&w.handler, lsName, false)

	return w
}

// RunStdio serves the LSP protocol over stdio. Stdin is the JSON-RPC
// channel itself, so no MI text is read from it; the transcript comes
// from the file named by the GDBMI_WATCH_FILE environment variable,
// tailed once the client sends initialized. Use RunFile for a
// self-contained CLI run.
func (w *Watcher) RunStdio() error {
	return w.server.RunStdio()
}

// RunFile feeds path through the parser directly, without a live LSP
// client attached, printing what would have been sent as
// window/logMessage notifications to stdout. Useful for smoke-testing
// a transcript without an editor in the loop.
func (w *Watcher) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	d := w.newDispatcher(nil)

	buf := make([]byte, 4096)
	for {
		n, rerr := f.Read(buf)
		if n > 0 {
			if perr := d.PushData(buf[:n]); perr != nil {
				return perr
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}
	return nil
}

func (w *Watcher) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	w.mu.Lock()
	w.ctx = ctx
	w.mu.Unlock()

	capabilities := w.handler.CreateServerCapabilities()

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &w.version,
		},
	}, nil
}

func (w *Watcher) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if path := os.Getenv("GDBMI_WATCH_FILE"); path != "" {
		go func() {
			d := w.newDispatcher(ctx)
			f, err := os.Open(path)
			if err != nil {
				return
			}
			defer f.Close()
			buf := make([]byte, 4096)
			for {
				n, rerr := f.Read(buf)
				if n > 0 {
					d.PushData(buf[:n])
				}
				if rerr != nil {
					return
				}
			}
		}()
	}
	return nil
}

func (w *Watcher) shutdown(ctx *glsp.Context) error {
	return nil
}

// newDispatcher builds a dispatch.Dispatcher that turns stream records
// and parse errors into window/logMessage notifications over ctx. When
// ctx is nil (RunFile's standalone mode), notifications are written to
// stdout as plain lines instead.
func (w *Watcher) newDispatcher(ctx *glsp.Context) *dispatch.Dispatcher {
	notify := func(messageType protocol.MessageType, message string) {
		if ctx != nil {
			ctx.Notify(protocol.ServerWindowLogMessage, protocol.LogMessageParams{
				Type:    messageType,
				Message: message,
			})
			return
		}
		os.Stdout.WriteString(message + "\n")
	}

	return dispatch.New(dispatch.Handler{
		OnStream: func(rec *gdbmi.StreamRecord) {
			notify(protocol.MessageTypeLog, rec.Kind.String()+": "+rec.Payload)
		},
		OnAsync: func(rec *gdbmi.AsyncRecord) {
			notify(protocol.MessageTypeInfo, rec.Kind.String()+" "+rec.Class.String())
		},
		OnParseError: func(perr *gdbmi.ParseError) {
			notify(protocol.MessageTypeError, perr.Error())
		},
	})
}
