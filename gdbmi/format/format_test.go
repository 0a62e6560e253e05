package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/gdbmi/gdbmi"
)

func sampleOutput() *gdbmi.Output {
	return &gdbmi.Output{
		OOBRecords: []*gdbmi.OOBRecord{
			{
				Kind:   gdbmi.OOBStream,
				Stream: &gdbmi.StreamRecord{Kind: gdbmi.StreamConsole, Payload: "hello"},
			},
			{
				Kind: gdbmi.OOBAsync,
				Async: &gdbmi.AsyncRecord{
					Kind:  gdbmi.AsyncExec,
					Class: gdbmi.AsyncRunning,
					Results: gdbmi.ResultList{
						gdbmi.NewCString("thread-id", "all"),
					},
				},
			},
		},
		Result: &gdbmi.ResultRecord{
			Class: gdbmi.ResultDone,
			Results: gdbmi.ResultList{
				gdbmi.NewTuple("bkpt", gdbmi.ResultList{
					gdbmi.NewCString("number", "2"),
				}),
			},
		},
	}
}

func TestJSONEncoderRoundTripsShape(t *testing.T) {
	var buf bytes.Buffer
	enc := NewJSONEncoder(&buf)
	if err := enc.Encode(sampleOutput()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v (output: %s)", err, buf.String())
	}

	oob, ok := decoded["oob_records"].([]any)
	if !ok || len(oob) != 2 {
		t.Fatalf("oob_records = %v", decoded["oob_records"])
	}
	result, ok := decoded["result"].(map[string]any)
	if !ok || result["class"] != "done" {
		t.Fatalf("result = %v", decoded["result"])
	}
}

func TestTextEncoderProducesOneLinePerRecord(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf)
	if err := enc.Encode(sampleOutput()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "stream\t") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "async\t") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "result\t") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestTextEncoderEmptyOutput(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf)
	if err := enc.Encode(&gdbmi.Output{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("got %q, want empty output", buf.String())
	}
}
