// Package format renders parsed gdbmi.Output values for human or
// machine consumption, grounded on the teacher's format package:
// JSONEncoder mirrors format/ast_json.go's mirror-struct-plus-
// json.MarshalIndent approach, and TextEncoder mirrors format/line.go's
// tab-separated one-line-per-record approach.
package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/gdbmi/gdbmi"
)

// JSONEncoder writes a gdbmi.Output as indented JSON.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(out *gdbmi.Output) error {
	text, err := e.MarshalText(out)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText(out *gdbmi.Output) ([]byte, error) {
	return json.MarshalIndent(outputToJSON(out), "", "  ")
}

type jsonOutput struct {
	OOBRecords []*jsonOOBRecord  `json:"oob_records,omitempty"`
	Result     *jsonResultRecord `json:"result,omitempty"`
}

type jsonOOBRecord struct {
	Kind   string           `json:"kind"`
	Stream *jsonStreamRec   `json:"stream,omitempty"`
	Async  *jsonAsyncRecord `json:"async,omitempty"`
}

type jsonStreamRec struct {
	Kind    string `json:"stream_kind"`
	Payload string `json:"payload"`
}

type jsonAsyncRecord struct {
	Token   int64        `json:"token,omitempty"`
	Kind    string       `json:"async_kind"`
	Class   string       `json:"class"`
	Results []*jsonValue `json:"results,omitempty"`
}

type jsonResultRecord struct {
	Token   int64        `json:"token,omitempty"`
	Class   string       `json:"class"`
	Results []*jsonValue `json:"results,omitempty"`
}

type jsonValue struct {
	Variable string       `json:"variable,omitempty"`
	Kind     string       `json:"kind"`
	Value    string       `json:"value,omitempty"`
	Children []*jsonValue `json:"children,omitempty"`
}

func outputToJSON(out *gdbmi.Output) *jsonOutput {
	if out == nil {
		return &jsonOutput{}
	}

	jo := &jsonOutput{}
	for _, rec := range out.OOBRecords {
		jo.OOBRecords = append(jo.OOBRecords, oobToJSON(rec))
	}
	if out.Result != nil {
		jo.Result = &jsonResultRecord{
			Token:   int64(out.Result.Token),
			Class:   out.Result.Class.String(),
			Results: resultsToJSON(out.Result.Results),
		}
	}
	return jo
}

func oobToJSON(rec *gdbmi.OOBRecord) *jsonOOBRecord {
	jr := &jsonOOBRecord{}
	switch rec.Kind {
	case gdbmi.OOBStream:
		jr.Kind = "stream"
		jr.Stream = &jsonStreamRec{Kind: rec.Stream.Kind.String(), Payload: rec.Stream.Payload}
	case gdbmi.OOBAsync:
		jr.Kind = "async"
		jr.Async = &jsonAsyncRecord{
			Token:   int64(rec.Async.Token),
			Kind:    rec.Async.Kind.String(),
			Class:   rec.Async.Class.String(),
			Results: resultsToJSON(rec.Async.Results),
		}
	}
	return jr
}

func resultsToJSON(results gdbmi.ResultList) []*jsonValue {
	if len(results) == 0 {
		return nil
	}
	out := make([]*jsonValue, len(results))
	for i, r := range results {
		out[i] = valueToJSON(r)
	}
	return out
}

func valueToJSON(r *gdbmi.Result) *jsonValue {
	jv := &jsonValue{Variable: r.Variable, Kind: r.Kind.String()}
	switch r.Kind {
	case gdbmi.KindCString:
		jv.Value = r.Value
	case gdbmi.KindTuple, gdbmi.KindList:
		jv.Children = resultsToJSON(r.Children)
	}
	return jv
}
