package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/gdbmi/gdbmi"
)

// TextEncoder writes a gdbmi.Output as one tab-separated line per
// record, in the style of the teacher's LineEncoder: a terse,
// greppable transcript rather than a tree.
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(out *gdbmi.Output) error {
	text, err := e.MarshalText(out)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText(out *gdbmi.Output) ([]byte, error) {
	var sb strings.Builder

	for _, rec := range out.OOBRecords {
		switch rec.Kind {
		case gdbmi.OOBStream:
			fmt.Fprintf(&sb, "stream\t%s\t%s\n", rec.Stream.Kind, rec.Stream.Payload)
		case gdbmi.OOBAsync:
			a := rec.Async
			fmt.Fprintf(&sb, "async\t%d\t%s\t%s\t%s\n", a.Token, a.Kind, a.Class, e.resultsStr(a.Results))
		}
	}

	if out.Result != nil {
		r := out.Result
		fmt.Fprintf(&sb, "result\t%d\t%s\t%s\n", r.Token, r.Class, e.resultsStr(r.Results))
	}

	return []byte(sb.String()), nil
}

func (e *TextEncoder) resultsStr(results gdbmi.ResultList) string {
	if len(results) == 0 {
		return "-"
	}
	var parts []string
	for _, r := range results {
		parts = append(parts, e.valueStr(r))
	}
	return strings.Join(parts, ",")
}

func (e *TextEncoder) valueStr(r *gdbmi.Result) string {
	var name string
	if r.Variable != "" {
		name = r.Variable + "="
	}

	switch r.Kind {
	case gdbmi.KindCString:
		return fmt.Sprintf("%s%q", name, r.Value)
	case gdbmi.KindTuple:
		return fmt.Sprintf("%s{%s}", name, e.resultsStr(r.Children))
	case gdbmi.KindList:
		return fmt.Sprintf("%s[%s]", name, e.resultsStr(r.Children))
	default:
		return name + "?"
	}
}
