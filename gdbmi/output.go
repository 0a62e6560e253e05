package gdbmi

// StreamRecord is out-of-band textual output from the console, the
// target program, or GDB's own log ("~", "@", "&").
type StreamRecord struct {
	Kind    StreamKind
	Payload string // escape-decoded cstring contents
}

// AsyncRecord is an out-of-band asynchronous state-change notification
// ("+", "*", "="). Token is normally zero: GDB reserves the right to
// set it but rarely does (spec.md §3, §4.C edge cases).
type AsyncRecord struct {
	Token   Token
	Kind    AsyncKind
	Class   AsyncClass
	Results ResultList
}

// OOBRecordKind tags which variant an OOBRecord holds.
type OOBRecordKind int

const (
	OOBStream OOBRecordKind = iota
	OOBAsync
)

// OOBRecord is a stream or async record delivered outside the
// synchronous result flow, in the order GDB emitted it.
type OOBRecord struct {
	Kind   OOBRecordKind
	Stream *StreamRecord // set when Kind == OOBStream
	Async  *AsyncRecord  // set when Kind == OOBAsync
}

// ResultRecord is the "^"-prefixed reply to a front-end command.
type ResultRecord struct {
	Token   Token
	Class   ResultClass
	Results ResultList
}

// Succeeded reports whether the result class indicates the
// synchronous half of the command completed without error. RUNNING and
// CONNECTED are treated as success without being conflated with DONE
// in Class itself — see spec.md §9's open question and DESIGN.md.
func (r *ResultRecord) Succeeded() bool {
	if r == nil {
		return false
	}
	switch r.Class {
	case ResultDone, ResultRunning, ResultConnected:
		return true
	default:
		return false
	}
}

// Output is one complete GDB/MI output command: an ordered sequence of
// out-of-band records followed by an optional result record, as
// delivered at a "(gdb) \n" prompt. A completed Output is emitted
// exactly once (spec.md §3 invariants).
type Output struct {
	OOBRecords []*OOBRecord
	Result     *ResultRecord // nil if this output carried no result record
}
