package gdbmi

// ResultKind tags the variant held by a Result.
type ResultKind int

const (
	// KindCString marks a leaf string value.
	KindCString ResultKind = iota
	// KindTuple marks a `{...}` value whose children must all carry
	// a non-empty Variable.
	KindTuple
	// KindList marks a `[...]` value whose children may or may not
	// carry a Variable.
	KindList
)

func (k ResultKind) String() string {
	switch k {
	case KindCString:
		return "cstring"
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Result is the recursive value type carried by async and result
// records. A Result is immutable once built: a parent owns its
// Children exclusively, in the order they were parsed.
//
// Variable is optional even at the top level of a result sequence:
// lists permit nameless elements (spec.md §3).
type Result struct {
	Kind     ResultKind
	Variable string // empty when absent
	Value    string // valid when Kind == KindCString
	Children ResultList
}

// ResultList is an ordered, append-only sequence of results. It
// replaces the source's singly-linked gdbmi_result list with a slice,
// per spec.md §9's design notes, while keeping O(1) amortized
// back-append so input order is always preserved.
type ResultList []*Result

// Append adds item to the end of the list and returns the (possibly
// newly allocated) head, mirroring the total append_gdbmi_result
// contract from the original C API: appending to a nil list is valid
// and produces a single-element list.
func (l ResultList) Append(item *Result) ResultList {
	if item == nil {
		return l
	}
	return append(l, item)
}

// Map collapses the list into a variable-name index for children that
// carry one. Later entries win on duplicate names, matching the order
// results appear on the wire. Supplemented convenience not present in
// the original linked-list API (SPEC_FULL.md §12.1): hosts almost
// always want dictionary-style access to a tuple's fields.
func (l ResultList) Map() map[string]*Result {
	m := make(map[string]*Result, len(l))
	for _, r := range l {
		if r.Variable != "" {
			m[r.Variable] = r
		}
	}
	return m
}

// ByVariable returns the first child named name, if any.
func (l ResultList) ByVariable(name string) (*Result, bool) {
	for _, r := range l {
		if r.Variable == name {
			return r, true
		}
	}
	return nil, false
}

// CString returns the leaf string value and true if r is a CSTRING.
func (r *Result) CString() (string, bool) {
	if r == nil || r.Kind != KindCString {
		return "", false
	}
	return r.Value, true
}

// Tuple returns r's children and true if r is a TUPLE.
func (r *Result) Tuple() (ResultList, bool) {
	if r == nil || r.Kind != KindTuple {
		return nil, false
	}
	return r.Children, true
}

// List returns r's children and true if r is a LIST.
func (r *Result) List() (ResultList, bool) {
	if r == nil || r.Kind != KindList {
		return nil, false
	}
	return r.Children, true
}

// NewCString builds a CSTRING result. variable may be empty.
func NewCString(variable, value string) *Result {
	return &Result{Kind: KindCString, Variable: variable, Value: value}
}

// NewTuple builds a TUPLE result from already-parsed children. Every
// child must carry a non-empty Variable; the grammar engine enforces
// this at parse time (spec.md §3 invariant).
func NewTuple(variable string, children ResultList) *Result {
	return &Result{Kind: KindTuple, Variable: variable, Children: children}
}

// NewList builds a LIST result from already-parsed children, which
// may or may not carry a Variable.
func NewList(variable string, children ResultList) *Result {
	return &Result{Kind: KindList, Variable: variable, Children: children}
}

// Free is a total no-op retained for API parity with the original
// gdbmi_output_free contract (spec.md §4.A: "tolerates an empty/missing
// root"). Go's garbage collector reclaims the tree once it is
// unreferenced; this exists so ported call sites read the same way.
func Free(*Output) {}
