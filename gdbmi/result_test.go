package gdbmi

import "testing"

func TestResultCStringAccessor(t *testing.T) {
	r := NewCString("msg", "hello")
	s, ok := r.CString()
	if !ok || s != "hello" {
		t.Errorf("CString() = %q, %v, want %q, true", s, ok, "hello")
	}
	if _, ok := r.Tuple(); ok {
		t.Error("Tuple() ok = true on a CSTRING")
	}
	if _, ok := r.List(); ok {
		t.Error("List() ok = true on a CSTRING")
	}
}

func TestResultNilReceiverIsSafe(t *testing.T) {
	var r *Result
	if _, ok := r.CString(); ok {
		t.Error("nil.CString() ok = true")
	}
	if _, ok := r.Tuple(); ok {
		t.Error("nil.Tuple() ok = true")
	}
	if _, ok := r.List(); ok {
		t.Error("nil.List() ok = true")
	}
}

func TestResultListMapAndByVariable(t *testing.T) {
	list := ResultList{
		NewCString("number", "2"),
		NewCString("type", "breakpoint"),
	}
	m := list.Map()
	if len(m) != 2 || m["number"].Value != "2" {
		t.Errorf("Map() = %+v", m)
	}
	r, ok := list.ByVariable("type")
	if !ok || r.Value != "breakpoint" {
		t.Errorf("ByVariable(type) = %+v, %v", r, ok)
	}
	if _, ok := list.ByVariable("missing"); ok {
		t.Error("ByVariable(missing) ok = true")
	}
}

func TestResultListAppendNilTolerant(t *testing.T) {
	var list ResultList
	list = list.Append(NewCString("a", "1"))
	list = list.Append(nil)
	if len(list) != 1 {
		t.Errorf("got %d entries, want 1 (nil append should be a no-op)", len(list))
	}
}

func TestResultTupleAndListAccessors(t *testing.T) {
	children := ResultList{NewCString("number", "2")}
	tuple := NewTuple("bkpt", children)
	got, ok := tuple.Tuple()
	if !ok || len(got) != 1 {
		t.Errorf("Tuple() = %+v, %v", got, ok)
	}

	list := NewList("", children)
	got, ok = list.List()
	if !ok || len(got) != 1 {
		t.Errorf("List() = %+v, %v", got, ok)
	}
}

func TestResultRecordSucceeded(t *testing.T) {
	tests := []struct {
		class ResultClass
		want  bool
	}{
		{ResultDone, true},
		{ResultRunning, true},
		{ResultConnected, true},
		{ResultError, false},
		{ResultExit, false},
	}
	for _, tt := range tests {
		r := &ResultRecord{Class: tt.class}
		if got := r.Succeeded(); got != tt.want {
			t.Errorf("Class=%v Succeeded() = %v, want %v", tt.class, got, tt.want)
		}
	}
}

func TestResultRecordSucceededNilSafe(t *testing.T) {
	var r *ResultRecord
	if r.Succeeded() {
		t.Error("nil.Succeeded() = true")
	}
}
