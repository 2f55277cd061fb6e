package main

import (
	"fmt"
	"github.com/google/go-cmp/cmp"
	"io"
	"testing"
)

var cmpLines = cmp.AllowUnexported(programLine{})

//
// A fresh store holds nothing: walks and lookups against it come back
// empty, the first insert takes, and a cleared store behaves like a
// fresh one
//

func TestStoreStartsEmpty(t *testing.T) {

	in := newInterp(io.Discard)

	if got := in.lineCount(); got != 0 {
		t.Fatalf("lineCount() = %d on a fresh interpreter, want 0", got)
	}
	if got := len(in.snapshot()); got != 0 {
		t.Fatalf("snapshot has %d lines on a fresh interpreter", got)
	}

	in.deleteLine(10)

	if got := in.lineCount(); got != 0 {
		t.Errorf("lineCount() = %d after deleting from an empty store", got)
	}

	in.editLine(10, "PRINT 1")

	if got := in.lineCount(); got != 1 {
		t.Errorf("lineCount() = %d after the first insert, want 1", got)
	}

	in.clearProgram()
	in.editLine(20, "END")

	want := []programLine{
		{number: 20, text: "END"},
	}

	if diff := cmp.Diff(want, in.snapshot(), cmpLines); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestEditLineOrdering(t *testing.T) {

	in := newInterp(io.Discard)

	in.editLine(30, "PRINT 3")
	in.editLine(10, "PRINT 1")
	in.editLine(20, "PRINT 2")

	want := []programLine{
		{number: 10, text: "PRINT 1"},
		{number: 20, text: "PRINT 2"},
		{number: 30, text: "PRINT 3"},
	}

	if diff := cmp.Diff(want, in.snapshot(), cmpLines); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if got := in.lineCount(); got != 3 {
		t.Errorf("lineCount() = %d, want 3", got)
	}
}

func TestEditLineReplace(t *testing.T) {

	in := newInterp(io.Discard)

	in.editLine(20, "PRINT 2")
	in.editLine(20, "PRINT 99")

	want := []programLine{
		{number: 20, text: "PRINT 99"},
	}

	if diff := cmp.Diff(want, in.snapshot(), cmpLines); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestEditLineDelete(t *testing.T) {

	in := newInterp(io.Discard)

	in.editLine(10, "PRINT 1")
	in.editLine(20, "PRINT 2")
	in.editLine(30, "PRINT 3")

	in.editLine(20, "")

	want := []programLine{
		{number: 10, text: "PRINT 1"},
		{number: 30, text: "PRINT 3"},
	}

	if diff := cmp.Diff(want, in.snapshot(), cmpLines); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	// Deleting an absent line is a quiet no-op
	in.editLine(99, "")

	if got := in.lineCount(); got != 2 {
		t.Errorf("lineCount() = %d after deleting absent line, want 2", got)
	}
}

func TestClearProgram(t *testing.T) {

	in := newInterp(io.Discard)

	in.editLine(10, "PRINT 1")
	in.storeVar(0, 5)
	in.dimArray(1, 3)
	in.storeArrayElem(1, 0, 9)

	in.clearProgram()

	if got := in.lineCount(); got != 0 {
		t.Errorf("lineCount() = %d after clearProgram, want 0", got)
	}
	if got := len(in.snapshot()); got != 0 {
		t.Errorf("snapshot has %d lines after clearProgram", got)
	}
	if got := in.fetchVar(0); got != 0 {
		t.Errorf("scalar survived clearProgram: %d", got)
	}
	if got := in.fetchArrayElem(1, 0); got != 0 {
		t.Errorf("array element survived clearProgram: %d", got)
	}
}

func TestStoreCapacity(t *testing.T) {

	in := newInterp(io.Discard)

	for number := 1; number <= maxProgramLines; number++ {
		in.editLine(number, "END")
	}

	if got := in.lineCount(); got != maxProgramLines {
		t.Fatalf("lineCount() = %d, want %d", got, maxProgramLines)
	}

	// A brand new number is dropped once the store is full
	in.editLine(maxProgramLines+1, "PRINT 1")

	if got := in.lineCount(); got != maxProgramLines {
		t.Errorf("lineCount() = %d after overflow insert, want %d", got, maxProgramLines)
	}
	if idx := findLineIndex(in.snapshot(), maxProgramLines+1); idx != -1 {
		t.Errorf("overflow line landed at index %d", idx)
	}

	// Replacing an existing number still works at capacity
	in.editLine(500, "PRINT 99")

	lines := in.snapshot()
	if got := len(lines); got != maxProgramLines {
		t.Fatalf("snapshot has %d lines after replace, want %d", got, maxProgramLines)
	}
	if got := lines[499].text; got != "PRINT 99" {
		t.Errorf("line 500 text = %q after replace at capacity, want %q", got, "PRINT 99")
	}
}

func TestFindLineIndex(t *testing.T) {

	lines := []programLine{
		{number: 10, text: "A"},
		{number: 20, text: "B"},
		{number: 30, text: "C"},
	}

	tests := []struct {
		number int
		want   int
	}{
		{10, 0},
		{20, 1},
		{30, 2},
		{15, -1},
		{0, -1},
	}

	for _, tc := range tests {
		if got := findLineIndex(lines, tc.number); got != tc.want {
			t.Errorf("findLineIndex(%d) = %d, want %d", tc.number, got, tc.want)
		}
	}

	if got := findLineIndex(nil, 10); got != -1 {
		t.Errorf("findLineIndex on empty program = %d, want -1", got)
	}
}

func TestLoadProgram(t *testing.T) {

	in := newInterp(io.Discard)

	in.editLine(5, "PRINT 0")

	in.loadProgram([]programLine{
		{number: 30, text: "PRINT 3"},
		{number: 10, text: "PRINT 1"},
		{number: 10, text: "PRINT 9"},
		{number: 20, text: "PRINT 2"},
	})

	want := []programLine{
		{number: 10, text: "PRINT 9"},
		{number: 20, text: "PRINT 2"},
		{number: 30, text: "PRINT 3"},
	}

	if diff := cmp.Diff(want, in.snapshot(), cmpLines); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotIsolation(t *testing.T) {

	in := newInterp(io.Discard)

	for number := 10; number <= 30; number += 10 {
		in.editLine(number, fmt.Sprintf("PRINT %d", number))
	}

	lines := in.snapshot()

	in.editLine(20, "")
	in.editLine(40, "END")

	if got := len(lines); got != 3 {
		t.Errorf("snapshot length changed under edits: %d", got)
	}
	if got := lines[1].text; got != "PRINT 20" {
		t.Errorf("snapshot contents changed under edits: %q", got)
	}
}
