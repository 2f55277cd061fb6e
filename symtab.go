package main

import (
	"fmt"
)

//
// The variable and array stores.  Each letter A-Z names one integer
// scalar slot and, independently, one integer array slot, so A and
// A(0) never collide.  Stores are silent about anything invalid: an
// out of range or undimensioned subscript reads as zero and writes
// nowhere
//

//
// Initialize the symbol table to pristine state.  Scalars go back to
// zero and array storage is released
//

func (in *interp) initSymbolTable() {

	in.vars = [numVars]int{}
	in.arrays = [numVars][]int{}
}

//
// This function takes a variable slot index and returns its
// current value
//

func (in *interp) fetchVar(vi int) int {

	return in.vars[vi]
}

func (in *interp) storeVar(vi, val int) {

	in.traceVar(varName(vi), in.vars[vi], val)

	in.vars[vi] = val
}

//
// Array element accessors.  The subscript is validated here, not by
// the callers
//

func (in *interp) fetchArrayElem(vi, idx int) int {

	arr := in.arrays[vi]
	if idx < 0 || idx >= len(arr) {
		return 0
	}

	return arr[idx]
}

func (in *interp) storeArrayElem(vi, idx, val int) {

	arr := in.arrays[vi]
	if idx < 0 || idx >= len(arr) {
		return
	}

	in.traceVar(fmt.Sprintf("%s(%d)", varName(vi), idx), arr[idx], val)

	arr[idx] = val
}

//
// Dimension an array.  The old storage (if any) is released and the
// new elements start at zero.  A size outside [1, maxArraySize]
// leaves the existing array alone
//

func (in *interp) dimArray(vi, size int) {

	if size < 1 || size > maxArraySize {
		return
	}

	in.arrays[vi] = make([]int, size)
}

func varName(vi int) string {

	return string(rune('A' + vi))
}

//
// Report variable changes when tracing is enabled.  Only stores that
// actually land are reported
//

func (in *interp) traceVar(name string, oval, nval int) {

	if in.traceVars {
		fmt.Fprintf(in.out, "Variable %s changed from %d to %d\n", name, oval, nval)
	}
}
