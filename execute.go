package main

import (
	"fmt"
	"io"
)

//
// Statement execution.  Every executor follows the same contract:
// malformed input is a silent no-op, never an error.  Executors that
// can transfer control take the current index plus the snapshot the
// run loop is iterating, and hand back the next index to execute
//

//
// Create an interpreter writing PRINT output and traces to the
// given sink
//

func newInterp(out io.Writer) *interp {

	in := &interp{out: out}

	in.initAvl()

	return in
}

//
// Classify one statement by its leading keyword.  The keyword is the
// maximal run of uppercase letters at the cursor and must be
// followed by a blank or the end of the text, so PRINT5 and PRINT(3)
// are not PRINT statements.  On a match the cursor is left just past
// the keyword
//

func classifyStmt(cs *cursor) int {

	cs.skipSpaces()

	start := cs.pos
	for ch := cs.peek(); ch >= 'A' && ch <= 'Z'; ch = cs.peek() {
		cs.advance()
	}

	kind, ok := stmtKeywordMap[cs.text[start:cs.pos]]
	if !ok {
		return stmtUnknown
	}

	if !cs.end() && cs.peek() != ' ' && cs.peek() != '\t' {
		return stmtUnknown
	}

	return kind
}

//
// Execute one statement and compute the index of the next one.
// Statements without control flow fall through to idx+1, END yields
// the halt sentinel, and anything unrecognized does nothing at all
// beyond advancing
//

func (in *interp) executeStmt(text string, idx int, lines []programLine) int {

	cs := &cursor{text: text}

	switch classifyStmt(cs) {
	default:
		// NOP

	case stmtPrint:
		in.executePrint(cs)

	case stmtLet:
		in.executeLet(cs)

	case stmtGoto:
		return in.executeGoto(cs, idx, lines)

	case stmtIf:
		return in.executeIf(cs, idx, lines)

	case stmtEnd:
		return haltIndex

	case stmtDim:
		in.executeDim(cs)
	}

	return idx + 1
}

//
// PRINT: items separated by commas, each comma printing a single
// blank.  An item is either a quoted string (the closing quote is
// optional at end of text) or an expression printed in decimal.  The
// newline is unconditional, so a bare PRINT emits an empty line
//

func (in *interp) executePrint(cs *cursor) {

	for {
		cs.skipSpaces()

		if cs.end() {
			break
		}

		if cs.peek() == '"' {
			cs.advance()
			start := cs.pos
			for !cs.end() && cs.peek() != '"' {
				cs.advance()
			}
			io.WriteString(in.out, cs.text[start:cs.pos])
			if !cs.end() {
				cs.advance()
			}
		} else {
			fmt.Fprintf(in.out, "%d", in.evaluateExpr(cs))
		}

		cs.skipSpaces()
		if cs.peek() != ',' {
			break
		}
		cs.advance()
		io.WriteString(in.out, " ")
	}

	io.WriteString(in.out, "\n")
}

//
// LET: scalar or array element assignment.  The '=' is consumed if
// present and the right hand side is evaluated like any expression,
// so even a mangled LET cannot fault.  Stores to invalid array
// elements are dropped by the store layer
//

func (in *interp) executeLet(cs *cursor) {

	vi, ok := cs.parseVar()
	if !ok {
		return
	}

	cs.skipSpaces()

	if cs.peek() == '(' {
		cs.advance()
		idx := in.evaluateExpr(cs)
		cs.skipSpaces()
		if cs.peek() == ')' {
			cs.advance()
		}
		cs.skipSpaces()
		if cs.peek() == '=' {
			cs.advance()
		}
		in.storeArrayElem(vi, idx, in.evaluateExpr(cs))
	} else {
		if cs.peek() == '=' {
			cs.advance()
		}
		in.storeVar(vi, in.evaluateExpr(cs))
	}
}

//
// GOTO: resolve the target against the running snapshot.  A missing
// or unparseable target just falls through to the next line
//

func (in *interp) executeGoto(cs *cursor, idx int, lines []programLine) int {

	target, ok := cs.parseNumber()
	if !ok {
		return idx + 1
	}

	if t := findLineIndex(lines, target); t >= 0 {
		return t
	}

	return idx + 1
}

//
// IF: a condition followed by a jump target.  THEN is optional, and
// so is a GOTO after it, so 'IF A>3 THEN GOTO 40', 'IF A>3 THEN 40'
// and 'IF A>3 40' all jump.  A false condition, or a target that
// does not resolve, falls through
//

func (in *interp) executeIf(cs *cursor, idx int, lines []programLine) int {

	cond := in.evaluateCond(cs)

	cs.skipSpaces()
	cs.matchKeyword("THEN")

	cs.skipSpaces()
	cs.matchKeyword("GOTO")

	if !cond {
		return idx + 1
	}

	target, ok := cs.parseNumber()
	if !ok {
		return idx + 1
	}

	if t := findLineIndex(lines, target); t >= 0 {
		return t
	}

	return idx + 1
}

//
// DIM: dimension one array.  Size validation (and the decision to
// keep an existing array when the size is bad) lives in dimArray
//

func (in *interp) executeDim(cs *cursor) {

	vi, ok := cs.parseVar()
	if !ok {
		return
	}

	cs.skipSpaces()
	if cs.peek() != '(' {
		return
	}
	cs.advance()

	size := in.evaluateExpr(cs)

	cs.skipSpaces()
	if cs.peek() == ')' {
		cs.advance()
	}

	in.dimArray(vi, size)
}

//
// Run the stored program from its first line.  The program runs off
// an ordered snapshot, starting from a pristine symbol table.  The
// loop keeps going until a statement hands back an index outside the
// snapshot: END does it with the halt sentinel, and running past the
// last line does it by falling through
//

func (in *interp) executeRun() error {

	lines := in.snapshot()
	if len(lines) == 0 {
		return errNoProgram
	}

	in.initSymbolTable()

	in.running = true
	in.nstmts = 0

	for idx := 0; idx >= 0 && idx < len(lines); {
		if in.traceExec {
			fmt.Fprintf(in.out, "%d %s\n", lines[idx].number, lines[idx].text)
		}
		idx = in.executeStmt(lines[idx].text, idx, lines)
		in.nstmts++
	}

	in.running = false

	return nil
}

//
// Execute one statement typed without a line number.  The statement
// sees a synthetic single-line program, so a GOTO or IF cannot find
// anywhere to go, and whatever index comes back is thrown away.
// Assignments and DIMs land in the persistent stores
//

func (in *interp) executeDirect(text string) {

	lines := []programLine{{number: 0, text: text}}

	_ = in.executeStmt(text, 0, lines)
}
