package main

import (
	"github.com/danswartzendruber/avl"
	"github.com/danswartzendruber/liner"
	"io"
	"math"
	"time"
)

//
// Constants
//

const VERSION = "1.0.0"

const myPrompt = "> "

const numVars = 26

const maxProgramLines = 1000

const maxLineLen = math.MaxUint8

const maxArraySize = 65536

//
// Sentinel index returned by END to stop the run loop
//

const haltIndex = -1

const clearScreenSeq = "\033[2J"

//
// Statement kinds
//

const (
	stmtUnknown = iota
	stmtPrint
	stmtLet
	stmtGoto
	stmtIf
	stmtEnd
	stmtDim
)

//
// Relational operators
//

const (
	cmpEq = iota
	cmpNe
	cmpLt
	cmpGt
	cmpLe
	cmpGe
)

//
// Interactive commands
//

const (
	cmdNone = iota
	cmdRun
	cmdList
	cmdNew
	cmdLoad
	cmdSave
	cmdQuit
	cmdHelp
	cmdStats
	cmdTrace
)

//
// Type definitions
//

//
// One stored program line: the line number key plus the statement
// text with the number and following blanks stripped
//

type programLine struct {
	number int
	text   string
}

//
// AVL tree node holding one program line
//

type lineNode struct {
	avl    avl.AvlNode
	number int
	text   string
}

//
// Byte-position cursor over one statement's text. All parsing and
// evaluation advances a cursor; there is no token stream
//

type cursor struct {
	text string
	pos  int
}

type window struct {
	rows int
	cols int
}

//
// The interpreter proper: program store, variable and array stores,
// run state and the output sink for PRINT and traces. Everything the
// language semantics touch lives here
//

type interp struct {
	program   *avl.AvlNode
	nlines    int
	vars      [numVars]int
	arrays    [numVars][]int
	out       io.Writer
	nstmts    int64
	running   bool
	traceExec bool
	traceVars bool
	traceDump bool
}

//
// Statement keywords and interactive commands. Matching is uppercase
// only, and the keyword must be followed by a blank or the end of
// the line
//

var stmtKeywordMap = map[string]int{
	"PRINT": stmtPrint,
	"LET":   stmtLet,
	"GOTO":  stmtGoto,
	"IF":    stmtIf,
	"END":   stmtEnd,
	"DIM":   stmtDim,
}

var commandMap = map[string]int{
	"RUN":   cmdRun,
	"LIST":  cmdList,
	"NEW":   cmdNew,
	"LOAD":  cmdLoad,
	"SAVE":  cmdSave,
	"QUIT":  cmdQuit,
	"HELP":  cmdHelp,
	"STATS": cmdStats,
	"TRACE": cmdTrace,
}

//
// Global variables
//

//
// Front-end terminal state. The interpreter keeps no global state,
// so this is strictly about the terminal session
//

var g struct {
	liner      *liner.State
	window     window
	exiting    bool
	modified   bool
	printStats bool
}

//
// Runtime statistics for an executing program
//

var s struct {
	elapsed time.Time
	utime   int64
	stime   int64
}
