package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
)

func main() {

	//
	// Terminal setup happens here, not at package load time
	//

	initEnv()

	//
	// Make sure we end up back in normal (cooked) terminal mode
	//

	defer func() {
		cleanupLiner()
	}()

	in := newInterp(os.Stdout)

	switch len(os.Args) {
	default:
		crash("Usage: cu-basic [program]")

	case 1:
		// nothing to do

	case 2:
		loadProgramFile(in, os.Args[1])
	}

	clearScreen()

	printVersionInfo()

	//
	// Run the signal handling code in a goroutine
	//

	go sigHdlr()

	//
	// Loop forever, or until we quit
	//

	for !g.exiting {
		line, eof := readLine(myPrompt, true)
		if eof {
			break
		}

		processInput(in, line)
	}

	fmt.Println("Goodbye.")
}

func initEnv() {

	checkTerminal()

	setupWindow()

	setupLiner()
}

func sigHdlr() {

	ch := make(chan os.Signal, 1)

	signal.Notify(ch, syscall.SIGWINCH)

	//
	// The terminal can be resized at any time, so track its geometry
	//

	for {
		sig := <-ch

		switch sig {
		case syscall.SIGWINCH:
			setupWindow()
		}
	}
}

//
// Process one line of terminal input.  A leading line number edits
// the stored program (bare number deletes, number plus text inserts
// or replaces), a leading command keyword dispatches, and everything
// else executes as a direct statement
//

func processInput(in *interp, line string) {

	if len(line) > maxLineLen {
		fmt.Println(ELINETOOLONG)
		return
	}

	cs := &cursor{text: line}
	cs.skipSpaces()

	if cs.end() {
		return
	}

	if isDigit(cs.peek()) {
		number, _ := cs.parseNumber()
		cs.skipSpaces()

		in.editLine(number, cs.rest())

		//
		// Tricky: deleting the last line leaves nothing worth
		// saving, so the modified flag follows the line count
		//

		if in.lineCount() != 0 {
			setModified()
		} else {
			clearModified()
		}

		return
	}

	cmd := classifyCommand(cs)
	if cmd == cmdNone {
		in.executeDirect(cs.rest())
		return
	}

	cs.skipSpaces()
	arg := strings.TrimRight(cs.rest(), " \t")

	switch cmd {
	case cmdRun:
		executeRunCommand(in)

	case cmdList:
		executeList(in)

	case cmdNew:
		executeNew(in)

	case cmdLoad:
		executeLoad(in, arg)

	case cmdSave:
		executeSave(in, arg)

	case cmdQuit:
		executeQuit()

	case cmdHelp:
		executeHelp(arg)

	case cmdStats:
		g.printStats = !g.printStats
		fmt.Printf("Statistics %s\n", switchSetting(g.printStats))

	case cmdTrace:
		executeTrace(in, arg)
	}
}

//
// Classify a command keyword, using the same boundary rule as
// statements.  On a match the cursor is left just past the keyword,
// otherwise it is restored so the line can run as a statement
//

func classifyCommand(cs *cursor) int {

	start := cs.pos
	for ch := cs.peek(); ch >= 'A' && ch <= 'Z'; ch = cs.peek() {
		cs.advance()
	}

	cmd, ok := commandMap[cs.text[start:cs.pos]]
	if !ok || (!cs.end() && cs.peek() != ' ' && cs.peek() != '\t') {
		cs.pos = start
		return cmdNone
	}

	return cmd
}

func executeRunCommand(in *interp) {

	initClock()

	if err := in.executeRun(); errors.Is(err, errNoProgram) {
		fmt.Println("No program.")
		return
	}

	printStatistics(in)
}

func executeList(in *interp) {

	for _, line := range in.snapshot() {
		fmt.Printf("%d %s\n", line.number, line.text)
	}
}

func executeNew(in *interp) {

	if !checkModified() {
		return
	}

	in.clearProgram()

	clearModified()

	fmt.Println("Program cleared.")
}

func executeLoad(in *interp, filename string) {

	if filename == "" {
		fmt.Println("Usage: LOAD filename")
		return
	}

	if !checkModified() {
		return
	}

	loadProgramFile(in, filename)
}

func executeSave(in *interp, filename string) {

	if filename == "" {
		fmt.Println("Usage: SAVE filename")
		return
	}

	saveProgramFile(in, filename)
}

func executeQuit() {

	if !checkModified() {
		return
	}

	g.exiting = true
}

//
// Toggle trace flags
//

func executeTrace(in *interp, arg string) {

	switch arg {
	default:
		fmt.Println("Usage: TRACE EXEC|VARS|DUMP")

	case "EXEC":
		in.traceExec = !in.traceExec
		fmt.Printf("toggling traceExec %s\n", switchSetting(in.traceExec))

	case "VARS":
		in.traceVars = !in.traceVars
		fmt.Printf("toggling traceVars %s\n", switchSetting(in.traceVars))

	case "DUMP":
		in.traceDump = !in.traceDump
		fmt.Printf("toggling traceDump %s\n", switchSetting(in.traceDump))
	}
}

func printStatistics(in *interp) {

	var mem runtime.MemStats

	if g.printStats {
		fmt.Println()
		printCpuUsage()
		runtime.GC()
		runtime.ReadMemStats(&mem)
		fmt.Printf("%dMB memory used\n", convertToMB(mem.HeapAlloc))
		fmt.Printf("%d %s executed\n", in.nstmts,
			pluralize("statement", in.nstmts))
	}
}

func setModified() {

	g.modified = true
}

func clearModified() {

	g.modified = false
}

//
// Commands that throw away an unsaved program ask first.  A true
// return means go ahead
//

func checkModified() bool {

	if g.modified {
		return promptYesNo("Discard modified program")
	}

	return true
}

func printVersionInfo() {

	fmt.Printf("cu-basic version %s\n", VERSION)
	fmt.Println("Type HELP for a summary of commands and statements")
}
