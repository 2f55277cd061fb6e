package main

import (
	"bufio"
	"fmt"
	"github.com/danswartzendruber/liner"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/term"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"
)

//
// Ensure we are connected to a tty!
//

func checkTerminal() {

	if !term.IsTerminal(2) {
		crash("")
	}

	if !term.IsTerminal(0) {
		crash("Standard input must be a terminal")
	}

	if !term.IsTerminal(1) {
		crash("Standard output must be a terminal")
	}
}

//
// Read terminal geometry
//

func setupWindow() {

	var err error

	g.window.cols, g.window.rows, err = term.GetSize(0)
	if err != nil {
		crash("Unable to read terminal parameters")
	}
}

//
// Clear the screen and position the cursor at column 0 of the
// last line
//

func clearScreen() {

	fmt.Print(clearScreenSeq)
	for i := 0; i < g.window.rows; i++ {
		fmt.Println()
	}
}

func setupLiner() {

	g.liner = liner.NewLiner()

	g.liner.SetMultiLineMode(false)
}

//
// Restore terminal state.  The Close method is documented as
// 'restoring the terminal to its previous state', so this must run
// on every exit path.  NB: we cannot call (or cause to be called)
// crash(), as that would recurse
//

func cleanupLiner() {

	if g.liner != nil {
		g.liner.Close()
		g.liner = nil
	}
}

//
// Read a line from the terminal, with editing and history
//

func readLine(prompt string, history bool) (string, bool) {

	s, err := g.liner.Prompt(prompt)

	//
	// Annoyingly, a non-nil error here can be totally okay.  A ^D at
	// the beginning of the line reads as EOF, and a ^C reads as
	// ErrPromptAborted, which we treat as an abandoned (empty) line
	//

	if err != nil {
		if err == io.EOF {
			return "", true
		} else if err == liner.ErrPromptAborted {
			return "", false
		} else {
			crash(fmt.Sprintf("readLine error: %q\n", err))
		}
	}

	if history && s != "" {
		g.liner.AppendHistory(s)
	}

	return s, false
}

//
// Prompt user for an action requiring a yes/no
//

func promptYesNo(msg string) bool {

	for {
		prompt := fmt.Sprintf("%s (yes/no)? ", msg)
		line, _ := readLine(prompt, false)

		switch line {
		default:
			fmt.Println("Answer yes or no!")
			continue

		case "yes":
			return true

		case "no":
			return false
		}
	}
}

//
// Load a program file into the interpreter.  Each file line is a
// line number, blanks, then the statement text; anything without a
// leading digit is skipped.  The store is only replaced once the
// whole file has been read cleanly
//

func loadProgramFile(in *interp, filename string) {

	f, err := os.Open(filename)
	if err != nil {
		fmt.Printf("%s: %s\n", ECANNOTOPEN, filename)
		return
	}
	defer f.Close()

	var lines []programLine

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		cs := &cursor{text: scanner.Text()}
		cs.skipSpaces()

		if !isDigit(cs.peek()) {
			continue
		}

		number, _ := cs.parseNumber()
		cs.skipSpaces()

		lines = append(lines, programLine{number: number, text: cs.rest()})
	}

	if err := scanner.Err(); err != nil {
		fmt.Printf("Error reading %s (%v)\n", filename, err)
		return
	}

	in.loadProgram(lines)

	clearModified()

	fmt.Printf("Loaded %s\n", filename)
}

//
// Save the stored program, one 'number text' line per program line
//

func saveProgramFile(in *interp, filename string) {

	f, err := os.Create(filename)
	if err != nil {
		fmt.Printf("%s: %s\n", ECANNOTCREATE, filename)
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	for _, line := range in.snapshot() {
		fmt.Fprintf(w, "%d %s\n", line.number, line.text)
	}

	if err := w.Flush(); err != nil {
		fmt.Printf("Error writing %s (%v)\n", filename, err)
		return
	}

	clearModified()

	fmt.Printf("Saved %s\n", filename)
}

func pluralize(str string, num int64) string {

	//
	// Oddity: 0 is considered plural
	//

	if num != 1 {
		return str + "s"
	}

	return str
}

func switchSetting(b bool) string {

	if b {
		return "ON"
	} else {
		return "OFF"
	}
}

func convertToMB(num uint64) uint64 {

	const MB = 1024 * 1024

	return (num + MB - 1) / MB
}

//
// Initialize the clock
//

func initClock() {

	s.elapsed = time.Now()
	s.utime, s.stime = getCPUInfo()
}

func printCpuUsage() {

	elapsed := time.Since(s.elapsed)
	utime, stime := getCPUInfo()

	fmt.Printf("CPU Usage: elapsed = %s / user = %s / system = %s\n",
		formatCPUTime(int64(elapsed.Seconds())),
		formatCPUTime(utime-s.utime), formatCPUTime(stime-s.stime))
}

func formatCPUTime(t int64) string {

	var h, m int64

	if t >= 3600 {
		h = t / 3600
		t = t % 3600
	}

	if t >= 60 {
		m = t / 60
		t = t % 60
	}

	return fmt.Sprintf("%02d:%02d:%02d", h, m, t)
}

//
// Read our user and system CPU time in seconds from /proc/self/stat
//

func getCPUInfo() (int64, int64) {

	clktck, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		panic(err)
	}

	contents, err := os.ReadFile("/proc/self/stat")
	if err != nil {
		panic(err)
	}

	fields := strings.Fields(string(contents))

	utime, err := strconv.ParseInt(fields[13], 10, 64)
	if err != nil {
		panic(err)
	}

	stime, err := strconv.ParseInt(fields[14], 10, 64)
	if err != nil {
		panic(err)
	}

	return utime / clktck, stime / clktck
}

//
// Print a fatal message and abort the process.  We write to standard
// error, since the user may have redirected standard output, and we
// would not see it then.  Dup os.Stderr, then close os.Stdout and
// os.Stderr in case another goroutine is writing to the terminal.
// Make sure to call cleanupLiner, so the terminal state is sane
//

func crash(msg string) {

	var w *os.File

	cleanupLiner()

	if msg != "" {
		fd, err := syscall.Dup(int(os.Stderr.Fd()))
		if err == nil {
			os.Stdout.Close()
			os.Stderr.Close()
			w = os.NewFile(uintptr(fd), "stdout on new fd")
		} else {
			w = os.Stderr
		}

		fmt.Fprintln(w, msg)
	}

	os.Exit(1)
}
