package main

import (
	"fmt"
)

//
// HELP with no argument gives the summary; HELP <command> says what
// one command does
//

func executeHelp(arg string) {

	if arg == "" {
		fmt.Println("Commands:")
		fmt.Println("\tRUN LIST NEW LOAD SAVE QUIT HELP STATS TRACE")
		fmt.Println("Statements:")
		fmt.Println("\tPRINT LET GOTO IF END DIM")
		fmt.Println("Enter 'number statement' to add a program line, and a")
		fmt.Println("bare number to delete that line.  A statement without")
		fmt.Println("a line number executes immediately")
		fmt.Println("Type HELP <command> for details on one command")
		return
	}

	switch commandMap[arg] {
	default:
		fmt.Printf("No help for %q\n", arg)

	case cmdRun:
		fmt.Println("Execute the current program")

	case cmdList:
		fmt.Println("List the current program")

	case cmdNew:
		fmt.Println("Erase the current program")

	case cmdLoad:
		fmt.Println("Load a program from a file, replacing the current one")

	case cmdSave:
		fmt.Println("Save the current program to a file")

	case cmdQuit:
		fmt.Println("Exit from cu-basic")

	case cmdHelp:
		fmt.Println("Print command help")

	case cmdStats:
		fmt.Println("Toggle printing execution statistics when the" +
			" program stops")

	case cmdTrace:
		fmt.Println("Toggle tracing of statement execution, variable" +
			" modification or stored lines")
		fmt.Println("\tTRACE EXEC")
		fmt.Println("\tTRACE VARS")
		fmt.Println("\tTRACE DUMP")
	}
}
