package main

import (
	"errors"
)

//
// Manifest constants for user-visible messages shared by more than
// one call site
//

const (
	ECANNOTCREATE = "Cannot create file"
	ECANNOTOPEN   = "Cannot open file"
	ELINETOOLONG  = "Line too long"
	ENOPROGRAM    = "No program"
)

//
// The one error the interpreter ever returns: RUN with nothing
// stored.  Language-level failures never surface as errors, they
// evaluate to zero or fall through instead
//

var errNoProgram = errors.New(ENOPROGRAM)
