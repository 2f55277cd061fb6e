package main

import (
	"strings"
)

//
// Cursor primitives.  Parsing never fails hard: the helpers report
// what they found and leave the text where it was, so a caller can
// always fall back to doing nothing
//

func (cs *cursor) end() bool {

	return cs.pos >= len(cs.text)
}

func (cs *cursor) peek() byte {

	if cs.end() {
		return 0
	}

	return cs.text[cs.pos]
}

func (cs *cursor) advance() {

	cs.pos++
}

func (cs *cursor) rest() string {

	return cs.text[cs.pos:]
}

func (cs *cursor) skipSpaces() {

	for !cs.end() && (cs.text[cs.pos] == ' ' || cs.text[cs.pos] == '\t') {
		cs.pos++
	}
}

//
// Consume the keyword if the text at the cursor starts with it
//

func (cs *cursor) matchKeyword(kw string) bool {

	if strings.HasPrefix(cs.rest(), kw) {
		cs.pos += len(kw)
		return true
	}

	return false
}

//
// Parse an unsigned decimal integer
//

func (cs *cursor) parseNumber() (int, bool) {

	cs.skipSpaces()

	if !isDigit(cs.peek()) {
		return 0, false
	}

	num := 0
	for isDigit(cs.peek()) {
		num = num*10 + int(cs.peek()-'0')
		cs.advance()
	}

	return num, true
}

//
// Parse a variable letter, returning its slot index
//

func (cs *cursor) parseVar() (int, bool) {

	cs.skipSpaces()

	if ch := cs.peek(); ch >= 'A' && ch <= 'Z' {
		cs.advance()
		return int(ch - 'A'), true
	}

	return -1, false
}

func isDigit(ch byte) bool {

	return ch >= '0' && ch <= '9'
}

//
// Expression evaluation: recursive descent straight over the
// statement text.  Every level is total.  Anything malformed simply
// evaluates to zero, which is what lets the executors treat every
// expression position as if it held a value
//

//
// Primary level: parenthesized expression, unary minus (binding to
// the following primary), integer literal, variable, or array
// element.  Closing parentheses are consumed when present and not
// missed when absent
//

func (in *interp) evaluatePrimary(cs *cursor) int {

	cs.skipSpaces()

	switch {
	case cs.peek() == '(':
		cs.advance()
		val := in.evaluateExpr(cs)
		cs.skipSpaces()
		if cs.peek() == ')' {
			cs.advance()
		}
		return val

	case cs.peek() == '-':
		cs.advance()
		return -in.evaluatePrimary(cs)

	case isDigit(cs.peek()):
		num, _ := cs.parseNumber()
		return num
	}

	vi, ok := cs.parseVar()
	if !ok {
		return 0
	}

	cs.skipSpaces()
	if cs.peek() == '(' {
		cs.advance()
		idx := in.evaluateExpr(cs)
		cs.skipSpaces()
		if cs.peek() == ')' {
			cs.advance()
		}
		return in.fetchArrayElem(vi, idx)
	}

	return in.fetchVar(vi)
}

//
// Term level: '*' and '/', left associative.  Division by zero
// yields zero instead of a fault
//

func (in *interp) evaluateTerm(cs *cursor) int {

	val := in.evaluatePrimary(cs)

	for {
		cs.skipSpaces()

		switch cs.peek() {
		case '*':
			cs.advance()
			val *= in.evaluatePrimary(cs)

		case '/':
			cs.advance()
			if div := in.evaluatePrimary(cs); div != 0 {
				val /= div
			} else {
				val = 0
			}

		default:
			return val
		}
	}
}

//
// Expression level: '+' and '-', left associative
//

func (in *interp) evaluateExpr(cs *cursor) int {

	val := in.evaluateTerm(cs)

	for {
		cs.skipSpaces()

		switch cs.peek() {
		case '+':
			cs.advance()
			val += in.evaluateTerm(cs)

		case '-':
			cs.advance()
			val -= in.evaluateTerm(cs)

		default:
			return val
		}
	}
}

//
// Parse one relational operator.  Longest match first, so '<>' and
// '<=' never decay into '<' plus a stray character.  A single '='
// only counts when not followed by another '='
//

func parseRelop(cs *cursor) (int, bool) {

	cs.skipSpaces()

	rest := cs.rest()

	switch {
	case strings.HasPrefix(rest, "<>"):
		cs.pos += 2
		return cmpNe, true

	case strings.HasPrefix(rest, "<="):
		cs.pos += 2
		return cmpLe, true

	case strings.HasPrefix(rest, ">="):
		cs.pos += 2
		return cmpGe, true

	case strings.HasPrefix(rest, "<"):
		cs.advance()
		return cmpLt, true

	case strings.HasPrefix(rest, ">"):
		cs.advance()
		return cmpGt, true

	case strings.HasPrefix(rest, "=") && !strings.HasPrefix(rest, "=="):
		cs.advance()
		return cmpEq, true
	}

	return 0, false
}

//
// Evaluate 'expr relop expr'.  A missing operator makes the whole
// condition false
//

func (in *interp) evaluateCond(cs *cursor) bool {

	left := in.evaluateExpr(cs)

	op, ok := parseRelop(cs)
	if !ok {
		return false
	}

	right := in.evaluateExpr(cs)

	switch op {
	case cmpEq:
		return left == right
	case cmpNe:
		return left != right
	case cmpLt:
		return left < right
	case cmpGt:
		return left > right
	case cmpLe:
		return left <= right
	case cmpGe:
		return left >= right
	}

	return false
}
