package main

import (
	"fmt"
	"github.com/danswartzendruber/avl"
	"github.com/goforj/godump"
)

//
// The program store: an AVL tree of lineNodes keyed by line number,
// so an in-order walk is exactly ascending line number order.  The
// wrapper routines hide the AVL interface from the interpreter code,
// as well as providing debug/trace hooks
//

//
// A nil root is the empty tree: lookups and in-order walks come back
// empty, and the first insert plants the root node
//

func (in *interp) initAvl() {

	in.program = nil
	in.nlines = 0
}

func (in *interp) lineAvlTreeFirstInOrder() *lineNode {

	p := avl.AvlTreeFirstInOrder(in.program)
	if p != nil {
		return p.(*lineNode)
	} else {
		return nil
	}
}

func (in *interp) lineAvlTreeNextInOrder(node *lineNode) *lineNode {

	p := avl.AvlTreeNextInOrder(&node.avl)
	if p != nil {
		return p.(*lineNode)
	} else {
		return nil
	}
}

func (in *interp) lineAvlTreeLookup(number int) *lineNode {

	p := avl.AvlTreeLookup(in.program, number, cmpIntKey)
	if p != nil {
		return p.(*lineNode)
	} else {
		return nil
	}
}

func (in *interp) lineAvlTreeInsert(node *lineNode) {

	p := avl.AvlTreeInsert(&in.program, &node.avl, node, cmpIntLnode)
	if p != nil {
		panic(fmt.Sprintf("Line %d already in tree???", node.number))
	}

	in.nlines++

	if in.traceDump {
		godump.Dump(node)
	}
}

func (in *interp) lineAvlTreeRemove(node *lineNode) {

	avl.AvlTreeRemove(&in.program, &node.avl)

	in.nlines--
}

//
// Program store operations sitting on top of the AVL wrappers
//

//
// Insert or replace one program line.  Replacement happens by
// removing the old node first, which is also what lets a full store
// still accept edits to existing lines.  Once the store holds
// maxProgramLines lines, brand new line numbers are silently dropped
//

func (in *interp) upsertLine(number int, text string) {

	if node := in.lineAvlTreeLookup(number); node != nil {
		in.lineAvlTreeRemove(node)
	}

	if in.nlines >= maxProgramLines {
		return
	}

	in.lineAvlTreeInsert(&lineNode{number: number, text: text})
}

//
// Delete one program line, silently ignoring absent numbers
//

func (in *interp) deleteLine(number int) {

	if node := in.lineAvlTreeLookup(number); node != nil {
		in.lineAvlTreeRemove(node)
	}
}

//
// Line editing entry point: a bare line number deletes, a number
// plus text inserts or replaces
//

func (in *interp) editLine(number int, text string) {

	if text == "" {
		in.deleteLine(number)
	} else {
		in.upsertLine(number, text)
	}
}

//
// Drop the whole program.  Variables and arrays go with it
//

func (in *interp) clearProgram() {

	in.initAvl()

	in.initSymbolTable()
}

func (in *interp) lineCount() int {

	return in.nlines
}

//
// Produce an ordered copy of the stored program.  LIST, SAVE and the
// run loop all work from one of these, so edits made while they
// iterate cannot disturb them
//

func (in *interp) snapshot() []programLine {

	lines := make([]programLine, 0, in.nlines)

	for node := in.lineAvlTreeFirstInOrder(); node != nil; node = in.lineAvlTreeNextInOrder(node) {
		lines = append(lines, programLine{number: node.number, text: node.text})
	}

	return lines
}

//
// Bulk load, replacing whatever is stored.  Each line goes through
// editLine exactly as if it had been typed, so duplicate numbers
// collapse to the last occurrence and the capacity limit holds no
// matter what the caller hands us
//

func (in *interp) loadProgram(lines []programLine) {

	in.clearProgram()

	for _, line := range lines {
		in.editLine(line.number, line.text)
	}
}

//
// Resolve a line number to its index in an ordered snapshot, -1 if
// absent.  GOTO and IF targets resolve against the lines the run
// loop is actually executing
//

func findLineIndex(lines []programLine, number int) int {

	for i := range lines {
		if lines[i].number == number {
			return i
		}
	}

	return -1
}

//
// AVL comparison helpers
//

func cmpIntKey(key any, node any) int {

	return cmpIntItems(key.(int), node.(*lineNode).number)
}

func cmpIntLnode(node1, node2 any) int {

	return cmpIntItems(node1.(*lineNode).number, node2.(*lineNode).number)
}

func cmpIntItems(item1, item2 int) int {

	if item1 < item2 {
		return -1
	} else if item1 > item2 {
		return 1
	} else {
		return 0
	}
}
