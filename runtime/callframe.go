package runtime

import (
	"fmt"
)

// This module implements a stack of call frames.
// Call frames are used by the matcher to remember where to continue after
// an inserted (called) machine reaches a final state.
//
// Frames are immutable. Pushing a frame creates a new top of stack which
// links to its parent, so search branches may share common stack bottoms.

// maxCallDepth limits the nesting of calls, guarding against left-recursive
// machine definitions.
const maxCallDepth = 256

// CallFrame is a call frame, representing the activation of a called machine.
type CallFrame struct {
	Name   string   // name of the called machine
	Caller *Machine // machine to return to
	Return int      // state of Caller to continue in
	Parent *CallFrame
	depth  int
}

// Push creates a new call frame on top of mf. mf may be nil, which denotes
// the empty stack.
func (mf *CallFrame) Push(name string, caller *Machine, ret int) *CallFrame {
	d := 1
	if mf != nil {
		d = mf.depth + 1
	}
	return &CallFrame{
		Name:   name,
		Caller: caller,
		Return: ret,
		Parent: mf,
		depth:  d,
	}
}

// Depth returns the number of frames on the stack.
func (mf *CallFrame) Depth() int {
	if mf == nil {
		return 0
	}
	return mf.depth
}

func (mf *CallFrame) String() string {
	if mf == nil {
		return "<call ->"
	}
	return fmt.Sprintf("<call %s -> %s:%d>", mf.Name, mf.Caller.Name(), mf.Return)
}

// IsRoot is a predicate: Is this the bottom-most frame?
func (mf *CallFrame) IsRoot() bool {
	return mf != nil && mf.Parent == nil
}
