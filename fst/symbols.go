package fst

import (
	"math"
	"strings"
)

// Special symbols. The names follow the conventions of the pmatch runtime,
// so archives produced by other pmatch toolchains can be read.
const (
	Epsilon   = "@_EPSILON_SYMBOL_@"
	Identity  = "@_IDENTITY_SYMBOL_@"
	Unknown   = "@_UNKNOWN_SYMBOL_@"
	Boundary  = "@BOUNDARY@"          // input boundary, consumes nothing
	InputMark = "@PMATCH_INPUT_MARK@" // part boundary on the output side
	Entry     = "@PMATCH_ENTRY@"      // start of a delimited match
	Exit      = "@PMATCH_EXIT@"       // end of a delimited match
	LCEntry   = "@PMATCH_LC_ENTRY@"   // left context starts
	LCExit    = "@PMATCH_LC_EXIT@"    // left context ends
	RCEntry   = "@PMATCH_RC_ENTRY@"   // right context starts
	RCExit    = "@PMATCH_RC_EXIT@"    // right context ends
)

// TopName is the name of the top-level transducer of a pmatch container.
const TopName = "TOP"

// MaxWeight is the largest weight a path may carry. It is the largest
// float32, as weights are stored as float32 in compiled pmatch archives.
const MaxWeight = float64(math.MaxFloat32)

const callPrefix, callSuffix = "@I.", "@"

// CallSymbol returns the symbol which inserts (calls) the transducer
// with the given name.
func CallSymbol(name string) string {
	return callPrefix + name + callSuffix
}

// CalledName returns the name of the called transducer if sym is a call
// symbol, and false otherwise.
func CalledName(sym string) (string, bool) {
	if len(sym) <= len(callPrefix)+len(callSuffix) ||
		!strings.HasPrefix(sym, callPrefix) || !strings.HasSuffix(sym, callSuffix) {
		return "", false
	}
	return sym[len(callPrefix) : len(sym)-len(callSuffix)], true
}

// IsSpecial is a predicate: is sym one of the symbols with a special meaning
// for the runtime (including call symbols)?
func IsSpecial(sym string) bool {
	switch sym {
	case Epsilon, Identity, Unknown, Boundary, InputMark, Entry, Exit,
		LCEntry, LCExit, RCEntry, RCExit:
		return true
	}
	_, isCall := CalledName(sym)
	return isCall
}

// IsControl is a predicate: is sym a marker which steers matching without
// consuming input or producing output?
func IsControl(sym string) bool {
	switch sym {
	case Entry, Exit, LCEntry, LCExit, RCEntry, RCExit:
		return true
	}
	return false
}
