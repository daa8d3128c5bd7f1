// File: intvars.go
// Role: Integer-variable guard evaluation and assignment application
//.

package zonegraph

import "github.com/tchecker-go/tachecker/tasystem"

func evalIntVarGuard(vars IntVarState, g tasystem.IntVarGuard) bool {
	cur := vars[g.Var]
	switch g.Cmp {
	case tasystem.IntEQ:
		return cur == g.V
	case tasystem.IntNE:
		return cur != g.V
	case tasystem.IntLT:
		return cur < g.V
	case tasystem.IntLE:
		return cur <= g.V
	case tasystem.IntGT:
		return cur > g.V
	case tasystem.IntGE:
		return cur >= g.V
	default:
		return false
	}
}

// applyIntVarAssignment mutates vars in place: Delta != 0 increments the
// current value by Delta; Delta == 0 assigns Value directly.
func applyIntVarAssignment(vars IntVarState, a tasystem.IntVarAssignment) {
	if a.Delta != 0 {
		vars[a.Var] += a.Delta
	} else {
		vars[a.Var] = a.Value
	}
}
