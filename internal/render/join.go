package render

import "github.com/zoobzio/relsql/internal/ast"

func isJoinClause(seg ast.Segment) bool {
	_, ok := seg.(ast.JoinClause)
	return ok
}

// pushJoins pushes a sub-visitor over exactly n JoinClause siblings (n is
// known from stmt.Joins() before the walk starts), rendering
// " <TYPE> <table> ON <condition>" for each.
func pushJoins(d *Dispatcher, n int) {
	if n == 0 {
		return
	}
	seen := 0
	d.Push(Forwarding(d, isJoinClause,
		func(d *Dispatcher, seg ast.Segment) {
			j := seg.(ast.JoinClause)
			d.Out.write(" " + string(j.Type()) + " ")
			// Pushed in reverse syntactic order: the ON condition
			// renderer goes on first (it handles the second child), the
			// table renderer goes on last so it sits on top and catches
			// the table's Enter event, which the walk delivers first.
			pushCondition(d, " ON ")
			pushTableList(d, "", "", 1)
		},
		func(d *Dispatcher, seg ast.Segment) {
			seen++
			if seen == n {
				d.Pop()
			}
		},
	))
}
