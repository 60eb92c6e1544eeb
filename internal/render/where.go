package render

import "github.com/zoobzio/relsql/internal/ast"

// pushWhere pushes the sub-visitor that renders " WHERE " followed by
// the clause's single root Condition.
func pushWhere(d *Dispatcher) {
	matchWhere := func(seg ast.Segment) bool {
		_, ok := seg.(ast.Where)
		return ok
	}
	d.Push(Filtered(d, matchWhere,
		func(d *Dispatcher, seg ast.Segment) {
			pushCondition(d, " WHERE ")
		},
		func(d *Dispatcher, seg ast.Segment) {},
	))
}
