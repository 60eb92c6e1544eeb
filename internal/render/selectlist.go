package render

import "github.com/zoobzio/relsql/internal/ast"

// pushSelectList pushes the sub-visitor that renders the SELECT clause's
// projection list: "SELECT " (plus "DISTINCT " when set) followed by the
// comma-joined expressions, each rendered in projection context so an
// aliased column keeps its raw name and gets " AS alias" appended instead
// of resolving through the alias the way every other clause does.
func pushSelectList(d *Dispatcher, distinct bool) {
	matchSelectList := func(seg ast.Segment) bool {
		_, ok := seg.(ast.SelectList)
		return ok
	}
	d.Push(Filtered(d, matchSelectList,
		func(d *Dispatcher, seg ast.Segment) {
			list := seg.(ast.SelectList)
			d.Out.write("SELECT ")
			if distinct {
				d.Out.write("DISTINCT ")
			}
			pushExpressionList(d, exprContext{projection: true}, "", ", ", len(list.Expressions()))
		},
		func(d *Dispatcher, seg ast.Segment) {},
	))
}
