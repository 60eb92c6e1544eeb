package render

import "github.com/zoobzio/relsql/internal/ast"

func isOrderByField(seg ast.Segment) bool {
	_, ok := seg.(ast.OrderByField)
	return ok
}

// pushOrderBy pushes the sub-visitor that renders " ORDER BY " followed
// by the comma-joined "<column> <ASC|DESC>" fields. fieldCount is known
// from stmt.OrderBy().Fields() before the walk starts.
func pushOrderBy(d *Dispatcher, fieldCount int) {
	matchOrderBy := func(seg ast.Segment) bool {
		_, ok := seg.(ast.OrderBy)
		return ok
	}
	d.Push(Filtered(d, matchOrderBy,
		func(d *Dispatcher, seg ast.Segment) {
			d.Out.write(" ORDER BY ")
			pushOrderByFields(d, fieldCount)
		},
		func(d *Dispatcher, seg ast.Segment) {},
	))
}

func pushOrderByFields(d *Dispatcher, n int) {
	if n == 0 {
		return
	}
	seen := 0
	d.Push(Forwarding(d, isOrderByField,
		func(d *Dispatcher, seg ast.Segment) {
			if seen > 0 {
				d.Out.write(", ")
			}
			pushExpression(d, exprContext{bare: true}, "")
		},
		func(d *Dispatcher, seg ast.Segment) {
			field := seg.(ast.OrderByField)
			if dir := field.Direction(); dir != "" {
				d.Out.write(" " + string(dir))
			}
			seen++
			if seen == n {
				d.Pop()
			}
		},
	))
}
