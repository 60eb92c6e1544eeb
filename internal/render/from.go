package render

import "github.com/zoobzio/relsql/internal/ast"

func isTableLike(seg ast.Segment) bool {
	_, ok := seg.(ast.TableLike)
	return ok
}

// pushFrom pushes the sub-visitor that renders " FROM " followed by a
// comma-joined list of table references. A plain Table renders as its
// bare name; an AliasedTable renders "name AS alias", the same
// projection-style form an aliased column takes in the SELECT list.
func pushFrom(d *Dispatcher, tableCount int) {
	matchFrom := func(seg ast.Segment) bool {
		_, ok := seg.(ast.From)
		return ok
	}
	d.Push(Filtered(d, matchFrom,
		func(d *Dispatcher, seg ast.Segment) {
			d.Out.write(" FROM ")
			pushTableList(d, "", ", ", tableCount)
		},
		func(d *Dispatcher, seg ast.Segment) {},
	))
}

// pushTableList pushes a sub-visitor over a run of exactly n sibling
// table references, the same counting discipline pushExpressionList
// uses and for the same reason: a Table or AliasedTable has no children
// of its own, but the owning clause (From, a Join) is not itself a
// TableLike, so a plain Table here never risks being confused with its
// parent the way a SimpleFunction's own Expression-ness did.
func pushTableList(d *Dispatcher, open, sep string, n int) {
	if n == 0 {
		d.Out.write(open)
		return
	}
	seen := 0
	d.Push(Forwarding(d, isTableLike,
		func(d *Dispatcher, seg ast.Segment) {
			if seen == 0 {
				d.Out.write(open)
			} else {
				d.Out.write(sep)
			}
			writeTableRef(d, seg.(ast.TableLike))
		},
		func(d *Dispatcher, seg ast.Segment) {
			seen++
			if seen == n {
				d.Pop()
			}
		},
	))
}

func writeTableRef(d *Dispatcher, t ast.TableLike) {
	if aliased, ok := t.(ast.Aliased); ok {
		d.Out.write(t.Name() + " AS " + aliased.Alias())
		return
	}
	d.Out.write(t.Name())
}
