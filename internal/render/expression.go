package render

import "github.com/zoobzio/relsql/internal/ast"

// exprContext carries the one piece of state that changes how an
// Expression renders depending on where it sits in the tree: inside the
// projection list, a column keeps its raw name (appending " AS alias" for
// an aliased one); everywhere else — ON, WHERE, ORDER BY — a column
// resolves through its reference name (the alias, if it has one).
//
// bare additionally suppresses the table qualifier entirely: an ORDER BY
// field names its column with no "table." prefix.
type exprContext struct {
	projection bool
	bare       bool
}

func isExpression(seg ast.Segment) bool {
	_, ok := seg.(ast.Expression)
	return ok
}

// pushExpression pushes a sub-visitor that renders exactly the next
// Expression to arrive, writing prefix immediately before it.
func pushExpression(d *Dispatcher, ctx exprContext, prefix string) {
	d.Push(Filtered(d, isExpression,
		func(d *Dispatcher, seg ast.Segment) {
			d.Out.write(prefix)
			enterExpressionNode(d, seg.(ast.Expression), ctx)
		},
		func(d *Dispatcher, seg ast.Segment) {
			leaveExpressionNode(d, seg.(ast.Expression), ctx)
		},
	))
}

// pushExpressionList pushes a sub-visitor over a run of exactly n
// sibling Expressions — n is always known from the owning node's own
// slice length before the walk reaches it (function arguments, IN's
// right-hand operands, the projection list), so the visitor pops itself
// by counting matches rather than by waiting for a non-matching event.
// That sidesteps a real hazard: the owning node (a SimpleFunction, an
// InCondition) is itself an Expression or Condition, so a naive
// "pop on mismatch" rule can't tell that node's own Leave apart from one
// more sibling — they satisfy the same type predicate.
func pushExpressionList(d *Dispatcher, ctx exprContext, open, sep string, n int) {
	if n == 0 {
		d.Out.write(open)
		return
	}
	seen := 0
	d.Push(Forwarding(d, isExpression,
		func(d *Dispatcher, seg ast.Segment) {
			if seen == 0 {
				d.Out.write(open)
			} else {
				d.Out.write(sep)
			}
			enterExpressionNode(d, seg.(ast.Expression), ctx)
		},
		func(d *Dispatcher, seg ast.Segment) {
			leaveExpressionNode(d, seg.(ast.Expression), ctx)
			seen++
			if seen == n {
				// Every expected sibling has now rendered and this
				// visitor is still on top (each one's own nested pushes
				// resolved before its Leave fired) — pop it directly
				// rather than waiting for a mismatched event that,
				// for a Forwarding visitor, never reliably arrives.
				d.Pop()
			}
		},
	))
}

func enterExpressionNode(d *Dispatcher, e ast.Expression, ctx exprContext) {
	switch v := e.(type) {
	case ast.AliasedColumn:
		pushColumnQualifier(d, v.Column, ctx.bare)
	case ast.Column:
		pushColumnQualifier(d, v, ctx.bare)
	case ast.NamedBindMarker:
		d.Out.write(":" + v.ParamName())
	case ast.BindMarker:
		d.Out.write(v.String())
	case ast.SimpleFunction:
		d.Out.write(v.Name())
		pushExpressionList(d, exprContext{}, "(", ", ", len(v.Args()))
	case ast.SubselectExpression:
		// No outer parentheses here: the surrounding context (an IN, a
		// caller-supplied group) decides whether the subselect is wrapped.
		pushStatement(d, v.Select())
	case ast.RawExpression:
		d.Out.write(v.SQL())
	case ast.ConditionExpression:
		pushCondition(d, "")
	default:
		warnUnsupported(d.Opts, "expression", e)
	}
}

func leaveExpressionNode(d *Dispatcher, e ast.Expression, ctx exprContext) {
	switch v := e.(type) {
	case ast.AliasedColumn:
		switch {
		case ctx.projection:
			d.Out.write(v.Name() + " AS " + v.Alias())
		default:
			d.Out.write(v.ReferenceName())
		}
	case ast.Column:
		d.Out.write(v.Name())
	case ast.SimpleFunction:
		d.Out.write(")")
	}
}

// pushColumnQualifier pushes a sub-visitor over the Column's single
// child — its owning Table — writing "tableref." when that table
// arrives. The column's own name is written in leaveExpressionNode,
// after this prefix, so "tableref.columnname" assembles in the same
// order the traversal delivers its two pieces. When bare is set the
// prefix is suppressed, but the Table child still has to be absorbed —
// the walk visits it regardless of whether this context wants it
// rendered.
func pushColumnQualifier(d *Dispatcher, col ast.Column, bare bool) {
	matchTable := func(seg ast.Segment) bool {
		_, ok := seg.(ast.TableLike)
		return ok
	}
	d.Push(Filtered(d, matchTable,
		func(d *Dispatcher, seg ast.Segment) {
			if !bare {
				d.Out.write(seg.(ast.TableLike).ReferenceName() + ".")
			}
		},
		func(d *Dispatcher, seg ast.Segment) {},
	))
}
