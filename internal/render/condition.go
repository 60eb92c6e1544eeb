package render

import "github.com/zoobzio/relsql/internal/ast"

func isCondition(seg ast.Segment) bool {
	_, ok := seg.(ast.Condition)
	return ok
}

// pushCondition pushes a sub-visitor that renders exactly the next
// Condition to arrive, writing prefix immediately before it. Every
// condition kind pushes its own operand sub-renderers in reverse
// syntactic order — rightmost first — so that after each push the
// topmost visitor on the stack is the one that should handle the very
// next Enter event the walk delivers.
func pushCondition(d *Dispatcher, prefix string) {
	d.Push(Filtered(d, isCondition,
		func(d *Dispatcher, seg ast.Segment) {
			d.Out.write(prefix)
			c := seg.(ast.Condition)
			switch v := c.(type) {
			case ast.IsNullCondition:
				pushExpression(d, exprContext{}, "")
			case ast.IsNotNullCondition:
				pushExpression(d, exprContext{}, "")
			case ast.EqualsCondition:
				pushExpression(d, exprContext{}, " = ")
				pushExpression(d, exprContext{}, "")
			case ast.InCondition:
				// IN owns its wrapping parentheses; a subselect on the
				// right renders bare, so "IN (SELECT ...)" gets exactly
				// one pair either way.
				pushExpressionList(d, exprContext{}, " IN (", ", ", len(v.Rights()))
				pushExpression(d, exprContext{}, "")
			case ast.AndCondition:
				pushCondition(d, " AND ")
				pushCondition(d, "")
			case ast.OrCondition:
				d.Out.write("(")
				pushCondition(d, " OR ")
				pushCondition(d, "")
			case ast.ConditionGroup:
				d.Out.write("(")
				pushCondition(d, "")
			case ast.ConstantCondition:
				d.Out.write(v.SQL())
			default:
				warnUnsupported(d.Opts, "condition", c)
			}
		},
		func(d *Dispatcher, seg ast.Segment) {
			switch seg.(type) {
			case ast.IsNullCondition:
				d.Out.write(" IS NULL")
			case ast.IsNotNullCondition:
				d.Out.write(" IS NOT NULL")
			case ast.InCondition:
				d.Out.write(")")
			case ast.OrCondition:
				d.Out.write(")")
			case ast.ConditionGroup:
				d.Out.write(")")
			}
		},
	))
}
