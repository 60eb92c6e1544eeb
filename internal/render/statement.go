package render

import (
	"fmt"

	"github.com/zoobzio/relsql/internal/ast"
	"github.com/zoobzio/relsql/relerr"
)

func isSelect(seg ast.Segment) bool {
	_, ok := seg.(*ast.Select)
	return ok
}

// pushStatement pushes the sub-visitor that renders one full SELECT
// statement: it pushes every clause sub-visitor a given Select actually
// has in one shot, in reverse syntactic order, so the topmost one
// always matches whichever child segment the walk delivers next — the
// select-list, being first, ends up on top.
//
// Every clause's presence and every list's length is known from the
// Select's own accessors before the walk reaches it, so the stack never
// needs to redispatch an unmatched event down through intervening clause
// renderers: there are none pushed for a clause the statement doesn't
// have.
func pushStatement(d *Dispatcher, stmt *ast.Select) {
	d.Push(Filtered(d, isSelect,
		func(d *Dispatcher, seg ast.Segment) {
			s := seg.(*ast.Select)
			if o := s.OrderBy(); o != nil {
				pushOrderBy(d, len(o.Fields()))
			}
			if s.Where() != nil {
				pushWhere(d)
			}
			pushJoins(d, len(s.Joins()))
			if n := len(s.From().Tables()); n > 0 {
				pushFrom(d, n)
			}
			pushSelectList(d, s.Distinct())
		},
		func(d *Dispatcher, seg ast.Segment) {
			s := seg.(*ast.Select)
			if s.Limit() != nil {
				fmt.Fprintf(&d.Out.sb, " LIMIT %d", *s.Limit())
			}
			if s.Offset() != nil {
				fmt.Fprintf(&d.Out.sb, " OFFSET %d", *s.Offset())
			}
		},
	))
}

// Render walks stmt and returns the canonical SQL text it denotes.
func Render(stmt *ast.Select, opts ...Option) (string, error) {
	if stmt == nil {
		return "", &relerr.InvalidArgumentError{Segment: "Select", Reason: "statement must not be nil"}
	}
	if len(stmt.SelectList().Expressions()) == 0 {
		return "", &relerr.InvalidArgumentError{Segment: "SelectList", Reason: "at least one expression is required"}
	}
	o := resolve(opts)
	if v := o.SchemaValidator; v != nil {
		check := &schemaCheck{v: v}
		stmt.Walk(check)
		if check.err != nil {
			return "", check.err
		}
	}
	out := &builder{}
	d := &Dispatcher{Out: out, Opts: o}
	pushStatement(d, stmt)
	stmt.Walk(d)
	if d.err != nil {
		return "", d.err
	}
	return out.String(), nil
}

// schemaCheck is a plain pre-render walk over the whole tree — subselects
// included — validating every table and column reference it meets against
// the attached SchemaValidator. It runs before any text is produced so a
// schema failure never leaves a partial fragment behind.
type schemaCheck struct {
	v   SchemaValidator
	err error
}

func (c *schemaCheck) Enter(seg ast.Segment) {
	if c.err != nil {
		return
	}
	switch s := seg.(type) {
	case ast.Column:
		if err := c.v.ValidateColumn(s.Table().Name(), s.Name()); err != nil {
			c.err = &relerr.InvalidArgumentError{Segment: "Column", Reason: err.Error()}
		}
	case ast.AliasedColumn:
		if err := c.v.ValidateColumn(s.Table().Name(), s.Name()); err != nil {
			c.err = &relerr.InvalidArgumentError{Segment: "Column", Reason: err.Error()}
		}
	case ast.TableLike:
		if err := c.v.ValidateTable(s.Name()); err != nil {
			c.err = &relerr.InvalidArgumentError{Segment: "Table", Reason: err.Error()}
		}
	}
}

func (c *schemaCheck) Leave(ast.Segment) {}
