package relsql

import (
	"github.com/zoobzio/relsql/internal/ast"
	"github.com/zoobzio/relsql/relerr"
)

// Builder assembles a Select statement one clause at a time. Each chain
// method short-circuits once err is set, so a mistake partway through a
// long chain surfaces once at Build rather than at the method that
// caused it.
type Builder struct {
	list     ast.SelectList
	from     []ast.TableLike
	joins    []ast.JoinClause
	where    ast.Condition
	order    []ast.OrderByField
	distinct bool
	limit    *int
	offset   *int
	err      error
}

// Select starts a Builder with exprs as its SELECT list.
func Select(exprs ...Expression) *Builder {
	return &Builder{list: ast.NewSelectList(exprs...)}
}

// From sets the FROM clause's tables, replacing any previously set.
func (b *Builder) From(tables ...TableLike) *Builder {
	if b.err != nil {
		return b
	}
	b.from = tables
	return b
}

// Join appends a JOIN clause.
func (b *Builder) Join(joinType JoinType, table TableLike, on Condition) *Builder {
	if b.err != nil {
		return b
	}
	b.joins = append(b.joins, ast.NewJoin(joinType, table, on))
	return b
}

// Where sets the WHERE clause's root condition. A second call replaces
// the first rather than combining with AND — call And yourself if you
// want both.
func (b *Builder) Where(c Condition) *Builder {
	if b.err != nil {
		return b
	}
	b.where = c
	return b
}

// OrderBy appends one column-direction pair to the ORDER BY clause.
func (b *Builder) OrderBy(col Column, dir Direction) *Builder {
	if b.err != nil {
		return b
	}
	b.order = append(b.order, ast.NewOrderByField(col, dir))
	return b
}

// Distinct sets the DISTINCT flag.
func (b *Builder) Distinct() *Builder {
	if b.err != nil {
		return b
	}
	b.distinct = true
	return b
}

// Limit sets the LIMIT count. A negative n is rejected at Build.
func (b *Builder) Limit(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = &relerr.InvalidArgumentError{Segment: "Limit", Reason: "must not be negative"}
		return b
	}
	b.limit = &n
	return b
}

// Offset sets the OFFSET count. A negative n is rejected at Build.
func (b *Builder) Offset(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = &relerr.InvalidArgumentError{Segment: "Offset", Reason: "must not be negative"}
		return b
	}
	b.offset = &n
	return b
}

// Build returns the assembled statement, or the first error recorded by
// a chain method.
func (b *Builder) Build() (*Statement, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.list.Expressions()) == 0 {
		return nil, &relerr.InvalidArgumentError{Segment: "SelectList", Reason: "at least one expression is required"}
	}
	stmt := ast.NewSelect(b.list, ast.NewFrom(b.from...))
	for _, j := range b.joins {
		stmt.WithJoin(j)
	}
	if b.where != nil {
		stmt.WithWhere(ast.NewWhere(b.where))
	}
	if len(b.order) > 0 {
		stmt.WithOrderBy(ast.NewOrderBy(b.order...))
	}
	stmt.WithDistinct(b.distinct)
	if b.limit != nil {
		stmt.WithLimit(*b.limit)
	}
	if b.offset != nil {
		stmt.WithOffset(*b.offset)
	}
	return stmt, nil
}

// MustBuild returns the assembled statement, panicking on error. Use
// Build to handle the error instead.
func (b *Builder) MustBuild() *Statement {
	stmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stmt
}
