// Package relsql builds and renders SELECT statements: an immutable AST
// of tables, expressions, conditions and clauses, plus a stack-based
// enter/leave visitor engine that walks the tree and serializes it to
// SQL text.
//
// The AST and the renderer live under internal/ast and internal/render;
// this package is the thin, fluent construction layer that makes them
// reachable — table and column references, condition and expression
// factories, and a Select step-builder, ending in Build (returning the
// statement) or Render (returning its SQL).
package relsql

import (
	"github.com/zoobzio/relsql/internal/ast"
)

// Segment, Expression and Condition are the AST's three shared
// contracts, re-exported so callers can name them without reaching into
// internal/ast themselves.
type (
	Segment    = ast.Segment
	Expression = ast.Expression
	Condition  = ast.Condition
)

// TableLike is satisfied by a Table or AliasedTable — anything that can
// stand in a FROM list or a JOIN target.
type TableLike = ast.TableLike

// Table, AliasedTable, Column and AliasedColumn are the table- and
// column-reference node kinds.
type (
	Table         = ast.Table
	AliasedTable  = ast.AliasedTable
	Column        = ast.Column
	AliasedColumn = ast.AliasedColumn
)

// BindMarker and NamedBindMarker are anonymous and named parameter
// placeholders.
type (
	BindMarker      = ast.BindMarker
	NamedBindMarker = ast.NamedBindMarker
)

// SimpleFunction and SubselectExpression round out the Expression sum.
type (
	SimpleFunction      = ast.SimpleFunction
	SubselectExpression = ast.SubselectExpression
	ConditionExpression = ast.ConditionExpression
	RawExpression       = ast.RawExpression
)

// JoinType and Direction are the enumerations a JOIN and an ORDER BY
// field carry.
type (
	JoinType  = ast.JoinType
	Direction = ast.Direction
)

// The JOIN keywords a JoinClause can render.
const (
	Join      = ast.Join
	InnerJoin = ast.InnerJoin
	LeftJoin  = ast.LeftJoin
	RightJoin = ast.RightJoin
	FullJoin  = ast.FullJoin
	CrossJoin = ast.CrossJoin
)

// The ORDER BY directions an OrderByField can carry. The zero value
// (neither) renders with no trailing keyword.
const (
	Ascending  = ast.Ascending
	Descending = ast.Descending
)

// Statement is the statement root: one SELECT list, an optional FROM,
// zero or more JOINs, an optional WHERE, an optional ORDER BY, and the
// DISTINCT/LIMIT/OFFSET scalars. Construct one with the Select
// step-builder rather than ast.NewSelect directly.
type Statement = ast.Select
