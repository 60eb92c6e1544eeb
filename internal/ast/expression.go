package ast

// Expression is anything that can appear where a value is expected:
// columns, tables used as expressions, bind markers, functions,
// subselects and raw SQL fragments. The unexported marker method closes
// the sum type to this package.
type Expression interface {
	Segment
	expression()
}

// Column is a name qualified by its owning table. Name is always the raw
// column name; ReferenceName is the alias if the column itself is
// aliased (see AliasedColumn), otherwise the same raw name.
type Column struct {
	name  string
	table TableLike
}

func (c Column) Name() string          { return c.name }
func (c Column) ReferenceName() string { return c.name }
func (c Column) Table() TableLike      { return c.table }
func (c Column) Children() []Segment   { return []Segment{c.table} }
func (c Column) Walk(v Visitor)        { walk(c, v) }
func (c Column) expression()           {}

// As returns an AliasedColumn wrapping c.
func (c Column) As(alias string) AliasedColumn {
	return AliasedColumn{Column: c, alias: alias}
}

// AliasedColumn is a Column projected under an alias. It satisfies
// Aliased; ReferenceName resolves through the alias everywhere except the
// projection, which always renders the raw Name plus " AS alias".
type AliasedColumn struct {
	Column
	alias string
}

func (c AliasedColumn) ReferenceName() string { return c.alias }
func (c AliasedColumn) Alias() string         { return c.alias }
func (c AliasedColumn) Children() []Segment   { return []Segment{c.table} }
func (c AliasedColumn) Walk(v Visitor)        { walk(c, v) }

// BindMarker is an anonymous placeholder for a bound parameter value.
type BindMarker struct{}

// NewBindMarker constructs an anonymous bind marker.
func NewBindMarker() BindMarker { return BindMarker{} }

func (BindMarker) Children() []Segment { return nil }
func (b BindMarker) Walk(v Visitor)    { walk(b, v) }
func (BindMarker) expression()         {}

// String is the anonymous marker's own textual form, used by the renderer
// when a BindMarker is not Named.
func (BindMarker) String() string { return "?" }

// NamedBindMarker is a BindMarker that carries the parameter name it
// binds to; it satisfies Named.
type NamedBindMarker struct {
	BindMarker
	name string
}

// NewNamedBindMarker constructs a named bind marker.
func NewNamedBindMarker(name string) NamedBindMarker {
	return NamedBindMarker{name: name}
}

func (n NamedBindMarker) ParamName() string   { return n.name }
func (n NamedBindMarker) Children() []Segment { return nil }
func (n NamedBindMarker) Walk(v Visitor)      { walk(n, v) }

// SimpleFunction is a named SQL function applied to an ordered list of
// argument expressions, e.g. COALESCE(a, b).
type SimpleFunction struct {
	name string
	args []Expression
}

// NewSimpleFunction constructs a SimpleFunction.
func NewSimpleFunction(name string, args ...Expression) SimpleFunction {
	return SimpleFunction{name: name, args: append([]Expression(nil), args...)}
}

func (f SimpleFunction) Name() string { return f.name }
func (f SimpleFunction) Args() []Expression {
	return append([]Expression(nil), f.args...)
}

func (f SimpleFunction) Children() []Segment {
	children := make([]Segment, len(f.args))
	for i, a := range f.args {
		children[i] = a
	}
	return children
}
func (f SimpleFunction) Walk(v Visitor) { walk(f, v) }
func (f SimpleFunction) expression()    {}

// SubselectExpression wraps a nested Select used where an expression is
// expected, typically the right-hand side of an In condition. The nested
// Select is a distinct tree: it is never re-parented into the outer
// statement.
type SubselectExpression struct {
	stmt *Select
}

// NewSubselectExpression constructs a SubselectExpression.
func NewSubselectExpression(stmt *Select) SubselectExpression {
	return SubselectExpression{stmt: stmt}
}

func (s SubselectExpression) Select() *Select     { return s.stmt }
func (s SubselectExpression) Children() []Segment { return []Segment{s.stmt} }
func (s SubselectExpression) Walk(v Visitor)      { walk(s, v) }
func (s SubselectExpression) expression()         {}

// RawExpression is a raw textual expression emitted verbatim, the
// expression-side analogue of ConstantCondition.
type RawExpression struct {
	sql string
}

// NewRawExpression constructs a RawExpression.
func NewRawExpression(sql string) RawExpression { return RawExpression{sql: sql} }

func (r RawExpression) SQL() string         { return r.sql }
func (r RawExpression) Children() []Segment { return nil }
func (r RawExpression) Walk(v Visitor)      { walk(r, v) }
func (RawExpression) expression()           {}

// ConditionExpression adapts a boolean-valued Condition for use where an
// Expression is expected, e.g. a SimpleFunction argument like
// COALESCE(deleted_at IS NOT NULL, FALSE). Its one child is the wrapped
// Condition; rendering it defers entirely to the condition renderer.
type ConditionExpression struct {
	cond Condition
}

// NewConditionExpression constructs a ConditionExpression.
func NewConditionExpression(cond Condition) ConditionExpression {
	return ConditionExpression{cond: cond}
}

func (c ConditionExpression) Condition() Condition { return c.cond }
func (c ConditionExpression) Children() []Segment  { return []Segment{c.cond} }
func (c ConditionExpression) Walk(v Visitor)       { walk(c, v) }
func (ConditionExpression) expression()            {}
