package ast

// TableLike is satisfied by anything that can stand in a FROM list or a
// JOIN target: a plain Table or an AliasedTable.
type TableLike interface {
	Segment
	Name() string
	ReferenceName() string
	tableLike()
}

// Table is a plain table reference.
type Table struct {
	name string
}

// NewTable constructs a Table. Callers outside this module reach it only
// through the validated relsql.T, relsql.TryT and Schema.Table
// constructors.
func NewTable(name string) Table {
	return Table{name: name}
}

func (t Table) Name() string          { return t.name }
func (t Table) ReferenceName() string { return t.name }
func (t Table) Children() []Segment   { return nil }
func (t Table) Walk(v Visitor)        { walk(t, v) }
func (t Table) tableLike()            {}

// As returns an AliasedTable using t as its base.
func (t Table) As(alias string) AliasedTable {
	return AliasedTable{Table: t, alias: alias}
}

// Column returns a Column owned by t.
func (t Table) Column(name string) Column {
	return Column{name: name, table: t}
}

// AliasedTable is a Table referenced under an alias; ReferenceName and
// Alias both return the alias, Name still returns the underlying table
// name.
type AliasedTable struct {
	Table
	alias string
}

func (t AliasedTable) ReferenceName() string { return t.alias }
func (t AliasedTable) Alias() string         { return t.alias }
func (t AliasedTable) Children() []Segment   { return nil }
func (t AliasedTable) Walk(v Visitor)        { walk(t, v) }

// Column returns a Column owned by the aliased table (so its reference
// name resolves through the alias).
func (t AliasedTable) Column(name string) Column {
	return Column{name: name, table: t}
}
