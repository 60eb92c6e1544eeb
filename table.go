package relsql

import (
	"github.com/zoobzio/relsql/internal/ast"
	"github.com/zoobzio/relsql/relerr"
	"github.com/zoobzio/relsql/schema"
)

// TryT creates a validated table reference, returning an error if the
// name is empty.
func TryT(name string) (Table, error) {
	if err := requireIdentifier("Table", name); err != nil {
		return Table{}, err
	}
	return ast.NewTable(name), nil
}

// T creates a validated table reference, panicking if the name is empty.
// Use TryT to handle the error instead.
func T(name string) Table {
	t, err := TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Schema binds table and column construction to a schema.Registry: every
// reference it mints is checked against the registry's DBML project
// before the AST node is built. A zero Schema (no registry attached)
// validates nothing beyond the non-empty-name check T/TryT already
// apply.
type Schema struct {
	registry *schema.Registry
}

// NewSchema returns a Schema that validates every Table/Column it mints
// against registry. A nil registry is equivalent to the zero Schema.
func NewSchema(registry *schema.Registry) *Schema {
	return &Schema{registry: registry}
}

// Table validates name against s's registry (if any) in addition to the
// non-empty check every Table construction applies.
func (s *Schema) Table(name string) (Table, error) {
	if err := requireIdentifier("Table", name); err != nil {
		return Table{}, err
	}
	if s != nil && s.registry != nil {
		if err := s.registry.ValidateTable(name); err != nil {
			return Table{}, &relerr.InvalidArgumentError{Segment: "Table", Reason: err.Error()}
		}
	}
	return ast.NewTable(name), nil
}

// Column validates name as a column of t against s's registry (if any),
// returning a Column owned by t.
func (s *Schema) Column(t Table, name string) (Column, error) {
	if err := requireIdentifier("Column", name); err != nil {
		return Column{}, err
	}
	if s != nil && s.registry != nil {
		if err := s.registry.ValidateColumn(t.Name(), name); err != nil {
			return Column{}, &relerr.InvalidArgumentError{Segment: "Column", Reason: err.Error()}
		}
	}
	return t.Column(name), nil
}
