// Package schema provides optional schema-aware validation of table and
// column references against a DBML project.
package schema

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// Registry validates table and column references against a DBML
// project. A nil *Registry is not valid; construct one with NewFromDBML.
type Registry struct {
	project *dbml.Project
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column
}

// NewFromDBML indexes project's tables and columns for fast lookup.
func NewFromDBML(project *dbml.Project) (*Registry, error) {
	if project == nil {
		return nil, fmt.Errorf("schema: project cannot be nil")
	}

	r := &Registry{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}
	for _, table := range project.Tables {
		r.tables[table.Name] = table
		cols := make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			cols[col.Name] = col
		}
		r.columns[table.Name] = cols
	}
	return r, nil
}

// ValidateTable reports an error if name is not a table in the schema.
func (r *Registry) ValidateTable(name string) error {
	if _, ok := r.tables[name]; !ok {
		return fmt.Errorf("schema: table %q not found", name)
	}
	return nil
}

// ValidateColumn reports an error if column is not a column of table in
// the schema.
func (r *Registry) ValidateColumn(table, column string) error {
	cols, ok := r.columns[table]
	if !ok {
		return fmt.Errorf("schema: table %q not found", table)
	}
	if _, ok := cols[column]; !ok {
		return fmt.Errorf("schema: column %q not found on table %q", column, table)
	}
	return nil
}
