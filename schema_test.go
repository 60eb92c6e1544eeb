package relsql_test

import (
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/relsql"
	"github.com/zoobzio/relsql/schema"
)

func newTestSchema(t *testing.T) *relsql.Schema {
	t.Helper()
	project := dbml.NewProject("test")
	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	project.AddTable(users)

	registry, err := schema.NewFromDBML(project)
	if err != nil {
		t.Fatalf("NewFromDBML returned error: %v", err)
	}
	return relsql.NewSchema(registry)
}

func TestSchema_TableRejectsUnknownName(t *testing.T) {
	s := newTestSchema(t)
	if _, err := s.Table("orders"); err == nil {
		t.Fatal("expected an error for a table absent from the schema, got nil")
	}
}

func TestSchema_TableAcceptsKnownName(t *testing.T) {
	s := newTestSchema(t)
	if _, err := s.Table("users"); err != nil {
		t.Fatalf("expected no error for a known table, got: %v", err)
	}
}

func TestSchema_ColumnRejectsUnknownName(t *testing.T) {
	s := newTestSchema(t)
	users, err := s.Table("users")
	if err != nil {
		t.Fatalf("expected no error for a known table, got: %v", err)
	}
	if _, err := s.Column(users, "nickname"); err == nil {
		t.Fatal("expected an error for a column absent from the schema, got nil")
	}
}

func TestSchema_ColumnAcceptsKnownName(t *testing.T) {
	s := newTestSchema(t)
	users, err := s.Table("users")
	if err != nil {
		t.Fatalf("expected no error for a known table, got: %v", err)
	}
	if _, err := s.Column(users, "email"); err != nil {
		t.Fatalf("expected no error for a known column, got: %v", err)
	}
}

func TestRender_WithSchemaRejectsUnknownTable(t *testing.T) {
	s := newTestSchema(t)
	orders := relsql.T("orders")
	stmt := relsql.Select(orders.Column("id")).From(orders).MustBuild()

	_, err := relsql.Render(stmt, relsql.WithSchema(s))
	if err == nil {
		t.Fatal("expected Render with a schema to reject an unknown table, got nil error")
	}
}

func TestRender_WithSchemaRejectsUnknownColumn(t *testing.T) {
	s := newTestSchema(t)
	users := relsql.T("users")
	stmt := relsql.Select(users.Column("nickname")).From(users).MustBuild()

	_, err := relsql.Render(stmt, relsql.WithSchema(s))
	if err == nil {
		t.Fatal("expected Render with a schema to reject an unknown column, got nil error")
	}
}

func TestRender_WithSchemaAcceptsKnownTable(t *testing.T) {
	s := newTestSchema(t)
	users := relsql.T("users")
	stmt := relsql.Select(users.Column("id")).From(users).MustBuild()

	got, err := relsql.Render(stmt, relsql.WithSchema(s))
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := "SELECT users.id FROM users"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
