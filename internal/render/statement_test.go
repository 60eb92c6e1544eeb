package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/relsql/internal/ast"
	"github.com/zoobzio/relsql/relerr"
)

func mustRender(t *testing.T, stmt *ast.Select) string {
	t.Helper()
	got, err := Render(stmt)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	return got
}

func TestRender_MinimalProjection(t *testing.T) {
	employee := ast.NewTable("employee")
	stmt := ast.NewSelect(
		ast.NewSelectList(employee.Column("id")),
		ast.NewFrom(employee),
	)
	want := "SELECT employee.id FROM employee"
	if got := mustRender(t, stmt); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_ExplicitFromWithAlias(t *testing.T) {
	employee := ast.NewTable("employee")
	e := employee.As("e")
	stmt := ast.NewSelect(
		ast.NewSelectList(e.Column("id")),
		ast.NewFrom(e),
	)
	want := "SELECT e.id FROM employee AS e"
	if got := mustRender(t, stmt); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_DistinctOrderBy(t *testing.T) {
	employee := ast.NewTable("employee")
	stmt := ast.NewSelect(
		ast.NewSelectList(employee.Column("name")),
		ast.NewFrom(employee),
	).WithDistinct(true).WithOrderBy(ast.NewOrderBy(
		ast.NewOrderByField(employee.Column("name"), ast.Descending),
	))
	want := "SELECT DISTINCT employee.name FROM employee ORDER BY name DESC"
	if got := mustRender(t, stmt); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_WhereWithAnd(t *testing.T) {
	employee := ast.NewTable("employee")
	a := employee.Column("a")
	b := employee.Column("b")
	stmt := ast.NewSelect(
		ast.NewSelectList(a),
		ast.NewFrom(employee),
	).WithWhere(ast.NewWhere(ast.NewAnd(
		ast.NewEquals(a, ast.NewNamedBindMarker("n")),
		ast.NewIsNull(b),
	)))
	want := "SELECT employee.a FROM employee WHERE employee.a = :n AND employee.b IS NULL"
	if got := mustRender(t, stmt); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_WhereWithOrIsGrouped(t *testing.T) {
	employee := ast.NewTable("employee")
	a := employee.Column("a")
	b := employee.Column("b")
	stmt := ast.NewSelect(
		ast.NewSelectList(a),
		ast.NewFrom(employee),
	).WithWhere(ast.NewWhere(ast.NewOr(
		ast.NewEquals(a, ast.NewNamedBindMarker("x")),
		ast.NewEquals(b, ast.NewNamedBindMarker("y")),
	)))
	want := "SELECT employee.a FROM employee WHERE (employee.a = :x OR employee.b = :y)"
	if got := mustRender(t, stmt); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_JoinAndSubselectIn(t *testing.T) {
	employee := ast.NewTable("employee")
	dept := ast.NewTable("dept")
	u := dept.As("u")
	v := ast.NewTable("v")

	sub := ast.NewSelect(
		ast.NewSelectList(v.Column("a")),
		ast.NewFrom(v),
	)

	stmt := ast.NewSelect(
		ast.NewSelectList(employee.Column("a")),
		ast.NewFrom(employee),
	).WithJoin(ast.NewJoin(ast.Join, u, ast.NewEquals(employee.Column("id"), u.Column("tid")))).
		WithWhere(ast.NewWhere(ast.NewIn(employee.Column("a"), ast.NewSubselectExpression(sub)))).
		WithLimit(10).
		WithOffset(5)

	want := "SELECT employee.a FROM employee JOIN dept AS u ON employee.id = u.tid " +
		"WHERE employee.a IN (SELECT v.a FROM v) LIMIT 10 OFFSET 5"
	if got := mustRender(t, stmt); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_LeftOuterJoin(t *testing.T) {
	employee := ast.NewTable("employee")
	dept := ast.NewTable("dept")
	stmt := ast.NewSelect(
		ast.NewSelectList(employee.Column("id")),
		ast.NewFrom(employee),
	).WithJoin(ast.NewJoin(ast.LeftJoin, dept,
		ast.NewEquals(employee.Column("dept_id"), dept.Column("id")),
	))
	want := "SELECT employee.id FROM employee LEFT OUTER JOIN dept ON employee.dept_id = dept.id"
	if got := mustRender(t, stmt); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_MultipleFromTables(t *testing.T) {
	employee := ast.NewTable("employee")
	dept := ast.NewTable("dept")
	stmt := ast.NewSelect(
		ast.NewSelectList(employee.Column("id"), dept.Column("name")),
		ast.NewFrom(employee, dept),
	)
	want := "SELECT employee.id, dept.name FROM employee, dept"
	if got := mustRender(t, stmt); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_MultipleOrderByFields(t *testing.T) {
	employee := ast.NewTable("employee")
	stmt := ast.NewSelect(
		ast.NewSelectList(employee.Column("id")),
		ast.NewFrom(employee),
	).WithOrderBy(ast.NewOrderBy(
		ast.NewOrderByField(employee.Column("name"), ast.Descending),
		ast.NewOrderByField(employee.Column("id"), ast.Ascending),
		ast.NewOrderByField(employee.Column("hired_at"), ""),
	))
	want := "SELECT employee.id FROM employee ORDER BY name DESC, id ASC, hired_at"
	if got := mustRender(t, stmt); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_NilStatementIsInvalidArgument(t *testing.T) {
	_, err := Render(nil)
	var invalid *relerr.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected an InvalidArgumentError for a nil statement, got %v", err)
	}
}

func TestRender_EmptySelectListIsInvalidArgument(t *testing.T) {
	stmt := ast.NewSelect(ast.NewSelectList(), ast.NewFrom(ast.NewTable("employee")))
	_, err := Render(stmt)
	var invalid *relerr.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected an InvalidArgumentError for an empty select list, got %v", err)
	}
}

// fullStatement builds a fresh statement exercising every clause; each
// call produces a structurally equal but distinct tree, so rendering two
// of them checks clone-invariance as well as plain determinism.
func fullStatement() *ast.Select {
	employee := ast.NewTable("employee")
	dept := ast.NewTable("dept")
	u := dept.As("u")
	v := ast.NewTable("v")

	sub := ast.NewSelect(
		ast.NewSelectList(v.Column("a")),
		ast.NewFrom(v),
	)

	return ast.NewSelect(
		ast.NewSelectList(employee.Column("a"), employee.Column("b").As("bee")),
		ast.NewFrom(employee),
	).WithDistinct(true).
		WithJoin(ast.NewJoin(ast.Join, u, ast.NewEquals(employee.Column("id"), u.Column("tid")))).
		WithWhere(ast.NewWhere(ast.NewAnd(
			ast.NewIn(employee.Column("a"), ast.NewSubselectExpression(sub)),
			ast.NewIsNotNull(employee.Column("b")),
		))).
		WithOrderBy(ast.NewOrderBy(ast.NewOrderByField(employee.Column("a"), ast.Ascending))).
		WithLimit(10).
		WithOffset(5)
}

func TestRender_DeterministicAcrossEqualTrees(t *testing.T) {
	first := mustRender(t, fullStatement())
	second := mustRender(t, fullStatement())
	if first != second {
		t.Errorf("equal trees rendered differently:\n first: %q\nsecond: %q", first, second)
	}
}

func TestRender_NoConsecutiveSpaces(t *testing.T) {
	got := mustRender(t, fullStatement())
	if strings.Contains(got, "  ") {
		t.Errorf("rendered SQL contains consecutive spaces: %q", got)
	}
}

func TestRender_NoWhereOmitsKeyword(t *testing.T) {
	employee := ast.NewTable("employee")
	stmt := ast.NewSelect(
		ast.NewSelectList(employee.Column("id")),
		ast.NewFrom(employee),
	)
	got := mustRender(t, stmt)
	for _, kw := range []string{" WHERE ", " JOIN ", " ORDER BY ", " LIMIT ", " OFFSET ", "DISTINCT"} {
		if strings.Contains(got, kw) {
			t.Errorf("expected rendered SQL %q to omit %q", got, kw)
		}
	}
}
