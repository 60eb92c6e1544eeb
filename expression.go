package relsql

import "github.com/zoobzio/relsql/internal/ast"

// NewBindMarker returns an anonymous bind marker, e.g. the "?" in a
// driver that binds by position.
func NewBindMarker() BindMarker { return ast.NewBindMarker() }

// TryP creates a validated named bind marker, returning an error if the
// parameter name is empty.
func TryP(name string) (NamedBindMarker, error) {
	if err := requireIdentifier("NamedBindMarker", name); err != nil {
		return NamedBindMarker{}, err
	}
	return ast.NewNamedBindMarker(name), nil
}

// P creates a named bind marker, rendering ":<name>". This is the
// primary way to reference a bound parameter value in a statement; it
// panics on an empty name, use TryP to handle the error instead.
func P(name string) NamedBindMarker {
	m, err := TryP(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Just wraps sql as a raw expression emitted verbatim — an escape hatch
// for a fragment this package has no dedicated node for.
func Just(sql string) Expression { return ast.NewRawExpression(sql) }

// Function returns a SimpleFunction applying name to args, e.g.
// Function("COALESCE", a, b).
func Function(name string, args ...Expression) SimpleFunction {
	return ast.NewSimpleFunction(name, args...)
}

// Subselect wraps stmt for use where an expression is expected,
// typically the right-hand side of In.
func Subselect(stmt *Statement) SubselectExpression {
	return ast.NewSubselectExpression(stmt)
}

// AsExpression adapts a boolean Condition for use where an Expression
// is expected, e.g. a boolean-valued function argument.
func AsExpression(c Condition) Expression { return ast.NewConditionExpression(c) }
