package relsql

import (
	"github.com/zoobzio/relsql/internal/ast"
	"github.com/zoobzio/relsql/relerr"
)

// IsNull returns a Condition rendering "<e> IS NULL".
func IsNull(e Expression) Condition { return ast.NewIsNull(e) }

// IsNotNull returns a Condition rendering "<e> IS NOT NULL".
func IsNotNull(e Expression) Condition { return ast.NewIsNotNull(e) }

// IsEqual returns a Condition rendering "<left> = <right>".
func IsEqual(left, right Expression) Condition { return ast.NewEquals(left, right) }

// TryIn returns a Condition rendering "<left> IN (<rights...>)", or an
// InvalidArgumentError if rights is empty: an IN needs at least one
// right-hand operand.
func TryIn(left Expression, rights ...Expression) (Condition, error) {
	if len(rights) == 0 {
		return nil, &relerr.InvalidArgumentError{Segment: "In", Reason: "at least one right-hand expression is required"}
	}
	return ast.NewIn(left, rights...), nil
}

// In returns a Condition rendering "<left> IN (<rights...>)", panicking
// if rights is empty. Use TryIn to handle the error instead.
func In(left Expression, rights ...Expression) Condition {
	c, err := TryIn(left, rights...)
	if err != nil {
		panic(err)
	}
	return c
}

// And returns a Condition rendering "<left> AND <right>".
func And(left, right Condition) Condition { return ast.NewAnd(left, right) }

// Or returns a Condition rendering "(<left> OR <right>)" — OR's own
// precedence relative to a surrounding AND is ambiguous enough in plain
// SQL that this package always parenthesizes it, rather than leaving
// that to an explicit Group call.
func Or(left, right Condition) Condition { return ast.NewOr(left, right) }

// Group returns a Condition rendering "(<c>)", forcing explicit
// precedence around a nested condition tree.
func Group(c Condition) Condition { return ast.NewConditionGroup(c) }

// RawCondition wraps sql as a condition emitted verbatim.
func RawCondition(sql string) Condition { return ast.NewConstantCondition(sql) }
