package ast

// Aliased is satisfied by any segment that carries a rendering alias in
// addition to its base name (an AliasedColumn, an AliasedTable). Renderers
// use a type assertion against this capability rather than a field check,
// so new aliasable node kinds need no change to existing renderers.
type Aliased interface {
	Alias() string
}

// Named is satisfied by a BindMarker that carries a parameter name.
type Named interface {
	ParamName() string
}

// MultipleCondition is satisfied by a Condition that combines two other
// Conditions (AndCondition, OrCondition).
type MultipleCondition interface {
	Condition
	Left() Condition
	Right() Condition
}
