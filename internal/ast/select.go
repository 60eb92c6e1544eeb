package ast

// Select is the root of a statement tree: one SELECT list, one FROM, zero
// or more JOINs, an optional WHERE, an optional ORDER BY, an optional
// DISTINCT flag and optional LIMIT/OFFSET counts.
//
// Limit and Offset are scalar properties read when the renderer leaves
// the Select, not children walked by the visitor; they have no internal
// structure for a sub-visitor to own.
type Select struct {
	distinct bool
	list     SelectList
	from     From
	joins    []JoinClause
	where    *Where
	orderBy  *OrderBy
	limit    *int
	offset   *int
}

// NewSelect constructs a Select with its required SELECT list and FROM
// clause. Optional clauses are attached with WithJoin, WithWhere,
// WithOrderBy, WithDistinct, WithLimit and WithOffset.
func NewSelect(list SelectList, from From) *Select {
	return &Select{list: list, from: from}
}

func (s *Select) Distinct() bool         { return s.distinct }
func (s *Select) SelectList() SelectList { return s.list }
func (s *Select) From() From             { return s.from }
func (s *Select) Joins() []JoinClause {
	return append([]JoinClause(nil), s.joins...)
}
func (s *Select) Where() *Where     { return s.where }
func (s *Select) OrderBy() *OrderBy { return s.orderBy }
func (s *Select) Limit() *int       { return s.limit }
func (s *Select) Offset() *int      { return s.offset }

// WithDistinct sets the DISTINCT flag and returns s for chaining.
func (s *Select) WithDistinct(distinct bool) *Select {
	s.distinct = distinct
	return s
}

// WithJoin appends a JOIN clause and returns s for chaining.
func (s *Select) WithJoin(j JoinClause) *Select {
	s.joins = append(s.joins, j)
	return s
}

// WithWhere attaches a WHERE clause and returns s for chaining.
func (s *Select) WithWhere(w Where) *Select {
	s.where = &w
	return s
}

// WithOrderBy attaches an ORDER BY clause and returns s for chaining.
func (s *Select) WithOrderBy(o OrderBy) *Select {
	s.orderBy = &o
	return s
}

// WithLimit attaches a LIMIT count and returns s for chaining.
func (s *Select) WithLimit(n int) *Select {
	s.limit = &n
	return s
}

// WithOffset attaches an OFFSET count and returns s for chaining.
func (s *Select) WithOffset(n int) *Select {
	s.offset = &n
	return s
}

// Children walks the select-list, the from clause, each join in order,
// the where clause if present, then the order-by clause if present —
// the one traversal order every Select renders in.
func (s *Select) Children() []Segment {
	children := []Segment{s.list}
	if len(s.from.tables) > 0 {
		children = append(children, s.from)
	}
	for _, j := range s.joins {
		children = append(children, j)
	}
	if s.where != nil {
		children = append(children, *s.where)
	}
	if s.orderBy != nil {
		children = append(children, *s.orderBy)
	}
	return children
}

func (s *Select) Walk(v Visitor) { walk(s, v) }
