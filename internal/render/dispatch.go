// Package render turns an ast.Select tree into canonical SQL text. The
// statement-level renderer walks the Select once and lets a stack of
// sub-visitors each own one optional top-level clause — select-list,
// from, joins, where, order-by — with the delegating stack disambiguating
// which clause comes next in a variable-length, partly-optional sequence.
//
// Within a clause, expression and condition trees are rendered the same
// way: pushCondition and pushExpression (condition.go, expression.go)
// push one sub-visitor per operand, in reverse syntactic order, so the
// sub-visitor on top always handles the next segment the walk delivers.
package render

import (
	"github.com/zoobzio/relsql/internal/ast"
	"github.com/zoobzio/relsql/relerr"
)

// Dispatcher drives the delegating walk over a Select's top-level
// clauses. pushStatement seeds its stack with the root statement
// visitor before the walk begins.
type Dispatcher struct {
	stack []ast.Visitor
	Out   *builder
	Opts  *Options
	err   error
}

// Push places v on top of the stack; it becomes the sole recipient of
// Enter/Leave events until it pops itself or is popped by Pop.
func (d *Dispatcher) Push(v ast.Visitor) {
	d.stack = append(d.stack, v)
}

// Pop removes the top of the stack. Every call site in this package
// only ever pops the sub-visitor whose own Enter/Leave is currently
// running — by construction nothing else holds a stack reference to
// pop with — so the one violation actually reachable here is a stray
// extra Pop once the stack is already empty; the pop-discipline
// invariant reduces to that concrete, checkable condition in this
// architecture.
func (d *Dispatcher) Pop() {
	if len(d.stack) == 0 {
		if d.err == nil {
			d.err = &relerr.InvariantViolationError{
				Expected: "non-empty dispatch stack",
				Actual:   "empty stack",
			}
		}
		return
	}
	d.stack = d.stack[:len(d.stack)-1]
}

// Enter implements ast.Visitor by delegating to the current top of stack.
func (d *Dispatcher) Enter(seg ast.Segment) {
	if len(d.stack) == 0 {
		return
	}
	d.stack[len(d.stack)-1].Enter(seg)
}

// Leave implements ast.Visitor by delegating to the current top of
// stack.
func (d *Dispatcher) Leave(seg ast.Segment) {
	if len(d.stack) == 0 {
		return
	}
	d.stack[len(d.stack)-1].Leave(seg)
}

// subtreeVisitor is the shared implementation behind Filtered and
// Forwarding. Once it claims a segment (match succeeds), every event for
// that segment's descendants is handled by whatever onMatch itself
// pushes — the subtreeVisitor is no longer top of stack while they run —
// so the only event it ever sees again directly is the matched segment's
// own Leave. That event always arrives with the subtreeVisitor back on
// top (everything onMatch pushed has popped itself by then), so no
// identity comparison against the matched segment is ever needed.
type subtreeVisitor struct {
	d          *Dispatcher
	match      func(ast.Segment) bool
	onMatch    func(*Dispatcher, ast.Segment)
	onLeave    func(*Dispatcher, ast.Segment)
	forwarding bool
	matched    bool
}

func (s *subtreeVisitor) Enter(seg ast.Segment) {
	if !s.match(seg) {
		// A non-match is permanent: whether this sub-visitor is filtered
		// or forwarding, once the sequence of segments it owns has ended,
		// it never claims another one. Forwarding's repeat behavior comes
		// from staying on the stack across a matched Enter/Leave cycle
		// (see Leave below), not from surviving a non-match.
		s.d.Pop()
		s.d.Enter(seg)
		return
	}
	s.matched = true
	s.onMatch(s.d, seg)
}

func (s *subtreeVisitor) Leave(seg ast.Segment) {
	if s.forwarding && !s.matched {
		// No sibling is claimed, so this Leave belongs to the parent that
		// owns the run: the run is over.
		s.d.Pop()
		s.d.Leave(seg)
		return
	}
	s.matched = false
	s.onLeave(s.d, seg)
	if !s.forwarding {
		s.d.Pop()
	}
}

// Filtered returns a sub-visitor that claims exactly one matching
// segment: onMatch fires when match first succeeds (it is responsible
// for rendering the segment's own text and pushing further visitors for
// any children it needs to recurse into), onLeave fires when that same
// segment's Leave arrives, and the sub-visitor then pops itself. Any
// Enter that doesn't match is redispatched to whatever sits beneath it
// on the stack.
func Filtered(d *Dispatcher, match func(ast.Segment) bool, onMatch, onLeave func(*Dispatcher, ast.Segment)) ast.Visitor {
	return &subtreeVisitor{d: d, match: match, onMatch: onMatch, onLeave: onLeave, forwarding: false}
}

// Forwarding returns a sub-visitor that claims a contiguous run of
// sibling segments matching match: it behaves like Filtered for each
// match, but stays on the stack afterward so the next sibling can be
// claimed too. It leaves the stack on an Enter that does not match, or on
// a Leave that arrives while no sibling is claimed (the parent segment
// owning the siblings leaving), redispatching that event in both cases;
// a caller may also pop it from onLeave once the last expected sibling
// has rendered.
func Forwarding(d *Dispatcher, match func(ast.Segment) bool, onMatch, onLeave func(*Dispatcher, ast.Segment)) ast.Visitor {
	return &subtreeVisitor{d: d, match: match, onMatch: onMatch, onLeave: onLeave, forwarding: true}
}
