package relsql

import "github.com/zoobzio/relsql/relerr"

// requireIdentifier is the one structural check every name-bearing
// factory in this package applies before handing a string down into
// internal/ast: non-empty. internal/ast trusts its callers completely
// and has no validation of its own, so this package is the boundary
// where a caller's mistake turns into a typed error instead of a
// malformed tree.
func requireIdentifier(segment, name string) error {
	if name == "" {
		return &relerr.InvalidArgumentError{Segment: segment, Reason: "name must not be empty"}
	}
	return nil
}
