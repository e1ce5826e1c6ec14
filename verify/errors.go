package verify

import "errors"

// errZ3Unavailable is returned by the fallback Solver and wrapped into a
// ClassBoundary diagnostic by every driver function, per spec.md §9's "z3
// not available" rule.
var errZ3Unavailable = errors.New("z3 not available")

// errAlloyUnavailable is wrapped into RunAlloy's boundary diagnostic when
// the configured Alloy analyzer binary cannot be located (distinct from a
// timeout or a
// nonzero exit with parseable output, both of which still produce a
// structured AlloyResult).
var errAlloyUnavailable = errors.New("alloy analyzer not available")
