package geometry

import "github.com/cockroachdb/errors"

// Geometry construction errors.
var (
	ErrInvalidCreateArgument = errors.New("invalid geometry create argument")
	ErrInvalidVertexSemantic = errors.New("invalid vertex semantic")
	ErrFailed                = errors.New("geometry creation failed")
)

// assertf panics with an assertion failure when invariant checks are
// enabled and cond is false. Build with the geometry_noassert tag to
// turn the checks off.
func assertf(cond bool, format string, args ...interface{}) {
	if checkInvariants && !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}
