package rlebitmap

// DefaultUniverse is the canonical universe bound U = 2^53-1, inherited
// from the source's use of the maximum safely-representable integer in a
// 64-bit floating format. It is the universe every package-level function
// in this package (Or, And, Xor, Not) operates over.
const DefaultUniverse uint64 = 1<<53 - 1

// Universe returns the default universe bound. It is the zero-arity
// operation named alongside Or/And/Xor/Not in the public API.
func Universe() uint64 { return DefaultUniverse }

// Domain parameterizes the four operations over a universe bound other
// than DefaultUniverse. The zero value is invalid; use NewDomain.
type Domain struct {
	u uint64
}

// NewDomain returns a Domain bound to u. u must be positive; operations
// against a Domain built from u == 0 will reject every input that holds a
// positive run with ErrDomainOverflow.
func NewDomain(u uint64) Domain { return Domain{u: u} }

// U returns the domain's universe bound.
func (d Domain) U() uint64 { return d.u }

var defaultDomain = Domain{u: DefaultUniverse}
