package rlebitmap

// Xor returns the n-ary symmetric difference of bitmaps against
// DefaultUniverse.
func Xor(bitmaps ...RleBitmap) (RleBitmap, error) {
	return defaultDomain.Xor(bitmaps...)
}

// Xor returns the n-ary symmetric difference of bitmaps against d's
// universe (spec §4.5). For n == 0 the result is the empty bitmap; for
// n == 1 the result is the (canonicalized) input. For n >= 2 this uses the
// direct single-pass form sketched in spec §9 ("Direct XOR"): at each step
// it emits a run whose length is the minimum of every live cursor's
// remaining bits and whose polarity is the parity of how many cursors are
// currently in the ones-phase. The reduction form And(Or(A,B), Or(Not(A),
// Not(B))), folded left-to-right, remains available as xorReduce and is
// the reference semantics the direct form is checked against.
func (d Domain) Xor(bitmaps ...RleBitmap) (RleBitmap, error) {
	switch len(bitmaps) {
	case 0:
		return RleBitmap{}, nil
	case 1:
		if err := bitmaps[0].Validate(d.u); err != nil {
			return nil, err
		}
		return canonicalize(bitmaps[0].clone()), nil
	}
	return xorDirect(bitmaps, d.u)
}

func xorDirect(bitmaps []RleBitmap, u uint64) (RleBitmap, error) {
	for _, b := range bitmaps {
		if err := b.Validate(u); err != nil {
			return nil, err
		}
	}

	cursors := buildLiveCursors(bitmaps)

	var out RleBitmap
	for len(cursors) > 0 {
		n := cursors[0].bits
		for _, c := range cursors[1:] {
			if c.bits < n {
				n = c.bits
			}
		}

		onesCount := 0
		for _, c := range cursors {
			if c.phase() == onesPhase {
				onesCount++
			}
		}
		ones := onesCount%2 == 1

		out = appendRun(out, ones, n)

		for _, c := range cursors {
			c.advance(n)
		}
		cursors = compactLive(cursors)
	}

	return canonicalize(out), nil
}

// xorReduce is the spec's reference XOR semantics: AND(OR(A,B), OR(NOT(A),
// NOT(B))), left-folded for n >= 2 inputs. It is not the default code
// path — xorDirect is — but TestXor_DirectMatchesReduction cross-checks
// every case against it.
func (d Domain) xorReduce(bitmaps []RleBitmap) (RleBitmap, error) {
	acc := bitmaps[0].clone()
	for _, next := range bitmaps[1:] {
		pair, err := d.xorPair(acc, next)
		if err != nil {
			return nil, err
		}
		acc = pair
	}
	return canonicalize(acc), nil
}

func (d Domain) xorPair(a, b RleBitmap) (RleBitmap, error) {
	union, err := d.Or(a, b)
	if err != nil {
		return nil, err
	}
	notA, err := d.Not(a)
	if err != nil {
		return nil, err
	}
	notB, err := d.Not(b)
	if err != nil {
		return nil, err
	}
	notUnion, err := d.Or(notA, notB)
	if err != nil {
		return nil, err
	}
	return d.And(union, notUnion)
}
