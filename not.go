package rlebitmap

// Not returns the bit-flipped complement of b against DefaultUniverse.
func Not(b RleBitmap) (RleBitmap, error) {
	return defaultDomain.Not(b)
}

// Not returns the bit-flipped complement of b against d's universe (spec
// §4.1). An empty b is the all-zeros bitmap, so its complement is the
// all-ones bitmap [0, U]. Otherwise the alternation flips in place: every
// run in b keeps its length but swaps role (zeros become ones, ones become
// zeros), and the universe past the end of b — implicit zeros in b — is
// appended as a final ones-run.
func (d Domain) Not(b RleBitmap) (RleBitmap, error) {
	if err := b.Validate(d.u); err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return RleBitmap{0, d.u}, nil
	}

	var out RleBitmap
	if b[0] == 0 {
		// b begins with ones (r0 == 0): the output's leading zeros-run is
		// exactly b's second run, so skip the empty leading run instead
		// of prepending one of our own.
		out = append(out, b[1:]...)
	} else {
		// b begins with zeros: prepend a zero-length zeros-run so every
		// subsequent run's phase flips.
		out = append(out, 0)
		out = append(out, b...)
	}

	var sum uint64
	for _, r := range out {
		sum += r
	}
	if sum > d.u {
		return nil, &OverflowError{Err: ErrDomainOverflow, Sum: sum, Limit: d.u}
	}
	out = appendRun(out, true, d.u-sum)

	return canonicalize(out), nil
}
