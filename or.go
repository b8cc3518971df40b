package rlebitmap

// orPrefer implements the OR comparator (spec §4.3): maximize emission of
// ones, minimize wasted work on zeros. Between two ones-phase cursors the
// longer run wins (emit the longest ones-run whole); between two
// zeros-phase cursors the shorter run wins (emit only as many zeros as the
// least-patient input allows); a ones-phase cursor always beats a
// zeros-phase one.
func orPrefer(a, b *cursor) bool {
	aOnes := a.phase() == onesPhase
	bOnes := b.phase() == onesPhase
	switch {
	case aOnes == bOnes:
		if aOnes {
			return a.bits > b.bits
		}
		return a.bits < b.bits
	default:
		return aOnes
	}
}

var orOp = mergeOp{prefer: orPrefer}

// Or returns the n-ary union of bitmaps, against DefaultUniverse. A
// degenerate (all-zero or empty) input contributes nothing; Or() with no
// arguments returns the empty bitmap.
func Or(bitmaps ...RleBitmap) (RleBitmap, error) {
	return defaultDomain.Or(bitmaps...)
}

// Or returns the n-ary union of bitmaps against d's universe.
func (d Domain) Or(bitmaps ...RleBitmap) (RleBitmap, error) {
	if len(bitmaps) == 0 {
		return RleBitmap{}, nil
	}
	return runMerge(orOp, bitmaps, d.u)
}
