package rlebitmap

// andPrefer implements the AND comparator (spec §4.4), the dual of OR:
// maximize emission of zeros, minimize wasted work on ones. Between two
// zeros-phase cursors the longer run wins; between two ones-phase cursors
// the shorter run wins; a zeros-phase cursor always beats a ones-phase one.
func andPrefer(a, b *cursor) bool {
	aZero := a.phase() == zerosPhase
	bZero := b.phase() == zerosPhase
	switch {
	case aZero == bZero:
		if aZero {
			return a.bits > b.bits
		}
		return a.bits < b.bits
	default:
		return aZero
	}
}

var andOp = mergeOp{prefer: andPrefer, stopOnAnyExhaustion: true}

// And returns the n-ary intersection of bitmaps, against DefaultUniverse.
// If any input is all-zero (or empty), the result is immediately the
// empty bitmap, without walking the merge loop. And() with no arguments
// returns the empty bitmap.
func And(bitmaps ...RleBitmap) (RleBitmap, error) {
	return defaultDomain.And(bitmaps...)
}

// And returns the n-ary intersection of bitmaps against d's universe.
func (d Domain) And(bitmaps ...RleBitmap) (RleBitmap, error) {
	if len(bitmaps) == 0 {
		return RleBitmap{}, nil
	}
	for _, b := range bitmaps {
		if err := b.Validate(d.u); err != nil {
			return nil, err
		}
		if b.IsZero() {
			return RleBitmap{}, nil
		}
	}
	return runMerge(andOp, bitmaps, d.u)
}
