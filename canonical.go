package rlebitmap

// appendRun emits a run of n bits of the given polarity onto out, extending
// the last run in place if it already has the same polarity, and
// prepending a zero-length zeros-run if the very first run emitted would
// otherwise be a ones-run (a sequence always starts with zeros). A
// zero-length run is a no-op.
func appendRun(out RleBitmap, ones bool, n uint64) RleBitmap {
	if n == 0 {
		return out
	}
	if len(out) == 0 {
		if ones {
			return append(out, 0, n)
		}
		return append(out, n)
	}
	lastIdx := len(out) - 1
	lastIsOnes := lastIdx%2 == 1
	if lastIsOnes == ones {
		out[lastIdx] += n
		return out
	}
	return append(out, n)
}

// coalesce replays b's runs, in their own alternating-phase order, through
// appendRun. This both merges any adjacent same-polarity runs and drops
// interior zero-length runs — the defensive half of canonicalization (spec
// §4.6 point 2), which a correct merge implementation should never need
// but which costs nothing to guarantee.
func coalesce(b RleBitmap) RleBitmap {
	var out RleBitmap
	for i, r := range b {
		out = appendRun(out, i%2 == onesPhase, r)
	}
	return out
}

// canonicalize strips a trailing zero-run (invariant 2) after coalescing
// any residual non-canonical structure. Every operation in this package
// routes its result through canonicalize before returning it.
func canonicalize(b RleBitmap) RleBitmap {
	b = coalesce(b)
	if len(b)%2 == 1 {
		b = b[:len(b)-1]
	}
	return b
}
