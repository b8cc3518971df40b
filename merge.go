package rlebitmap

// mergeOp parameterizes the shared n-ary merge engine (spec §4.2,
// answering §9's "OR and AND... should factor through one generic n-ary
// merge" design note). prefer reports whether cursor a should be chosen as
// the step's winner over cursor b; stopOnAnyExhaustion selects AND's
// early-termination rule (spec §4.2 step 5: "AND terminates when any
// cursor becomes exhausted") versus OR's run-to-completion rule.
type mergeOp struct {
	prefer              func(a, b *cursor) bool
	stopOnAnyExhaustion bool
}

// runMerge walks cursors in a single pass: each iteration selects a
// winning cursor via op.prefer, emits a run of the winner's current
// polarity and length, advances every other live cursor by that length,
// then advances the winner itself the same way. It terminates when no
// cursors remain, or — for AND — as soon as any cursor is exhausted.
func runMerge(op mergeOp, inputs []RleBitmap, u uint64) (RleBitmap, error) {
	for _, in := range inputs {
		if err := in.Validate(u); err != nil {
			return nil, err
		}
	}

	cursors := buildLiveCursors(inputs)

	var out RleBitmap
	for len(cursors) > 0 {
		winnerIdx := 0
		for i := 1; i < len(cursors); i++ {
			if op.prefer(cursors[i], cursors[winnerIdx]) {
				winnerIdx = i
			}
		}
		winner := cursors[winnerIdx]
		n := winner.bits
		ones := winner.phase() == onesPhase

		out = appendRun(out, ones, n)

		for i, c := range cursors {
			if i == winnerIdx {
				continue
			}
			c.advance(n)
		}
		winner.advance(n)

		if op.stopOnAnyExhaustion {
			exhausted := false
			for _, c := range cursors {
				if !c.live() {
					exhausted = true
					break
				}
			}
			if exhausted {
				break
			}
		}

		cursors = compactLive(cursors)
	}

	return canonicalize(out), nil
}
