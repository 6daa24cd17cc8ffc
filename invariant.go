package lexicon

import "bytes"

var reportInvariant = true

// SetInvariantReporting turns invariant reports on or off for every
// lexicon in the process and returns the previous setting. Checks still
// run and fail while reports are off.
func SetInvariantReporting(on bool) bool {
	prev := reportInvariant
	reportInvariant = on
	return prev
}

func (l *lexicon) report(reason string, key Key) bool {
	if reportInvariant {
		l.logger().Error().Str("reason", reason).Stringer("key", key).Msg("invariant error found")
	}
	return false
}

// checkInRange counts the nodes under n, all of which must lie strictly
// between lo and hi. A nil bound is open. It returns false if the subtree
// is malformed.
func (l *lexicon) checkInRange(n *node, lo, hi Key) (int, bool) {
	if n == nil {
		return 0, true
	}
	if n.key == nil {
		return -1, l.report("nil key found", nil)
	}
	if lo != nil && bytes.Compare(n.key, lo) <= 0 {
		return -1, l.report("key outside of lower bound", n.key)
	}
	if hi != nil && bytes.Compare(n.key, hi) >= 0 {
		return -1, l.report("key outside of upper bound", n.key)
	}

	left, ok := l.checkInRange(n.left, lo, n.key)
	if !ok {
		return -1, false
	}
	right, ok := l.checkInRange(n.right, n.key, hi)
	if !ok {
		return -1, false
	}
	return 1 + left + right, true
}

func (l *lexicon) wellFormed() bool {
	n, ok := l.checkInRange(l.root, nil, nil)
	if !ok {
		return false
	}
	if n != l.size {
		if reportInvariant {
			l.logger().Error().Int("size", l.size).Int("nodes", n).Msg("invariant error found: size does not match node count")
		}
		return false
	}
	return true
}

func (l *lexicon) assertWellFormed(op, stage string) {
	if !l.opts.CheckInvariants {
		return
	}
	if !l.wellFormed() {
		panic(&InvariantError{Op: op, Stage: stage})
	}
}
